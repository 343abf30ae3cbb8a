package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Farmacia-api/internal/application/usecase"
	"github.com/jhoicas/Farmacia-api/pkg/logger"
)

// ItemHandler lista genérica heredada.
type ItemHandler struct {
	uc  *usecase.ItemUseCase
	log *logger.Logger
}

// NewItemHandler construye el handler.
func NewItemHandler(uc *usecase.ItemUseCase, log *logger.Logger) *ItemHandler {
	return &ItemHandler{uc: uc, log: log}
}

// List GET /api/items
func (h *ItemHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		h.log.Error().Err(err).Msg("listar items")
		return serverError(c)
	}
	return c.JSON(out)
}

// Create POST /api/items
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var item map[string]any
	if err := c.BodyParser(&item); err != nil {
		return badRequest(c, msgInvalidBody)
	}
	if err := h.uc.Add(item); err != nil {
		h.log.Error().Err(err).Msg("agregar item")
		return serverError(c)
	}
	return okMessage(c, "Ajouté avec succès")
}
