package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Farmacia-api/internal/application/usecase"
	"github.com/jhoicas/Farmacia-api/pkg/logger"
)

// BestsellerHandler reporte de más vendidos, solo lectura.
type BestsellerHandler struct {
	uc  *usecase.BestsellerUseCase
	log *logger.Logger
}

// NewBestsellerHandler construye el handler.
func NewBestsellerHandler(uc *usecase.BestsellerUseCase, log *logger.Logger) *BestsellerHandler {
	return &BestsellerHandler{uc: uc, log: log}
}

// List GET /api/bestsellers
func (h *BestsellerHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.Compute()
	if err != nil {
		h.log.Error().Err(err).Msg("calcular más vendidos")
		return serverError(c)
	}
	return c.JSON(out)
}
