package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/application/usecase"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/pkg/logger"
)

// MovementHandler maneja las peticiones HTTP de movimientos de caja.
type MovementHandler struct {
	uc  *usecase.MovementUseCase
	log *logger.Logger
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *usecase.MovementUseCase, log *logger.Logger) *MovementHandler {
	return &MovementHandler{uc: uc, log: log}
}

// List GET /api/movements
func (h *MovementHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		h.log.Error().Err(err).Msg("listar movimientos")
		return serverError(c)
	}
	return c.JSON(out)
}

// CreateBatch POST /api/movements — acepta un lote; o entra entero o se
// rechaza entero.
func (h *MovementHandler) CreateBatch(c *fiber.Ctx) error {
	var in []dto.MovementRequest
	if err := c.BodyParser(&in); err != nil || len(in) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.SuccessResponse{Success: false, Message: "Données invalides."})
	}
	for _, m := range in {
		if err := validate.Struct(m); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.SuccessResponse{Success: false, Message: "Champs obligatoires manquants."})
		}
	}
	created, err := h.uc.CreateBatch(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.SuccessResponse{Success: false, Message: "Champs obligatoires manquants."})
		}
		h.log.Error().Err(err).Msg("agregar movimientos")
		return serverError(c)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{Success: true, Message: "Mouvements ajoutés.", Data: created})
}

// Update PUT /api/movements/:id
func (h *MovementHandler) Update(c *fiber.Ctx) error {
	var in dto.MovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, msgInvalidBody)
	}
	if err := validate.Struct(in); err != nil {
		return badRequest(c, "Champs obligatoires manquants.")
	}
	if err := h.uc.Update(c.Params("id"), in); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return notFound(c, "Mouvement non trouvé.")
		case errors.Is(err, domain.ErrInvalidInput):
			return badRequest(c, "Champs obligatoires manquants.")
		}
		h.log.Error().Err(err).Msg("modificar movimiento")
		return serverError(c)
	}
	return c.JSON(dto.SuccessResponse{Success: true, Message: "Mouvement modifié avec succès !"})
}

// Delete DELETE /api/movements/:id
func (h *MovementHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c, "Mouvement non trouvé")
		}
		h.log.Error().Err(err).Msg("eliminar movimiento")
		return serverError(c)
	}
	return c.JSON(dto.SuccessResponse{Success: true, Message: "Mouvement supprimé."})
}

// Summary GET /api/movements/summary?date=YYYY-MM-DD — agregado del día
// para el reporte de tesorería.
func (h *MovementHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.SummaryByDay(c.Query("date"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return badRequest(c, msgInvalidBody)
		}
		h.log.Error().Err(err).Msg("resumen de movimientos")
		return serverError(c)
	}
	return c.JSON(out)
}
