package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/application/usecase"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/pkg/logger"
)

// SaleHandler maneja las peticiones HTTP de ventas.
type SaleHandler struct {
	uc  *usecase.SaleUseCase
	log *logger.Logger
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *usecase.SaleUseCase, log *logger.Logger) *SaleHandler {
	return &SaleHandler{uc: uc, log: log}
}

// List GET /api/sales
func (h *SaleHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		h.log.Error().Err(err).Msg("listar ventas")
		return serverError(c)
	}
	return c.JSON(out)
}

// Create POST /api/sales
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.SaleRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, msgInvalidBody)
	}
	if err := validate.Struct(in); err != nil {
		return badRequest(c, msgInvalidBody)
	}
	if err := h.uc.Create(in); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return badRequest(c, "Vente déjà existante.")
		}
		h.log.Error().Err(err).Msg("registrar venta")
		return serverError(c)
	}
	return okMessage(c, "Vente enregistrée !")
}

// Update PUT /api/sales/:id — revierte el efecto original y aplica el nuevo.
func (h *SaleHandler) Update(c *fiber.Ctx) error {
	var in dto.SaleRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, msgInvalidBody)
	}
	if err := validate.Struct(in); err != nil {
		return badRequest(c, msgInvalidBody)
	}
	if err := h.uc.Update(c.Params("id"), in); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c, "Vente non trouvée")
		}
		h.log.Error().Err(err).Msg("modificar venta")
		return serverError(c)
	}
	return okMessage(c, "Vente modifiée avec succès !")
}

// Delete DELETE /api/sales/:id
func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c, "Vente non trouvée")
		}
		h.log.Error().Err(err).Msg("eliminar venta")
		return serverError(c)
	}
	return c.JSON(dto.SuccessResponse{Success: true, Message: "Vente supprimée et stock restauré."})
}

// BySold GET /api/sales/bestsellers — productos ordenados por Sold.
func (h *SaleHandler) BySold(c *fiber.Ctx) error {
	out, err := h.uc.BySold()
	if err != nil {
		h.log.Error().Err(err).Msg("listar más vendidos")
		return serverError(c)
	}
	return c.JSON(out)
}
