package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/application/usecase"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/pkg/logger"
)

// StockHandler maneja las peticiones HTTP del libro mayor de stock.
type StockHandler struct {
	uc  *usecase.StockUseCase
	log *logger.Logger
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *usecase.StockUseCase, log *logger.Logger) *StockHandler {
	return &StockHandler{uc: uc, log: log}
}

// List GET /api/stocks
func (h *StockHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		h.log.Error().Err(err).Msg("listar stocks")
		return serverError(c)
	}
	return c.JSON(out)
}

// Create POST /api/stocks
func (h *StockHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, msgInvalidBody)
	}
	if err := validate.Struct(in); err != nil {
		return badRequest(c, msgInvalidBody)
	}
	if err := h.uc.Create(in); err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicate):
			return badRequest(c, "Produit déjà existant.")
		case errors.Is(err, domain.ErrInvalidInput):
			return badRequest(c, "Historique incohérent.")
		}
		h.log.Error().Err(err).Msg("crear producto")
		return serverError(c)
	}
	return okMessage(c, "Produit ajouté au stock !")
}

// Update PUT /api/stocks/:id — reemplazo del registro completo, validado.
func (h *StockHandler) Update(c *fiber.Ctx) error {
	var in entity.Product
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, msgInvalidBody)
	}
	if err := h.uc.Replace(c.Params("id"), in); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return notFound(c, "Produit non trouvé.")
		case errors.Is(err, domain.ErrInvalidInput):
			return badRequest(c, "Historique incohérent.")
		}
		h.log.Error().Err(err).Msg("actualizar producto")
		return serverError(c)
	}
	return okMessage(c, "Produit mis à jour !")
}

// Delete DELETE /api/stocks/:id
func (h *StockHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c, "Produit non trouvé.")
		}
		h.log.Error().Err(err).Msg("eliminar producto")
		return serverError(c)
	}
	return okMessage(c, "Produit supprimé.")
}

// AppendHistory POST /api/stocks/:id/history
func (h *StockHandler) AppendHistory(c *fiber.Ctx) error {
	var in dto.AppendHistoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, msgInvalidBody)
	}
	if err := validate.Struct(in); err != nil {
		return badRequest(c, msgInvalidBody)
	}
	if err := h.uc.AppendHistory(c.Params("id"), in); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c, "Produit non trouvé.")
		}
		h.log.Error().Err(err).Msg("agregar entrada de historial")
		return serverError(c)
	}
	return okMessage(c, "Historique mis à jour.")
}

// Adjust POST /api/stocks/:id/adjust — ajuste por intención, el servidor
// calcula el delta y la entrada.
func (h *StockHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, msgInvalidBody)
	}
	if err := validate.Struct(in); err != nil {
		return badRequest(c, msgInvalidBody)
	}
	if err := h.uc.Adjust(c.Params("id"), in); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return notFound(c, "Produit non trouvé.")
		case errors.Is(err, domain.ErrInvalidInput):
			return badRequest(c, msgInvalidBody)
		}
		h.log.Error().Err(err).Msg("ajustar stock")
		return serverError(c)
	}
	return okMessage(c, "Stock ajusté.")
}

// UpdateHistoryEntry PUT /api/stocks/:id/history/entry
func (h *StockHandler) UpdateHistoryEntry(c *fiber.Ctx) error {
	var in dto.UpdateHistoryEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, msgInvalidBody)
	}
	if in.EntryID == "" && in.Date == "" {
		return badRequest(c, msgInvalidBody)
	}
	if err := h.uc.UpdateHistoryEntry(c.Params("id"), in); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c, "Entrée d'historique non trouvée.")
		}
		h.log.Error().Err(err).Msg("editar entrada de historial")
		return serverError(c)
	}
	return okMessage(c, "Historique mis à jour.")
}

// DeleteHistoryEntry DELETE /api/stocks/:id/history/entry
func (h *StockHandler) DeleteHistoryEntry(c *fiber.Ctx) error {
	var in dto.DeleteHistoryEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, msgInvalidBody)
	}
	if in.EntryID == "" && in.Date == "" {
		return badRequest(c, msgInvalidBody)
	}
	if err := h.uc.DeleteHistoryEntry(c.Params("id"), in); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c, "Entrée d'historique non trouvée.")
		}
		h.log.Error().Err(err).Msg("eliminar entrada de historial")
		return serverError(c)
	}
	return okMessage(c, "Entrée supprimée.")
}
