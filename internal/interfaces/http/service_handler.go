package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/application/usecase"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/pkg/logger"
)

// ServiceHandler maneja las peticiones HTTP del catálogo de servicios.
type ServiceHandler struct {
	uc  *usecase.ServiceUseCase
	log *logger.Logger
}

// NewServiceHandler construye el handler.
func NewServiceHandler(uc *usecase.ServiceUseCase, log *logger.Logger) *ServiceHandler {
	return &ServiceHandler{uc: uc, log: log}
}

// List GET /api/services
func (h *ServiceHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		h.log.Error().Err(err).Msg("listar servicios")
		return serverError(c)
	}
	return c.JSON(out)
}

// Create POST /api/services
func (h *ServiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateServiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Champs requis manquants ou invalides.")
	}
	if err := validate.Struct(in); err != nil {
		return badRequest(c, "Champs requis manquants ou invalides.")
	}
	if _, err := h.uc.Create(in); err != nil {
		h.log.Error().Err(err).Msg("crear servicio")
		return serverError(c)
	}
	return okMessage(c, "Service enregistré !")
}

// Update PUT /api/services/:id
func (h *ServiceHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateServiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, msgInvalidBody)
	}
	if err := h.uc.Update(c.Params("id"), in); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c, "Service non trouvé.")
		}
		h.log.Error().Err(err).Msg("modificar servicio")
		return serverError(c)
	}
	return okMessage(c, "Service modifié.")
}

// Delete DELETE /api/services/:id
func (h *ServiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c, "Service non trouvé.")
		}
		h.log.Error().Err(err).Msg("eliminar servicio")
		return serverError(c)
	}
	return okMessage(c, "Service supprimé.")
}
