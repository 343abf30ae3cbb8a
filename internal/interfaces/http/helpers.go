package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
)

// validate instancia compartida del validador de DTOs.
var validate = validator.New()

// Mensajes de cara al cliente. El frontend heredado está en francés y lee el
// campo message tal cual, así que se conservan los textos exactos.
const (
	msgInvalidBody = "Données invalides."
	msgServerError = "Erreur serveur"
)

// serverError responde 500 con un mensaje genérico. El detalle interno nunca
// viaja al cliente; queda en los logs.
func serverError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: msgServerError})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: message})
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: message})
}

func okMessage(c *fiber.Ctx, message string) error {
	return c.JSON(dto.MessageResponse{Message: message})
}
