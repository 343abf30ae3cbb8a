package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/application/usecase"
)

// AuthMiddleware exige la cookie de sesión admin firmada. La API es JSON
// pura: sin sesión responde 401, no redirige.
func AuthMiddleware(auth *usecase.AuthUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !auth.Verify(c.Cookies(authCookie)) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "Session invalide"})
		}
		return c.Next()
	}
}
