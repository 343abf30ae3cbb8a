package http

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/application/usecase"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/pkg/logger"
)

// authCookie nombre de la cookie de sesión, heredado del frontend.
const authCookie = "auth"

// AdminHandler sesión admin y operaciones sobre el archivo de base de datos.
type AdminHandler struct {
	auth  *usecase.AuthUseCase
	admin *usecase.AdminUseCase
	log   *logger.Logger
}

// NewAdminHandler construye el handler.
func NewAdminHandler(auth *usecase.AuthUseCase, admin *usecase.AdminUseCase, log *logger.Logger) *AdminHandler {
	return &AdminHandler{auth: auth, admin: admin, log: log}
}

// Login POST /api/login — credenciales válidas fijan la cookie de sesión
// firmada.
func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, msgInvalidBody)
	}
	if err := validate.Struct(in); err != nil {
		return badRequest(c, msgInvalidBody)
	}
	token, err := h.auth.Login(in)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.SuccessResponse{Success: false, Message: "Identifiants invalides"})
		}
		h.log.Error().Err(err).Msg("login admin")
		return serverError(c)
	}
	c.Cookie(&fiber.Cookie{
		Name:     authCookie,
		Value:    token,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(dto.SuccessResponse{Success: true})
}

// Logout POST /api/logout
func (h *AdminHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     authCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return c.JSON(dto.SuccessResponse{Success: true})
}

// CheckAuth GET /api/check-auth
func (h *AdminHandler) CheckAuth(c *fiber.Ctx) error {
	return c.JSON(dto.AuthStatusResponse{Authenticated: h.auth.Verify(c.Cookies(authCookie))})
}

// DownloadDB GET /api/download-db — descarga el archivo cifrado tal cual.
func (h *AdminHandler) DownloadDB(c *fiber.Ctx) error {
	path := h.admin.DatabasePath()
	if _, err := os.Stat(path); err != nil {
		return notFound(c, "Fichier db.enc non trouvé.")
	}
	return c.Download(path, "db.enc")
}

// ImportDB POST /api/import-db — reemplaza el archivo cifrado por el subido,
// tras verificar que descifra con la clave configurada.
func (h *AdminHandler) ImportDB(c *fiber.Ctx) error {
	file, err := c.FormFile("dbFile")
	if err != nil {
		return badRequest(c, "Aucun fichier reçu.")
	}
	src, err := file.Open()
	if err != nil {
		h.log.Error().Err(err).Msg("abrir archivo subido")
		return serverError(c)
	}
	defer src.Close()

	raw, err := io.ReadAll(src)
	if err != nil {
		h.log.Error().Err(err).Msg("leer archivo subido")
		return serverError(c)
	}
	if err := h.admin.Import(raw); err != nil {
		if errors.Is(err, domain.ErrStoreCorrupt) {
			return badRequest(c, "Fichier de base de données invalide.")
		}
		h.log.Error().Err(err).Msg("importar base de datos")
		return serverError(c)
	}
	return okMessage(c, "Base de données importée et remplacée avec succès.")
}

// HistoryImport GET /api/history-import
func (h *AdminHandler) HistoryImport(c *fiber.Ctx) error {
	out, err := h.admin.HistoryImport()
	if err != nil {
		h.log.Error().Err(err).Msg("historial de importaciones")
		return serverError(c)
	}
	return c.JSON(out)
}
