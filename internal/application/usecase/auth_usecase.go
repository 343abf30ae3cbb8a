package usecase

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/pkg/config"
	"github.com/jhoicas/Farmacia-api/pkg/jwt"
)

// AuthUseCase sesión del único usuario administrador. Verifica las
// credenciales configuradas y emite el token de sesión; el original
// comparaba contra constantes base64 empotradas y fijaba una cookie de valor
// constante.
type AuthUseCase struct {
	admin  config.AdminConfig
	jwtCfg config.JWTConfig
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(admin config.AdminConfig, jwtCfg config.JWTConfig) *AuthUseCase {
	return &AuthUseCase{admin: admin, jwtCfg: jwtCfg}
}

// Login valida usuario y contraseña y devuelve un JWT firmado. La contraseña
// se compara contra el hash bcrypt configurado si existe; si no, contra la
// contraseña plana de desarrollo en tiempo constante.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(in.Username), []byte(uc.admin.Username)) == 1
	if !userOK || !uc.passwordOK(in.Password) {
		return "", domain.ErrUnauthorized
	}
	return jwt.Generate(uc.jwtCfg.Secret, uc.admin.Username, uc.jwtCfg.Issuer, uc.jwtCfg.Expiration)
}

// Verify informa si el token de sesión es válido.
func (uc *AuthUseCase) Verify(token string) bool {
	if token == "" {
		return false
	}
	_, err := jwt.Parse(uc.jwtCfg.Secret, token)
	return err == nil
}

func (uc *AuthUseCase) passwordOK(password string) bool {
	if uc.admin.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(uc.admin.PasswordHash), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(uc.admin.Password)) == 1
}
