package dto

// LoginRequest credenciales de la sesión admin.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthStatusResponse resultado de check-auth.
type AuthStatusResponse struct {
	Authenticated bool `json:"authenticated"`
}
