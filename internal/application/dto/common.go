package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// MessageResponse cuerpo de confirmación simple, el contrato del frontend
// heredado ({message}).
type MessageResponse struct {
	Message string `json:"message"`
}

// SuccessResponse cuerpo con bandera de éxito y datos opcionales (lo usa el
// alta por lote de movimientos).
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}
