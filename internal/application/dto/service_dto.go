package dto

import "github.com/shopspring/decimal"

// CreateServiceRequest alta de servicio. ProduitID referencia el producto
// asociado/consumido por el servicio.
type CreateServiceRequest struct {
	Name      string          `json:"name" validate:"required"`
	ProduitID string          `json:"produitId" validate:"required"`
	Price     decimal.Decimal `json:"price"`
	Info      string          `json:"info,omitempty"`
}

// UpdateServiceRequest modificación parcial: solo los campos presentes se
// fusionan sobre el registro existente.
type UpdateServiceRequest struct {
	Name      *string          `json:"name,omitempty"`
	ProduitID *string          `json:"produitId,omitempty"`
	Price     *decimal.Decimal `json:"price,omitempty"`
	Info      *string          `json:"info,omitempty"`
}
