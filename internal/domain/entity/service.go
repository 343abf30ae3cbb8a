package entity

import "github.com/shopspring/decimal"

// Service representa un servicio del catálogo (consulta, inyección, etc.)
// asociado opcionalmente a un producto consumido.
type Service struct {
	ID        FlexID          `json:"id"`
	Name      string          `json:"name"`
	ProduitID FlexID          `json:"produitId"`
	Price     decimal.Decimal `json:"price"`
	Info      string          `json:"info,omitempty"`
	Category  string          `json:"category"` // siempre "service"
}
