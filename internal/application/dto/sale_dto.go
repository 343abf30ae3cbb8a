package dto

import "github.com/shopspring/decimal"

// SaleRequest alta o reemplazo de una venta. Produit es el nombre del
// producto del stock; para ventas de servicio, Name lleva el nombre del
// servicio y Category es "service".
type SaleRequest struct {
	ID        string          `json:"id"`
	Produit   string          `json:"produit"`
	Name      string          `json:"name,omitempty"`
	Category  string          `json:"category"`
	Quantity  int             `json:"quantity" validate:"required,min=1"`
	SalePrice decimal.Decimal `json:"salePrice"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Payment   string          `json:"payment" validate:"omitempty,oneof='cash' 'mobile money'"`
	Date      string          `json:"date"`
}

// BestsellerEntry agregado de ventas por producto, ordenado por cantidad
// total vendida. Mismo contrato JSON que el reporte original.
type BestsellerEntry struct {
	Name          string          `json:"name"`
	TotalQuantity int             `json:"totalQuantity"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	Category      string          `json:"category"`
	Stock         int             `json:"stock"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
}
