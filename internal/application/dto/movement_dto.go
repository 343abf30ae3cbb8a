package dto

import "github.com/shopspring/decimal"

// MovementRequest un movimiento de caja dentro del lote de alta o de una
// modificación. El monto debe ser positivo; el signo lo da el tipo.
type MovementRequest struct {
	Type        string          `json:"type" validate:"required,oneof=spent disburse"`
	Description string          `json:"description" validate:"required"`
	Price       decimal.Decimal `json:"price"`
	Date        string          `json:"date,omitempty"`
}

// MovementSummary agregado de un día para el reporte de tesorería.
type MovementSummary struct {
	Date     string          `json:"date"`
	Spent    decimal.Decimal `json:"spent"`
	Disburse decimal.Decimal `json:"disburse"`
}
