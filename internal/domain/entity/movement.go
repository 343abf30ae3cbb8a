package entity

import "github.com/shopspring/decimal"

// Tipos de movimiento de caja.
const (
	MovementSpent    = "spent"    // gasto operativo
	MovementDisburse = "disburse" // desembolso de caja
)

// Movement representa una salida de caja fechada. No hay saldos derivados al
// escribir; los lectores (reporte de tesorería) agregan al consultar.
type Movement struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Date        string          `json:"date"`
}
