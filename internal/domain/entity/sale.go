package entity

import "github.com/shopspring/decimal"

// Medios de pago aceptados.
const (
	PaymentCash        = "cash"
	PaymentMobileMoney = "mobile money"
)

// Sale representa una línea de venta, de producto o de servicio. Produit es
// el *nombre* del producto vendido (no su id); el documento heredado
// referencia así y los reportes dependen de ello. Unlinked marca las ventas
// registradas sin que existiera el producto nombrado, caso en el que el
// stock queda intacto.
type Sale struct {
	ID        FlexID          `json:"id"`
	Produit   string          `json:"produit"`
	Name      string          `json:"name,omitempty"`
	Category  string          `json:"category"`
	Quantity  int             `json:"quantity"`
	SalePrice decimal.Decimal `json:"salePrice"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Payment   string          `json:"payment"`
	Date      string          `json:"date"`
	Unlinked  bool            `json:"unlinked,omitempty"`
}

// IsService informa si la venta corresponde a un servicio.
func (s Sale) IsService() bool { return s.Category == "service" }
