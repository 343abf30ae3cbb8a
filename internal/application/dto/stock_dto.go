package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// CreateProductRequest alta de producto. El historial puede venir ya
// sembrado por el cliente; si falta, el servidor siembra la entrada de
// creación inicial.
type CreateProductRequest struct {
	ID            string              `json:"id" validate:"required"`
	Name          string              `json:"name" validate:"required"`
	Category      string              `json:"category"`
	PurchasePrice decimal.Decimal     `json:"purchasePrice"`
	SalePrice     decimal.Decimal     `json:"salePrice"`
	Stock         int                 `json:"stock"`
	History       []entity.StockEntry `json:"history,omitempty"`
}

// AppendHistoryRequest agrega una entrada al historial y ajusta el stock.
// Change puede ser 0 para eventos sin cantidad (cambios de precio). Una
// fecha anterior al día actual marca la entrada como retroactiva.
type AppendHistoryRequest struct {
	Change        int                   `json:"change"`
	Note          string                `json:"note" validate:"required"`
	Kind          entity.StockEventKind `json:"kind,omitempty"`
	Date          string                `json:"date,omitempty"`
	PurchasePrice *decimal.Decimal      `json:"purchasePrice,omitempty"`
	SalePrice     *decimal.Decimal      `json:"salePrice,omitempty"`
}

// AdjustStockRequest ajuste de stock por intención: el servidor evalúa la
// expresión ("+5", "-3" o un valor absoluto) y genera la entrada él mismo,
// en lugar de confiar en un historial calculado por el navegador.
type AdjustStockRequest struct {
	Expression string `json:"expression" validate:"required"`
	Note       string `json:"note,omitempty"`
	Date       string `json:"date,omitempty"`
}

// UpdateHistoryEntryRequest edición puntual de una entrada, referenciada por
// entryId o, para entradas heredadas sin id, por igualdad exacta de fecha.
type UpdateHistoryEntryRequest struct {
	EntryID  string           `json:"entryId,omitempty"`
	Date     string           `json:"date,omitempty"`
	NewQty   *int             `json:"newQty,omitempty"`
	NewPurch *decimal.Decimal `json:"newPurch,omitempty"`
	NewSale  *decimal.Decimal `json:"newSale,omitempty"`
}

// DeleteHistoryEntryRequest borrado puntual de una entrada del historial.
type DeleteHistoryEntryRequest struct {
	EntryID string `json:"entryId,omitempty"`
	Date    string `json:"date,omitempty"`
}
