package entity

import "github.com/shopspring/decimal"

// Product representa un producto del stock. Stock es la cantidad actual en
// existencia (puede ser negativa en los datos observados) y Sold el
// acumulado de unidades vendidas. History es el libro mayor append-only de
// cambios de cantidad y precio.
type Product struct {
	ID            FlexID          `json:"id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SalePrice     decimal.Decimal `json:"salePrice"`
	Stock         int             `json:"stock"`
	Sold          int             `json:"sold"`
	History       []StockEntry    `json:"history"`
}

// PriceChange es la instantánea antes/después de un cambio de precio.
type PriceChange struct {
	Before decimal.Decimal `json:"before"`
	After  decimal.Decimal `json:"after"`
}

// StockEntry es una entrada del historial de un producto. EntryID es el
// identificador sintético estable; las entradas heredadas pueden no traerlo
// y en ese caso se las referencia por igualdad exacta de Date.
type StockEntry struct {
	EntryID         string           `json:"entryId,omitempty"`
	Date            string           `json:"date"`
	Change          int              `json:"change"`
	StockBefore     int              `json:"stockBefore"`
	Kind            StockEventKind   `json:"kind,omitempty"`
	Note            string           `json:"note"`
	PurchasePrice   *decimal.Decimal `json:"purchasePrice,omitempty"`
	SalePrice       *decimal.Decimal `json:"salePrice,omitempty"`
	PriceChange     *PriceChange     `json:"priceChange,omitempty"`
	SalePriceChange *PriceChange     `json:"salePriceChange,omitempty"`
}

// EventKind devuelve el tipo de evento, recuperándolo de la nota cuando la
// entrada es heredada y no trae kind explícito.
func (e StockEntry) EventKind() StockEventKind {
	if e.Kind != "" {
		return e.Kind
	}
	return ParseKind(e.Note)
}

// Matches informa si la entrada corresponde al identificador dado: primero
// por EntryID y, para entradas heredadas sin id, por igualdad exacta de
// fecha.
func (e StockEntry) Matches(entryID, date string) bool {
	if entryID != "" && e.EntryID == entryID {
		return true
	}
	return entryID == "" && date != "" && e.Date == date
}
