package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/application/usecase"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// El alta sin historial sembrado genera la entrada de creación inicial con
// change igual al stock declarado.
func TestStockCreate_SeedsInitialHistory(t *testing.T) {
	db := newTestDB(t)
	uc := usecase.NewStockUseCase(db, nopLog())

	createProduct(t, uc, "p1", "Paracétamol", 100)

	p := getProduct(t, db, "p1")
	assert.Equal(t, 100, p.Stock)
	require.Len(t, p.History, 1)
	e := p.History[0]
	assert.Equal(t, 100, e.Change)
	assert.Equal(t, 0, e.StockBefore)
	assert.Equal(t, entity.EventInitial, e.Kind)
	assert.Equal(t, entity.NoteInitial, e.Note)
	assert.NotEmpty(t, e.EntryID)
}

// Un segundo alta con el mismo id se rechaza y el producto existente queda
// exactamente como estaba.
func TestStockCreate_RejectsDuplicateID(t *testing.T) {
	db := newTestDB(t)
	uc := usecase.NewStockUseCase(db, nopLog())
	createProduct(t, uc, "p1", "Paracétamol", 100)

	err := uc.Create(dto.CreateProductRequest{ID: "p1", Name: "Otro", Stock: 999})
	require.ErrorIs(t, err, domain.ErrDuplicate)

	p := getProduct(t, db, "p1")
	assert.Equal(t, "Paracétamol", p.Name)
	assert.Equal(t, 100, p.Stock)
	assert.Len(t, p.History, 1)
}

// Agregar una entrada de historial ajusta el stock por su change y conserva
// la instantánea StockBefore.
func TestStockAppendHistory(t *testing.T) {
	db := newTestDB(t)
	uc := usecase.NewStockUseCase(db, nopLog())
	createProduct(t, uc, "p1", "Paracétamol", 10)

	err := uc.AppendHistory("p1", dto.AppendHistoryRequest{Change: 20, Note: "Commande"})
	require.NoError(t, err)

	p := getProduct(t, db, "p1")
	assert.Equal(t, 30, p.Stock)
	require.Len(t, p.History, 2)
	last := p.History[1]
	assert.Equal(t, 20, last.Change)
	assert.Equal(t, 10, last.StockBefore)
	assert.Equal(t, entity.EventOrder, last.Kind, "la nota heredada se clasifica por prefijo")
}

// Una entrada que trae precio nuevo registra la transición antes/después y
// actualiza el precio vigente del producto.
func TestStockAppendHistory_RecordsPriceChange(t *testing.T) {
	db := newTestDB(t)
	uc := usecase.NewStockUseCase(db, nopLog())
	createProduct(t, uc, "p1", "Paracétamol", 10)

	newSale := decimal.NewFromInt(1500)
	err := uc.AppendHistory("p1", dto.AppendHistoryRequest{
		Change:    0,
		Note:      entity.NoteSalePriceChange,
		SalePrice: &newSale,
	})
	require.NoError(t, err)

	p := getProduct(t, db, "p1")
	assert.True(t, p.SalePrice.Equal(newSale))
	require.Len(t, p.History, 2)
	pc := p.History[1].SalePriceChange
	require.NotNil(t, pc)
	assert.True(t, pc.Before.Equal(decimal.NewFromInt(1000)))
	assert.True(t, pc.After.Equal(newSale))
	assert.Equal(t, 10, p.Stock, "un cambio de precio no mueve el stock")
}

// Editar una entrada ajusta el stock exactamente por la diferencia entre el
// change nuevo y el anterior; el resto del historial no se toca.
func TestStockUpdateHistoryEntry_AdjustsByDelta(t *testing.T) {
	db := newTestDB(t)
	uc := usecase.NewStockUseCase(db, nopLog())
	createProduct(t, uc, "p1", "Paracétamol", 10)
	require.NoError(t, uc.AppendHistory("p1", dto.AppendHistoryRequest{Change: 5, Note: "Commande"}))

	p := getProduct(t, db, "p1")
	require.Equal(t, 15, p.Stock)
	entryID := p.History[1].EntryID

	newQty := 8
	err := uc.UpdateHistoryEntry("p1", dto.UpdateHistoryEntryRequest{EntryID: entryID, NewQty: &newQty})
	require.NoError(t, err)

	p = getProduct(t, db, "p1")
	assert.Equal(t, 18, p.Stock, "15 + (8 - 5)")
	assert.Equal(t, 8, p.History[1].Change)
	assert.Equal(t, 10, p.History[0].Change, "la entrada inicial no se toca")
}

// Borrar una entrada resta su change del stock y la quita del historial.
func TestStockDeleteHistoryEntry(t *testing.T) {
	db := newTestDB(t)
	uc := usecase.NewStockUseCase(db, nopLog())
	createProduct(t, uc, "p1", "Paracétamol", 10)
	require.NoError(t, uc.AppendHistory("p1", dto.AppendHistoryRequest{Change: 5, Note: "Commande"}))

	p := getProduct(t, db, "p1")
	entryID := p.History[1].EntryID

	require.NoError(t, uc.DeleteHistoryEntry("p1", dto.DeleteHistoryEntryRequest{EntryID: entryID}))

	p = getProduct(t, db, "p1")
	assert.Equal(t, 10, p.Stock)
	assert.Len(t, p.History, 1)
}

// El reemplazo completo valida el historial suministrado: suma coherente con
// el stock y orden cronológico no decreciente.
func TestStockReplace_ValidatesHistory(t *testing.T) {
	db := newTestDB(t)
	uc := usecase.NewStockUseCase(db, nopLog())
	createProduct(t, uc, "p1", "Paracétamol", 10)

	// Suma (7) distinta del stock declarado (10).
	err := uc.Replace("p1", entity.Product{
		ID: "p1", Name: "Paracétamol", Stock: 10,
		History: []entity.StockEntry{{Date: "2026-01-01T00:00:00.000Z", Change: 7, Note: entity.NoteInitial}},
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	// Fechas fuera de orden.
	err = uc.Replace("p1", entity.Product{
		ID: "p1", Name: "Paracétamol", Stock: 10,
		History: []entity.StockEntry{
			{Date: "2026-02-01T00:00:00.000Z", Change: 7, Note: entity.NoteInitial},
			{Date: "2026-01-01T00:00:00.000Z", Change: 3, Note: "Commande"},
		},
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	// Historial coherente: se acepta y conserva el id original.
	err = uc.Replace("p1", entity.Product{
		Name: "Paracétamol", Stock: 10,
		History: []entity.StockEntry{
			{Date: "2026-01-01T00:00:00.000Z", Change: 7, Note: entity.NoteInitial},
			{Date: "2026-02-01T00:00:00.000Z", Change: 3, Note: "Commande"},
		},
	})
	require.NoError(t, err)
	p := getProduct(t, db, "p1")
	assert.Equal(t, entity.FlexID("p1"), p.ID)
	require.Len(t, p.History, 2)
	assert.NotEmpty(t, p.History[0].EntryID, "las entradas sin id reciben uno")
}

// El ajuste por expresión: con signo es delta, sin signo es valor objetivo.
func TestStockAdjust_Expressions(t *testing.T) {
	db := newTestDB(t)
	uc := usecase.NewStockUseCase(db, nopLog())
	createProduct(t, uc, "p1", "Paracétamol", 10)

	require.NoError(t, uc.Adjust("p1", dto.AdjustStockRequest{Expression: "+5"}))
	assert.Equal(t, 15, getProduct(t, db, "p1").Stock)

	require.NoError(t, uc.Adjust("p1", dto.AdjustStockRequest{Expression: "-3"}))
	assert.Equal(t, 12, getProduct(t, db, "p1").Stock)

	require.NoError(t, uc.Adjust("p1", dto.AdjustStockRequest{Expression: "20"}))
	p := getProduct(t, db, "p1")
	assert.Equal(t, 20, p.Stock)
	require.Len(t, p.History, 4)
	assert.Equal(t, 8, p.History[3].Change, "el valor objetivo se traduce a delta")
	assert.Equal(t, entity.EventAdjustment, p.History[3].Kind)

	err := uc.Adjust("p1", dto.AdjustStockRequest{Expression: "abc"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Un ajuste con fecha anterior al día en curso queda marcado como
// retroactivo con el prefijo heredado.
func TestStockAdjust_BackdatedIsRetroactive(t *testing.T) {
	db := newTestDB(t)
	uc := usecase.NewStockUseCase(db, nopLog())
	createProduct(t, uc, "p1", "Paracétamol", 10)

	err := uc.Adjust("p1", dto.AdjustStockRequest{Expression: "+5", Date: "2020-03-01T00:00:00.000Z"})
	require.NoError(t, err)

	p := getProduct(t, db, "p1")
	last := p.History[len(p.History)-1]
	assert.Equal(t, entity.EventRetroactive, last.Kind)
	assert.Contains(t, last.Note, "Modification rétroactive - ")
}

func TestStockDelete(t *testing.T) {
	db := newTestDB(t)
	uc := usecase.NewStockUseCase(db, nopLog())
	createProduct(t, uc, "p1", "Paracétamol", 10)

	require.NoError(t, uc.Delete("p1"))
	require.ErrorIs(t, uc.Delete("p1"), domain.ErrNotFound)

	list, err := uc.List()
	require.NoError(t, err)
	assert.Empty(t, list)
}
