package usecase

import (
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/infrastructure/storage"
	"github.com/jhoicas/Farmacia-api/pkg/logger"
)

// SaleUseCase implementa el protocolo de consistencia venta/stock: toda alta,
// modificación o supresión de una venta produce su entrada de historial
// compensatoria en el producto afectado. En una modificación, el efecto
// original se revierte antes de aplicar el nuevo, y las entradas quedan en
// ese orden.
type SaleUseCase struct {
	db  *storage.Database
	log *logger.Logger
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(db *storage.Database, log *logger.Logger) *SaleUseCase {
	return &SaleUseCase{db: db, log: log}
}

// List devuelve todas las ventas.
func (uc *SaleUseCase) List() ([]entity.Sale, error) {
	doc, err := uc.db.Read()
	if err != nil {
		return nil, err
	}
	return doc.Sales, nil
}

// Create registra una venta y aplica su efecto al stock. Si el producto
// nombrado no existe, la venta se conserva marcada Unlinked y el stock queda
// intacto (decisión explícita: el flujo de venta de servicios depende de
// poder vender sin producto en stock).
func (uc *SaleUseCase) Create(in dto.SaleRequest) error {
	sale := saleFromRequest(in)
	if sale.ID == "" {
		sale.ID = entity.FlexID(strconv.FormatInt(time.Now().UnixMilli(), 10))
	}
	if sale.Date == "" {
		sale.Date = nowISO()
	}
	return uc.db.Update(func(doc *entity.Document) error {
		for i := range doc.Sales {
			if doc.Sales[i].ID == sale.ID {
				return domain.ErrDuplicate
			}
		}
		note := entity.NoteSale
		kind := entity.EventSale
		if sale.IsService() {
			note = entity.NoteServiceSale(sale.Name)
			kind = entity.EventServiceSale
		}
		uc.apply(doc, &sale, sale.Date, note, kind)
		doc.Sales = append(doc.Sales, sale)
		return nil
	})
}

// Update reemplaza una venta conservando su id. Primero revierte el efecto
// de la venta original sobre su producto, luego aplica el de la nueva sobre
// el producto (posiblemente distinto) que esta nombra. Ambas búsquedas son
// independientes y cada una puede no encontrar producto.
func (uc *SaleUseCase) Update(id string, in dto.SaleRequest) error {
	return uc.db.Update(func(doc *entity.Document) error {
		idx := findSale(doc, id)
		if idx == -1 {
			return domain.ErrNotFound
		}
		original := doc.Sales[idx]

		uc.reverse(doc, original, entity.NoteSaleReversal(id), entity.EventSaleReversal)

		updated := saleFromRequest(in)
		updated.ID = original.ID
		if updated.Date == "" {
			updated.Date = nowISO()
		}
		note := entity.NoteSaleEdit(id)
		if updated.IsService() {
			note = entity.NoteServiceSaleEdit(updated.Name, id)
		}
		uc.apply(doc, &updated, updated.Date, note, entity.EventSaleEdit)

		doc.Sales[idx] = updated
		return nil
	})
}

// Delete revierte el efecto de la venta sobre el stock y la elimina.
func (uc *SaleUseCase) Delete(id string) error {
	return uc.db.Update(func(doc *entity.Document) error {
		idx := findSale(doc, id)
		if idx == -1 {
			return domain.ErrNotFound
		}
		uc.reverse(doc, doc.Sales[idx], entity.NoteSaleDeletion(id), entity.EventSaleDeletion)
		doc.Sales = append(doc.Sales[:idx], doc.Sales[idx+1:]...)
		return nil
	})
}

// BySold devuelve los productos con ventas acumuladas, ordenados por Sold
// descendente (ruta heredada /api/sales/bestsellers).
func (uc *SaleUseCase) BySold() ([]entity.Product, error) {
	doc, err := uc.db.Read()
	if err != nil {
		return nil, err
	}
	out := make([]entity.Product, 0, len(doc.Stocks))
	for _, p := range doc.Stocks {
		if p.Sold > 0 {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Sold > out[j].Sold })
	return out, nil
}

// apply descuenta la cantidad vendida del producto nombrado y agrega la
// entrada de historial con change negativo. Marca la venta Unlinked cuando
// el producto no existe.
func (uc *SaleUseCase) apply(doc *entity.Document, sale *entity.Sale, date, note string, kind entity.StockEventKind) {
	p := doc.FindProductByName(sale.Produit)
	if p == nil {
		sale.Unlinked = true
		uc.log.Warn().Str("producto", sale.Produit).Str("venta", string(sale.ID)).
			Msg("venta sin producto en stock, se registra sin tocar el inventario")
		return
	}
	sale.Unlinked = false
	before := p.Stock
	p.Stock -= sale.Quantity
	p.Sold += sale.Quantity
	p.History = append(p.History, entity.StockEntry{
		EntryID:     uuid.NewString(),
		Date:        date,
		Change:      -sale.Quantity,
		StockBefore: before,
		Kind:        kind,
		Note:        note,
	})
}

// reverse repone la cantidad de una venta al producto y agrega la entrada de
// anulación con change positivo. No hace nada si el producto ya no existe.
func (uc *SaleUseCase) reverse(doc *entity.Document, sale entity.Sale, note string, kind entity.StockEventKind) {
	p := doc.FindProductByName(sale.Produit)
	if p == nil {
		uc.log.Warn().Str("producto", sale.Produit).Str("venta", string(sale.ID)).
			Msg("anulación sin producto en stock, no hay nada que reponer")
		return
	}
	before := p.Stock
	p.Stock += sale.Quantity
	p.Sold -= sale.Quantity
	p.History = append(p.History, entity.StockEntry{
		EntryID:     uuid.NewString(),
		Date:        nowISO(),
		Change:      sale.Quantity,
		StockBefore: before,
		Kind:        kind,
		Note:        note,
	})
}

func findSale(doc *entity.Document, id string) int {
	for i := range doc.Sales {
		if string(doc.Sales[i].ID) == id {
			return i
		}
	}
	return -1
}

func saleFromRequest(in dto.SaleRequest) entity.Sale {
	return entity.Sale{
		ID:        entity.FlexID(in.ID),
		Produit:   in.Produit,
		Name:      in.Name,
		Category:  in.Category,
		Quantity:  in.Quantity,
		SalePrice: in.SalePrice,
		UnitPrice: in.UnitPrice,
		Payment:   in.Payment,
		Date:      in.Date,
	}
}
