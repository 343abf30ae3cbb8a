package usecase

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/infrastructure/storage"
)

const uncategorized = "Non catégorisé"

// BestsellerUseCase reporte derivado, solo lectura: ranking de productos por
// cantidad total vendida, calculado desde las ventas y enriquecido con los
// datos del stock.
type BestsellerUseCase struct {
	db *storage.Database
}

// NewBestsellerUseCase construye el caso de uso.
func NewBestsellerUseCase(db *storage.Database) *BestsellerUseCase {
	return &BestsellerUseCase{db: db}
}

// Compute agrega las ventas por nombre de producto. Una venta sin producto
// nombrado se ignora; un producto ausente del stock aparece con la categoría
// de relleno heredada.
func (uc *BestsellerUseCase) Compute() ([]dto.BestsellerEntry, error) {
	doc, err := uc.db.Read()
	if err != nil {
		return nil, err
	}

	type stockInfo struct {
		category  string
		stock     int
		unitPrice decimal.Decimal
	}
	byName := make(map[string]stockInfo, len(doc.Stocks))
	for _, p := range doc.Stocks {
		cat := p.Category
		if cat == "" {
			cat = uncategorized
		}
		byName[p.Name] = stockInfo{category: cat, stock: p.Stock, unitPrice: p.SalePrice}
	}

	totals := make(map[string]*dto.BestsellerEntry)
	order := make([]string, 0)
	for _, sale := range doc.Sales {
		if sale.Produit == "" {
			continue
		}
		qty := sale.Quantity
		if qty == 0 {
			qty = 1
		}
		entry, ok := totals[sale.Produit]
		if !ok {
			info, found := byName[sale.Produit]
			if !found {
				info = stockInfo{category: uncategorized, unitPrice: decimal.Zero}
			}
			entry = &dto.BestsellerEntry{
				Name:         sale.Produit,
				TotalRevenue: decimal.Zero,
				Category:     info.category,
				Stock:        info.stock,
				UnitPrice:    info.unitPrice,
			}
			totals[sale.Produit] = entry
			order = append(order, sale.Produit)
		}
		price := sale.UnitPrice
		if price.IsZero() {
			price = sale.SalePrice
		}
		entry.TotalQuantity += qty
		entry.TotalRevenue = entry.TotalRevenue.Add(price.Mul(decimal.NewFromInt(int64(qty))))
	}

	out := make([]dto.BestsellerEntry, 0, len(order))
	for _, name := range order {
		out = append(out, *totals[name])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].TotalQuantity > out[j].TotalQuantity })
	return out, nil
}
