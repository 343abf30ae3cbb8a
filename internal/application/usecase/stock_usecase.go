package usecase

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/infrastructure/storage"
	"github.com/jhoicas/Farmacia-api/pkg/logger"
)

// StockUseCase mantiene el libro mayor de stock: cantidad y precios por
// producto más el historial append-only de cada mutación.
type StockUseCase struct {
	db  *storage.Database
	log *logger.Logger
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(db *storage.Database, log *logger.Logger) *StockUseCase {
	return &StockUseCase{db: db, log: log}
}

// List devuelve todos los productos.
func (uc *StockUseCase) List() ([]entity.Product, error) {
	doc, err := uc.db.Read()
	if err != nil {
		return nil, err
	}
	return doc.Stocks, nil
}

// Create da de alta un producto. La unicidad se exige por id (el original la
// exigía por nombre en una ruta y por id en otra); una colisión de nombre
// solo se registra como advertencia. Si el cliente no sembró historial, el
// servidor siembra la entrada de creación inicial con change igual al stock
// inicial.
func (uc *StockUseCase) Create(in dto.CreateProductRequest) error {
	return uc.db.Update(func(doc *entity.Document) error {
		if doc.FindProduct(in.ID) != nil {
			return domain.ErrDuplicate
		}
		for i := range doc.Stocks {
			if strings.EqualFold(doc.Stocks[i].Name, in.Name) {
				uc.log.Warn().Str("producto", in.Name).Msg("nombre de producto duplicado, se permite el alta")
				break
			}
		}

		p := entity.Product{
			ID:            entity.FlexID(in.ID),
			Name:          in.Name,
			Category:      in.Category,
			PurchasePrice: in.PurchasePrice,
			SalePrice:     in.SalePrice,
			Stock:         in.Stock,
			History:       in.History,
		}
		if len(p.History) == 0 {
			purch, sale := in.PurchasePrice, in.SalePrice
			p.History = []entity.StockEntry{{
				EntryID:       uuid.NewString(),
				Date:          nowISO(),
				Change:        in.Stock,
				StockBefore:   0,
				Kind:          entity.EventInitial,
				Note:          entity.NoteInitial,
				PurchasePrice: &purch,
				SalePrice:     &sale,
			}}
		} else {
			ensureEntryIDs(p.History)
			if err := validateHistory(p.History, p.Stock); err != nil {
				return err
			}
		}
		doc.Stocks = append(doc.Stocks, p)
		return nil
	})
}

// Replace reemplaza el registro completo del producto (contrato PUT
// heredado), pero ya no a ciegas: el historial suministrado debe ser
// cronológicamente no decreciente y su suma de cambios debe coincidir con el
// stock declarado.
func (uc *StockUseCase) Replace(id string, in entity.Product) error {
	return uc.db.Update(func(doc *entity.Document) error {
		idx := -1
		for i := range doc.Stocks {
			if string(doc.Stocks[i].ID) == id {
				idx = i
				break
			}
		}
		if idx == -1 {
			return domain.ErrNotFound
		}
		ensureEntryIDs(in.History)
		if err := validateHistory(in.History, in.Stock); err != nil {
			return err
		}
		in.ID = doc.Stocks[idx].ID
		doc.Stocks[idx] = in
		return nil
	})
}

// Delete elimina el producto. Las ventas y servicios que lo referencian por
// nombre/id quedan huérfanos; los lectores lo toleran.
func (uc *StockUseCase) Delete(id string) error {
	return uc.db.Update(func(doc *entity.Document) error {
		for i := range doc.Stocks {
			if string(doc.Stocks[i].ID) == id {
				doc.Stocks = append(doc.Stocks[:i], doc.Stocks[i+1:]...)
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

// AppendHistory agrega una entrada al historial y ajusta el stock por su
// change. Una fecha anterior al día en curso marca la entrada como
// retroactiva con el prefijo heredado.
func (uc *StockUseCase) AppendHistory(id string, in dto.AppendHistoryRequest) error {
	return uc.db.Update(func(doc *entity.Document) error {
		p := doc.FindProduct(id)
		if p == nil {
			return domain.ErrNotFound
		}

		date := in.Date
		if date == "" {
			date = nowISO()
		}
		note, kind := in.Note, in.Kind
		if kind == "" {
			kind = entity.ParseKind(note)
		}
		if isBackdated(date) && kind != entity.EventRetroactive {
			note = entity.NoteRetroactive(note)
			kind = entity.EventRetroactive
		}

		entry := entity.StockEntry{
			EntryID:       uuid.NewString(),
			Date:          date,
			Change:        in.Change,
			StockBefore:   p.Stock,
			Kind:          kind,
			Note:          note,
			PurchasePrice: in.PurchasePrice,
			SalePrice:     in.SalePrice,
		}
		if in.PurchasePrice != nil && !in.PurchasePrice.Equal(p.PurchasePrice) {
			entry.PriceChange = &entity.PriceChange{Before: p.PurchasePrice, After: *in.PurchasePrice}
			p.PurchasePrice = *in.PurchasePrice
		}
		if in.SalePrice != nil && !in.SalePrice.Equal(p.SalePrice) {
			entry.SalePriceChange = &entity.PriceChange{Before: p.SalePrice, After: *in.SalePrice}
			p.SalePrice = *in.SalePrice
		}

		p.Stock += in.Change
		p.History = append(p.History, entry)
		return nil
	})
}

// Adjust ajusta el stock a partir de una intención: "+5" y "-3" son deltas,
// un número sin signo es el valor objetivo. El servidor calcula el delta y
// genera la entrada; el navegador ya no computa historiales.
func (uc *StockUseCase) Adjust(id string, in dto.AdjustStockRequest) error {
	return uc.db.Update(func(doc *entity.Document) error {
		p := doc.FindProduct(id)
		if p == nil {
			return domain.ErrNotFound
		}

		delta, err := evalExpression(in.Expression, p.Stock)
		if err != nil {
			return err
		}

		note := in.Note
		if note == "" {
			note = entity.NoteAdjustment(in.Expression)
		}
		kind := entity.EventAdjustment
		date := in.Date
		if date == "" {
			date = nowISO()
		} else if isBackdated(date) {
			note = entity.NoteRetroactive(note)
			kind = entity.EventRetroactive
		}

		p.History = append(p.History, entity.StockEntry{
			EntryID:     uuid.NewString(),
			Date:        date,
			Change:      delta,
			StockBefore: p.Stock,
			Kind:        kind,
			Note:        note,
		})
		p.Stock += delta
		return nil
	})
}

// UpdateHistoryEntry edita una entrada puntual. El stock del producto se
// ajusta exactamente por (nuevo change − change anterior); las demás
// entradas no se tocan.
func (uc *StockUseCase) UpdateHistoryEntry(id string, in dto.UpdateHistoryEntryRequest) error {
	return uc.db.Update(func(doc *entity.Document) error {
		p := doc.FindProduct(id)
		if p == nil {
			return domain.ErrNotFound
		}
		entry := findEntry(p, in.EntryID, in.Date)
		if entry == nil {
			return domain.ErrNotFound
		}

		if in.NewQty != nil {
			p.Stock += *in.NewQty - entry.Change
			entry.Change = *in.NewQty
		}
		if in.NewPurch != nil {
			if !in.NewPurch.Equal(p.PurchasePrice) {
				entry.PriceChange = &entity.PriceChange{Before: p.PurchasePrice, After: *in.NewPurch}
				p.PurchasePrice = *in.NewPurch
			}
			entry.PurchasePrice = in.NewPurch
		}
		if in.NewSale != nil {
			if !in.NewSale.Equal(p.SalePrice) {
				entry.SalePriceChange = &entity.PriceChange{Before: p.SalePrice, After: *in.NewSale}
				p.SalePrice = *in.NewSale
			}
			entry.SalePrice = in.NewSale
		}
		return nil
	})
}

// DeleteHistoryEntry elimina una entrada puntual restando su change del
// stock.
func (uc *StockUseCase) DeleteHistoryEntry(id string, in dto.DeleteHistoryEntryRequest) error {
	return uc.db.Update(func(doc *entity.Document) error {
		p := doc.FindProduct(id)
		if p == nil {
			return domain.ErrNotFound
		}
		for i := range p.History {
			if p.History[i].Matches(in.EntryID, in.Date) {
				p.Stock -= p.History[i].Change
				p.History = append(p.History[:i], p.History[i+1:]...)
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

func findEntry(p *entity.Product, entryID, date string) *entity.StockEntry {
	for i := range p.History {
		if p.History[i].Matches(entryID, date) {
			return &p.History[i]
		}
	}
	return nil
}

func ensureEntryIDs(history []entity.StockEntry) {
	for i := range history {
		if history[i].EntryID == "" {
			history[i].EntryID = uuid.NewString()
		}
	}
}

// validateHistory rechaza un historial cuyo orden cronológico decrece o cuya
// suma acumulada de cambios no coincide con el stock declarado.
func validateHistory(history []entity.StockEntry, stock int) error {
	sum := 0
	var prev time.Time
	for i, e := range history {
		sum += e.Change
		t, ok := parseISO(e.Date)
		if !ok {
			continue
		}
		if i > 0 && !prev.IsZero() && t.Before(prev) {
			return fmt.Errorf("%w: historial fuera de orden cronológico", domain.ErrInvalidInput)
		}
		prev = t
	}
	if sum != stock {
		return fmt.Errorf("%w: la suma del historial (%d) no coincide con el stock (%d)", domain.ErrInvalidInput, sum, stock)
	}
	return nil
}

// evalExpression evalúa la expresión de ajuste contra el stock actual y
// devuelve el delta a aplicar.
func evalExpression(expr string, current int) (int, error) {
	s := strings.TrimSpace(expr)
	if s == "" {
		return 0, fmt.Errorf("%w: expresión vacía", domain.ErrInvalidInput)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: expresión de stock no reconocida: %q", domain.ErrInvalidInput, expr)
	}
	if s[0] == '+' || s[0] == '-' {
		return n, nil
	}
	return n - current, nil
}

func nowISO() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000Z")
}

func parseISO(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// isBackdated informa si la fecha cae antes del día en curso (UTC).
func isBackdated(date string) bool {
	t, ok := parseISO(date)
	if !ok {
		return false
	}
	y, m, d := time.Now().UTC().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return t.Before(today)
}
