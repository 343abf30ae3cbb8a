package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/infrastructure/storage"
	"github.com/shopspring/decimal"
)

// MovementUseCase libro de movimientos de caja. Lista plana y append-only:
// los saldos no se mantienen al escribir, los agregan los lectores.
type MovementUseCase struct {
	db *storage.Database
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(db *storage.Database) *MovementUseCase {
	return &MovementUseCase{db: db}
}

// List devuelve todos los movimientos.
func (uc *MovementUseCase) List() ([]entity.Movement, error) {
	doc, err := uc.db.Read()
	if err != nil {
		return nil, err
	}
	return doc.Movements, nil
}

// CreateBatch valida el lote entero antes de insertar: o entran los N
// movimientos en una sola escritura del documento, o no entra ninguno.
func (uc *MovementUseCase) CreateBatch(in []dto.MovementRequest) ([]entity.Movement, error) {
	if len(in) == 0 {
		return nil, fmt.Errorf("%w: el lote está vacío", domain.ErrInvalidInput)
	}
	created := make([]entity.Movement, 0, len(in))
	for i, m := range in {
		if err := validateMovement(m); err != nil {
			return nil, fmt.Errorf("movimiento %d: %w", i+1, err)
		}
		date := m.Date
		if date == "" {
			date = nowISO()
		}
		created = append(created, entity.Movement{
			ID:          newMovementID(),
			Type:        m.Type,
			Description: m.Description,
			Price:       m.Price,
			Date:        date,
		})
	}
	err := uc.db.Update(func(doc *entity.Document) error {
		doc.Movements = append(doc.Movements, created...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update reemplaza un movimiento conservando su id.
func (uc *MovementUseCase) Update(id string, in dto.MovementRequest) error {
	if err := validateMovement(in); err != nil {
		return err
	}
	return uc.db.Update(func(doc *entity.Document) error {
		for i := range doc.Movements {
			if doc.Movements[i].ID != id {
				continue
			}
			date := in.Date
			if date == "" {
				date = doc.Movements[i].Date
			}
			doc.Movements[i] = entity.Movement{
				ID:          id,
				Type:        in.Type,
				Description: in.Description,
				Price:       in.Price,
				Date:        date,
			}
			return nil
		}
		return domain.ErrNotFound
	})
}

// Delete elimina el movimiento.
func (uc *MovementUseCase) Delete(id string) error {
	return uc.db.Update(func(doc *entity.Document) error {
		for i := range doc.Movements {
			if doc.Movements[i].ID == id {
				doc.Movements = append(doc.Movements[:i], doc.Movements[i+1:]...)
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

// SummaryByDay agrega los movimientos de un día (YYYY-MM-DD) por tipo, el
// cálculo que consume el reporte de tesorería.
func (uc *MovementUseCase) SummaryByDay(date string) (*dto.MovementSummary, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("%w: fecha inválida %q", domain.ErrInvalidInput, date)
	}
	doc, err := uc.db.Read()
	if err != nil {
		return nil, err
	}
	out := &dto.MovementSummary{Date: date, Spent: decimal.Zero, Disburse: decimal.Zero}
	for _, m := range doc.Movements {
		if !strings.HasPrefix(m.Date, date) {
			continue
		}
		switch m.Type {
		case entity.MovementSpent:
			out.Spent = out.Spent.Add(m.Price)
		case entity.MovementDisburse:
			out.Disburse = out.Disburse.Add(m.Price)
		}
	}
	return out, nil
}

func validateMovement(m dto.MovementRequest) error {
	if m.Type != entity.MovementSpent && m.Type != entity.MovementDisburse {
		return fmt.Errorf("%w: tipo de movimiento %q", domain.ErrInvalidInput, m.Type)
	}
	if strings.TrimSpace(m.Description) == "" {
		return fmt.Errorf("%w: descripción vacía", domain.ErrInvalidInput)
	}
	if !m.Price.IsPositive() {
		return fmt.Errorf("%w: el monto debe ser positivo", domain.ErrInvalidInput)
	}
	return nil
}

// newMovementID genera un id compuesto timestamp + sufijo aleatorio, mismo
// esquema resistente a colisiones del documento heredado.
func newMovementID() string {
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("%d%s", time.Now().UnixMilli(), suffix)
}
