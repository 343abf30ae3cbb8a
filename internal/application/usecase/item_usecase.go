package usecase

import (
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/infrastructure/storage"
)

// ItemUseCase lista genérica heredada del documento. Se conserva por
// compatibilidad; los flujos principales no la usan.
type ItemUseCase struct {
	db *storage.Database
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(db *storage.Database) *ItemUseCase {
	return &ItemUseCase{db: db}
}

// List devuelve todos los items.
func (uc *ItemUseCase) List() ([]map[string]any, error) {
	doc, err := uc.db.Read()
	if err != nil {
		return nil, err
	}
	return doc.Items, nil
}

// Add agrega un item tal cual llega.
func (uc *ItemUseCase) Add(item map[string]any) error {
	return uc.db.Update(func(doc *entity.Document) error {
		doc.Items = append(doc.Items, item)
		return nil
	})
}
