package usecase

import (
	"strconv"
	"time"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/infrastructure/storage"
)

// ServiceUseCase CRUD del catálogo de servicios. Sin estado derivado: la
// venta de un servicio pasa por el caso de uso de ventas.
type ServiceUseCase struct {
	db *storage.Database
}

// NewServiceUseCase construye el caso de uso.
func NewServiceUseCase(db *storage.Database) *ServiceUseCase {
	return &ServiceUseCase{db: db}
}

// List devuelve todos los servicios.
func (uc *ServiceUseCase) List() ([]entity.Service, error) {
	doc, err := uc.db.Read()
	if err != nil {
		return nil, err
	}
	return doc.Services, nil
}

// Create da de alta un servicio con id generado por el servidor (timestamp
// en milisegundos, mismo esquema que el documento heredado).
func (uc *ServiceUseCase) Create(in dto.CreateServiceRequest) (*entity.Service, error) {
	svc := entity.Service{
		ID:        entity.FlexID(strconv.FormatInt(time.Now().UnixMilli(), 10)),
		Name:      in.Name,
		ProduitID: entity.FlexID(in.ProduitID),
		Price:     in.Price,
		Info:      in.Info,
		Category:  "service",
	}
	err := uc.db.Update(func(doc *entity.Document) error {
		doc.Services = append(doc.Services, svc)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &svc, nil
}

// Update fusiona los campos presentes sobre el registro existente.
func (uc *ServiceUseCase) Update(id string, in dto.UpdateServiceRequest) error {
	return uc.db.Update(func(doc *entity.Document) error {
		for i := range doc.Services {
			if string(doc.Services[i].ID) != id {
				continue
			}
			s := &doc.Services[i]
			if in.Name != nil {
				s.Name = *in.Name
			}
			if in.ProduitID != nil {
				s.ProduitID = entity.FlexID(*in.ProduitID)
			}
			if in.Price != nil {
				s.Price = *in.Price
			}
			if in.Info != nil {
				s.Info = *in.Info
			}
			return nil
		}
		return domain.ErrNotFound
	})
}

// Delete elimina el servicio.
func (uc *ServiceUseCase) Delete(id string) error {
	return uc.db.Update(func(doc *entity.Document) error {
		for i := range doc.Services {
			if string(doc.Services[i].ID) == id {
				doc.Services = append(doc.Services[:i], doc.Services[i+1:]...)
				return nil
			}
		}
		return domain.ErrNotFound
	})
}
