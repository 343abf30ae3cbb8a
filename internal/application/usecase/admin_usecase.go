package usecase

import (
	"github.com/jhoicas/Farmacia-api/internal/infrastructure/storage"
)

// AdminUseCase operaciones administrativas sobre el archivo de base de
// datos: exportación, importación verificada y consulta del historial de
// importaciones de catálogo.
type AdminUseCase struct {
	db *storage.Database
}

// NewAdminUseCase construye el caso de uso.
func NewAdminUseCase(db *storage.Database) *AdminUseCase {
	return &AdminUseCase{db: db}
}

// DatabasePath ruta del archivo cifrado para la descarga.
func (uc *AdminUseCase) DatabasePath() string {
	return uc.db.Path()
}

// Import reemplaza el archivo cifrado por el contenido subido. El contenido
// se descifra y parsea con la clave configurada antes de tocar el archivo;
// una subida con clave ajena o datos dañados se rechaza.
func (uc *AdminUseCase) Import(raw []byte) error {
	return uc.db.ImportRaw(raw)
}

// HistoryImport lista de eventos de importación de catálogo. La pobla un
// colaborador externo; aquí solo se lee.
func (uc *AdminUseCase) HistoryImport() ([]map[string]any, error) {
	doc, err := uc.db.Read()
	if err != nil {
		return nil, err
	}
	return doc.HistoryImport, nil
}
