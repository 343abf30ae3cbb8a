package storage

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/pkg/logger"
)

// Database es la fachada sobre el almacén cifrado. Es la única escritora del
// archivo y serializa cada ciclo leer-mutar-escribir con un mutex de proceso,
// de modo que dos peticiones concurrentes nunca se pisan la escritura del
// documento completo (el original perdía la primera de dos escrituras
// solapadas).
type Database struct {
	file   *EncryptedFile
	verify bool
	log    *logger.Logger

	mu     sync.Mutex
	writes prometheus.Counter // opcional
}

// Open construye la fachada y ejecuta la migración única del archivo JSON
// plano heredado. Un fallo de migración se devuelve al llamador y debe ser
// fatal: un estado a medio migrar no puede continuar en silencio.
func Open(file *EncryptedFile, legacyPath string, verifySignature bool, log *logger.Logger) (*Database, error) {
	d := &Database{file: file, verify: verifySignature, log: log}
	if err := d.migrate(legacyPath); err != nil {
		return nil, fmt.Errorf("migración de %s: %w", legacyPath, err)
	}
	return d, nil
}

// SetWriteCounter registra un contador Prometheus que se incrementa por cada
// escritura persistida.
func (d *Database) SetWriteCounter(c prometheus.Counter) { d.writes = c }

// Path devuelve la ruta del archivo cifrado (descarga/importación admin).
func (d *Database) Path() string { return d.file.Path() }

// migrate convierte el db.json plano al formato cifrado si este todavía no
// existe, y renombra el original a .migrated para no repetir la conversión.
func (d *Database) migrate(legacyPath string) error {
	if legacyPath == "" {
		return nil
	}
	if _, err := os.Stat(legacyPath); err != nil {
		return nil // no hay archivo heredado
	}
	if _, err := os.Stat(d.file.Path()); err == nil {
		return nil // ya migrado
	}

	d.log.Info().Str("origen", legacyPath).Str("destino", d.file.Path()).Msg("migrando base de datos plana al formato cifrado")

	raw, err := os.ReadFile(legacyPath)
	if err != nil {
		return err
	}
	var doc entity.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parsear archivo heredado: %w", err)
	}
	doc.Normalize()
	doc.Signature = ComputeHash(&doc)
	if err := d.file.Write(&doc); err != nil {
		return err
	}
	if err := os.Rename(legacyPath, legacyPath+".migrated"); err != nil {
		return err
	}
	d.log.Info().Msg("migración terminada, archivo heredado renombrado a .migrated")
	return nil
}

// Read devuelve el documento completo. Si el almacén no existe todavía,
// inicializa y persiste un documento vacío exactamente una vez. Un archivo
// corrupto o con firma inválida se propaga como error: jamás se
// reinicializa encima.
func (d *Database) Read() (*entity.Document, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.readLocked()
}

func (d *Database) readLocked() (*entity.Document, error) {
	doc, err := d.file.Read()
	if errors.Is(err, domain.ErrStoreMissing) {
		d.log.Info().Str("archivo", d.file.Path()).Msg("inicializando una base de datos nueva")
		doc = entity.NewDocument()
		doc.Signature = ComputeHash(doc)
		if werr := d.file.Write(doc); werr != nil {
			return nil, werr
		}
		d.countWrite()
		return doc, nil
	}
	if err != nil {
		return nil, err
	}
	if d.verify && doc.Signature != "" && doc.Signature != ComputeHash(doc) {
		return nil, domain.ErrIntegrity
	}
	return doc, nil
}

// Update ejecuta fn sobre el documento y persiste el resultado, todo bajo el
// mutex. Si fn devuelve error no se escribe nada; el documento en disco queda
// intacto. La firma se recalcula en cada escritura.
func (d *Database) Update(fn func(doc *entity.Document) error) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	doc, err := d.readLocked()
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	doc.Signature = ComputeHash(doc)
	if err := d.file.Write(doc); err != nil {
		return err
	}
	d.countWrite()
	return nil
}

// ImportRaw reemplaza el archivo cifrado por un contenido subido, después de
// verificar que descifra y parsea con la clave configurada. El original
// renombraba el archivo a ciegas.
func (d *Database) ImportRaw(raw []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, err := d.file.Decode(raw); err != nil {
		return err
	}
	if err := d.file.WriteRaw(raw); err != nil {
		return err
	}
	d.countWrite()
	return nil
}

func (d *Database) countWrite() {
	if d.writes != nil {
		d.writes.Inc()
	}
}

// ComputeHash calcula la firma sha256 del documento sin su campo signature,
// en serialización compacta.
func ComputeHash(doc *entity.Document) string {
	clone := *doc
	clone.Signature = ""
	b, err := json.Marshal(&clone)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
