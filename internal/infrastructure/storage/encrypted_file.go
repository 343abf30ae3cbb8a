package storage

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/crypto/scrypt"

	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// Formato del archivo: magic || salt (16) || nonce (12) || ciphertext.
// La clave se deriva del secreto con scrypt usando la sal del propio archivo,
// así cada escritura usa sal y nonce frescos.
var fileMagic = []byte("FENC1")

const (
	saltSize = 16
	keySize  = 32

	scryptN = 1 << 15
	scryptR = 8
	scryptP = 1
)

// EncryptedFile serializa el documento completo como JSON identado y lo
// cifra con AES-256-GCM hacia un único archivo local.
type EncryptedFile struct {
	path   string
	secret string
}

// NewEncryptedFile construye el almacén sobre path con la clave simétrica dada.
func NewEncryptedFile(path, secret string) *EncryptedFile {
	return &EncryptedFile{path: path, secret: secret}
}

// Path devuelve la ruta del archivo cifrado.
func (f *EncryptedFile) Path() string { return f.path }

// Read descifra y parsea el documento. Distingue dos fallos que el sistema
// original colapsaba en uno: archivo ausente (domain.ErrStoreMissing, primera
// ejecución) y archivo ilegible (domain.ErrStoreCorrupt, clave incorrecta o
// datos dañados).
func (f *EncryptedFile) Read() (*entity.Document, error) {
	raw, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, domain.ErrStoreMissing
	}
	if err != nil {
		return nil, err
	}
	return f.Decode(raw)
}

// Decode descifra y parsea un contenido cifrado en memoria. Lo usa Read y la
// verificación previa de una importación de base de datos.
func (f *EncryptedFile) Decode(raw []byte) (*entity.Document, error) {
	plain, err := f.decrypt(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreCorrupt, err)
	}
	var doc entity.Document
	if err := json.Unmarshal(plain, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreCorrupt, err)
	}
	doc.Normalize()
	return &doc, nil
}

// Write serializa, cifra y persiste el documento entero. La escritura pasa
// por un archivo temporal en el mismo directorio y un rename, de modo que un
// corte a mitad de escritura nunca deja el archivo destino truncado.
func (f *EncryptedFile) Write(doc *entity.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("serializar documento: %w", err)
	}
	sealed, err := f.encrypt(data)
	if err != nil {
		return fmt.Errorf("cifrar documento: %w", err)
	}
	return f.writeAtomic(sealed)
}

// WriteRaw persiste contenido ya cifrado (importación de db.enc). El llamador
// debe haberlo verificado con Decode antes.
func (f *EncryptedFile) WriteRaw(raw []byte) error {
	return f.writeAtomic(raw)
}

func (f *EncryptedFile) writeAtomic(data []byte) error {
	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, ".db-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, f.path)
}

func (f *EncryptedFile) encrypt(plain []byte) ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	gcm, err := f.aead(salt)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(fileMagic)+saltSize+len(nonce)+len(plain)+gcm.Overhead())
	out = append(out, fileMagic...)
	out = append(out, salt...)
	out = append(out, nonce...)
	return gcm.Seal(out, nonce, plain, nil), nil
}

func (f *EncryptedFile) decrypt(raw []byte) ([]byte, error) {
	if len(raw) < len(fileMagic)+saltSize || !bytes.HasPrefix(raw, fileMagic) {
		return nil, errors.New("encabezado de archivo no reconocido")
	}
	raw = raw[len(fileMagic):]
	salt, raw := raw[:saltSize], raw[saltSize:]

	gcm, err := f.aead(salt)
	if err != nil {
		return nil, err
	}
	if len(raw) < gcm.NonceSize() {
		return nil, errors.New("archivo truncado")
	}
	nonce, ciphertext := raw[:gcm.NonceSize()], raw[gcm.NonceSize():]
	return gcm.Open(nil, nonce, ciphertext, nil)
}

func (f *EncryptedFile) aead(salt []byte) (cipher.AEAD, error) {
	key, err := scrypt.Key([]byte(f.secret), salt, scryptN, scryptR, scryptP, keySize)
	if err != nil {
		return nil, err
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
