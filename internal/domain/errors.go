package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")

	// ErrStoreMissing indica que el archivo cifrado todavía no existe
	// (primera ejecución). Es el único caso donde procede inicializar
	// un documento vacío.
	ErrStoreMissing = errors.New("base de datos inexistente")

	// ErrStoreCorrupt indica que el archivo existe pero no se pudo
	// descifrar o parsear. Nunca debe tratarse como primera ejecución:
	// reinicializar encima destruiría los datos.
	ErrStoreCorrupt = errors.New("base de datos corrupta o clave incorrecta")

	// ErrIntegrity indica que la firma del documento no coincide con su
	// contenido.
	ErrIntegrity = errors.New("la firma del documento no coincide")
)
