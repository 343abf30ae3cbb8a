package usecase_test

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/application/usecase"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/infrastructure/storage"
	"github.com/jhoicas/Farmacia-api/pkg/logger"
)

func nopLog() *logger.Logger { return logger.Nop() }

func newTestDB(t *testing.T) *storage.Database {
	t.Helper()
	file := storage.NewEncryptedFile(filepath.Join(t.TempDir(), "db.enc"), "clave-de-test")
	db, err := storage.Open(file, "", true, logger.Nop())
	require.NoError(t, err)
	return db
}

func createProduct(t *testing.T, uc *usecase.StockUseCase, id, name string, stock int) {
	t.Helper()
	err := uc.Create(dto.CreateProductRequest{
		ID:            id,
		Name:          name,
		Category:      "Antidouleur",
		PurchasePrice: decimal.NewFromInt(500),
		SalePrice:     decimal.NewFromInt(1000),
		Stock:         stock,
	})
	require.NoError(t, err)
}

func getProduct(t *testing.T, db *storage.Database, id string) entity.Product {
	t.Helper()
	doc, err := db.Read()
	require.NoError(t, err)
	p := doc.FindProduct(id)
	require.NotNil(t, p, "el producto %s debe existir", id)
	return *p
}
