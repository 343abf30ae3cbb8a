package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/application/usecase"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

func TestServiceCRUD(t *testing.T) {
	db := newTestDB(t)
	uc := usecase.NewServiceUseCase(db)

	svc, err := uc.Create(dto.CreateServiceRequest{
		Name:      "Pansement simple",
		ProduitID: "p1",
		Price:     decimal.NewFromInt(2000),
		Info:      "Consommables inclus",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, svc.ID, "el id lo genera el servidor")
	assert.Equal(t, "service", svc.Category)

	// Modificación parcial: solo el precio, el resto queda intacto.
	newPrice := decimal.NewFromInt(2500)
	require.NoError(t, uc.Update(string(svc.ID), dto.UpdateServiceRequest{Price: &newPrice}))

	list, err := uc.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Pansement simple", list[0].Name)
	assert.Equal(t, entity.FlexID("p1"), list[0].ProduitID)
	assert.True(t, list[0].Price.Equal(newPrice))
	assert.Equal(t, "Consommables inclus", list[0].Info)

	require.NoError(t, uc.Delete(string(svc.ID)))
	require.ErrorIs(t, uc.Delete(string(svc.ID)), domain.ErrNotFound)
	require.ErrorIs(t, uc.Update("no-existe", dto.UpdateServiceRequest{}), domain.ErrNotFound)
}
