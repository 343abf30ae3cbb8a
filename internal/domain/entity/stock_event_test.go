package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// ParseKind debe reproducir la taxonomía de prefijos de los documentos
// heredados, donde el tipo de evento vivía solo en el texto de la nota.
func TestParseKind_LegacyNotes(t *testing.T) {
	cases := []struct {
		note string
		want entity.StockEventKind
	}{
		{"Création initiale du produit", entity.EventInitial},
		{"Création produit", entity.EventCreated},
		{"Commande", entity.EventOrder},
		{"Changement de prix d'achat", entity.EventPurchasePriceChange},
		{"Changement de prix de vente", entity.EventSalePriceChange},
		{"Modification rétroactive - Modification stock (+5)", entity.EventRetroactive},
		{"Modification stock (+5)", entity.EventAdjustment},
		{"Annulation (Modif. vente 123)", entity.EventSaleReversal},
		{"Vente supprimée (ID: 123)", entity.EventSaleDeletion},
		{"Vente Service Modifiée : Pansement (Vente 123)", entity.EventSaleEdit},
		{"Vente Modifiée (Vente 123)", entity.EventSaleEdit},
		{"Vente Service : Pansement", entity.EventServiceSale},
		{"Vente", entity.EventSale},
		{"texto libre cualquiera", entity.EventAdjustment},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, entity.ParseKind(c.note), "nota: %q", c.note)
	}
}

func TestFlexID_AcceptsNumberOrString(t *testing.T) {
	type wrapper struct {
		ID entity.FlexID `json:"id"`
	}

	var w wrapper
	assert.NoError(t, json.Unmarshal([]byte(`{"id": 1719876543210}`), &w))
	assert.Equal(t, entity.FlexID("1719876543210"), w.ID)

	assert.NoError(t, json.Unmarshal([]byte(`{"id": "abc-123"}`), &w))
	assert.Equal(t, entity.FlexID("abc-123"), w.ID)

	assert.Error(t, json.Unmarshal([]byte(`{"id": true}`), &w))
}
