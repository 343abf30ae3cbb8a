package entity

import (
	"fmt"
	"strings"
)

// StockEventKind clasifica una entrada del historial de stock. El documento
// heredado discriminaba el tipo de evento parseando el texto libre de Note;
// aquí el tipo es explícito y Note se conserva como representación en el
// idioma de la interfaz (francés) para compatibilidad con los documentos y
// los reportes existentes.
type StockEventKind string

const (
	EventInitial             StockEventKind = "initial"               // creación inicial del producto
	EventCreated             StockEventKind = "created"               // alta de producto
	EventAdjustment          StockEventKind = "adjustment"            // modificación manual de stock
	EventRetroactive         StockEventKind = "retroactive"           // ajuste con fecha retroactiva
	EventSale                StockEventKind = "sale"                  // venta de producto
	EventServiceSale         StockEventKind = "service_sale"          // venta de servicio
	EventOrder               StockEventKind = "order"                 // pedido/entrada de mercancía
	EventPurchasePriceChange StockEventKind = "purchase_price_change" // cambio de precio de compra
	EventSalePriceChange     StockEventKind = "sale_price_change"     // cambio de precio de venta
	EventSaleReversal        StockEventKind = "sale_reversal"         // anulación por modificación de venta
	EventSaleEdit            StockEventKind = "sale_edit"             // reaplicación tras modificar una venta
	EventSaleDeletion        StockEventKind = "sale_deletion"         // anulación por venta suprimida
)

// Cadenas exactas del documento heredado. Los reportes aguas abajo comparan
// contra estos textos, así que no se traducen ni se reformatean.
const (
	NoteInitial             = "Création initiale du produit"
	NoteCreated             = "Création produit"
	NoteOrder               = "Commande"
	NoteSale                = "Vente"
	NotePurchasePriceChange = "Changement de prix d'achat"
	NoteSalePriceChange     = "Changement de prix de vente"

	retroactivePrefix = "Modification rétroactive - "
)

// NoteAdjustment formatea la nota de una modificación manual de stock con la
// expresión aplicada.
func NoteAdjustment(expr string) string {
	return fmt.Sprintf("Modification stock (%s)", expr)
}

// NoteRetroactive marca una nota como ajuste retroactivo.
func NoteRetroactive(detail string) string {
	return retroactivePrefix + detail
}

// NoteServiceSale formatea la nota de una venta de servicio.
func NoteServiceSale(serviceName string) string {
	return "Vente Service : " + serviceName
}

// NoteSaleReversal formatea la nota de anulación previa a la modificación de
// una venta.
func NoteSaleReversal(saleID string) string {
	return fmt.Sprintf("Annulation (Modif. vente %s)", saleID)
}

// NoteSaleEdit formatea la nota de reaplicación tras modificar una venta.
func NoteSaleEdit(saleID string) string {
	return fmt.Sprintf("Vente Modifiée (Vente %s)", saleID)
}

// NoteServiceSaleEdit formatea la nota de reaplicación de una venta de
// servicio modificada.
func NoteServiceSaleEdit(serviceName, saleID string) string {
	return fmt.Sprintf("Vente Service Modifiée : %s (Vente %s)", serviceName, saleID)
}

// NoteSaleDeletion formatea la nota de anulación por supresión de una venta.
func NoteSaleDeletion(saleID string) string {
	return fmt.Sprintf("Vente supprimée (ID: %s)", saleID)
}

// ParseKind recupera el tipo de evento desde una nota heredada que no trae
// el campo kind. Reproduce la taxonomía de prefijos del documento original.
func ParseKind(note string) StockEventKind {
	switch {
	case note == NoteInitial:
		return EventInitial
	case note == NoteCreated:
		return EventCreated
	case note == NoteOrder:
		return EventOrder
	case note == NotePurchasePriceChange:
		return EventPurchasePriceChange
	case note == NoteSalePriceChange:
		return EventSalePriceChange
	case strings.HasPrefix(note, retroactivePrefix):
		return EventRetroactive
	case strings.HasPrefix(note, "Modification stock"):
		return EventAdjustment
	case strings.HasPrefix(note, "Annulation"):
		return EventSaleReversal
	case strings.HasPrefix(note, "Vente supprimée"):
		return EventSaleDeletion
	case strings.HasPrefix(note, "Vente Service Modifiée"):
		return EventSaleEdit
	case strings.HasPrefix(note, "Vente Modifiée"):
		return EventSaleEdit
	case strings.HasPrefix(note, "Vente Service"):
		return EventServiceSale
	case strings.HasPrefix(note, "Vente"):
		return EventSale
	default:
		return EventAdjustment
	}
}
