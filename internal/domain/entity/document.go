package entity

// Document es el agregado único que representa la base de datos completa.
// Cada escritura serializa y cifra el documento entero; no hay escrituras
// parciales.
type Document struct {
	Items         []map[string]any `json:"items"`
	Stocks        []Product        `json:"stocks"`
	Sales         []Sale           `json:"sales"`
	Services      []Service        `json:"services"`
	Movements     []Movement       `json:"movements"`
	HistoryImport []map[string]any `json:"historyImport"`
	Signature     string           `json:"signature"`
}

// NewDocument devuelve un documento vacío con todas las listas inicializadas.
// Garantiza el contrato de forma: ningún campo es nil para los llamadores.
func NewDocument() *Document {
	return &Document{
		Items:         []map[string]any{},
		Stocks:        []Product{},
		Sales:         []Sale{},
		Services:      []Service{},
		Movements:     []Movement{},
		HistoryImport: []map[string]any{},
	}
}

// Normalize inicializa las listas que quedaron nil tras deserializar un
// documento antiguo. Los documentos heredados del formato plano pueden
// omitir campos.
func (d *Document) Normalize() {
	if d.Items == nil {
		d.Items = []map[string]any{}
	}
	if d.Stocks == nil {
		d.Stocks = []Product{}
	}
	if d.Sales == nil {
		d.Sales = []Sale{}
	}
	if d.Services == nil {
		d.Services = []Service{}
	}
	if d.Movements == nil {
		d.Movements = []Movement{}
	}
	if d.HistoryImport == nil {
		d.HistoryImport = []map[string]any{}
	}
}

// FindProduct busca un producto por id. Devuelve nil si no existe.
func (d *Document) FindProduct(id string) *Product {
	for i := range d.Stocks {
		if string(d.Stocks[i].ID) == id {
			return &d.Stocks[i]
		}
	}
	return nil
}

// FindProductByName busca un producto por nombre exacto. Las ventas
// referencian el producto por nombre, no por id (limitación heredada del
// documento).
func (d *Document) FindProductByName(name string) *Product {
	for i := range d.Stocks {
		if d.Stocks[i].Name == name {
			return &d.Stocks[i]
		}
	}
	return nil
}
