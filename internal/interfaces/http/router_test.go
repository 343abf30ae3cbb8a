package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpiface "github.com/jhoicas/Farmacia-api/internal/interfaces/http"

	"github.com/jhoicas/Farmacia-api/internal/application/usecase"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/infrastructure/storage"
	"github.com/jhoicas/Farmacia-api/pkg/config"
	"github.com/jhoicas/Farmacia-api/pkg/logger"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	file := storage.NewEncryptedFile(filepath.Join(t.TempDir(), "db.enc"), "clave-de-test")
	db, err := storage.Open(file, "", true, logger.Nop())
	require.NoError(t, err)
	log := logger.Nop()

	authUC := usecase.NewAuthUseCase(
		config.AdminConfig{Username: "admin", Password: "secreta"},
		config.JWTConfig{Secret: "secreto-de-test", Issuer: "farmacia-test", Expiration: 60},
	)

	app := fiber.New()
	httpiface.Router(app, httpiface.RouterDeps{
		StockUC:      usecase.NewStockUseCase(db, log),
		SaleUC:       usecase.NewSaleUseCase(db, log),
		ServiceUC:    usecase.NewServiceUseCase(db),
		MovementUC:   usecase.NewMovementUseCase(db),
		BestsellerUC: usecase.NewBestsellerUseCase(db),
		ItemUC:       usecase.NewItemUseCase(db),
		AuthUC:       authUC,
		AdminUC:      usecase.NewAdminUseCase(db),
		Log:          log,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// Ciclo de vida completo por HTTP: alta de producto, venta, verificación del
// stock descontado, supresión de la venta y reposición.
func TestRouter_StockAndSaleLifecycle(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/stocks",
		`{"id":"p1","name":"Paracétamol","category":"Antidouleur","purchasePrice":500,"salePrice":1000,"stock":100}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodPost, "/api/sales",
		`{"id":"s1","produit":"Paracétamol","category":"Antidouleur","quantity":10,"salePrice":1000,"unitPrice":1000,"payment":"cash"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var stocks []entity.Product
	decodeBody(t, doJSON(t, app, fiber.MethodGet, "/api/stocks", ""), &stocks)
	require.Len(t, stocks, 1)
	assert.Equal(t, 90, stocks[0].Stock)
	assert.Equal(t, 10, stocks[0].Sold)

	resp = doJSON(t, app, fiber.MethodDelete, "/api/sales/s1", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	decodeBody(t, doJSON(t, app, fiber.MethodGet, "/api/stocks", ""), &stocks)
	require.Len(t, stocks, 1)
	assert.Equal(t, 100, stocks[0].Stock)
	assert.Equal(t, 0, stocks[0].Sold)
}

// El alta duplicada y el cuerpo inválido responden 400 con el mensaje de
// cara al cliente, nunca el detalle interno.
func TestRouter_ValidationErrors(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/stocks", `{"name":"Sin id"}`)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body := `{"id":"p1","name":"Paracétamol","stock":10}`
	require.Equal(t, fiber.StatusOK, doJSON(t, app, fiber.MethodPost, "/api/stocks", body).StatusCode)
	resp = doJSON(t, app, fiber.MethodPost, "/api/stocks", body)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	var errBody map[string]any
	decodeBody(t, resp, &errBody)
	assert.Equal(t, "Produit déjà existant.", errBody["message"])

	// Venta sin cantidad
	resp = doJSON(t, app, fiber.MethodPost, "/api/sales", `{"id":"s1","produit":"Paracétamol"}`)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

// /api/sales/bestsellers debe resolverse como ruta fija, no capturada por el
// parámetro /:id.
func TestRouter_BestsellersRouteNotShadowed(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodGet, "/api/sales/bestsellers", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var ranked []entity.Product
	decodeBody(t, resp, &ranked)
	assert.Empty(t, ranked)
}

// El lote de movimientos responde 201 con los movimientos creados.
func TestRouter_MovementBatch(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/movements",
		`[{"type":"spent","description":"Loyer","price":20000},{"type":"disburse","description":"Versement","price":50000}]`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var out struct {
		Success bool              `json:"success"`
		Data    []entity.Movement `json:"data"`
	}
	decodeBody(t, resp, &out)
	assert.True(t, out.Success)
	assert.Len(t, out.Data, 2)
}

// Sesión admin: credenciales inválidas 401; válidas fijan la cookie que abre
// las rutas protegidas.
func TestRouter_AdminSession(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/login", `{"username":"admin","password":"mala"}`)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// Sin sesión la ruta protegida rechaza.
	resp = doJSON(t, app, fiber.MethodGet, "/api/download-db", "")
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodPost, "/api/login", `{"username":"admin","password":"secreta"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var cookie string
	for _, c := range resp.Cookies() {
		if c.Name == "auth" {
			cookie = c.Value
			assert.True(t, c.HttpOnly, "la cookie de sesión debe ser httpOnly")
		}
	}
	require.NotEmpty(t, cookie, "el login debe fijar la cookie de sesión")

	req := httptest.NewRequest(fiber.MethodGet, "/api/check-auth", nil)
	req.AddCookie(&http.Cookie{Name: "auth", Value: cookie})
	checkResp, err := app.Test(req, -1)
	require.NoError(t, err)
	var status struct {
		Authenticated bool `json:"authenticated"`
	}
	decodeBody(t, checkResp, &status)
	assert.True(t, status.Authenticated)

	// Una lectura cualquiera materializa el archivo en disco.
	require.Equal(t, fiber.StatusOK, doJSON(t, app, fiber.MethodGet, "/api/stocks", "").StatusCode)

	// Con sesión, la descarga del archivo responde su contenido cifrado.
	req = httptest.NewRequest(fiber.MethodGet, "/api/download-db", nil)
	req.AddCookie(&http.Cookie{Name: "auth", Value: cookie})
	dlResp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, dlResp.StatusCode)
	raw, err := io.ReadAll(dlResp.Body)
	require.NoError(t, err)
	dlResp.Body.Close()
	assert.True(t, bytes.HasPrefix(raw, []byte("FENC1")), "la descarga entrega el archivo cifrado tal cual")
}
