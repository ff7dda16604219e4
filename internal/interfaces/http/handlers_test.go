package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcatalog "github.com/jhoicas/catalogo-industrial/internal/application/catalog"
	"github.com/jhoicas/catalogo-industrial/internal/application/dto"
	"github.com/jhoicas/catalogo-industrial/internal/application/usecase"
	"github.com/jhoicas/catalogo-industrial/internal/domain/entity"
	apphttp "github.com/jhoicas/catalogo-industrial/internal/interfaces/http"
	"github.com/jhoicas/catalogo-industrial/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func newAPI(t *testing.T, store *memStore) *fiber.App {
	t.Helper()
	log := logger.Nop()
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CatalogUC:   usecase.NewCatalogUseCase(),
		ProductUC:   usecase.NewProductUseCase(memProductsFor(store)),
		SeedUC:      appcatalog.NewSeedUseCase(store, log),
		ImportUC:    appcatalog.NewImportUseCase(store, log),
		MigrationUC: appcatalog.NewMigrationUseCase(store, log),
		Import:      apphttp.ImportConfig{MaxUploadBytes: 1 << 20},
		JWTSecret:   testJWTSecret,
	})
	return app
}

func memProductsFor(s *memStore) memProducts { return memProducts{s} }

func call(t *testing.T, app *fiber.App, method, path, role string, body io.Reader, contentType string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if role != "" {
		req.Header.Set("Authorization", tokenForRole(t, role))
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func callJSON(t *testing.T, app *fiber.App, method, path, role string, payload any) *http.Response {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	return call(t, app, method, path, role, body, fiber.MIMEApplicationJSON)
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Taxonomía
// ──────────────────────────────────────────────────────────────────────────────

func TestCatalog_ListCategories(t *testing.T) {
	app := newAPI(t, newMemStore())
	resp := call(t, app, http.MethodGet, "/api/catalog/categories", "vendedor", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	cats := decode[[]dto.CategoryResponse](t, resp)
	require.Len(t, cats, 11)
	assert.Equal(t, "C", cats[0].Code)
	assert.NotEmpty(t, cats[0].SubCategories)
}

func TestCatalog_ListCategories_SinToken_401(t *testing.T) {
	app := newAPI(t, newMemStore())
	resp := call(t, app, http.MethodGet, "/api/catalog/categories", "", nil, "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCatalog_SubCategories_CategoriaDesconocidaListaVacia(t *testing.T) {
	app := newAPI(t, newMemStore())
	resp := call(t, app, http.MethodGet, "/api/catalog/categories/Z/subcategories", "vendedor", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `[]`, string(body))
}

func TestCatalog_ResolveSubCategory(t *testing.T) {
	app := newAPI(t, newMemStore())

	resp := call(t, app, http.MethodGet, "/api/catalog/subcategories/resolve?category=C&name=side_guide_accessories", "vendedor", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.ResolveSubCategoryResponse](t, resp)
	assert.Equal(t, "C-013", out.SubCategoryCode)

	resp = call(t, app, http.MethodGet, "/api/catalog/subcategories/resolve?category=C&name=nada", "vendedor", nil, "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCatalog_Validate_SubcategoriaDeOtraCategoria(t *testing.T) {
	app := newAPI(t, newMemStore())
	resp := call(t, app, http.MethodGet, "/api/catalog/validate?category=C&subcategory=L-001", "vendedor", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decode[dto.ValidateCodesResponse](t, resp)
	assert.True(t, out.CategoryValid)
	assert.True(t, out.SubCategoryValid)
	assert.False(t, out.SubCategoryInCategory)
}

// ──────────────────────────────────────────────────────────────────────────────
// Conversión de SKU Tecom
// ──────────────────────────────────────────────────────────────────────────────

func TestCatalog_ConvertTecomSKU(t *testing.T) {
	app := newAPI(t, newMemStore())
	resp := callJSON(t, app, http.MethodPost, "/api/catalog/sku/tecom", "vendedor", dto.ConvertSKURequest{SupplierSKU: "C020080271"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.ConvertSKUResponse](t, resp)
	assert.Equal(t, "1200-80271", out.InternalSKU)
}

func TestCatalog_ConvertTecomSKU_Errores(t *testing.T) {
	app := newAPI(t, newMemStore())
	cases := map[string]string{
		"X020080271": "UNSUPPORTED_PREFIX",
		"C0200":      "INVALID_INPUT",
		"":           "INVALID_INPUT",
	}
	for input, code := range cases {
		resp := callJSON(t, app, http.MethodPost, "/api/catalog/sku/tecom", "vendedor", dto.ConvertSKURequest{SupplierSKU: input})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, input)
		out := decode[dto.ErrorResponse](t, resp)
		assert.Equal(t, code, out.Code, input)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Mantenimiento (solo admin)
// ──────────────────────────────────────────────────────────────────────────────

func TestCatalog_Seed_SoloAdmin(t *testing.T) {
	store := newMemStore()
	app := newAPI(t, store)

	resp := call(t, app, http.MethodPost, "/api/catalog/seed", "bodeguero", nil, "")
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = call(t, app, http.MethodPost, "/api/catalog/seed", "admin", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.SeedResponse](t, resp)
	assert.Equal(t, 11, out.Categories)
	assert.Len(t, store.categories, 11)
	assert.Len(t, store.subCategories, out.SubCategories)
}

func TestCatalog_Migrate(t *testing.T) {
	now := time.Now()
	store := newMemStore(
		&entity.Product{ID: "p1", CompanyID: testCompanyID, SKU: "A-1", Name: "Soporte", CategoryCode: "CONV", SubCategoryCode: "SIDE_GUIDE_ACC", CreatedAt: now},
		&entity.Product{ID: "p2", CompanyID: testCompanyID, SKU: "A-2", Name: "Raro", CategoryCode: "??", CreatedAt: now},
	)
	app := newAPI(t, store)

	resp := call(t, app, http.MethodPost, "/api/catalog/migrate?dry_run=true", "admin", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	dry := decode[dto.MigrationResponse](t, resp)
	assert.True(t, dry.DryRun)
	assert.Equal(t, 1, dry.Updated)
	assert.Equal(t, 1, dry.Unresolved)
	assert.Equal(t, "CONV", store.product(testCompanyID, "A-1").CategoryCode, "dry_run no escribe")

	resp = call(t, app, http.MethodPost, "/api/catalog/migrate", "admin", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	applied := decode[dto.MigrationResponse](t, resp)
	assert.Equal(t, 1, applied.Updated)
	p := store.product(testCompanyID, "A-1")
	assert.Equal(t, "C", p.CategoryCode)
	assert.Equal(t, "C-013", p.SubCategoryCode)
	assert.Equal(t, "??", store.product(testCompanyID, "A-2").CategoryCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Importación
// ──────────────────────────────────────────────────────────────────────────────

func multipartBody(t *testing.T, filename, content string, fields map[string]string) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if filename != "" {
		fw, err := w.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = io.WriteString(fw, content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

const importCSV = "codigo_proveedor,nombre,categoria,subcategoria,precio\n" +
	"C020080271,Soporte guía,C,Side guide accessories,1200\n" +
	"L008580271,Pata fija,L,Algo que no existe,300\n" +
	"X123456789,Desconocido,C,,10\n"

func TestImport_CSVTecom(t *testing.T) {
	store := newMemStore()
	app := newAPI(t, store)

	body, ct := multipartBody(t, "tecom.csv", importCSV, map[string]string{"supplier": "tecom"})
	resp := call(t, app, http.MethodPost, "/api/catalog/import", "admin", body, ct)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decode[dto.ImportResponse](t, resp)
	assert.Equal(t, "tecom.csv", out.Source)
	assert.Equal(t, 3, out.Total)
	assert.Equal(t, 1, out.Created)
	assert.Equal(t, 1, out.Review)
	assert.Equal(t, 1, out.Errors)
	assert.Equal(t, "UNSUPPORTED_PREFIX", out.Rows[2].Code)

	p := store.product(testCompanyID, "1200-80271")
	require.NotNil(t, p)
	assert.Equal(t, "C-013", p.SubCategoryCode)
	assert.True(t, decimal.NewFromInt(1200).Equal(p.Price))

	review := store.product(testCompanyID, "185-80271")
	require.NotNil(t, review)
	assert.Empty(t, review.SubCategoryCode)
}

func TestImport_DryRunNoEscribe(t *testing.T) {
	store := newMemStore()
	app := newAPI(t, store)

	body, ct := multipartBody(t, "tecom.csv", importCSV, map[string]string{"supplier": "tecom", "dry_run": "true"})
	resp := call(t, app, http.MethodPost, "/api/catalog/import", "admin", body, ct)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.ImportResponse](t, resp)
	assert.True(t, out.DryRun)
	assert.Empty(t, store.products)
}

func TestImport_Errores(t *testing.T) {
	app := newAPI(t, newMemStore())

	body, ct := multipartBody(t, "", "", nil)
	resp := call(t, app, http.MethodPost, "/api/catalog/import", "admin", body, ct)
	assert.Equal(t, "MISSING_FILE", decode[dto.ErrorResponse](t, resp).Code)

	body, ct = multipartBody(t, "catalogo.pdf", "%PDF", nil)
	resp = call(t, app, http.MethodPost, "/api/catalog/import", "admin", body, ct)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_INPUT", decode[dto.ErrorResponse](t, resp).Code)

	body, ct = multipartBody(t, "sin_categoria.csv", "sku,nombre\nA,B\n", nil)
	resp = call(t, app, http.MethodPost, "/api/catalog/import", "admin", body, ct)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	body, ct = multipartBody(t, "tecom.csv", importCSV, nil)
	resp = call(t, app, http.MethodPost, "/api/catalog/import", "vendedor", body, ct)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestImport_ArchivoDemasiadoGrande(t *testing.T) {
	log := logger.Nop()
	store := newMemStore()
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ImportUC:  appcatalog.NewImportUseCase(store, log),
		Import:    apphttp.ImportConfig{MaxUploadBytes: 16},
		JWTSecret: testJWTSecret,
	})

	body, ct := multipartBody(t, "tecom.csv", strings.Repeat("x", 64), nil)
	resp := call(t, app, http.MethodPost, "/api/catalog/import", "admin", body, ct)
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
	assert.Equal(t, "FILE_TOO_LARGE", decode[dto.ErrorResponse](t, resp).Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProducts_CrearConSKUTecomYCompletitud(t *testing.T) {
	store := newMemStore()
	app := newAPI(t, store)

	resp := callJSON(t, app, http.MethodPost, "/api/products", "bodeguero", map[string]any{
		"supplier":         "tecom",
		"supplier_sku":     "L008580271",
		"name":             "Pata fija M12",
		"category_code":    "L",
		"subcategory_code": "L-001",
		"price":            "45000",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	out := decode[dto.ProductResponse](t, resp)
	assert.Equal(t, "185-80271", out.SKU)
	assert.Greater(t, out.Completeness.Score, 0)
	assert.Contains(t, out.Completeness.Missing, "image")

	resp = call(t, app, http.MethodGet, "/api/products/"+out.ID, "vendedor", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestProducts_Errores(t *testing.T) {
	app := newAPI(t, newMemStore())

	resp := callJSON(t, app, http.MethodPost, "/api/products", "vendedor", map[string]any{"sku": "A", "name": "x", "category_code": "C"})
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = callJSON(t, app, http.MethodPost, "/api/products", "admin", map[string]any{"sku": "A", "name": "x", "category_code": "Q"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_CATEGORY", decode[dto.ErrorResponse](t, resp).Code)

	resp = callJSON(t, app, http.MethodPost, "/api/products", "admin", map[string]any{"sku": "A", "name": "x", "category_code": "C", "subcategory_code": "L-001"})
	assert.Equal(t, "INVALID_SUBCATEGORY", decode[dto.ErrorResponse](t, resp).Code)

	resp = callJSON(t, app, http.MethodPost, "/api/products", "admin", map[string]any{"sku": "A", "name": "x", "category_code": "C", "price": "-5"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_INPUT", decode[dto.ErrorResponse](t, resp).Code)

	resp = call(t, app, http.MethodGet, "/api/products/no-existe", "admin", nil, "")
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = call(t, app, http.MethodDelete, "/api/products/no-existe", "admin", nil, "")
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
