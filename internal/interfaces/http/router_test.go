package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-api/internal/application/auth"
	"github.com/jhoicas/gestion-api/internal/application/usecase"
	"github.com/jhoicas/gestion-api/internal/application/validation"
	"github.com/jhoicas/gestion-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/gestion-api/internal/interfaces/http"
)

type stubSheet struct{}

func (stubSheet) GenerateInventorySheet(_ context.Context, _ *usecase.InventorySheet) ([]byte, error) {
	return []byte("%PDF-1.4 stub"), nil
}

// newTestApp API completa sobre los adaptadores en memoria.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	st := memory.NewStore()
	items := usecase.NewEquipmentItemUseCase(st.EquipmentItems(), st.Products(), st.Providers())
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:       auth.NewAuthUseCase(st.Users(), auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}),
		ClientUC:     usecase.NewClientUseCase(st.Clients()),
		BrandUC:      usecase.NewBrandUseCase(st.Brands()),
		CategoryUC:   usecase.NewCategoryUseCase(st.Categories()),
		ProductUC:    usecase.NewProductUseCase(st.Products(), st.Categories(), st.Brands()),
		ItemUC:       items,
		ReportUC:     usecase.NewInventoryReportUseCase(st.Products(), st.Categories(), st.Brands(), st.Providers(), items, stubSheet{}),
		PersonnelUC:  usecase.NewPersonnelUseCase(st.Personnel()),
		PositionUC:   usecase.NewJobPositionUseCase(st.JobPositions()),
		AssignmentUC: usecase.NewAssignmentUseCase(st.Assignments(), st.Personnel(), st.JobPositions()),
		ServiceUC:    usecase.NewServiceUseCase(st.Services()),
		ProviderUC:   usecase.NewProviderUseCase(st.Providers()),
		Validator:    validation.New(),
		JWTSecret:    testJWTSecret,
		Cookie:       apphttp.CookieConfig{Name: testCookieName},
	})
	return app
}

// call hace la petición como userID ("" = sin sesión) y devuelve status + body.
func call(t *testing.T, app *fiber.App, method, path, userID string, body any) (int, []byte) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("Authorization", "Bearer "+tokenFor(t, userID))
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	var out bytes.Buffer
	_, err = out.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out.Bytes()
}

func createID(t *testing.T, app *fiber.App, path, userID string, body any) string {
	t.Helper()
	status, raw := call(t, app, http.MethodPost, path, userID, body)
	require.Equal(t, fiber.StatusCreated, status, string(raw))
	var out struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(raw, &out))
	require.NotEmpty(t, out.ID)
	return out.ID
}

func errorCode(t *testing.T, raw []byte) (string, map[string]string) {
	t.Helper()
	var out struct {
		Code    string            `json:"code"`
		Details map[string]string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return out.Code, out.Details
}

func TestRouter_RequiresSession(t *testing.T) {
	app := newTestApp(t)
	for _, path := range []string{"/api/clients", "/api/brands", "/api/products", "/api/personnel", "/api/positions", "/api/auth/me"} {
		status, raw := call(t, app, http.MethodGet, path, "", nil)
		assert.Equal(t, fiber.StatusUnauthorized, status, path)
		code, _ := errorCode(t, raw)
		assert.Equal(t, "UNAUTHORIZED", code, path)
	}
}

func TestBrands_ConflictIsPerOwner(t *testing.T) {
	app := newTestApp(t)
	createID(t, app, "/api/brands", testUserA, map[string]string{"nombre": "Canon"})

	status, raw := call(t, app, http.MethodPost, "/api/brands", testUserA, map[string]string{"nombre": "Canon"})
	assert.Equal(t, fiber.StatusConflict, status)
	code, details := errorCode(t, raw)
	assert.Equal(t, "CONFLICT", code)
	assert.Contains(t, details, "nombre")

	status, _ = call(t, app, http.MethodPost, "/api/brands", testUserB, map[string]string{"nombre": "Canon"})
	assert.Equal(t, fiber.StatusCreated, status)
}

func TestProducts_ForeignCategoryIsRejected(t *testing.T) {
	app := newTestApp(t)
	catB := createID(t, app, "/api/categories", testUserB, map[string]string{"nombre": "Ópticas"})

	status, raw := call(t, app, http.MethodPost, "/api/products", testUserA, map[string]any{
		"nombre":       "Objetivo 50mm",
		"precio_base":  "120.50",
		"categoria_id": catB,
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	code, details := errorCode(t, raw)
	assert.Equal(t, "VALIDATION_ERROR", code)
	assert.Contains(t, details, "categoria_id")
}

func TestClients_DeleteTwiceIsNotFound(t *testing.T) {
	app := newTestApp(t)
	id := createID(t, app, "/api/clients", testUserA, map[string]string{"nombre": "Foto Estudio", "tipo": "empresa"})

	status, _ := call(t, app, http.MethodDelete, "/api/clients/"+id, testUserA, nil)
	assert.Equal(t, fiber.StatusOK, status)

	status, raw := call(t, app, http.MethodDelete, "/api/clients/"+id, testUserA, nil)
	assert.Equal(t, fiber.StatusNotFound, status)
	code, _ := errorCode(t, raw)
	assert.Equal(t, "NOT_FOUND", code)
}

func TestClients_OtherOwnerSeesNotFound(t *testing.T) {
	app := newTestApp(t)
	id := createID(t, app, "/api/clients", testUserA, map[string]string{"nombre": "Foto Estudio", "tipo": "empresa"})

	status, _ := call(t, app, http.MethodGet, "/api/clients/"+id, testUserB, nil)
	assert.Equal(t, fiber.StatusNotFound, status)
	status, _ = call(t, app, http.MethodPut, "/api/clients/"+id, testUserB, map[string]string{"ciudad": "Sevilla"})
	assert.Equal(t, fiber.StatusNotFound, status)

	status, raw := call(t, app, http.MethodGet, "/api/clients/"+id, testUserA, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(raw), "Foto Estudio")
}

func TestRouter_BadRequests(t *testing.T) {
	app := newTestApp(t)

	status, raw := call(t, app, http.MethodGet, "/api/brands/no-es-uuid", testUserA, nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
	code, _ := errorCode(t, raw)
	assert.Equal(t, "INVALID_ID", code)

	status, raw = call(t, app, http.MethodPost, "/api/brands", testUserA, "{no json")
	assert.Equal(t, fiber.StatusBadRequest, status)
	code, _ = errorCode(t, raw)
	assert.Equal(t, "INVALID_INPUT", code)

	status, raw = call(t, app, http.MethodPost, "/api/clients", testUserA, map[string]string{"nombre": "  ", "tipo": "otro"})
	assert.Equal(t, fiber.StatusBadRequest, status)
	code, details := errorCode(t, raw)
	assert.Equal(t, "VALIDATION_ERROR", code)
	assert.Contains(t, details, "nombre")
	assert.Contains(t, details, "tipo")

	id := createID(t, app, "/api/brands", testUserA, map[string]string{"nombre": "Nikon"})
	status, raw = call(t, app, http.MethodPut, "/api/brands/"+id, testUserA, map[string]string{})
	assert.Equal(t, fiber.StatusBadRequest, status)
	code, _ = errorCode(t, raw)
	assert.Equal(t, "NOTHING_TO_UPDATE", code)
}

func TestAssignments_ReplaceWithEmptySet(t *testing.T) {
	app := newTestApp(t)
	personID := createID(t, app, "/api/personnel", testUserA, map[string]string{"nombre": "Lucía"})
	posID := createID(t, app, "/api/positions", testUserA, map[string]string{"nombre": "Técnico", "tarifa_dia": "150"})

	status, raw := call(t, app, http.MethodPost, "/api/personnel/"+personID+"/positions", testUserA,
		map[string]string{"puesto_trabajo_id": posID})
	require.Equal(t, fiber.StatusCreated, status, string(raw))

	status, _ = call(t, app, http.MethodPut, "/api/personnel/"+personID+"/puestos", testUserA,
		map[string]any{"puestos_trabajo": []any{}})
	assert.Equal(t, fiber.StatusOK, status)

	status, raw = call(t, app, http.MethodGet, "/api/personnel/"+personID+"/positions", testUserA, nil)
	require.Equal(t, fiber.StatusOK, status)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(raw, &list))
	assert.Empty(t, list)
}

func TestAssignments_ForeignPersonnelIsNotFound(t *testing.T) {
	app := newTestApp(t)
	personID := createID(t, app, "/api/personnel", testUserA, map[string]string{"nombre": "Lucía"})

	status, _ := call(t, app, http.MethodGet, "/api/personnel/"+personID+"/positions", testUserB, nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestItems_LifecycleAndReport(t *testing.T) {
	app := newTestApp(t)
	catID := createID(t, app, "/api/categories", testUserA, map[string]string{"nombre": "Cámaras"})
	prodID := createID(t, app, "/api/products", testUserA, map[string]any{
		"nombre":              "Cámara X",
		"precio_alquiler_dia": "35",
		"categoria_id":        catID,
	})
	base := "/api/products/" + prodID + "/items"

	itemID := createID(t, app, base, testUserA, map[string]string{"numero_serie": "SN-1"})
	status, raw := call(t, app, http.MethodPost, base, testUserA, map[string]string{"numero_serie": "SN-1"})
	assert.Equal(t, fiber.StatusConflict, status)
	_, details := errorCode(t, raw)
	assert.Contains(t, details, "numero_serie")

	status, raw = call(t, app, http.MethodPut, base+"/"+itemID, testUserA, map[string]string{"estado": "alquilado"})
	require.Equal(t, fiber.StatusOK, status, string(raw))
	assert.Contains(t, string(raw), `"alquilado"`)

	req := httptest.NewRequest(http.MethodGet, base+"/report", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, testUserA))
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "inventario-"+prodID+".pdf")

	status, _ = call(t, app, http.MethodGet, base, testUserB, nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestAuth_RegisterLoginCookie(t *testing.T) {
	app := newTestApp(t)
	creds := map[string]string{"email": "Ana@Example.com", "password": "secreto-largo"}

	status, raw := call(t, app, http.MethodPost, "/api/auth/register", "", creds)
	require.Equal(t, fiber.StatusCreated, status, string(raw))
	status, _ = call(t, app, http.MethodPost, "/api/auth/register", "", creds)
	assert.Equal(t, fiber.StatusConflict, status)

	status, _ = call(t, app, http.MethodPost, "/api/auth/login", "",
		map[string]string{"email": "ana@example.com", "password": "incorrecta"})
	assert.Equal(t, fiber.StatusUnauthorized, status)

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(creds))
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var session *http.Cookie
	for _, ck := range resp.Cookies() {
		if ck.Name == testCookieName {
			session = ck
		}
	}
	require.NotNil(t, session, "login debe dejar la cookie de sesión")
	assert.True(t, session.HttpOnly)
	assert.NotEmpty(t, session.Value)

	me := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	me.AddCookie(&http.Cookie{Name: testCookieName, Value: session.Value})
	resp, err = app.Test(me)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var user map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&user))
	assert.Equal(t, "ana@example.com", user["email"])
}

func TestAssignments_ReplaceRequiresExplicitSet(t *testing.T) {
	app := newTestApp(t)
	personID := createID(t, app, "/api/personnel", testUserA, map[string]string{"nombre": "Lucía"})
	posID := createID(t, app, "/api/positions", testUserA, map[string]string{"nombre": "Técnico", "tarifa_dia": "150"})
	status, raw := call(t, app, http.MethodPost, "/api/personnel/"+personID+"/positions", testUserA,
		map[string]string{"puesto_trabajo_id": posID})
	require.Equal(t, fiber.StatusCreated, status, string(raw))

	for _, body := range []string{`{}`, `{"puestos_trabajo": null}`} {
		status, raw = call(t, app, http.MethodPut, "/api/personnel/"+personID+"/puestos", testUserA, body)
		require.Equal(t, fiber.StatusBadRequest, status, body)
		_, details := errorCode(t, raw)
		assert.Contains(t, details, "puestos_trabajo", body)
	}

	status, raw = call(t, app, http.MethodGet, "/api/personnel/"+personID+"/positions", testUserA, nil)
	require.Equal(t, fiber.StatusOK, status)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(raw, &list))
	assert.Len(t, list, 1, "un body sin puestos_trabajo no debe vaciar las asignaciones")
}

func TestProducts_RejectsPriceOutsideNumericColumn(t *testing.T) {
	app := newTestApp(t)
	catID := createID(t, app, "/api/categories", testUserA, map[string]string{"nombre": "Audio"})

	for _, price := range []string{"12.345", "123456789012.5"} {
		status, raw := call(t, app, http.MethodPost, "/api/products", testUserA, map[string]any{
			"nombre":       "Altavoz " + price,
			"precio_base":  price,
			"categoria_id": catID,
		})
		require.Equal(t, fiber.StatusBadRequest, status, price)
		_, details := errorCode(t, raw)
		assert.Contains(t, details, "precio_base", price)
	}
}
