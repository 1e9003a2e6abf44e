package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-api/internal/application/dto"
	apphttp "github.com/jhoicas/gestion-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/gestion-api/pkg/jwt"
)

const (
	testJWTSecret  = "test-secret-key-for-unit-tests"
	testCookieName = "session"
	testIssuer     = "gestion-test"
	testExpMin     = 60
	testUserA      = "00000000-0000-0000-0000-00000000000a"
	testUserB      = "00000000-0000-0000-0000-00000000000b"
)

// buildGateApp app mínima: AuthMiddleware + handler que devuelve el user_id de Locals.
func buildGateApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret, testCookieName),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"user_id": apphttp.GetUserID(c)})
		},
	)
	return app
}

func tokenFor(t *testing.T, userID string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, userID, userID+"@example.com", testIssuer, testExpMin)
	require.NoError(t, err)
	return tok
}

func decodeError(t *testing.T, resp *http.Response) dto.ErrorResponse {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &out), string(body))
	return out
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	resp, err := buildGateApp().Test(httptest.NewRequest(http.MethodGet, "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "UNAUTHORIZED", decodeError(t, resp).Code)
}

func TestAuthMiddleware_Bearer(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, testUserA))
	resp, err := buildGateApp().Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserA, body["user_id"])
}

func TestAuthMiddleware_CookieTakesPrecedence(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: tokenFor(t, testUserB)})
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, testUserA))
	resp, err := buildGateApp().Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserB, body["user_id"])
}

func TestAuthMiddleware_InvalidTokens(t *testing.T) {
	otherSecret, err := pkgjwt.Generate("otro-secreto", testUserA, "a@example.com", testIssuer, testExpMin)
	require.NoError(t, err)
	expired, err := pkgjwt.Generate(testJWTSecret, testUserA, "a@example.com", testIssuer, -5)
	require.NoError(t, err)

	cases := map[string]string{
		"basura":           "Bearer no-es-un-jwt",
		"firma ajena":      "Bearer " + otherSecret,
		"expirado":         "Bearer " + expired,
		"esquema basic":    "Basic dXNlcjpwYXNz",
		"bearer sin token": "Bearer",
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", header)
			resp, err := buildGateApp().Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		})
	}
}
