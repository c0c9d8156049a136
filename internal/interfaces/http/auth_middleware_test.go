package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivascu/gestiune-api/internal/application/dto"
	httpapi "github.com/ivascu/gestiune-api/internal/interfaces/http"
	pkgjwt "github.com/ivascu/gestiune-api/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "user-123"
	testIssuer    = "gestiune-api-test"
	testExpMin    = 60
)

// buildTestApp arma una app mínima con una ruta protegida y otra solo-admin.
func buildTestApp() *fiber.App {
	app := fiber.New()

	protected := app.Group("/", httpapi.AuthMiddleware(testJWTSecret))
	protected.Get("/me", func(c *fiber.Ctx) error {
		return c.JSON(dto.OK("ok", fiber.Map{
			"user_id": httpapi.GetUserID(c),
			"role":    httpapi.GetRole(c),
		}))
	})

	admin := protected.Group("/admin", httpapi.RequireAdmin())
	admin.Get("/panel", func(c *fiber.Ctx) error {
		return c.JSON(dto.OK("panel", nil))
	})

	return app
}

func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	token, err := pkgjwt.Generate(testJWTSecret, testUserID, role, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + token
}

func doRequest(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ─── Middleware de autenticación ─────────────────────────────────────────────

func TestAuthMiddleware_SinHeader_Retorna401(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/me", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FormatoInvalido_Retorna401(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/me", "Token abc123")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenMalformado_Retorna401(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/me", "Bearer no-es-un-jwt")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FirmaIncorrecta_Retorna401(t *testing.T) {
	app := buildTestApp()
	token, err := pkgjwt.Generate("otro-secreto", testUserID, "admin", testIssuer, testExpMin)
	require.NoError(t, err)
	resp := doRequest(t, app, "/me", "Bearer "+token)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenExpirado_Retorna401(t *testing.T) {
	app := buildTestApp()
	token, err := pkgjwt.Generate(testJWTSecret, testUserID, "admin", testIssuer, -1)
	require.NoError(t, err)
	resp := doRequest(t, app, "/me", "Bearer "+token)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenValido_PermitePaso(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/me", tokenForRole(t, "angajat"))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

// ─── RequireAdmin ────────────────────────────────────────────────────────────

func TestRequireAdmin_AdminAccede(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/admin/panel", tokenForRole(t, "admin"))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireAdmin_AngajatBloqueado403(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/admin/panel", tokenForRole(t, "angajat"))
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

// ─── JWT ida y vuelta ────────────────────────────────────────────────────────

func TestJWT_GenerarYParsear(t *testing.T) {
	token, err := pkgjwt.Generate(testJWTSecret, testUserID, "admin", testIssuer, testExpMin)
	require.NoError(t, err)

	userID, role, err := pkgjwt.Parse(testJWTSecret, token)
	require.NoError(t, err)
	assert.Equal(t, testUserID, userID)
	assert.Equal(t, "admin", role)
}

func TestJWT_SecretVacio_RetornaError(t *testing.T) {
	_, err := pkgjwt.Generate("", testUserID, "admin", testIssuer, testExpMin)
	assert.Error(t, err)

	_, _, err = pkgjwt.Parse("", "cualquier-token")
	assert.Error(t, err)
}
