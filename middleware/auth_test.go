package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newProtectedApp(secret string) *fiber.App {
	app := fiber.New()
	app.Use(Auth(secret))
	app.Get("/whoami", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": UserID(c)})
	})
	return app
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func get(t *testing.T, app *fiber.App, authorization string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if authorization != "" {
		req.Header.Set(fiber.HeaderAuthorization, authorization)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestAuthAcceptsValidToken(t *testing.T) {
	app := newProtectedApp(testSecret)

	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": 42,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	resp := get(t, app, "Bearer "+token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthRejectsMissingHeader(t *testing.T) {
	app := newProtectedApp(testSecret)

	resp := get(t, app, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthRejectsWrongSecret(t *testing.T) {
	app := newProtectedApp(testSecret)

	token := signToken(t, "other-secret", jwt.MapClaims{
		"sub": 42,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	resp := get(t, app, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthRejectsExpiredToken(t *testing.T) {
	app := newProtectedApp(testSecret)

	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": 42,
		"exp": time.Now().Add(-time.Minute).Unix(),
	})
	resp := get(t, app, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthRejectsMissingSubject(t *testing.T) {
	app := newProtectedApp(testSecret)

	token := signToken(t, testSecret, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	resp := get(t, app, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
