package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finance-manager-be/services"
)

func newTaxApp() *fiber.App {
	app := fiber.New()
	handler := NewTaxHandler(services.NewTaxService())
	app.Post("/api/tax/calculate", handler.Calculate)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestTaxCalculateEndpoint(t *testing.T) {
	app := newTaxApp()

	resp := postJSON(t, app, "/api/tax/calculate", `{"income":"1000"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "375", body["total_tax"])
	assert.Equal(t, "100", body["personal_income_tax"])
	assert.Equal(t, "188", body["pension_disability_insurance"])
	assert.Equal(t, "75", body["health_insurance"])
	assert.Equal(t, "12", body["unemployment_insurance"])
}

func TestTaxCalculateRejectsZeroIncome(t *testing.T) {
	app := newTaxApp()

	resp := postJSON(t, app, "/api/tax/calculate", `{"income":"0"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestTaxCalculateRejectsMalformedBody(t *testing.T) {
	app := newTaxApp()

	resp := postJSON(t, app, "/api/tax/calculate", `{"income":`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
