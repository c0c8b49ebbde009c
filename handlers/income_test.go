package handlers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"finance-manager-be/models"
	"finance-manager-be/repositories"
	"finance-manager-be/services"
)

func newIncomeApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	handler := NewIncomeHandler(services.NewIncomeService(repositories.NewIncomeRepository(db), testLogger()))
	app := fiber.New()
	app.Get("/api/income/total", handler.Total)
	app.Get("/api/income/:id", handler.Get)
	return app, db
}

func TestIncomeTotalRejectsMalformedDateFilter(t *testing.T) {
	app, _ := newIncomeApp(t)

	resp := getPath(t, app, "/api/income/total?from=lastweek")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = getPath(t, app, "/api/income/total?to=notadate")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestIncomeGetByID(t *testing.T) {
	app, db := newIncomeApp(t)

	income := &models.Income{UserID: 1, Amount: decimal.NewFromInt(100), Date: time.Now(), Category: "Salary"}
	require.NoError(t, db.Create(income).Error)

	resp := getPath(t, app, fmt.Sprintf("/api/income/%d", income.ID))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = getPath(t, app, "/api/income/9999")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
