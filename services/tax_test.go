package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finance-manager-be/apperr"
	"finance-manager-be/models"
)

func TestTaxCalculation(t *testing.T) {
	svc := NewTaxService()

	resp, err := svc.Calculate(&models.TaxCalculationRequest{
		Income: decimal.NewFromInt(1000),
	})
	require.NoError(t, err)

	requireDecimalEqual(t, decimal.NewFromInt(100), resp.PersonalIncomeTax)
	requireDecimalEqual(t, decimal.NewFromInt(188), resp.PensionDisabilityInsurance)
	requireDecimalEqual(t, decimal.NewFromInt(75), resp.HealthInsurance)
	requireDecimalEqual(t, decimal.NewFromInt(12), resp.UnemploymentInsurance)
	requireDecimalEqual(t, decimal.NewFromInt(375), resp.TotalTax)
}

func TestTaxCalculationRejectsNonPositiveIncome(t *testing.T) {
	svc := NewTaxService()

	tests := []struct {
		name   string
		income decimal.Decimal
	}{
		{"zero", decimal.Zero},
		{"negative", decimal.NewFromInt(-100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Calculate(&models.TaxCalculationRequest{Income: tt.income})
			require.Error(t, err)
			assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
		})
	}
}

func TestTaxCalculationIgnoresDeductions(t *testing.T) {
	svc := NewTaxService()

	with, err := svc.Calculate(&models.TaxCalculationRequest{
		Income:     decimal.NewFromInt(1000),
		Deductions: decimal.NewFromInt(500),
	})
	require.NoError(t, err)
	without, err := svc.Calculate(&models.TaxCalculationRequest{
		Income: decimal.NewFromInt(1000),
	})
	require.NoError(t, err)

	requireDecimalEqual(t, without.TotalTax, with.TotalTax)
}
