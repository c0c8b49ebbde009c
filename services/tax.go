package services

import (
	"github.com/shopspring/decimal"

	"finance-manager-be/apperr"
	"finance-manager-be/models"
)

// Fixed statutory rates applied to gross income.
var (
	ratePersonalIncome    = decimal.NewFromFloat(0.10)
	ratePensionDisability = decimal.NewFromFloat(0.188)
	rateHealth            = decimal.NewFromFloat(0.075)
	rateUnemployment      = decimal.NewFromFloat(0.012)
)

// TaxService performs the stateless tax computation. Deductions and filing
// status are accepted on the request but do not affect the result.
type TaxService struct{}

func NewTaxService() *TaxService {
	return &TaxService{}
}

func (s *TaxService) Calculate(req *models.TaxCalculationRequest) (*models.TaxCalculationResponse, error) {
	if !req.Income.IsPositive() {
		return nil, apperr.Validation("income must be greater than zero")
	}

	personal := ratePersonalIncome.Mul(req.Income)
	pension := ratePensionDisability.Mul(req.Income)
	health := rateHealth.Mul(req.Income)
	unemployment := rateUnemployment.Mul(req.Income)

	return &models.TaxCalculationResponse{
		TotalTax:                   personal.Add(pension).Add(health).Add(unemployment),
		PersonalIncomeTax:          personal,
		PensionDisabilityInsurance: pension,
		HealthInsurance:            health,
		UnemploymentInsurance:      unemployment,
	}, nil
}
