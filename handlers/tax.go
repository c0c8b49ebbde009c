package handlers

import (
	"github.com/gofiber/fiber/v2"

	"finance-manager-be/models"
	"finance-manager-be/services"
)

type TaxHandler struct {
	tax *services.TaxService
}

func NewTaxHandler(tax *services.TaxService) *TaxHandler {
	return &TaxHandler{tax: tax}
}

// Calculate computes fixed-rate tax components for the submitted income.
func (h *TaxHandler) Calculate(c *fiber.Ctx) error {
	var req models.TaxCalculationRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	resp, err := h.tax.Calculate(&req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
