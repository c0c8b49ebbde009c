package handlers

import (
	"github.com/gofiber/fiber/v2"

	"finance-manager-be/models"
	"finance-manager-be/services"
)

type TransferHandler struct {
	budgets *services.BudgetService
}

func NewTransferHandler(budgets *services.BudgetService) *TransferHandler {
	return &TransferHandler{budgets: budgets}
}

// Transfer moves funds between two accounts. Same-account transfers are
// rejected before the balance check.
func (h *TransferHandler) Transfer(c *fiber.Ctx) error {
	var req models.TransferRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	if req.FromAccountID == req.ToAccountID {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot transfer to the same account"})
	}

	if err := h.budgets.Transfer(c.UserContext(), &req); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Transfer successful"})
}
