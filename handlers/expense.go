package handlers

import (
	"github.com/gofiber/fiber/v2"

	"finance-manager-be/middleware"
	"finance-manager-be/models"
	"finance-manager-be/services"
)

type ExpenseHandler struct {
	expenses *services.ExpenseService
}

func NewExpenseHandler(expenses *services.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenses: expenses}
}

// List returns the caller's expenses, optionally filtered by from/to query
// params (RFC 3339).
func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	from, err := parseTimeQuery(c, "from")
	if err != nil {
		return respondError(c, err)
	}
	to, err := parseTimeQuery(c, "to")
	if err != nil {
		return respondError(c, err)
	}

	expenses, err := h.expenses.GetExpenses(c.UserContext(), middleware.UserID(c), from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(expenses)
}

func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	var req models.ExpenseRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	expense, err := h.expenses.AddExpense(c.UserContext(), middleware.UserID(c), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(expense)
}

func (h *ExpenseHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var req models.ExpenseRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	expense, err := h.expenses.UpdateExpense(c.UserContext(), middleware.UserID(c), id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(expense)
}

func (h *ExpenseHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.expenses.DeleteExpense(c.UserContext(), middleware.UserID(c), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Summary returns totalIncome - totalExpenses = totalSavings for the caller.
func (h *ExpenseHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.expenses.GetFinancialSummary(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
