package handlers

import (
	"github.com/gofiber/fiber/v2"

	"finance-manager-be/middleware"
	"finance-manager-be/models"
	"finance-manager-be/services"
)

type BudgetHandler struct {
	budgets *services.BudgetService
}

func NewBudgetHandler(budgets *services.BudgetService) *BudgetHandler {
	return &BudgetHandler{budgets: budgets}
}

// List returns the caller's budgets.
func (h *BudgetHandler) List(c *fiber.Ctx) error {
	budgets, err := h.budgets.GetBudgets(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(budgets)
}

// Get returns one budget by ID with its category collections preloaded
// (admin-style lookup, not scoped to the caller).
func (h *BudgetHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	budget, err := h.budgets.GetBudget(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(budget)
}

// Create adds a budget for the caller.
func (h *BudgetHandler) Create(c *fiber.Ctx) error {
	var req models.BudgetRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	budget, err := h.budgets.CreateBudget(c.UserContext(), middleware.UserID(c), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(budget)
}

// Delete removes a budget by ID.
func (h *BudgetHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.budgets.DeleteBudget(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SubmitBucket replaces one bucket's allocations with the submitted list.
// The bucket is bound per route so the client cannot rely on server state.
func (h *BudgetHandler) SubmitBucket(bucket models.Bucket) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var items []models.CategoryItem
		if err := c.BodyParser(&items); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}
		for _, item := range items {
			if item.Category == "" {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "category is required"})
			}
		}

		if err := h.budgets.SubmitBucket(c.UserContext(), middleware.UserID(c), bucket, items); err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"message": "Allocations saved"})
	}
}

// ListBucket returns one bucket's allocations for the caller's current budget.
func (h *BudgetHandler) ListBucket(bucket models.Bucket) fiber.Handler {
	return func(c *fiber.Ctx) error {
		categories, err := h.budgets.ListBucket(c.UserContext(), middleware.UserID(c), bucket)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(categories)
	}
}

// Totals returns aggregated needs/wants/savings/income totals.
func (h *BudgetHandler) Totals(c *fiber.Ctx) error {
	totals, err := h.budgets.Totals(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(totals)
}
