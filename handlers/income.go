package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"finance-manager-be/middleware"
	"finance-manager-be/models"
	"finance-manager-be/services"
)

type IncomeHandler struct {
	incomes *services.IncomeService
}

func NewIncomeHandler(incomes *services.IncomeService) *IncomeHandler {
	return &IncomeHandler{incomes: incomes}
}

func (h *IncomeHandler) List(c *fiber.Ctx) error {
	incomes, err := h.incomes.GetIncomes(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(incomes)
}

// Total returns the income total for a period given as from/to query params
// (RFC 3339).
func (h *IncomeHandler) Total(c *fiber.Ctx) error {
	from, err := parseTimeQuery(c, "from")
	if err != nil {
		return respondError(c, err)
	}
	to, err := parseTimeQuery(c, "to")
	if err != nil {
		return respondError(c, err)
	}
	if to.IsZero() {
		to = time.Now()
	}

	total, err := h.incomes.TotalForPeriod(c.UserContext(), middleware.UserID(c), from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": total})
}

// Get returns one income entry by ID (admin-style lookup, not scoped to the
// caller).
func (h *IncomeHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	income, err := h.incomes.GetIncome(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(income)
}

func (h *IncomeHandler) Create(c *fiber.Ctx) error {
	var req models.IncomeRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	income, err := h.incomes.AddIncome(c.UserContext(), middleware.UserID(c), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(income)
}

func (h *IncomeHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var req models.IncomeRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	income, err := h.incomes.UpdateIncome(c.UserContext(), middleware.UserID(c), id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(income)
}

func (h *IncomeHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.incomes.DeleteIncome(c.UserContext(), middleware.UserID(c), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
