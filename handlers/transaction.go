package handlers

import (
	"github.com/gofiber/fiber/v2"

	"finance-manager-be/middleware"
	"finance-manager-be/models"
	"finance-manager-be/services"
)

type TransactionHandler struct {
	transactions *services.TransactionService
}

func NewTransactionHandler(transactions *services.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactions: transactions}
}

func (h *TransactionHandler) List(c *fiber.Ctx) error {
	transactions, err := h.transactions.GetTransactions(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(transactions)
}

func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var req models.TransactionRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	transaction, err := h.transactions.AddTransaction(c.UserContext(), middleware.UserID(c), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(transaction)
}

func (h *TransactionHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var req models.TransactionRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	transaction, err := h.transactions.UpdateTransaction(c.UserContext(), middleware.UserID(c), id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(transaction)
}

func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.transactions.DeleteTransaction(c.UserContext(), middleware.UserID(c), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
