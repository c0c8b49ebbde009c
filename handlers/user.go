package handlers

import (
	"github.com/gofiber/fiber/v2"

	"finance-manager-be/middleware"
	"finance-manager-be/models"
	"finance-manager-be/services"
)

type UserHandler struct {
	users *services.UserService
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Me returns the authenticated user's profile.
func (h *UserHandler) Me(c *fiber.Ctx) error {
	user, err := h.users.GetUser(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// UpdateMe updates the authenticated user's profile.
func (h *UserHandler) UpdateMe(c *fiber.Ctx) error {
	var req models.UserUpdateRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	user, err := h.users.UpdateUser(c.UserContext(), middleware.UserID(c), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// Delete removes a user by ID (admin-style by-id lookup).
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.users.DeleteUser(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateAccount opens a balance account for the caller.
func (h *UserHandler) CreateAccount(c *fiber.Ctx) error {
	var account models.Account
	if err := c.BodyParser(&account); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	created, err := h.users.CreateAccount(c.UserContext(), middleware.UserID(c), &account)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// ListAccounts lists the caller's accounts.
func (h *UserHandler) ListAccounts(c *fiber.Ctx) error {
	accounts, err := h.users.GetAccounts(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(accounts)
}
