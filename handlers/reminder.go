package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"finance-manager-be/middleware"
	"finance-manager-be/models"
	"finance-manager-be/services"
)

type ReminderHandler struct {
	reminders *services.ReminderService
}

func NewReminderHandler(reminders *services.ReminderService) *ReminderHandler {
	return &ReminderHandler{reminders: reminders}
}

func (h *ReminderHandler) List(c *fiber.Ctx) error {
	reminders, err := h.reminders.GetReminders(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(reminders)
}

// Upcoming lists incomplete reminders due within the next 24 hours.
func (h *ReminderHandler) Upcoming(c *fiber.Ctx) error {
	cutoff := time.Now().Add(24 * time.Hour)
	reminders, err := h.reminders.GetUpcomingReminders(c.UserContext(), middleware.UserID(c), cutoff)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(reminders)
}

func (h *ReminderHandler) Create(c *fiber.Ctx) error {
	var req models.ReminderRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	reminder, err := h.reminders.AddReminder(c.UserContext(), middleware.UserID(c), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(reminder)
}

func (h *ReminderHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var req models.ReminderRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	reminder, err := h.reminders.UpdateReminder(c.UserContext(), middleware.UserID(c), id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(reminder)
}

func (h *ReminderHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.reminders.DeleteReminder(c.UserContext(), middleware.UserID(c), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
