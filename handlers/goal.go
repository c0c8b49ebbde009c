package handlers

import (
	"github.com/gofiber/fiber/v2"

	"finance-manager-be/middleware"
	"finance-manager-be/models"
	"finance-manager-be/services"
)

type GoalHandler struct {
	goals *services.GoalService
}

func NewGoalHandler(goals *services.GoalService) *GoalHandler {
	return &GoalHandler{goals: goals}
}

func (h *GoalHandler) List(c *fiber.Ctx) error {
	goals, err := h.goals.GetGoals(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}

	type goalWithProgress struct {
		models.Goal
		ProgressPercentage string `json:"progress_percentage"`
	}
	out := make([]goalWithProgress, 0, len(goals))
	for _, g := range goals {
		out = append(out, goalWithProgress{Goal: g, ProgressPercentage: g.ProgressPercentage().StringFixed(2)})
	}
	return c.JSON(out)
}

func (h *GoalHandler) Create(c *fiber.Ctx) error {
	var req models.GoalRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	goal, err := h.goals.AddGoal(c.UserContext(), middleware.UserID(c), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(goal)
}

func (h *GoalHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var req models.GoalRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	goal, err := h.goals.UpdateGoal(c.UserContext(), middleware.UserID(c), id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(goal)
}

func (h *GoalHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.goals.DeleteGoal(c.UserContext(), middleware.UserID(c), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Recommendations returns savings suggestions for one goal.
func (h *GoalHandler) Recommendations(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	recommendations, err := h.goals.GetRecommendations(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"recommendations": recommendations})
}
