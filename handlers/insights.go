package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"google.golang.org/genai"
	"gorm.io/gorm"

	"finance-manager-be/middleware"
	"finance-manager-be/models"
)

// CategorySuggestion is one AI-proposed recategorization.
type CategorySuggestion struct {
	TransactionID uint   `json:"transaction_id"`
	NewCategory   string `json:"new_category"`
}

// InsightsHandler asks Gemini to categorize the caller's uncategorized
// transactions.
type InsightsHandler struct {
	db     *gorm.DB
	apiKey string
	logger *slog.Logger
}

func NewInsightsHandler(db *gorm.DB, apiKey string, logger *slog.Logger) *InsightsHandler {
	return &InsightsHandler{db: db, apiKey: apiKey, logger: logger}
}

func (h *InsightsHandler) AnalyzeTransactions(c *fiber.Ctx) error {
	if h.apiKey == "" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "AI insights are not configured"})
	}

	userID := middleware.UserID(c)

	// Cap the batch to keep prompts inside token limits.
	var txns []models.Transaction
	err := h.db.WithContext(c.UserContext()).
		Where("user_id = ? AND is_deleted = ? AND (category = ? OR category = ?)", userID, false, "Uncategorized", "").
		Limit(50).
		Find(&txns).Error
	if err != nil {
		h.logger.Error("fetch uncategorized transactions", "user_id", userID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch transactions"})
	}

	if len(txns) == 0 {
		return c.JSON(fiber.Map{
			"message":     "No uncategorized transactions found",
			"suggestions": []CategorySuggestion{},
		})
	}

	var prompt strings.Builder
	prompt.WriteString("You are a financial analyst. Categorize these transactions.\n")
	prompt.WriteString("Return a RAW JSON ARRAY of objects. Do NOT use markdown formatting.\n")
	prompt.WriteString("Each object must have: 'transaction_id' (number) and 'new_category' (e.g., Food, Travel, Bills, Shopping, Salary, Investment, Transfer).\n\n")
	for _, t := range txns {
		prompt.WriteString(fmt.Sprintf(`{"transaction_id": %d, "description": %q, "amount": %s}`+"\n", t.ID, t.Description, t.Amount))
	}

	ctx := c.UserContext()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: h.apiKey})
	if err != nil {
		h.logger.Error("init AI client", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to init AI client"})
	}

	resp, err := client.Models.GenerateContent(ctx, "gemini-1.5-flash", genai.Text(prompt.String()), nil)
	if err != nil {
		h.logger.Error("AI generation failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "AI generation failed"})
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Empty response from AI"})
	}

	rawText := ""
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.Text != "" {
			rawText += part.Text
		}
	}

	// Strip the markdown fences Gemini likes to add.
	rawText = strings.TrimSpace(rawText)
	rawText = strings.TrimPrefix(rawText, "```json")
	rawText = strings.TrimPrefix(rawText, "```")
	rawText = strings.TrimSuffix(rawText, "```")

	var suggestions []CategorySuggestion
	if err := json.Unmarshal([]byte(rawText), &suggestions); err != nil {
		h.logger.Error("parse AI response", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to parse AI response"})
	}

	h.logger.Info("AI insights generated", "user_id", userID, "suggestions", len(suggestions))
	return c.JSON(fiber.Map{
		"count":       len(suggestions),
		"suggestions": suggestions,
	})
}
