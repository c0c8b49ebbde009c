package services

import (
	"context"
	"log/slog"
	"time"

	"finance-manager-be/apperr"
	"finance-manager-be/models"
	"finance-manager-be/repositories"
)

// ExpenseService handles expense CRUD and the cross-repository financial
// summary.
type ExpenseService struct {
	expenses repositories.ExpenseRepository
	incomes  repositories.IncomeRepository
	logger   *slog.Logger
}

func NewExpenseService(expenses repositories.ExpenseRepository, incomes repositories.IncomeRepository, logger *slog.Logger) *ExpenseService {
	return &ExpenseService{expenses: expenses, incomes: incomes, logger: logger}
}

func (s *ExpenseService) GetExpenses(ctx context.Context, userID uint, from, to time.Time) ([]models.Expense, error) {
	if from.IsZero() && to.IsZero() {
		return s.expenses.GetByUserID(ctx, userID)
	}
	if to.IsZero() {
		to = time.Now()
	}
	return s.expenses.GetByUserBetween(ctx, userID, from, to)
}

func (s *ExpenseService) AddExpense(ctx context.Context, userID uint, req *models.ExpenseRequest) (*models.Expense, error) {
	expense := &models.Expense{
		UserID:      userID,
		Amount:      req.Amount,
		Date:        req.Date,
		Description: req.Description,
		Category:    req.Category,
		Pay:         req.Pay,
	}
	if err := s.expenses.Create(ctx, expense); err != nil {
		return nil, err
	}

	s.logger.Info("expense added", "expense_id", expense.ID, "user_id", userID, "amount", expense.Amount)
	return expense, nil
}

func (s *ExpenseService) UpdateExpense(ctx context.Context, userID, id uint, req *models.ExpenseRequest) (*models.Expense, error) {
	expense, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	expense.Amount = req.Amount
	expense.Date = req.Date
	expense.Description = req.Description
	expense.Category = req.Category
	expense.Pay = req.Pay

	if err := s.expenses.Update(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

func (s *ExpenseService) DeleteExpense(ctx context.Context, userID, id uint) error {
	expense, err := s.owned(ctx, userID, id)
	if err != nil {
		return err
	}

	if err := s.expenses.Delete(ctx, expense); err != nil {
		return err
	}
	s.logger.Info("expense deleted", "expense_id", id, "user_id", userID)
	return nil
}

// GetFinancialSummary computes income minus expenses at call time. The result
// can be negative when expenses exceed income.
func (s *ExpenseService) GetFinancialSummary(ctx context.Context, userID uint) (*models.FinancialSummary, error) {
	totalIncome, err := s.incomes.TotalByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	totalExpenses, err := s.expenses.TotalByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &models.FinancialSummary{
		TotalIncome:   totalIncome,
		TotalExpenses: totalExpenses,
		TotalSavings:  totalIncome.Sub(totalExpenses),
	}, nil
}

func (s *ExpenseService) owned(ctx context.Context, userID, id uint) (*models.Expense, error) {
	expense, err := s.expenses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense.UserID != userID {
		return nil, apperr.NotFound("expense not found")
	}
	return expense, nil
}
