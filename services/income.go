package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"finance-manager-be/apperr"
	"finance-manager-be/models"
	"finance-manager-be/repositories"
)

// IncomeService handles income entry CRUD and period totals.
type IncomeService struct {
	incomes repositories.IncomeRepository
	logger  *slog.Logger
}

func NewIncomeService(incomes repositories.IncomeRepository, logger *slog.Logger) *IncomeService {
	return &IncomeService{incomes: incomes, logger: logger}
}

func (s *IncomeService) GetIncomes(ctx context.Context, userID uint) ([]models.Income, error) {
	return s.incomes.GetByUserID(ctx, userID)
}

func (s *IncomeService) GetIncome(ctx context.Context, id uint) (*models.Income, error) {
	return s.incomes.GetByID(ctx, id)
}

func (s *IncomeService) AddIncome(ctx context.Context, userID uint, req *models.IncomeRequest) (*models.Income, error) {
	income := &models.Income{
		UserID:      userID,
		Amount:      req.Amount,
		Date:        req.Date,
		Description: req.Description,
		Category:    req.Category,
	}
	if err := s.incomes.Create(ctx, income); err != nil {
		return nil, err
	}

	s.logger.Info("income added", "income_id", income.ID, "user_id", userID, "amount", income.Amount)
	return income, nil
}

func (s *IncomeService) UpdateIncome(ctx context.Context, userID, id uint, req *models.IncomeRequest) (*models.Income, error) {
	income, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	income.Amount = req.Amount
	income.Date = req.Date
	income.Description = req.Description
	income.Category = req.Category

	if err := s.incomes.Update(ctx, income); err != nil {
		return nil, err
	}
	return income, nil
}

func (s *IncomeService) DeleteIncome(ctx context.Context, userID, id uint) error {
	income, err := s.owned(ctx, userID, id)
	if err != nil {
		return err
	}

	if err := s.incomes.Delete(ctx, income); err != nil {
		return err
	}
	s.logger.Info("income deleted", "income_id", id, "user_id", userID)
	return nil
}

func (s *IncomeService) TotalForPeriod(ctx context.Context, userID uint, from, to time.Time) (decimal.Decimal, error) {
	return s.incomes.TotalForPeriod(ctx, userID, from, to)
}

func (s *IncomeService) owned(ctx context.Context, userID, id uint) (*models.Income, error) {
	income, err := s.incomes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if income.UserID != userID {
		return nil, apperr.NotFound("income not found")
	}
	return income, nil
}
