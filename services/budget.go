package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"finance-manager-be/apperr"
	"finance-manager-be/models"
	"finance-manager-be/repositories"
)

// BudgetService owns budget CRUD, bucket allocation and fund transfers.
type BudgetService struct {
	budgets repositories.BudgetRepository
	db      *gorm.DB
	logger  *slog.Logger
}

func NewBudgetService(budgets repositories.BudgetRepository, db *gorm.DB, logger *slog.Logger) *BudgetService {
	return &BudgetService{budgets: budgets, db: db, logger: logger}
}

func (s *BudgetService) CreateBudget(ctx context.Context, userID uint, req *models.BudgetRequest) (*models.Budget, error) {
	if !req.Amount.IsPositive() {
		return nil, apperr.Validation("budget amount must be greater than zero")
	}

	budget := &models.Budget{
		UserID:    userID,
		Name:      req.Name,
		Amount:    req.Amount,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}
	if err := s.budgets.Create(ctx, budget); err != nil {
		return nil, err
	}

	s.logger.Info("budget created", "budget_id", budget.ID, "user_id", userID, "name", budget.Name)
	return budget, nil
}

func (s *BudgetService) GetBudget(ctx context.Context, id uint) (*models.Budget, error) {
	return s.budgets.GetByID(ctx, id)
}

func (s *BudgetService) GetBudgets(ctx context.Context, userID uint) ([]models.Budget, error) {
	return s.budgets.GetByUserID(ctx, userID)
}

func (s *BudgetService) UpdateBudget(ctx context.Context, userID, id uint, req *models.BudgetRequest) (*models.Budget, error) {
	budget, err := s.budgets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if budget.UserID != userID {
		return nil, apperr.NotFound("budget not found")
	}

	budget.Name = req.Name
	budget.Amount = req.Amount
	budget.StartDate = req.StartDate
	budget.EndDate = req.EndDate

	if err := s.budgets.Update(ctx, budget); err != nil {
		return nil, err
	}
	return budget, nil
}

func (s *BudgetService) DeleteBudget(ctx context.Context, id uint) error {
	return s.budgets.Delete(ctx, id)
}

// SubmitBucket replaces the contents of one bucket of the user's current
// budget with the submitted items. When the user has no budget yet, a default
// one is created on the fly covering the next month.
func (s *BudgetService) SubmitBucket(ctx context.Context, userID uint, bucket models.Bucket, items []models.CategoryItem) error {
	if !bucket.Valid() {
		return apperr.Newf(apperr.KindValidation, "unknown bucket %q", bucket)
	}

	total := decimal.Zero
	for _, item := range items {
		if item.Value.IsNegative() {
			return apperr.Newf(apperr.KindValidation, "category %q has a negative value", item.Category)
		}
		total = total.Add(item.Value)
	}

	budget, err := s.budgets.FirstByUserID(ctx, userID)
	if err != nil {
		if !apperr.IsNotFound(err) {
			return err
		}
		now := time.Now()
		budget = &models.Budget{
			UserID:    userID,
			Name:      "Default Budget",
			Amount:    total,
			StartDate: now,
			EndDate:   now.AddDate(0, 1, 0),
		}
		if err := s.budgets.Create(ctx, budget); err != nil {
			return err
		}
		s.logger.Info("default budget created", "budget_id", budget.ID, "user_id", userID)
	}

	categories := make([]models.BudgetCategory, 0, len(items))
	for _, item := range items {
		category := models.BudgetCategory{
			Category: item.Category,
			Value:    item.Value,
		}
		id := budget.ID
		switch bucket {
		case models.BucketWants:
			category.WantsBudgetID = &id
		case models.BucketSavings:
			category.SavingsBudgetID = &id
		default:
			category.NeedsBudgetID = &id
		}
		categories = append(categories, category)
	}

	if err := s.budgets.ReplaceBucket(ctx, budget.ID, bucket, categories); err != nil {
		return err
	}

	s.logger.Info("bucket allocation replaced",
		"user_id", userID,
		"budget_id", budget.ID,
		"bucket", bucket,
		"categories", len(categories))
	return nil
}

// ListBucket returns the current budget's allocations for one bucket. A user
// without a budget gets an empty list.
func (s *BudgetService) ListBucket(ctx context.Context, userID uint, bucket models.Bucket) ([]models.BudgetCategory, error) {
	if !bucket.Valid() {
		return nil, apperr.Newf(apperr.KindValidation, "unknown bucket %q", bucket)
	}

	budget, err := s.budgets.FirstByUserID(ctx, userID)
	if err != nil {
		if apperr.IsNotFound(err) {
			return []models.BudgetCategory{}, nil
		}
		return nil, err
	}
	return s.budgets.ListBucket(ctx, budget.ID, bucket)
}

// Totals aggregates category values across all of the user's budgets. A user
// with no budgets gets zeros.
func (s *BudgetService) Totals(ctx context.Context, userID uint) (*models.BudgetTotals, error) {
	needs, err := s.budgets.SumBucket(ctx, userID, models.BucketNeeds)
	if err != nil {
		return nil, err
	}
	wants, err := s.budgets.SumBucket(ctx, userID, models.BucketWants)
	if err != nil {
		return nil, err
	}

	return &models.BudgetTotals{
		Needs:   needs,
		Wants:   wants,
		Savings: decimal.Zero,
		Income:  decimal.Zero,
	}, nil
}

// Transfer moves an amount between two accounts. Both balance mutations
// commit in a single database transaction so a failure leaves neither side
// changed.
func (s *BudgetService) Transfer(ctx context.Context, req *models.TransferRequest) error {
	if !req.Amount.IsPositive() {
		return apperr.Validation("transfer amount must be greater than zero")
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var from, to models.Account
		if err := tx.First(&from, req.FromAccountID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("source account not found")
			}
			return err
		}
		if err := tx.First(&to, req.ToAccountID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("destination account not found")
			}
			return err
		}

		if from.Balance.LessThan(req.Amount) {
			return apperr.InsufficientFunds("insufficient funds in source account")
		}

		from.Balance = from.Balance.Sub(req.Amount)
		to.Balance = to.Balance.Add(req.Amount)

		if err := tx.Save(&from).Error; err != nil {
			return err
		}
		return tx.Save(&to).Error
	})
	if err != nil {
		var appErr *apperr.Error
		if errors.As(err, &appErr) {
			return appErr
		}
		return apperr.Wrap(apperr.KindInternal, "transfer funds", err)
	}

	s.logger.Info("transfer completed",
		"from_account_id", req.FromAccountID,
		"to_account_id", req.ToAccountID,
		"amount", req.Amount)
	return nil
}
