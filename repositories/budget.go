package repositories

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"finance-manager-be/apperr"
	"finance-manager-be/models"
)

type BudgetRepository interface {
	Create(ctx context.Context, budget *models.Budget) error
	GetByID(ctx context.Context, id uint) (*models.Budget, error)
	GetByUserID(ctx context.Context, userID uint) ([]models.Budget, error)
	// FirstByUserID returns the user's oldest budget (lowest ID), the one the
	// allocation endpoints treat as current.
	FirstByUserID(ctx context.Context, userID uint) (*models.Budget, error)
	Update(ctx context.Context, budget *models.Budget) error
	Delete(ctx context.Context, id uint) error

	ListBucket(ctx context.Context, budgetID uint, bucket models.Bucket) ([]models.BudgetCategory, error)
	ReplaceBucket(ctx context.Context, budgetID uint, bucket models.Bucket, categories []models.BudgetCategory) error
	SumBucket(ctx context.Context, userID uint, bucket models.Bucket) (decimal.Decimal, error)
}

type budgetRepository struct {
	db *gorm.DB
}

func NewBudgetRepository(db *gorm.DB) BudgetRepository {
	return &budgetRepository{db: db}
}

func (r *budgetRepository) Create(ctx context.Context, budget *models.Budget) error {
	if err := r.db.WithContext(ctx).Create(budget).Error; err != nil {
		return apperr.Wrap(apperr.KindInternal, "create budget", err)
	}
	return nil
}

func (r *budgetRepository) GetByID(ctx context.Context, id uint) (*models.Budget, error) {
	var budget models.Budget
	err := r.db.WithContext(ctx).
		Preload("Needs").Preload("Wants").Preload("Savings").
		First(&budget, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("budget not found")
		}
		return nil, apperr.Wrap(apperr.KindInternal, "get budget", err)
	}
	return &budget, nil
}

func (r *budgetRepository) GetByUserID(ctx context.Context, userID uint) ([]models.Budget, error) {
	var budgets []models.Budget
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&budgets).Error; err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "list budgets", err)
	}
	return budgets, nil
}

func (r *budgetRepository) FirstByUserID(ctx context.Context, userID uint) (*models.Budget, error) {
	var budget models.Budget
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		First(&budget).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("no budget for user")
		}
		return nil, apperr.Wrap(apperr.KindInternal, "get current budget", err)
	}
	return &budget, nil
}

func (r *budgetRepository) Update(ctx context.Context, budget *models.Budget) error {
	if err := r.db.WithContext(ctx).Save(budget).Error; err != nil {
		return apperr.Wrap(apperr.KindInternal, "update budget", err)
	}
	return nil
}

func (r *budgetRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Select("Needs").Delete(&models.Budget{ID: id})
	if result.Error != nil {
		return apperr.Wrap(apperr.KindInternal, "delete budget", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("budget not found")
	}
	return nil
}

func (r *budgetRepository) ListBucket(ctx context.Context, budgetID uint, bucket models.Bucket) ([]models.BudgetCategory, error) {
	var categories []models.BudgetCategory
	err := r.db.WithContext(ctx).
		Where(bucket.Column()+" = ?", budgetID).
		Find(&categories).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "list bucket categories", err)
	}
	return categories, nil
}

// ReplaceBucket clears the bucket's rows and inserts the new ones in a single
// transaction.
func (r *budgetRepository) ReplaceBucket(ctx context.Context, budgetID uint, bucket models.Bucket, categories []models.BudgetCategory) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(bucket.Column()+" = ?", budgetID).
			Delete(&models.BudgetCategory{}).Error; err != nil {
			return err
		}
		if len(categories) == 0 {
			return nil
		}
		return tx.Create(&categories).Error
	})
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "replace bucket categories", err)
	}
	return nil
}

func (r *budgetRepository) SumBucket(ctx context.Context, userID uint, bucket models.Bucket) (decimal.Decimal, error) {
	row := r.db.WithContext(ctx).
		Model(&models.BudgetCategory{}).
		Joins("JOIN budgets ON budgets.id = budget_categories."+bucket.Column()).
		Where("budgets.user_id = ?", userID).
		Select("COALESCE(SUM(budget_categories.value), 0)").
		Row()

	var total decimal.Decimal
	if err := row.Scan(&total); err != nil {
		return decimal.Zero, apperr.Wrap(apperr.KindInternal, "sum bucket categories", err)
	}
	return total, nil
}
