package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"finance-manager-be/apperr"
	"finance-manager-be/models"
)

type ExpenseRepository interface {
	Create(ctx context.Context, expense *models.Expense) error
	GetByID(ctx context.Context, id uint) (*models.Expense, error)
	GetByUserID(ctx context.Context, userID uint) ([]models.Expense, error)
	GetByUserBetween(ctx context.Context, userID uint, from, to time.Time) ([]models.Expense, error)
	Update(ctx context.Context, expense *models.Expense) error
	Delete(ctx context.Context, expense *models.Expense) error
	TotalByUserID(ctx context.Context, userID uint) (decimal.Decimal, error)
}

type expenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Create(ctx context.Context, expense *models.Expense) error {
	if err := r.db.WithContext(ctx).Create(expense).Error; err != nil {
		return apperr.Wrap(apperr.KindInternal, "create expense", err)
	}
	return nil
}

func (r *expenseRepository) GetByID(ctx context.Context, id uint) (*models.Expense, error) {
	var expense models.Expense
	if err := r.db.WithContext(ctx).First(&expense, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("expense not found")
		}
		return nil, apperr.Wrap(apperr.KindInternal, "get expense", err)
	}
	return &expense, nil
}

func (r *expenseRepository) GetByUserID(ctx context.Context, userID uint) ([]models.Expense, error) {
	var expenses []models.Expense
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&expenses).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "list expenses", err)
	}
	return expenses, nil
}

func (r *expenseRepository) GetByUserBetween(ctx context.Context, userID uint, from, to time.Time) ([]models.Expense, error) {
	var expenses []models.Expense
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Order("date DESC").
		Find(&expenses).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "list expenses for period", err)
	}
	return expenses, nil
}

func (r *expenseRepository) Update(ctx context.Context, expense *models.Expense) error {
	if err := r.db.WithContext(ctx).Save(expense).Error; err != nil {
		return apperr.Wrap(apperr.KindInternal, "update expense", err)
	}
	return nil
}

func (r *expenseRepository) Delete(ctx context.Context, expense *models.Expense) error {
	if err := r.db.WithContext(ctx).Delete(expense).Error; err != nil {
		return apperr.Wrap(apperr.KindInternal, "delete expense", err)
	}
	return nil
}

func (r *expenseRepository) TotalByUserID(ctx context.Context, userID uint) (decimal.Decimal, error) {
	row := r.db.WithContext(ctx).
		Model(&models.Expense{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(amount), 0)").
		Row()

	var total decimal.Decimal
	if err := row.Scan(&total); err != nil {
		return decimal.Zero, apperr.Wrap(apperr.KindInternal, "sum expenses", err)
	}
	return total, nil
}
