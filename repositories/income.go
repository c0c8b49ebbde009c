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

type IncomeRepository interface {
	Create(ctx context.Context, income *models.Income) error
	GetByID(ctx context.Context, id uint) (*models.Income, error)
	GetByUserID(ctx context.Context, userID uint) ([]models.Income, error)
	Update(ctx context.Context, income *models.Income) error
	Delete(ctx context.Context, income *models.Income) error
	TotalByUserID(ctx context.Context, userID uint) (decimal.Decimal, error)
	TotalForPeriod(ctx context.Context, userID uint, from, to time.Time) (decimal.Decimal, error)
}

type incomeRepository struct {
	db *gorm.DB
}

func NewIncomeRepository(db *gorm.DB) IncomeRepository {
	return &incomeRepository{db: db}
}

func (r *incomeRepository) Create(ctx context.Context, income *models.Income) error {
	if err := r.db.WithContext(ctx).Create(income).Error; err != nil {
		return apperr.Wrap(apperr.KindInternal, "create income", err)
	}
	return nil
}

func (r *incomeRepository) GetByID(ctx context.Context, id uint) (*models.Income, error) {
	var income models.Income
	if err := r.db.WithContext(ctx).First(&income, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("income not found")
		}
		return nil, apperr.Wrap(apperr.KindInternal, "get income", err)
	}
	return &income, nil
}

func (r *incomeRepository) GetByUserID(ctx context.Context, userID uint) ([]models.Income, error) {
	var incomes []models.Income
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&incomes).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "list incomes", err)
	}
	return incomes, nil
}

func (r *incomeRepository) Update(ctx context.Context, income *models.Income) error {
	if err := r.db.WithContext(ctx).Save(income).Error; err != nil {
		return apperr.Wrap(apperr.KindInternal, "update income", err)
	}
	return nil
}

func (r *incomeRepository) Delete(ctx context.Context, income *models.Income) error {
	if err := r.db.WithContext(ctx).Delete(income).Error; err != nil {
		return apperr.Wrap(apperr.KindInternal, "delete income", err)
	}
	return nil
}

func (r *incomeRepository) TotalByUserID(ctx context.Context, userID uint) (decimal.Decimal, error) {
	row := r.db.WithContext(ctx).
		Model(&models.Income{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(amount), 0)").
		Row()

	var total decimal.Decimal
	if err := row.Scan(&total); err != nil {
		return decimal.Zero, apperr.Wrap(apperr.KindInternal, "sum incomes", err)
	}
	return total, nil
}

func (r *incomeRepository) TotalForPeriod(ctx context.Context, userID uint, from, to time.Time) (decimal.Decimal, error) {
	row := r.db.WithContext(ctx).
		Model(&models.Income{}).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Select("COALESCE(SUM(amount), 0)").
		Row()

	var total decimal.Decimal
	if err := row.Scan(&total); err != nil {
		return decimal.Zero, apperr.Wrap(apperr.KindInternal, "sum incomes for period", err)
	}
	return total, nil
}
