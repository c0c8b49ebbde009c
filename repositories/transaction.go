package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"finance-manager-be/apperr"
	"finance-manager-be/models"
)

type TransactionRepository interface {
	Create(ctx context.Context, transaction *models.Transaction) error
	GetByID(ctx context.Context, id uint) (*models.Transaction, error)
	GetByUserID(ctx context.Context, userID uint) ([]models.Transaction, error)
	Update(ctx context.Context, transaction *models.Transaction) error
	SoftDelete(ctx context.Context, transaction *models.Transaction) error
}

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, transaction *models.Transaction) error {
	if err := r.db.WithContext(ctx).Create(transaction).Error; err != nil {
		return apperr.Wrap(apperr.KindInternal, "create transaction", err)
	}
	return nil
}

func (r *transactionRepository) GetByID(ctx context.Context, id uint) (*models.Transaction, error) {
	var transaction models.Transaction
	err := r.db.WithContext(ctx).
		Where("is_deleted = ?", false).
		First(&transaction, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("transaction not found")
		}
		return nil, apperr.Wrap(apperr.KindInternal, "get transaction", err)
	}
	return &transaction, nil
}

func (r *transactionRepository) GetByUserID(ctx context.Context, userID uint) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("date DESC").
		Find(&transactions).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "list transactions", err)
	}
	return transactions, nil
}

func (r *transactionRepository) Update(ctx context.Context, transaction *models.Transaction) error {
	if err := r.db.WithContext(ctx).Save(transaction).Error; err != nil {
		return apperr.Wrap(apperr.KindInternal, "update transaction", err)
	}
	return nil
}

// SoftDelete flags the row instead of removing it.
func (r *transactionRepository) SoftDelete(ctx context.Context, transaction *models.Transaction) error {
	transaction.IsDeleted = true
	if err := r.db.WithContext(ctx).Save(transaction).Error; err != nil {
		return apperr.Wrap(apperr.KindInternal, "delete transaction", err)
	}
	return nil
}
