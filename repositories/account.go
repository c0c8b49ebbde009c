package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"finance-manager-be/apperr"
	"finance-manager-be/models"
)

type AccountRepository interface {
	Create(ctx context.Context, account *models.Account) error
	GetByID(ctx context.Context, id uint) (*models.Account, error)
	GetByUserID(ctx context.Context, userID uint) ([]models.Account, error)
	Update(ctx context.Context, account *models.Account) error
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(ctx context.Context, account *models.Account) error {
	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		return apperr.Wrap(apperr.KindInternal, "create account", err)
	}
	return nil
}

func (r *accountRepository) GetByID(ctx context.Context, id uint) (*models.Account, error) {
	var account models.Account
	if err := r.db.WithContext(ctx).First(&account, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("account not found")
		}
		return nil, apperr.Wrap(apperr.KindInternal, "get account", err)
	}
	return &account, nil
}

func (r *accountRepository) GetByUserID(ctx context.Context, userID uint) ([]models.Account, error) {
	var accounts []models.Account
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&accounts).Error; err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "list accounts", err)
	}
	return accounts, nil
}

func (r *accountRepository) Update(ctx context.Context, account *models.Account) error {
	if err := r.db.WithContext(ctx).Save(account).Error; err != nil {
		return apperr.Wrap(apperr.KindInternal, "update account", err)
	}
	return nil
}
