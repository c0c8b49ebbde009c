package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"finance-manager-be/apperr"
	"finance-manager-be/models"
)

type GoalRepository interface {
	Create(ctx context.Context, goal *models.Goal) error
	GetByID(ctx context.Context, id uint) (*models.Goal, error)
	GetByUserID(ctx context.Context, userID uint) ([]models.Goal, error)
	Update(ctx context.Context, goal *models.Goal) error
	Delete(ctx context.Context, id uint) error
}

type goalRepository struct {
	db *gorm.DB
}

func NewGoalRepository(db *gorm.DB) GoalRepository {
	return &goalRepository{db: db}
}

func (r *goalRepository) Create(ctx context.Context, goal *models.Goal) error {
	if err := r.db.WithContext(ctx).Create(goal).Error; err != nil {
		return apperr.Wrap(apperr.KindInternal, "create goal", err)
	}
	return nil
}

func (r *goalRepository) GetByID(ctx context.Context, id uint) (*models.Goal, error) {
	var goal models.Goal
	if err := r.db.WithContext(ctx).First(&goal, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("goal not found")
		}
		return nil, apperr.Wrap(apperr.KindInternal, "get goal", err)
	}
	return &goal, nil
}

func (r *goalRepository) GetByUserID(ctx context.Context, userID uint) ([]models.Goal, error) {
	var goals []models.Goal
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&goals).Error; err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "list goals", err)
	}
	return goals, nil
}

func (r *goalRepository) Update(ctx context.Context, goal *models.Goal) error {
	if err := r.db.WithContext(ctx).Save(goal).Error; err != nil {
		return apperr.Wrap(apperr.KindInternal, "update goal", err)
	}
	return nil
}

func (r *goalRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Goal{}, id)
	if result.Error != nil {
		return apperr.Wrap(apperr.KindInternal, "delete goal", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("goal not found")
	}
	return nil
}
