package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"finance-manager-be/apperr"
	"finance-manager-be/models"
)

type ReminderRepository interface {
	Create(ctx context.Context, reminder *models.Reminder) error
	GetByID(ctx context.Context, id uint) (*models.Reminder, error)
	GetByUserID(ctx context.Context, userID uint) ([]models.Reminder, error)
	// UpcomingByUserID returns incomplete reminders due on or before the
	// cutoff.
	UpcomingByUserID(ctx context.Context, userID uint, cutoff time.Time) ([]models.Reminder, error)
	Update(ctx context.Context, reminder *models.Reminder) error
	Delete(ctx context.Context, id uint) error
}

type reminderRepository struct {
	db *gorm.DB
}

func NewReminderRepository(db *gorm.DB) ReminderRepository {
	return &reminderRepository{db: db}
}

func (r *reminderRepository) Create(ctx context.Context, reminder *models.Reminder) error {
	if err := r.db.WithContext(ctx).Create(reminder).Error; err != nil {
		return apperr.Wrap(apperr.KindInternal, "create reminder", err)
	}
	return nil
}

func (r *reminderRepository) GetByID(ctx context.Context, id uint) (*models.Reminder, error) {
	var reminder models.Reminder
	if err := r.db.WithContext(ctx).First(&reminder, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("reminder not found")
		}
		return nil, apperr.Wrap(apperr.KindInternal, "get reminder", err)
	}
	return &reminder, nil
}

func (r *reminderRepository) GetByUserID(ctx context.Context, userID uint) ([]models.Reminder, error) {
	var reminders []models.Reminder
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("due_date").
		Find(&reminders).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "list reminders", err)
	}
	return reminders, nil
}

func (r *reminderRepository) UpcomingByUserID(ctx context.Context, userID uint, cutoff time.Time) ([]models.Reminder, error) {
	var reminders []models.Reminder
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_completed = ? AND due_date <= ?", userID, false, cutoff).
		Order("due_date").
		Find(&reminders).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "list upcoming reminders", err)
	}
	return reminders, nil
}

func (r *reminderRepository) Update(ctx context.Context, reminder *models.Reminder) error {
	if err := r.db.WithContext(ctx).Save(reminder).Error; err != nil {
		return apperr.Wrap(apperr.KindInternal, "update reminder", err)
	}
	return nil
}

func (r *reminderRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Reminder{}, id)
	if result.Error != nil {
		return apperr.Wrap(apperr.KindInternal, "delete reminder", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("reminder not found")
	}
	return nil
}
