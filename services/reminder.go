package services

import (
	"context"
	"log/slog"
	"time"

	"finance-manager-be/apperr"
	"finance-manager-be/models"
	"finance-manager-be/repositories"
)

// ReminderService handles reminder CRUD and upcoming-reminder queries.
type ReminderService struct {
	reminders repositories.ReminderRepository
	logger    *slog.Logger
}

func NewReminderService(reminders repositories.ReminderRepository, logger *slog.Logger) *ReminderService {
	return &ReminderService{reminders: reminders, logger: logger}
}

func (s *ReminderService) GetReminders(ctx context.Context, userID uint) ([]models.Reminder, error) {
	return s.reminders.GetByUserID(ctx, userID)
}

func (s *ReminderService) GetUpcomingReminders(ctx context.Context, userID uint, cutoff time.Time) ([]models.Reminder, error) {
	return s.reminders.UpcomingByUserID(ctx, userID, cutoff)
}

func (s *ReminderService) AddReminder(ctx context.Context, userID uint, req *models.ReminderRequest) (*models.Reminder, error) {
	reminder := &models.Reminder{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		IsCompleted: req.IsCompleted,
	}
	if err := s.reminders.Create(ctx, reminder); err != nil {
		return nil, err
	}

	s.logger.Info("reminder added", "reminder_id", reminder.ID, "user_id", userID, "title", reminder.Title)
	return reminder, nil
}

func (s *ReminderService) UpdateReminder(ctx context.Context, userID, id uint, req *models.ReminderRequest) (*models.Reminder, error) {
	reminder, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	reminder.Title = req.Title
	reminder.Description = req.Description
	reminder.DueDate = req.DueDate
	reminder.IsCompleted = req.IsCompleted

	if err := s.reminders.Update(ctx, reminder); err != nil {
		return nil, err
	}
	return reminder, nil
}

func (s *ReminderService) DeleteReminder(ctx context.Context, userID, id uint) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}

	if err := s.reminders.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("reminder deleted", "reminder_id", id, "user_id", userID)
	return nil
}

func (s *ReminderService) owned(ctx context.Context, userID, id uint) (*models.Reminder, error) {
	reminder, err := s.reminders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if reminder.UserID != userID {
		return nil, apperr.NotFound("reminder not found")
	}
	return reminder, nil
}
