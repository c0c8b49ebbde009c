package notifier

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"finance-manager-be/models"
	"finance-manager-be/repositories"
)

// ReminderMessage is the payload published for each due reminder.
type ReminderMessage struct {
	UserID     uint      `json:"user_id"`
	Email      string    `json:"email"`
	ReminderID uint      `json:"reminder_id"`
	Title      string    `json:"title"`
	DueDate    time.Time `json:"due_date"`
	Timestamp  time.Time `json:"timestamp"`
}

// ReminderNotifier periodically sweeps all users and publishes a message for
// every incomplete reminder due within the lookahead window. When no
// publisher is configured, notifications are only logged.
type ReminderNotifier struct {
	users     repositories.UserRepository
	reminders repositories.ReminderRepository
	publisher *Publisher
	interval  time.Duration
	lookahead time.Duration
	logger    *slog.Logger
}

func NewReminderNotifier(
	users repositories.UserRepository,
	reminders repositories.ReminderRepository,
	publisher *Publisher,
	interval, lookahead time.Duration,
	logger *slog.Logger,
) *ReminderNotifier {
	return &ReminderNotifier{
		users:     users,
		reminders: reminders,
		publisher: publisher,
		interval:  interval,
		lookahead: lookahead,
		logger:    logger,
	}
}

// Run sweeps once immediately, then on every tick until the context is
// cancelled.
func (n *ReminderNotifier) Run(ctx context.Context) {
	ticker := time.NewTicker(n.interval)
	defer ticker.Stop()

	n.Sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n.Sweep(ctx)
		}
	}
}

// Sweep loads all users and notifies their due reminders. One user's failure
// is logged and skipped so it cannot abort the rest of the cycle.
func (n *ReminderNotifier) Sweep(ctx context.Context) {
	users, err := n.users.GetAll(ctx)
	if err != nil {
		n.logger.Error("reminder sweep: load users", "error", err)
		return
	}

	cutoff := time.Now().Add(n.lookahead)
	notified := 0
	for _, user := range users {
		due, err := n.reminders.UpcomingByUserID(ctx, user.ID, cutoff)
		if err != nil {
			n.logger.Error("reminder sweep: load reminders", "user_id", user.ID, "error", err)
			continue
		}
		for _, reminder := range due {
			if err := n.notify(ctx, &user, &reminder); err != nil {
				n.logger.Error("reminder sweep: notify",
					"user_id", user.ID,
					"reminder_id", reminder.ID,
					"error", err)
				continue
			}
			notified++
		}
	}

	n.logger.Info("reminder sweep complete", "users", len(users), "notified", notified)
}

func (n *ReminderNotifier) notify(ctx context.Context, user *models.User, reminder *models.Reminder) error {
	n.logger.Info("reminder due",
		"user_id", user.ID,
		"email", user.Email,
		"reminder_id", reminder.ID,
		"title", reminder.Title,
		"due_date", reminder.DueDate)

	if n.publisher == nil {
		return nil
	}

	body, err := json.Marshal(ReminderMessage{
		UserID:     user.ID,
		Email:      user.Email,
		ReminderID: reminder.ID,
		Title:      reminder.Title,
		DueDate:    reminder.DueDate,
		Timestamp:  time.Now(),
	})
	if err != nil {
		return err
	}
	return n.publisher.Publish(ctx, body)
}
