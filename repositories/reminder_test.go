package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finance-manager-be/apperr"
	"finance-manager-be/models"
)

func TestUpcomingByUserIDWindow(t *testing.T) {
	repo := NewReminderRepository(newTestDB(t))
	ctx := context.Background()
	now := time.Now()

	seed := []models.Reminder{
		{UserID: 1, Title: "due soon", DueDate: now.Add(2 * time.Hour)},
		{UserID: 1, Title: "overdue", DueDate: now.Add(-time.Hour)},
		{UserID: 1, Title: "far away", DueDate: now.Add(72 * time.Hour)},
		{UserID: 1, Title: "done", DueDate: now.Add(time.Hour), IsCompleted: true},
		{UserID: 2, Title: "someone else", DueDate: now.Add(time.Hour)},
	}
	for i := range seed {
		require.NoError(t, repo.Create(ctx, &seed[i]))
	}

	upcoming, err := repo.UpcomingByUserID(ctx, 1, now.Add(24*time.Hour))
	require.NoError(t, err)
	require.Len(t, upcoming, 2)

	// Ordered by due date, so the overdue one comes first.
	assert.Equal(t, "overdue", upcoming[0].Title)
	assert.Equal(t, "due soon", upcoming[1].Title)
}

func TestReminderDeleteMissing(t *testing.T) {
	repo := NewReminderRepository(newTestDB(t))

	err := repo.Delete(context.Background(), 9999)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
