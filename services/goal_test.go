package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finance-manager-be/apperr"
	"finance-manager-be/models"
	"finance-manager-be/repositories"
)

func newGoalService(t *testing.T) *GoalService {
	t.Helper()
	db := newTestDB(t)
	return NewGoalService(repositories.NewGoalRepository(db), testLogger())
}

func TestGoalRecommendationPerDay(t *testing.T) {
	svc := newGoalService(t)
	ctx := context.Background()

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	goal, err := svc.AddGoal(ctx, 1, &models.GoalRequest{
		Name:          "Vacation",
		TargetAmount:  decimal.NewFromInt(1000),
		CurrentAmount: decimal.NewFromInt(400),
		TargetDate:    now.AddDate(0, 0, 10),
	})
	require.NoError(t, err)

	recs, err := svc.GetRecommendations(ctx, goal.ID)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "To reach your goal, try to save 60.00 per day.", recs[0])
}

func TestGoalRecommendationDeadlinePassed(t *testing.T) {
	svc := newGoalService(t)
	ctx := context.Background()

	goal, err := svc.AddGoal(ctx, 1, &models.GoalRequest{
		Name:         "Late",
		TargetAmount: decimal.NewFromInt(1000),
		TargetDate:   time.Now().AddDate(0, 0, -1),
	})
	require.NoError(t, err)

	recs, err := svc.GetRecommendations(ctx, goal.ID)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Contains(t, recs[0], "deadline has passed")
}

func TestGoalRecommendationMissingGoal(t *testing.T) {
	svc := newGoalService(t)

	_, err := svc.GetRecommendations(context.Background(), 9999)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestDeleteGoalNotFound(t *testing.T) {
	svc := newGoalService(t)

	err := svc.DeleteGoal(context.Background(), 1, 9999)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestGoalProgressPercentage(t *testing.T) {
	tests := []struct {
		name    string
		target  int64
		current int64
		want    string
	}{
		{"halfway", 1000, 500, "50"},
		{"complete", 200, 200, "100"},
		{"zero target clamps to zero", 0, 150, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			goal := models.Goal{
				TargetAmount:  decimal.NewFromInt(tt.target),
				CurrentAmount: decimal.NewFromInt(tt.current),
			}
			requireDecimalEqual(t, decimal.RequireFromString(tt.want), goal.ProgressPercentage())
		})
	}
}
