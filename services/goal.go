package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"finance-manager-be/apperr"
	"finance-manager-be/models"
	"finance-manager-be/repositories"
)

// GoalService handles savings goal CRUD and savings-rate recommendations.
type GoalService struct {
	goals  repositories.GoalRepository
	logger *slog.Logger
	now    func() time.Time
}

func NewGoalService(goals repositories.GoalRepository, logger *slog.Logger) *GoalService {
	return &GoalService{goals: goals, logger: logger, now: time.Now}
}

func (s *GoalService) GetGoals(ctx context.Context, userID uint) ([]models.Goal, error) {
	return s.goals.GetByUserID(ctx, userID)
}

func (s *GoalService) GetGoal(ctx context.Context, id uint) (*models.Goal, error) {
	return s.goals.GetByID(ctx, id)
}

func (s *GoalService) AddGoal(ctx context.Context, userID uint, req *models.GoalRequest) (*models.Goal, error) {
	goal := &models.Goal{
		UserID:        userID,
		Name:          req.Name,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		StartDate:     req.StartDate,
		TargetDate:    req.TargetDate,
		IsCompleted:   req.IsCompleted,
	}
	if err := s.goals.Create(ctx, goal); err != nil {
		return nil, err
	}

	s.logger.Info("goal added", "goal_id", goal.ID, "user_id", userID, "name", goal.Name)
	return goal, nil
}

func (s *GoalService) UpdateGoal(ctx context.Context, userID, id uint, req *models.GoalRequest) (*models.Goal, error) {
	goal, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	goal.Name = req.Name
	goal.TargetAmount = req.TargetAmount
	goal.CurrentAmount = req.CurrentAmount
	goal.StartDate = req.StartDate
	goal.TargetDate = req.TargetDate
	goal.IsCompleted = req.IsCompleted

	if err := s.goals.Update(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *GoalService) DeleteGoal(ctx context.Context, userID, id uint) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}

	if err := s.goals.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("goal deleted", "goal_id", id, "user_id", userID)
	return nil
}

// GetRecommendations suggests a daily savings amount for the goal, or points
// out that the deadline has passed.
func (s *GoalService) GetRecommendations(ctx context.Context, goalID uint) ([]string, error) {
	goal, err := s.goals.GetByID(ctx, goalID)
	if err != nil {
		return nil, err
	}

	remaining := goal.TargetAmount.Sub(goal.CurrentAmount)
	daysLeft := int(goal.TargetDate.Sub(s.now()).Hours() / 24)

	if daysLeft <= 0 {
		return []string{"Your goal deadline has passed. Consider setting a new target date."}, nil
	}

	perDay := remaining.Div(decimal.NewFromInt(int64(daysLeft)))
	return []string{
		fmt.Sprintf("To reach your goal, try to save %s per day.", perDay.StringFixed(2)),
	}, nil
}

func (s *GoalService) owned(ctx context.Context, userID, id uint) (*models.Goal, error) {
	goal, err := s.goals.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if goal.UserID != userID {
		return nil, apperr.NotFound("goal not found")
	}
	return goal, nil
}
