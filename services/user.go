package services

import (
	"context"
	"log/slog"

	"finance-manager-be/models"
	"finance-manager-be/repositories"
)

// UserService handles user profile reads, updates and deletion, plus account
// management for the transfer endpoints.
type UserService struct {
	users    repositories.UserRepository
	accounts repositories.AccountRepository
	logger   *slog.Logger
}

func NewUserService(users repositories.UserRepository, accounts repositories.AccountRepository, logger *slog.Logger) *UserService {
	return &UserService{users: users, accounts: accounts, logger: logger}
}

func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *UserService) UpdateUser(ctx context.Context, id uint, req *models.UserUpdateRequest) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Username = req.Username
	user.Email = req.Email

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("user deleted", "user_id", id)
	return nil
}

func (s *UserService) CreateAccount(ctx context.Context, userID uint, account *models.Account) (*models.Account, error) {
	account.UserID = userID
	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, err
	}
	s.logger.Info("account created", "account_id", account.ID, "user_id", userID)
	return account, nil
}

func (s *UserService) GetAccounts(ctx context.Context, userID uint) ([]models.Account, error) {
	return s.accounts.GetByUserID(ctx, userID)
}
