package services

import (
	"context"
	"log/slog"

	"finance-manager-be/apperr"
	"finance-manager-be/models"
	"finance-manager-be/repositories"
)

// TransactionService handles user-scoped transaction CRUD with soft deletes.
type TransactionService struct {
	transactions repositories.TransactionRepository
	logger       *slog.Logger
}

func NewTransactionService(transactions repositories.TransactionRepository, logger *slog.Logger) *TransactionService {
	return &TransactionService{transactions: transactions, logger: logger}
}

func (s *TransactionService) GetTransactions(ctx context.Context, userID uint) ([]models.Transaction, error) {
	return s.transactions.GetByUserID(ctx, userID)
}

func (s *TransactionService) AddTransaction(ctx context.Context, userID uint, req *models.TransactionRequest) (*models.Transaction, error) {
	transaction := &models.Transaction{
		UserID:      userID,
		Amount:      req.Amount,
		Description: req.Description,
		Date:        req.Date,
		Category:    req.Category,
		Type:        req.Type,
	}
	if err := s.transactions.Create(ctx, transaction); err != nil {
		return nil, err
	}

	s.logger.Info("transaction added", "transaction_id", transaction.ID, "user_id", userID, "type", transaction.Type)
	return transaction, nil
}

func (s *TransactionService) UpdateTransaction(ctx context.Context, userID, id uint, req *models.TransactionRequest) (*models.Transaction, error) {
	transaction, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	transaction.Amount = req.Amount
	transaction.Description = req.Description
	transaction.Date = req.Date
	transaction.Category = req.Category
	transaction.Type = req.Type

	if err := s.transactions.Update(ctx, transaction); err != nil {
		return nil, err
	}
	return transaction, nil
}

func (s *TransactionService) DeleteTransaction(ctx context.Context, userID, id uint) error {
	transaction, err := s.owned(ctx, userID, id)
	if err != nil {
		return err
	}

	if err := s.transactions.SoftDelete(ctx, transaction); err != nil {
		return err
	}
	s.logger.Info("transaction deleted", "transaction_id", id, "user_id", userID)
	return nil
}

// owned fetches a transaction and hides it behind not-found when it belongs
// to another user.
func (s *TransactionService) owned(ctx context.Context, userID, id uint) (*models.Transaction, error) {
	transaction, err := s.transactions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if transaction.UserID != userID {
		return nil, apperr.NotFound("transaction not found")
	}
	return transaction, nil
}
