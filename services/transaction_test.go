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

func newTransactionService(t *testing.T) *TransactionService {
	t.Helper()
	db := newTestDB(t)
	return NewTransactionService(repositories.NewTransactionRepository(db), testLogger())
}

func TestTransactionSoftDelete(t *testing.T) {
	svc := newTransactionService(t)
	ctx := context.Background()

	transaction, err := svc.AddTransaction(ctx, 1, &models.TransactionRequest{
		Amount:   decimal.NewFromInt(50),
		Date:     time.Now(),
		Category: "Groceries",
		Type:     models.TransactionTypeExpense,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTransaction(ctx, 1, transaction.ID))

	// Deleted transactions disappear from listings.
	transactions, err := svc.GetTransactions(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, transactions)

	// And a second delete reports not-found, not a crash.
	err = svc.DeleteTransaction(ctx, 1, transaction.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestDeleteTransactionNotFound(t *testing.T) {
	svc := newTransactionService(t)

	err := svc.DeleteTransaction(context.Background(), 1, 9999)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestUpdateTransactionOwnedByOtherUser(t *testing.T) {
	svc := newTransactionService(t)
	ctx := context.Background()

	transaction, err := svc.AddTransaction(ctx, 1, &models.TransactionRequest{
		Amount: decimal.NewFromInt(10),
		Date:   time.Now(),
		Type:   models.TransactionTypeIncome,
	})
	require.NoError(t, err)

	_, err = svc.UpdateTransaction(ctx, 2, transaction.ID, &models.TransactionRequest{
		Amount: decimal.NewFromInt(99),
		Date:   time.Now(),
		Type:   models.TransactionTypeIncome,
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestTransactionListIsUserScoped(t *testing.T) {
	svc := newTransactionService(t)
	ctx := context.Background()

	_, err := svc.AddTransaction(ctx, 1, &models.TransactionRequest{
		Amount: decimal.NewFromInt(10), Date: time.Now(), Type: models.TransactionTypeIncome,
	})
	require.NoError(t, err)
	_, err = svc.AddTransaction(ctx, 2, &models.TransactionRequest{
		Amount: decimal.NewFromInt(20), Date: time.Now(), Type: models.TransactionTypeExpense,
	})
	require.NoError(t, err)

	transactions, err := svc.GetTransactions(ctx, 1)
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	requireDecimalEqual(t, decimal.NewFromInt(10), transactions[0].Amount)
}
