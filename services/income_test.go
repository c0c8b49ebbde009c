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

func newIncomeService(t *testing.T) *IncomeService {
	t.Helper()
	db := newTestDB(t)
	return NewIncomeService(repositories.NewIncomeRepository(db), testLogger())
}

func TestDeleteIncomeNotFound(t *testing.T) {
	svc := newIncomeService(t)

	err := svc.DeleteIncome(context.Background(), 1, 9999)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestDeleteIncomeOwnedByOtherUser(t *testing.T) {
	svc := newIncomeService(t)
	ctx := context.Background()

	income, err := svc.AddIncome(ctx, 1, &models.IncomeRequest{
		Amount: decimal.NewFromInt(100), Date: time.Now(),
	})
	require.NoError(t, err)

	err = svc.DeleteIncome(ctx, 2, income.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestGetIncomeMissing(t *testing.T) {
	svc := newIncomeService(t)

	_, err := svc.GetIncome(context.Background(), 9999)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
