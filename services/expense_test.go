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

func newExpenseService(t *testing.T) (*ExpenseService, *IncomeService) {
	t.Helper()
	db := newTestDB(t)
	incomeRepo := repositories.NewIncomeRepository(db)
	expenseRepo := repositories.NewExpenseRepository(db)
	return NewExpenseService(expenseRepo, incomeRepo, testLogger()),
		NewIncomeService(incomeRepo, testLogger())
}

func TestFinancialSummaryIdentity(t *testing.T) {
	expenses, incomes := newExpenseService(t)
	ctx := context.Background()

	_, err := incomes.AddIncome(ctx, 1, &models.IncomeRequest{
		Amount: decimal.NewFromInt(3000), Date: time.Now(), Category: "Salary",
	})
	require.NoError(t, err)
	_, err = incomes.AddIncome(ctx, 1, &models.IncomeRequest{
		Amount: decimal.NewFromInt(500), Date: time.Now(), Category: "Side",
	})
	require.NoError(t, err)
	_, err = expenses.AddExpense(ctx, 1, &models.ExpenseRequest{
		Amount: decimal.NewFromInt(1200), Date: time.Now(), Category: "Rent",
	})
	require.NoError(t, err)

	summary, err := expenses.GetFinancialSummary(ctx, 1)
	require.NoError(t, err)
	requireDecimalEqual(t, decimal.NewFromInt(3500), summary.TotalIncome)
	requireDecimalEqual(t, decimal.NewFromInt(1200), summary.TotalExpenses)
	requireDecimalEqual(t, decimal.NewFromInt(2300), summary.TotalSavings)
}

func TestFinancialSummaryCanBeNegative(t *testing.T) {
	expenses, incomes := newExpenseService(t)
	ctx := context.Background()

	_, err := incomes.AddIncome(ctx, 1, &models.IncomeRequest{
		Amount: decimal.NewFromInt(100), Date: time.Now(),
	})
	require.NoError(t, err)
	_, err = expenses.AddExpense(ctx, 1, &models.ExpenseRequest{
		Amount: decimal.NewFromInt(250), Date: time.Now(),
	})
	require.NoError(t, err)

	summary, err := expenses.GetFinancialSummary(ctx, 1)
	require.NoError(t, err)
	requireDecimalEqual(t, decimal.NewFromInt(-150), summary.TotalSavings)
}

func TestFinancialSummaryEmptyUser(t *testing.T) {
	expenses, _ := newExpenseService(t)

	summary, err := expenses.GetFinancialSummary(context.Background(), 42)
	require.NoError(t, err)
	requireDecimalEqual(t, decimal.Zero, summary.TotalIncome)
	requireDecimalEqual(t, decimal.Zero, summary.TotalExpenses)
	requireDecimalEqual(t, decimal.Zero, summary.TotalSavings)
}

func TestDeleteExpenseNotFound(t *testing.T) {
	expenses, _ := newExpenseService(t)

	err := expenses.DeleteExpense(context.Background(), 1, 9999)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestDeleteExpenseOwnedByOtherUser(t *testing.T) {
	expenses, _ := newExpenseService(t)
	ctx := context.Background()

	expense, err := expenses.AddExpense(ctx, 1, &models.ExpenseRequest{
		Amount: decimal.NewFromInt(50), Date: time.Now(),
	})
	require.NoError(t, err)

	err = expenses.DeleteExpense(ctx, 2, expense.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestExpenseListBetween(t *testing.T) {
	expenses, _ := newExpenseService(t)
	ctx := context.Background()

	old := time.Now().AddDate(0, -2, 0)
	recent := time.Now().AddDate(0, 0, -1)

	_, err := expenses.AddExpense(ctx, 1, &models.ExpenseRequest{Amount: decimal.NewFromInt(10), Date: old})
	require.NoError(t, err)
	_, err = expenses.AddExpense(ctx, 1, &models.ExpenseRequest{Amount: decimal.NewFromInt(20), Date: recent})
	require.NoError(t, err)

	got, err := expenses.GetExpenses(ctx, 1, time.Now().AddDate(0, -1, 0), time.Now())
	require.NoError(t, err)
	require.Len(t, got, 1)
	requireDecimalEqual(t, decimal.NewFromInt(20), got[0].Amount)
}
