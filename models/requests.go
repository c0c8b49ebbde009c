package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterRequest is the payload for creating a new user.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginRequest is the payload for obtaining a token.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse carries the issued token and the authenticated user.
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// BudgetRequest is the payload for creating or updating a budget.
type BudgetRequest struct {
	Name      string          `json:"name" validate:"required"`
	Amount    decimal.Decimal `json:"amount" validate:"required"`
	StartDate time.Time       `json:"start_date"`
	EndDate   time.Time       `json:"end_date"`
}

// CategoryItem is one (category, value) pair submitted to a bucket.
type CategoryItem struct {
	Category string          `json:"category" validate:"required"`
	Value    decimal.Decimal `json:"value"`
}

// BudgetTotals aggregates category values across all of a user's budgets.
// Income is a placeholder until income linking lands.
type BudgetTotals struct {
	Needs   decimal.Decimal `json:"needs"`
	Wants   decimal.Decimal `json:"wants"`
	Savings decimal.Decimal `json:"savings"`
	Income  decimal.Decimal `json:"income"`
}

// TransferRequest moves an amount between two accounts.
type TransferRequest struct {
	FromAccountID uint            `json:"from_account_id" validate:"required"`
	ToAccountID   uint            `json:"to_account_id" validate:"required"`
	Amount        decimal.Decimal `json:"amount"`
}

// TransactionRequest is the payload for creating or updating a transaction.
type TransactionRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	Category    string          `json:"category"`
	Type        TransactionType `json:"type" validate:"required,oneof=Income Expense"`
}

// IncomeRequest is the payload for creating or updating an income entry.
type IncomeRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
}

// ExpenseRequest is the payload for creating or updating an expense entry.
type ExpenseRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Pay         string          `json:"pay"`
}

// FinancialSummary is income minus expenses at the time of the call.
type FinancialSummary struct {
	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	TotalSavings  decimal.Decimal `json:"total_savings"`
}

// GoalRequest is the payload for creating or updating a goal.
type GoalRequest struct {
	Name          string          `json:"name" validate:"required"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	StartDate     time.Time       `json:"start_date"`
	TargetDate    time.Time       `json:"target_date"`
	IsCompleted   bool            `json:"is_completed"`
}

// ReminderRequest is the payload for creating or updating a reminder.
type ReminderRequest struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date"`
	IsCompleted bool      `json:"is_completed"`
}

// UserUpdateRequest updates the authenticated user's profile.
type UserUpdateRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
}

// TaxCalculationRequest is the input for the stateless tax computation.
// Deductions and filing status are accepted but do not affect the result.
type TaxCalculationRequest struct {
	Income       decimal.Decimal `json:"income"`
	Deductions   decimal.Decimal `json:"deductions"`
	FilingStatus string          `json:"filing_status"`
}

// TaxCalculationResponse breaks the total tax into its components.
type TaxCalculationResponse struct {
	TotalTax                   decimal.Decimal `json:"total_tax"`
	PersonalIncomeTax          decimal.Decimal `json:"personal_income_tax"`
	PensionDisabilityInsurance decimal.Decimal `json:"pension_disability_insurance"`
	HealthInsurance            decimal.Decimal `json:"health_insurance"`
	UnemploymentInsurance      decimal.Decimal `json:"unemployment_insurance"`
}
