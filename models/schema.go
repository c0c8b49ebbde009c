package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// User represents a user in the system.
type User struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	Username     string          `gorm:"uniqueIndex;not null;size:50" json:"username"`
	Email        string          `gorm:"uniqueIndex;not null;size:255" json:"email"`
	PasswordHash string          `gorm:"not null" json:"-"`
	Role         string          `gorm:"size:20;default:user" json:"role"`
	Balance      decimal.Decimal `gorm:"type:decimal(18,2)" json:"balance"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`

	Accounts []Account `json:"accounts,omitempty"`
}

// Account holds a balance owned by a user. Transfers are the only write path
// and never let the balance go negative.
type Account struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	UserID    uint            `gorm:"not null;index" json:"user_id"`
	Balance   decimal.Decimal `gorm:"type:decimal(18,2)" json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Budget is a named spending plan for a period, with three category buckets.
type Budget struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	UserID    uint            `gorm:"not null;index" json:"user_id"`
	Name      string          `gorm:"not null" json:"name"`
	Amount    decimal.Decimal `gorm:"type:decimal(18,2)" json:"amount"`
	StartDate time.Time       `json:"start_date"`
	EndDate   time.Time       `json:"end_date"`

	Needs   []BudgetCategory `gorm:"foreignKey:NeedsBudgetID;constraint:OnDelete:CASCADE" json:"needs,omitempty"`
	Wants   []BudgetCategory `gorm:"foreignKey:WantsBudgetID" json:"wants,omitempty"`
	Savings []BudgetCategory `gorm:"foreignKey:SavingsBudgetID" json:"savings,omitempty"`
}

// BudgetCategory is one (category, value) allocation. Exactly one of the
// three budget foreign keys is set, selecting the bucket it belongs to.
type BudgetCategory struct {
	ID       uint            `gorm:"primaryKey" json:"id"`
	Category string          `gorm:"not null" json:"category"`
	Value    decimal.Decimal `gorm:"type:decimal(18,2)" json:"value"`

	NeedsBudgetID   *uint `gorm:"index" json:"needs_budget_id,omitempty"`
	WantsBudgetID   *uint `gorm:"index" json:"wants_budget_id,omitempty"`
	SavingsBudgetID *uint `gorm:"index" json:"savings_budget_id,omitempty"`
}

// Bucket selects one of a budget's three category collections.
type Bucket string

const (
	BucketNeeds   Bucket = "needs"
	BucketWants   Bucket = "wants"
	BucketSavings Bucket = "savings"
)

// Valid reports whether b names a known bucket.
func (b Bucket) Valid() bool {
	switch b {
	case BucketNeeds, BucketWants, BucketSavings:
		return true
	}
	return false
}

// Column returns the foreign-key column linking a category to this bucket.
func (b Bucket) Column() string {
	switch b {
	case BucketWants:
		return "wants_budget_id"
	case BucketSavings:
		return "savings_budget_id"
	default:
		return "needs_budget_id"
	}
}

// TransactionType is the direction of a transaction.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "Income"
	TransactionTypeExpense TransactionType = "Expense"
)

// Transaction represents a financial transaction. Deletes are soft.
type Transaction struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	UserID      uint            `gorm:"not null;index" json:"user_id"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,2)" json:"amount"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	Category    string          `json:"category"`
	Type        TransactionType `gorm:"size:10" json:"type"`
	IsDeleted   bool            `gorm:"default:false;index" json:"is_deleted"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Income is a single income entry.
type Income struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	UserID      uint            `gorm:"not null;index" json:"user_id"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,2)" json:"amount"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
}

// Expense is a single expense entry. Pay records the payment method.
type Expense struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	UserID      uint            `gorm:"not null;index" json:"user_id"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,2)" json:"amount"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Pay         string          `json:"pay"`
}

// Goal is a savings goal with a target amount and date.
type Goal struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	UserID        uint            `gorm:"not null;index" json:"user_id"`
	Name          string          `gorm:"not null" json:"name"`
	TargetAmount  decimal.Decimal `gorm:"type:decimal(18,2)" json:"target_amount"`
	CurrentAmount decimal.Decimal `gorm:"type:decimal(18,2)" json:"current_amount"`
	StartDate     time.Time       `json:"start_date"`
	TargetDate    time.Time       `json:"target_date"`
	IsCompleted   bool            `gorm:"default:false" json:"is_completed"`
}

// ProgressPercentage returns CurrentAmount/TargetAmount as a percentage.
// A goal with a zero target has no meaningful progress and reports 0.
func (g *Goal) ProgressPercentage() decimal.Decimal {
	if g.TargetAmount.IsZero() {
		return decimal.Zero
	}
	return g.CurrentAmount.Div(g.TargetAmount).Mul(decimal.NewFromInt(100))
}

// Reminder is a dated to-do owned by a user.
type Reminder struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date"`
	IsCompleted bool      `gorm:"default:false" json:"is_completed"`
}
