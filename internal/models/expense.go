package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a row of the expenses table.
type Expense struct {
	ExpenseID   int64           `db:"id" json:"id"`
	ExpenseDate time.Time       `db:"expense_date" json:"date"`
	Category    string          `db:"category" json:"category"`
	Description string          `db:"description" json:"description"`
	Amount      decimal.Decimal `db:"amount" json:"amount"`
	CreatedAt   time.Time       `db:"created_at" json:"createdAt"`
}
