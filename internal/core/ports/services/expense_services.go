package services

import (
	"context"
	"time"

	"github.com/SscSPs/fin_automation_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExpenseReaderSvc defines read operations for expenses
type ExpenseReaderSvc interface {
	ListExpenses(ctx context.Context, filter domain.ExpenseFilter) ([]domain.Expense, error)
	SummarizeExpenses(ctx context.Context, filter domain.ExpenseFilter) (*domain.ExpenseSummary, error)
}

// ExpenseWriterSvc defines write operations for expenses
type ExpenseWriterSvc interface {
	CreateExpense(ctx context.Context, date time.Time, category domain.ExpenseCategory, description string, amount decimal.Decimal) (*domain.Expense, error)
	DeleteExpense(ctx context.Context, expenseID int64) error
}

// ExpenseSvcFacade combines all expense-related service interfaces
type ExpenseSvcFacade interface {
	ExpenseReaderSvc
	ExpenseWriterSvc
}
