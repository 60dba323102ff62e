package repositories

import (
	"context"

	"github.com/SscSPs/fin_automation_app/internal/core/domain"
)

// ExpenseReader defines read operations for expenses
type ExpenseReader interface {
	// ListExpenses returns expenses ordered by date then id, newest first.
	ListExpenses(ctx context.Context, filter domain.ExpenseFilter) ([]domain.Expense, error)
}

// ExpenseWriter defines write operations for expenses
type ExpenseWriter interface {
	// CreateExpense persists an expense and returns its assigned id.
	CreateExpense(ctx context.Context, expense domain.Expense) (int64, error)

	// DeleteExpense removes an expense. Returns apperrors.ErrNotFound when absent.
	DeleteExpense(ctx context.Context, expenseID int64) error
}

// ExpenseRepositoryFacade combines all expense-related repository interfaces
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
