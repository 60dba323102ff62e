package repositories

import (
	"context"

	"github.com/SscSPs/fin_automation_app/internal/core/domain"
)

// AccountReader defines read operations for the chart of accounts
type AccountReader interface {
	// ListAccounts returns every account ordered by code.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// FindAccountByID retrieves a single account. Returns apperrors.ErrNotFound when absent.
	FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)
}

// AccountWriter defines write operations for the chart of accounts
type AccountWriter interface {
	// SeedAccounts inserts accounts, in order, only when the store holds none.
	// It returns how many rows were inserted (0 when the chart was already present).
	SeedAccounts(ctx context.Context, accounts []domain.Account) (int, error)
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
