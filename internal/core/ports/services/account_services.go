package services

import (
	"context"

	"github.com/SscSPs/fin_automation_app/internal/core/domain"
)

// AccountReaderSvc defines read operations for the chart of accounts
type AccountReaderSvc interface {
	// ListAccounts returns the chart ordered by code.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// GetAccountByID retrieves a single account.
	GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)

	// Chart returns the chart with its template role bindings.
	Chart(ctx context.Context) (*domain.Chart, error)
}

// ChartInitializerSvc seeds the chart of accounts.
type ChartInitializerSvc interface {
	// InitializeChart seeds def into an empty store and loads the live chart.
	InitializeChart(ctx context.Context, def domain.ChartDefinition) error
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	ChartInitializerSvc
}
