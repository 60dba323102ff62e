package repositories

import (
	"context"

	"github.com/SscSPs/fin_automation_app/internal/core/domain"
)

// ListTransactionsParams narrows a transaction listing.
type ListTransactionsParams struct {
	// Limit caps the number of transactions returned; 0 means no cap.
	Limit int
	// BeforeID only returns transactions with a smaller id; 0 means start at the newest.
	BeforeID int64
}

// TransactionWriter defines the single ledger mutation.
type TransactionWriter interface {
	// CreateTransaction persists the header and every line as one atomic unit and
	// returns the id the store assigned. On error nothing is persisted.
	CreateTransaction(ctx context.Context, txn domain.Transaction) (int64, error)
}

// TransactionReader defines read operations for posted transactions
type TransactionReader interface {
	// ListTransactions returns transactions newest first with lines joined to account code and name.
	ListTransactions(ctx context.Context, params ListTransactionsParams) ([]domain.Transaction, error)

	// FindTransactionByID retrieves a transaction with its lines. Returns apperrors.ErrNotFound when absent.
	FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error)
}

// JournalRepositoryFacade combines all ledger-related repository interfaces
type JournalRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
