package services

import (
	"context"
	"time"

	"github.com/SscSPs/fin_automation_app/internal/core/domain"
	"github.com/SscSPs/fin_automation_app/internal/dto"
)

// JournalReaderSvc defines read operations for posted transactions
type JournalReaderSvc interface {
	// ListTransactions returns a page of transactions, newest first.
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)

	// GetTransaction retrieves a single transaction with its lines.
	GetTransaction(ctx context.Context, transactionID int64) (*domain.Transaction, error)
}

// JournalWriterSvc defines the ledger write path
type JournalWriterSvc interface {
	// PostTransaction validates lines and persists them as one transaction.
	PostTransaction(ctx context.Context, date time.Time, description string, lines []domain.JournalLine) (*domain.Transaction, error)

	// PostTemplate generates the journal for tpl and posts it.
	PostTemplate(ctx context.Context, date time.Time, description string, tpl domain.Template) (*domain.Transaction, error)
}

// JournalPreviewSvc defines read-only journal generation
type JournalPreviewSvc interface {
	// PreviewTemplate generates and checks the journal for tpl without persisting it.
	PreviewTemplate(ctx context.Context, tpl domain.Template) (*domain.JournalPreview, error)
}

// JournalSvcFacade combines all journal-related service interfaces
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
	JournalPreviewSvc
}
