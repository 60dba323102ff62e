package memory

import (
	"context"
	"fmt"

	"github.com/SscSPs/fin_automation_app/internal/apperrors"
	"github.com/SscSPs/fin_automation_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fin_automation_app/internal/core/ports/repositories"
)

type journalRepository struct {
	store *Store
}

var _ portsrepo.JournalRepositoryFacade = (*journalRepository)(nil)

// CreateTransaction stores the header and all lines under one write lock.
// Every line must name a stored account; otherwise nothing is stored.
func (r *journalRepository) CreateTransaction(ctx context.Context, txn domain.Transaction) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, line := range txn.Lines {
		if !s.hasAccount(line.AccountID) {
			return 0, apperrors.NewAppError(500, "failed to create transaction",
				fmt.Errorf("failed to insert line %d: account %d does not exist", i+1, line.AccountID))
		}
	}

	s.nextTransactionID++
	txn.TransactionID = s.nextTransactionID
	txn.Lines = cloneLines(txn.Lines)
	for i := range txn.Lines {
		s.nextLineID++
		txn.Lines[i].LineID = s.nextLineID
	}
	s.transactions = append(s.transactions, txn)
	return txn.TransactionID, nil
}

// ListTransactions returns transactions newest first.
func (r *journalRepository) ListTransactions(ctx context.Context, params portsrepo.ListTransactionsParams) ([]domain.Transaction, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Transaction, 0)
	for i := len(s.transactions) - 1; i >= 0; i-- {
		txn := s.transactions[i]
		if params.BeforeID > 0 && txn.TransactionID >= params.BeforeID {
			continue
		}
		txn.Lines = cloneLines(txn.Lines)
		result = append(result, txn)
		if params.Limit > 0 && len(result) == params.Limit {
			break
		}
	}
	return result, nil
}

func (r *journalRepository) FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, txn := range s.transactions {
		if txn.TransactionID == transactionID {
			txn.Lines = cloneLines(txn.Lines)
			return &txn, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func cloneLines(lines []domain.JournalLine) []domain.JournalLine {
	out := make([]domain.JournalLine, len(lines))
	copy(out, lines)
	return out
}
