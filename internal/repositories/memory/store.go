// Package memory is a process-local Ledger Store. Data lives as long as the process.
package memory

import (
	"sync"

	"github.com/SscSPs/fin_automation_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fin_automation_app/internal/core/ports/repositories"
)

// Store holds every table behind one lock so a multi-line write is never
// observed half done.
type Store struct {
	mu sync.RWMutex

	accounts     []domain.Account
	transactions []domain.Transaction
	expenses     []domain.Expense

	nextAccountID     int64
	nextTransactionID int64
	nextLineID        int64
	nextExpenseID     int64
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// NewRepositoryProvider exposes s through the repository ports.
func NewRepositoryProvider(s *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo: &accountRepository{store: s},
		JournalRepo: &journalRepository{store: s},
		ExpenseRepo: &expenseRepository{store: s},
	}
}

// hasAccount reports whether id is a stored account. Callers hold s.mu.
func (s *Store) hasAccount(id int64) bool {
	for _, acc := range s.accounts {
		if acc.AccountID == id {
			return true
		}
	}
	return false
}
