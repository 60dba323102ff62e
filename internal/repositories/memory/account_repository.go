package memory

import (
	"context"
	"sort"

	"github.com/SscSPs/fin_automation_app/internal/apperrors"
	"github.com/SscSPs/fin_automation_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fin_automation_app/internal/core/ports/repositories"
)

type accountRepository struct {
	store *Store
}

var _ portsrepo.AccountRepositoryFacade = (*accountRepository)(nil)

// SeedAccounts inserts accounts only when the store holds none.
func (r *accountRepository) SeedAccounts(ctx context.Context, accounts []domain.Account) (int, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.accounts) > 0 {
		return 0, nil
	}
	for _, acc := range accounts {
		s.nextAccountID++
		acc.AccountID = s.nextAccountID
		s.accounts = append(s.accounts, acc)
	}
	return len(accounts), nil
}

func (r *accountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	accounts := make([]domain.Account, len(s.accounts))
	copy(accounts, s.accounts)
	sort.SliceStable(accounts, func(i, j int) bool { return accounts[i].Code < accounts[j].Code })
	return accounts, nil
}

func (r *accountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, acc := range s.accounts {
		if acc.AccountID == accountID {
			found := acc
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}
