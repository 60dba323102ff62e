package document

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/SscSPs/fin_automation_app/internal/apperrors"
	"github.com/SscSPs/fin_automation_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fin_automation_app/internal/core/ports/repositories"
	"github.com/SscSPs/fin_automation_app/internal/models"
	"github.com/SscSPs/fin_automation_app/internal/utils/mapping"
	bolt "go.etcd.io/bbolt"
)

type accountRepository struct {
	db *bolt.DB
}

var _ portsrepo.AccountRepositoryFacade = (*accountRepository)(nil)

func (r *accountRepository) SeedAccounts(ctx context.Context, accounts []domain.Account) (int, error) {
	inserted := 0
	err := r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(accountsBucket)
		if k, _ := b.Cursor().First(); k != nil {
			return nil
		}
		for _, acc := range accounts {
			id, err := nextID(b)
			if err != nil {
				return err
			}
			m := mapping.ToModelAccount(acc)
			m.AccountID = id
			if err := put(b, id, m); err != nil {
				return err
			}
		}
		inserted = len(accounts)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

func (r *accountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	var accounts []domain.Account
	err := r.db.View(func(tx *bolt.Tx) error {
		index, err := loadAccounts(tx)
		if err != nil {
			return err
		}
		for _, m := range index {
			accounts = append(accounts, mapping.ToDomainAccount(m))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].Code < accounts[j].Code })
	return accounts, nil
}

func (r *accountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	var found *domain.Account
	err := r.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(accountsBucket).Get(itob(accountID))
		if data == nil {
			return apperrors.ErrNotFound
		}
		var m models.Account
		if err := json.Unmarshal(data, &m); err != nil {
			return fmt.Errorf("failed to decode account %d: %w", accountID, err)
		}
		acc := mapping.ToDomainAccount(m)
		found = &acc
		return nil
	})
	return found, err
}

// loadAccounts indexes every stored account by id.
func loadAccounts(tx *bolt.Tx) (map[int64]models.Account, error) {
	index := make(map[int64]models.Account)
	err := tx.Bucket(accountsBucket).ForEach(func(k, v []byte) error {
		var m models.Account
		if err := json.Unmarshal(v, &m); err != nil {
			return fmt.Errorf("failed to decode account %d: %w", btoi(k), err)
		}
		index[m.AccountID] = m
		return nil
	})
	return index, err
}
