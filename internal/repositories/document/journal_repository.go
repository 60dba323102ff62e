package document

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/SscSPs/fin_automation_app/internal/apperrors"
	"github.com/SscSPs/fin_automation_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fin_automation_app/internal/core/ports/repositories"
	"github.com/SscSPs/fin_automation_app/internal/models"
	"github.com/SscSPs/fin_automation_app/internal/utils/mapping"
	bolt "go.etcd.io/bbolt"
)

type journalRepository struct {
	db *bolt.DB
}

var _ portsrepo.JournalRepositoryFacade = (*journalRepository)(nil)

// CreateTransaction stores the transaction and its lines as one document in a
// single bolt update, which either commits whole or not at all. A line naming an
// account that is not stored fails the update.
func (r *journalRepository) CreateTransaction(ctx context.Context, txn domain.Transaction) (int64, error) {
	var id int64
	err := r.db.Update(func(tx *bolt.Tx) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		b := tx.Bucket(transactionsBucket)
		var err error
		if id, err = nextID(b); err != nil {
			return err
		}

		txn.TransactionID = id
		m := mapping.ToModelTransaction(txn)
		accounts := tx.Bucket(accountsBucket)
		lineSeq := tx.Bucket(linesBucket)
		for i := range m.Lines {
			if accounts.Get(itob(m.Lines[i].AccountID)) == nil {
				return fmt.Errorf("failed to insert line %d: account %d does not exist", i+1, m.Lines[i].AccountID)
			}
			if m.Lines[i].LineID, err = nextID(lineSeq); err != nil {
				return err
			}
		}
		return put(b, id, m)
	})
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to create transaction", err)
	}
	return id, nil
}

// ListTransactions walks the bucket backwards so the newest id comes first.
func (r *journalRepository) ListTransactions(ctx context.Context, params portsrepo.ListTransactionsParams) ([]domain.Transaction, error) {
	txns := []domain.Transaction{}
	err := r.db.View(func(tx *bolt.Tx) error {
		accounts, err := loadAccounts(tx)
		if err != nil {
			return err
		}

		c := tx.Bucket(transactionsBucket).Cursor()
		var k, v []byte
		if params.BeforeID > 0 {
			// Seek lands on the first key >= BeforeID; step back past it
			if k, _ = c.Seek(itob(params.BeforeID)); k == nil {
				k, v = c.Last()
			} else {
				k, v = c.Prev()
			}
		} else {
			k, v = c.Last()
		}

		for ; k != nil; k, v = c.Prev() {
			txn, err := decodeTransaction(v, accounts)
			if err != nil {
				return err
			}
			txns = append(txns, txn)
			if params.Limit > 0 && len(txns) == params.Limit {
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return txns, nil
}

func (r *journalRepository) FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	var found *domain.Transaction
	err := r.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(transactionsBucket).Get(itob(transactionID))
		if data == nil {
			return apperrors.ErrNotFound
		}
		accounts, err := loadAccounts(tx)
		if err != nil {
			return err
		}
		txn, err := decodeTransaction(data, accounts)
		if err != nil {
			return err
		}
		found = &txn
		return nil
	})
	return found, err
}

// decodeTransaction joins each line to its account's current code and name.
// A line whose account is gone keeps an empty code and name.
func decodeTransaction(data []byte, accounts map[int64]models.Account) (domain.Transaction, error) {
	var m models.Transaction
	if err := json.Unmarshal(data, &m); err != nil {
		return domain.Transaction{}, fmt.Errorf("failed to decode transaction: %w", err)
	}
	for i, line := range m.Lines {
		acc := accounts[line.AccountID]
		m.Lines[i].AccountCode = acc.Code
		m.Lines[i].AccountName = acc.Name
	}
	return mapping.ToDomainTransaction(m), nil
}
