// Package document keeps the ledger as JSON documents in bbolt buckets.
// Each bucket is keyed by a big-endian id drawn from the bucket's own sequence.
package document

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	portsrepo "github.com/SscSPs/fin_automation_app/internal/core/ports/repositories"
	bolt "go.etcd.io/bbolt"
)

var (
	accountsBucket     = []byte("accounts")
	transactionsBucket = []byte("transactions")
	linesBucket        = []byte("journal_lines")
	expensesBucket     = []byte("expenses")
)

// Init creates the buckets the repositories expect.
func Init(db *bolt.DB) error {
	return db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{accountsBucket, transactionsBucket, linesBucket, expensesBucket} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", name, err)
			}
		}
		return nil
	})
}

// NewRepositoryProvider builds the bbolt-backed repositories. Init must have run on db.
func NewRepositoryProvider(db *bolt.DB) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo: &accountRepository{db: db},
		JournalRepo: &journalRepository{db: db},
		ExpenseRepo: &expenseRepository{db: db},
	}
}

func itob(id int64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(id))
	return b
}

func btoi(b []byte) int64 {
	return int64(binary.BigEndian.Uint64(b))
}

// nextID draws the next id from the bucket sequence.
func nextID(b *bolt.Bucket) (int64, error) {
	seq, err := b.NextSequence()
	if err != nil {
		return 0, fmt.Errorf("failed to allocate id: %w", err)
	}
	return int64(seq), nil
}

func put(b *bolt.Bucket, id int64, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document %d: %w", id, err)
	}
	return b.Put(itob(id), data)
}
