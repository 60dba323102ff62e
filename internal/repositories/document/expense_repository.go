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

type expenseRepository struct {
	db *bolt.DB
}

var _ portsrepo.ExpenseRepositoryFacade = (*expenseRepository)(nil)

func (r *expenseRepository) CreateExpense(ctx context.Context, expense domain.Expense) (int64, error) {
	var id int64
	err := r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(expensesBucket)
		var err error
		if id, err = nextID(b); err != nil {
			return err
		}
		m := mapping.ToModelExpense(expense)
		m.ExpenseID = id
		return put(b, id, m)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *expenseRepository) ListExpenses(ctx context.Context, filter domain.ExpenseFilter) ([]domain.Expense, error) {
	expenses := []domain.Expense{}
	err := r.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(expensesBucket).ForEach(func(k, v []byte) error {
			var m models.Expense
			if err := json.Unmarshal(v, &m); err != nil {
				return fmt.Errorf("failed to decode expense %d: %w", btoi(k), err)
			}
			e := mapping.ToDomainExpense(m)
			if filter.StartDate != nil && e.Date.Before(*filter.StartDate) {
				return nil
			}
			if filter.EndDate != nil && e.Date.After(*filter.EndDate) {
				return nil
			}
			expenses = append(expenses, e)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(expenses, func(i, j int) bool {
		if !expenses[i].Date.Equal(expenses[j].Date) {
			return expenses[i].Date.After(expenses[j].Date)
		}
		return expenses[i].ExpenseID > expenses[j].ExpenseID
	})
	return expenses, nil
}

func (r *expenseRepository) DeleteExpense(ctx context.Context, expenseID int64) error {
	return r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(expensesBucket)
		if b.Get(itob(expenseID)) == nil {
			return apperrors.ErrNotFound
		}
		return b.Delete(itob(expenseID))
	})
}
