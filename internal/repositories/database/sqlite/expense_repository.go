package sqlite

import (
	"context"
	"fmt"

	"github.com/SscSPs/fin_automation_app/internal/apperrors"
	"github.com/SscSPs/fin_automation_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fin_automation_app/internal/core/ports/repositories"
	"github.com/SscSPs/fin_automation_app/internal/models"
	"github.com/SscSPs/fin_automation_app/internal/utils/mapping"
)

type expenseRepository struct {
	BaseRepository
}

var _ portsrepo.ExpenseRepositoryFacade = (*expenseRepository)(nil)

func (r *expenseRepository) CreateExpense(ctx context.Context, expense domain.Expense) (int64, error) {
	m := mapping.ToModelExpense(expense)
	res, err := r.DB.ExecContext(ctx, `
		INSERT INTO expenses (expense_date, category, description, amount, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, formatDate(m.ExpenseDate), m.Category, m.Description, m.Amount.String(), formatTimestamp(m.CreatedAt))
	if err != nil {
		return 0, fmt.Errorf("failed to insert expense: %w", err)
	}
	return res.LastInsertId()
}

// ListExpenses compares dates as text, which orders correctly for the stored layout.
func (r *expenseRepository) ListExpenses(ctx context.Context, filter domain.ExpenseFilter) ([]domain.Expense, error) {
	query := `SELECT id, expense_date, category, description, amount, created_at FROM expenses WHERE 1 = 1`
	var args []any
	if filter.StartDate != nil {
		query += ` AND expense_date >= ?`
		args = append(args, formatDate(*filter.StartDate))
	}
	if filter.EndDate != nil {
		query += ` AND expense_date <= ?`
		args = append(args, formatDate(*filter.EndDate))
	}
	query += ` ORDER BY expense_date DESC, id DESC`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	expenses := []domain.Expense{}
	for rows.Next() {
		var m models.Expense
		var date, createdAt string
		if err := rows.Scan(&m.ExpenseID, &date, &m.Category, &m.Description, &m.Amount, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		if m.ExpenseDate, err = parseDate(date); err != nil {
			return nil, err
		}
		if m.CreatedAt, err = parseTimestamp(createdAt); err != nil {
			return nil, err
		}
		expenses = append(expenses, mapping.ToDomainExpense(m))
	}
	return expenses, rows.Err()
}

func (r *expenseRepository) DeleteExpense(ctx context.Context, expenseID int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?`, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense %d: %w", expenseID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete expense %d: %w", expenseID, err)
	}
	if n == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
