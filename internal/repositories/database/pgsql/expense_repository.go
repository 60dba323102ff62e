package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/fin_automation_app/internal/apperrors"
	"github.com/SscSPs/fin_automation_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fin_automation_app/internal/core/ports/repositories"
	"github.com/SscSPs/fin_automation_app/internal/models"
	"github.com/SscSPs/fin_automation_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxExpenseRepository struct {
	BaseRepository
}

// newPgxExpenseRepository creates a new repository for expenses.
func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

func (r *PgxExpenseRepository) CreateExpense(ctx context.Context, expense domain.Expense) (int64, error) {
	m := mapping.ToModelExpense(expense)
	query := `
		INSERT INTO expenses (expense_date, category, description, amount, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`
	var id int64
	if err := r.Pool.QueryRow(ctx, query, m.ExpenseDate, m.Category, m.Description, m.Amount, m.CreatedAt).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert expense: %w", err)
	}
	return id, nil
}

// ListExpenses returns expenses in the inclusive date range, latest date first.
func (r *PgxExpenseRepository) ListExpenses(ctx context.Context, filter domain.ExpenseFilter) ([]domain.Expense, error) {
	query := `
		SELECT id, expense_date, category, description, amount, created_at
		FROM expenses
		WHERE ($1::DATE IS NULL OR expense_date >= $1)
		  AND ($2::DATE IS NULL OR expense_date <= $2)
		ORDER BY expense_date DESC, id DESC;
	`
	rows, err := r.Pool.Query(ctx, query, filter.StartDate, filter.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	modelExpenses, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Expense])
	if err != nil {
		return nil, fmt.Errorf("failed to scan expenses: %w", err)
	}

	expenses := make([]domain.Expense, len(modelExpenses))
	for i, m := range modelExpenses {
		expenses[i] = mapping.ToDomainExpense(m)
	}
	return expenses, nil
}

func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, expenseID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM expenses WHERE id = $1;`, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense %d: %w", expenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
