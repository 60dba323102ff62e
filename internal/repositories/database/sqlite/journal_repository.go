package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/SscSPs/fin_automation_app/internal/apperrors"
	"github.com/SscSPs/fin_automation_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fin_automation_app/internal/core/ports/repositories"
	"github.com/SscSPs/fin_automation_app/internal/models"
	"github.com/SscSPs/fin_automation_app/internal/utils/mapping"
)

type journalRepository struct {
	BaseRepository
}

var _ portsrepo.JournalRepositoryFacade = (*journalRepository)(nil)

// CreateTransaction writes the header and all lines in one transaction.
func (r *journalRepository) CreateTransaction(ctx context.Context, txn domain.Transaction) (int64, error) {
	m := mapping.ToModelTransaction(txn)
	var id int64
	err := r.InTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO transactions (txn_date, description, created_at) VALUES (?, ?, ?)`,
			formatDate(m.TxnDate), m.Description, formatTimestamp(m.CreatedAt))
		if err != nil {
			return fmt.Errorf("failed to insert transaction: %w", err)
		}
		if id, err = res.LastInsertId(); err != nil {
			return fmt.Errorf("failed to read transaction id: %w", err)
		}

		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO journal_lines (transaction_id, account_id, debit, credit) VALUES (?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare line insert: %w", err)
		}
		defer stmt.Close()

		for i, line := range m.Lines {
			if _, err := stmt.ExecContext(ctx, id, line.AccountID, line.Debit.String(), line.Credit.String()); err != nil {
				return fmt.Errorf("failed to insert line %d: %w", i+1, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to create transaction", err)
	}
	return id, nil
}

func (r *journalRepository) ListTransactions(ctx context.Context, params portsrepo.ListTransactionsParams) ([]domain.Transaction, error) {
	query := `
		SELECT id, txn_date, description, created_at
		FROM transactions
		WHERE (? = 0 OR id < ?)
		ORDER BY id DESC
	`
	args := []any{params.BeforeID, params.BeforeID}
	if params.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, params.Limit)
	}

	headers, err := r.queryHeaders(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return r.withLines(ctx, headers)
}

func (r *journalRepository) FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	headers, err := r.queryHeaders(ctx, `
		SELECT id, txn_date, description, created_at
		FROM transactions
		WHERE id = ?
	`, transactionID)
	if err != nil {
		return nil, err
	}
	if len(headers) == 0 {
		return nil, apperrors.ErrNotFound
	}
	txns, err := r.withLines(ctx, headers)
	if err != nil {
		return nil, err
	}
	return &txns[0], nil
}

// queryHeaders reads every header before returning; the handle has a single
// connection, so a second query must not start while rows are open.
func (r *journalRepository) queryHeaders(ctx context.Context, query string, args ...any) ([]models.Transaction, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var headers []models.Transaction
	for rows.Next() {
		var m models.Transaction
		var date, createdAt string
		if err := rows.Scan(&m.TransactionID, &date, &m.Description, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		if m.TxnDate, err = parseDate(date); err != nil {
			return nil, err
		}
		if m.CreatedAt, err = parseTimestamp(createdAt); err != nil {
			return nil, err
		}
		headers = append(headers, m)
	}
	return headers, rows.Err()
}

func (r *journalRepository) withLines(ctx context.Context, headers []models.Transaction) ([]domain.Transaction, error) {
	txns := make([]domain.Transaction, 0, len(headers))
	if len(headers) == 0 {
		return txns, nil
	}

	placeholders := make([]string, len(headers))
	args := make([]any, len(headers))
	for i, h := range headers {
		placeholders[i] = "?"
		args[i] = h.TransactionID
	}
	query := `
		SELECT jl.id, jl.transaction_id, jl.account_id, COALESCE(a.code, '') AS code, COALESCE(a.name, '') AS name, jl.debit, jl.credit
		FROM journal_lines jl
		LEFT JOIN accounts a ON a.id = jl.account_id
		WHERE jl.transaction_id IN (` + strings.Join(placeholders, ", ") + `)
		ORDER BY jl.transaction_id, jl.id
	`
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal lines: %w", err)
	}
	defer rows.Close()

	grouped := make(map[int64][]models.JournalLine, len(headers))
	for rows.Next() {
		var l models.JournalLine
		if err := rows.Scan(&l.LineID, &l.TransactionID, &l.AccountID, &l.AccountCode, &l.AccountName, &l.Debit, &l.Credit); err != nil {
			return nil, fmt.Errorf("failed to scan journal line: %w", err)
		}
		grouped[l.TransactionID] = append(grouped[l.TransactionID], l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, h := range headers {
		h.Lines = grouped[h.TransactionID]
		txns = append(txns, mapping.ToDomainTransaction(h))
	}
	return txns, nil
}
