package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/fin_automation_app/internal/apperrors"
	"github.com/SscSPs/fin_automation_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fin_automation_app/internal/core/ports/repositories"
	"github.com/SscSPs/fin_automation_app/internal/models"
	"github.com/SscSPs/fin_automation_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for transactions and their lines.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryFacade
var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

// CreateTransaction inserts the header and every line in one database transaction.
func (r *PgxJournalRepository) CreateTransaction(ctx context.Context, txn domain.Transaction) (int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	// Will be ignored if the transaction is committed successfully
	defer r.Rollback(ctx, tx)

	modelTxn := mapping.ToModelTransaction(txn)

	// 1. Insert the header
	headerQuery := `
		INSERT INTO transactions (txn_date, description, created_at)
		VALUES ($1, $2, $3)
		RETURNING id;
	`
	var id int64
	if err := tx.QueryRow(ctx, headerQuery, modelTxn.TxnDate, modelTxn.Description, modelTxn.CreatedAt).Scan(&id); err != nil {
		return 0, apperrors.NewAppError(500, "failed to insert transaction", err)
	}

	// 2. Insert the lines in order
	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO journal_lines (transaction_id, account_id, debit, credit)
		VALUES ($1, $2, $3, $4);
	`
	for _, line := range modelTxn.Lines {
		batch.Queue(lineQuery, id, line.AccountID, line.Debit, line.Credit)
	}
	// Close reports the first failed insert
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return 0, apperrors.NewAppError(500, fmt.Sprintf("failed to insert lines for transaction %d", id), err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return id, nil
}

// ListTransactions returns transactions newest first with their lines joined to accounts.
func (r *PgxJournalRepository) ListTransactions(ctx context.Context, params portsrepo.ListTransactionsParams) ([]domain.Transaction, error) {
	query := `
		SELECT id, txn_date, description, created_at
		FROM transactions
		WHERE ($1::BIGINT = 0 OR id < $1)
		ORDER BY id DESC
	`
	args := []any{params.BeforeID}
	if params.Limit > 0 {
		query += ` LIMIT $2`
		args = append(args, params.Limit)
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	headers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Transaction, error) {
		var m models.Transaction
		err := row.Scan(&m.TransactionID, &m.TxnDate, &m.Description, &m.CreatedAt)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan transactions: %w", err)
	}
	if len(headers) == 0 {
		return []domain.Transaction{}, nil
	}

	ids := make([]int64, len(headers))
	for i, h := range headers {
		ids[i] = h.TransactionID
	}
	lines, err := r.findLines(ctx, ids)
	if err != nil {
		return nil, err
	}

	txns := make([]domain.Transaction, len(headers))
	for i, h := range headers {
		h.Lines = lines[h.TransactionID]
		txns[i] = mapping.ToDomainTransaction(h)
	}
	return txns, nil
}

// FindTransactionByID retrieves one transaction and its lines.
func (r *PgxJournalRepository) FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	query := `
		SELECT id, txn_date, description, created_at
		FROM transactions
		WHERE id = $1;
	`
	var m models.Transaction
	err := r.Pool.QueryRow(ctx, query, transactionID).Scan(&m.TransactionID, &m.TxnDate, &m.Description, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %d: %w", transactionID, err)
	}

	lines, err := r.findLines(ctx, []int64{transactionID})
	if err != nil {
		return nil, err
	}
	m.Lines = lines[transactionID]
	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

// findLines loads the lines of the given transactions grouped by transaction id, in insertion order.
func (r *PgxJournalRepository) findLines(ctx context.Context, transactionIDs []int64) (map[int64][]models.JournalLine, error) {
	query := `
		SELECT jl.id, jl.transaction_id, jl.account_id, COALESCE(a.code, '') AS code, COALESCE(a.name, '') AS name, jl.debit, jl.credit
		FROM journal_lines jl
		LEFT JOIN accounts a ON a.id = jl.account_id
		WHERE jl.transaction_id = ANY($1)
		ORDER BY jl.transaction_id, jl.id;
	`
	rows, err := r.Pool.Query(ctx, query, transactionIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal lines: %w", err)
	}
	lines, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.JournalLine])
	if err != nil {
		return nil, fmt.Errorf("failed to scan journal lines: %w", err)
	}

	grouped := make(map[int64][]models.JournalLine, len(transactionIDs))
	for _, l := range lines {
		grouped[l.TransactionID] = append(grouped[l.TransactionID], l)
	}
	return grouped, nil
}
