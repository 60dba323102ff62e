package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SscSPs/fin_automation_app/internal/apperrors"
	"github.com/SscSPs/fin_automation_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fin_automation_app/internal/core/ports/repositories"
	"github.com/SscSPs/fin_automation_app/internal/models"
	"github.com/SscSPs/fin_automation_app/internal/utils/mapping"
)

type accountRepository struct {
	BaseRepository
}

var _ portsrepo.AccountRepositoryFacade = (*accountRepository)(nil)

func (r *accountRepository) SeedAccounts(ctx context.Context, accounts []domain.Account) (int, error) {
	inserted := 0
	err := r.InTx(ctx, func(tx *sql.Tx) error {
		var count int
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM accounts`).Scan(&count); err != nil {
			return fmt.Errorf("failed to count accounts: %w", err)
		}
		if count > 0 {
			return nil
		}

		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO accounts (code, name, normal_balance, account_group)
			VALUES (?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare account insert: %w", err)
		}
		defer stmt.Close()

		for _, acc := range accounts {
			m := mapping.ToModelAccount(acc)
			if _, err := stmt.ExecContext(ctx, m.Code, m.Name, string(m.NormalBalance), string(m.AccountGroup)); err != nil {
				return fmt.Errorf("failed to insert account %s: %w", m.Code, err)
			}
		}
		inserted = len(accounts)
		return nil
	})
	return inserted, err
}

func (r *accountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, code, name, normal_balance, account_group
		FROM accounts
		ORDER BY code
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var m models.Account
		if err := rows.Scan(&m.AccountID, &m.Code, &m.Name, &m.NormalBalance, &m.AccountGroup); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, mapping.ToDomainAccount(m))
	}
	return accounts, rows.Err()
}

func (r *accountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	var m models.Account
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, code, name, normal_balance, account_group
		FROM accounts
		WHERE id = ?
	`, accountID).Scan(&m.AccountID, &m.Code, &m.Name, &m.NormalBalance, &m.AccountGroup)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account %d: %w", accountID, err)
	}
	acc := mapping.ToDomainAccount(m)
	return &acc, nil
}
