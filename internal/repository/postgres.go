// Package repository implements the Postgres system of record for accounts,
// ledger events and balance logs.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/goodnatureofminers/stackswatch7000-backend/internal/model"
)

// ErrAccountNotFound reports a lookup for an unknown account id.
var ErrAccountNotFound = errors.New("account not found")

const (
	maxOpenConns    = 10
	connMaxLifetime = 30 * time.Minute
)

type Repository struct {
	db *sql.DB
}

// NewRepository opens the Postgres connection pool behind the repository.
func NewRepository(dsn string) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("postgres dsn is required")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres connection: %w", err)
	}
	db.SetMaxOpenConns(maxOpenConns)
	db.SetConnMaxLifetime(connMaxLifetime)

	return &Repository{db: db}, nil
}

// Close releases the connection pool.
func (r *Repository) Close() error {
	return r.db.Close()
}

// ListAccounts returns accounts ordered by id. With ActiveOnly set, inactive
// and tracking-excluded accounts are filtered out.
func (r *Repository) ListAccounts(ctx context.Context, filter model.AccountFilter) ([]model.Account, error) {
	query := `
SELECT id, email, wallet_address, is_active, is_excluded_from_tracking, current_streak, total_earnings, created_at
FROM accounts`
	if filter.ActiveOnly {
		query += `
WHERE is_active AND NOT is_excluded_from_tracking`
	}
	query += `
ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query accounts: %w", err)
	}
	defer rows.Close()

	var accounts []model.Account
	for rows.Next() {
		var a model.Account
		if err := rows.Scan(&a.ID, &a.Email, &a.WalletAddress, &a.IsActive, &a.IsExcludedFromTracking, &a.CurrentStreak, &a.TotalEarnings, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate accounts: %w", err)
	}
	return accounts, nil
}

// GetAccount returns one account by id.
func (r *Repository) GetAccount(ctx context.Context, accountID int64) (model.Account, error) {
	const query = `
SELECT id, email, wallet_address, is_active, is_excluded_from_tracking, current_streak, total_earnings, created_at
FROM accounts
WHERE id = $1`

	var a model.Account
	err := r.db.QueryRowContext(ctx, query, accountID).
		Scan(&a.ID, &a.Email, &a.WalletAddress, &a.IsActive, &a.IsExcludedFromTracking, &a.CurrentStreak, &a.TotalEarnings, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Account{}, fmt.Errorf("account %d: %w", accountID, ErrAccountNotFound)
	}
	if err != nil {
		return model.Account{}, fmt.Errorf("query account %d: %w", accountID, err)
	}
	return a, nil
}

// EventsForAccount returns all ledger events of an account. Order is
// irrelevant to callers folding the events; rows come back in insertion
// order for readability.
func (r *Repository) EventsForAccount(ctx context.Context, accountID int64) ([]model.LedgerEvent, error) {
	const query = `
SELECT id, account_id, kind, amount, direction, note, recorded_at
FROM ledger_events
WHERE account_id = $1
ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("query ledger events: %w", err)
	}
	defer rows.Close()

	var events []model.LedgerEvent
	for rows.Next() {
		var (
			e         model.LedgerEvent
			direction sql.NullString
			note      sql.NullString
		)
		if err := rows.Scan(&e.ID, &e.AccountID, &e.Kind, &e.Amount, &direction, &note, &e.RecordedAt); err != nil {
			return nil, fmt.Errorf("scan ledger event: %w", err)
		}
		e.Direction = model.AdjustmentDirection(direction.String)
		e.Note = note.String
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ledger events: %w", err)
	}
	return events, nil
}

// RecordReconciliation appends a balance log row and, when updateEarnings is
// set, updates the account's denormalized total_earnings in the same
// transaction. Both writes commit together or not at all.
func (r *Repository) RecordReconciliation(ctx context.Context, log model.BalanceLog, totalEarnings decimal.Decimal, updateEarnings bool) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin reconciliation tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const insertLog = `
INSERT INTO balance_logs (account_id, calculated_balance, actual_balance, discrepancy, checked_at)
VALUES ($1, $2, $3, $4, $5)`

	if _, err := tx.ExecContext(ctx, insertLog, log.AccountID, log.CalculatedBalance, log.ActualBalance, log.Discrepancy, log.CheckedAt); err != nil {
		return fmt.Errorf("insert balance log: %w", err)
	}

	if updateEarnings {
		const updateAccount = `
UPDATE accounts
SET total_earnings = $2
WHERE id = $1`

		res, err := tx.ExecContext(ctx, updateAccount, log.AccountID, totalEarnings)
		if err != nil {
			return fmt.Errorf("update total earnings: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("update total earnings result: %w", err)
		}
		if affected == 0 {
			return fmt.Errorf("update total earnings: account %d: %w", log.AccountID, ErrAccountNotFound)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit reconciliation tx: %w", err)
	}
	return nil
}

// BalanceLogs returns an account's balance log rows inside [from, to],
// newest first. A zero "to" means now; limit <= 0 means no limit.
func (r *Repository) BalanceLogs(ctx context.Context, accountID int64, from, to time.Time, limit int) ([]model.BalanceLog, error) {
	if to.IsZero() {
		to = time.Now().UTC()
	}

	query := `
SELECT id, account_id, calculated_balance, actual_balance, discrepancy, checked_at
FROM balance_logs
WHERE account_id = $1 AND checked_at >= $2 AND checked_at <= $3
ORDER BY checked_at DESC`
	args := []any{accountID, from, to}
	if limit > 0 {
		query += `
LIMIT $4`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query balance logs: %w", err)
	}
	defer rows.Close()

	var logs []model.BalanceLog
	for rows.Next() {
		var l model.BalanceLog
		if err := rows.Scan(&l.ID, &l.AccountID, &l.CalculatedBalance, &l.ActualBalance, &l.Discrepancy, &l.CheckedAt); err != nil {
			return nil, fmt.Errorf("scan balance log: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate balance logs: %w", err)
	}
	return logs, nil
}
