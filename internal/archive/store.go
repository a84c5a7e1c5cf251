// Package archive mirrors balance check results into ClickHouse for
// analytics. The Postgres repository stays the system of record; the
// archive is an append-only copy fed asynchronously.
package archive

import (
	"context"
	"errors"
	"fmt"

	"github.com/ClickHouse/clickhouse-go/v2"

	"github.com/goodnatureofminers/stackswatch7000-backend/internal/model"
)

// Store writes balance logs into ClickHouse.
type Store struct {
	conn clickhouse.Conn
}

// NewStore opens a ClickHouse connection from a DSN.
func NewStore(dsn string) (*Store, error) {
	if dsn == "" {
		return nil, errors.New("clickhouse dsn is required")
	}

	options, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse dsn: %w", err)
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open clickhouse connection: %w", err)
	}

	return &Store{conn: conn}, nil
}

// InsertBalanceLogs writes a batch of balance logs.
func (s *Store) InsertBalanceLogs(ctx context.Context, logs []model.BalanceLog) error {
	if len(logs) == 0 {
		return nil
	}

	const query = `
INSERT INTO balance_logs (
	account_id,
	calculated_balance,
	actual_balance,
	discrepancy,
	checked_at
) VALUES`

	batch, err := s.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare balance logs batch: %w", err)
	}

	for _, log := range logs {
		if err := batch.Append(
			log.AccountID,
			log.CalculatedBalance,
			log.ActualBalance,
			log.Discrepancy,
			log.CheckedAt,
		); err != nil {
			return fmt.Errorf("append balance log: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("insert balance logs: %w", err)
	}
	return nil
}

// DiscrepancyCount reports how many archived checks exceeded the given
// absolute discrepancy since the given number of days back.
func (s *Store) DiscrepancyCount(ctx context.Context, threshold string, days int) (uint64, error) {
	const query = `
SELECT count() as cnt
FROM balance_logs
WHERE abs(discrepancy) > toDecimal64(?, 6)
  AND checked_at >= now() - INTERVAL ? DAY`

	rows, err := s.conn.Query(ctx, query, threshold, days)
	if err != nil {
		return 0, fmt.Errorf("query discrepancy count: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return 0, nil
	}
	var cnt uint64
	if err := rows.Scan(&cnt); err != nil {
		return 0, fmt.Errorf("scan discrepancy count: %w", err)
	}
	return cnt, nil
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	return s.conn.Close()
}
