package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceLog is one append-only record of a reconciliation attempt that
// obtained both balances. Rows are never mutated or deleted and are not
// deduplicated by time.
type BalanceLog struct {
	ID                int64           `json:"id"`
	AccountID         int64           `json:"account_id"`
	CalculatedBalance decimal.Decimal `json:"calculated_balance"`
	ActualBalance     decimal.Decimal `json:"actual_balance"`
	// Discrepancy is actual minus calculated.
	Discrepancy decimal.Decimal `json:"discrepancy"`
	CheckedAt   time.Time       `json:"checked_at"`
}
