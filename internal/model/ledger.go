package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEventKind tags the origin of a ledger event.
type LedgerEventKind string

const (
	// EventEarning covers amounts credited for resolved outcomes
	// (raffle wins, streak payouts). Always positive.
	EventEarning LedgerEventKind = "EARNING"
	// EventManualAdjustment covers operator-recorded deposits and
	// withdrawals with a free-text note.
	EventManualAdjustment LedgerEventKind = "MANUAL_ADJUSTMENT"
)

// AdjustmentDirection signs a manual adjustment.
type AdjustmentDirection string

const (
	AdjustmentDeposit    AdjustmentDirection = "DEPOSIT"
	AdjustmentWithdrawal AdjustmentDirection = "WITHDRAWAL"
)

// LedgerEvent is an immutable earning or manual adjustment belonging to one
// account. Events are read-only here; upstream systems create them.
type LedgerEvent struct {
	ID        int64
	AccountID int64
	Kind      LedgerEventKind
	// Amount is always non-negative; Direction signs manual adjustments.
	// Earnings carry no direction.
	Amount     decimal.Decimal
	Direction  AdjustmentDirection
	Note       string
	RecordedAt time.Time
}

// SignedAmount returns the amount as it contributes to the expected balance.
func (e LedgerEvent) SignedAmount() decimal.Decimal {
	if e.Kind == EventManualAdjustment && e.Direction == AdjustmentWithdrawal {
		return e.Amount.Neg()
	}
	return e.Amount
}
