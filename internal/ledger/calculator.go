// Package ledger derives expected balances from an account's event history.
package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/goodnatureofminers/stackswatch7000-backend/internal/model"
)

// ErrUnavailable marks a failure to read the ledger event source. The
// calculator never substitutes zero for an unreadable ledger: treating
// "unknown" as "nothing earned" would mask real discrepancies.
var ErrUnavailable = errors.New("ledger unavailable")

// EventSource supplies the immutable ledger events of an account.
type EventSource interface {
	EventsForAccount(ctx context.Context, accountID int64) ([]model.LedgerEvent, error)
}

// Calculator folds ledger events into one expected balance.
type Calculator struct {
	source EventSource
}

// NewCalculator constructs a Calculator over the given event source.
func NewCalculator(source EventSource) (*Calculator, error) {
	if source == nil {
		return nil, errors.New("event source is required")
	}
	return &Calculator{source: source}, nil
}

// ExpectedBalance sums all earning amounts and signed manual adjustments for
// the account using exact decimal arithmetic. The sum is order-independent,
// and is computed fresh on every call since events may be appended between
// reconciliation passes.
func (c *Calculator) ExpectedBalance(ctx context.Context, accountID int64) (decimal.Decimal, error) {
	events, err := c.source.EventsForAccount(ctx, accountID)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: events for account %d: %v", ErrUnavailable, accountID, err)
	}

	total := decimal.Zero
	for _, e := range events {
		total = total.Add(e.SignedAmount())
	}
	return total, nil
}
