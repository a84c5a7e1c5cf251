package service

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/stackswatch7000-backend/internal/model"
)

// msgActualBalanceUnavailable is the per-account reason reported when the
// chain gave no usable balance.
const msgActualBalanceUnavailable = "actual balance unavailable"

// DefaultTolerance is the maximum absolute discrepancy treated as rounding
// noise rather than a flagged mismatch. Cross-system decimal rounding and
// in-flight transactions make exact equality an unreasonable bar.
var DefaultTolerance = decimal.New(1, -3) // 0.001 STX

// Reconciler performs one account's balance check: fold the ledger, fetch
// the chain balance, compare within tolerance, persist the outcome.
type Reconciler struct {
	accounts   AccountDirectory
	calculator BalanceCalculator
	chain      ChainClient
	archive    LogArchive
	tolerance  decimal.Decimal
	now        func() time.Time
	logger     *zap.Logger
}

// NewReconciler constructs a Reconciler. archive may be nil to disable
// analytics mirroring. A non-positive tolerance falls back to
// DefaultTolerance.
func NewReconciler(
	accounts AccountDirectory,
	calculator BalanceCalculator,
	chain ChainClient,
	archive LogArchive,
	tolerance decimal.Decimal,
	logger *zap.Logger,
) (*Reconciler, error) {
	if accounts == nil {
		return nil, errors.New("account directory is required")
	}
	if calculator == nil {
		return nil, errors.New("balance calculator is required")
	}
	if chain == nil {
		return nil, errors.New("chain client is required")
	}
	if tolerance.Sign() <= 0 {
		tolerance = DefaultTolerance
	}
	return &Reconciler{
		accounts:   accounts,
		calculator: calculator,
		chain:      chain,
		archive:    archive,
		tolerance:  tolerance,
		now:        time.Now,
		logger:     logger,
	}, nil
}

// Reconcile checks one account and classifies the outcome. It never returns
// an error: every failure mode is folded into the result so a batch caller
// can keep iterating.
//
// The expected balance is recomputed from the ledger on every call. When both
// balances are obtained, a balance log row is appended and, if the ledger sum
// differs from the account's denormalized total_earnings, that field is
// updated to the ledger sum (not the chain balance) in the same transaction.
func (r *Reconciler) Reconcile(ctx context.Context, account model.Account) model.AccountResult {
	result := model.AccountResult{
		AccountID:     account.ID,
		Email:         account.Email,
		WalletAddress: account.WalletAddress,
	}

	calculated, err := r.calculator.ExpectedBalance(ctx, account.ID)
	if err != nil {
		r.logger.Error("expected balance calculation failed",
			zap.Int64("account_id", account.ID),
			zap.Error(err))
		result.Error = err.Error()
		result.HasDiscrepancy = true
		return result
	}
	result.Calculated = &calculated

	actual, err := r.chain.GetBalance(ctx, account.WalletAddress)
	if err != nil {
		// Absence of ground truth is itself a risk signal, so the
		// account is flagged. No balance log row is written for a
		// failed attempt.
		r.logger.Warn("actual balance unavailable",
			zap.Int64("account_id", account.ID),
			zap.String("wallet_address", account.WalletAddress),
			zap.Error(err))
		result.Error = msgActualBalanceUnavailable
		result.HasDiscrepancy = true
		return result
	}
	result.Actual = &actual

	discrepancy := actual.Sub(calculated)
	result.Discrepancy = &discrepancy
	result.HasDiscrepancy = discrepancy.Abs().GreaterThan(r.tolerance)

	logRow := model.BalanceLog{
		AccountID:         account.ID,
		CalculatedBalance: calculated,
		ActualBalance:     actual,
		Discrepancy:       discrepancy,
		CheckedAt:         r.now().UTC(),
	}
	updateEarnings := !calculated.Equal(account.TotalEarnings)

	if err := r.accounts.RecordReconciliation(ctx, logRow, calculated, updateEarnings); err != nil {
		r.logger.Error("persisting reconciliation failed",
			zap.Int64("account_id", account.ID),
			zap.Error(err))
		result.Error = "persist reconciliation: " + err.Error()
		return result
	}
	result.Success = true

	if r.archive != nil {
		if err := r.archive.Add(ctx, logRow); err != nil {
			r.logger.Warn("archive append failed",
				zap.Int64("account_id", account.ID),
				zap.Error(err))
		}
	}

	if result.HasDiscrepancy {
		r.logger.Warn("balance discrepancy detected",
			zap.Int64("account_id", account.ID),
			zap.String("wallet_address", account.WalletAddress),
			zap.String("calculated", calculated.String()),
			zap.String("actual", actual.String()),
			zap.String("discrepancy", discrepancy.String()))
	} else {
		r.logger.Debug("balance matches expected",
			zap.Int64("account_id", account.ID),
			zap.String("discrepancy", discrepancy.String()))
	}
	return result
}
