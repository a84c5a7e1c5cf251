package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/stackswatch7000-backend/internal/model"
	"github.com/goodnatureofminers/stackswatch7000-backend/pkg/workerpool"
)

const (
	// The Hiro API is shared and rate limited, so batch concurrency stays
	// small.
	defaultWorkerCount  = 8
	defaultBatchTimeout = 10 * time.Minute

	// msgBatchTimeout is the per-account reason for checks the batch
	// deadline abandoned, whether they never started or were cut off
	// mid-flight.
	msgBatchTimeout = "reconciliation abandoned: batch timeout"
)

// MonitorConfig bounds a monitoring pass.
type MonitorConfig struct {
	WorkerCount  int
	BatchTimeout time.Duration
}

// Monitor drives the reconciler across a set of accounts. Per-account
// failures are captured into that account's result; the pass itself only
// fails on infrastructure faults such as the account directory being
// unreachable.
type Monitor struct {
	accounts     AccountDirectory
	reconciler   AccountReconciler
	metrics      MonitorMetrics
	workerCount  int
	batchTimeout time.Duration
	logger       *zap.Logger
}

// NewMonitor constructs a Monitor. metrics is required so operational
// visibility cannot be wired off by accident.
func NewMonitor(
	accounts AccountDirectory,
	reconciler AccountReconciler,
	metrics MonitorMetrics,
	cfg MonitorConfig,
	logger *zap.Logger,
) (*Monitor, error) {
	if accounts == nil {
		return nil, errors.New("account directory is required")
	}
	if reconciler == nil {
		return nil, errors.New("reconciler is required")
	}
	if metrics == nil {
		return nil, errors.New("monitor metrics is required")
	}
	workerCount := cfg.WorkerCount
	if workerCount <= 0 {
		workerCount = defaultWorkerCount
	}
	batchTimeout := cfg.BatchTimeout
	if batchTimeout <= 0 {
		batchTimeout = defaultBatchTimeout
	}
	return &Monitor{
		accounts:     accounts,
		reconciler:   reconciler,
		metrics:      metrics,
		workerCount:  workerCount,
		batchTimeout: batchTimeout,
		logger:       logger,
	}, nil
}

// MonitorAll reconciles every selected account and aggregates one summary.
// When activeOnly is set, inactive and tracking-excluded accounts are
// skipped. TotalChecked always equals the number of selected accounts;
// checks abandoned by the batch timeout are reported as failed.
func (m *Monitor) MonitorAll(ctx context.Context, activeOnly bool) (model.BatchSummary, error) {
	started := time.Now()

	accounts, err := m.accounts.ListAccounts(ctx, model.AccountFilter{ActiveOnly: activeOnly})
	if err != nil {
		return model.BatchSummary{}, fmt.Errorf("list accounts: %w", err)
	}

	m.logger.Info("starting monitoring pass",
		zap.Int("accounts", len(accounts)),
		zap.Bool("active_only", activeOnly))

	batchCtx, cancel := context.WithTimeout(ctx, m.batchTimeout)
	defer cancel()

	// Results are slotted by input index so completion order never affects
	// the summary. Unvisited slots keep the timeout placeholder.
	results := make([]model.AccountResult, len(accounts))
	for i, account := range accounts {
		results[i] = model.AccountResult{
			AccountID:      account.ID,
			Email:          account.Email,
			WalletAddress:  account.WalletAddress,
			Error:          msgBatchTimeout,
			HasDiscrepancy: true,
		}
	}

	poolErr := workerpool.Each(batchCtx, m.workerCount, accounts, func(ctx context.Context, i int, account model.Account) {
		checkStarted := time.Now()
		result := m.reconciler.Reconcile(ctx, account)
		if !result.Success && errors.Is(ctx.Err(), context.DeadlineExceeded) {
			// The batch deadline interrupted this check mid-flight.
			// Report the abandonment, not whatever downstream error the
			// cancellation caused.
			result.Error = msgBatchTimeout
			result.HasDiscrepancy = true
		}
		m.metrics.ObserveCheck(result, checkStarted)
		results[i] = result
	})
	if poolErr != nil && ctx.Err() != nil {
		// The caller's context died, not just the batch deadline.
		return model.BatchSummary{}, poolErr
	}

	summary := summarize(results)
	m.metrics.ObserveBatch(summary, started)
	m.logger.Info("monitoring pass finished",
		zap.Int("total_checked", summary.TotalChecked),
		zap.Int("successful", summary.SuccessfulChecks),
		zap.Int("failed", summary.FailedChecks),
		zap.Int("discrepancies", summary.AccountsWithDiscrepancies),
		zap.Duration("elapsed", time.Since(started)))

	return summary, nil
}

// MonitorSingle reconciles one account by id for ad-hoc checks. The error
// return covers only directory faults (unknown account, store unreachable);
// reconciliation failures land in the result.
func (m *Monitor) MonitorSingle(ctx context.Context, accountID int64) (model.AccountResult, error) {
	account, err := m.accounts.GetAccount(ctx, accountID)
	if err != nil {
		return model.AccountResult{}, fmt.Errorf("get account %d: %w", accountID, err)
	}

	started := time.Now()
	result := m.reconciler.Reconcile(ctx, account)
	m.metrics.ObserveCheck(result, started)
	return result, nil
}

func summarize(results []model.AccountResult) model.BatchSummary {
	summary := model.BatchSummary{
		TotalChecked: len(results),
		Details:      results,
	}
	for _, r := range results {
		if !r.Success {
			summary.FailedChecks++
			continue
		}
		summary.SuccessfulChecks++
		if r.HasDiscrepancy {
			summary.AccountsWithDiscrepancies++
		}
	}
	return summary
}
