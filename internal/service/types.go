package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/goodnatureofminers/stackswatch7000-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// AccountDirectory is the system of record for accounts and
	// reconciliation outcomes.
	AccountDirectory interface {
		ListAccounts(ctx context.Context, filter model.AccountFilter) ([]model.Account, error)
		GetAccount(ctx context.Context, accountID int64) (model.Account, error)
		// RecordReconciliation appends the balance log row and, when
		// updateEarnings is set, updates the account's total_earnings to
		// totalEarnings. Both writes commit atomically or not at all.
		RecordReconciliation(ctx context.Context, log model.BalanceLog, totalEarnings decimal.Decimal, updateEarnings bool) error
	}

	// BalanceCalculator derives the ledger-expected balance of an account.
	BalanceCalculator interface {
		ExpectedBalance(ctx context.Context, accountID int64) (decimal.Decimal, error)
	}

	// ChainClient reads the actual on-chain balance of a wallet address.
	ChainClient interface {
		GetBalance(ctx context.Context, address string) (decimal.Decimal, error)
	}

	// LogArchive receives balance log rows for asynchronous analytics
	// mirroring. Appends are best effort and never affect the
	// reconciliation outcome.
	LogArchive interface {
		Add(ctx context.Context, log model.BalanceLog) error
	}

	// AccountReconciler performs one account's balance check.
	AccountReconciler interface {
		Reconcile(ctx context.Context, account model.Account) model.AccountResult
	}

	// MonitorMetrics records per-check and per-batch outcomes.
	MonitorMetrics interface {
		ObserveCheck(result model.AccountResult, started time.Time)
		ObserveBatch(summary model.BatchSummary, started time.Time)
	}
)
