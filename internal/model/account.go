package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Network identifies the Stacks network an account is monitored against.
type Network string

const (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
)

// Valid reports whether the network is one of the supported values.
func (n Network) Valid() bool {
	return n == Mainnet || n == Testnet
}

// Account describes a tracked participant wallet.
//
// TotalEarnings is a denormalized summary of the account's ledger events. It
// deliberately tracks the ledger-derived balance, not the on-chain balance;
// reconciliation keeps it in sync with the ledger.
type Account struct {
	ID                     int64
	Email                  string
	WalletAddress          string
	IsActive               bool
	IsExcludedFromTracking bool
	CurrentStreak          int32
	TotalEarnings          decimal.Decimal
	CreatedAt              time.Time
}

// AccountFilter restricts account listings.
type AccountFilter struct {
	ActiveOnly bool
}
