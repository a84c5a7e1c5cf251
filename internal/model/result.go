package model

import "github.com/shopspring/decimal"

// AccountResult is the outcome of one account's reconciliation.
//
// When Success is false, Calculated/Actual/Discrepancy are nil and Error
// holds the human-readable reason. HasDiscrepancy is true on failure as well:
// absence of ground truth is itself a risk signal.
type AccountResult struct {
	AccountID      int64            `json:"account_id"`
	Email          string           `json:"email"`
	WalletAddress  string           `json:"wallet_address"`
	Success        bool             `json:"success"`
	Calculated     *decimal.Decimal `json:"calculated_balance,omitempty"`
	Actual         *decimal.Decimal `json:"actual_balance,omitempty"`
	Discrepancy    *decimal.Decimal `json:"discrepancy,omitempty"`
	HasDiscrepancy bool             `json:"has_discrepancy"`
	Error          string           `json:"error,omitempty"`
}

// BatchSummary aggregates one monitoring pass across a set of accounts.
// TotalChecked always equals the size of the input set, regardless of how
// many checks failed or were abandoned.
type BatchSummary struct {
	TotalChecked              int             `json:"total_checked"`
	SuccessfulChecks          int             `json:"successful_checks"`
	FailedChecks              int             `json:"failed_checks"`
	AccountsWithDiscrepancies int             `json:"accounts_with_discrepancies"`
	Details                   []AccountResult `json:"details"`
}
