package stacks

import "github.com/shopspring/decimal"

// Wire shapes of the Hiro extended API. Monetary amounts arrive as decimal
// strings denominated in micro-STX.
type (
	balancesResponse struct {
		STX stxBalance `json:"stx"`
	}

	stxBalance struct {
		Balance       string `json:"balance"`
		Locked        string `json:"locked"`
		UnlockHeight  uint64 `json:"unlock_height"`
		TotalSent     string `json:"total_sent"`
		TotalReceived string `json:"total_received"`
		TotalFeesSent string `json:"total_fees_sent"`
	}

	transactionsResponse struct {
		Limit   int                 `json:"limit"`
		Offset  int                 `json:"offset"`
		Total   int                 `json:"total"`
		Results []TransactionRecord `json:"results"`
	}
)

// AddressInfo is the normalized view of an address, every monetary field in
// standard STX units.
type AddressInfo struct {
	Balance       decimal.Decimal
	Locked        decimal.Decimal
	UnlockHeight  uint64
	TotalSent     decimal.Decimal
	TotalReceived decimal.Decimal
	TotalFeesSent decimal.Decimal
}

// TransactionRecord is one entry of an address transaction listing, kept in
// provider terms.
type TransactionRecord struct {
	TxID          string `json:"tx_id"`
	TxType        string `json:"tx_type"`
	TxStatus      string `json:"tx_status"`
	BlockHeight   uint64 `json:"block_height"`
	SenderAddress string `json:"sender_address"`
	FeeRate       string `json:"fee_rate"`
	BurnBlockTime int64  `json:"burn_block_time"`
}
