package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"

	"github.com/goodnatureofminers/stackswatch7000-backend/internal/model"
	"github.com/goodnatureofminers/stackswatch7000-backend/internal/repository"
)

func decimalOrDash(d *decimal.Decimal) string {
	if d == nil {
		return "-"
	}
	return d.String()
}

const formatJSON = "json"

func printSummary(w io.Writer, summary model.BatchSummary, format string) error {
	if format == formatJSON {
		return writeJSON(w, summary)
	}

	fmt.Fprintf(w, "Checked %d accounts: %d ok, %d failed, %d with discrepancies\n\n",
		summary.TotalChecked, summary.SuccessfulChecks, summary.FailedChecks, summary.AccountsWithDiscrepancies)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ACCOUNT\tEMAIL\tCALCULATED\tACTUAL\tDISCREPANCY\tSTATUS")
	for _, result := range summary.Details {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			result.AccountID,
			result.Email,
			decimalOrDash(result.Calculated),
			decimalOrDash(result.Actual),
			decimalOrDash(result.Discrepancy),
			statusText(result),
		)
	}
	return tw.Flush()
}

func printResult(w io.Writer, result model.AccountResult, format string) error {
	if format == formatJSON {
		return writeJSON(w, result)
	}

	fmt.Fprintf(w, "Account %d (%s)\n", result.AccountID, result.Email)
	fmt.Fprintf(w, "  wallet:      %s\n", result.WalletAddress)
	fmt.Fprintf(w, "  calculated:  %s\n", decimalOrDash(result.Calculated))
	fmt.Fprintf(w, "  actual:      %s\n", decimalOrDash(result.Actual))
	fmt.Fprintf(w, "  discrepancy: %s\n", decimalOrDash(result.Discrepancy))
	fmt.Fprintf(w, "  status:      %s\n", statusText(result))
	return nil
}

func printHistory(ctx context.Context, w io.Writer, repo *repository.Repository, accountID int64, limit int, format string) error {
	logs, err := repo.BalanceLogs(ctx, accountID, time.Time{}, time.Now().UTC(), limit)
	if err != nil {
		return fmt.Errorf("load balance history: %w", err)
	}

	if format == formatJSON {
		return writeJSON(w, logs)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CHECKED AT\tCALCULATED\tACTUAL\tDISCREPANCY")
	for _, log := range logs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			log.CheckedAt.Format(time.RFC3339),
			log.CalculatedBalance.String(),
			log.ActualBalance.String(),
			log.Discrepancy.String(),
		)
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func statusText(result model.AccountResult) string {
	switch {
	case !result.Success:
		return "FAILED: " + result.Error
	case result.HasDiscrepancy && result.Error != "":
		return "DISCREPANCY: " + result.Error
	case result.HasDiscrepancy:
		return "DISCREPANCY"
	default:
		return "OK"
	}
}
