package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/stackswatch7000-backend/internal/model"
)

var (
	monitorChecksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "stackswatch7000",
		Subsystem: "monitor",
		Name:      "checks_total",
		Help:      "Count of per-account balance checks.",
	}, []string{"status", "discrepancy"})
	monitorCheckDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "stackswatch7000",
		Subsystem: "monitor",
		Name:      "check_duration_seconds",
		Help:      "Duration of per-account balance checks.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})
	monitorBatchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "stackswatch7000",
		Subsystem: "monitor",
		Name:      "batch_duration_seconds",
		Help:      "Duration of full reconciliation batches.",
		Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600},
	})
	monitorBatchAccountsChecked = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "stackswatch7000",
		Subsystem: "monitor",
		Name:      "batch_accounts_checked",
		Help:      "Accounts covered by the most recent batch.",
	})
	monitorBatchDiscrepancies = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "stackswatch7000",
		Subsystem: "monitor",
		Name:      "batch_accounts_with_discrepancies",
		Help:      "Accounts flagged with a discrepancy in the most recent batch.",
	})
	monitorBatchFailures = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "stackswatch7000",
		Subsystem: "monitor",
		Name:      "batch_failed_checks",
		Help:      "Accounts whose check failed in the most recent batch.",
	})
)

// Monitor tracks metrics for reconciliation checks and batches.
type Monitor struct{}

// NewMonitor creates a Monitor metrics collector.
func NewMonitor() *Monitor {
	return &Monitor{}
}

// ObserveCheck records the outcome and duration of one account check.
func (m Monitor) ObserveCheck(result model.AccountResult, started time.Time) {
	status := "success"
	if !result.Success {
		status = "error"
	}
	discrepancy := "false"
	if result.HasDiscrepancy {
		discrepancy = "true"
	}

	monitorChecksTotal.WithLabelValues(status, discrepancy).Inc()
	monitorCheckDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
}

// ObserveBatch records aggregate figures for a finished batch.
func (m Monitor) ObserveBatch(summary model.BatchSummary, started time.Time) {
	monitorBatchDuration.Observe(time.Since(started).Seconds())
	monitorBatchAccountsChecked.Set(float64(summary.TotalChecked))
	monitorBatchDiscrepancies.Set(float64(summary.AccountsWithDiscrepancies))
	monitorBatchFailures.Set(float64(summary.FailedChecks))
}
