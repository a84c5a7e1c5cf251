package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	archiveRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "stackswatch7000",
		Subsystem: "archive",
		Name:      "operations_total",
		Help:      "Count of archive flush operations.",
	}, []string{"operation", "status"})
	archiveRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "stackswatch7000",
		Subsystem: "archive",
		Name:      "operation_duration_seconds",
		Help:      "Duration of archive flush operations.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 15, 20, 30},
	}, []string{"operation", "status"})
	archiveFlushSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "stackswatch7000",
		Subsystem: "archive",
		Name:      "flush_size_rows",
		Help:      "Rows written per archive flush.",
		Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
	})
)

// Archive tracks metrics for analytics archive writes.
type Archive struct{}

// NewArchive creates an Archive metrics collector.
func NewArchive() *Archive {
	return &Archive{}
}

// Observe records duration and status of an archive operation.
func (m Archive) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	archiveRequestsTotal.WithLabelValues(operation, status).Inc()
	archiveRequestDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}

// ObserveFlushSize records how many rows a flush wrote.
func (m Archive) ObserveFlushSize(rows int) {
	archiveFlushSize.Observe(float64(rows))
}
