package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/stackswatch7000-backend/internal/model"
)

var (
	apiClientRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "stackswatch7000",
		Subsystem: "api_client",
		Name:      "operations_total",
		Help:      "Count of Stacks API operations.",
	}, []string{"operation", "network", "status"})
	apiClientRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "stackswatch7000",
		Subsystem: "api_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of Stacks API operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "status"})
)

// APIClient tracks metrics for calls to the Stacks chain API.
type APIClient struct {
	network model.Network
}

// NewAPIClient constructs a metrics collector for chain API calls.
func NewAPIClient(network model.Network) *APIClient {
	if network == "" {
		network = "unknown"
	}
	return &APIClient{network: network}
}

// Observe records a single API call outcome and duration.
func (m APIClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	apiClientRequestsTotal.WithLabelValues(operation, string(m.network), status).Inc()
	apiClientRequestDuration.WithLabelValues(operation, string(m.network), status).Observe(time.Since(started).Seconds())
}
