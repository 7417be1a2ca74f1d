package sqlite

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var operationLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "dailyquote_store_operation_duration_seconds",
	Help:    "Histogram of quote store operation latencies.",
	Buckets: prometheus.DefBuckets,
}, []string{"operation"})

// observe starts a timer for operation; call the returned func when it completes.
func observe(operation string) func() {
	start := time.Now()

	return func() {
		operationLatency.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}
}
