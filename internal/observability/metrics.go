package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pulse_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// AuthFailures counts rejected requests by reason (missing header, bad
	// token, unknown user). Message bodies stay uniform; the breakdown lives
	// only in metrics.
	AuthFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pulse_auth_failures_total",
		Help: "Total number of rejected authentication attempts by reason",
	}, []string{"reason"})

	// VoteConflicts counts duplicate-vote attempts rejected by the unique
	// constraint.
	VoteConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pulse_vote_conflicts_total",
		Help: "Total number of duplicate vote attempts",
	})
)

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	}
}
