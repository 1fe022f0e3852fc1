// Package metrics defines Prometheus collectors for status checks and API traffic.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// StatusCheckTotal counts status checks by edition and outcome.
	StatusCheckTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mcstatus_check_total",
			Help: "Total number of server status checks",
		},
		[]string{"edition", "outcome"},
	)

	// StatusCheckDuration observes check round-trip time in seconds.
	StatusCheckDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mcstatus_check_duration_seconds",
			Help:    "Server status check duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"edition"},
	)

	// StatusCheckErrors counts failed checks by edition and reason.
	StatusCheckErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mcstatus_check_errors_total",
			Help: "Total number of failed server status checks",
		},
		[]string{"edition", "reason"},
	)

	// APIRequestsTotal counts API requests by endpoint.
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mcstatus_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"endpoint"},
	)

	// APIResultPollsTotal counts task result polls.
	APIResultPollsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mcstatus_api_result_polls_total",
			Help: "Total number of task result polls",
		},
	)
)

// RecordCheck updates the check counters and histogram for one result.
func RecordCheck(edition string, durationSeconds float64, ok bool, reason string) {
	if ok {
		StatusCheckTotal.WithLabelValues(edition, "success").Inc()
		StatusCheckDuration.WithLabelValues(edition).Observe(durationSeconds)
		return
	}
	StatusCheckTotal.WithLabelValues(edition, "error").Inc()
	if reason == "" {
		reason = "unknown"
	}
	StatusCheckErrors.WithLabelValues(edition, reason).Inc()
}
