package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP Metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	HTTPResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_size_bytes",
			Help:    "Size of HTTP responses",
			Buckets: prometheus.ExponentialBuckets(100, 10, 8),
		},
		[]string{"method", "path"},
	)

	ActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_requests",
			Help: "Current number of active HTTP requests",
		},
	)

	// Database Metrics
	DBOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_operation_duration_seconds",
			Help:    "Duration of database operations",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"operation", "table"},
	)

	// Notes Metrics
	NotesOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notes_operations_total",
			Help: "Total number of note operations",
		},
		[]string{"operation"}, // create, update, delete
	)

	NotesQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notes_queries_total",
			Help: "Total number of note listings by pagination strategy",
		},
		[]string{"operation", "strategy", "ranked"},
	)

	RankDisabledTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "notes_rank_disabled_total",
			Help: "Listings whose ranking or trigram match was refused for a short query",
		},
	)

	FilterCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "saved_filter_cache_total",
			Help: "Saved filter cache lookups",
		},
		[]string{"result"}, // hit, miss, error
	)

	// Authentication Metrics
	AuthAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_attempts_total",
			Help: "Total number of authentication attempts",
		},
		[]string{"status", "tier"}, // success/unauthenticated/forbidden
	)

	// Error Metrics
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "errors_total",
			Help: "Total number of errors by type",
		},
		[]string{"type", "reason"},
	)
)

// TrackDBOperation tracks database operation duration
func TrackDBOperation(operation, table string) *prometheus.Timer {
	return prometheus.NewTimer(DBOperationDuration.WithLabelValues(operation, table))
}

// TrackNoteOperation increments the notes operation counter
func TrackNoteOperation(operation string) {
	NotesOperationsTotal.WithLabelValues(operation).Inc()
}

func TrackNoteQuery(operation, strategy string, ranked bool) {
	r := "false"
	if ranked {
		r = "true"
	}
	NotesQueriesTotal.WithLabelValues(operation, strategy, r).Inc()
}

func TrackRankDisabled() {
	RankDisabledTotal.Inc()
}

func TrackFilterCache(result string) {
	FilterCacheTotal.WithLabelValues(result).Inc()
}

// TrackAuthAttempt records authentication attempts
func TrackAuthAttempt(status, tier string) {
	AuthAttempts.WithLabelValues(status, tier).Inc()
}

// TrackError increments the error counter by type
func TrackError(errorType, reason string) {
	ErrorsTotal.WithLabelValues(errorType, reason).Inc()
}
