// Package observability provides Prometheus metrics and OpenTelemetry tracing
// for the application.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"gorm.io/gorm"
)

var (
	// VotesCast counts accepted votes by poll.
	VotesCast = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pollbox_votes_cast_total",
		Help: "Total number of votes accepted, by poll",
	}, []string{"poll_id"})

	// VotesRejected counts rejected vote attempts by reason.
	VotesRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pollbox_votes_rejected_total",
		Help: "Total number of rejected vote attempts, by reason",
	}, []string{"reason"})

	// PollsCreated counts created polls.
	PollsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pollbox_polls_created_total",
		Help: "Total number of polls created",
	})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pollbox_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// AnalyticsQueryLatency records analytics query latency by query name.
	AnalyticsQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pollbox_analytics_query_latency_seconds",
		Help:    "Analytics query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"query"})
)

// DatabaseMetrics wraps DB access for recording query latency.
type DatabaseMetrics struct {
	db *gorm.DB
}

// NewDatabaseMetrics returns a new DatabaseMetrics instance.
func NewDatabaseMetrics(db *gorm.DB) *DatabaseMetrics {
	return &DatabaseMetrics{db: db}
}

// ObserveQuery records the latency of a database query.
func (m *DatabaseMetrics) ObserveQuery(operation, table string, start time.Time) {
	latency := time.Since(start).Seconds()
	DatabaseQueryLatency.WithLabelValues(operation, table).Observe(latency)
}

// TrackQuery returns a function that records query latency when called (e.g. defer).
func (m *DatabaseMetrics) TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		m.ObserveQuery(operation, table, start)
	}
}

// TrackAnalyticsQuery returns a function that records analytics query latency when called.
func TrackAnalyticsQuery(query string) func() {
	start := time.Now()
	return func() {
		AnalyticsQueryLatency.WithLabelValues(query).Observe(time.Since(start).Seconds())
	}
}
