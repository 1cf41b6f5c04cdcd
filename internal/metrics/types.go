package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
type Service struct {
	StoreWrites        *prometheus.CounterVec
	StoreFailures      *prometheus.CounterVec
	StatsComputed      prometheus.Counter
	StatsDuration      prometheus.Histogram
	SlackNotifSent     prometheus.Counter
	SlackNotifFailed   prometheus.Counter
	EventsPublished    prometheus.Counter
	EventsFailed       prometheus.Counter
	StartupTimeSeconds prometheus.Gauge
}

// Persistent counter keys.
const (
	CounterMatchesRecorded = "matches_recorded"
	CounterCSVExports      = "csv_exports"
	CounterSummariesShared = "summaries_shared"
)
