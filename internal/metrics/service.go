package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		StoreWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tennis_store_writes_total",
			Help: "The total number of successful store writes.",
		}, []string{"entity", "op"}),
		StoreFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tennis_store_failures_total",
			Help: "The total number of store writes that failed.",
		}, []string{"entity", "op"}),
		StatsComputed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tennis_stats_computed_total",
			Help: "The total number of statistics computations.",
		}),
		StatsDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "tennis_stats_duration_seconds",
			Help:    "The duration of statistics computations.",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tennis_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tennis_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		EventsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tennis_events_published_total",
			Help: "The total number of events published.",
		}),
		EventsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tennis_events_failed_total",
			Help: "The total number of events that failed to publish.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "tennis_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.StoreWrites,
		s.StoreFailures,
		s.StatsComputed,
		s.StatsDuration,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.EventsPublished,
		s.EventsFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncStoreWrite(entity, op string) {
	s.StoreWrites.WithLabelValues(entity, op).Inc()
}

func (s *Service) IncStoreFailure(entity, op string) {
	s.StoreFailures.WithLabelValues(entity, op).Inc()
}

func (s *Service) IncStatsComputed() {
	s.StatsComputed.Inc()
}

func (s *Service) ObserveStatsDuration(duration float64) {
	s.StatsDuration.Observe(duration)
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

func (s *Service) IncEventsPublished() {
	s.EventsPublished.Inc()
}

func (s *Service) IncEventsFailed() {
	s.EventsFailed.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
