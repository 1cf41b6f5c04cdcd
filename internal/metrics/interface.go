package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncStoreWrite(entity, op string)
	IncStoreFailure(entity, op string)
	IncStatsComputed()
	ObserveStatsDuration(duration float64)
	IncSlackNotifSent()
	IncSlackNotifFailed()
	IncEventsPublished()
	IncEventsFailed()
	SetStartupTime(duration float64)
}

// CounterStore keeps named counters that survive restarts.
type CounterStore interface {
	Increment(key string)
	GetAll() (map[string]int, error)
}
