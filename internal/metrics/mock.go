package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu               sync.Mutex
	storeWrites      map[string]int
	storeFailures    map[string]int
	statsComputed    int
	statsDurations   []float64
	slackNotifSent   int
	slackNotifFailed int
	eventsPublished  int
	eventsFailed     int
	startupTime      float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		storeWrites:    make(map[string]int),
		storeFailures:  make(map[string]int),
		statsDurations: make([]float64, 0),
	}
}

func (m *Mock) IncStoreWrite(entity, op string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.storeWrites[entity+"/"+op]++
}

func (m *Mock) IncStoreFailure(entity, op string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.storeFailures[entity+"/"+op]++
}

func (m *Mock) IncStatsComputed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statsComputed++
}

func (m *Mock) ObserveStatsDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statsDurations = append(m.statsDurations, duration)
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifFailed++
}

func (m *Mock) IncEventsPublished() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.eventsPublished++
}

func (m *Mock) IncEventsFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.eventsFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// StoreWrites returns how often IncStoreWrite was called for entity and op.
func (m *Mock) StoreWrites(entity, op string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.storeWrites[entity+"/"+op]
}

// StoreFailures returns how often IncStoreFailure was called for entity and op.
func (m *Mock) StoreFailures(entity, op string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.storeFailures[entity+"/"+op]
}

// StatsComputed returns the number of times IncStatsComputed was called.
func (m *Mock) StatsComputed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.statsComputed
}

// SlackNotifSent returns the number of times IncSlackNotifSent was called.
func (m *Mock) SlackNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifSent
}

// SlackNotifFailed returns the number of times IncSlackNotifFailed was called.
func (m *Mock) SlackNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifFailed
}

// EventsPublished returns the number of times IncEventsPublished was called.
func (m *Mock) EventsPublished() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.eventsPublished
}

// EventsFailed returns the number of times IncEventsFailed was called.
func (m *Mock) EventsFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.eventsFailed
}

// MockCounterStore is an in-memory CounterStore.
type MockCounterStore struct {
	mu       sync.Mutex
	counters map[string]int
}

// NewMockCounterStore creates an empty MockCounterStore.
func NewMockCounterStore() *MockCounterStore {
	return &MockCounterStore{counters: make(map[string]int)}
}

func (m *MockCounterStore) Increment(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters[key]++
}

func (m *MockCounterStore) GetAll() (map[string]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]int, len(m.counters))
	for k, v := range m.counters {
		out[k] = v
	}
	return out, nil
}
