package metrics

import (
	"database/sql"
	"sync"

	"github.com/charmbracelet/log"
)

// store keeps persistent counters in the counters table.
type store struct {
	db *sql.DB
	mu sync.Mutex
}

// New creates a new CounterStore.
func New(db *sql.DB) CounterStore {
	return &store{
		db: db,
	}
}

// Increment upserts a counter key and increments its value by one.
func (s *store) Increment(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO counters (key, value) VALUES (?, 1)
		ON CONFLICT(key) DO UPDATE SET value = value + 1;
	`, key)
	if err != nil {
		log.Error("Failed to increment counter", "error", err, "key", key)
		return
	}
	log.Debug("Incremented counter", "key", key)
}

// GetAll returns all counters from the database.
func (s *store) GetAll() (map[string]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query("SELECT key, value FROM counters")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counters := make(map[string]int)
	for rows.Next() {
		var key string
		var value int
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		counters[key] = value
	}
	return counters, rows.Err()
}
