package club

import (
	"slices"
	"sync"

	"github.com/mauv0809/tennis-ledger/internal/tennis"
)

var _ ClubStore = (*MockStore)(nil)

// MockStore is a mock implementation of the ClubStore interface for testing.
// Reads serve Data; writes call the matching Func when set and otherwise succeed
// with a zero value. It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	Data Snapshot

	// Spies for method calls
	LoadAllFunc             func() error
	ClearFunc               func() error
	AddPlayerFunc           func(in PlayerInput) (tennis.Player, error)
	UpdatePlayerFunc        func(id string, patch PlayerPatch) (tennis.Player, error)
	DeletePlayerFunc        func(id string) error
	AddCourtFunc            func(in CourtInput) (tennis.Court, error)
	UpdateCourtFunc         func(id string, patch CourtPatch) (tennis.Court, error)
	DeleteCourtFunc         func(id string) error
	AddScheduleFunc         func(in ScheduleInput) (tennis.Schedule, error)
	UpdateScheduleFunc      func(id string, patch SchedulePatch) (tennis.Schedule, error)
	DeleteScheduleFunc      func(id string) error
	RecordDoublesResultFunc func(in DoublesResultInput) (tennis.Match, error)
	RecordScoredMatchFunc   func(in ScoredMatchInput) (tennis.Match, error)
	UpdateMatchFunc         func(id string, patch MatchPatch) (tennis.Match, error)
	DeleteMatchFunc         func(id string) error

	// Call records
	AddPlayerCalls           []PlayerInput
	DeletePlayerCalls        []string
	RecordDoublesResultCalls []DoublesResultInput
	RecordScoredMatchCalls   []ScoredMatchInput
	DeleteMatchCalls         []string
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) LoadAll() error {
	if m.LoadAllFunc != nil {
		return m.LoadAllFunc()
	}
	return nil
}

func (m *MockStore) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Snapshot{
		Players:   slices.Clone(m.Data.Players),
		Courts:    slices.Clone(m.Data.Courts),
		Schedules: cloneSchedules(m.Data.Schedules),
		Matches:   cloneMatches(m.Data.Matches),
	}
}

func (m *MockStore) Clear() error {
	if m.ClearFunc != nil {
		return m.ClearFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data = Snapshot{}
	return nil
}

func (m *MockStore) Players() []tennis.Player {
	return m.Snapshot().Players
}

func (m *MockStore) GetPlayer(id string) (tennis.Player, error) {
	for _, p := range m.Players() {
		if p.ID == id {
			return p, nil
		}
	}
	return tennis.Player{}, ErrNotFound
}

func (m *MockStore) PlayersBySkill(level tennis.SkillLevel) []tennis.Player {
	out := make([]tennis.Player, 0)
	for _, p := range m.Players() {
		if p.SkillLevel == level {
			out = append(out, p)
		}
	}
	return out
}

func (m *MockStore) AddPlayer(in PlayerInput) (tennis.Player, error) {
	m.mu.Lock()
	m.AddPlayerCalls = append(m.AddPlayerCalls, in)
	m.mu.Unlock()
	if m.AddPlayerFunc != nil {
		return m.AddPlayerFunc(in)
	}
	return tennis.Player{Name: in.Name, SkillLevel: in.SkillLevel}, nil
}

func (m *MockStore) UpdatePlayer(id string, patch PlayerPatch) (tennis.Player, error) {
	if m.UpdatePlayerFunc != nil {
		return m.UpdatePlayerFunc(id, patch)
	}
	return tennis.Player{ID: id}, nil
}

func (m *MockStore) DeletePlayer(id string) error {
	m.mu.Lock()
	m.DeletePlayerCalls = append(m.DeletePlayerCalls, id)
	m.mu.Unlock()
	if m.DeletePlayerFunc != nil {
		return m.DeletePlayerFunc(id)
	}
	return nil
}

func (m *MockStore) Courts() []tennis.Court {
	return m.Snapshot().Courts
}

func (m *MockStore) ActiveCourts() []tennis.Court {
	out := make([]tennis.Court, 0)
	for _, c := range m.Courts() {
		if c.IsActive {
			out = append(out, c)
		}
	}
	return out
}

func (m *MockStore) AddCourt(in CourtInput) (tennis.Court, error) {
	if m.AddCourtFunc != nil {
		return m.AddCourtFunc(in)
	}
	return tennis.Court{Name: in.Name, Surface: in.Surface}, nil
}

func (m *MockStore) UpdateCourt(id string, patch CourtPatch) (tennis.Court, error) {
	if m.UpdateCourtFunc != nil {
		return m.UpdateCourtFunc(id, patch)
	}
	return tennis.Court{ID: id}, nil
}

func (m *MockStore) DeleteCourt(id string) error {
	if m.DeleteCourtFunc != nil {
		return m.DeleteCourtFunc(id)
	}
	return nil
}

func (m *MockStore) Schedules() []tennis.Schedule {
	return m.Snapshot().Schedules
}

func (m *MockStore) AddSchedule(in ScheduleInput) (tennis.Schedule, error) {
	if m.AddScheduleFunc != nil {
		return m.AddScheduleFunc(in)
	}
	return tennis.Schedule{Date: in.Date, Status: in.Status}, nil
}

func (m *MockStore) UpdateSchedule(id string, patch SchedulePatch) (tennis.Schedule, error) {
	if m.UpdateScheduleFunc != nil {
		return m.UpdateScheduleFunc(id, patch)
	}
	return tennis.Schedule{ID: id}, nil
}

func (m *MockStore) DeleteSchedule(id string) error {
	if m.DeleteScheduleFunc != nil {
		return m.DeleteScheduleFunc(id)
	}
	return nil
}

func (m *MockStore) Matches() []tennis.Match {
	return m.Snapshot().Matches
}

func (m *MockStore) GetMatch(id string) (tennis.Match, error) {
	for _, match := range m.Matches() {
		if match.ID == id {
			return match, nil
		}
	}
	return tennis.Match{}, ErrNotFound
}

func (m *MockStore) RecordDoublesResult(in DoublesResultInput) (tennis.Match, error) {
	m.mu.Lock()
	m.RecordDoublesResultCalls = append(m.RecordDoublesResultCalls, in)
	m.mu.Unlock()
	if m.RecordDoublesResultFunc != nil {
		return m.RecordDoublesResultFunc(in)
	}
	return tennis.Match{Date: in.Date, Result: in.Result, Status: tennis.MatchStatusCompleted}, nil
}

func (m *MockStore) RecordScoredMatch(in ScoredMatchInput) (tennis.Match, error) {
	m.mu.Lock()
	m.RecordScoredMatchCalls = append(m.RecordScoredMatchCalls, in)
	m.mu.Unlock()
	if m.RecordScoredMatchFunc != nil {
		return m.RecordScoredMatchFunc(in)
	}
	return tennis.Match{Date: in.Date, Result: in.Winner, Status: tennis.MatchStatusCompleted}, nil
}

func (m *MockStore) UpdateMatch(id string, patch MatchPatch) (tennis.Match, error) {
	if m.UpdateMatchFunc != nil {
		return m.UpdateMatchFunc(id, patch)
	}
	return tennis.Match{ID: id}, nil
}

func (m *MockStore) DeleteMatch(id string) error {
	m.mu.Lock()
	m.DeleteMatchCalls = append(m.DeleteMatchCalls, id)
	m.mu.Unlock()
	if m.DeleteMatchFunc != nil {
		return m.DeleteMatchFunc(id)
	}
	return nil
}
