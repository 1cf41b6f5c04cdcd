package club

import "github.com/mauv0809/tennis-ledger/internal/tennis"

// ClubStore defines the interface for interacting with the club's data.
// Reads are served from memory; writes go to the database first.
type ClubStore interface {
	LoadAll() error
	Snapshot() Snapshot
	Clear() error

	Players() []tennis.Player
	GetPlayer(id string) (tennis.Player, error)
	PlayersBySkill(level tennis.SkillLevel) []tennis.Player
	AddPlayer(in PlayerInput) (tennis.Player, error)
	UpdatePlayer(id string, patch PlayerPatch) (tennis.Player, error)
	DeletePlayer(id string) error

	Courts() []tennis.Court
	ActiveCourts() []tennis.Court
	AddCourt(in CourtInput) (tennis.Court, error)
	UpdateCourt(id string, patch CourtPatch) (tennis.Court, error)
	DeleteCourt(id string) error

	Schedules() []tennis.Schedule
	AddSchedule(in ScheduleInput) (tennis.Schedule, error)
	UpdateSchedule(id string, patch SchedulePatch) (tennis.Schedule, error)
	DeleteSchedule(id string) error

	Matches() []tennis.Match
	GetMatch(id string) (tennis.Match, error)
	RecordDoublesResult(in DoublesResultInput) (tennis.Match, error)
	RecordScoredMatch(in ScoredMatchInput) (tennis.Match, error)
	UpdateMatch(id string, patch MatchPatch) (tennis.Match, error)
	DeleteMatch(id string) error
}
