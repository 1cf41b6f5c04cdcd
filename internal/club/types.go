package club

import (
	"database/sql"
	"errors"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/itbasis/go-clock"
	"github.com/mauv0809/tennis-ledger/internal/metrics"
	"github.com/mauv0809/tennis-ledger/internal/tennis"
)

var (
	// ErrNotFound is returned when an id does not name a stored entity.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput wraps validation failures on the write path.
	ErrInvalidInput = errors.New("invalid input")
)

// store owns the in-memory collections and keeps them in step with the database.
// The collections are only replaced after the database write succeeded.
type store struct {
	db       *sql.DB
	metrics  metrics.Metrics
	clock    clock.Clock
	validate *validator.Validate

	mu        sync.RWMutex
	players   []tennis.Player
	courts    []tennis.Court
	schedules []tennis.Schedule
	matches   []tennis.Match
}

// Snapshot is a copy of every collection, safe to hand to filters and aggregators.
type Snapshot struct {
	Players   []tennis.Player   `json:"players"`
	Courts    []tennis.Court    `json:"courts"`
	Schedules []tennis.Schedule `json:"schedules"`
	Matches   []tennis.Match    `json:"matches"`
}

// PlayerInput creates a player.
type PlayerInput struct {
	Name       string            `json:"name" validate:"required"`
	Email      string            `json:"email" validate:"omitempty,email"`
	Phone      string            `json:"phone"`
	SkillLevel tennis.SkillLevel `json:"skill_level" validate:"required,oneof=beginner intermediate advanced"`
}

// PlayerPatch updates the non-nil fields of a player.
type PlayerPatch struct {
	Name       *string            `json:"name" validate:"omitempty,min=1"`
	Email      *string            `json:"email" validate:"omitempty,email"`
	Phone      *string            `json:"phone"`
	SkillLevel *tennis.SkillLevel `json:"skill_level" validate:"omitempty,oneof=beginner intermediate advanced"`
}

// CourtInput creates a court. A court is active unless IsActive says otherwise.
type CourtInput struct {
	Name     string         `json:"name" validate:"required"`
	Location string         `json:"location"`
	Surface  tennis.Surface `json:"surface" validate:"required,oneof=hard clay grass synthetic"`
	IsIndoor bool           `json:"is_indoor"`
	IsActive *bool          `json:"is_active"`
}

// CourtPatch updates the non-nil fields of a court.
type CourtPatch struct {
	Name     *string         `json:"name" validate:"omitempty,min=1"`
	Location *string         `json:"location"`
	Surface  *tennis.Surface `json:"surface" validate:"omitempty,oneof=hard clay grass synthetic"`
	IsIndoor *bool           `json:"is_indoor"`
	IsActive *bool           `json:"is_active"`
}

// ScheduleInput creates a schedule. Date is truncated to its calendar day.
type ScheduleInput struct {
	Date      time.Time             `json:"date" validate:"required"`
	PlayerIDs []string              `json:"player_ids" validate:"min=2,unique,dive,required"`
	Status    tennis.ScheduleStatus `json:"status" validate:"omitempty,oneof=scheduled cancelled"`
	Notes     string                `json:"notes"`
}

// SchedulePatch updates the non-nil fields of a schedule.
type SchedulePatch struct {
	Date      *time.Time             `json:"date"`
	PlayerIDs []string               `json:"player_ids" validate:"omitempty,min=2,unique,dive,required"`
	Status    *tennis.ScheduleStatus `json:"status" validate:"omitempty,oneof=scheduled cancelled"`
	Notes     *string                `json:"notes"`
}

// MatchLineup names the four players of a match by id.
type MatchLineup struct {
	PlayerA1 string `json:"player_a1" validate:"required"`
	PlayerA2 string `json:"player_a2" validate:"required"`
	PlayerB1 string `json:"player_b1" validate:"required"`
	PlayerB2 string `json:"player_b2" validate:"required"`
}

// DoublesResultInput records a match from its outcome alone.
type DoublesResultInput struct {
	MatchLineup
	ScheduleID string        `json:"schedule_id"`
	Date       time.Time     `json:"date" validate:"required"`
	Result     tennis.Result `json:"result" validate:"required,oneof=teamA teamB draw"`
	CourtID    string        `json:"court_id"`
	Duration   int           `json:"duration" validate:"gt=0"`
	Notes      string        `json:"notes"`
}

// SetScore is one set as entered.
type SetScore struct {
	SetNumber  int `json:"set_number" validate:"gte=1"`
	TeamAScore int `json:"team_a_score" validate:"gte=0"`
	TeamBScore int `json:"team_b_score" validate:"gte=0"`
	Duration   int `json:"duration" validate:"gte=0"`
}

// ScoredMatchInput records a match from raw set scores.
type ScoredMatchInput struct {
	MatchLineup
	ScheduleID string        `json:"schedule_id"`
	Date       time.Time     `json:"date" validate:"required"`
	Sets       []SetScore    `json:"sets" validate:"required,min=1,dive"`
	Winner     tennis.Result `json:"winner" validate:"required,oneof=teamA teamB draw"`
	CourtID    string        `json:"court_id"`
	Duration   int           `json:"duration" validate:"gt=0"`
	Notes      string        `json:"notes"`
}

// MatchPatch updates the non-nil fields of a match. Players and sets are fixed once recorded.
type MatchPatch struct {
	Date     *time.Time          `json:"date"`
	Result   *tennis.Result      `json:"result" validate:"omitempty,oneof=teamA teamB draw"`
	Status   *tennis.MatchStatus `json:"status" validate:"omitempty,oneof=completed cancelled"`
	Duration *int                `json:"duration" validate:"omitempty,gt=0"`
	Notes    *string             `json:"notes"`
	CourtID  *string             `json:"court_id"`
}

// playerSnapshot is how a player is frozen inside a match row.
type playerSnapshot struct {
	ID         string `msgpack:"id"`
	Name       string `msgpack:"name"`
	Email      string `msgpack:"email"`
	Phone      string `msgpack:"phone"`
	SkillLevel string `msgpack:"skill_level"`
	CreatedAt  int64  `msgpack:"created_at"`
}

type setSnapshot struct {
	SetNumber  int    `msgpack:"set_number"`
	TeamAScore int    `msgpack:"team_a_score"`
	TeamBScore int    `msgpack:"team_b_score"`
	Result     string `msgpack:"result"`
	Duration   int    `msgpack:"duration"`
}
