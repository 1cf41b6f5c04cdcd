package tennis

import "time"

// SkillLevel is the categorical rating of a player.
type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
)

// Surface is the playing surface of a court.
type Surface string

const (
	SurfaceHard      Surface = "hard"
	SurfaceClay      Surface = "clay"
	SurfaceGrass     Surface = "grass"
	SurfaceSynthetic Surface = "synthetic"
)

// Result tags which side won a set or a match.
type Result string

const (
	ResultTeamA Result = "teamA"
	ResultTeamB Result = "teamB"
	ResultDraw  Result = "draw"
)

// MatchStatus is the lifecycle state of a recorded match.
// Recorded matches are always completed; cancelled is kept so aggregates can count it.
type MatchStatus string

const (
	MatchStatusCompleted MatchStatus = "completed"
	MatchStatusCancelled MatchStatus = "cancelled"
)

// ScheduleStatus is the state of a planned session.
type ScheduleStatus string

const (
	ScheduleStatusScheduled ScheduleStatus = "scheduled"
	ScheduleStatusCancelled ScheduleStatus = "cancelled"
)

// DateLayout is the day-granularity layout used for schedule dates.
const DateLayout = "2006-01-02"

// Player is a club member.
type Player struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email,omitempty"`
	Phone      string     `json:"phone,omitempty"`
	SkillLevel SkillLevel `json:"skill_level"`
	CreatedAt  time.Time  `json:"created_at"`
}

// Court is a place matches are played on.
type Court struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Surface   Surface   `json:"surface"`
	IsIndoor  bool      `json:"is_indoor"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// Schedule is a planned, not yet played, gathering of players on a day.
type Schedule struct {
	ID        string         `json:"id"`
	Date      time.Time      `json:"date"`
	Players   []Player       `json:"players"`
	Status    ScheduleStatus `json:"status"`
	Notes     string         `json:"notes,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// HasPlayer reports whether playerID is one of the schedule's participants.
func (s Schedule) HasPlayer(playerID string) bool {
	for _, p := range s.Players {
		if p.ID == playerID {
			return true
		}
	}
	return false
}

// Set is a single set inside a match. SetNumber is assigned by the caller and
// need not be contiguous; the order of Match.Sets is the stored order.
type Set struct {
	SetNumber  int    `json:"set_number"`
	TeamAScore int    `json:"team_a_score"`
	TeamBScore int    `json:"team_b_score"`
	Result     Result `json:"result"`
	Duration   int    `json:"duration,omitempty"`
}

// Match is a completed doubles match. Team A is PlayerA1+PlayerA2 and team B is
// PlayerB1+PlayerB2. The players are snapshots taken when the match was recorded.
type Match struct {
	ID         string      `json:"id"`
	ScheduleID string      `json:"schedule_id,omitempty"`
	Date       time.Time   `json:"date"`
	PlayerA1   Player      `json:"player_a1"`
	PlayerA2   Player      `json:"player_a2"`
	PlayerB1   Player      `json:"player_b1"`
	PlayerB2   Player      `json:"player_b2"`
	Sets       []Set       `json:"sets"`
	Result     Result      `json:"result"`
	Duration   int         `json:"duration"`
	Status     MatchStatus `json:"status"`
	Notes      string      `json:"notes,omitempty"`
	CourtID    string      `json:"court_id"`
	CourtName  string      `json:"court_name"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// Players returns the four slots in the order A1, A2, B1, B2.
func (m Match) Players() [4]Player {
	return [4]Player{m.PlayerA1, m.PlayerA2, m.PlayerB1, m.PlayerB2}
}

// HasPlayer reports whether playerID occupies any of the four slots.
func (m Match) HasPlayer(playerID string) bool {
	for _, p := range m.Players() {
		if p.ID == playerID {
			return true
		}
	}
	return false
}

// TeamOf returns the side playerID plays on. A player listed on both sides
// (malformed input) is reported as team A.
func (m Match) TeamOf(playerID string) (Result, bool) {
	switch playerID {
	case "":
		return "", false
	case m.PlayerA1.ID, m.PlayerA2.ID:
		return ResultTeamA, true
	case m.PlayerB1.ID, m.PlayerB2.ID:
		return ResultTeamB, true
	}
	return "", false
}

// Won reports whether playerID is on the side the match result names.
// Draws have no winner.
func (m Match) Won(playerID string) bool {
	if playerID == "" {
		return false
	}
	switch m.Result {
	case ResultTeamA:
		return m.PlayerA1.ID == playerID || m.PlayerA2.ID == playerID
	case ResultTeamB:
		return m.PlayerB1.ID == playerID || m.PlayerB2.ID == playerID
	}
	return false
}
