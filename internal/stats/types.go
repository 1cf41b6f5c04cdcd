package stats

// MatchStats is the summary computed over a collection of matches.
type MatchStats struct {
	TotalMatches     int                `json:"total_matches"`
	CompletedMatches int                `json:"completed_matches"`
	CancelledMatches int                `json:"cancelled_matches"`
	AverageDuration  float64            `json:"average_duration"`
	MostActivePlayer string             `json:"most_active_player"`
	MostActiveCourt  string             `json:"most_active_court"`
	WinRate          map[string]float64 `json:"win_rate"`
}

// PlayerStanding represents a player's line in the standings table.
type PlayerStanding struct {
	PlayerID      string  `json:"player_id"`
	PlayerName    string  `json:"player_name"`
	SkillLevel    string  `json:"skill_level"`
	MatchesPlayed int     `json:"matches_played"`
	MatchesWon    int     `json:"matches_won"`
	WinPercentage float64 `json:"win_percentage"`
	TotalDuration int     `json:"total_duration"`
}

// CourtUsage is how much a court has been played on.
type CourtUsage struct {
	CourtID         string  `json:"court_id"`
	CourtName       string  `json:"court_name"`
	MatchCount      int     `json:"match_count"`
	TotalDuration   int     `json:"total_duration"`
	AverageDuration float64 `json:"average_duration"`
}

// MonthCount is the number of matches played in a calendar month.
type MonthCount struct {
	Month string `json:"month"` // YYYY-MM
	Count int    `json:"count"`
}
