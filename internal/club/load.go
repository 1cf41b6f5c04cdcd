package club

import (
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/tennis-ledger/internal/tennis"
	"github.com/vmihailenco/msgpack/v5"
)

func (s *store) loadPlayers() ([]tennis.Player, error) {
	rows, err := s.db.Query(`SELECT id, name, email, phone, skill_level, created_at FROM players ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	players := make([]tennis.Player, 0)
	for rows.Next() {
		var p tennis.Player
		var createdAt int64
		if err := rows.Scan(&p.ID, &p.Name, &p.Email, &p.Phone, &p.SkillLevel, &createdAt); err != nil {
			return nil, err
		}
		p.CreatedAt = fromUnix(createdAt)
		players = append(players, p)
	}
	return players, rows.Err()
}

func (s *store) loadCourts() ([]tennis.Court, error) {
	rows, err := s.db.Query(`SELECT id, name, location, surface, is_indoor, is_active, created_at FROM courts ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	courts := make([]tennis.Court, 0)
	for rows.Next() {
		var c tennis.Court
		var createdAt int64
		if err := rows.Scan(&c.ID, &c.Name, &c.Location, &c.Surface, &c.IsIndoor, &c.IsActive, &createdAt); err != nil {
			return nil, err
		}
		c.CreatedAt = fromUnix(createdAt)
		courts = append(courts, c)
	}
	return courts, rows.Err()
}

// loadSchedules resolves participants against players. Ids of players that
// no longer exist are skipped.
func (s *store) loadSchedules(players []tennis.Player) ([]tennis.Schedule, error) {
	rows, err := s.db.Query(`SELECT id, date, player_ids, status, notes, created_at, updated_at FROM schedules ORDER BY date DESC, rowid DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byID := make(map[string]tennis.Player, len(players))
	for _, p := range players {
		byID[p.ID] = p
	}

	schedules := make([]tennis.Schedule, 0)
	for rows.Next() {
		var sc tennis.Schedule
		var date, createdAt, updatedAt int64
		var blob []byte
		if err := rows.Scan(&sc.ID, &date, &blob, &sc.Status, &sc.Notes, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		sc.Date, sc.CreatedAt, sc.UpdatedAt = fromUnix(date), fromUnix(createdAt), fromUnix(updatedAt)

		var ids []string
		if len(blob) > 0 {
			if err := msgpack.Unmarshal(blob, &ids); err != nil {
				log.Error("Failed to decode schedule players", "error", err, "scheduleID", sc.ID)
			}
		}
		sc.Players = make([]tennis.Player, 0, len(ids))
		for _, id := range ids {
			if p, ok := byID[id]; ok {
				sc.Players = append(sc.Players, p)
			}
		}
		schedules = append(schedules, sc)
	}
	return schedules, rows.Err()
}

func (s *store) loadMatches() ([]tennis.Match, error) {
	rows, err := s.db.Query(`
		SELECT id, schedule_id, date, players_blob, sets_blob, result, duration, status, notes, court_id, court_name, created_at, updated_at
		FROM matches
		ORDER BY date DESC, rowid DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	matches := make([]tennis.Match, 0)
	for rows.Next() {
		var m tennis.Match
		var date, createdAt, updatedAt int64
		var playersBlob, setsBlob []byte
		err := rows.Scan(&m.ID, &m.ScheduleID, &date, &playersBlob, &setsBlob, &m.Result, &m.Duration,
			&m.Status, &m.Notes, &m.CourtID, &m.CourtName, &createdAt, &updatedAt)
		if err != nil {
			return nil, err
		}
		m.Date, m.CreatedAt, m.UpdatedAt = fromUnix(date), fromUnix(createdAt), fromUnix(updatedAt)
		decodeMatchBlobs(&m, playersBlob, setsBlob)
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

func encodeMatchBlobs(m tennis.Match) ([]byte, []byte, error) {
	snapshots := make([]playerSnapshot, 0, 4)
	for _, p := range m.Players() {
		snapshots = append(snapshots, playerSnapshot{
			ID:         p.ID,
			Name:       p.Name,
			Email:      p.Email,
			Phone:      p.Phone,
			SkillLevel: string(p.SkillLevel),
			CreatedAt:  p.CreatedAt.Unix(),
		})
	}
	playersBlob, err := msgpack.Marshal(snapshots)
	if err != nil {
		return nil, nil, err
	}

	sets := make([]setSnapshot, 0, len(m.Sets))
	for _, set := range m.Sets {
		sets = append(sets, setSnapshot{
			SetNumber:  set.SetNumber,
			TeamAScore: set.TeamAScore,
			TeamBScore: set.TeamBScore,
			Result:     string(set.Result),
			Duration:   set.Duration,
		})
	}
	setsBlob, err := msgpack.Marshal(sets)
	if err != nil {
		return nil, nil, err
	}
	return playersBlob, setsBlob, nil
}

// decodeMatchBlobs fills the player slots and sets of m. A corrupt blob is
// logged and leaves the affected fields empty.
func decodeMatchBlobs(m *tennis.Match, playersBlob, setsBlob []byte) {
	var snapshots []playerSnapshot
	if err := msgpack.Unmarshal(playersBlob, &snapshots); err != nil {
		log.Error("Failed to decode match players", "error", err, "matchID", m.ID)
	}
	slots := []*tennis.Player{&m.PlayerA1, &m.PlayerA2, &m.PlayerB1, &m.PlayerB2}
	for i, snap := range snapshots {
		if i >= len(slots) {
			break
		}
		*slots[i] = tennis.Player{
			ID:         snap.ID,
			Name:       snap.Name,
			Email:      snap.Email,
			Phone:      snap.Phone,
			SkillLevel: tennis.SkillLevel(snap.SkillLevel),
			CreatedAt:  fromUnix(snap.CreatedAt),
		}
	}

	var sets []setSnapshot
	if len(setsBlob) > 0 {
		if err := msgpack.Unmarshal(setsBlob, &sets); err != nil {
			log.Error("Failed to decode match sets", "error", err, "matchID", m.ID)
		}
	}
	m.Sets = make([]tennis.Set, 0, len(sets))
	for _, set := range sets {
		m.Sets = append(m.Sets, tennis.Set{
			SetNumber:  set.SetNumber,
			TeamAScore: set.TeamAScore,
			TeamBScore: set.TeamBScore,
			Result:     tennis.Result(set.Result),
			Duration:   set.Duration,
		})
	}
}

func fromUnix(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}

func cloneSchedule(sc tennis.Schedule) tennis.Schedule {
	sc.Players = slices.Clone(sc.Players)
	return sc
}

func cloneSchedules(in []tennis.Schedule) []tennis.Schedule {
	if in == nil {
		return nil
	}
	out := make([]tennis.Schedule, len(in))
	for i, sc := range in {
		out[i] = cloneSchedule(sc)
	}
	return out
}

func cloneMatch(m tennis.Match) tennis.Match {
	m.Sets = slices.Clone(m.Sets)
	return m
}

func cloneMatches(in []tennis.Match) []tennis.Match {
	if in == nil {
		return nil
	}
	out := make([]tennis.Match, len(in))
	for i, m := range in {
		out[i] = cloneMatch(m)
	}
	return out
}
