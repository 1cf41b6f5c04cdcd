package club

import (
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/itbasis/go-clock"
	"github.com/mauv0809/tennis-ledger/internal/metrics"
	"github.com/mauv0809/tennis-ledger/internal/tennis"
	"github.com/vmihailenco/msgpack/v5"
)

// New creates a new ClubStore. It starts empty; call LoadAll to read the database.
func New(db *sql.DB, m metrics.Metrics, clk clock.Clock) ClubStore {
	return &store{
		db:       db,
		metrics:  m,
		clock:    clk,
		validate: validator.New(),
	}
}

// LoadAll replaces the in-memory collections with the database contents.
// Players and courts come newest first, schedules and matches by date, latest first.
func (s *store) LoadAll() error {
	players, err := s.loadPlayers()
	if err != nil {
		return fmt.Errorf("failed to load players: %w", err)
	}
	courts, err := s.loadCourts()
	if err != nil {
		return fmt.Errorf("failed to load courts: %w", err)
	}
	schedules, err := s.loadSchedules(players)
	if err != nil {
		return fmt.Errorf("failed to load schedules: %w", err)
	}
	matches, err := s.loadMatches()
	if err != nil {
		return fmt.Errorf("failed to load matches: %w", err)
	}

	s.mu.Lock()
	s.players, s.courts, s.schedules, s.matches = players, courts, schedules, matches
	s.mu.Unlock()

	log.Info("Loaded club data", "players", len(players), "courts", len(courts), "schedules", len(schedules), "matches", len(matches))
	return nil
}

// Snapshot returns copies of all collections.
func (s *store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Players:   slices.Clone(s.players),
		Courts:    slices.Clone(s.courts),
		Schedules: cloneSchedules(s.schedules),
		Matches:   cloneMatches(s.matches),
	}
}

// Clear deletes every row and empties the collections.
func (s *store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return s.fail("all", "clear", err)
	}
	for _, table := range []string{"matches", "schedules", "courts", "players"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			tx.Rollback()
			return s.fail("all", "clear", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return s.fail("all", "clear", err)
	}

	s.players, s.courts, s.schedules, s.matches = nil, nil, nil, nil
	s.succeed("all", "clear")
	log.Info("Club store cleared")
	return nil
}

// Players returns a copy of all players.
func (s *store) Players() []tennis.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.players)
}

func (s *store) GetPlayer(id string) (tennis.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.playerIndex(id)
	if i < 0 {
		return tennis.Player{}, fmt.Errorf("player %s: %w", id, ErrNotFound)
	}
	return s.players[i], nil
}

// PlayersBySkill returns the players of the given tier.
func (s *store) PlayersBySkill(level tennis.SkillLevel) []tennis.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]tennis.Player, 0)
	for _, p := range s.players {
		if p.SkillLevel == level {
			out = append(out, p)
		}
	}
	return out
}

func (s *store) AddPlayer(in PlayerInput) (tennis.Player, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := s.check(in); err != nil {
		return tennis.Player{}, err
	}
	p := tennis.Player{
		ID:         uuid.NewString(),
		Name:       in.Name,
		Email:      in.Email,
		Phone:      in.Phone,
		SkillLevel: in.SkillLevel,
		CreatedAt:  s.now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`INSERT INTO players (id, name, email, phone, skill_level, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Email, p.Phone, p.SkillLevel, p.CreatedAt.Unix())
	if err != nil {
		return tennis.Player{}, s.fail("player", "add", err)
	}
	s.players = append(s.players, p)
	s.succeed("player", "add")
	log.Info("Added player", "playerID", p.ID, "name", p.Name)
	return p, nil
}

// UpdatePlayer changes a player. Recorded matches keep the snapshot taken when they were played.
func (s *store) UpdatePlayer(id string, patch PlayerPatch) (tennis.Player, error) {
	if err := s.check(patch); err != nil {
		return tennis.Player{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.playerIndex(id)
	if i < 0 {
		return tennis.Player{}, fmt.Errorf("player %s: %w", id, ErrNotFound)
	}
	p := s.players[i]
	if patch.Name != nil {
		p.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Email != nil {
		p.Email = *patch.Email
	}
	if patch.Phone != nil {
		p.Phone = *patch.Phone
	}
	if patch.SkillLevel != nil {
		p.SkillLevel = *patch.SkillLevel
	}

	_, err := s.db.Exec(`UPDATE players SET name = ?, email = ?, phone = ?, skill_level = ? WHERE id = ?`,
		p.Name, p.Email, p.Phone, p.SkillLevel, p.ID)
	if err != nil {
		return tennis.Player{}, s.fail("player", "update", err)
	}
	s.players[i] = p
	for si := range s.schedules {
		for pi := range s.schedules[si].Players {
			if s.schedules[si].Players[pi].ID == id {
				s.schedules[si].Players[pi] = p
			}
		}
	}
	s.succeed("player", "update")
	log.Info("Updated player", "playerID", id)
	return p, nil
}

// DeletePlayer removes a player. Historical matches are left untouched and
// schedules simply stop listing the player.
func (s *store) DeletePlayer(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.playerIndex(id)
	if i < 0 {
		return fmt.Errorf("player %s: %w", id, ErrNotFound)
	}
	if _, err := s.db.Exec(`DELETE FROM players WHERE id = ?`, id); err != nil {
		return s.fail("player", "delete", err)
	}
	s.players = slices.Delete(s.players, i, i+1)
	for si := range s.schedules {
		s.schedules[si].Players = slices.DeleteFunc(s.schedules[si].Players, func(p tennis.Player) bool {
			return p.ID == id
		})
	}
	s.succeed("player", "delete")
	log.Info("Deleted player", "playerID", id)
	return nil
}

func (s *store) Courts() []tennis.Court {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.courts)
}

// ActiveCourts returns the courts that can currently be booked.
func (s *store) ActiveCourts() []tennis.Court {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]tennis.Court, 0)
	for _, c := range s.courts {
		if c.IsActive {
			out = append(out, c)
		}
	}
	return out
}

func (s *store) AddCourt(in CourtInput) (tennis.Court, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := s.check(in); err != nil {
		return tennis.Court{}, err
	}
	c := tennis.Court{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Location:  in.Location,
		Surface:   in.Surface,
		IsIndoor:  in.IsIndoor,
		IsActive:  in.IsActive == nil || *in.IsActive,
		CreatedAt: s.now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`INSERT INTO courts (id, name, location, surface, is_indoor, is_active, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Name, c.Location, c.Surface, c.IsIndoor, c.IsActive, c.CreatedAt.Unix())
	if err != nil {
		return tennis.Court{}, s.fail("court", "add", err)
	}
	s.courts = append(s.courts, c)
	s.succeed("court", "add")
	log.Info("Added court", "courtID", c.ID, "name", c.Name)
	return c, nil
}

// UpdateCourt changes a court. Matches keep the court name they were recorded with.
func (s *store) UpdateCourt(id string, patch CourtPatch) (tennis.Court, error) {
	if err := s.check(patch); err != nil {
		return tennis.Court{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.courtIndex(id)
	if i < 0 {
		return tennis.Court{}, fmt.Errorf("court %s: %w", id, ErrNotFound)
	}
	c := s.courts[i]
	if patch.Name != nil {
		c.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Location != nil {
		c.Location = *patch.Location
	}
	if patch.Surface != nil {
		c.Surface = *patch.Surface
	}
	if patch.IsIndoor != nil {
		c.IsIndoor = *patch.IsIndoor
	}
	if patch.IsActive != nil {
		c.IsActive = *patch.IsActive
	}

	_, err := s.db.Exec(`UPDATE courts SET name = ?, location = ?, surface = ?, is_indoor = ?, is_active = ? WHERE id = ?`,
		c.Name, c.Location, c.Surface, c.IsIndoor, c.IsActive, c.ID)
	if err != nil {
		return tennis.Court{}, s.fail("court", "update", err)
	}
	s.courts[i] = c
	s.succeed("court", "update")
	log.Info("Updated court", "courtID", id)
	return c, nil
}

func (s *store) DeleteCourt(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.courtIndex(id)
	if i < 0 {
		return fmt.Errorf("court %s: %w", id, ErrNotFound)
	}
	if _, err := s.db.Exec(`DELETE FROM courts WHERE id = ?`, id); err != nil {
		return s.fail("court", "delete", err)
	}
	s.courts = slices.Delete(s.courts, i, i+1)
	s.succeed("court", "delete")
	log.Info("Deleted court", "courtID", id)
	return nil
}

func (s *store) Schedules() []tennis.Schedule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSchedules(s.schedules)
}

// AddSchedule plans a session. New schedules are listed first.
func (s *store) AddSchedule(in ScheduleInput) (tennis.Schedule, error) {
	if err := s.check(in); err != nil {
		return tennis.Schedule{}, err
	}
	if in.Status == "" {
		in.Status = tennis.ScheduleStatusScheduled
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	players, err := s.resolvePlayersLocked(in.PlayerIDs)
	if err != nil {
		return tennis.Schedule{}, err
	}
	now := s.now()
	sc := tennis.Schedule{
		ID:        uuid.NewString(),
		Date:      calendarDay(in.Date),
		Players:   players,
		Status:    in.Status,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	blob, err := msgpack.Marshal(in.PlayerIDs)
	if err != nil {
		return tennis.Schedule{}, s.fail("schedule", "add", err)
	}

	_, err = s.db.Exec(`INSERT INTO schedules (id, date, player_ids, status, notes, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sc.ID, sc.Date.Unix(), blob, sc.Status, sc.Notes, now.Unix(), now.Unix())
	if err != nil {
		return tennis.Schedule{}, s.fail("schedule", "add", err)
	}
	s.schedules = slices.Insert(s.schedules, 0, sc)
	s.succeed("schedule", "add")
	log.Info("Added schedule", "scheduleID", sc.ID, "date", sc.Date.Format(tennis.DateLayout), "players", len(players))
	return cloneSchedule(sc), nil
}

func (s *store) UpdateSchedule(id string, patch SchedulePatch) (tennis.Schedule, error) {
	if err := s.check(patch); err != nil {
		return tennis.Schedule{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.scheduleIndex(id)
	if i < 0 {
		return tennis.Schedule{}, fmt.Errorf("schedule %s: %w", id, ErrNotFound)
	}
	sc := cloneSchedule(s.schedules[i])
	if patch.Date != nil {
		sc.Date = calendarDay(*patch.Date)
	}
	if patch.PlayerIDs != nil {
		players, err := s.resolvePlayersLocked(patch.PlayerIDs)
		if err != nil {
			return tennis.Schedule{}, err
		}
		sc.Players = players
	}
	if patch.Status != nil {
		sc.Status = *patch.Status
	}
	if patch.Notes != nil {
		sc.Notes = *patch.Notes
	}
	sc.UpdatedAt = s.now()

	ids := make([]string, 0, len(sc.Players))
	for _, p := range sc.Players {
		ids = append(ids, p.ID)
	}
	blob, err := msgpack.Marshal(ids)
	if err != nil {
		return tennis.Schedule{}, s.fail("schedule", "update", err)
	}

	_, err = s.db.Exec(`UPDATE schedules SET date = ?, player_ids = ?, status = ?, notes = ?, updated_at = ? WHERE id = ?`,
		sc.Date.Unix(), blob, sc.Status, sc.Notes, sc.UpdatedAt.Unix(), sc.ID)
	if err != nil {
		return tennis.Schedule{}, s.fail("schedule", "update", err)
	}
	s.schedules[i] = sc
	s.succeed("schedule", "update")
	log.Info("Updated schedule", "scheduleID", id)
	return cloneSchedule(sc), nil
}

func (s *store) DeleteSchedule(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.scheduleIndex(id)
	if i < 0 {
		return fmt.Errorf("schedule %s: %w", id, ErrNotFound)
	}
	if _, err := s.db.Exec(`DELETE FROM schedules WHERE id = ?`, id); err != nil {
		return s.fail("schedule", "delete", err)
	}
	s.schedules = slices.Delete(s.schedules, i, i+1)
	s.succeed("schedule", "delete")
	log.Info("Deleted schedule", "scheduleID", id)
	return nil
}

func (s *store) Matches() []tennis.Match {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneMatches(s.matches)
}

func (s *store) GetMatch(id string) (tennis.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.matchIndex(id)
	if i < 0 {
		return tennis.Match{}, fmt.Errorf("match %s: %w", id, ErrNotFound)
	}
	return cloneMatch(s.matches[i]), nil
}

// RecordDoublesResult records a match whose outcome was picked directly.
// The single set stored with it is illustrative only.
func (s *store) RecordDoublesResult(in DoublesResultInput) (tennis.Match, error) {
	if err := s.check(in); err != nil {
		return tennis.Match{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lineup, details, err := s.prepareMatchLocked(in.MatchLineup, in.ScheduleID, in.CourtID)
	if err != nil {
		return tennis.Match{}, err
	}
	details.Date, details.Duration, details.Notes = in.Date, in.Duration, in.Notes

	m, err := tennis.NewDoublesResult(lineup, in.Result, details)
	if err != nil {
		return tennis.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return s.insertMatchLocked(m)
}

// RecordScoredMatch records a match from its set scores. Set results follow
// the scores while the overall winner is taken as given.
func (s *store) RecordScoredMatch(in ScoredMatchInput) (tennis.Match, error) {
	if err := s.check(in); err != nil {
		return tennis.Match{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lineup, details, err := s.prepareMatchLocked(in.MatchLineup, in.ScheduleID, in.CourtID)
	if err != nil {
		return tennis.Match{}, err
	}
	details.Date, details.Duration, details.Notes = in.Date, in.Duration, in.Notes

	sets := make([]tennis.ScoredSet, 0, len(in.Sets))
	for _, set := range in.Sets {
		sets = append(sets, tennis.ScoredSet{
			SetNumber:  set.SetNumber,
			TeamAScore: set.TeamAScore,
			TeamBScore: set.TeamBScore,
			Duration:   set.Duration,
		})
	}
	m, err := tennis.NewScoredMatch(lineup, sets, in.Winner, details)
	if err != nil {
		return tennis.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return s.insertMatchLocked(m)
}

// UpdateMatch changes the mutable fields of a match.
func (s *store) UpdateMatch(id string, patch MatchPatch) (tennis.Match, error) {
	if err := s.check(patch); err != nil {
		return tennis.Match{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.matchIndex(id)
	if i < 0 {
		return tennis.Match{}, fmt.Errorf("match %s: %w", id, ErrNotFound)
	}
	m := cloneMatch(s.matches[i])
	if patch.Date != nil {
		m.Date = truncateSecond(*patch.Date)
	}
	if patch.Result != nil {
		m.Result = *patch.Result
	}
	if patch.Status != nil {
		m.Status = *patch.Status
	}
	if patch.Duration != nil {
		m.Duration = *patch.Duration
	}
	if patch.Notes != nil {
		m.Notes = *patch.Notes
	}
	if patch.CourtID != nil {
		court, err := s.courtLocked(*patch.CourtID)
		if err != nil {
			return tennis.Match{}, err
		}
		m.CourtID, m.CourtName = court.ID, court.Name
	}
	m.UpdatedAt = s.now()

	_, err := s.db.Exec(`UPDATE matches SET date = ?, result = ?, status = ?, duration = ?, notes = ?, court_id = ?, court_name = ?, updated_at = ? WHERE id = ?`,
		m.Date.Unix(), m.Result, m.Status, m.Duration, m.Notes, m.CourtID, m.CourtName, m.UpdatedAt.Unix(), m.ID)
	if err != nil {
		return tennis.Match{}, s.fail("match", "update", err)
	}
	s.matches[i] = m
	s.succeed("match", "update")
	log.Info("Updated match", "matchID", id)
	return cloneMatch(m), nil
}

func (s *store) DeleteMatch(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.matchIndex(id)
	if i < 0 {
		return fmt.Errorf("match %s: %w", id, ErrNotFound)
	}
	if _, err := s.db.Exec(`DELETE FROM matches WHERE id = ?`, id); err != nil {
		return s.fail("match", "delete", err)
	}
	s.matches = slices.Delete(s.matches, i, i+1)
	s.succeed("match", "delete")
	log.Info("Deleted match", "matchID", id)
	return nil
}

// prepareMatchLocked resolves the ids a new match refers to.
func (s *store) prepareMatchLocked(ids MatchLineup, scheduleID, courtID string) (tennis.Lineup, tennis.MatchDetails, error) {
	players, err := s.resolvePlayersLocked([]string{ids.PlayerA1, ids.PlayerA2, ids.PlayerB1, ids.PlayerB2})
	if err != nil {
		return tennis.Lineup{}, tennis.MatchDetails{}, err
	}
	if len(players) != 4 {
		return tennis.Lineup{}, tennis.MatchDetails{}, fmt.Errorf("%w: %v", ErrInvalidInput, tennis.ErrDuplicatePlayer)
	}
	if scheduleID != "" && s.scheduleIndex(scheduleID) < 0 {
		return tennis.Lineup{}, tennis.MatchDetails{}, fmt.Errorf("%w: unknown schedule %s", ErrInvalidInput, scheduleID)
	}
	court, err := s.courtLocked(courtID)
	if err != nil {
		return tennis.Lineup{}, tennis.MatchDetails{}, err
	}
	lineup := tennis.Lineup{A1: players[0], A2: players[1], B1: players[2], B2: players[3]}
	return lineup, tennis.MatchDetails{ScheduleID: scheduleID, Court: court}, nil
}

func (s *store) insertMatchLocked(m tennis.Match) (tennis.Match, error) {
	now := s.now()
	m.ID = uuid.NewString()
	m.Date = truncateSecond(m.Date)
	m.CreatedAt, m.UpdatedAt = now, now

	playersBlob, setsBlob, err := encodeMatchBlobs(m)
	if err != nil {
		return tennis.Match{}, s.fail("match", "add", err)
	}
	_, err = s.db.Exec(`
		INSERT INTO matches (id, schedule_id, date, players_blob, sets_blob, result, duration, status, notes, court_id, court_name, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.ScheduleID, m.Date.Unix(), playersBlob, setsBlob, m.Result, m.Duration, m.Status, m.Notes, m.CourtID, m.CourtName, now.Unix(), now.Unix())
	if err != nil {
		return tennis.Match{}, s.fail("match", "add", err)
	}
	s.matches = slices.Insert(s.matches, 0, m)
	s.succeed("match", "add")
	log.Info("Recorded match", "matchID", m.ID, "result", m.Result, "sets", len(m.Sets))
	return cloneMatch(m), nil
}

// resolvePlayersLocked maps ids to players in the given order, dropping repeats.
func (s *store) resolvePlayersLocked(ids []string) ([]tennis.Player, error) {
	out := make([]tennis.Player, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		i := s.playerIndex(id)
		if i < 0 {
			return nil, fmt.Errorf("%w: unknown player %s", ErrInvalidInput, id)
		}
		out = append(out, s.players[i])
	}
	return out, nil
}

// courtLocked looks up a court. An empty id means no court.
func (s *store) courtLocked(id string) (tennis.Court, error) {
	if id == "" {
		return tennis.Court{}, nil
	}
	i := s.courtIndex(id)
	if i < 0 {
		return tennis.Court{}, fmt.Errorf("%w: unknown court %s", ErrInvalidInput, id)
	}
	return s.courts[i], nil
}

func (s *store) playerIndex(id string) int {
	return slices.IndexFunc(s.players, func(p tennis.Player) bool { return p.ID == id })
}

func (s *store) courtIndex(id string) int {
	return slices.IndexFunc(s.courts, func(c tennis.Court) bool { return c.ID == id })
}

func (s *store) scheduleIndex(id string) int {
	return slices.IndexFunc(s.schedules, func(sc tennis.Schedule) bool { return sc.ID == id })
}

func (s *store) matchIndex(id string) int {
	return slices.IndexFunc(s.matches, func(m tennis.Match) bool { return m.ID == id })
}

func (s *store) check(v any) error {
	if err := s.validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return fmt.Errorf("%w: %s", ErrInvalidInput, verrs.Error())
		}
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

func (s *store) fail(entity, op string, err error) error {
	log.Error("Store write failed", "entity", entity, "op", op, "error", err)
	s.metrics.IncStoreFailure(entity, op)
	return fmt.Errorf("failed to %s %s: %w", op, entity, err)
}

func (s *store) succeed(entity, op string) {
	s.metrics.IncStoreWrite(entity, op)
}

// now is the current time at the precision the database keeps.
func (s *store) now() time.Time {
	return truncateSecond(s.clock.Now())
}

func truncateSecond(t time.Time) time.Time {
	return time.Unix(t.Unix(), 0).UTC()
}

func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
