package main

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/itbasis/go-clock"
	"github.com/mauv0809/tennis-ledger/internal/club"
	"github.com/mauv0809/tennis-ledger/internal/config"
	"github.com/mauv0809/tennis-ledger/internal/database"
	"github.com/mauv0809/tennis-ledger/internal/metrics"
	"github.com/mauv0809/tennis-ledger/internal/tennis"
	"github.com/prometheus/client_golang/prometheus"
)

const numMatches = 200

var seedPlayers = []club.PlayerInput{
	{Name: "Seeder Player A", SkillLevel: tennis.SkillBeginner},
	{Name: "Seeder Player B", SkillLevel: tennis.SkillIntermediate},
	{Name: "Seeder Player C", SkillLevel: tennis.SkillIntermediate},
	{Name: "Seeder Player D", SkillLevel: tennis.SkillAdvanced},
	{Name: "Seeder Player E", SkillLevel: tennis.SkillAdvanced},
	{Name: "Seeder Player F", SkillLevel: tennis.SkillBeginner},
}

// The courts every new club starts with.
var seedCourts = []club.CourtInput{
	{Name: "Court 1", Surface: tennis.SurfaceHard},
	{Name: "Court 2", Surface: tennis.SurfaceHard},
}

func main() {
	log.Info("Starting database seeder...")
	cfg := config.Load()

	db, teardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken)
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer teardown()

	store := club.New(db, metrics.NewService(prometheus.NewRegistry()), clock.New())
	if err := store.LoadAll(); err != nil {
		log.Fatalf("Failed to load club store: %s", err)
	}

	courts := store.Courts()
	if len(courts) == 0 {
		for _, in := range seedCourts {
			court, err := store.AddCourt(in)
			if err != nil {
				log.Fatalf("Failed to insert court %s: %s", in.Name, err)
			}
			courts = append(courts, court)
		}
	}
	log.Info("Ensured courts exist.", "count", len(courts))

	players := make([]tennis.Player, 0, len(seedPlayers))
	for _, in := range seedPlayers {
		p, err := store.AddPlayer(in)
		if err != nil {
			log.Fatalf("Failed to insert dummy player %s: %s", in.Name, err)
		}
		players = append(players, p)
	}
	log.Info("Inserted dummy players.", "count", len(players))

	log.Info("Preparing to insert dummy matches...", "total", numMatches)
	startTime := time.Now()
	results := []tennis.Result{tennis.ResultTeamA, tennis.ResultTeamB, tennis.ResultDraw}

	for i := 0; i < numMatches; i++ {
		lineup := rand.Perm(len(players))[:4]
		matchTime := time.Now().Add(-time.Duration(rand.Intn(365*24)) * time.Hour).Truncate(time.Hour)
		in := club.DoublesResultInput{
			MatchLineup: club.MatchLineup{
				PlayerA1: players[lineup[0]].ID,
				PlayerA2: players[lineup[1]].ID,
				PlayerB1: players[lineup[2]].ID,
				PlayerB2: players[lineup[3]].ID,
			},
			Date:     matchTime,
			Result:   results[rand.Intn(len(results))],
			CourtID:  courts[rand.Intn(len(courts))].ID,
			Duration: 45 + 15*rand.Intn(6),
		}
		if _, err := store.RecordDoublesResult(in); err != nil {
			log.Fatalf("Failed to insert match: %s", err)
		}
		if (i+1)%50 == 0 {
			log.Info("Inserted batch", "completed", i+1, "total", numMatches)
		}
	}

	log.Info("Successfully inserted all dummy matches.", "duration", time.Since(startTime))
}
