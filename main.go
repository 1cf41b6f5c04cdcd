package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/itbasis/go-clock"
	"github.com/mauv0809/tennis-ledger/internal/club"
	"github.com/mauv0809/tennis-ledger/internal/config"
	"github.com/mauv0809/tennis-ledger/internal/database"
	server "github.com/mauv0809/tennis-ledger/internal/http"
	"github.com/mauv0809/tennis-ledger/internal/metrics"
	"github.com/mauv0809/tennis-ledger/internal/notifier/slack"
	"github.com/mauv0809/tennis-ledger/internal/processor"
	"github.com/mauv0809/tennis-ledger/internal/pubsub"
)

func main() {
	// Start profiling timer
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()
	db, dbTeardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken)
	dbInitDuration := time.Since(startTime)
	log.Info("Database initialization time recorded", "duration_ms", dbInitDuration.Milliseconds())
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer func() {
		log.Info("Closing database connection")
		dbTeardown()
	}()

	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()
	counters := metrics.New(db)

	clubStore := club.New(db, metricsSvc, clock.New())
	if err := clubStore.LoadAll(); err != nil {
		log.Fatalf("Failed to load club store: %s", err)
	}
	snapshot := clubStore.Snapshot()
	log.Info("Club store loaded", "players", len(snapshot.Players), "courts", len(snapshot.Courts),
		"schedules", len(snapshot.Schedules), "matches", len(snapshot.Matches))

	notifier := slack.NewNotifier(cfg.Slack.Token, cfg.Slack.ChannelID, metricsSvc)

	var ps pubsub.PubSubClient
	var local *pubsub.LocalClient
	if cfg.ProjectID != "" {
		ps = pubsub.New(cfg.ProjectID)
	} else {
		log.Info("GCP_PROJECT is not set, events are handled in-process")
		local = pubsub.NewLocal()
		ps = local
	}
	defer ps.Close()

	processor := processor.New(clubStore, notifier, metricsSvc, counters, ps)
	if local != nil {
		local.Subscribe(pubsub.EventMatchRecorded, func(data []byte) error {
			return processor.HandleMatchRecorded(data, false)
		})
	}

	s := server.NewServer(
		clubStore,
		metricsSvc,
		metricsHandler,
		counters,
		cfg,
		processor,
	)

	// --- Record startup time ---
	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s,
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	// Start the server in a goroutine
	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		// Create a context with a timeout for the shutdown.
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Attempt to gracefully shut down the server.
		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}
