package http

import (
	"net/http"

	"github.com/mauv0809/tennis-ledger/internal/club"
	"github.com/mauv0809/tennis-ledger/internal/config"
	"github.com/mauv0809/tennis-ledger/internal/http/handlers"
	"github.com/mauv0809/tennis-ledger/internal/metrics"
	"github.com/mauv0809/tennis-ledger/internal/processor"
)

func NewServer(store club.ClubStore, metricsSvc metrics.Metrics, metricsHandler http.Handler, counters metrics.CounterStore, cfg config.Config, processor *processor.Processor) *Server {
	server := &Server{
		Store:          store,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Counters:       counters,
		Cfg:            cfg,
		Processor:      processor,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// e.g. Chain(s.MyHandler(), paramsMiddleware, authMiddleware)
	handle := func(pattern string, h http.Handler, extra ...Middleware) {
		s.Router.Handle(pattern, Chain(h, append([]Middleware{paramsMiddleware}, extra...)...))
	}

	s.Router.Handle("GET /metrics", s.MetricsHandler)
	handle("GET /health", handlers.HealthCheckHandler())
	handle("POST /clear", handlers.ClearStoreHandler(s.Store))
	handle("GET /backup", handlers.BackupHandler(s.Store))
	handle("GET /counters", handlers.CountersHandler(s.Counters))

	handle("GET /players", handlers.ListPlayersHandler(s.Store))
	handle("POST /players", handlers.CreatePlayerHandler(s.Store))
	handle("GET /players/{id}", handlers.GetPlayerHandler(s.Store))
	handle("PATCH /players/{id}", handlers.UpdatePlayerHandler(s.Store))
	handle("DELETE /players/{id}", handlers.DeletePlayerHandler(s.Store))

	handle("GET /courts", handlers.ListCourtsHandler(s.Store))
	handle("POST /courts", handlers.CreateCourtHandler(s.Store))
	handle("PATCH /courts/{id}", handlers.UpdateCourtHandler(s.Store))
	handle("DELETE /courts/{id}", handlers.DeleteCourtHandler(s.Store))

	handle("GET /schedules", handlers.ListSchedulesHandler(s.Store))
	handle("POST /schedules", handlers.CreateScheduleHandler(s.Store, s.Processor))
	handle("PATCH /schedules/{id}", handlers.UpdateScheduleHandler(s.Store))
	handle("DELETE /schedules/{id}", handlers.DeleteScheduleHandler(s.Store))

	handle("GET /matches", handlers.ListMatchesHandler(s.Store))
	handle("POST /matches", handlers.RecordMatchHandler(s.Store, s.Processor))
	handle("POST /matches/scored", handlers.RecordScoredMatchHandler(s.Store, s.Processor))
	handle("GET /matches/{id}", handlers.GetMatchHandler(s.Store))
	handle("PATCH /matches/{id}", handlers.UpdateMatchHandler(s.Store))
	handle("DELETE /matches/{id}", handlers.DeleteMatchHandler(s.Store))

	handle("GET /stats", handlers.StatsHandler(s.Processor))
	handle("GET /stats/standings", handlers.StandingsHandler(s.Processor))
	handle("POST /stats/standings", handlers.PostStandingsHandler(s.Processor))
	handle("GET /stats/courts", handlers.CourtUsageHandler(s.Store))
	handle("GET /stats/monthly", handlers.MonthlyHandler(s.Store))

	handle("GET /export.csv", handlers.ExportCSVHandler(s.Store, s.Processor))
	handle("POST /share", handlers.ShareHandler(s.Processor))

	handle("POST /events/match-recorded", handlers.MatchRecordedHandler(s.Processor), pushTokenMiddleware(s.Cfg.PushToken))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
