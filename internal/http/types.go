package http

import (
	"net/http"

	"github.com/mauv0809/tennis-ledger/internal/club"
	"github.com/mauv0809/tennis-ledger/internal/config"
	"github.com/mauv0809/tennis-ledger/internal/metrics"
	"github.com/mauv0809/tennis-ledger/internal/processor"
)

type Server struct {
	Store          club.ClubStore
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Counters       metrics.CounterStore
	Cfg            config.Config
	Processor      *processor.Processor
	Router         *http.ServeMux
}
