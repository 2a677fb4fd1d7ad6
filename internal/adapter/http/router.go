package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/nordbok/bokforing/internal/adapter/http/handler"
	"github.com/nordbok/bokforing/internal/adapter/http/middleware"
	"github.com/nordbok/bokforing/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	CompanyHandler    *handler.CompanyHandler
	AccountHandler    *handler.AccountHandler
	VoucherHandler    *handler.VoucherHandler
	PeriodLockHandler *handler.PeriodLockHandler
	ReportHandler     *handler.ReportHandler
	ExportHandler     *handler.ExportHandler
	HealthHandler     *handler.HealthHandler
	IdempotencyStore  usecase.IdempotencyStore
	IdempotencyTTL    time.Duration
	Logger            zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Companies
		r.Route("/companies", func(r chi.Router) {
			r.Post("/", cfg.CompanyHandler.Create)
			r.Get("/", cfg.CompanyHandler.List)

			r.Route("/{companyID}", func(r chi.Router) {
				r.Put("/accounts", cfg.AccountHandler.Upsert)
				r.Get("/accounts", cfg.AccountHandler.List)
				r.Get("/series", cfg.VoucherHandler.ListSeries)

				r.Post("/vouchers", cfg.VoucherHandler.Create)
				r.Get("/vouchers", cfg.VoucherHandler.List)

				r.Post("/locks", cfg.PeriodLockHandler.Create)
				r.Get("/locks", cfg.PeriodLockHandler.List)

				r.Get("/reports/journal", cfg.ReportHandler.Journal)
				r.Get("/reports/ledger", cfg.ReportHandler.Ledger)

				r.Post("/export/csv", cfg.ExportHandler.ExportCSV)
				r.Post("/export/sie", cfg.ExportHandler.ExportSIE)
			})
		})

		// Vouchers
		r.Route("/vouchers", func(r chi.Router) {
			r.Get("/{id}", cfg.VoucherHandler.Get)
			r.Post("/{id}/post", cfg.VoucherHandler.Post)
			r.Post("/{id}/correction", cfg.VoucherHandler.Correct)
		})
	})

	return r
}
