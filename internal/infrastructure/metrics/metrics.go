package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics.
type Metrics struct {
	// Voucher metrics
	VouchersCreated    prometheus.Counter
	VouchersPosted     prometheus.Counter
	CorrectionsCreated prometheus.Counter
	VoucherErrors      *prometheus.CounterVec

	// Period lock metrics
	PeriodsLocked prometheus.Counter
	LockedRejects prometheus.Counter

	// Export metrics
	ExportsGenerated *prometheus.CounterVec

	// Database metrics
	DBConnections prometheus.Gauge
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		VouchersCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bokforing_vouchers_created_total",
			Help: "Total number of vouchers created",
		}),
		VouchersPosted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bokforing_vouchers_posted_total",
			Help: "Total number of vouchers posted",
		}),
		CorrectionsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bokforing_corrections_created_total",
			Help: "Total number of correction vouchers created",
		}),
		VoucherErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bokforing_voucher_errors_total",
				Help: "Total number of rejected voucher operations by reason",
			},
			[]string{"reason"},
		),

		PeriodsLocked: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bokforing_periods_locked_total",
			Help: "Total number of period locks recorded",
		}),
		LockedRejects: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bokforing_locked_period_rejects_total",
			Help: "Total number of writes rejected by a period lock",
		}),

		ExportsGenerated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bokforing_exports_generated_total",
				Help: "Total number of exports generated by format",
			},
			[]string{"format"},
		),

		DBConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "bokforing_db_connections",
			Help: "Current number of database connections",
		}),
	}
}
