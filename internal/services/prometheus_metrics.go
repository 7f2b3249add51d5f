package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	importsTotal       *prometheus.CounterVec
	importDuration     prometheus.Histogram
	importRows         *prometheus.CounterVec
	categoriesCreated  prometheus.Counter
	cleanupFailures    prometheus.Counter
	transactionBalance *prometheus.GaugeVec
}

// NewPrometheusMetrics registers the import collectors with the default registry
func NewPrometheusMetrics() MetricsRecorderInterface {
	return NewPrometheusMetricsWith(prometheus.DefaultRegisterer)
}

// NewPrometheusMetricsWith registers the import collectors with reg
func NewPrometheusMetricsWith(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)
	return &PrometheusMetrics{
		importsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "imports_total",
				Help: "Total number of CSV imports by status and failed stage",
			},
			[]string{"status", "stage"},
		),
		importDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "import_duration_milliseconds",
				Help:    "CSV import duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
		importRows: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "import_rows_total",
				Help: "Total number of CSV rows imported or skipped",
			},
			[]string{"outcome"},
		),
		categoriesCreated: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "import_categories_created_total",
				Help: "Total number of categories created by imports",
			},
		),
		cleanupFailures: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "import_cleanup_failures_total",
				Help: "Total number of imported files that could not be removed",
			},
		),
		transactionBalance: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "ledger_balance",
				Help: "Last observed ledger totals by component",
			},
			[]string{"component"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "import.completed":
		m.importsTotal.WithLabelValues("success", "").Inc()
	case "import.failed":
		m.importsTotal.WithLabelValues("failed", tags["stage"]).Inc()
	case "import.cleanup.failed":
		m.cleanupFailures.Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "import.duration":
		m.importDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "import.rows":
		if outcome := tags["outcome"]; outcome != "" && value > 0 {
			m.importRows.WithLabelValues(outcome).Add(value)
		}
	case "import.categories.created":
		if value > 0 {
			m.categoriesCreated.Add(value)
		}
	case "ledger.balance":
		if component := tags["component"]; component != "" {
			m.transactionBalance.WithLabelValues(component).Set(value)
		}
	}
}
