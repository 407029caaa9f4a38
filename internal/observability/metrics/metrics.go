package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricPrefix = "socis_"

	ResultSuccess = "success"
	ResultError   = "error"
)

var (
	registerOnce sync.Once

	remittanceBuildTotal      *prometheus.CounterVec
	remittanceBuildLatency    *prometheus.HistogramVec
	remittanceGenerateTotal   *prometheus.CounterVec
	remittanceGenerateLatency *prometheus.HistogramVec
	remittanceLinesTotal      *prometheus.CounterVec
	quoteOutcomesTotal        *prometheus.CounterVec
	exportTotal               *prometheus.CounterVec
	directorySyncTotal        *prometheus.CounterVec
)

// Init registers the service metrics on the default registry.
func Init() {
	registerOnce.Do(func() {
		remittanceBuildTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "remittance_build_total",
				Help: "Total remittance build operations by result",
			},
			[]string{"result"},
		)
		remittanceBuildLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "remittance_build_latency_seconds",
				Help:    "Remittance build latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"result"},
		)
		remittanceGenerateTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "remittance_generate_total",
				Help: "Total remittance XML generations by result",
			},
			[]string{"result"},
		)
		remittanceGenerateLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "remittance_generate_latency_seconds",
				Help:    "Remittance XML generation latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"result"},
		)
		remittanceLinesTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "remittance_lines_total",
				Help: "Total generated direct-debit transactions by sequence type",
			},
			[]string{"sequence"},
		)
		quoteOutcomesTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "quote_outcomes_total",
				Help: "Total bank outcomes recorded on quotes by state",
			},
			[]string{"state"},
		)
		exportTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "receipts_export_total",
				Help: "Total receipts exports by format and result",
			},
			[]string{"format", "result"},
		)
		directorySyncTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "member_directory_sync_total",
				Help: "Total member directory synchronisations by result",
			},
			[]string{"result"},
		)
		prometheus.MustRegister(
			remittanceBuildTotal,
			remittanceBuildLatency,
			remittanceGenerateTotal,
			remittanceGenerateLatency,
			remittanceLinesTotal,
			quoteOutcomesTotal,
			exportTotal,
			directorySyncTotal,
		)
	})
}

// Result maps an error to a result label.
func Result(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultSuccess
}

// ObserveRemittanceBuild records build duration and result.
func ObserveRemittanceBuild(result string, duration time.Duration) {
	if remittanceBuildTotal != nil {
		remittanceBuildTotal.WithLabelValues(result).Inc()
	}
	if remittanceBuildLatency != nil {
		remittanceBuildLatency.WithLabelValues(result).Observe(duration.Seconds())
	}
}

// ObserveRemittanceGenerate records XML generation duration and result.
func ObserveRemittanceGenerate(result string, duration time.Duration) {
	if remittanceGenerateTotal != nil {
		remittanceGenerateTotal.WithLabelValues(result).Inc()
	}
	if remittanceGenerateLatency != nil {
		remittanceGenerateLatency.WithLabelValues(result).Observe(duration.Seconds())
	}
}

// AddRemittanceLines counts generated transactions for a sequence type.
func AddRemittanceLines(sequence string, n int) {
	if remittanceLinesTotal != nil && n > 0 {
		remittanceLinesTotal.WithLabelValues(sequence).Add(float64(n))
	}
}

// IncQuoteOutcome counts a recorded bank outcome.
func IncQuoteOutcome(state string) {
	if quoteOutcomesTotal != nil {
		quoteOutcomesTotal.WithLabelValues(state).Inc()
	}
}

// IncExport counts a receipts export.
func IncExport(format, result string) {
	if exportTotal != nil {
		exportTotal.WithLabelValues(format, result).Inc()
	}
}

// IncDirectorySync counts a member directory synchronisation.
func IncDirectorySync(result string) {
	if directorySyncTotal != nil {
		directorySyncTotal.WithLabelValues(result).Inc()
	}
}
