// Package observability provides the Prometheus metrics and the slog
// logger of the decode service.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/gometar/gometar/report"
)

const namespace = "gometar"

// Metrics holds the Prometheus counters and histograms of the decode service.
type Metrics struct {
	ReportsDecoded *prometheus.CounterVec // labels: type={METAR,TAF,unknown}
	ReportErrors   *prometheus.CounterVec // labels: error
	Groups         *prometheus.CounterVec // labels: kind
	DecodeDuration prometheus.Histogram
	ArchiveWrites  *prometheus.CounterVec // labels: outcome={success,error}
}

var durationBuckets = []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := NewMetricsForTesting()
	prometheus.MustRegister(
		m.ReportsDecoded,
		m.ReportErrors,
		m.Groups,
		m.DecodeDuration,
		m.ArchiveWrites,
	)
	return m
}

// NewMetricsForTesting creates Metrics that are not registered anywhere, so
// that tests can create as many as they need.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		ReportsDecoded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_decoded_total",
			Help:      "Total reports decoded, by report type.",
		}, []string{"type"}),
		ReportErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "report_errors_total",
			Help:      "Reports that finished with a report-level error, by error code.",
		}, []string{"error"}),
		Groups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "groups_total",
			Help:      "Decoded groups by kind.",
		}, []string{"kind"}),
		DecodeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "decode_duration_seconds",
			Help:      "Duration of decoding a single report.",
			Buckets:   durationBuckets,
		}),
		ArchiveWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "archive_writes_total",
			Help:      "Decoded reports written to the archive, by outcome.",
		}, []string{"outcome"}),
	}
}

// ObserveResult records one decoded report.
func (m *Metrics) ObserveResult(r report.Result, elapsed time.Duration) {
	m.ReportsDecoded.WithLabelValues(r.Metadata.Type.String()).Inc()
	if !r.OK() {
		m.ReportErrors.WithLabelValues(r.Metadata.Error.String()).Inc()
	}
	for _, gi := range r.Groups {
		m.Groups.WithLabelValues(gi.Kind().String()).Inc()
	}
	m.DecodeDuration.Observe(elapsed.Seconds())
}
