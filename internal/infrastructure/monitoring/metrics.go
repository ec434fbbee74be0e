package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	SynthesisTotal    *prometheus.CounterVec
	SynthesisDuration prometheus.Histogram
	ArchiveBytes      prometheus.Histogram
	RequestsTotal     *prometheus.CounterVec
}

// NewMetrics creates a metrics collector registered with the default
// Prometheus registerer. Call at most once per process.
func NewMetrics() *Metrics {
	return NewMetricsWith(prometheus.DefaultRegisterer)
}

// NewMetricsWith registers the collector set with reg. Tests pass a
// fresh registry so repeated construction does not collide.
func NewMetricsWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		SynthesisTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aiagen_synthesis_total",
				Help: "Total synthesis requests by outcome",
			},
			[]string{"outcome"},
		),
		SynthesisDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "aiagen_synthesis_duration_seconds",
				Help:    "Synthesis duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		ArchiveBytes: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "aiagen_archive_bytes",
				Help:    "Emitted archive size in bytes",
				Buckets: prometheus.ExponentialBuckets(1024, 4, 8),
			},
		),
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aiagen_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
	}
}

// ObserveSynthesis records one synthesis attempt.
func (m *Metrics) ObserveSynthesis(outcome string, took time.Duration, archiveBytes int) {
	m.SynthesisTotal.WithLabelValues(outcome).Inc()
	m.SynthesisDuration.Observe(took.Seconds())
	if archiveBytes > 0 {
		m.ArchiveBytes.Observe(float64(archiveBytes))
	}
}
