package featuretoggle

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus metrics for feature toggle checks.
type Metrics struct {
	Checks       *prometheus.CounterVec
	QueryErrors  prometheus.Counter
	QueryLatency prometheus.Histogram
}

// NewMetrics creates a new Metrics instance registered on the default registry.
func NewMetrics() *Metrics {
	return newMetrics(promauto.With(prometheus.DefaultRegisterer))
}

// NewMetricsWith registers the metrics on reg. Tests pass a fresh registry.
func NewMetricsWith(reg prometheus.Registerer) *Metrics {
	return newMetrics(promauto.With(reg))
}

func newMetrics(f promauto.Factory) *Metrics {
	return &Metrics{
		Checks: f.NewCounterVec(prometheus.CounterOpts{
			Name: "contracts_feature_toggle_checks_total",
			Help: "Total number of feature toggle checks by outcome",
		}, []string{"outcome"}),
		QueryErrors: f.NewCounter(prometheus.CounterOpts{
			Name: "contracts_feature_toggle_query_errors_total",
			Help: "Total number of failed available toggle queries",
		}),
		QueryLatency: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "contracts_feature_toggle_query_duration_seconds",
			Help:    "Duration of available toggle queries",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// IncCheck counts a check with the given outcome.
func (m *Metrics) IncCheck(outcome string) {
	m.Checks.WithLabelValues(outcome).Inc()
}

// IncQueryError increments the query error counter.
func (m *Metrics) IncQueryError() {
	m.QueryErrors.Inc()
}

// ObserveQuery records query latency in seconds.
func (m *Metrics) ObserveQuery(seconds float64) {
	m.QueryLatency.Observe(seconds)
}
