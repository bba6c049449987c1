package events

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus metrics for event publishing.
type Metrics struct {
	Published *prometheus.CounterVec
	Failed    *prometheus.CounterVec
}

// NewMetrics creates a new Metrics instance registered on the default registry.
func NewMetrics() *Metrics {
	return NewMetricsWith(prometheus.DefaultRegisterer)
}

// NewMetricsWith registers the metrics on reg.
func NewMetricsWith(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Published: f.NewCounterVec(prometheus.CounterOpts{
			Name: "contracts_events_published_total",
			Help: "Total number of domain events dispatched to the bus",
		}, []string{"event"}),
		Failed: f.NewCounterVec(prometheus.CounterOpts{
			Name: "contracts_events_publish_failures_total",
			Help: "Total number of domain events the bus rejected",
		}, []string{"event"}),
	}
}

// IncPublished counts a dispatched event.
func (m *Metrics) IncPublished(event string) {
	m.Published.WithLabelValues(event).Inc()
}

// IncFailed counts a rejected event.
func (m *Metrics) IncFailed(event string) {
	m.Failed.WithLabelValues(event).Inc()
}
