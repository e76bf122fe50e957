package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts and times GraphQL requests by operation type.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "boards",
			Subsystem: "graphql",
			Name:      "requests_total",
			Help:      "GraphQL requests by operation type and outcome.",
		}, []string{"operation", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "boards",
			Subsystem: "graphql",
			Name:      "request_duration_seconds",
			Help:      "GraphQL execution time by operation type.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}
	reg.MustRegister(m.requests, m.duration)
	return m
}

func (m *Metrics) observe(operation string, failed bool, elapsed time.Duration) {
	status := "ok"
	if failed {
		status = "error"
	}
	m.requests.WithLabelValues(operation, status).Inc()
	m.duration.WithLabelValues(operation).Observe(elapsed.Seconds())
}
