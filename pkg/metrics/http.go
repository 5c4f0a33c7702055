package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// APIMetrics records request latencies and catalog resolution outcomes.
type APIMetrics struct {
	requestDuration *prometheus.HistogramVec
	resolutions     *prometheus.CounterVec
}

// NewAPIMetrics registers the API metrics on the provided registerer.
func NewAPIMetrics(reg prometheus.Registerer) *APIMetrics {
	if reg == nil {
		return &APIMetrics{}
	}
	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
	resolutions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_resolutions_total",
		Help: "Identifier resolution attempts by entity and outcome.",
	}, []string{"entity", "outcome"})
	reg.MustRegister(requestDuration, resolutions)
	return &APIMetrics{
		requestDuration: requestDuration,
		resolutions:     resolutions,
	}
}

// ObserveRequest records the latency of a finished request.
func (m *APIMetrics) ObserveRequest(method, route string, status int, duration time.Duration) {
	if m == nil || m.requestDuration == nil {
		return
	}
	m.requestDuration.
		WithLabelValues(method, normalizeLabel(route), strconv.Itoa(status)).
		Observe(duration.Seconds())
}

// IncResolution counts one resolution attempt for the given entity ("category",
// "product") and outcome ("hit", "miss").
func (m *APIMetrics) IncResolution(entity, outcome string) {
	if m == nil || m.resolutions == nil {
		return
	}
	m.resolutions.WithLabelValues(normalizeLabel(entity), normalizeLabel(outcome)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
