package client

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics records client-side request telemetry. The registerer is
// injectable so tests can use an isolated registry.
type Metrics struct {
	requestsTotal       *prometheus.CounterVec
	requestDuration     prometheus.Histogram
	tokenRefreshTotal   *prometheus.CounterVec
	sessionEventsTotal  *prometheus.CounterVec
	circuitBreakerState prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "plutusgrip_client_requests_total",
				Help: "Total number of API requests by resource, method and status",
			},
			[]string{"resource", "method", "status"},
		),
		requestDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "plutusgrip_client_request_duration_milliseconds",
				Help:    "API request duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		tokenRefreshTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "plutusgrip_client_token_refresh_total",
				Help: "Total number of access token refresh attempts",
			},
			[]string{"status"},
		),
		sessionEventsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "plutusgrip_client_session_events_total",
				Help: "Total number of session lifecycle events",
			},
			[]string{"event_type"},
		),
		circuitBreakerState: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "plutusgrip_client_circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
		),
	}
}

// ObserveRequest records one completed request. A zero status means no
// HTTP response was obtained.
func (m *Metrics) ObserveRequest(resource, method string, status int, duration time.Duration) {
	label := "transport_error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	m.requestsTotal.WithLabelValues(resource, method, label).Inc()
	m.requestDuration.Observe(float64(duration.Milliseconds()))
}

// RecordRefresh records one token refresh attempt.
func (m *Metrics) RecordRefresh(success bool) {
	status := "failed"
	if success {
		status = "success"
	}
	m.tokenRefreshTotal.WithLabelValues(status).Inc()
}

// RecordSessionEvent records login, register, logout and forced-logout
// events.
func (m *Metrics) RecordSessionEvent(eventType string) {
	m.sessionEventsTotal.WithLabelValues(eventType).Inc()
}

// SetBreakerState mirrors the circuit breaker state into the gauge.
func (m *Metrics) SetBreakerState(state CircuitBreakerState) {
	m.circuitBreakerState.Set(float64(state))
}
