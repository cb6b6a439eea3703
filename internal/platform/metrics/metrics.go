package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds Prometheus counters and gauges for the viewer service.
type Metrics struct {
	registry             *prometheus.Registry
	requestsTotal        prometheus.Counter
	errorsTotal          prometheus.Counter
	sessionsCreatedTotal prometheus.Counter
	sessionsEndedTotal   prometheus.Counter
	eventsTotal          *prometheus.CounterVec
	flightsTotal         prometheus.Counter
	activeSessions       prometheus.Gauge
}

// New creates and registers Prometheus metrics for the viewer service.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	requestsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "roadtrip_requests_total",
		Help: "Total number of HTTP requests received",
	})
	errorsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "roadtrip_errors_total",
		Help: "Total number of HTTP responses with error status (4xx or 5xx)",
	})
	sessionsCreatedTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "roadtrip_sessions_created_total",
		Help: "Total number of viewer sessions created",
	})
	sessionsEndedTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "roadtrip_sessions_ended_total",
		Help: "Total number of viewer sessions ended",
	})
	eventsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "roadtrip_events_total",
		Help: "Total number of UI events applied, by type",
	}, []string{"type"})
	flightsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "roadtrip_flights_total",
		Help: "Total number of fly-to commands issued",
	})
	activeSessions := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "roadtrip_active_sessions",
		Help: "Number of live viewer sessions",
	})

	registry.MustRegister(
		requestsTotal,
		errorsTotal,
		sessionsCreatedTotal,
		sessionsEndedTotal,
		eventsTotal,
		flightsTotal,
		activeSessions,
	)

	return &Metrics{
		registry:             registry,
		requestsTotal:        requestsTotal,
		errorsTotal:          errorsTotal,
		sessionsCreatedTotal: sessionsCreatedTotal,
		sessionsEndedTotal:   sessionsEndedTotal,
		eventsTotal:          eventsTotal,
		flightsTotal:         flightsTotal,
		activeSessions:       activeSessions,
	}
}

// IncRequests increments the total request counter.
func (m *Metrics) IncRequests() {
	m.requestsTotal.Inc()
}

// IncErrors increments the errors counter.
func (m *Metrics) IncErrors() {
	m.errorsTotal.Inc()
}

// IncSessionsCreated increments the sessions created counter.
func (m *Metrics) IncSessionsCreated() {
	m.sessionsCreatedTotal.Inc()
}

// IncSessionsEnded increments the sessions ended counter.
func (m *Metrics) IncSessionsEnded() {
	m.sessionsEndedTotal.Inc()
}

// IncEvent counts one applied event of the given type.
func (m *Metrics) IncEvent(eventType string) {
	m.eventsTotal.WithLabelValues(eventType).Inc()
}

// IncFlights increments the fly-to counter.
func (m *Metrics) IncFlights() {
	m.flightsTotal.Inc()
}

// SetActiveSessions sets the active sessions gauge.
func (m *Metrics) SetActiveSessions(n int) {
	m.activeSessions.Set(float64(n))
}

// Handler returns an http.Handler that serves Prometheus metrics.
// updateGauges is called before each scrape to refresh gauge values (e.g. active sessions).
func (m *Metrics) Handler(updateGauges func()) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if updateGauges != nil {
			updateGauges()
		}
		promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}).ServeHTTP(w, r)
	})
}
