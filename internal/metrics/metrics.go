// Package metrics provides Prometheus metrics for the workflow engine,
// presence tracking, event dispatch and the HTTP surface.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/taskflow-backend/internal/domain"
)

const namespace = "taskflow"

// Metrics holds all Prometheus metrics of the service.
type Metrics struct {
	TransitionsApplied  *prometheus.CounterVec
	TransitionsRejected *prometheus.CounterVec
	PresenceEvents      *prometheus.CounterVec
	EventsDropped       prometheus.Counter
	RequestDuration     *prometheus.HistogramVec

	registry *prometheus.Registry
}

// New creates and registers all metrics on a private registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		TransitionsApplied: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "transitions_applied_total",
				Help:      "Committed work item transitions by operation and resulting status.",
			},
			[]string{"operation", "to"},
		),
		TransitionsRejected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "transitions_rejected_total",
				Help:      "Failed work item transitions by operation and reason.",
			},
			[]string{"operation", "reason"},
		),
		PresenceEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "presence_events_total",
				Help:      "Presence notifications emitted by type.",
			},
			[]string{"type"},
		),
		EventsDropped: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "status_events_dropped_total",
				Help:      "Status change events dropped because the dispatch buffer was full or stopped.",
			},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration by method, route pattern and status code.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
		registry: reg,
	}

	reg.MustRegister(m.TransitionsApplied)
	reg.MustRegister(m.TransitionsRejected)
	reg.MustRegister(m.PresenceEvents)
	reg.MustRegister(m.EventsDropped)
	reg.MustRegister(m.RequestDuration)
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return m
}

// Handler returns an http.Handler for the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the private registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// TransitionApplied counts a committed transition.
func (m *Metrics) TransitionApplied(op domain.Operation, to domain.Status) {
	m.TransitionsApplied.WithLabelValues(string(op), string(to)).Inc()
}

// TransitionRejected counts a failed transition.
func (m *Metrics) TransitionRejected(op domain.Operation, reason string) {
	m.TransitionsRejected.WithLabelValues(string(op), reason).Inc()
}

// PresenceEvent counts a presence notification.
func (m *Metrics) PresenceEvent(t domain.NotificationType) {
	m.PresenceEvents.WithLabelValues(string(t)).Inc()
}

// EventDropped counts a dropped status change event.
func (m *Metrics) EventDropped() {
	m.EventsDropped.Inc()
}

// ObserveRequest records one HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, d time.Duration) {
	m.RequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}

// RegisterGauges exposes live sizes read at scrape time: work items with
// presence sessions and queued status events.
func (m *Metrics) RegisterGauges(activeSessions, pendingEvents func() int) {
	m.registry.MustRegister(
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "presence_active_sessions",
			Help:      "Work items with at least one viewer.",
		}, func() float64 { return float64(activeSessions()) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "status_events_pending",
			Help:      "Status change events waiting for dispatch.",
		}, func() float64 { return float64(pendingEvents()) }),
	)
}
