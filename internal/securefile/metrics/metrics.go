// Package metrics exposes the service's Prometheus collectors.
//
// Every method is safe on a nil *Metrics so services can be built in tests
// without a registry.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "securefile"

type Metrics struct {
	Registry *prometheus.Registry

	sessionsActive  prometheus.Gauge
	sessionsStarted prometheus.Counter
	sessionsEnded   *prometheus.CounterVec
	sessionWarnings prometheus.Counter
	authSteps       *prometheus.CounterVec
	fileOps         *prometheus.CounterVec
	uploads         *prometheus.CounterVec
	events          *prometheus.CounterVec
	threats         *prometheus.CounterVec
}

// New registers every collector on a fresh registry, along with the Go
// runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		Registry: reg,
		sessionsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "sessions_active",
			Help: "Signed-in sessions whose countdown is still running.",
		}),
		sessionsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "sessions_started_total",
			Help: "Sessions started after a completed sign-in flow.",
		}),
		sessionsEnded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "sessions_ended_total",
			Help: "Sessions ended, by reason (logout, timeout, shutdown).",
		}, []string{"reason"}),
		sessionWarnings: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "session_expiry_warnings_total",
			Help: "Expiry warnings raised by session countdowns.",
		}),
		authSteps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "auth_steps_total",
			Help: "Sign-in step submissions, by step and whether the flow advanced.",
		}, []string{"step", "advanced"}),
		fileOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "file_operations_total",
			Help: "Simulated file operations that changed a record.",
		}, []string{"op"}),
		uploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "uploads_total",
			Help: "Simulated uploads, by outcome (completed, cancelled, abandoned).",
		}, []string{"outcome"}),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "security_events_total",
			Help: "Security events appended to the feed, by type.",
		}, []string{"type"}),
		threats: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "threat_simulations_total",
			Help: "Threat simulation actions (simulated, blocked).",
		}, []string{"action"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.sessionsActive,
		m.sessionsStarted,
		m.sessionsEnded,
		m.sessionWarnings,
		m.authSteps,
		m.fileOps,
		m.uploads,
		m.events,
		m.threats,
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

func (m *Metrics) SessionStarted() {
	if m == nil {
		return
	}
	m.sessionsStarted.Inc()
	m.sessionsActive.Inc()
}

func (m *Metrics) SessionEnded(reason string) {
	if m == nil {
		return
	}
	m.sessionsEnded.WithLabelValues(reason).Inc()
	m.sessionsActive.Dec()
}

func (m *Metrics) SessionWarned() {
	if m == nil {
		return
	}
	m.sessionWarnings.Inc()
}

func (m *Metrics) AuthStep(step string, advanced bool) {
	if m == nil {
		return
	}
	label := "false"
	if advanced {
		label = "true"
	}
	m.authSteps.WithLabelValues(step, label).Inc()
}

func (m *Metrics) FileOp(op string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.fileOps.WithLabelValues(op).Add(float64(n))
}

func (m *Metrics) Upload(outcome string) {
	if m == nil {
		return
	}
	m.uploads.WithLabelValues(outcome).Inc()
}

func (m *Metrics) Event(eventType string) {
	if m == nil {
		return
	}
	m.events.WithLabelValues(eventType).Inc()
}

func (m *Metrics) Threat(action string) {
	if m == nil {
		return
	}
	m.threats.WithLabelValues(action).Inc()
}
