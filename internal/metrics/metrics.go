// Package metrics exposes Prometheus counters for validation activity and
// HTTP traffic on a private registry.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/goliatone/go-formcheck/pkg/validator"
)

const namespace = "formcheck"

// Metrics groups the collectors of one process.
type Metrics struct {
	registry *prometheus.Registry

	validations *prometheus.CounterVec
	submissions prometheus.Counter
	resets      prometheus.Counter
	sessions    prometheus.Gauge
	reqDuration *prometheus.HistogramVec
}

// New registers every collector, including the Go runtime and process
// collectors, on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		validations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validations_total",
			Help:      "Field validations by field and resulting phase.",
		}, []string{"field", "phase"}),
		submissions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_total",
			Help:      "Accepted form submissions.",
		}),
		resets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resets_total",
			Help:      "Forms reset after the confirmation delay.",
		}),
		sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions_active",
			Help:      "Open form sessions.",
		}),
		reqDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   []float64{0.01, 0.1, 0.3, 1.2, 5},
		}, []string{"path", "method", "status"}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.validations,
		m.submissions,
		m.resets,
		m.sessions,
		m.reqDuration,
	)
	return m
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Hooks counts validator activity. next, when set, runs after each counter
// update.
func (m *Metrics) Hooks(next validator.Hooks) validator.Hooks {
	return validator.Hooks{
		OnValidate: func(field validator.FieldID, phase validator.Phase) {
			m.validations.WithLabelValues(string(field), phase.String()).Inc()
			if next.OnValidate != nil {
				next.OnValidate(field, phase)
			}
		},
		OnSubmit: func() {
			m.submissions.Inc()
			if next.OnSubmit != nil {
				next.OnSubmit()
			}
		},
		OnReset: func() {
			m.resets.Inc()
			if next.OnReset != nil {
				next.OnReset()
			}
		},
	}
}

// SessionOpened and SessionClosed track live sessions.
func (m *Metrics) SessionOpened() { m.sessions.Inc() }

func (m *Metrics) SessionClosed() { m.sessions.Dec() }

const unmatchedPath = "unmatched"

// Middleware records request durations labelled by chi route pattern.
// Requests that match no route share the "unmatched" label.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		protoMajor := r.ProtoMajor
		if protoMajor < 1 {
			protoMajor = 1
		}
		ww := middleware.NewWrapResponseWriter(w, protoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		path := unmatchedPath
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				path = pattern
			}
		}
		m.reqDuration.WithLabelValues(path, r.Method, strconv.Itoa(status)).
			Observe(time.Since(start).Seconds())
	})
}
