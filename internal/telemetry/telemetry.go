// Package telemetry provides OpenTelemetry instrumentation for the
// leadgate service. It exports Prometheus metrics and a tracer.
package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "leadgate"

// Metrics holds all leadgate Prometheus metrics.
type Metrics struct {
	// Intake metrics
	LeadsReceived        *prometheus.CounterVec // by label
	SubmissionsRejected  prometheus.Counter
	SubmissionsThrottled prometheus.Counter
	HoneypotTripped      prometheus.Counter

	// Engine metrics
	ClassifyDuration prometheus.Histogram

	// Pipeline metrics
	StepFailures   *prometheus.CounterVec // by step
	NotifyDuration prometheus.Histogram
	DuplicateLeads prometheus.Counter
}

// Provider wraps the tracer and metrics behind one handle.
type Provider struct {
	Tracer   trace.Tracer
	Metrics  *Metrics
	registry *prometheus.Registry
}

// NewProvider initializes telemetry with its own Prometheus registry so
// repeated construction (tests) never collides.
func NewProvider() *Provider {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	metrics := &Metrics{
		LeadsReceived: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "leadgate_leads_received_total",
			Help: "Accepted submissions by assigned label",
		}, []string{"label"}),
		SubmissionsRejected: factory.NewCounter(prometheus.CounterOpts{
			Name: "leadgate_submissions_rejected_total",
			Help: "Submissions rejected by validation",
		}),
		SubmissionsThrottled: factory.NewCounter(prometheus.CounterOpts{
			Name: "leadgate_submissions_throttled_total",
			Help: "Submissions rejected by the intake rate limiter",
		}),
		HoneypotTripped: factory.NewCounter(prometheus.CounterOpts{
			Name: "leadgate_honeypot_tripped_total",
			Help: "Submissions silently dropped by the honeypot",
		}),
		ClassifyDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "leadgate_classify_duration_seconds",
			Help:    "Classification latency",
			Buckets: prometheus.ExponentialBuckets(0.00001, 10, 6),
		}),
		StepFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "leadgate_step_failures_total",
			Help: "Pipeline step failures by step name",
		}, []string{"step"}),
		NotifyDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "leadgate_notify_duration_seconds",
			Help:    "Notification delivery latency including retries",
			Buckets: prometheus.DefBuckets,
		}),
		DuplicateLeads: factory.NewCounter(prometheus.CounterOpts{
			Name: "leadgate_duplicate_leads_total",
			Help: "Submissions flagged as repeats within the dedupe window",
		}),
	}

	return &Provider{
		Tracer:   otel.Tracer(serviceName),
		Metrics:  metrics,
		registry: registry,
	}
}

// Handler returns the Prometheus HTTP handler for the /metrics endpoint.
func (p *Provider) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}
