// Package metrics holds the OpenTelemetry instruments shared by the session,
// onboarding and HTTP layers. Instruments are exported through whichever
// MeterProvider is passed to New; the API server wires the Prometheus exporter.
package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

const meterName = "govconnect"

// Outcome labels a finished operation.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
	OutcomeSkipped Outcome = "skipped"
)

// Metrics groups the application's instruments. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	sessionOps           metric.Int64Counter
	onboardingSteps      metric.Int64Counter
	onboardingCompletion metric.Int64Counter
	httpLatency          metric.Float64Histogram
}

// New creates every instrument on the given provider.
func New(mp metric.MeterProvider) (*Metrics, error) {
	meter := mp.Meter(meterName)

	sessionOps, err := meter.Int64Counter("session_operations_total",
		metric.WithDescription("Session store operations by name and outcome."))
	if err != nil {
		return nil, fmt.Errorf("could not create session counter: %w", err)
	}

	steps, err := meter.Int64Counter("onboarding_step_transitions_total",
		metric.WithDescription("Onboarding step transitions by source step and direction."))
	if err != nil {
		return nil, fmt.Errorf("could not create onboarding step counter: %w", err)
	}

	completions, err := meter.Int64Counter("onboarding_completions_total",
		metric.WithDescription("Finished onboarding flows by outcome."))
	if err != nil {
		return nil, fmt.Errorf("could not create onboarding completion counter: %w", err)
	}

	latency, err := meter.Float64Histogram("http_request_duration_seconds",
		metric.WithDescription("HTTP request latency."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create http latency histogram: %w", err)
	}

	return &Metrics{
		sessionOps:           sessionOps,
		onboardingSteps:      steps,
		onboardingCompletion: completions,
		httpLatency:          latency,
	}, nil
}

// Noop returns instruments backed by the no-op provider, handy in tests.
func Noop() *Metrics {
	m, _ := New(noop.NewMeterProvider())

	return m
}

// SessionOperation counts one session store operation.
func (m *Metrics) SessionOperation(ctx context.Context, op string, outcome Outcome) {
	if m == nil {
		return
	}
	m.sessionOps.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", op),
		attribute.String("outcome", string(outcome)),
	))
}

// OnboardingStep counts a transition leaving step in the given direction.
func (m *Metrics) OnboardingStep(ctx context.Context, step int, direction string) {
	if m == nil {
		return
	}
	m.onboardingSteps.Add(ctx, 1, metric.WithAttributes(
		attribute.Int("step", step),
		attribute.String("direction", direction),
	))
}

// OnboardingCompleted counts a finish attempt.
func (m *Metrics) OnboardingCompleted(ctx context.Context, outcome Outcome) {
	if m == nil {
		return
	}
	m.onboardingCompletion.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", string(outcome))))
}

// HTTPRequest records the latency of a served request.
func (m *Metrics) HTTPRequest(ctx context.Context, method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpLatency.Record(ctx, elapsed.Seconds(), metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("route", route),
		attribute.Int("status", status),
	))
}
