package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Logger captures structured logging used throughout the core. Small and
// interface-only so call sites never depend on a concrete backend.
type Logger interface {
	Debug(ctx context.Context, msg string, keyvals ...any)
	Info(ctx context.Context, msg string, keyvals ...any)
	Warn(ctx context.Context, msg string, keyvals ...any)
	Error(ctx context.Context, msg string, keyvals ...any)
}

// Metrics exposes counter, timer, and gauge helpers. The hot path (ticking
// a scheduler stage, validating a tool call) should only ever call these
// three methods, never reach for a concrete client directly.
type Metrics interface {
	IncCounter(name string, value float64, tags ...string)
	RecordTimer(name string, duration time.Duration, tags ...string)
	RecordGauge(name string, value float64, tags ...string)
}

// Tracer abstracts span creation so core code stays agnostic of the
// underlying OpenTelemetry provider.
type Tracer interface {
	Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, Span)
	Span(ctx context.Context) Span
}

// Span represents an in-flight tracing span.
type Span interface {
	End(opts ...trace.SpanEndOption)
	AddEvent(name string, attrs ...any)
	SetStatus(code codes.Code, description string)
	RecordError(err error, opts ...trace.EventOption)
}

// PlanExecutionRecord summarises one planexec.Executor run for observers.
// planexec does not build it; cmd/demo publishes one per Execute call,
// including runs that stopped partway through a plan.
type PlanExecutionRecord struct {
	PlanID        string
	StepsTotal    int
	StepsExecuted int
	Outcome       string // cmd/demo sets "completed", "blocked", or "partial"
	ElapsedMs     int64
}

// ShadowComparison records that both a GOAP and an LLM plan existed for
// the same tick, for offline analysis of how often they agree. It has no
// effect on which plan the arbiter actually executes.
type ShadowComparison struct {
	Tick        uint64
	GoapPlanID  string
	LlmPlanID   string
	StepsEqual  bool
	FirstVerbEq bool
}
