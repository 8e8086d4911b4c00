// Package telemetry is the process-wide, thread-safe registry of counters,
// gauges, and histograms the rest of the module reports, plus the structured
// logging/tracing ambient stack every other package uses to report what
// it's doing. The interfaces are deliberately small so production code
// depends only on Logger/Metrics/Tracer/Span, never a concrete backend;
// Noop implementations satisfy them for tests and local runs, and
// zap/prometheus/otel-backed implementations serve real deployments.
// cmd/demo wires only the zap logger, when its config selects it; its
// metrics are Noop and it creates no tracer. EventStream additionally
// fans telemetry events out to websocket observers for external
// dashboards.
package telemetry
