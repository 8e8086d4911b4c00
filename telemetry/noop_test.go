package telemetry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"

	"github.com/astraweave-go/astraweave/telemetry"
)

func TestNoopLogger(_ *testing.T) {
	ctx := context.Background()
	logger := telemetry.NewNoopLogger()

	logger.Debug(ctx, "debug", "k", "v")
	logger.Info(ctx, "info", "k", "v")
	logger.Warn(ctx, "warn", "k", "v")
	logger.Error(ctx, "error", "k", "v")
}

func TestNoopMetrics(_ *testing.T) {
	m := telemetry.NewNoopMetrics()
	m.IncCounter("c", 1.0, "env", "test")
	m.RecordTimer("t", 100*time.Millisecond, "env", "test")
	m.RecordGauge("g", 42.0, "env", "test")
}

func TestNoopTracer(t *testing.T) {
	ctx := context.Background()
	tr := telemetry.NewNoopTracer()

	newCtx, span := tr.Start(ctx, "op")
	require.Equal(t, ctx, newCtx)
	require.NotNil(t, span)

	span.AddEvent("ev", "k", "v")
	span.SetStatus(codes.Ok, "done")
	span.RecordError(errors.New("boom"))
	span.End()

	require.NotNil(t, tr.Span(ctx))
}
