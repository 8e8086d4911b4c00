package telemetry_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/astraweave-go/astraweave/telemetry"
)

func newTestZapLogger(buf *bytes.Buffer) *zap.Logger {
	encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	core := zapcore.NewCore(encoder, zapcore.AddSync(buf), zapcore.DebugLevel)
	return zap.New(core)
}

func TestZapLoggerWritesStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	logger := telemetry.NewZapLogger(newTestZapLogger(&buf))

	logger.Info(context.Background(), "plan accepted", "plan_id", "goap-1", "steps", 3)

	out := buf.String()
	assert.Contains(t, out, "plan accepted")
	assert.Contains(t, out, "goap-1")
}

func TestZapLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := telemetry.NewZapLogger(newTestZapLogger(&buf))

	logger.Debug(context.Background(), "d")
	logger.Warn(context.Background(), "w")
	logger.Error(context.Background(), "e")

	out := buf.String()
	assert.Contains(t, out, `"level":"debug"`)
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, `"level":"error"`)
}
