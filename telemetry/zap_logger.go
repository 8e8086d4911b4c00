package telemetry

import (
	"context"

	"go.uber.org/zap"
)

// ZapLogger backs Logger with a *zap.SugaredLogger.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogger wraps an existing zap logger. Pass zap.NewProduction() or
// zap.NewDevelopment() depending on deployment.
func NewZapLogger(l *zap.Logger) *ZapLogger {
	return &ZapLogger{sugar: l.Sugar()}
}

func (z *ZapLogger) Debug(_ context.Context, msg string, keyvals ...any) { z.sugar.Debugw(msg, keyvals...) }
func (z *ZapLogger) Info(_ context.Context, msg string, keyvals ...any)  { z.sugar.Infow(msg, keyvals...) }
func (z *ZapLogger) Warn(_ context.Context, msg string, keyvals ...any)  { z.sugar.Warnw(msg, keyvals...) }
func (z *ZapLogger) Error(_ context.Context, msg string, keyvals ...any) { z.sugar.Errorw(msg, keyvals...) }
