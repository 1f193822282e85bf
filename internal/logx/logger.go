// Package logx carries a logrus logger through a context.Context so that the
// builder and the analysis engines log with whatever fields the caller attached.
//
// Library calls made without a logger in their context log nowhere; the
// command-line tool installs its configured logger with WithLogger.
package logx

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
)

type loggerContextKey string

const loggerContextKeyVal = loggerContextKey("logrus.FieldLogger")

var discard = newDiscard()

func newDiscard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}

// Logger returns the logger stored in ctx, or Discard().
func Logger(ctx context.Context) logrus.FieldLogger {
	if ctx != nil {
		if logger, ok := ctx.Value(loggerContextKeyVal).(logrus.FieldLogger); ok {
			return logger
		}
	}
	return discard
}

// WithLogger adds a value to the context for the logger
func WithLogger(ctx context.Context, logger logrus.FieldLogger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerContextKeyVal, logger)
}

// Discard returns the shared logger that drops everything.
func Discard() logrus.FieldLogger {
	return discard
}
