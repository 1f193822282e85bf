package logx_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/wordgraph/internal/logx"
)

func TestLoggerFallsBackToDiscard(t *testing.T) {
	assert.Same(t, logx.Discard(), logx.Logger(context.Background()))
	assert.Same(t, logx.Discard(), logx.Logger(nil))
}

// TestDefaultDoesNotTouchStandardLogger: library calls without a context
// logger never write to the process-wide logrus output.
func TestDefaultDoesNotTouchStandardLogger(t *testing.T) {
	var buf bytes.Buffer
	std := logrus.StandardLogger()
	prevOut, prevLevel := std.Out, std.GetLevel()
	std.SetOutput(&buf)
	std.SetLevel(logrus.TraceLevel)
	t.Cleanup(func() {
		std.SetOutput(prevOut)
		std.SetLevel(prevLevel)
	})

	logx.Logger(context.Background()).WithField("k", "v").Error("dropped")
	assert.Empty(t, buf.String())
}

func TestWithLoggerRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})

	ctx := logx.WithLogger(context.Background(), l.WithField("component", "test"))
	logx.Logger(ctx).Info("hello")

	assert.Contains(t, buf.String(), "component=test")
	assert.Contains(t, buf.String(), "msg=hello")
}
