package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNopLogger(t *testing.T) {
	var nilLogger *Logger
	for _, l := range []*Logger{nilLogger, NewNopLogger(), New(nil)} {
		require.NotPanics(t, func() {
			l.Debug("x")
			l.Info("x")
			l.Warn("x")
			l.Error("x")
			l.With("k", "v").WithPath("/a").Info("x")
			LogOperation(l, OpEnsureDir, "/a", time.Now(), nil)
		})
	}
}

func TestTextLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewTextLogger(&buf, slog.LevelDebug).WithPath("/data")

	l.Info("hello", "k", "v")

	out := buf.String()
	assert.Contains(t, out, "msg=hello")
	assert.Contains(t, out, "path=/data")
	assert.Contains(t, out, "k=v")
}

func TestLogOperation(t *testing.T) {
	t.Run("success logs at debug", func(t *testing.T) {
		var buf bytes.Buffer
		LogOperation(NewTextLogger(&buf, slog.LevelDebug), OpCreateTemp, "/tmp/x", time.Now(), nil)

		out := buf.String()
		assert.Contains(t, out, "level=DEBUG")
		assert.Contains(t, out, "operation=create_temp")
		assert.Contains(t, out, "success=true")
	})

	t.Run("failure logs at warn", func(t *testing.T) {
		var buf bytes.Buffer
		LogOperation(NewTextLogger(&buf, slog.LevelInfo), OpCleanupTemp, "/tmp/x", time.Now(), errors.New("busy"))

		out := buf.String()
		assert.Contains(t, out, "level=WARN")
		assert.Contains(t, out, "success=false")
		assert.Contains(t, out, "error=busy")
	})

	t.Run("success hidden above debug", func(t *testing.T) {
		var buf bytes.Buffer
		LogOperation(NewTextLogger(&buf, slog.LevelInfo), OpRegister, "/a", time.Now(), nil)
		assert.Empty(t, buf.String())
	})
}
