package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConditionalSourceHandler_Levels(t *testing.T) {
	tests := []struct {
		name       string
		log        func(l *slog.Logger)
		withSource bool
	}{
		{"info omits source", func(l *slog.Logger) { l.Info("call enqueued") }, false},
		{"warn carries source", func(l *slog.Logger) { l.Warn("call not assignable") }, true},
		{"error carries source", func(l *slog.Logger) { l.Error("visa gateway failed") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := NewConditionalSourceHandler(slog.NewTextHandler(&buf, nil), slog.LevelWarn, slog.LevelError)
			tt.log(slog.New(h))
			assert.Equal(t, tt.withSource, bytes.Contains(buf.Bytes(), []byte("source=")), buf.String())
		})
	}
}

func TestConditionalSourceHandler_KeepsAttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	h := NewConditionalSourceHandler(slog.NewTextHandler(&buf, nil), slog.LevelError)

	slog.New(h).With("call_id", 7).WithGroup("req").Info("assigned", "agent_id", 3)

	out := buf.String()
	assert.Contains(t, out, "call_id=7")
	assert.Contains(t, out, "req.agent_id=3")
	assert.NotContains(t, out, "source=")
}

func TestConditionalSourceHandler_RespectsBaseLevel(t *testing.T) {
	h := NewConditionalSourceHandler(slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelInfo}))

	assert.True(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
}

func TestNopLogger(t *testing.T) {
	l := NewNopLogger().Named("test").With("k", "v")
	assert.NotPanics(t, func() { l.Infow("discarded", "x", 1) })
}
