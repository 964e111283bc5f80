package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFromEnv(t *testing.T) {
	tests := []struct {
		env  string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"garbage", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run("level "+tt.env, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", tt.env)
			assert.Equal(t, tt.want, levelFromEnv())
		})
	}
}

type failingHandler struct{}

func (failingHandler) Enabled(context.Context, slog.Level) bool  { return true }
func (failingHandler) Handle(context.Context, slog.Record) error { return errors.New("sink down") }
func (h failingHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h failingHandler) WithGroup(string) slog.Handler           { return h }

func TestMultiHandlerRespectsChildLevels(t *testing.T) {
	var info, errOnly bytes.Buffer
	m := NewMultiHandler(
		slog.NewJSONHandler(&info, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewJSONHandler(&errOnly, &slog.HandlerOptions{Level: slog.LevelError}),
	)

	assert.True(t, m.Enabled(context.Background(), slog.LevelInfo),
		"enabled when any child accepts the level")

	logger := slog.New(m)
	logger.Info("routine")
	logger.Error("broken")

	assert.Contains(t, info.String(), "routine")
	assert.NotContains(t, errOnly.String(), "routine")
	assert.Contains(t, errOnly.String(), "broken")
}

func TestMultiHandlerDeliversPastFailingChild(t *testing.T) {
	var buf bytes.Buffer
	m := NewMultiHandler(
		failingHandler{},
		slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}),
	)

	rec := slog.NewRecord(time.Now(), slog.LevelError, "still delivered", 0)
	err := m.Handle(context.Background(), rec)

	require.Error(t, err)
	assert.Contains(t, buf.String(), "still delivered",
		"a failing sink must not block the others")
}
