package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Setup installs the global JSON logger writing to stdout. The level comes
// from LOG_LEVEL (debug|info|warn|error), defaulting to info. Called before
// config loading so startup failures are already structured; main later
// replaces the default with a MultiHandler that adds the Postgres sink.
func Setup() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: levelFromEnv(),
	})
	slog.SetDefault(slog.New(handler))
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
