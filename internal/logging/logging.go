package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Handler builds the slog handler for the given level and output format.
func Handler(level string, json bool) slog.Handler {
	var logLevel = new(slog.LevelVar)

	switch strings.ToLower(level) {
	case "trace", "debug":
		logLevel.Set(slog.LevelDebug)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
	}

	opts := &slog.HandlerOptions{Level: logLevel}

	if json {
		return slog.NewJSONHandler(os.Stderr, opts)
	}
	return slog.NewTextHandler(os.Stderr, opts)
}

// Setup installs the process-wide default logger.
func Setup(level string, json bool) {
	slog.SetDefault(slog.New(Handler(level, json)))
}
