package app

import (
	"io"
	"log/slog"
)

// newLogger builds an isolated slog.Logger writing to logW. It does not
// touch the global logger. An unrecognized level falls back to info; the
// CLI has already rejected those by the time an App is built.
func newLogger(levelStr, formatStr string, logW io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if levelStr != "" {
		if err := level.UnmarshalText([]byte(levelStr)); err != nil {
			level = slog.LevelInfo
		}
	}

	opts := &slog.HandlerOptions{Level: level}
	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(logW, opts))
	}
	return slog.New(slog.NewTextHandler(logW, opts))
}
