package app

import (
	"io"
	"log/slog"
)

// newLogger creates an isolated slog.Logger writing to w. Unknown levels
// fall back to info. Debug output carries the source position.
func newLogger(levelStr, formatStr string, w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelStr)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level, AddSource: level <= slog.LevelDebug}
	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
