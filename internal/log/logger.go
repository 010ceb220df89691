package log

import (
	"io"
	"log/slog"
)

// NewLogger creates a text-format slog.Logger writing to w.
// Verbose mode lowers the level from Warn to Debug; per-seed interaction
// detail (field commits, panel polls, fallback attempts) is only visible
// when verbose.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, handlerOptions(verbose)))
}

// NewJSONLogger creates a JSON-format slog.Logger writing to w.
// Useful when sweep logs are shipped to structured log aggregation.
func NewJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, handlerOptions(verbose)))
}

func handlerOptions(verbose bool) *slog.HandlerOptions {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return &slog.HandlerOptions{Level: level}
}
