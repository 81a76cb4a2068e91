// Package util provides shared logging helpers.
package util

import (
	"log/slog"
	"os"
	"strings"
)

// ParseLevel maps a level string to a slog.Level. Supported levels:
// "debug", "info", "warn", "error". Defaults to "info" if the level
// string is not recognised.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger creates a structured logger writing JSON to stdout at the
// specified level. Intended for batch commands that own their stdout.
func NewLogger(level string) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: ParseLevel(level),
	})
	return slog.New(handler)
}

// NewFileLogger creates a text logger appending to the file at path. The
// terminal UI owns stdout, so its diagnostics go to a log file instead.
// The caller is responsible for closing the returned file.
func NewFileLogger(path, level string) (*slog.Logger, *os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, err
	}
	handler := slog.NewTextHandler(f, &slog.HandlerOptions{
		Level: ParseLevel(level),
	})
	return slog.New(handler), f, nil
}
