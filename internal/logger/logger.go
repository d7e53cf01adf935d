// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logger builds the structured logger used by the CLI and the
// PubMed client.
package logger

import (
	"io"
	"log/slog"
	"strings"
)

// New returns a text logger writing to w. Debug output is enabled only
// when debug is true.
func New(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// ParseLevel maps a level name to a slog.Level, defaulting to Info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewWithLevel is like New but takes an explicit level name, as found in
// the config file's log_level key.
func NewWithLevel(w io.Writer, name string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(name)}))
}
