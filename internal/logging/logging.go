// Package logging builds the process logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// LevelFromEnv returns the level configured via UK_LOG_LEVEL, falling back
// to LOG_LEVEL, then INFO.
func LevelFromEnv() slog.Level {
	level := os.Getenv("UK_LOG_LEVEL")
	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	if level == "" {
		return slog.LevelInfo
	}
	return ParseLevel(level)
}

// ParseLevel parses DEBUG, INFO, WARN, WARNING or ERROR, ignoring case.
// Unknown values yield INFO and a warning on stderr.
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		fmt.Fprintf(os.Stderr, "Warning: unknown log level %q, using INFO\n", level)
		return slog.LevelInfo
	}
}

// New returns a text logger writing to w at the given level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Setup installs a stderr logger as the slog default. verbose forces DEBUG.
func Setup(verbose bool) *slog.Logger {
	level := LevelFromEnv()
	if verbose {
		level = slog.LevelDebug
	}
	logger := New(os.Stderr, level)
	slog.SetDefault(logger)
	return logger
}
