// Package logging provides file-based logging for taskdeck.
// Logs go to <dataDir>/logs/taskdeck.log so the terminal stays free for
// the dashboard.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Logger is a slog.Logger bound to its backing log file.
type Logger struct {
	*slog.Logger
	file *os.File
}

// New creates a Logger writing to the logs directory under dataDir.
// If dataDir is empty, or the log file cannot be opened, logging is
// disabled and a discard logger is returned.
func New(dataDir string, level slog.Level) *Logger {
	if dataDir == "" {
		return discard()
	}

	logsDir := filepath.Join(dataDir, "logs")
	if err := os.MkdirAll(logsDir, 0o750); err != nil {
		return discard()
	}

	path := filepath.Join(logsDir, "taskdeck.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640) //nolint:gosec // log file readable by owner and group
	if err != nil {
		return discard()
	}

	handler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})
	return &Logger{Logger: slog.New(handler), file: f}
}

func discard() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// Close closes the backing log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	if err != nil {
		return fmt.Errorf("close log file: %w", err)
	}
	return nil
}

// ParseLevel parses a log level string into slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch levelStr {
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
