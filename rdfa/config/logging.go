package config

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	slogmulti "github.com/samber/slog-multi"
)

// SetupLogger returns a logger writing text to stderr and, when logFile is
// set, JSON records to that file. The returned func closes the file.
// An unusable log file degrades to stderr only.
func SetupLogger(logFile string, level slog.Level) (*slog.Logger, func() error) {
	noop := func() error { return nil }
	if logFile == "" {
		return NewLogger(os.Stderr, nil, level), noop
	}

	file, err := openLogFile(logFile)
	if err != nil {
		logger := NewLogger(os.Stderr, nil, level)
		logger.Warn("log file unavailable, using stderr only", "file", logFile, "error", err)
		return logger, noop
	}
	return NewLogger(os.Stderr, file, level), file.Close
}

// NewLogger builds the console/file pair used by SetupLogger on arbitrary
// writers. A nil file yields a console-only logger.
func NewLogger(console, file io.Writer, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	consoleHandler := slog.NewTextHandler(console, opts)
	if file == nil {
		return slog.New(consoleHandler)
	}
	return slog.New(slogmulti.Fanout(consoleHandler, slog.NewJSONHandler(file, opts)))
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
