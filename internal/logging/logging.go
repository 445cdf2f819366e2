// Package logging builds the charmbracelet logger used across dayboard.
// The TUI owns the terminal, so logs normally go to a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// Stderr is the log path that selects standard error.
const Stderr = "-"

// ParseLevel maps a config string to a level; unknown values are info.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// New returns a logger writing to w.
func New(w io.Writer, level string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           ParseLevel(level),
		ReportTimestamp: true,
		Prefix:          "dayboard",
	})
}

// Open returns a logger appending to path, creating parent directories.
// The returned closer releases the file.
func Open(path, level string) (*log.Logger, io.Closer, error) {
	if path == "" || path == Stderr {
		return New(os.Stderr, level), io.NopCloser(nil), nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := New(f, level)
	logger.SetFormatter(log.LogfmtFormatter)
	return logger, f, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
