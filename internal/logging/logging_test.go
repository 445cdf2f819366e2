package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
	}{
		{"debug", log.DebugLevel},
		{"INFO", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"warning", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"", log.InfoLevel},
		{"verbose", log.InfoLevel},
	}
	for _, tc := range tests {
		if got := ParseLevel(tc.in); got != tc.want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "warn")
	logger.Info("hidden")
	logger.Warn("shown", "key", "kanban")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line should be filtered: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "kanban") {
		t.Fatalf("expected warn line with field: %q", out)
	}
}

func TestOpenWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dayboard.log")
	logger, closer, err := Open(path, "debug")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	logger.Debug("saved tasks", "count", 3)
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(raw), "count=3") {
		t.Fatalf("expected logfmt fields in file: %q", raw)
	}
}
