package logging

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/employee-tracker/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}

	for input, want := range tests {
		if got := ParseLevel(input); got != want {
			t.Errorf("ParseLevel(%q): expected %v, got %v", input, want, got)
		}
	}
}

func TestNew_WritesJSONAtLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "warn")

	logger.Info("hidden")
	logger.Warn("shown", slog.String("action", "Add a role"))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected a single JSON line, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "shown" || entry["action"] != "Add a role" {
		t.Errorf("unexpected entry: %v", entry)
	}
}

func TestNewWriter(t *testing.T) {
	w := NewWriter(config.LogConfig{})
	if _, ok := w.(nopCloser); !ok {
		t.Errorf("expected discarding writer for empty file, got %T", w)
	}
	if err := w.Close(); err != nil {
		t.Errorf("unexpected close error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "tracker.log")
	w = NewWriter(config.LogConfig{File: path, MaxSizeMB: 1, MaxBackups: 2, MaxAgeDays: 3})
	lj, ok := w.(*lumberjack.Logger)
	if !ok {
		t.Fatalf("expected *lumberjack.Logger, got %T", w)
	}
	if lj.Filename != path || lj.MaxSize != 1 || lj.MaxBackups != 2 || lj.MaxAge != 3 {
		t.Errorf("unexpected rotation settings: %+v", lj)
	}
	if _, err := io.WriteString(w, "line\n"); err != nil {
		t.Errorf("unexpected write error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("unexpected close error: %v", err)
	}
}
