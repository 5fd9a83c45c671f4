package logging

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelWarn,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New("warn", &buf)
	log.Info("hidden")
	log.Warn("shown", "op", "all ideas")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info record should be filtered at warn")
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "op=\"all ideas\"") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "datenight.log")
	log, closeFn, err := Open("info", path, io.Discard)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	log.Info("hello")
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(b), "msg=hello") {
		t.Errorf("log file = %q", b)
	}
}

func TestOpenWithoutPathUsesFallback(t *testing.T) {
	var buf bytes.Buffer
	log, closeFn, err := Open("error", "", &buf)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer closeFn()
	log.Error("boom")
	if !strings.Contains(buf.String(), "boom") {
		t.Errorf("fallback output = %q", buf.String())
	}
}
