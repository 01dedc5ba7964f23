package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("")
	if err != nil || lvl != zerolog.InfoLevel {
		t.Fatalf("expected info default, got %v %v", lvl, err)
	}
	lvl, err = ParseLevel(" Debug ")
	if err != nil || lvl != zerolog.DebugLevel {
		t.Fatalf("expected debug, got %v %v", lvl, err)
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestConsoleRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := Console(&buf, zerolog.WarnLevel)
	log.Info().Msg("hidden")
	log.Warn().Str("path", "x").Msg("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info should be filtered: %s", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "path=x") {
		t.Fatalf("expected warn line, got %s", out)
	}
}

func TestOpenFileAppendsJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "wordrush.log")
	l, err := OpenFile(path, zerolog.InfoLevel)
	if err != nil {
		t.Fatalf("OpenFile failed: %v", err)
	}
	l.Info().Int("score", 3).Msg("session finished")
	if err := l.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(data), `"score":3`) || !strings.Contains(string(data), `"message":"session finished"`) {
		t.Fatalf("unexpected log content: %s", data)
	}
}
