package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

type recordingNotifier struct {
	levels   []string
	messages []string
	fields   []map[string]interface{}
}

func (n *recordingNotifier) SendLogMessage(level, message string, fields map[string]interface{}) error {
	n.levels = append(n.levels, level)
	n.messages = append(n.messages, message)
	n.fields = append(n.fields, fields)
	return nil
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var lines []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]interface{}
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("decoding log line %q: %v", line, err)
		}
		lines = append(lines, m)
	}
	return lines
}

func TestKeyValueFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf)

	log.Info("Dataset loaded", "city", "chicago", "records", 3)
	log.Error("Load failed", "error", errors.New("boom"))

	lines := decodeLines(t, &buf)
	if len(lines) != 2 {
		t.Fatalf("Expected 2 log lines, got %d", len(lines))
	}
	if lines[0]["city"] != "chicago" || lines[0]["records"] != float64(3) {
		t.Errorf("Unexpected fields: %v", lines[0])
	}
	if lines[1]["error"] != "boom" {
		t.Errorf("Expected error field boom, got %v", lines[1]["error"])
	}
}

func TestWithAddsContext(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf).With("run_id", "abc")

	log.Info("Run started", "city", "washington")

	lines := decodeLines(t, &buf)
	if len(lines) != 1 {
		t.Fatalf("Expected 1 log line, got %d", len(lines))
	}
	if lines[0]["run_id"] != "abc" || lines[0]["city"] != "washington" {
		t.Errorf("Unexpected fields: %v", lines[0])
	}
}

func TestNilWriterDiscards(t *testing.T) {
	log := New(nil)
	if log == nil {
		t.Fatal("Logger should be created successfully")
	}
	log.Info("nothing to see")
}

func TestNotifierReceivesErrorsOnly(t *testing.T) {
	n := &recordingNotifier{}
	cfg := DefaultLoggerConfig()
	cfg.File = false
	cfg.Level = zerolog.DebugLevel
	cfg.Notifier = n
	log := NewFromConfig(cfg)

	log.Info("fine")
	log.Warn("careful")
	log.Error("broken", "city", "chicago")

	if len(n.levels) != 1 {
		t.Fatalf("Expected 1 notification, got %d", len(n.levels))
	}
	if n.levels[0] != "ERROR" || n.messages[0] != "broken" {
		t.Errorf("Unexpected notification %s %s", n.levels[0], n.messages[0])
	}
	if n.fields[0]["city"] != "chicago" {
		t.Errorf("Expected city field in notification, got %v", n.fields[0])
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"WARN":    zerolog.WarnLevel,
		" error ": zerolog.ErrorLevel,
		"bogus":   zerolog.InfoLevel,
		"":        zerolog.InfoLevel,
	}
	for in, want := range tests {
		if got := ParseLogLevel(in); got != want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
