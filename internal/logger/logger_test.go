package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestLogger_Log(t *testing.T) {
	tests := []struct {
		name    string
		log     func(l *Logger)
		want    bool // should log
		wantLvl string
	}{
		{
			name:    "info message",
			log:     func(l *Logger) { l.Info("test message", Fields{"key": "value"}) },
			want:    true,
			wantLvl: "info",
		},
		{
			name: "debug below threshold",
			log:  func(l *Logger) { l.Debug("debug message", nil) },
			want: false, // won't log (below INFO)
		},
		{
			name:    "warning with err",
			log:     func(l *Logger) { l.Warn("fetch failed", Fields{"venue": "Civic Arena"}, errors.New("timeout")) },
			want:    true,
			wantLvl: "warning",
		},
		{
			name:    "error with err",
			log:     func(l *Logger) { l.Error("error occurred", nil, errors.New("test error")) },
			want:    true,
			wantLvl: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(New(LevelInfo, &buf))

			logged := buf.Len() > 0
			if logged != tt.want {
				t.Fatalf("logged = %v, want %v", logged, tt.want)
			}
			if !logged {
				return
			}

			var entry map[string]interface{}
			if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
				t.Fatalf("log line is not JSON: %v (%s)", err, buf.String())
			}
			if entry["level"] != tt.wantLvl {
				t.Errorf("level = %v, want %v", entry["level"], tt.wantLvl)
			}
		})
	}
}

func TestLogger_EntryFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelInfo, &buf)

	l.Error("writing snapshot", Fields{"path": "public/data/status.json"}, errors.New("disk full"))

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if entry["message"] != "writing snapshot" {
		t.Errorf("message = %v, want %q", entry["message"], "writing snapshot")
	}
	if entry["path"] != "public/data/status.json" {
		t.Errorf("path = %v, want public/data/status.json", entry["path"])
	}
	if entry["error"] != "disk full" {
		t.Errorf("error = %v, want disk full", entry["error"])
	}
	if _, ok := entry["timestamp"]; !ok {
		t.Error("entry has no timestamp")
	}
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelInfo, &buf).With(Fields{"run_id": "abc-123"})

	l.Info("first", nil)
	l.Info("second", Fields{"venue": "Civic Arena"})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	for _, line := range lines {
		var entry map[string]interface{}
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("Unmarshal() error = %v", err)
		}
		if entry["run_id"] != "abc-123" {
			t.Errorf("run_id = %v, want abc-123", entry["run_id"])
		}
	}
}

func TestPackageLevelFunctions(t *testing.T) {
	var buf bytes.Buffer
	previous := defaultLogger
	defer SetDefault(previous)

	SetDefault(New(LevelDebug, &buf))

	Debug("test debug", nil)
	Info("test info", Fields{"key": "value"})
	Warn("test warning", nil, nil)
	Error("test error", Fields{"component": "test"}, errors.New("test"))

	if got := strings.Count(buf.String(), "\n"); got != 4 {
		t.Errorf("wrote %d lines, want 4", got)
	}
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name      string
		minLevel  Level
		log       func(l *Logger)
		shouldLog bool
	}{
		{"debug logs at debug", LevelDebug, func(l *Logger) { l.Debug("test", nil) }, true},
		{"info logs at debug", LevelDebug, func(l *Logger) { l.Info("test", nil) }, true},
		{"debug doesn't log at info", LevelInfo, func(l *Logger) { l.Debug("test", nil) }, false},
		{"warn doesn't log at error", LevelError, func(l *Logger) { l.Warn("test", nil, nil) }, false},
		{"error always logs", LevelDebug, func(l *Logger) { l.Error("test", nil, nil) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(New(tt.minLevel, &buf))

			if logged := buf.Len() > 0; logged != tt.shouldLog {
				t.Errorf("shouldLog = %v, want %v", logged, tt.shouldLog)
			}
		})
	}
}
