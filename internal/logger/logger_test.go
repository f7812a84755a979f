package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLogLevelFiltering(t *testing.T) {
	tests := []struct {
		name      string
		level     LogLevel
		logAt     LogLevel
		wantWrite bool
	}{
		{"debug suppressed at info", INFO, DEBUG, false},
		{"info passes at info", INFO, INFO, true},
		{"warn passes at info", INFO, WARN, true},
		{"info suppressed at error", ERROR, INFO, false},
		{"error passes at error", ERROR, ERROR, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := New(Config{Level: tt.level, Format: TextFormat, Output: &buf})

			switch tt.logAt {
			case DEBUG:
				l.Debug("msg")
			case INFO:
				l.Info("msg")
			case WARN:
				l.Warn("msg")
			case ERROR:
				l.Error("msg", nil)
			}

			if got := buf.Len() > 0; got != tt.wantWrite {
				t.Errorf("wrote=%v, want %v (output: %q)", got, tt.wantWrite, buf.String())
			}
		})
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: DEBUG, Format: JSONFormat, Output: &buf, Component: "test"})

	l.Info("hello", map[string]interface{}{"rows": 42})

	var entry LogEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if entry.Level != "INFO" {
		t.Errorf("expected level INFO, got %s", entry.Level)
	}
	if entry.Message != "hello" {
		t.Errorf("expected message 'hello', got %s", entry.Message)
	}
	if entry.Component != "test" {
		t.Errorf("expected component 'test', got %s", entry.Component)
	}
	if entry.Fields["rows"] != float64(42) {
		t.Errorf("expected field rows=42, got %v", entry.Fields["rows"])
	}
}

func TestTextFormatIncludesComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: DEBUG, Format: TextFormat, Output: &buf}).WithComponent("dataset")

	l.Warn("slow load", map[string]interface{}{"path": "x.csv"})

	out := buf.String()
	if !strings.Contains(out, "[dataset]") {
		t.Errorf("expected component in output, got %q", out)
	}
	if !strings.Contains(out, "path=x.csv") {
		t.Errorf("expected fields in output, got %q", out)
	}
	if !strings.Contains(out, "WARN") {
		t.Errorf("expected level in output, got %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  LogLevel
	}{
		{"debug", DEBUG},
		{"INFO", INFO},
		{"warning", WARN},
		{"Error", ERROR},
		{"fatal", FATAL},
		{"bogus", -1},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if got := ParseFormat("json"); got != JSONFormat {
		t.Errorf("ParseFormat(json) = %v", got)
	}
	if got := ParseFormat("text"); got != TextFormat {
		t.Errorf("ParseFormat(text) = %v", got)
	}
	if got := ParseFormat("yaml"); got != -1 {
		t.Errorf("ParseFormat(yaml) = %v, want -1", got)
	}
}
