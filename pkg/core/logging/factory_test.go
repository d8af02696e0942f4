package logging

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	mdwlog "github.com/msto63/lovelace/foundation/core/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected mdwlog.Level
	}{
		{"trace", mdwlog.LevelTrace},
		{"debug", mdwlog.LevelDebug},
		{"info", mdwlog.LevelInfo},
		{"warn", mdwlog.LevelWarn},
		{"warning", mdwlog.LevelWarn},
		{"error", mdwlog.LevelError},
		{"fatal", mdwlog.LevelFatal},
		{"", mdwlog.LevelInfo},
		{"unknown", mdwlog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDefaultLoggerConfig(t *testing.T) {
	cfg := DefaultLoggerConfig("lovelace")

	if cfg.Name != "lovelace" {
		t.Errorf("Name = %v, want lovelace", cfg.Name)
	}
	if cfg.Level != "error" {
		t.Errorf("Level = %v, want error", cfg.Level)
	}
	if cfg.Format != "text" {
		t.Errorf("Format = %v, want text", cfg.Format)
	}
}

func TestNewLogger_Text(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewLogger(LoggerConfig{Name: "cli", Level: "debug", Format: "text", Output: buf})

	if logger.GetLevel() != mdwlog.LevelDebug {
		t.Errorf("GetLevel() = %v, want debug", logger.GetLevel())
	}

	logger.Debug("hello", mdwlog.Fields{"k": "v"})
	out := buf.String()
	if !strings.Contains(out, "{cli}") || !strings.Contains(out, "hello") || !strings.Contains(out, "k=v") {
		t.Errorf("output = %q", out)
	}
}

func TestNewLogger_JSON(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewLogger(LoggerConfig{Name: "cli", Level: "info", Format: "json", Output: buf})

	logger.Info("structured")

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if decoded["message"] != "structured" {
		t.Errorf("message = %v", decoded["message"])
	}
}

func TestNewLogger_AdditionalOutputs(t *testing.T) {
	primary := &bytes.Buffer{}
	extra := &bytes.Buffer{}

	logger := NewLogger(LoggerConfig{
		Level:             "warn",
		Output:            primary,
		AdditionalOutputs: []io.Writer{extra},
	})

	logger.Info("dropped")
	logger.Warn("kept")

	for name, buf := range map[string]*bytes.Buffer{"primary": primary, "extra": extra} {
		if strings.Contains(buf.String(), "dropped") {
			t.Errorf("%s output contains filtered entry: %q", name, buf.String())
		}
		if !strings.Contains(buf.String(), "kept") {
			t.Errorf("%s output missing entry: %q", name, buf.String())
		}
	}
}

func TestNewLogger_InvalidValuesFallBack(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewLogger(LoggerConfig{Level: "loud", Format: "xml", Output: buf})

	if logger.GetLevel() != mdwlog.LevelInfo {
		t.Errorf("GetLevel() = %v, want info", logger.GetLevel())
	}

	logger.Info("plain")
	if strings.HasPrefix(strings.TrimSpace(buf.String()), "{") {
		t.Errorf("output = %q, want text format", buf.String())
	}
}

func TestNewSimpleLogger(t *testing.T) {
	logger := NewSimpleLogger("lovelace")
	if logger.GetLevel() != mdwlog.LevelError {
		t.Errorf("GetLevel() = %v, want error", logger.GetLevel())
	}
}
