// File: logger_test.go
// Title: Logger Tests
// Description: Tests for levels, formats, context fields, run ids, error
//              logging and the phase timer.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-03
// Modified: 2025-02-03
//
// Change History:
// - 2025-02-03 v0.1.0: Initial test coverage

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	mdwerror "github.com/msto63/lovelace/foundation/core/error"
)

func newBufferLogger(level Level, format Format) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return NewWithConfig(Config{Level: level, Format: format, Output: buf, Name: "test"}), buf
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"DEBUG", LevelDebug, false},
		{" info ", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"err", LevelError, false},
		{"fatal", LevelFatal, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("JSON"); err != nil || f != FormatJSON {
		t.Errorf("ParseFormat(JSON) = %v, %v", f, err)
	}
	if f, err := ParseFormat("text"); err != nil || f != FormatText {
		t.Errorf("ParseFormat(text) = %v, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn, FormatText)

	logger.Debug("hidden")
	logger.Info("hidden too")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("output contains filtered entries: %q", out)
	}
	if !strings.Contains(out, "[WRN]") || !strings.Contains(out, "shown") {
		t.Errorf("output missing warn entry: %q", out)
	}
}

func TestLogger_TextFieldsSorted(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatText)

	logger.WithField("component", "lovelace-parser").
		WithRunID("run-42").
		Debug("Parsing statement", Fields{"token": "WHILE", "line": 3})

	out := buf.String()
	for _, want := range []string{"{test}", "(run=run-42)", "Parsing statement", "[component=lovelace-parser line=3 token=WHILE]"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %q", want, out)
		}
	}
}

func TestLogger_JSON(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatJSON)

	logger.WithRunID("abc").Info("Run completed", Fields{"statements": 4})

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if decoded["message"] != "Run completed" {
		t.Errorf("message = %v", decoded["message"])
	}
	if decoded["run_id"] != "abc" {
		t.Errorf("run_id = %v", decoded["run_id"])
	}
	if decoded["statements"] != float64(4) {
		t.Errorf("statements = %v", decoded["statements"])
	}
}

func TestLogger_WithIsImmutable(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatText)
	_ = logger.WithField("extra", "yes")

	logger.Info("plain")
	if strings.Contains(buf.String(), "extra") {
		t.Errorf("WithField modified the receiver: %q", buf.String())
	}
}

func TestLogger_LogError(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatText)

	err := mdwerror.New("undefined variable: y").
		WithCode(mdwerror.CodeUndefinedVariable).
		WithDetail("name", "y")
	logger.LogError(err)

	out := buf.String()
	for _, want := range []string{"[WRN]", "error_code=UNDEFINED_VARIABLE", "error_name=y"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %q", want, out)
		}
	}

	buf.Reset()
	logger.LogError(errors.New("disk full"))
	if !strings.Contains(buf.String(), "[ERR]") {
		t.Errorf("plain error should log at error level: %q", buf.String())
	}

	buf.Reset()
	logger.LogError(nil)
	if buf.Len() != 0 {
		t.Errorf("LogError(nil) wrote %q", buf.String())
	}
}

func TestLogger_WithLevelOutputName(t *testing.T) {
	logger, original := newBufferLogger(LevelError, FormatText)

	redirected := &bytes.Buffer{}
	derived := logger.WithLevel(LevelDebug).WithOutput(redirected).WithName("cli")

	derived.Debug("visible")
	logger.Debug("hidden")

	if original.Len() != 0 {
		t.Errorf("receiver output changed: %q", original.String())
	}
	if !strings.Contains(redirected.String(), "{cli}") || !strings.Contains(redirected.String(), "visible") {
		t.Errorf("derived output = %q", redirected.String())
	}
	if logger.GetLevel() != LevelError || derived.GetLevel() != LevelDebug {
		t.Errorf("levels = %v, %v, want error, debug", logger.GetLevel(), derived.GetLevel())
	}
}

func TestLogger_WithErr(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn, FormatText)

	logger.WarnWithErr("script failed", errors.New("division by zero"), Field("run_id", "r1"))
	logger.ErrorWithErr("encode failed", errors.New("bad map"))

	out := buf.String()
	for _, want := range []string{
		"[WRN]", "script failed", "run_id=r1", `error="division by zero"`,
		"[ERR]", "encode failed", `error="bad map"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %q", want, out)
		}
	}
}

func TestFieldHelpers(t *testing.T) {
	failure := errors.New("eof")
	fields := Err(failure).Merge(Field("line", 3))

	if fields["error"] != failure || fields["line"] != 3 {
		t.Errorf("fields = %v", fields)
	}
	if keys := fields.Keys(); len(keys) != 2 || keys[0] != "error" || keys[1] != "line" {
		t.Errorf("Keys() = %v", keys)
	}
}

func TestSetDefault(t *testing.T) {
	previous := GetDefault()
	defer SetDefault(previous)

	logger, buf := newBufferLogger(LevelInfo, FormatText)
	SetDefault(logger)

	GetDefault().Info("through default")
	if !strings.Contains(buf.String(), "through default") {
		t.Errorf("default logger output = %q", buf.String())
	}
}

func TestTimer(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatText)

	timer := logger.StartTimer("lex").WithField("bytes", 12)
	if d := timer.Stop(); d < 0 {
		t.Errorf("Stop() = %v, want >= 0", d)
	}
	if d := timer.Stop(); d != 0 {
		t.Errorf("second Stop() = %v, want 0", d)
	}

	out := buf.String()
	if !strings.Contains(out, "lex completed") || !strings.Contains(out, "bytes=12") {
		t.Errorf("timer output = %q", out)
	}

	buf.Reset()
	logger.StartTimer("parse").StopWithError(errors.New("bad"))
	if !strings.Contains(buf.String(), "parse failed") || !strings.Contains(buf.String(), "success=false") {
		t.Errorf("timer failure output = %q", buf.String())
	}
}

func TestNewDiscard(t *testing.T) {
	logger := NewDiscard()
	if logger.IsLevelEnabled(LevelFatal) {
		t.Error("discard logger should not enable any level")
	}
	logger.Error("nothing happens")
}
