// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, kinds and severity.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-03
// Modified: 2025-02-03
//
// Change History:
// - 2025-02-03 v0.1.0: Initial test coverage

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}

	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}

	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}

	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "nothing") != nil {
		t.Error("Wrap(nil) should return nil")
	}

	inner := New("undefined variable: x").
		WithCode(CodeUndefinedVariable).
		WithDetail("name", "x").
		WithRunID("run-1")

	wrapped := Wrap(inner, "run failed")

	if wrapped.Error() != "run failed: undefined variable: x" {
		t.Errorf("Error() = %q", wrapped.Error())
	}
	if wrapped.Code() != CodeUndefinedVariable {
		t.Errorf("Code() = %v, want %v", wrapped.Code(), CodeUndefinedVariable)
	}
	if v, ok := wrapped.Detail("name"); !ok || v != "x" {
		t.Errorf("Detail(name) = %v, %v", v, ok)
	}
	if wrapped.RunID() != "run-1" {
		t.Errorf("RunID() = %q, want run-1", wrapped.RunID())
	}
	if !errors.Is(wrapped, inner) {
		t.Error("errors.Is should find the wrapped error")
	}

	plain := Wrap(fmt.Errorf("boom"), "context")
	if plain.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", plain.Code(), CodeUnknown)
	}
}

func TestWithCode_SetsSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeLexical, SeverityLow},
		{CodeSyntax, SeverityLow},
		{CodeRuntime, SeverityMedium},
		{CodeDivisionByZero, SeverityMedium},
		{CodeInputError, SeverityHigh},
		{CodeConfigError, SeverityHigh},
		{CodeInternal, SeverityCritical},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if err.Severity() != tt.want {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.want)
			}
		})
	}

	explicit := New("x").WithSeverity(SeverityCritical).WithCode(CodeSyntax)
	if explicit.Severity() != SeverityCritical {
		t.Errorf("explicit severity overwritten: %v", explicit.Severity())
	}
}

func TestCode_Kind(t *testing.T) {
	tests := []struct {
		code     Code
		kind     Kind
		category string
	}{
		{CodeLexical, KindLexical, "lexer"},
		{CodeSyntax, KindSyntax, "parser"},
		{CodeRuntime, KindRuntime, "interpreter"},
		{CodeUndefinedVariable, KindRuntime, "interpreter"},
		{CodeTypeMismatch, KindRuntime, "interpreter"},
		{CodeDivisionByZero, KindRuntime, "interpreter"},
		{CodeInputError, KindRuntime, "interpreter"},
		{CodeConfigError, KindOther, "configuration"},
		{CodeUnknown, KindOther, "generic"},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.Kind(); got != tt.kind {
				t.Errorf("Kind() = %v, want %v", got, tt.kind)
			}
			if got := tt.code.Category(); got != tt.category {
				t.Errorf("Category() = %v, want %v", got, tt.category)
			}
			if !tt.code.IsValid() {
				t.Errorf("IsValid() = false for %s", tt.code)
			}
		})
	}

	if Code("NOPE").IsValid() {
		t.Error("IsValid() should be false for unknown code")
	}
}

func TestHasCode(t *testing.T) {
	base := New("division by zero").WithCode(CodeDivisionByZero)
	chain := fmt.Errorf("statement 3: %w", Wrap(base, "print").WithCode(CodeRuntime))

	if !HasCode(chain, CodeRuntime) {
		t.Error("HasCode(CodeRuntime) = false, want true")
	}
	if !HasCode(chain, CodeDivisionByZero) {
		t.Error("HasCode(CodeDivisionByZero) = false, want true")
	}
	if HasCode(chain, CodeSyntax) {
		t.Error("HasCode(CodeSyntax) = true, want false")
	}
	if HasCode(nil, CodeRuntime) {
		t.Error("HasCode(nil) = true, want false")
	}
	if HasCode(errors.New("plain"), CodeUnknown) {
		t.Error("HasCode(plain error) = true, want false")
	}
}

func TestKindOf(t *testing.T) {
	if got := KindOf(New("x").WithCode(CodeSyntax)); got != KindSyntax {
		t.Errorf("KindOf() = %v, want %v", got, KindSyntax)
	}
	if got := KindOf(errors.New("plain")); got != KindOther {
		t.Errorf("KindOf() = %v, want %v", got, KindOther)
	}
	if KindLexical.String() != "lexical error" {
		t.Errorf("KindLexical.String() = %q", KindLexical.String())
	}
}

func TestError_String(t *testing.T) {
	err := New("unexpected character").
		WithCode(CodeLexical).
		WithOperation("lexer.Tokenize").
		WithDetail("line", 2).
		WithDetail("column", 7)

	s := err.String()
	for _, want := range []string{"Code: LEXICAL_ERROR", "Operation: lexer.Tokenize", "column=7, line=2"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in %q", want, s)
		}
	}
}

func TestError_MarshalJSON(t *testing.T) {
	err := New("bad").WithCode(CodeTypeMismatch).WithRunID("abc")

	data, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("MarshalJSON() error = %v", jerr)
	}

	var decoded map[string]interface{}
	if jerr := json.Unmarshal(data, &decoded); jerr != nil {
		t.Fatalf("Unmarshal() error = %v", jerr)
	}
	if decoded["code"] != "TYPE_MISMATCH" {
		t.Errorf("code = %v, want TYPE_MISMATCH", decoded["code"])
	}
	if decoded["run_id"] != "abc" {
		t.Errorf("run_id = %v, want abc", decoded["run_id"])
	}
}
