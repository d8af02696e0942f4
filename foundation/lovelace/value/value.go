// File: value.go
// Title: Lovelace Runtime Values
// Description: Defines the closed set of runtime value kinds (integer,
//              float, text, boolean) and their textual rendering.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-06
// Modified: 2025-02-06
//
// Change History:
// - 2025-02-06 v0.1.0: Initial value model

package value

import (
	"math"
	"strconv"
	"strings"
)

// Kind identifies the dynamic type of a Value
type Kind int

const (
	KindInteger Kind = iota
	KindFloat
	KindText
	KindBoolean
)

// String returns the kind name used in error messages
func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindText:
		return "text"
	case KindBoolean:
		return "boolean"
	default:
		return "unknown"
	}
}

// Value is a dynamically typed runtime value. The zero Value is the
// integer 0. Values are immutable and comparable with ==.
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string
	b    bool
}

// NewInteger creates an integer value
func NewInteger(i int64) Value {
	return Value{kind: KindInteger, i: i}
}

// NewFloat creates a float value
func NewFloat(f float64) Value {
	return Value{kind: KindFloat, f: f}
}

// NewText creates a text value
func NewText(s string) Value {
	return Value{kind: KindText, s: s}
}

// NewBoolean creates a boolean value
func NewBoolean(b bool) Value {
	return Value{kind: KindBoolean, b: b}
}

// Kind returns the dynamic type of the value
func (v Value) Kind() Kind {
	return v.kind
}

// Int returns the integer payload; ok is false for other kinds
func (v Value) Int() (int64, bool) {
	return v.i, v.kind == KindInteger
}

// Float returns the float payload; ok is false for other kinds
func (v Value) Float() (float64, bool) {
	return v.f, v.kind == KindFloat
}

// Text returns the text payload; ok is false for other kinds
func (v Value) Text() (string, bool) {
	return v.s, v.kind == KindText
}

// Bool returns the boolean payload; ok is false for other kinds
func (v Value) Bool() (bool, bool) {
	return v.b, v.kind == KindBoolean
}

// IsNumeric reports whether the value is an integer or a float
func (v Value) IsNumeric() bool {
	return v.kind == KindInteger || v.kind == KindFloat
}

// number widens a numeric value to float64
func (v Value) number() float64 {
	if v.kind == KindInteger {
		return float64(v.i)
	}
	return v.f
}

// String returns the form written by print statements: integers in
// decimal, floats in shortest round-trip form with at least one fraction
// digit, text verbatim and booleans as True or False.
func (v Value) String() string {
	switch v.kind {
	case KindInteger:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return formatFloat(v.f)
	case KindText:
		return v.s
	case KindBoolean:
		if v.b {
			return "True"
		}
		return "False"
	default:
		return ""
	}
}

// formatFloat switches to exponent notation outside [1e-4, 1e16)
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
