// File: ops.go
// Title: Lovelace Value Operators
// Description: Implements the binary operators on runtime values with an
//              explicit rule per operand-kind combination. Combinations
//              without a rule fail with TYPE_MISMATCH.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-06
// Modified: 2025-02-06
//
// Change History:
// - 2025-02-06 v0.1.0: Initial operator set

package value

import (
	"cmp"
	"math"
	"strings"

	mdwerror "github.com/msto63/lovelace/foundation/core/error"
)

// MaxTextBytes bounds the length of text built by repetition
const MaxTextBytes = 64 << 20

// Add implements +: integer sum, float sum when either side is a float,
// text concatenation for two texts
func Add(a, b Value) (Value, error) {
	switch {
	case a.kind == KindInteger && b.kind == KindInteger:
		sum := a.i + b.i
		if (a.i > 0 && b.i > 0 && sum < 0) || (a.i < 0 && b.i < 0 && sum >= 0) {
			return Value{}, overflowError("+", a, b)
		}
		return NewInteger(sum), nil
	case a.IsNumeric() && b.IsNumeric():
		return NewFloat(a.number() + b.number()), nil
	case a.kind == KindText && b.kind == KindText:
		return NewText(a.s + b.s), nil
	default:
		return Value{}, mismatchError("+", a, b)
	}
}

// Sub implements - on numbers
func Sub(a, b Value) (Value, error) {
	switch {
	case a.kind == KindInteger && b.kind == KindInteger:
		diff := a.i - b.i
		if (b.i < 0 && diff < a.i) || (b.i > 0 && diff > a.i) {
			return Value{}, overflowError("-", a, b)
		}
		return NewInteger(diff), nil
	case a.IsNumeric() && b.IsNumeric():
		return NewFloat(a.number() - b.number()), nil
	default:
		return Value{}, mismatchError("-", a, b)
	}
}

// Mul implements * on numbers; text times integer repeats the text
func Mul(a, b Value) (Value, error) {
	switch {
	case a.kind == KindInteger && b.kind == KindInteger:
		if a.i != 0 && b.i != 0 {
			product := a.i * b.i
			if product/b.i != a.i || (a.i == -1 && b.i == math.MinInt64) || (b.i == -1 && a.i == math.MinInt64) {
				return Value{}, overflowError("*", a, b)
			}
			return NewInteger(product), nil
		}
		return NewInteger(0), nil
	case a.IsNumeric() && b.IsNumeric():
		return NewFloat(a.number() * b.number()), nil
	case a.kind == KindText && b.kind == KindInteger:
		return repeat(a.s, b.i)
	case a.kind == KindInteger && b.kind == KindText:
		return repeat(b.s, a.i)
	default:
		return Value{}, mismatchError("*", a, b)
	}
}

// Div implements / as true division. The result is always a float and a
// zero divisor fails with DIVISION_BY_ZERO.
func Div(a, b Value) (Value, error) {
	if !a.IsNumeric() || !b.IsNumeric() {
		return Value{}, mismatchError("/", a, b)
	}
	if b.number() == 0 {
		return Value{}, mdwerror.New("division by zero").
			WithCode(mdwerror.CodeDivisionByZero).
			WithOperation("value.Div").
			WithDetail("dividend", a.String())
	}
	return NewFloat(a.number() / b.number()), nil
}

// Less implements < on numbers or on two texts
func Less(a, b Value) (Value, error) {
	return compare("<", a, b, func(c int) bool { return c < 0 })
}

// Greater implements > on numbers or on two texts
func Greater(a, b Value) (Value, error) {
	return compare(">", a, b, func(c int) bool { return c > 0 })
}

// Truth converts a while condition to a boolean. Booleans are used as
// they are; numbers are true when non-zero; text is rejected.
func Truth(v Value) (bool, error) {
	switch v.kind {
	case KindBoolean:
		return v.b, nil
	case KindInteger:
		return v.i != 0, nil
	case KindFloat:
		return v.f != 0, nil
	default:
		return false, mdwerror.Newf("condition must be boolean or number, got %s", v.kind).
			WithCode(mdwerror.CodeTypeMismatch).
			WithOperation("value.Truth").
			WithDetail("kind", v.kind.String())
	}
}

func compare(symbol string, a, b Value, accept func(int) bool) (Value, error) {
	var c int
	switch {
	case a.kind == KindInteger && b.kind == KindInteger:
		c = cmp.Compare(a.i, b.i)
	case a.IsNumeric() && b.IsNumeric():
		c = cmpFloat(a.number(), b.number())
	case a.kind == KindText && b.kind == KindText:
		c = strings.Compare(a.s, b.s)
	default:
		return Value{}, mismatchError(symbol, a, b)
	}
	return NewBoolean(accept(c)), nil
}

// cmpFloat treats NaN as neither less nor greater, unlike cmp.Compare
func cmpFloat(x, y float64) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

func repeat(s string, n int64) (Value, error) {
	if n <= 0 || s == "" {
		return NewText(""), nil
	}
	if n > int64(MaxTextBytes/len(s)) {
		return Value{}, mdwerror.Newf("repeated text exceeds %d bytes", MaxTextBytes).
			WithCode(mdwerror.CodeRuntime).
			WithOperation("value.Mul").
			WithDetail("count", n)
	}
	return NewText(strings.Repeat(s, int(n))), nil
}

func mismatchError(symbol string, a, b Value) error {
	return mdwerror.Newf("unsupported operand types for %s: %s and %s", symbol, a.kind, b.kind).
		WithCode(mdwerror.CodeTypeMismatch).
		WithOperation("value.Operator").
		WithDetails(map[string]interface{}{
			"operator": symbol,
			"left":     a.kind.String(),
			"right":    b.kind.String(),
		})
}

func overflowError(symbol string, a, b Value) error {
	return mdwerror.Newf("integer overflow in %s %s %s", a, symbol, b).
		WithCode(mdwerror.CodeRuntime).
		WithOperation("value.Operator").
		WithDetail("operator", symbol)
}
