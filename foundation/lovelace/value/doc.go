// File: doc.go
// Title: Lovelace Runtime Value Package Documentation
// Description: Documents the runtime value model and operator rules.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-06
// Modified: 2025-02-06
//
// Change History:
// - 2025-02-06 v0.1.0: Initial documentation

/*
Package value models Lovelace runtime values as a closed tagged union of
Integer, Float, Text and Boolean.

Operator rules:

	+   int+int -> int, numeric mix -> float, text+text -> text
	-   numbers only
	*   numbers, or text*int / int*text repeating the text
	/   numbers only, always float, zero divisor -> DIVISION_BY_ZERO
	< > numbers (mixed allowed) or two texts, result boolean

Every other combination fails with TYPE_MISMATCH. Integer arithmetic that
overflows int64 fails with RUNTIME_ERROR instead of wrapping.
*/
package value
