// File: doc.go
// Title: Lovelace Abstract Syntax Tree Package Documentation
// Description: Defines the Abstract Syntax Tree nodes produced by the
//              Lovelace parser together with the visitor interface and
//              tree utilities.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-04
// Modified: 2025-02-04
//
// Change History:
// - 2025-02-04 v0.1.0: Initial AST implementation

/*
Package ast defines the Abstract Syntax Tree for Lovelace programs.

A Program is an ordered list of statements. Statements are Assign, Print,
Input and While; expressions are Number, StringLiteral, Identifier and
BinaryOp. Every node renders a canonical source form through String(),
which ignores positions and fully parenthesizes binary operations:

	x = 2 + 3 * 4;      // renders as: x = (2 + (3 * 4));

The tree can be traversed with a Visitor, with Walk, or dumped with Dump
and ToMap.
*/
package ast
