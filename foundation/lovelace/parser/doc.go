// File: doc.go
// Title: Lovelace Parser Package Documentation
// Description: Documents the Lovelace grammar and the parser entry points.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-05
// Modified: 2025-02-05
//
// Change History:
// - 2025-02-05 v0.1.0: Initial documentation

/*
Package parser turns a Lovelace token slice into an ast.Program.

Grammar, from loosest to tightest binding:

	program    = { statement [";"] }
	statement  = IDENTIFIER "=" expression
	           | "print" expression
	           | "input" IDENTIFIER
	           | "while" comparison "{" { statement [";"] } "}"
	comparison = expression [ ("<" | ">") expression ]
	expression = term { ("+" | "-") term }
	term       = factor { ("*" | "/") factor }
	factor     = NUMBER | STRING | IDENTIFIER | "(" comparison ")"

Semicolons are optional separators. Comparisons do not chain: a < b < c is
a syntax error. Every failure is an *error.Error with code SYNTAX_ERROR and
the details line, column, found and, where one applies, expected.

Usage:

	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return err
	}
	program, err := parser.New(parser.Options{}).Parse(tokens)
*/
package parser
