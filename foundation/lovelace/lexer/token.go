// File: token.go
// Title: Lovelace Token Definitions
// Description: Defines the closed set of token types produced by the lexer
//              and the Token value that pairs a type with its lexeme and
//              source position.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-04
// Modified: 2025-02-04
//
// Change History:
// - 2025-02-04 v0.1.0: Initial token set

package lexer

import (
	"fmt"
)

// TokenType represents the type of a lexical token
type TokenType int

const (
	// TokenEOF marks the end of input. The lexer never emits it; the parser
	// synthesizes it when the cursor runs past the last token.
	TokenEOF TokenType = iota

	// Keywords
	TokenWhile // while
	TokenPrint // print
	TokenInput // input

	// Literals and names
	TokenNumber     // 42
	TokenString     // "text"
	TokenIdentifier // counter, _tmp1

	// Operators
	TokenAssign   // =
	TokenPlus     // +
	TokenMinus    // -
	TokenMultiply // *
	TokenDivide   // /
	TokenLess     // <
	TokenGreater  // >

	// Delimiters
	TokenLeftParen  // (
	TokenRightParen // )
	TokenLeftBrace  // {
	TokenRightBrace // }
	TokenSemicolon  // ;

	// Recognized and dropped by the lexer
	tokenWhitespace
	tokenNewline
)

// String returns the canonical name of the token type
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "EOF"
	case TokenWhile:
		return "WHILE"
	case TokenPrint:
		return "PRINT"
	case TokenInput:
		return "INPUT"
	case TokenNumber:
		return "NUMBER"
	case TokenString:
		return "STRING"
	case TokenIdentifier:
		return "IDENTIFIER"
	case TokenAssign:
		return "ASSIGN"
	case TokenPlus:
		return "PLUS"
	case TokenMinus:
		return "MINUS"
	case TokenMultiply:
		return "MULTIPLY"
	case TokenDivide:
		return "DIVIDE"
	case TokenLess:
		return "LESS"
	case TokenGreater:
		return "GREATER"
	case TokenLeftParen:
		return "LPAREN"
	case TokenRightParen:
		return "RPAREN"
	case TokenLeftBrace:
		return "LBRACE"
	case TokenRightBrace:
		return "RBRACE"
	case TokenSemicolon:
		return "SEMICOLON"
	case tokenWhitespace:
		return "WHITESPACE"
	case tokenNewline:
		return "NEWLINE"
	default:
		return "UNKNOWN"
	}
}

// IsKeyword reports whether the type is one of the statement keywords
func (tt TokenType) IsKeyword() bool {
	return tt == TokenWhile || tt == TokenPrint || tt == TokenInput
}

// Token represents a lexical token with position information
type Token struct {
	Type   TokenType // Token type
	Value  string    // Matched source text
	Offset int       // Byte offset in input (0-based)
	Line   int       // Line number (1-based)
	Column int       // Column number (1-based)
}

// String returns a string representation of the token
func (t Token) String() string {
	if t.Type == TokenEOF {
		return "EOF"
	}
	return fmt.Sprintf("%s(%s)", t.Type.String(), t.Value)
}

// Describe renders the token for error messages, e.g. `IDENTIFIER "x"`
func (t Token) Describe() string {
	if t.Type == TokenEOF {
		return "end of input"
	}
	return fmt.Sprintf("%s %q", t.Type.String(), t.Value)
}
