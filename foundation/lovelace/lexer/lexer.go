// File: lexer.go
// Title: Lovelace Lexical Analyzer (Tokenizer)
// Description: Converts Lovelace source text into the ordered token slice
//              consumed by the parser. Matching walks a fixed, ordered rule
//              table and takes the first rule that matches a non-empty
//              prefix of the remaining input.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-04
// Modified: 2025-02-04
//
// Change History:
// - 2025-02-04 v0.1.0: Initial rule-table lexer

package lexer

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	mdwerror "github.com/msto63/lovelace/foundation/core/error"
	mdwlog "github.com/msto63/lovelace/foundation/core/log"
)

// rule pairs a token type with an anchored pattern
type rule struct {
	tokenType TokenType
	pattern   *regexp.Regexp
}

// rules is tried top to bottom. Keywords come before the identifier rule
// and have no word-boundary check, so "printer" is PRINT followed by
// IDENTIFIER("er").
// Numbers are ASCII digits only; other Unicode digits are a lexical error.
var rules = []rule{
	{TokenWhile, regexp.MustCompile(`^while`)},
	{TokenPrint, regexp.MustCompile(`^print`)},
	{TokenInput, regexp.MustCompile(`^input`)},
	{TokenNumber, regexp.MustCompile(`^[0-9]+`)},
	{TokenString, regexp.MustCompile(`^"[^"\n]*"`)},
	{TokenIdentifier, regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*`)},
	{TokenAssign, regexp.MustCompile(`^=`)},
	{TokenPlus, regexp.MustCompile(`^\+`)},
	{TokenMinus, regexp.MustCompile(`^-`)},
	{TokenMultiply, regexp.MustCompile(`^\*`)},
	{TokenDivide, regexp.MustCompile(`^/`)},
	{TokenLeftParen, regexp.MustCompile(`^\(`)},
	{TokenRightParen, regexp.MustCompile(`^\)`)},
	{TokenLeftBrace, regexp.MustCompile(`^\{`)},
	{TokenRightBrace, regexp.MustCompile(`^\}`)},
	{TokenLess, regexp.MustCompile(`^<`)},
	{TokenGreater, regexp.MustCompile(`^>`)},
	{TokenSemicolon, regexp.MustCompile(`^;`)},
	{tokenWhitespace, regexp.MustCompile(`^[ \t\r]+`)},
	{tokenNewline, regexp.MustCompile(`^\n`)},
}

// Options configures lexer behavior
type Options struct {
	Logger *mdwlog.Logger
}

// Lexer performs lexical analysis of Lovelace source
type Lexer struct {
	input  string
	offset int // Byte offset of the unconsumed remainder
	line   int // Current line number (1-based)
	column int // Current column number (1-based)
	logger *mdwlog.Logger
}

// New creates a new lexer for the given input
func New(input string, opts Options) *Lexer {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}

	return &Lexer{
		input:  input,
		line:   1,
		column: 1,
		logger: opts.Logger.WithField("component", "lovelace-lexer"),
	}
}

// Tokenize consumes the whole input and returns its tokens. On the first
// unmatched character it returns a lexical error and no tokens.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token

	for l.offset < len(l.input) {
		tok, ok := l.match()
		if !ok {
			return nil, l.unexpectedCharacter()
		}

		l.advance(tok)

		if tok.Type == tokenWhitespace || tok.Type == tokenNewline {
			continue
		}
		tokens = append(tokens, tok)
	}

	l.logger.Debug("Tokenization completed", mdwlog.Fields{
		"tokens": len(tokens),
		"lines":  l.line,
	})

	return tokens, nil
}

// match returns the token produced by the first matching rule
func (l *Lexer) match() (Token, bool) {
	rest := l.input[l.offset:]

	for _, r := range rules {
		loc := r.pattern.FindStringIndex(rest)
		if loc == nil || loc[1] == 0 {
			continue
		}
		return Token{
			Type:   r.tokenType,
			Value:  rest[:loc[1]],
			Offset: l.offset,
			Line:   l.line,
			Column: l.column,
		}, true
	}

	return Token{}, false
}

// advance moves the scan position past the token
func (l *Lexer) advance(tok Token) {
	l.offset += len(tok.Value)

	if tok.Type == tokenNewline {
		l.line++
		l.column = 1
		return
	}
	l.column += utf8.RuneCountInString(tok.Value)
}

// unexpectedCharacter builds the lexical error for the current position
func (l *Lexer) unexpectedCharacter() error {
	ch, _ := utf8.DecodeRuneInString(l.input[l.offset:])

	err := mdwerror.New(fmt.Sprintf("unexpected character %q at line %d, column %d", ch, l.line, l.column)).
		WithCode(mdwerror.CodeLexical).
		WithOperation("lexer.Tokenize").
		WithDetail("character", string(ch)).
		WithDetail("line", l.line).
		WithDetail("column", l.column).
		WithDetail("offset", l.offset)

	l.logger.Debug("Tokenization failed", mdwlog.Fields{
		"character": string(ch),
		"line":      l.line,
		"column":    l.column,
	})

	return err
}

// Tokenize is a convenience function that tokenizes input with default options
func Tokenize(input string) ([]Token, error) {
	return New(input, Options{}).Tokenize()
}

// IsKeyword checks if a string is exactly a Lovelace keyword
func IsKeyword(s string) bool {
	switch s {
	case "while", "print", "input":
		return true
	default:
		return false
	}
}
