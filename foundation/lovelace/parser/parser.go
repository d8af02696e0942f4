// File: parser.go
// Title: Lovelace Recursive Descent Parser
// Description: Converts the lexer's token slice into a Program AST. Each
//              grammar rule is one method; operator binding strength is
//              encoded by call nesting (comparison > expression > term >
//              factor). The cursor only moves forward and never backtracks.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-05
// Modified: 2025-02-05
//
// Change History:
// - 2025-02-05 v0.1.0: Initial parser implementation

package parser

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	mdwerror "github.com/msto63/lovelace/foundation/core/error"
	mdwlog "github.com/msto63/lovelace/foundation/core/log"
	"github.com/msto63/lovelace/foundation/lovelace/ast"
	"github.com/msto63/lovelace/foundation/lovelace/lexer"
)

// Parser implements recursive descent parsing for Lovelace. A Parser keeps
// its cursor between calls and must not be shared across goroutines.
type Parser struct {
	tokens  []lexer.Token
	pos     int         // Index of the current token
	end     lexer.Token // Synthetic EOF token
	logger  *mdwlog.Logger
	options Options
}

// Options configures parser behavior
type Options struct {
	Logger    *mdwlog.Logger
	MaxTokens int // Zero means unlimited
}

// New creates a new Lovelace parser with the given options
func New(opts Options) *Parser {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}

	return &Parser{
		logger:  opts.Logger.WithField("component", "lovelace-parser"),
		options: opts,
	}
}

// Parse parses a token slice into a Program. The slice is not modified.
func (p *Parser) Parse(tokens []lexer.Token) (*ast.Program, error) {
	if p.options.MaxTokens > 0 && len(tokens) > p.options.MaxTokens {
		return nil, mdwerror.Newf("token count exceeds maximum: %d > %d", len(tokens), p.options.MaxTokens).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("parser.Parse").
			WithDetail("tokens", len(tokens)).
			WithDetail("max_tokens", p.options.MaxTokens)
	}

	p.tokens = tokens
	p.pos = 0
	p.end = endOfInput(tokens)

	p.logger.Debug("Starting parsing", mdwlog.Fields{
		"tokens": len(tokens),
	})

	statements, err := p.parseStatements()
	if err != nil {
		p.logger.Debug("Parsing failed", mdwlog.Fields{
			"error": err.Error(),
		})
		return nil, err
	}

	// A statement sequence stops at RBRACE, so a stray closing brace at the
	// top level ends up here.
	if !p.atEnd() {
		return nil, p.syntaxError(fmt.Sprintf("unexpected %s after last statement", p.current().Describe()), "")
	}

	p.logger.Debug("Parsing completed", mdwlog.Fields{
		"statements": len(statements),
	})

	return &ast.Program{Statements: statements}, nil
}

// parseStatements reads statements until RBRACE or end of input. One
// optional SEMICOLON after each statement is consumed.
func (p *Parser) parseStatements() ([]ast.Stmt, error) {
	statements := []ast.Stmt{}

	for !p.atEnd() && !p.check(lexer.TokenRightBrace) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)

		if p.check(lexer.TokenSemicolon) {
			p.advance()
		}
	}

	return statements, nil
}

// parseStatement dispatches on the leading token
func (p *Parser) parseStatement() (ast.Stmt, error) {
	switch p.current().Type {
	case lexer.TokenIdentifier:
		return p.parseAssignment()
	case lexer.TokenPrint:
		return p.parsePrint()
	case lexer.TokenInput:
		return p.parseInput()
	case lexer.TokenWhile:
		return p.parseWhile()
	default:
		return nil, p.syntaxError(fmt.Sprintf("unexpected %s at start of statement", p.current().Describe()), "statement")
	}
}

// parseAssignment parses: IDENTIFIER ASSIGN expression
func (p *Parser) parseAssignment() (ast.Stmt, error) {
	target, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokenAssign); err != nil {
		return nil, err
	}

	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	return &ast.Assign{Target: target, Value: value, Pos: target.Pos}, nil
}

// parsePrint parses: PRINT expression
func (p *Parser) parsePrint() (ast.Stmt, error) {
	keyword := p.advance()

	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	return &ast.Print{Value: value, Pos: position(keyword)}, nil
}

// parseInput parses: INPUT IDENTIFIER
func (p *Parser) parseInput() (ast.Stmt, error) {
	keyword := p.advance()

	target, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}

	return &ast.Input{Target: target, Pos: position(keyword)}, nil
}

// parseWhile parses: WHILE comparison LBRACE statements RBRACE
func (p *Parser) parseWhile() (ast.Stmt, error) {
	keyword := p.advance()

	condition, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokenLeftBrace); err != nil {
		return nil, err
	}

	body, err := p.parseStatements()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokenRightBrace); err != nil {
		return nil, err
	}

	return &ast.While{Condition: condition, Body: body, Pos: position(keyword)}, nil
}

// parseComparison parses: expression [(LESS | GREATER) expression]
func (p *Parser) parseComparison() (ast.Expr, error) {
	left, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if op, ok := comparisonOperators[p.current().Type]; ok {
		tok := p.advance()
		right, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &ast.BinaryOp{Op: op, Left: left, Right: right, Pos: position(tok)}, nil
	}

	return left, nil
}

// parseExpression parses: term {(PLUS | MINUS) term}
func (p *Parser) parseExpression() (ast.Expr, error) {
	return p.parseBinary(additiveOperators, p.parseTerm)
}

// parseTerm parses: factor {(MULTIPLY | DIVIDE) factor}
func (p *Parser) parseTerm() (ast.Expr, error) {
	return p.parseBinary(multiplicativeOperators, p.parseFactor)
}

// parseBinary folds a left-associative chain of operands
func (p *Parser) parseBinary(ops map[lexer.TokenType]ast.Operator, operand func() (ast.Expr, error)) (ast.Expr, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}

	for {
		op, ok := ops[p.current().Type]
		if !ok {
			return left, nil
		}
		tok := p.advance()

		right, err := operand()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Op: op, Left: left, Right: right, Pos: position(tok)}
	}
}

// parseFactor parses: NUMBER | STRING | IDENTIFIER | LPAREN comparison RPAREN
func (p *Parser) parseFactor() (ast.Expr, error) {
	tok := p.current()

	switch tok.Type {
	case lexer.TokenNumber:
		p.advance()
		n, err := strconv.ParseInt(tok.Value, 10, 64)
		if err != nil {
			return nil, p.syntaxErrorAt(tok, fmt.Sprintf("number literal %s out of range", tok.Value), "NUMBER")
		}
		return &ast.Number{Value: n, Pos: position(tok)}, nil

	case lexer.TokenString:
		p.advance()
		return &ast.StringLiteral{Value: tok.Value[1 : len(tok.Value)-1], Pos: position(tok)}, nil

	case lexer.TokenIdentifier:
		p.advance()
		return &ast.Identifier{Name: tok.Value, Pos: position(tok)}, nil

	case lexer.TokenLeftParen:
		p.advance()
		expr, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.TokenRightParen); err != nil {
			return nil, err
		}
		return expr, nil

	default:
		return nil, p.syntaxError(fmt.Sprintf("expected expression, found %s", tok.Describe()), "expression")
	}
}

// parseIdentifier consumes an IDENTIFIER token
func (p *Parser) parseIdentifier() (*ast.Identifier, error) {
	tok, err := p.expect(lexer.TokenIdentifier)
	if err != nil {
		return nil, err
	}
	return &ast.Identifier{Name: tok.Value, Pos: position(tok)}, nil
}

var comparisonOperators = map[lexer.TokenType]ast.Operator{
	lexer.TokenLess:    ast.OpLess,
	lexer.TokenGreater: ast.OpGreater,
}

var additiveOperators = map[lexer.TokenType]ast.Operator{
	lexer.TokenPlus:  ast.OpPlus,
	lexer.TokenMinus: ast.OpMinus,
}

var multiplicativeOperators = map[lexer.TokenType]ast.Operator{
	lexer.TokenMultiply: ast.OpMultiply,
	lexer.TokenDivide:   ast.OpDivide,
}

// Helper methods

func (p *Parser) current() lexer.Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return p.end
}

func (p *Parser) advance() lexer.Token {
	tok := p.current()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

func (p *Parser) atEnd() bool {
	return p.pos >= len(p.tokens)
}

func (p *Parser) check(tokenType lexer.TokenType) bool {
	return p.current().Type == tokenType
}

// expect consumes a token of the given type or fails naming what was found
func (p *Parser) expect(tokenType lexer.TokenType) (lexer.Token, error) {
	if !p.check(tokenType) {
		return lexer.Token{}, p.syntaxError(
			fmt.Sprintf("expected %s, found %s", tokenType, p.current().Describe()),
			tokenType.String(),
		)
	}
	return p.advance(), nil
}

func (p *Parser) syntaxError(message, expected string) error {
	return p.syntaxErrorAt(p.current(), message, expected)
}

func (p *Parser) syntaxErrorAt(tok lexer.Token, message, expected string) error {
	err := mdwerror.Newf("%s at line %d, column %d", message, tok.Line, tok.Column).
		WithCode(mdwerror.CodeSyntax).
		WithOperation("parser.Parse").
		WithDetail("line", tok.Line).
		WithDetail("column", tok.Column).
		WithDetail("found", tok.String())
	if expected != "" {
		err = err.WithDetail("expected", expected)
	}
	return err
}

// endOfInput positions the synthetic EOF token just past the last token
func endOfInput(tokens []lexer.Token) lexer.Token {
	if len(tokens) == 0 {
		return lexer.Token{Type: lexer.TokenEOF, Line: 1, Column: 1}
	}
	last := tokens[len(tokens)-1]
	return lexer.Token{
		Type:   lexer.TokenEOF,
		Offset: last.Offset + len(last.Value),
		Line:   last.Line,
		Column: last.Column + utf8.RuneCountInString(last.Value),
	}
}

func position(tok lexer.Token) ast.Position {
	return ast.Position{Line: tok.Line, Column: tok.Column}
}

// ParseSource tokenizes and parses source with default options
func ParseSource(source string) (*ast.Program, error) {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return nil, err
	}
	return New(Options{}).Parse(tokens)
}
