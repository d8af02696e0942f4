// File: nodes.go
// Title: Lovelace AST Node Definitions
// Description: Defines the expression and statement nodes produced by the
//              parser. Every node renders a canonical, position-free source
//              form through String(), so two trees are structurally equal
//              exactly when their renderings are equal.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-04
// Modified: 2025-02-04
//
// Change History:
// - 2025-02-04 v0.1.0: Initial AST node definitions

package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Node represents the base interface for all AST nodes
type Node interface {
	// String returns the canonical source form of the node
	String() string

	// Accept implements the visitor pattern
	Accept(visitor Visitor) interface{}

	// Position returns the source position of the node
	Position() Position
}

// Position represents a position in the source code
type Position struct {
	Line   int // Line number (1-based)
	Column int // Column number (1-based)
}

// String renders the position as line:column
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Expr represents the base interface for all expressions
type Expr interface {
	Node
	exprNode()
}

// Stmt represents the base interface for all statements
type Stmt interface {
	Node
	stmtNode()
}

// Operator is the tag of a binary operation
type Operator int

const (
	OpPlus Operator = iota
	OpMinus
	OpMultiply
	OpDivide
	OpLess
	OpGreater
)

// String returns the operator tag name
func (op Operator) String() string {
	switch op {
	case OpPlus:
		return "PLUS"
	case OpMinus:
		return "MINUS"
	case OpMultiply:
		return "MULTIPLY"
	case OpDivide:
		return "DIVIDE"
	case OpLess:
		return "LESS"
	case OpGreater:
		return "GREATER"
	default:
		return "UNKNOWN"
	}
}

// Symbol returns the operator's source symbol
func (op Operator) Symbol() string {
	switch op {
	case OpPlus:
		return "+"
	case OpMinus:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	case OpLess:
		return "<"
	case OpGreater:
		return ">"
	default:
		return "?"
	}
}

// IsComparison reports whether the operator yields a boolean
func (op Operator) IsComparison() bool {
	return op == OpLess || op == OpGreater
}

// Program is the top-level statement block
type Program struct {
	Statements []Stmt
}

// Expression types

// Number is an integer literal
type Number struct {
	Value int64
	Pos   Position
}

// StringLiteral is a string literal with its quotes stripped
type StringLiteral struct {
	Value string
	Pos   Position
}

// Identifier is a variable reference
type Identifier struct {
	Name string
	Pos  Position
}

// BinaryOp applies an operator to two operands
type BinaryOp struct {
	Op    Operator
	Left  Expr
	Right Expr
	Pos   Position // Position of the operator token
}

// Statement types

// Assign stores the value of an expression under a name
type Assign struct {
	Target *Identifier
	Value  Expr
	Pos    Position
}

// Print writes the value of an expression followed by a line break
type Print struct {
	Value Expr
	Pos   Position
}

// Input reads one line from the console into a variable
type Input struct {
	Target *Identifier
	Pos    Position
}

// While repeats its body while the condition holds
type While struct {
	Condition Expr
	Body      []Stmt
	Pos       Position
}

func (*Number) exprNode()        {}
func (*StringLiteral) exprNode() {}
func (*Identifier) exprNode()    {}
func (*BinaryOp) exprNode()      {}

func (*Assign) stmtNode() {}
func (*Print) stmtNode()  {}
func (*Input) stmtNode()  {}
func (*While) stmtNode()  {}

// Implementation of Node for Program

func (p *Program) String() string {
	return renderBlock(p.Statements, "\n")
}

func (p *Program) Accept(visitor Visitor) interface{} {
	return visitor.VisitProgram(p)
}

func (p *Program) Position() Position {
	if len(p.Statements) > 0 {
		return p.Statements[0].Position()
	}
	return Position{Line: 1, Column: 1}
}

// Implementation of Node for expressions

func (n *Number) String() string {
	return strconv.FormatInt(n.Value, 10)
}

func (n *Number) Accept(visitor Visitor) interface{} {
	return visitor.VisitNumber(n)
}

func (n *Number) Position() Position {
	return n.Pos
}

func (s *StringLiteral) String() string {
	return `"` + s.Value + `"`
}

func (s *StringLiteral) Accept(visitor Visitor) interface{} {
	return visitor.VisitStringLiteral(s)
}

func (s *StringLiteral) Position() Position {
	return s.Pos
}

func (i *Identifier) String() string {
	return i.Name
}

func (i *Identifier) Accept(visitor Visitor) interface{} {
	return visitor.VisitIdentifier(i)
}

func (i *Identifier) Position() Position {
	return i.Pos
}

func (b *BinaryOp) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left.String(), b.Op.Symbol(), b.Right.String())
}

func (b *BinaryOp) Accept(visitor Visitor) interface{} {
	return visitor.VisitBinaryOp(b)
}

func (b *BinaryOp) Position() Position {
	return b.Pos
}

// Implementation of Node for statements

func (a *Assign) String() string {
	return fmt.Sprintf("%s = %s;", a.Target.String(), a.Value.String())
}

func (a *Assign) Accept(visitor Visitor) interface{} {
	return visitor.VisitAssign(a)
}

func (a *Assign) Position() Position {
	return a.Pos
}

func (p *Print) String() string {
	return fmt.Sprintf("print %s;", p.Value.String())
}

func (p *Print) Accept(visitor Visitor) interface{} {
	return visitor.VisitPrint(p)
}

func (p *Print) Position() Position {
	return p.Pos
}

func (i *Input) String() string {
	return fmt.Sprintf("input %s;", i.Target.String())
}

func (i *Input) Accept(visitor Visitor) interface{} {
	return visitor.VisitInput(i)
}

func (i *Input) Position() Position {
	return i.Pos
}

func (w *While) String() string {
	if len(w.Body) == 0 {
		return fmt.Sprintf("while %s { }", w.Condition.String())
	}
	return fmt.Sprintf("while %s { %s }", w.Condition.String(), renderBlock(w.Body, " "))
}

func (w *While) Accept(visitor Visitor) interface{} {
	return visitor.VisitWhile(w)
}

func (w *While) Position() Position {
	return w.Pos
}

func renderBlock(stmts []Stmt, sep string) string {
	parts := make([]string, len(stmts))
	for i, stmt := range stmts {
		parts[i] = stmt.String()
	}
	return strings.Join(parts, sep)
}
