// File: visitor.go
// Title: Lovelace AST Visitor Pattern Implementation
// Description: Visitor interface plus the traversals built on it: a
//              depth-first Walk, an identifier collector, an indented tree
//              dump and a map conversion used for YAML output.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-04
// Modified: 2025-02-04
//
// Change History:
// - 2025-02-04 v0.1.0: Initial visitor pattern implementation

package ast

import (
	"fmt"
	"sort"
	"strings"
)

// Visitor interface for traversing AST nodes using the visitor pattern
type Visitor interface {
	VisitProgram(program *Program) interface{}

	// Visit expression nodes
	VisitNumber(expr *Number) interface{}
	VisitStringLiteral(expr *StringLiteral) interface{}
	VisitIdentifier(expr *Identifier) interface{}
	VisitBinaryOp(expr *BinaryOp) interface{}

	// Visit statement nodes
	VisitAssign(stmt *Assign) interface{}
	VisitPrint(stmt *Print) interface{}
	VisitInput(stmt *Input) interface{}
	VisitWhile(stmt *While) interface{}
}

// Children returns the direct child nodes in source order
func Children(node Node) []Node {
	switch n := node.(type) {
	case *Program:
		return stmtNodes(n.Statements)
	case *BinaryOp:
		return []Node{n.Left, n.Right}
	case *Assign:
		return []Node{n.Target, n.Value}
	case *Print:
		return []Node{n.Value}
	case *Input:
		return []Node{n.Target}
	case *While:
		return append([]Node{n.Condition}, stmtNodes(n.Body)...)
	default:
		return nil
	}
}

// Walk visits node and its descendants depth-first. Returning false from
// fn skips the children of that node.
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}
	for _, child := range Children(node) {
		Walk(child, fn)
	}
}

// Identifiers returns the sorted, de-duplicated variable names a program
// reads or writes
func Identifiers(node Node) []string {
	seen := make(map[string]bool)
	Walk(node, func(n Node) bool {
		if id, ok := n.(*Identifier); ok {
			seen[id.Name] = true
		}
		return true
	})

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dump renders an indented tree, one node per line
func Dump(node Node) string {
	d := &dumper{}
	node.Accept(d)
	return d.sb.String()
}

type dumper struct {
	sb    strings.Builder
	depth int
}

func (d *dumper) line(format string, args ...interface{}) {
	d.sb.WriteString(strings.Repeat("  ", d.depth))
	fmt.Fprintf(&d.sb, format, args...)
	d.sb.WriteByte('\n')
}

func (d *dumper) nested(nodes ...Node) {
	d.depth++
	for _, n := range nodes {
		n.Accept(d)
	}
	d.depth--
}

func (d *dumper) VisitProgram(p *Program) interface{} {
	d.line("Program")
	d.nested(stmtNodes(p.Statements)...)
	return nil
}

func (d *dumper) VisitNumber(n *Number) interface{} {
	d.line("Number %d", n.Value)
	return nil
}

func (d *dumper) VisitStringLiteral(s *StringLiteral) interface{} {
	d.line("String %q", s.Value)
	return nil
}

func (d *dumper) VisitIdentifier(i *Identifier) interface{} {
	d.line("Identifier %s", i.Name)
	return nil
}

func (d *dumper) VisitBinaryOp(b *BinaryOp) interface{} {
	d.line("BinaryOp %s", b.Op)
	d.nested(b.Left, b.Right)
	return nil
}

func (d *dumper) VisitAssign(a *Assign) interface{} {
	d.line("Assign %s", a.Target.Name)
	d.nested(a.Value)
	return nil
}

func (d *dumper) VisitPrint(p *Print) interface{} {
	d.line("Print")
	d.nested(p.Value)
	return nil
}

func (d *dumper) VisitInput(i *Input) interface{} {
	d.line("Input %s", i.Target.Name)
	return nil
}

func (d *dumper) VisitWhile(w *While) interface{} {
	d.line("While")
	d.nested(w.Condition)
	d.depth++
	d.line("Body")
	d.nested(stmtNodes(w.Body)...)
	d.depth--
	return nil
}

// ToMap converts a node into nested maps and slices suitable for
// serialization
func ToMap(node Node) map[string]interface{} {
	m, _ := node.Accept(mapper{}).(map[string]interface{})
	return m
}

type mapper struct{}

func (m mapper) list(stmts []Stmt) []interface{} {
	out := make([]interface{}, len(stmts))
	for i, s := range stmts {
		out[i] = s.Accept(m)
	}
	return out
}

func (m mapper) VisitProgram(p *Program) interface{} {
	return map[string]interface{}{"program": m.list(p.Statements)}
}

func (m mapper) VisitNumber(n *Number) interface{} {
	return map[string]interface{}{"number": n.Value}
}

func (m mapper) VisitStringLiteral(s *StringLiteral) interface{} {
	return map[string]interface{}{"string": s.Value}
}

func (m mapper) VisitIdentifier(i *Identifier) interface{} {
	return map[string]interface{}{"identifier": i.Name}
}

func (m mapper) VisitBinaryOp(b *BinaryOp) interface{} {
	return map[string]interface{}{
		"binary_op": map[string]interface{}{
			"op":    b.Op.String(),
			"left":  b.Left.Accept(m),
			"right": b.Right.Accept(m),
		},
	}
}

func (m mapper) VisitAssign(a *Assign) interface{} {
	return map[string]interface{}{
		"assign": map[string]interface{}{
			"target": a.Target.Name,
			"value":  a.Value.Accept(m),
		},
	}
}

func (m mapper) VisitPrint(p *Print) interface{} {
	return map[string]interface{}{"print": p.Value.Accept(m)}
}

func (m mapper) VisitInput(i *Input) interface{} {
	return map[string]interface{}{"input": i.Target.Name}
}

func (m mapper) VisitWhile(w *While) interface{} {
	return map[string]interface{}{
		"while": map[string]interface{}{
			"condition": w.Condition.Accept(m),
			"body":      m.list(w.Body),
		},
	}
}

func stmtNodes(stmts []Stmt) []Node {
	nodes := make([]Node, len(stmts))
	for i, s := range stmts {
		nodes[i] = s
	}
	return nodes
}
