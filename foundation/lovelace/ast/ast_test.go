// File: ast_test.go
// Title: Lovelace AST Unit Tests
// Description: Tests for canonical rendering, traversal, identifier
//              collection and the dump helpers.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-04
// Modified: 2025-02-04
//
// Change History:
// - 2025-02-04 v0.1.0: Initial test suite

package ast

import (
	"reflect"
	"strings"
	"testing"
)

func ident(name string) *Identifier {
	return &Identifier{Name: name}
}

func num(v int64) *Number {
	return &Number{Value: v}
}

// sampleProgram builds: x = 0; while x < 3 { print x; x = x + 1; } input name;
func sampleProgram() *Program {
	return &Program{Statements: []Stmt{
		&Assign{Target: ident("x"), Value: num(0)},
		&While{
			Condition: &BinaryOp{Op: OpLess, Left: ident("x"), Right: num(3)},
			Body: []Stmt{
				&Print{Value: ident("x")},
				&Assign{Target: ident("x"), Value: &BinaryOp{Op: OpPlus, Left: ident("x"), Right: num(1)}},
			},
		},
		&Input{Target: ident("name")},
	}}
}

func TestNode_String(t *testing.T) {
	tests := []struct {
		name     string
		node     Node
		expected string
	}{
		{"Number", num(42), "42"},
		{"String", &StringLiteral{Value: "hi there"}, `"hi there"`},
		{"Identifier", ident("counter"), "counter"},
		{
			name:     "Nested binary op",
			node:     &BinaryOp{Op: OpPlus, Left: num(2), Right: &BinaryOp{Op: OpMultiply, Left: num(3), Right: num(4)}},
			expected: "(2 + (3 * 4))",
		},
		{"Print", &Print{Value: &StringLiteral{Value: "a"}}, `print "a";`},
		{"Input", &Input{Target: ident("n")}, "input n;"},
		{"Empty while", &While{Condition: &BinaryOp{Op: OpGreater, Left: ident("a"), Right: num(1)}}, "while (a > 1) { }"},
		{
			name:     "Program",
			node:     sampleProgram(),
			expected: "x = 0;\nwhile (x < 3) { print x; x = (x + 1); }\ninput name;",
		},
		{"Empty program", &Program{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestString_IgnoresPositions(t *testing.T) {
	a := &Assign{Target: &Identifier{Name: "x", Pos: Position{1, 1}}, Value: &Number{Value: 1, Pos: Position{1, 5}}, Pos: Position{1, 1}}
	b := &Assign{Target: &Identifier{Name: "x", Pos: Position{7, 3}}, Value: &Number{Value: 1, Pos: Position{7, 9}}, Pos: Position{7, 3}}

	if a.String() != b.String() {
		t.Errorf("renderings differ: %q vs %q", a.String(), b.String())
	}
}

func TestOperator(t *testing.T) {
	tests := []struct {
		op         Operator
		name       string
		symbol     string
		comparison bool
	}{
		{OpPlus, "PLUS", "+", false},
		{OpMinus, "MINUS", "-", false},
		{OpMultiply, "MULTIPLY", "*", false},
		{OpDivide, "DIVIDE", "/", false},
		{OpLess, "LESS", "<", true},
		{OpGreater, "GREATER", ">", true},
		{Operator(99), "UNKNOWN", "?", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.op.String() != tt.name {
				t.Errorf("String() = %v, want %v", tt.op.String(), tt.name)
			}
			if tt.op.Symbol() != tt.symbol {
				t.Errorf("Symbol() = %v, want %v", tt.op.Symbol(), tt.symbol)
			}
			if tt.op.IsComparison() != tt.comparison {
				t.Errorf("IsComparison() = %v, want %v", tt.op.IsComparison(), tt.comparison)
			}
		})
	}
}

func TestWalk(t *testing.T) {
	var visited []string
	Walk(sampleProgram(), func(n Node) bool {
		switch n.(type) {
		case *While:
			visited = append(visited, "while")
			return false
		case *Program:
			visited = append(visited, "program")
		case *Assign:
			visited = append(visited, "assign")
		case *Input:
			visited = append(visited, "input")
		}
		return true
	})

	expected := []string{"program", "assign", "while", "input"}
	if !reflect.DeepEqual(visited, expected) {
		t.Errorf("Walk() visited %v, want %v", visited, expected)
	}
}

func TestIdentifiers(t *testing.T) {
	got := Identifiers(sampleProgram())
	expected := []string{"name", "x"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Identifiers() = %v, want %v", got, expected)
	}

	if got := Identifiers(&Program{}); len(got) != 0 {
		t.Errorf("Identifiers(empty) = %v", got)
	}
}

func TestDump(t *testing.T) {
	expected := strings.Join([]string{
		"Program",
		"  Assign x",
		"    Number 0",
		"  While",
		"    BinaryOp LESS",
		"      Identifier x",
		"      Number 3",
		"    Body",
		"      Print",
		"        Identifier x",
		"      Assign x",
		"        BinaryOp PLUS",
		"          Identifier x",
		"          Number 1",
		"  Input name",
		"",
	}, "\n")

	if got := Dump(sampleProgram()); got != expected {
		t.Errorf("Dump() =\n%s\nwant\n%s", got, expected)
	}
}

func TestToMap(t *testing.T) {
	m := ToMap(&Program{Statements: []Stmt{
		&Print{Value: &BinaryOp{Op: OpDivide, Left: num(7), Right: &StringLiteral{Value: "s"}}},
	}})

	expected := map[string]interface{}{
		"program": []interface{}{
			map[string]interface{}{
				"print": map[string]interface{}{
					"binary_op": map[string]interface{}{
						"op":    "DIVIDE",
						"left":  map[string]interface{}{"number": int64(7)},
						"right": map[string]interface{}{"string": "s"},
					},
				},
			},
		},
	}

	if !reflect.DeepEqual(m, expected) {
		t.Errorf("ToMap() = %#v, want %#v", m, expected)
	}
}
