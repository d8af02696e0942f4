// File: environment.go
// Title: Lovelace Variable Environment
// Description: The single flat variable table owned by an interpreter
//              instance. There is no nesting and no shadowing; assignment
//              creates or overwrites an entry.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-06
// Modified: 2025-02-06
//
// Change History:
// - 2025-02-06 v0.1.0: Initial environment

package interpreter

import (
	"sort"

	"github.com/msto63/lovelace/foundation/lovelace/value"
)

// Environment maps variable names to runtime values
type Environment struct {
	vars map[string]value.Value
}

// NewEnvironment creates an empty environment
func NewEnvironment() *Environment {
	return &Environment{vars: make(map[string]value.Value)}
}

// Get returns the value bound to name
func (e *Environment) Get(name string) (value.Value, bool) {
	v, ok := e.vars[name]
	return v, ok
}

// Set binds name to v, replacing any previous binding
func (e *Environment) Set(name string, v value.Value) {
	e.vars[name] = v
}

// Names returns the bound names in sorted order
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.vars))
	for name := range e.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of bound names
func (e *Environment) Len() int {
	return len(e.vars)
}
