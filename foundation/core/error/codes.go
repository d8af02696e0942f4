// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across Lovelace and groups them
//              into the three failure kinds of the pipeline: lexical,
//              syntax and runtime.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-03
// Modified: 2025-02-03
//
// Change History:
// - 2025-02-03 v0.1.0: Initial code set

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeCancelled    Code = "CANCELLED"

	// Lexer
	CodeLexical Code = "LEXICAL_ERROR"

	// Parser
	CodeSyntax Code = "SYNTAX_ERROR"

	// Interpreter
	CodeRuntime           Code = "RUNTIME_ERROR"
	CodeUndefinedVariable Code = "UNDEFINED_VARIABLE"
	CodeTypeMismatch      Code = "TYPE_MISMATCH"
	CodeDivisionByZero    Code = "DIVISION_BY_ZERO"
	CodeInputError        Code = "INPUT_ERROR"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// Kind groups codes by the pipeline stage that produces them
type Kind int

const (
	KindOther Kind = iota
	KindLexical
	KindSyntax
	KindRuntime
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindLexical:
		return "lexical error"
	case KindSyntax:
		return "syntax error"
	case KindRuntime:
		return "runtime error"
	default:
		return "error"
	}
}

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidInput, CodeCancelled,
		CodeLexical, CodeSyntax,
		CodeRuntime, CodeUndefinedVariable, CodeTypeMismatch, CodeDivisionByZero, CodeInputError,
		CodeConfigError, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Kind returns the pipeline stage the code belongs to
func (c Code) Kind() Kind {
	switch c {
	case CodeLexical:
		return KindLexical
	case CodeSyntax:
		return KindSyntax
	case CodeRuntime, CodeUndefinedVariable, CodeTypeMismatch, CodeDivisionByZero, CodeInputError:
		return KindRuntime
	default:
		return KindOther
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c.Kind() {
	case KindLexical:
		return "lexer"
	case KindSyntax:
		return "parser"
	case KindRuntime:
		return "interpreter"
	}
	switch c {
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}
