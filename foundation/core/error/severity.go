// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. The logger uses the
//              severity to pick the level an error is reported at.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-03
// Modified: 2025-02-03
//
// Change History:
// - 2025-02-03 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow is a problem in the user's script: bad characters, bad grammar.
	SeverityLow Severity = iota

	// SeverityMedium is a failure while a script runs.
	SeverityMedium

	// SeverityHigh is a problem with the host: configuration, I/O.
	SeverityHigh

	// SeverityCritical marks an internal invariant violation.
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeConfigError, CodeInvalidConfig, CodeInputError:
		return SeverityHigh
	case CodeLexical, CodeSyntax, CodeInvalidInput:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
