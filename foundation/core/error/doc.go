// Package error provides the structured error type shared by all Lovelace packages.
//
// Package: error
// Title: Lovelace Error Handling Framework
// Description: Implements a structured error with a code, a severity, an
//              operation name and free-form details. Lexer, parser and
//              interpreter report every failure through this type so callers
//              can classify a failure without parsing message text.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-03
// Modified: 2025-02-03
//
// Change History:
// - 2025-02-03 v0.1.0: Codes for lexical, syntax and runtime failures
//
// Usage:
//
//	import mdwerror "github.com/msto63/lovelace/foundation/core/error"
//
//	err := mdwerror.New("undefined variable: x").
//		WithCode(mdwerror.CodeUndefinedVariable).
//		WithOperation("interpreter.Eval").
//		WithDetail("name", "x")
//
//	if mdwerror.HasCode(err, mdwerror.CodeUndefinedVariable) {
//		// ...
//	}
//
//	switch mdwerror.KindOf(err) {
//	case mdwerror.KindSyntax:
//		// ...
//	}
package error
