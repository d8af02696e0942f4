// File: doc.go
// Title: Lovelace Interpreter Package Documentation
// Description: Documents the evaluation rules of the tree-walking
//              interpreter.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-06
// Modified: 2025-02-06
//
// Change History:
// - 2025-02-06 v0.1.0: Initial documentation

/*
Package interpreter executes a parsed Lovelace program.

Statements run in source order against one flat Environment that belongs
to the Interpreter instance:

  - Assign evaluates its expression and binds the result.
  - Print writes the value's text form and a line break to Stdout.
  - Input writes the prompt, reads one line from Stdin and binds it as text.
  - While re-evaluates its condition before every iteration. Booleans are
    used directly; numbers are true when non-zero; text is a type mismatch.

The first error stops the run. Output already written and variables already
assigned are kept. Errors carry the codes UNDEFINED_VARIABLE, TYPE_MISMATCH,
DIVISION_BY_ZERO, INPUT_ERROR, RUNTIME_ERROR or CANCELLED and the details
line and column.

Usage:

	interp := interpreter.New(interpreter.Options{Stdout: os.Stdout})
	if err := interp.Run(ctx, program); err != nil {
		return err
	}
*/
package interpreter
