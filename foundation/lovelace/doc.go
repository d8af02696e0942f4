// File: doc.go
// Title: Lovelace Scripting Language Package Documentation
// Description: Package overview for the Lovelace pipeline and its engine.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-07
// Modified: 2025-02-07
//
// Change History:
// - 2025-02-07 v0.1.0: Initial documentation

/*
Package lovelace runs programs written in Lovelace, a small untyped
scripting language with assignments, print and input statements and while
loops.

The pipeline has three stages in strict order: the lexer turns source text
into tokens, the parser builds an AST and the interpreter walks it. A
lexical or syntax error stops the pipeline before any statement runs.

	x = 0;
	while (x < 3) {
		print x;
		x = x + 1;
	}

Usage:

	engine := lovelace.New(lovelace.Options{Stdout: os.Stdout})
	result, err := engine.Run(ctx, source)
	if err != nil {
		log.Printf("run %s failed: %v", result.RunID, err)
	}

Sub-packages:
  - lexer: token types and the rule-table tokenizer
  - ast: syntax tree nodes and visitors
  - parser: recursive descent parser
  - value: runtime values and operators
  - interpreter: environment and tree-walking evaluator
*/
package lovelace
