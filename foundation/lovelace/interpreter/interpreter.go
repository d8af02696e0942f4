// File: interpreter.go
// Title: Lovelace Tree-Walking Interpreter
// Description: Executes a parsed Program directly against a variable
//              environment. Statements run in order; the first error
//              aborts the run and leaves prior output and assignments in
//              place.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-06
// Modified: 2025-02-06
//
// Change History:
// - 2025-02-06 v0.1.0: Initial interpreter implementation

package interpreter

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	mdwerror "github.com/msto63/lovelace/foundation/core/error"
	mdwlog "github.com/msto63/lovelace/foundation/core/log"
	"github.com/msto63/lovelace/foundation/lovelace/ast"
	"github.com/msto63/lovelace/foundation/lovelace/value"
)

// DefaultPrompt is written before every input statement
const DefaultPrompt = "Input: "

// Interpreter evaluates Lovelace programs. Each instance owns its own
// environment; instances share nothing and must not be used from several
// goroutines at once.
type Interpreter struct {
	env     *Environment
	in      *bufio.Reader
	out     io.Writer
	logger  *mdwlog.Logger
	options Options
	steps   int64
}

// Options configures interpreter behavior
type Options struct {
	Logger *mdwlog.Logger
	Stdin  io.Reader // Source for input statements, defaults to os.Stdin
	Stdout io.Writer // Sink for print statements and prompts, defaults to os.Stdout
	Prompt string    // Defaults to DefaultPrompt
}

// New creates an interpreter with an empty environment
func New(opts Options) *Interpreter {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Prompt == "" {
		opts.Prompt = DefaultPrompt
	}

	in, ok := opts.Stdin.(*bufio.Reader)
	if !ok {
		in = bufio.NewReader(opts.Stdin)
	}

	return &Interpreter{
		env:     NewEnvironment(),
		in:      in,
		out:     opts.Stdout,
		logger:  opts.Logger.WithField("component", "lovelace-interpreter"),
		options: opts,
	}
}

// Env returns the interpreter's variable environment
func (in *Interpreter) Env() *Environment {
	return in.env
}

// Steps returns the number of statements executed so far
func (in *Interpreter) Steps() int64 {
	return in.steps
}

// Run executes the program's statements in order. ctx is checked before
// every statement, so cancelling it stops a loop that would not end on its
// own.
func (in *Interpreter) Run(ctx context.Context, program *ast.Program) error {
	in.logger.Debug("Starting execution", mdwlog.Fields{
		"statements": len(program.Statements),
	})

	if err := in.execBlock(ctx, program.Statements); err != nil {
		in.logger.Debug("Execution aborted", mdwlog.Fields{
			"steps":     in.steps,
			"variables": in.env.Len(),
			"error":     err.Error(),
		})
		return err
	}

	in.logger.Debug("Execution completed", mdwlog.Fields{
		"steps":     in.steps,
		"variables": in.env.Len(),
	})
	return nil
}

// Exec executes a single statement
func (in *Interpreter) Exec(ctx context.Context, stmt ast.Stmt) error {
	if err := ctx.Err(); err != nil {
		return cancelled(err, stmt.Position())
	}

	in.steps++
	in.logger.Trace("Executing statement", mdwlog.Fields{
		"statement": fmt.Sprintf("%T", stmt),
		"line":      stmt.Position().Line,
	})

	switch s := stmt.(type) {
	case *ast.Assign:
		v, err := in.Eval(s.Value)
		if err != nil {
			return err
		}
		in.env.Set(s.Target.Name, v)
		return nil

	case *ast.Print:
		v, err := in.Eval(s.Value)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(in.out, v.String()); err != nil {
			return mdwerror.Wrap(err, "write output").
				WithCode(mdwerror.CodeRuntime).
				WithOperation("interpreter.Exec").
				WithDetail("line", s.Pos.Line)
		}
		return nil

	case *ast.Input:
		line, err := in.readLine(s.Pos)
		if err != nil {
			return err
		}
		in.env.Set(s.Target.Name, value.NewText(line))
		return nil

	case *ast.While:
		return in.execWhile(ctx, s)

	default:
		return mdwerror.Newf("unsupported statement %T", stmt).
			WithCode(mdwerror.CodeInternal).
			WithOperation("interpreter.Exec")
	}
}

func (in *Interpreter) execBlock(ctx context.Context, stmts []ast.Stmt) error {
	for _, stmt := range stmts {
		if err := in.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// execWhile re-evaluates the condition before every iteration
func (in *Interpreter) execWhile(ctx context.Context, s *ast.While) error {
	for {
		// An empty body never reaches Exec
		if err := ctx.Err(); err != nil {
			return cancelled(err, s.Pos)
		}
		cond, err := in.Eval(s.Condition)
		if err != nil {
			return err
		}
		ok, err := value.Truth(cond)
		if err != nil {
			return in.locate(err, s.Condition.Position())
		}
		if !ok {
			return nil
		}
		if err := in.execBlock(ctx, s.Body); err != nil {
			return err
		}
	}
}

// readLine writes the prompt and reads one line without its terminator
func (in *Interpreter) readLine(pos ast.Position) (string, error) {
	if _, err := io.WriteString(in.out, in.options.Prompt); err != nil {
		return "", mdwerror.Wrap(err, "write prompt").
			WithCode(mdwerror.CodeInputError).
			WithOperation("interpreter.Input").
			WithDetail("line", pos.Line)
	}

	line, err := in.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		in.logger.Debug("Input read failed", mdwlog.Err(err).Merge(mdwlog.Field("line", pos.Line)))

		message := fmt.Sprintf("read input at line %d", pos.Line)
		if errors.Is(err, io.EOF) {
			message = fmt.Sprintf("unexpected end of input at line %d", pos.Line)
		}
		return "", mdwerror.Wrap(err, message).
			WithCode(mdwerror.CodeInputError).
			WithOperation("interpreter.Input").
			WithDetail("line", pos.Line).
			WithDetail("column", pos.Column)
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// Eval computes the value of an expression. Operands are evaluated left
// before right.
func (in *Interpreter) Eval(expr ast.Expr) (value.Value, error) {
	switch e := expr.(type) {
	case *ast.Number:
		return value.NewInteger(e.Value), nil

	case *ast.StringLiteral:
		return value.NewText(e.Value), nil

	case *ast.Identifier:
		v, ok := in.env.Get(e.Name)
		if !ok {
			return value.Value{}, mdwerror.Newf("undefined variable: %s at line %d, column %d", e.Name, e.Pos.Line, e.Pos.Column).
				WithCode(mdwerror.CodeUndefinedVariable).
				WithOperation("interpreter.Eval").
				WithDetail("name", e.Name).
				WithDetail("line", e.Pos.Line).
				WithDetail("column", e.Pos.Column)
		}
		return v, nil

	case *ast.BinaryOp:
		left, err := in.Eval(e.Left)
		if err != nil {
			return value.Value{}, err
		}
		right, err := in.Eval(e.Right)
		if err != nil {
			return value.Value{}, err
		}
		result, err := apply(e.Op, left, right)
		if err != nil {
			return value.Value{}, in.locate(err, e.Pos)
		}
		return result, nil

	default:
		return value.Value{}, mdwerror.Newf("unsupported expression %T", expr).
			WithCode(mdwerror.CodeInternal).
			WithOperation("interpreter.Eval")
	}
}

// apply dispatches a binary operator to the value package
func apply(op ast.Operator, left, right value.Value) (value.Value, error) {
	switch op {
	case ast.OpPlus:
		return value.Add(left, right)
	case ast.OpMinus:
		return value.Sub(left, right)
	case ast.OpMultiply:
		return value.Mul(left, right)
	case ast.OpDivide:
		return value.Div(left, right)
	case ast.OpLess:
		return value.Less(left, right)
	case ast.OpGreater:
		return value.Greater(left, right)
	default:
		return value.Value{}, mdwerror.Newf("unknown operator %s", op).
			WithCode(mdwerror.CodeInternal).
			WithOperation("interpreter.Eval")
	}
}

func cancelled(err error, pos ast.Position) error {
	return mdwerror.Wrap(err, fmt.Sprintf("execution cancelled at line %d", pos.Line)).
		WithCode(mdwerror.CodeCancelled).
		WithOperation("interpreter.Exec").
		WithDetail("line", pos.Line)
}

// locate attaches a source position to an error raised by the value package
func (in *Interpreter) locate(err error, pos ast.Position) error {
	return mdwerror.Wrap(err, fmt.Sprintf("runtime error at line %d, column %d", pos.Line, pos.Column)).
		WithDetail("line", pos.Line).
		WithDetail("column", pos.Column)
}

// Run executes a program with a fresh interpreter and default options
func Run(ctx context.Context, program *ast.Program) error {
	return New(Options{}).Run(ctx, program)
}
