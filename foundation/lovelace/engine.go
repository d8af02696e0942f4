// File: engine.go
// Title: Lovelace High-Level Engine Interface
// Description: Provides a high-level interface that wires lexer, parser and
//              interpreter into one pipeline. Every run is tagged with a
//              run id that appears in log entries and returned errors.
//              Parsed programs can be memoized through a ProgramCache.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-07
// Modified: 2025-02-07
//
// Change History:
// - 2025-02-07 v0.1.0: Initial engine implementation

package lovelace

import (
	"bufio"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	mdwerror "github.com/msto63/lovelace/foundation/core/error"
	mdwlog "github.com/msto63/lovelace/foundation/core/log"
	"github.com/msto63/lovelace/foundation/lovelace/ast"
	"github.com/msto63/lovelace/foundation/lovelace/interpreter"
	"github.com/msto63/lovelace/foundation/lovelace/lexer"
	"github.com/msto63/lovelace/foundation/lovelace/parser"
)

// Engine provides a simplified interface to the Lovelace pipeline
type Engine struct {
	stdin   *bufio.Reader
	logger  *mdwlog.Logger
	options Options
}

// Options configures the engine
type Options struct {
	Logger         *mdwlog.Logger
	Stdin          io.Reader // Defaults to os.Stdin
	Stdout         io.Writer // Defaults to os.Stdout
	Prompt         string    // Defaults to interpreter.DefaultPrompt
	MaxSourceBytes int       // Zero means unlimited
	MaxTokens      int       // Zero means unlimited
	Cache          ProgramCache
}

// ProgramCache stores parsed programs keyed by a hex SHA-256 of their
// source. GetOrSet returns the cached program or calls parse and stores a
// successful result. Programs are never mutated after parsing, so entries
// may be shared between runs.
type ProgramCache interface {
	GetOrSet(key string, parse func() (*ast.Program, error)) (*ast.Program, error)
}

// Result describes a completed or aborted run
type Result struct {
	RunID    string
	Program  *ast.Program            // Nil when lexing or parsing failed
	Env      *interpreter.Environment // Nil when execution never started
	Steps    int64
	Duration time.Duration
}

// New creates a new Lovelace engine
func New(opts Options) *Engine {
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
		opts.Prompt = interpreter.DefaultPrompt
	}

	logger := opts.Logger.WithField("component", "lovelace-engine")

	logger.Debug("Lovelace engine initialized", mdwlog.Fields{
		"maxSourceBytes": opts.MaxSourceBytes,
		"maxTokens":      opts.MaxTokens,
		"cache":          opts.Cache != nil,
	})

	// One reader for the engine's lifetime so consecutive runs do not lose
	// buffered input.
	return &Engine{
		stdin:   bufio.NewReader(opts.Stdin),
		logger:  logger,
		options: opts,
	}
}

// Tokenize runs the lexer on source
func (e *Engine) Tokenize(source string) ([]lexer.Token, error) {
	return e.tokenize(e.logger, source)
}

// Parse tokenizes and parses source without executing it
func (e *Engine) Parse(source string) (*ast.Program, error) {
	return e.parse(e.logger, source)
}

// Validate reports whether source is lexically and syntactically valid
func (e *Engine) Validate(source string) error {
	_, err := e.Parse(source)
	return err
}

// Run parses and executes source. A lexical or syntax error prevents any
// execution. The returned Result is never nil.
func (e *Engine) Run(ctx context.Context, source string) (*Result, error) {
	result := &Result{RunID: uuid.NewString()}
	logger := e.logger.WithRunID(result.RunID)
	start := time.Now()

	program, err := e.parse(logger, source)
	if err != nil {
		result.Duration = time.Since(start)
		return result, tagRun(err, result.RunID)
	}
	result.Program = program

	err = e.execute(ctx, logger, program, result)
	result.Duration = time.Since(start)
	return result, err
}

// RunProgram executes an already parsed program
func (e *Engine) RunProgram(ctx context.Context, program *ast.Program) (*Result, error) {
	result := &Result{RunID: uuid.NewString(), Program: program}
	logger := e.logger.WithRunID(result.RunID)
	start := time.Now()

	err := e.execute(ctx, logger, program, result)
	result.Duration = time.Since(start)
	return result, err
}

func (e *Engine) tokenize(logger *mdwlog.Logger, source string) ([]lexer.Token, error) {
	if e.options.MaxSourceBytes > 0 && len(source) > e.options.MaxSourceBytes {
		return nil, mdwerror.Newf("source exceeds maximum size: %d > %d bytes", len(source), e.options.MaxSourceBytes).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("lovelace.Tokenize").
			WithDetail("bytes", len(source)).
			WithDetail("max_bytes", e.options.MaxSourceBytes)
	}

	timer := logger.StartTimer("lex").WithField("bytes", len(source))
	tokens, err := lexer.New(source, lexer.Options{Logger: logger}).Tokenize()
	if err != nil {
		timer.StopWithError(err)
		return nil, err
	}
	timer.WithField("tokens", len(tokens)).Stop()
	return tokens, nil
}

func (e *Engine) parse(logger *mdwlog.Logger, source string) (*ast.Program, error) {
	if e.options.Cache == nil {
		return e.parseSource(logger, source)
	}

	hash := sha256.Sum256([]byte(source))
	parsed := false
	program, err := e.options.Cache.GetOrSet(hex.EncodeToString(hash[:]), func() (*ast.Program, error) {
		parsed = true
		return e.parseSource(logger, source)
	})
	if err == nil && !parsed {
		logger.Debug("parse cache hit", mdwlog.Fields{"statements": len(program.Statements)})
	}
	return program, err
}

func (e *Engine) parseSource(logger *mdwlog.Logger, source string) (*ast.Program, error) {
	tokens, err := e.tokenize(logger, source)
	if err != nil {
		return nil, err
	}

	timer := logger.StartTimer("parse")
	p := parser.New(parser.Options{Logger: logger, MaxTokens: e.options.MaxTokens})
	program, err := p.Parse(tokens)
	if err != nil {
		timer.StopWithError(err)
		return nil, err
	}
	timer.WithField("statements", len(program.Statements)).Stop()
	return program, nil
}

func (e *Engine) execute(ctx context.Context, logger *mdwlog.Logger, program *ast.Program, result *Result) error {
	interp := interpreter.New(interpreter.Options{
		Logger: logger,
		Stdin:  e.stdin,
		Stdout: e.options.Stdout,
		Prompt: e.options.Prompt,
	})
	result.Env = interp.Env()

	timer := logger.StartTimer("execute")
	err := interp.Run(ctx, program)
	result.Steps = interp.Steps()
	if err != nil {
		timer.WithField("steps", result.Steps).StopWithError(err)
		return tagRun(err, result.RunID)
	}
	timer.WithField("steps", result.Steps).Stop()
	return nil
}

// tagRun records the run id on a structured error
func tagRun(err error, runID string) error {
	var mdwErr *mdwerror.Error
	if errors.As(err, &mdwErr) {
		mdwErr.WithRunID(runID)
	}
	return err
}
