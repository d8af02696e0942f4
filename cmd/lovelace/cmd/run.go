package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/lovelace/foundation/core/log"
	"github.com/msto63/lovelace/foundation/lovelace"
	"github.com/msto63/lovelace/foundation/lovelace/ast"
	"github.com/msto63/lovelace/pkg/core/cache"
)

var (
	evalSource string
	dumpTokens bool
	dumpAST    bool
	runTimeout time.Duration
)

var runCmd = &cobra.Command{
	Use:   "run [file|-]",
	Short: "Execute a script",
	Long: `Execute a Lovelace script from a file, from stdin ("-") or inline via --eval.

A lexical or syntax error stops the script before any statement runs.
Runtime errors stop execution at the failing statement; output already
printed stays printed.`,
	Example: `  lovelace run examples/count.lv
  lovelace run -e 'x = 0; while (x < 3) { print x; x = x + 1 }'
  echo 'print 7 / 2' | lovelace run -`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	runCmd.Flags().StringVarP(&evalSource, "eval", "e", "", "Run inline source instead of a file")
	runCmd.Flags().BoolVar(&dumpTokens, "dump-tokens", false, "Print the token stream before running")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "Print the syntax tree before running")
	runCmd.Flags().DurationVar(&runTimeout, "timeout", 0, "Abort the script after this duration (0 = no limit)")
	rootCmd.AddCommand(runCmd)
}

func runScript(cmd *cobra.Command, args []string) error {
	source := evalSource
	if !cmd.Flags().Changed("eval") {
		if len(args) == 0 {
			return fmt.Errorf("no script given, pass a file, - or --eval")
		}
		var err error
		if source, err = readSource(cmd, args); err != nil {
			return err
		}
	}

	engine, programs := newEngine(cmd)

	if dumpTokens || cfg.Interpreter.DumpTokens {
		tokens, err := engine.Tokenize(source)
		if err != nil {
			return err
		}
		printTokens(cmd.OutOrStdout(), tokens)
	}
	if dumpAST || cfg.Interpreter.DumpAST {
		program, err := engine.Parse(source)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), render(headerStyle, "AST"))
		fmt.Fprint(cmd.OutOrStdout(), ast.Dump(program))
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	timeout := cfg.Interpreter.Timeout.Duration
	if cmd.Flags().Changed("timeout") {
		timeout = runTimeout
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	result, err := engine.Run(ctx, source)
	if err != nil {
		// Script mistakes are reported by printError; the warning only
		// shows up with --verbose or a lowered log level.
		logger.WarnWithErr("Script failed", err, mdwlog.Field("run_id", result.RunID))
		return err
	}
	hits, misses, _ := programs.Stats()
	logger.Debug("Script finished", mdwlog.Fields{
		"run_id":       result.RunID,
		"steps":        result.Steps,
		"duration":     result.Duration,
		"cache_hits":   hits,
		"cache_misses": misses,
		"cached":       programs.Size(),
	})
	return nil
}

// newEngine builds an engine from the loaded configuration. The program
// cache lets --dump-ast and the run itself share one parse.
func newEngine(cmd *cobra.Command) (*lovelace.Engine, *cache.Cache[*ast.Program]) {
	programs := cache.New[*ast.Program](cache.DefaultConfig())
	return lovelace.New(lovelace.Options{
		Logger:         logger,
		Stdin:          cmd.InOrStdin(),
		Stdout:         cmd.OutOrStdout(),
		Prompt:         cfg.Interpreter.Prompt,
		MaxSourceBytes: cfg.Interpreter.MaxSourceBytes,
		MaxTokens:      cfg.Interpreter.MaxTokens,
		Cache:          programs,
	}), programs
}
