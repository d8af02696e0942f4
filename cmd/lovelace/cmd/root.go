package cmd

import (
	"os"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/lovelace/foundation/core/log"
	"github.com/msto63/lovelace/pkg/core/config"
	"github.com/msto63/lovelace/pkg/core/logging"
)

var (
	cfgFile string
	verbose bool
	noColor bool

	cfg    *config.Config
	logger *mdwlog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "lovelace",
	Short: "Lovelace - a tiny scripting language",
	Long: `Lovelace runs scripts written in a small imperative language with
variables, arithmetic, comparisons, while loops and console I/O.

Commands:
  run      - Execute a script file, stdin or inline source
  tokens   - Print the token stream of a script
  ast      - Print the syntax tree of a script
  version  - Print version information`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command and renders any error on stderr
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(os.Stderr, err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: $"+config.EnvVar+" or ./lovelace.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output (debug logging)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

// setup loads the configuration and builds the logger shared by all commands
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return err
	}
	cfg = loaded

	if cfg.Interpreter.NoColor {
		noColor = true
	}

	logger = logging.NewLogger(logging.LoggerConfig{
		Name:   cfg.General.Name,
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cmd.ErrOrStderr(),
	}).WithFields(mdwlog.Fields{
		"environment": cfg.General.Environment,
		"command":     cmd.Name(),
	})

	if verbose {
		logger = logger.WithLevel(mdwlog.LevelDebug)
	}
	mdwlog.SetDefault(logger)

	logger.Debug("Configuration loaded", mdwlog.Fields{"config": cfgFile})
	return nil
}
