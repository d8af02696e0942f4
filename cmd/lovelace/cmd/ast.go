package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	mdwlog "github.com/msto63/lovelace/foundation/core/log"
	"github.com/msto63/lovelace/foundation/lovelace/ast"
)

var astFormat string

var astCmd = &cobra.Command{
	Use:   "ast [file|-]",
	Short: "Print the syntax tree of a script",
	Long: `Parse a script and print its syntax tree without running it.

Formats:
  text  - indented tree, one node per line
  yaml  - nested mapping, suitable for tooling`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAST,
}

func init() {
	astCmd.Flags().StringVarP(&astFormat, "format", "f", "text", "Output format (text, yaml)")
	rootCmd.AddCommand(astCmd)
}

func runAST(cmd *cobra.Command, args []string) error {
	source, err := readSource(cmd, args)
	if err != nil {
		return err
	}
	engine, _ := newEngine(cmd)
	program, err := engine.Parse(source)
	if err != nil {
		logger.LogError(err)
		return err
	}

	out := cmd.OutOrStdout()
	switch strings.ToLower(astFormat) {
	case "text":
		fmt.Fprint(out, ast.Dump(program))
	case "yaml":
		data, err := yaml.Marshal(ast.ToMap(program))
		if err != nil {
			logger.ErrorWithErr("AST encoding failed", err, mdwlog.Field("format", astFormat))
			return fmt.Errorf("failed to encode AST: %w", err)
		}
		fmt.Fprint(out, string(data))
	default:
		return fmt.Errorf("unknown format %q (use text or yaml)", astFormat)
	}

	if names := ast.Identifiers(program); len(names) > 0 {
		logger.Debug("Variables referenced: " + strings.Join(names, ", "))
	}
	return nil
}
