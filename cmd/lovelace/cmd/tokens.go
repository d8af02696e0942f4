package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/msto63/lovelace/foundation/lovelace/lexer"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file|-]",
	Short: "Print the token stream of a script",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := readSource(cmd, args)
		if err != nil {
			return err
		}
		engine, _ := newEngine(cmd)
		tokens, err := engine.Tokenize(source)
		if err != nil {
			logger.LogError(err)
			return err
		}
		printTokens(cmd.OutOrStdout(), tokens)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

// printTokens writes one row per token: position, type and matched text
func printTokens(w io.Writer, tokens []lexer.Token) {
	fmt.Fprintln(w, render(headerStyle, fmt.Sprintf("%-9s %-12s %s", "POS", "TYPE", "VALUE")))
	for _, tok := range tokens {
		pos := fmt.Sprintf("%d:%d", tok.Line, tok.Column)
		fmt.Fprintf(w, "%s %-12s %q\n", render(mutedStyle, fmt.Sprintf("%-9s", pos)), tok.Type, tok.Value)
	}
	fmt.Fprintln(w, render(mutedStyle, fmt.Sprintf("%d token(s)", len(tokens))))
}
