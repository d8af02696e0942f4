package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/lovelace/foundation/core/error"
)

// readSource returns the script named by args: a file path, or "-" for stdin
func readSource(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", mdwerror.Wrap(err, "failed to read script from stdin").
				WithCode(mdwerror.CodeInvalidInput).
				WithOperation("cli.readSource")
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", mdwerror.Wrap(err, "failed to read script").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("cli.readSource").
			WithDetail("path", args[0])
	}
	return string(data), nil
}
