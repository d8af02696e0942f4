package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/lovelace/pkg/core/version"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		info := version.Get()
		out := cmd.OutOrStdout()
		if versionShort {
			fmt.Fprintln(out, info.Version)
			return
		}
		fmt.Fprintf(out, "%s v%s\n", render(headerStyle, "Lovelace"), info.Version)
		fmt.Fprintf(out, "  Git Commit:  %s\n", info.GitCommit)
		fmt.Fprintf(out, "  Build Date:  %s\n", info.BuildDate)
		fmt.Fprintf(out, "  Go Version:  %s\n", info.GoVersion)
		fmt.Fprintf(out, "  OS/Arch:     %s\n", info.Platform)
		fmt.Fprintf(out, "  Interpreter: %s\n", version.ComponentVersion("interpreter"))
	},
}

func init() {
	versionCmd.Flags().BoolVarP(&versionShort, "short", "s", false, "Print only the version number")
	rootCmd.AddCommand(versionCmd)
}
