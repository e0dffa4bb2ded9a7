package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sdecook/golox/internal/config"
)

// newRunCmd exposes the default file-execution behavior as an explicit
// subcommand, for scripts that would rather spell out "lox run foo.lox"
// than rely on positional-argument dispatch.
func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <script>",
		Short: "Run a Lox script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load(func(msg string) { fmt.Fprintln(os.Stderr, "warning:", msg) })
			applyColorMode(cmd, cfg)
			lastExitCode = runFile(cmd, args[0])
			return exitErrOrNil(lastExitCode)
		},
	}
}
