package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sdecook/golox/internal/config"
	"github.com/sdecook/golox/internal/diagnostics"
	"github.com/sdecook/golox/internal/lexer"
	"github.com/sdecook/golox/internal/runner"
)

// newTokenizeCmd runs only the scanner over a file and prints its token
// stream, one token per line, for inspecting how source splits into
// lexemes without parsing or running it.
func newTokenizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokenize <script>",
		Short: "Print the token stream for a Lox script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load(func(msg string) { fmt.Fprintln(os.Stderr, "warning:", msg) })
			applyColorMode(cmd, cfg)

			src, err := os.ReadFile(args[0])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
				return &cliError{code: 1}
			}

			r := diagnostics.NewReporter(os.Stderr)
			sc := lexer.New(string(src), r)
			for _, tok := range sc.ScanTokens() {
				fmt.Println(tok.String())
			}

			if r.HadError() {
				return &cliError{code: runner.ExitStaticError}
			}
			return nil
		},
	}
}
