package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/sdecook/golox/internal/config"
	"github.com/sdecook/golox/internal/diagnostics"
	"github.com/sdecook/golox/internal/interp"
	"github.com/sdecook/golox/internal/runner"

	"github.com/spf13/cobra"
)

// historyFile records the configured history path for whichever future
// line-editor integration wants it; this shell does not persist history
// itself.
var historyFile string

// runPrompt drives the interactive shell: one Interpreter persists across
// every line so top-level variables, functions, and classes accumulate the
// way they would in a single script, but each line is scanned, parsed,
// resolved, and run independently. A line with a static or runtime error
// reports it and moves on to the next prompt rather than exiting. At EOF
// the exit code is the last non-empty line's outcome (0 if there was no
// such line); EOF itself adds no error.
func runPrompt(cmd *cobra.Command, cfg config.Config) int {
	i := interp.New(os.Stdout)
	scanner := bufio.NewScanner(os.Stdin)

	historyFile = cfg.HistoryFile
	prompt := cfg.Prompt
	exitCode := runner.ExitOK

	for {
		fmt.Fprint(os.Stdout, prompt)
		if !scanner.Scan() {
			break
		}

		line := scanner.Text()
		if line == "" {
			continue
		}

		r := diagnostics.NewReporter(os.Stderr)
		exitCode = runner.Run(line, i, r)
	}

	if err := scanner.Err(); err != nil && err != io.EOF {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	return exitCode
}
