// Command lox is the Lox language shell: a REPL when given no file, or a
// script runner when given one. It also exposes a couple of additive
// cobra subcommands (run, tokenize, version) that do not change that
// default contract.
package main

import (
	"fmt"
	"os"
)

func main() {
	os.Exit(execute())
}

func execute() int {
	if err := newRootCmd().Execute(); err != nil {
		if ce, ok := err.(*cliError); ok {
			return ce.code
		}
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return lastExitCode
}

// cliError lets a cobra RunE report a specific process exit code (cobra
// itself always treats a non-nil error as "something went wrong", not a
// particular code). Its message is empty: whatever the command had to say
// it has already written to stderr, and the root command silences cobra's
// own usage and error printing.
type cliError struct {
	code int
}

func (e *cliError) Error() string { return "" }

// lastExitCode carries the exit code set by the root command's own
// run/REPL dispatch, since cobra's RunE only distinguishes "error" from
// "no error", not which of the process's several exit statuses applies.
var lastExitCode int
