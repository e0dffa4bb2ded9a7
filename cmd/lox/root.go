package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sdecook/golox/internal/config"
	"github.com/sdecook/golox/internal/diagnostics"
	"github.com/sdecook/golox/internal/interp"
	"github.com/sdecook/golox/internal/runner"
)

var colorFlag string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "lox [script]",
		Short: "A tree-walking interpreter for the Lox language",
		Long: `lox is a tree-walking interpreter for Lox, a small dynamically typed
scripting language with first-class functions, lexical closures, and
single-inheritance classes.

Run with no arguments to start an interactive prompt, or pass a single
script path to execute it.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRoot,
	}

	root.PersistentFlags().StringVar(&colorFlag, "color", "", "colorize diagnostics: auto, always, never")
	root.PersistentFlags().Bool("no-color", false, "disable colorized diagnostics (shorthand for --color=never)")
	root.PersistentFlags().BoolP("verbose", "v", false, "print a timing note for file runs, on stderr")

	root.AddCommand(newTokenizeCmd())
	root.AddCommand(newRunCmd())
	root.AddCommand(newVersionCmd())

	return root
}

func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		fmt.Fprintln(os.Stderr, "Usage: lox [script]")
		lastExitCode = runner.ExitUsage
		return &cliError{code: runner.ExitUsage}
	}

	cfg := config.Load(func(msg string) { fmt.Fprintln(os.Stderr, "warning:", msg) })
	applyColorMode(cmd, cfg)

	if len(args) == 1 {
		lastExitCode = runFile(cmd, args[0])
		return exitErrOrNil(lastExitCode)
	}

	lastExitCode = runPrompt(cmd, cfg)
	return exitErrOrNil(lastExitCode)
}

func exitErrOrNil(code int) error {
	if code == runner.ExitOK {
		return nil
	}
	return &cliError{code: code}
}

// applyColorMode resolves --color/--no-color against the loaded config and
// sets the process-wide color.NoColor switch fatih/color consults, before
// any diagnostics.Reporter is constructed.
func applyColorMode(cmd *cobra.Command, cfg config.Config) {
	mode := config.ColorMode(colorFlag)
	if mode == "" {
		mode = cfg.Color
	}
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		mode = config.ColorNever
	}

	switch mode {
	case config.ColorAlways:
		color.NoColor = false
	case config.ColorNever:
		color.NoColor = true
	default:
		// auto: leave fatih/color's own go-isatty based default in place.
	}
}

func runFile(cmd *cobra.Command, path string) int {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		return 1
	}

	r := diagnostics.NewReporter(os.Stderr)
	i := interp.New(os.Stdout)

	start := time.Now()
	code := runner.Run(string(src), i, r)
	elapsed := time.Since(start)

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		fmt.Fprintf(os.Stderr, "ran %s in %s (exit %d)\n", path, elapsed, code)
	}

	return code
}
