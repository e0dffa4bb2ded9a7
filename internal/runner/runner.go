// Package runner wires the scanner, parser, resolver, and interpreter
// into a single pipeline: each stage's had-error bit short-circuits the
// next, and the whole thing reports through one diagnostics.Reporter.
package runner

import (
	"github.com/sdecook/golox/internal/diagnostics"
	"github.com/sdecook/golox/internal/interp"
	"github.com/sdecook/golox/internal/lexer"
	"github.com/sdecook/golox/internal/parser"
	"github.com/sdecook/golox/internal/resolver"
)

// Process exit codes, matching the conventions of Unix sysexits.h.
const (
	ExitOK           = 0
	ExitUsage        = 64
	ExitStaticError  = 65
	ExitRuntimeError = 70
)

// Run executes source through the full pipeline against the given
// Interpreter (so the REPL can reuse one Interpreter, and its globals,
// across many calls to Run) and reports through r. It returns the process
// exit code the CLI should use for this run.
func Run(source string, i *interp.Interpreter, r *diagnostics.Reporter) int {
	sc := lexer.New(source, r)
	tokens := sc.ScanTokens()
	if r.HadError() {
		return ExitStaticError
	}

	p := parser.New(tokens, r)
	stmts := p.Parse()
	if r.HadError() {
		return ExitStaticError
	}

	res := resolver.New(i, r)
	res.Resolve(stmts)
	if r.HadError() {
		return ExitStaticError
	}

	if err := i.Interpret(stmts); err != nil {
		if rerr, ok := err.(*interp.RuntimeError); ok {
			r.RuntimeError(rerr.Token, rerr.Msg)
			return ExitRuntimeError
		}
		// A returnSignal escaping every function call means a resolver
		// invariant was violated (top-level return should have been
		// caught statically); treat it the same as any other failure to
		// interpret rather than panicking the host process.
		r.RuntimeError(tokens[len(tokens)-1], err.Error())
		return ExitRuntimeError
	}

	return ExitOK
}
