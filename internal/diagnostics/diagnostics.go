// Package diagnostics centralizes the had-error bits and the stderr
// message formatting shared by the scanner, parser, resolver, and
// interpreter. Every stage reports through a Reporter instead of calling
// os.Exit itself, so a pass can collect every error it finds before the
// pipeline halts — needed for panic-mode recovery in the parser and for
// the resolver to surface more than the first static-semantics
// violation.
package diagnostics

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/sdecook/golox/internal/token"
)

// Reporter accumulates the compile-error and runtime-error bits and
// formats diagnostics to an io.Writer (ordinarily os.Stderr).
type Reporter struct {
	out           io.Writer
	hadError      bool
	hadRuntimeErr bool
	compileColor  *color.Color
	runtimeColor  *color.Color
}

// NewReporter builds a Reporter writing to out. Colorized output is left
// to the caller's color.NoColor setting (cmd/lox sets it from its flags
// and internal/config before constructing the Reporter).
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{
		out:          out,
		compileColor: color.New(color.FgRed),
		runtimeColor: color.New(color.FgRed, color.Bold),
	}
}

// HadError reports whether any compile-time (scan/parse/resolve) error was
// reported since construction or the last Reset.
func (r *Reporter) HadError() bool { return r.hadError }

// HadRuntimeError reports whether RuntimeError has been called.
func (r *Reporter) HadRuntimeError() bool { return r.hadRuntimeErr }

// Reset clears both bits, so one Reporter can be reused after an error.
// (The REPL gets the same effect by building a fresh Reporter per line.)
func (r *Reporter) Reset() {
	r.hadError = false
	r.hadRuntimeErr = false
}

// Error reports a scan-time error with no token context, e.g. an
// unterminated string or unexpected character.
func (r *Reporter) Error(line int, msg string) {
	r.report(line, "", msg)
}

// ErrorAt reports a parse/resolve-time error located at tok, formatting
// "at end" for the Eof token and "at '<lexeme>'" otherwise.
func (r *Reporter) ErrorAt(tok token.Token, msg string) {
	if tok.Type == token.EOF {
		r.report(tok.Line, " at end", msg)
	} else {
		r.report(tok.Line, fmt.Sprintf(" at '%s'", tok.Lexeme), msg)
	}
}

func (r *Reporter) report(line int, where, msg string) {
	r.hadError = true
	line_ := fmt.Sprintf("[line %d] Error%s: %s", line, where, msg)
	fmt.Fprintln(r.out, r.compileColor.Sprint(line_))
}

// RuntimeError reports a runtime error with the offending token's line,
// formatted as "<msg>\n[line N]".
func (r *Reporter) RuntimeError(tok token.Token, msg string) {
	r.hadRuntimeErr = true
	fmt.Fprintln(r.out, r.runtimeColor.Sprintf("%s\n[line %d]", msg, tok.Line))
}
