package interp_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/require"

	"github.com/sdecook/golox/internal/diagnostics"
	"github.com/sdecook/golox/internal/interp"
	"github.com/sdecook/golox/internal/lexer"
	"github.com/sdecook/golox/internal/parser"
	"github.com/sdecook/golox/internal/resolver"
)

// TestFixtures runs every .lox program under testdata/ end to end and
// snapshots its stdout, so a change to print/display formatting or
// control-flow evaluation shows up as a diff against the last approved
// snapshot instead of a silent behavior change.
func TestFixtures(t *testing.T) {
	files, err := filepath.Glob("../../testdata/*.lox")
	require.NoError(t, err)
	require.NotEmpty(t, files, "expected at least one fixture under testdata/")

	for _, path := range files {
		name := filepath.Base(path)
		t.Run(name, func(t *testing.T) {
			src, err := os.ReadFile(path)
			require.NoError(t, err)

			var errs bytes.Buffer
			r := diagnostics.NewReporter(&errs)
			toks := lexer.New(string(src), r).ScanTokens()
			stmts := parser.New(toks, r).Parse()
			require.False(t, r.HadError(), "parse errors in %s: %s", name, errs.String())

			var out bytes.Buffer
			i := interp.New(&out)

			resolver.New(i, r).Resolve(stmts)
			require.False(t, r.HadError(), "resolve errors in %s: %s", name, errs.String())

			require.NoError(t, i.Interpret(stmts), "runtime error in %s", name)

			snaps.MatchSnapshot(t, out.String())
		})
	}
}

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}
