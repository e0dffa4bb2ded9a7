package resolver_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdecook/golox/internal/diagnostics"
	"github.com/sdecook/golox/internal/interp"
	"github.com/sdecook/golox/internal/lexer"
	"github.com/sdecook/golox/internal/parser"
	"github.com/sdecook/golox/internal/resolver"
)

func resolveSource(t *testing.T, src string) *diagnostics.Reporter {
	t.Helper()
	var buf bytes.Buffer
	r := diagnostics.NewReporter(&buf)
	toks := lexer.New(src, r).ScanTokens()
	stmts := parser.New(toks, r).Parse()
	require.False(t, r.HadError(), "unexpected parse error")

	i := interp.New(io.Discard)
	resolver.New(i, r).Resolve(stmts)
	return r
}

func TestResolverAllowsValidProgram(t *testing.T) {
	r := resolveSource(t, `
		var a = 1;
		{
			var b = a + 1;
			print b;
		}
		fun f(x) { return x; }
		print f(2);
	`)
	assert.False(t, r.HadError())
}

func TestResolverRejectsOwnInitializerRead(t *testing.T) {
	r := resolveSource(t, `{ var a = a; }`)
	assert.True(t, r.HadError())
}

func TestResolverRejectsTopLevelReturn(t *testing.T) {
	r := resolveSource(t, `return 1;`)
	assert.True(t, r.HadError())
}

func TestResolverRejectsReturnValueFromInitializer(t *testing.T) {
	r := resolveSource(t, `
		class A {
			init() { return 1; }
		}
	`)
	assert.True(t, r.HadError())
}

func TestResolverRejectsThisOutsideClass(t *testing.T) {
	r := resolveSource(t, `print this;`)
	assert.True(t, r.HadError())
}

func TestResolverRejectsSuperWithoutSuperclass(t *testing.T) {
	r := resolveSource(t, `
		class A {
			f() { return super.f(); }
		}
	`)
	assert.True(t, r.HadError())
}

func TestResolverRejectsSelfInheritance(t *testing.T) {
	r := resolveSource(t, `class A < A {}`)
	assert.True(t, r.HadError())
}

func TestResolverRejectsDuplicateLocalDeclaration(t *testing.T) {
	r := resolveSource(t, `
		fun f() {
			var a = 1;
			var a = 2;
		}
	`)
	assert.True(t, r.HadError())
}
