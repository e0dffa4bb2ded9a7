package interp_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdecook/golox/internal/diagnostics"
	"github.com/sdecook/golox/internal/interp"
	"github.com/sdecook/golox/internal/lexer"
	"github.com/sdecook/golox/internal/parser"
	"github.com/sdecook/golox/internal/resolver"
)

// run drives one program through the full scan/parse/resolve/interpret
// pipeline and returns stdout plus any runtime error.
func run(t *testing.T, src string) (string, error) {
	t.Helper()
	var errs bytes.Buffer
	r := diagnostics.NewReporter(&errs)
	toks := lexer.New(src, r).ScanTokens()
	stmts := parser.New(toks, r).Parse()
	require.False(t, r.HadError(), "parse errors: %s", errs.String())

	var out bytes.Buffer
	i := interp.New(&out)

	res := resolver.New(i, r)
	res.Resolve(stmts)
	require.False(t, r.HadError(), "resolve errors: %s", errs.String())

	err := i.Interpret(stmts)
	return out.String(), err
}

func TestInterpretArithmeticAndPrint(t *testing.T) {
	out, err := run(t, `print 1 + 2 * 3;`)
	require.NoError(t, err)
	assert.Equal(t, "7\n", out)
}

func TestInterpretStringConcatenation(t *testing.T) {
	out, err := run(t, `print "foo" + "bar";`)
	require.NoError(t, err)
	assert.Equal(t, "foobar\n", out)
}

func TestInterpretNumberStringMismatchIsRuntimeError(t *testing.T) {
	_, err := run(t, `print "a" + 1;`)
	require.Error(t, err)
	rerr, ok := err.(*interp.RuntimeError)
	require.True(t, ok)
	assert.Equal(t, "Operands must be two numbers or two strings.", rerr.Msg)
}

func TestInterpretClosureCapturesByReference(t *testing.T) {
	out, err := run(t, `
		fun makeCounter() {
			var i = 0;
			fun count() {
				i = i + 1;
				print i;
			}
			return count;
		}
		var counter = makeCounter();
		counter();
		counter();
	`)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n", out)
}

func TestInterpretBlockScopingShadowsOuter(t *testing.T) {
	out, err := run(t, `
		var a = "outer";
		{
			var a = "inner";
			print a;
		}
		print a;
	`)
	require.NoError(t, err)
	assert.Equal(t, "inner\nouter\n", out)
}

func TestInterpretInstanceEqualityIsByIdentity(t *testing.T) {
	out, err := run(t, `
		class Thing {}
		var a = Thing();
		var b = Thing();
		print a == b;
		print a == a;
	`)
	require.NoError(t, err)
	assert.Equal(t, "false\ntrue\n", out)
}

func TestInterpretClassMethodAndThis(t *testing.T) {
	out, err := run(t, `
		class Bagel {
			init(size) {
				this.size = size;
			}
			crunch() {
				print "crunching a " + this.size + " bagel";
			}
		}
		var b = Bagel("sesame");
		b.crunch();
	`)
	require.NoError(t, err)
	assert.Equal(t, "crunching a sesame bagel\n", out)
}

func TestInterpretInheritanceAndSuper(t *testing.T) {
	out, err := run(t, `
		class A {
			f() {
				print "A.f";
			}
		}
		class B < A {
			f() {
				super.f();
				print "B.f";
			}
		}
		B().f();
	`)
	require.NoError(t, err)
	assert.Equal(t, "A.f\nB.f\n", out)
}

func TestInterpretUndefinedVariableIsRuntimeError(t *testing.T) {
	_, err := run(t, `print missing;`)
	require.Error(t, err)
	rerr, ok := err.(*interp.RuntimeError)
	require.True(t, ok)
	assert.Equal(t, "Undefined variable 'missing'.", rerr.Msg)
}

func TestInterpretCallingNonCallableIsRuntimeError(t *testing.T) {
	_, err := run(t, `
		var x = 1;
		x();
	`)
	require.Error(t, err)
	rerr, ok := err.(*interp.RuntimeError)
	require.True(t, ok)
	assert.Equal(t, "Can only call functions and classes.", rerr.Msg)
}

func TestInterpretArityMismatchIsRuntimeError(t *testing.T) {
	_, err := run(t, `
		fun f(a, b) { return a + b; }
		f(1);
	`)
	require.Error(t, err)
	rerr, ok := err.(*interp.RuntimeError)
	require.True(t, ok)
	assert.Equal(t, "Expected 2 arguments but got 1.", rerr.Msg)
}

func TestInterpretNumberStringificationTrimsTrailingZero(t *testing.T) {
	out, err := run(t, `print 3.0; print 3.5;`)
	require.NoError(t, err)
	assert.Equal(t, "3\n3.5\n", out)
}
