package lexer_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdecook/golox/internal/diagnostics"
	"github.com/sdecook/golox/internal/lexer"
	"github.com/sdecook/golox/internal/token"
)

func scan(t *testing.T, src string) ([]token.Token, *diagnostics.Reporter) {
	t.Helper()
	var buf bytes.Buffer
	r := diagnostics.NewReporter(&buf)
	sc := lexer.New(src, r)
	return sc.ScanTokens(), r
}

func TestScanTokensPunctuationAndOperators(t *testing.T) {
	toks, r := scan(t, "(){},.-+;*!= == <= >= < >")
	require.False(t, r.HadError())

	want := []token.Type{
		token.LeftParen, token.RightParen, token.LeftBrace, token.RightBrace,
		token.Comma, token.Dot, token.Minus, token.Plus, token.Semicolon,
		token.Star, token.BangEqual, token.EqualEqual, token.LessEqual,
		token.GreaterEqual, token.Less, token.Greater, token.EOF,
	}
	require.Len(t, toks, len(want))
	for i, typ := range want {
		assert.Equal(t, typ, toks[i].Type, "token %d", i)
	}
}

func TestScanTokensKeywordsVsIdentifiers(t *testing.T) {
	toks, r := scan(t, "class fun orchid")
	require.False(t, r.HadError())
	require.Len(t, toks, 4)
	assert.Equal(t, token.Class, toks[0].Type)
	assert.Equal(t, token.Fun, toks[1].Type)
	assert.Equal(t, token.Identifier, toks[2].Type)
	assert.Equal(t, "orchid", toks[2].Lexeme)
}

func TestScanTokensStringLiteral(t *testing.T) {
	toks, r := scan(t, `"hello world"`)
	require.False(t, r.HadError())
	require.Len(t, toks, 2)
	assert.Equal(t, token.String, toks[0].Type)
	assert.Equal(t, "hello world", toks[0].Lexeme)
}

func TestScanTokensUnterminatedString(t *testing.T) {
	_, r := scan(t, `"oops`)
	assert.True(t, r.HadError())
}

func TestScanTokensNumberLiterals(t *testing.T) {
	toks, r := scan(t, "123 45.67")
	require.False(t, r.HadError())
	require.Len(t, toks, 3)
	assert.Equal(t, "123", toks[0].Lexeme)
	assert.Equal(t, "45.67", toks[1].Lexeme)
	assert.Equal(t, 45.67, lexer.ParseNumberLexeme(toks[1].Lexeme))
}

func TestScanTokensCommentsAndWhitespaceIgnored(t *testing.T) {
	toks, r := scan(t, "var x = 1; // trailing comment\n")
	require.False(t, r.HadError())
	assert.Equal(t, token.Var, toks[0].Type)
	assert.Equal(t, token.EOF, toks[len(toks)-1].Type)
}

func TestScanTokensTracksLineNumbers(t *testing.T) {
	toks, r := scan(t, "var a = 1;\nvar b = 2;")
	require.False(t, r.HadError())
	assert.Equal(t, 1, toks[0].Line)

	var bTok token.Token
	for _, tok := range toks {
		if tok.Type == token.Identifier && tok.Lexeme == "b" {
			bTok = tok
		}
	}
	assert.Equal(t, 2, bTok.Line)
}

func TestScanTokensUnexpectedCharacter(t *testing.T) {
	_, r := scan(t, "@")
	assert.True(t, r.HadError())
}
