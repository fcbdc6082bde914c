package scanner

import (
	"testing"

	"github.com/ringneck-lang/ringneck/internal/errsink"
	"github.com/ringneck-lang/ringneck/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scan(t *testing.T, source string) ([]token.Token, *errsink.Sink) {
	t.Helper()
	sink := errsink.New()
	toks := New(source, sink).ScanTokens()
	return toks, sink
}

func TestScanTokensAlwaysEndsWithEOF(t *testing.T) {
	cases := []string{"", "1 + 2", "a = 1\nb = 2", "   ", "# comment only"}
	for _, c := range cases {
		toks, _ := scan(t, c)
		require.NotEmpty(t, toks)
		assert.Equal(t, token.EOF, toks[len(toks)-1].Kind)
	}
}

func TestScanArithmeticExpression(t *testing.T) {
	toks, sink := scan(t, "1 + 2")
	require.False(t, sink.HadError())
	kinds := kindsOf(toks)
	assert.Equal(t, []token.Kind{token.NUMBER, token.PLUS, token.NUMBER, token.EOF}, kinds)
}

func TestScanSuppressesLeadingAndCollapsesNewlines(t *testing.T) {
	toks, _ := scan(t, "\na = 1\n\n\nb = 2")
	kinds := kindsOf(toks)
	count := 0
	for _, k := range kinds {
		if k == token.EOL {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestScanIdentifierAbsorbsTrailingDots(t *testing.T) {
	toks, _ := scan(t, "$.foo.bar")
	require.Len(t, toks, 2)
	assert.Equal(t, token.IDENTIFIER, toks[0].Kind)
	assert.Equal(t, "$.foo.bar", toks[0].Lexeme)
}

func TestScanBroadcastPrefixStopsBeforeBracket(t *testing.T) {
	toks, _ := scan(t, `a.["x", "y"]`)
	require.GreaterOrEqual(t, len(toks), 2)
	assert.Equal(t, token.IDENTIFIER, toks[0].Kind)
	assert.Equal(t, "a.", toks[0].Lexeme)
	assert.Equal(t, token.LEFT_BRACKET, toks[1].Kind)
}

func TestScanKeywords(t *testing.T) {
	toks, _ := scan(t, "if else and or not True False")
	kinds := kindsOf(toks)
	assert.Equal(t, []token.Kind{
		token.IF, token.ELSE, token.AND, token.OR, token.NOT, token.TRUE, token.FALSE, token.EOF,
	}, kinds)
}

func TestScanTwoCharOperators(t *testing.T) {
	toks, _ := scan(t, "<= >= == != ?=")
	kinds := kindsOf(toks)
	assert.Equal(t, []token.Kind{
		token.LESS_EQUAL, token.GREATER_EQUAL, token.EQUAL_EQUAL, token.BANG_EQUAL, token.MAYBE_EQUAL, token.EOF,
	}, kinds)
}

func TestScanStringAndNumberLiterals(t *testing.T) {
	toks, _ := scan(t, `"bar" 3 3.5`)
	require.Len(t, toks, 4)
	assert.Equal(t, "bar", toks[0].Literal)
	assert.Equal(t, int64(3), toks[1].Literal)
	assert.Equal(t, 3.5, toks[2].Literal)
}

func TestScanCommentRunsToNewline(t *testing.T) {
	toks, sink := scan(t, "a = 1\n# comment\nb = 2")
	require.False(t, sink.HadError())
	kinds := kindsOf(toks)
	eolCount := 0
	for _, k := range kinds {
		if k == token.EOL {
			eolCount++
		}
	}
	assert.Equal(t, 2, eolCount)
}

func TestScanUnknownCharacterReportsAndSkips(t *testing.T) {
	toks, sink := scan(t, "a = 1 ~ 2")
	assert.True(t, sink.HadError())
	assert.Equal(t, token.EOF, toks[len(toks)-1].Kind)
}

func kindsOf(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}
