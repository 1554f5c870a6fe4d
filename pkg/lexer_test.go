package brio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.brio.dev/internal/test"
)

// stripLocations drops token locations so case tables stay readable.
func stripLocations(toks []Token) []Token {
	if toks == nil {
		return nil
	}

	out := make([]Token, len(toks))
	for i, t := range toks {
		t.Loc = nil
		out[i] = t
	}

	return out
}

func TestLexer(t *testing.T) {
	cases := []struct {
		data   string
		fail   bool
		expect []Token
	}{
		{
			"x = 5; x;",
			false,
			[]Token{
				{TokenIdentifier, "x", nil},
				{TokenAssign, "=", nil},
				{TokenNumber, "5", nil},
				{TokenSemicolon, ";", nil},
				{TokenIdentifier, "x", nil},
				{TokenSemicolon, ";", nil},
			},
		},
		{
			"while (x < 10) x = x + 1;",
			false,
			[]Token{
				{TokenWhile, "while", nil},
				{TokenOpenParentheses, "(", nil},
				{TokenIdentifier, "x", nil},
				{TokenLess, "<", nil},
				{TokenNumber, "10", nil},
				{TokenCloseParentheses, ")", nil},
				{TokenIdentifier, "x", nil},
				{TokenAssign, "=", nil},
				{TokenIdentifier, "x", nil},
				{TokenPlus, "+", nil},
				{TokenNumber, "1", nil},
				{TokenSemicolon, ";", nil},
			},
		},
		{
			"a == b != true",
			false,
			[]Token{
				{TokenIdentifier, "a", nil},
				{TokenEquals, "==", nil},
				{TokenIdentifier, "b", nil},
				{TokenNotEquals, "!=", nil},
				{TokenBool, "true", nil},
			},
		},
		{
			"!done && flag || x > 1.5",
			false,
			[]Token{
				{TokenNot, "!", nil},
				{TokenIdentifier, "done", nil},
				{TokenAnd, "&&", nil},
				{TokenIdentifier, "flag", nil},
				{TokenOr, "||", nil},
				{TokenIdentifier, "x", nil},
				{TokenGreater, ">", nil},
				{TokenNumber, "1.5", nil},
			},
		},
		{
			"min(5, 10)",
			false,
			[]Token{
				{TokenIdentifier, "min", nil},
				{TokenOpenParentheses, "(", nil},
				{TokenNumber, "5", nil},
				{TokenComma, ",", nil},
				{TokenNumber, "10", nil},
				{TokenCloseParentheses, ")", nil},
			},
		},
		{
			"if (x) {} else {}",
			false,
			[]Token{
				{TokenIf, "if", nil},
				{TokenOpenParentheses, "(", nil},
				{TokenIdentifier, "x", nil},
				{TokenCloseParentheses, ")", nil},
				{TokenOpenCurly, "{", nil},
				{TokenCloseCurly, "}", nil},
				{TokenElse, "else", nil},
				{TokenOpenCurly, "{", nil},
				{TokenCloseCurly, "}", nil},
			},
		},
		{
			"únicódeShouldBeVàlid = 1",
			false,
			[]Token{
				{TokenIdentifier, "únicódeShouldBeVàlid", nil},
				{TokenAssign, "=", nil},
				{TokenNumber, "1", nil},
			},
		},
		{
			"x1 = -2.25",
			false,
			[]Token{
				{TokenIdentifier, "x1", nil},
				{TokenAssign, "=", nil},
				{TokenMinus, "-", nil},
				{TokenNumber, "2.25", nil},
			},
		},
		{
			"",
			false,
			nil,
		},
		{
			"1.2.3",
			true,
			nil,
		},
		{
			".5",
			true,
			nil,
		},
		{
			"5.",
			true,
			nil,
		},
		{
			"@",
			true,
			nil,
		},
		{
			"a & b",
			true,
			nil,
		},
		{
			"a | b",
			true,
			nil,
		},
	}

	for _, c := range cases {
		l := NewLexerFromString(c.data)

		toks, err := l.RunBlocking()
		if c.fail {
			assert.Error(t, err, c.data)
		} else {
			assert.NoError(t, err, c.data)
		}

		assert.Equal(t, c.expect, stripLocations(toks), c.data)
	}
}

func TestLexerErrorKinds(t *testing.T) {
	_, err := NewLexerFromString("1.2.3").RunBlocking()
	var malformed *MalformedNumberError
	require.ErrorAs(t, err, &malformed)

	_, err = NewLexerFromString("x = @").RunBlocking()
	var unexpected *UnexpectedCharacterError
	require.ErrorAs(t, err, &unexpected)
	assert.Equal(t, '@', unexpected.Char)
	assert.Equal(t, "1:5", unexpected.Loc.String())
}

func TestLexerLocations(t *testing.T) {
	toks, err := NewLexerFromString("x = 5;\ny;").RunBlocking()
	require.NoError(t, err)
	require.Len(t, toks, 6)

	expect := []Location{
		{Line: 1, Col: 1},
		{Line: 1, Col: 3},
		{Line: 1, Col: 5},
		{Line: 1, Col: 6},
		{Line: 2, Col: 1},
		{Line: 2, Col: 2},
	}
	for i, loc := range expect {
		assert.Equal(t, &loc, toks[i].Loc, toks[i].Value)
	}
}

// Re-lexing the same input must yield an identical token sequence.
func TestLexerDeterminism(t *testing.T) {
	data := test.GetRandomTokens(500)

	first, err := NewLexerFromString(data).RunBlocking()
	require.NoError(t, err)

	second, err := NewLexerFromString(data).RunBlocking()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestLexerEOFIdempotent(t *testing.T) {
	l := NewLexerFromString("x")
	go l.Do()

	assert.Equal(t, TokenIdentifier, l.Get().Typ)
	for i := 0; i < 3; i++ {
		assert.Equal(t, TokenEOF, l.Get().Typ)
	}
}

// Use a package-level variable to avoid compiler optimisation
var benchResult []Token

func benchmarkLexer(size int, b *testing.B) {
	for n := 0; n < b.N; n++ {
		// Setup
		b.StopTimer()
		data := test.GetRandomTokens(size)
		l := NewLexerFromString(data)

		var err error
		b.StartTimer()

		benchResult, err = l.RunBlocking()
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLexer100(b *testing.B) {
	benchmarkLexer(100, b)
}

func BenchmarkLexer1000(b *testing.B) {
	benchmarkLexer(1000, b)
}

func BenchmarkLexer10000(b *testing.B) {
	benchmarkLexer(10000, b)
}

func BenchmarkLexer100000(b *testing.B) {
	benchmarkLexer(100000, b)
}
