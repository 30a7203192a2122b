package vrmlparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lexAll(t *testing.T, src string) []Token {
	t.Helper()
	lex := NewLexer([]byte(src))
	var toks []Token
	for {
		tok, err := lex.Next()
		require.NoError(t, err)
		if tok.Kind == TokenEOF {
			return toks
		}
		toks = append(toks, tok)
	}
}

func TestLexPunctuationAndIdentifiers(t *testing.T) {
	toks := lexAll(t, `Transform { children [ Shape, USE x ] }`)

	kinds := make([]TokenKind, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Kind
	}
	assert.Equal(t, []TokenKind{
		TokenIdentifier, TokenLBrace, TokenIdentifier, TokenLBracket,
		TokenIdentifier, TokenComma, TokenIdentifier, TokenIdentifier,
		TokenRBracket, TokenRBrace,
	}, kinds)
	assert.Equal(t, "Transform", toks[0].Literal)
	assert.Equal(t, "USE", toks[6].Literal)
}

func TestLexSkipsCommentsAndHeader(t *testing.T) {
	src := `#VRML V2.0 utf8
# a scene with one box
Box { } # trailing comment
`
	toks := lexAll(t, src)
	require.Len(t, toks, 3)
	assert.Equal(t, "Box", toks[0].Literal)
	assert.Equal(t, 3, toks[0].Pos.Line)
	assert.Equal(t, 1, toks[0].Pos.Column)
}

func TestLexNumbers(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"0", "0"},
		{"42", "42"},
		{"-7", "-7"},
		{"+3", "+3"},
		{"3.14", "3.14"},
		{"-0.5", "-0.5"},
		{".5", ".5"},
		{"-.5", "-.5"},
		{"1e6", "1e6"},
		{"1.5e-3", "1.5e-3"},
		{"2E+10", "2E+10"},
		{"0xFF", "0xFF"},
		{"0X0a", "0X0a"},
		{"-0x10", "-0x10"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			lex := NewLexer([]byte(tt.src))
			tok, err := lex.Next()
			require.NoError(t, err)
			assert.Equal(t, TokenNumber, tok.Kind)
			assert.Equal(t, tt.want, tok.Literal)

			eof, err := lex.Next()
			require.NoError(t, err)
			assert.Equal(t, TokenEOF, eof.Kind)
		})
	}
}

func TestLexMalformedNumbers(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"hex without digits", "0x"},
		{"missing exponent digits", "1e"},
		{"word glued to number", "1.5x"},
		{"sign glued exponent", "2e+"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lex := NewLexer([]byte(tt.src))
			_, err := lex.Next()
			var lexErr *LexError
			require.ErrorAs(t, err, &lexErr)
		})
	}
}

func TestLexBareSignIsAnError(t *testing.T) {
	lex := NewLexer([]byte("- 1"))
	_, err := lex.Next()
	var lexErr *LexError
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, 1, lexErr.Pos.Column)
}

func TestLexStrings(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"plain", `"hello"`, "hello"},
		{"empty", `""`, ""},
		{"escaped quote", `"say \"hi\""`, `say "hi"`},
		{"escaped backslash", `"a\\b"`, `a\b`},
		{"newline and tab", `"a\nb\tc"`, "a\nb\tc"},
		{"unknown escape preserved", `"a\qb"`, `a\qb`},
		{"hash inside string", `"not # a comment"`, "not # a comment"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lex := NewLexer([]byte(tt.src))
			tok, err := lex.Next()
			require.NoError(t, err)
			assert.Equal(t, TokenString, tok.Kind)
			assert.Equal(t, tt.want, tok.Literal)
		})
	}
}

func TestLexUnterminatedString(t *testing.T) {
	lex := NewLexer([]byte("\"never closed\n"))
	_, err := lex.Next()
	var lexErr *LexError
	require.ErrorAs(t, err, &lexErr)
	assert.Contains(t, lexErr.Error(), "unterminated string")
	assert.Equal(t, 1, lexErr.Pos.Line)
	assert.Equal(t, 1, lexErr.Pos.Column)
}

func TestLexPeriodVsFloat(t *testing.T) {
	toks := lexAll(t, "a.b .5")
	require.Len(t, toks, 4)
	assert.Equal(t, TokenIdentifier, toks[0].Kind)
	assert.Equal(t, TokenPeriod, toks[1].Kind)
	assert.Equal(t, TokenIdentifier, toks[2].Kind)
	assert.Equal(t, TokenNumber, toks[3].Kind)
	assert.Equal(t, ".5", toks[3].Literal)
}

func TestLexPositions(t *testing.T) {
	src := "Box {\n  size 2 2 2\n}"
	toks := lexAll(t, src)
	require.Len(t, toks, 7)

	size := toks[2]
	assert.Equal(t, "size", size.Literal)
	assert.Equal(t, 2, size.Pos.Line)
	assert.Equal(t, 3, size.Pos.Column)

	closing := toks[6]
	assert.Equal(t, TokenRBrace, closing.Kind)
	assert.Equal(t, 3, closing.Pos.Line)
	assert.Equal(t, 1, closing.Pos.Column)
}

func TestLexPeekDoesNotConsume(t *testing.T) {
	lex := NewLexer([]byte("Box {"))

	p1, err := lex.Peek()
	require.NoError(t, err)
	p2, err := lex.Peek()
	require.NoError(t, err)
	assert.Equal(t, p1, p2)

	tok, err := lex.Next()
	require.NoError(t, err)
	assert.Equal(t, p1, tok)

	tok, err = lex.Next()
	require.NoError(t, err)
	assert.Equal(t, TokenLBrace, tok.Kind)
}

func TestLexEOFIsSticky(t *testing.T) {
	lex := NewLexer([]byte("  # only a comment"))
	for i := 0; i < 3; i++ {
		tok, err := lex.Next()
		require.NoError(t, err)
		assert.Equal(t, TokenEOF, tok.Kind)
	}
}

func TestLexInvalidCharacter(t *testing.T) {
	lex := NewLexer([]byte("Box @"))
	_, err := lex.Next()
	require.NoError(t, err)
	_, err = lex.Next()
	var lexErr *LexError
	require.ErrorAs(t, err, &lexErr)
	assert.Contains(t, lexErr.Error(), "unexpected character")
}
