package arith

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// neg creates a negating minus sign token.
func neg(pos int) Token {
	t := Sym(SymSub, pos)
	t.neg = true
	return t
}

func TestTokenize(t *testing.T) {
	cases := []struct {
		name   string
		src    string
		tokens []Token
	}{
		// spaces
		{"empty", "", nil},
		{"spaces", " \t \r\n ", nil},
		// numbers
		{"zero", "0", []Token{Num(0, 1)}},
		{"digits", "9876543210", []Token{Num(9876543210, 1)}},
		{"two-nums", "1 0", []Token{Num(1, 1), Num(0, 3)}},
		{"decimal", "1.25", []Token{Num(1.25, 1)}},
		{"leading-dot", ".5", []Token{Num(0.5, 1)}},
		{"trailing-dot", "5.", []Token{Num(5, 1)}},
		{"leading-zeros", "007", []Token{Num(7, 1)}},
		// symbols
		{"add", "1+0", []Token{Num(1, 1), Sym(SymAdd, 2), Num(0, 3)}},
		{"sub", "1-0", []Token{Num(1, 1), Sym(SymSub, 2), Num(0, 3)}},
		{"mul", "1 * 0", []Token{Num(1, 1), Sym(SymMul, 3), Num(0, 5)}},
		{"div", "1/0", []Token{Num(1, 1), Sym(SymDiv, 2), Num(0, 3)}},
		{"brackets", "(1)", []Token{Sym(SymOpen, 1), Num(1, 2), Sym(SymClose, 3)}},
		{"lone-mul", "*3", []Token{Sym(SymMul, 1), Num(3, 2)}},
		// negation
		{"neg", "-1", []Token{Num(0, 1), neg(1), Num(1, 2)}},
		{"neg-add", "-3+4", []Token{Num(0, 1), neg(1), Num(3, 2), Sym(SymAdd, 3), Num(4, 4)}},
		{"mul-neg", "3*-2", []Token{Num(3, 1), Sym(SymMul, 2), Num(0, 3), neg(3), Num(2, 4)}},
		{"open-neg", "(-2)", []Token{Sym(SymOpen, 1), Num(0, 2), neg(2), Num(2, 3), Sym(SymClose, 4)}},
		{"close-sub", "(1)-2", []Token{Sym(SymOpen, 1), Num(1, 2), Sym(SymClose, 3), Sym(SymSub, 4), Num(2, 5)}},
		{"neg-neg", "--2", []Token{Num(0, 1), neg(1), Num(0, 2), neg(2), Num(2, 3)}},
		{"sub-neg", "2--3", []Token{Num(2, 1), Sym(SymSub, 2), Num(0, 3), neg(3), Num(3, 4)}},
		{"neg-space", "- 1", []Token{Num(0, 1), neg(1), Num(1, 3)}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Tokenize(c.src)
			require.NoError(t, err)
			assert.Equal(t, c.tokens, got)
		})
	}
}

func TestTokenizeErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		kind error
		col  int
	}{
		{"letter", "2x+3", ErrInvalidCharacter, 2},
		{"dollar", "$", ErrInvalidCharacter, 1},
		{"caret", "2^3", ErrInvalidCharacter, 2},
		{"comma", "1,5", ErrInvalidCharacter, 2},
		{"exponent", "1e5", ErrInvalidCharacter, 2},
		{"unicode", "1×2", ErrInvalidCharacter, 2},
		{"square", "[1]", ErrInvalidCharacter, 1},
		{"two-dots", "1..2", ErrMalformedNumber, 1},
		{"three-parts", "1.2.3", ErrMalformedNumber, 1},
		{"later", "4 + 5.5.5", ErrMalformedNumber, 5},
		{"dot", ".", ErrMalformedNumber, 1},
		{"dots", "..", ErrMalformedNumber, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Tokenize(c.src)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, c.kind)
			var ie InputError
			require.True(t, errors.As(err, &ie), "%v is not an InputError", err)
			assert.Equal(t, c.col, ie.Pos())
		})
	}
}

func TestNumberErrorText(t *testing.T) {
	_, err := Tokenize("1 + 1.2.3 * 4")
	var ne *NumberError
	require.ErrorAs(t, err, &ne)
	assert.Equal(t, "1.2.3", ne.Text)
	assert.Equal(t, 5, ne.Col)
	assert.Contains(t, err.Error(), "1.2.3")
}

func TestTokenizeHugeLiteral(t *testing.T) {
	got, err := Tokenize(strings.Repeat("9", 400))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].IsNum())
	assert.Greater(t, got[0].Value(), 1e308)
}

func TestLexNextEOF(t *testing.T) {
	scan := lex(strings.NewReader("  1  "))
	tok, err := scan.next()
	require.NoError(t, err)
	assert.Equal(t, Num(1, 3), tok)
	_, err = scan.next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestSymPanics(t *testing.T) {
	assert.Panics(t, func() { Sym(SymNone, 1) })
	assert.Panics(t, func() { Sym('^', 1) })
	assert.NotPanics(t, func() {
		for _, r := range Symbols {
			Sym(Symbol(r), 1)
		}
	})
}
