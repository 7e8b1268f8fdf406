package arith

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

type lexer struct {
	src io.RuneScanner
	buf strings.Builder
	// col is the number of runes read so far.
	col int
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{src: src}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (rune, error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.col++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.col--
}

// next scans the next token from the input. At the end of the input, the
// result is an empty token with io.EOF.
func (l *lexer) next() (Token, error) {
	for {
		r, err := l.readRune()
		if err != nil {
			return Token{}, err
		}
		switch {
		case unicode.IsSpace(r):
			continue
		case isNumRune(r):
			l.unreadRune()
			return l.scanNum()
		case strings.ContainsRune(Symbols, r):
			return Sym(Symbol(r), l.col), nil
		default:
			return Token{}, &CharError{Col: l.col, Char: r}
		}
	}
}

func isNumRune(r rune) bool {
	return '0' <= r && r <= '9' || r == '.'
}

// scanNum scans a maximal run of digits and decimal points as one literal.
// The whole run is consumed even if it turns out to be malformed.
func (l *lexer) scanNum() (Token, error) {
	defer l.buf.Reset()
	pos := l.col + 1
	dots, digits := 0, 0
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return Token{}, err
		}
		if !isNumRune(r) {
			l.unreadRune()
			break
		}
		l.buf.WriteRune(r)
		if r == '.' {
			dots++
		} else {
			digits++
		}
	}
	text := l.buf.String()
	if dots > 1 || digits == 0 {
		return Token{}, &NumberError{Col: pos, Text: text}
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		// Literals too large for float64 come back as ±Inf with ErrRange.
		// Keep the infinity; Eval reports it as a non-finite result.
		if !errors.Is(err, strconv.ErrRange) {
			return Token{}, &NumberError{Col: pos, Text: text}
		}
	}
	return Num(v, pos), nil
}

// Tokenize splits an expression into number and symbol tokens. A minus sign
// at the start of the expression or following any symbol other than a close
// bracket is treated as negation: a zero is inserted before it, so that "-3"
// becomes "0 - 3" and "3*-2" becomes "3 * 0 - 2". The minus sign of a
// negation reports true from Negation, and ToPostfix gives it precedence over
// every other operator, so "3*-2" is still 3 * (0 - 2).
//
// Tokenize returns an error wrapping ErrInvalidCharacter for any character
// other than digits, decimal points, symbols, and whitespace, and an error
// wrapping ErrMalformedNumber for a number containing more than one decimal
// point. Numbers may begin or end with their decimal point, as ".5" or "5.".
func Tokenize(text string) ([]Token, error) {
	return tokenize(strings.NewReader(text))
}

func tokenize(src io.RuneScanner) ([]Token, error) {
	scan := lex(src)
	var raw []Token
	for {
		tok, err := scan.next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		raw = append(raw, tok)
	}
	return negations(raw), nil
}

// negations inserts a zero before each minus sign that is a negation rather
// than a subtraction.
func negations(raw []Token) []Token {
	n := 0
	for i := range raw {
		if unary(raw, i) {
			n++
		}
	}
	if n == 0 {
		return raw
	}
	seq := make([]Token, 0, len(raw)+n)
	for i, t := range raw {
		if unary(raw, i) {
			seq = append(seq, Num(0, t.pos))
			t.neg = true
		}
		seq = append(seq, t)
	}
	return seq
}

// unary reports whether raw[i] is a minus sign in operator position.
func unary(raw []Token, i int) bool {
	if raw[i].sym != SymSub {
		return false
	}
	if i == 0 {
		return true
	}
	prev := raw[i-1]
	return !prev.IsNum() && prev.sym != SymClose
}
