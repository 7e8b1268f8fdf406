package arith

import (
	"strconv"
	"strings"
)

// Symbol is an operator or bracket. The zero Symbol, SymNone, marks a number
// token.
type Symbol byte

const (
	SymNone  Symbol = 0
	SymAdd   Symbol = '+'
	SymSub   Symbol = '-'
	SymMul   Symbol = '*'
	SymDiv   Symbol = '/'
	SymOpen  Symbol = '('
	SymClose Symbol = ')'
)

// Symbols contains the characters which are lexed as symbols.
const Symbols = "+-*/()"

func (s Symbol) String() string {
	if s == SymNone {
		return "num"
	}
	return string(rune(s))
}

// operator reports whether s is one of the binary operators.
func (s Symbol) operator() bool {
	switch s {
	case SymAdd, SymSub, SymMul, SymDiv:
		return true
	}
	return false
}

// prec is the binding strength of a binary operator. Higher binds tighter.
// Brackets and SymNone have no precedence.
func (s Symbol) prec() int {
	switch s {
	case SymMul, SymDiv:
		return 2
	case SymAdd, SymSub:
		return 1
	default:
		return 0
	}
}

// Token is either a number or a symbol. Tokens are values; none of their
// fields can change after construction.
type Token struct {
	num float64
	sym Symbol
	pos int
	// neg marks a minus sign that Tokenize found in operator position. It
	// subtracts from an inserted zero and binds tighter than * and /.
	neg bool
}

// Num creates a number token at column pos.
func Num(v float64, pos int) Token {
	return Token{num: v, pos: pos}
}

// Sym creates a symbol token at column pos. Panics if s is not one of the
// characters in Symbols.
func Sym(s Symbol, pos int) Token {
	if s == SymNone || strings.IndexByte(Symbols, byte(s)) < 0 {
		panic("arith: invalid symbol " + strconv.Quote(string(rune(s))))
	}
	return Token{sym: s, pos: pos}
}

// IsNum reports whether the token is a number.
func (t Token) IsNum() bool {
	return t.sym == SymNone
}

// Value returns the value of a number token. It is 0 for symbols.
func (t Token) Value() float64 {
	return t.num
}

// Symbol returns the symbol of the token, or SymNone if it is a number.
func (t Token) Symbol() Symbol {
	return t.sym
}

// Negation reports whether the token is a minus sign that negates its right
// operand, following a zero inserted by Tokenize.
func (t Token) Negation() bool {
	return t.neg
}

// prec is the binding strength of the token as an operator.
func (t Token) prec() int {
	if t.neg {
		return 3
	}
	return t.sym.prec()
}

// Pos returns the 1-based rune column of the text the token was lexed from.
func (t Token) Pos() int {
	return t.pos
}

func (t Token) String() string {
	if t.IsNum() {
		return strconv.FormatFloat(t.num, 'g', -1, 64) + "@" + strconv.Itoa(t.pos)
	}
	return t.sym.String() + "@" + strconv.Itoa(t.pos)
}

// Postfix formats a token sequence with its tokens separated by spaces and
// without positions, e.g. "2 3 4 * +".
func Postfix(seq []Token) string {
	var b strings.Builder
	for i, t := range seq {
		if i > 0 {
			b.WriteByte(' ')
		}
		if t.IsNum() {
			b.WriteString(Format(t.num))
			continue
		}
		b.WriteByte(byte(t.sym))
	}
	return b.String()
}
