package arith

import (
	"errors"
	"strconv"
)

// Error kinds. Every error returned by this package unwraps to exactly one of
// these, so callers can distinguish them with errors.Is.
var (
	ErrInvalidCharacter      = errors.New("invalid character")
	ErrMalformedNumber       = errors.New("malformed number")
	ErrMismatchedParentheses = errors.New("mismatched parentheses")
	ErrMalformedExpression   = errors.New("malformed expression")
	ErrNonFiniteResult       = errors.New("non-finite result")
)

// CharError is an error indicating a character that cannot appear in an
// expression. It implements InputError and unwraps to ErrInvalidCharacter.
type CharError struct {
	// Col is the position of the character.
	Col int
	// Char is the character.
	Char rune
}

func (err *CharError) Error() string {
	return errpos(err.Col, "invalid character "+strconv.QuoteRune(err.Char))
}

func (err *CharError) Pos() int {
	return err.Col
}

func (err *CharError) Unwrap() error {
	return ErrInvalidCharacter
}

// NumberError is an error indicating a number literal with more than one
// decimal point or with no digits. It implements InputError and unwraps to
// ErrMalformedNumber.
type NumberError struct {
	// Col is the position of the first character of the literal.
	Col int
	// Text is the literal.
	Text string
}

func (err *NumberError) Error() string {
	return errpos(err.Col, "malformed number "+strconv.Quote(err.Text))
}

func (err *NumberError) Pos() int {
	return err.Col
}

func (err *NumberError) Unwrap() error {
	return ErrMalformedNumber
}

// BracketError is an error indicating unbalanced brackets. It implements
// InputError and unwraps to ErrMismatchedParentheses.
type BracketError struct {
	// Col is the position of the unmatched bracket.
	Col int
	// Open is true if the unmatched bracket is ( rather than ).
	Open bool
}

func (err *BracketError) Error() string {
	if err.Open {
		return errpos(err.Col, "open bracket ( with no close bracket")
	}
	return errpos(err.Col, "close bracket ) with no open bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

func (err *BracketError) Unwrap() error {
	return ErrMismatchedParentheses
}

// OperandError is an error indicating an operator without two operands, or
// an expression that does not reduce to exactly one value. It implements
// InputError and unwraps to ErrMalformedExpression.
type OperandError struct {
	// Col is the position of the operator lacking operands. For expressions
	// which leave other than one value, it is the position of the last token,
	// or 0 if there were no tokens.
	Col int
	// Operator is the operator lacking operands, or SymNone if the problem
	// is the number of values left over.
	Operator Symbol
	// Left is the number of values remaining at the end of evaluation. It is
	// only meaningful when Operator is SymNone.
	Left int
}

func (err *OperandError) Error() string {
	switch {
	case err.Operator != SymNone:
		return errpos(err.Col, "missing operand for "+strconv.Quote(err.Operator.String()))
	case err.Left == 0:
		return errpos(err.Col, "no expression")
	default:
		return errpos(err.Col, strconv.Itoa(err.Left)+" values with no operator between them")
	}
}

func (err *OperandError) Pos() int {
	return err.Col
}

func (err *OperandError) Unwrap() error {
	return ErrMalformedExpression
}

// RangeError is an error indicating that an expression evaluated to an
// infinity or NaN, as from division by zero or overflow. It unwraps to
// ErrNonFiniteResult.
type RangeError struct {
	// X is the value the expression produced.
	X float64
}

func (err *RangeError) Error() string {
	return "result " + strconv.FormatFloat(err.X, 'g', -1, 64) + " is not finite"
}

func (err *RangeError) Unwrap() error {
	return ErrNonFiniteResult
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input text implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*CharError)(nil)
	_ InputError = (*NumberError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*OperandError)(nil)
)
