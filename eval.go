package arith

import (
	"io"
	"math"
	"strings"
)

// stack is the operand stack of a postfix evaluation.
type stack []float64

func (s *stack) push(v float64) {
	*s = append(*s, v)
}

// pop removes the top from the stack and returns it. Panics if the stack is
// empty.
func (s *stack) pop() float64 {
	r := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return r
}

// EvalPostfix evaluates a postfix token sequence. Each operator applies to the
// two values most recently computed, with the more recent one on the right.
// Division by zero is not an error here; it produces an infinity or NaN as
// usual for float64.
//
// EvalPostfix returns an error wrapping ErrMalformedExpression if an operator
// has fewer than two operands available or if the sequence does not reduce to
// exactly one value, including when seq is empty. Brackets in seq are also
// reported as malformed expressions, since ToPostfix never produces them.
func EvalPostfix(seq []Token) (float64, error) {
	s := make(stack, 0, len(seq)/2+1)
	for _, t := range seq {
		if t.IsNum() {
			s.push(t.num)
			continue
		}
		if !t.sym.operator() || len(s) < 2 {
			return 0, &OperandError{Col: t.pos, Operator: t.sym}
		}
		b := s.pop()
		a := s.pop()
		switch t.sym {
		case SymAdd:
			s.push(a + b)
		case SymSub:
			s.push(a - b)
		case SymMul:
			s.push(a * b)
		case SymDiv:
			s.push(a / b)
		}
	}
	if len(s) != 1 {
		col := 0
		if len(seq) > 0 {
			col = seq[len(seq)-1].pos
		}
		return 0, &OperandError{Col: col, Left: len(s)}
	}
	return s[0], nil
}

// Eval tokenizes, converts, and evaluates an expression. In addition to the
// errors from Tokenize, ToPostfix, and EvalPostfix, Eval returns a
// *RangeError wrapping ErrNonFiniteResult if the result is an infinity or
// NaN, as from division by zero.
func Eval(text string) (float64, error) {
	return EvalReader(strings.NewReader(text))
}

// EvalReader is like Eval but reads the expression from src until EOF.
func EvalReader(src io.RuneScanner) (float64, error) {
	tokens, err := tokenize(src)
	if err != nil {
		return 0, err
	}
	seq, err := ToPostfix(tokens)
	if err != nil {
		return 0, err
	}
	r, err := EvalPostfix(seq)
	if err != nil {
		return 0, err
	}
	if math.IsInf(r, 0) || math.IsNaN(r) {
		return 0, &RangeError{X: r}
	}
	return r, nil
}
