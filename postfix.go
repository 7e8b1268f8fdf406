package arith

// ToPostfix reorders a token sequence from infix to postfix order, such that
// each operator follows both of its operands. Multiplication and division
// bind tighter than addition and subtraction, and operators of equal
// precedence are left-associative, so "1 - 2 + 3" becomes "1 2 - 3 +".
// Negations from Tokenize bind tighter still, so the tokens of "3*-2" become
// "3 0 2 - *". Brackets do not appear in the result.
//
// ToPostfix returns an error wrapping ErrMismatchedParentheses if the
// brackets in tokens do not balance. It does not check that operators have
// operands; EvalPostfix does that.
func ToPostfix(tokens []Token) ([]Token, error) {
	out := make([]Token, 0, len(tokens))
	// ops holds only binary operators and open brackets.
	var ops []Token
	for _, t := range tokens {
		switch t.sym {
		case SymNone:
			out = append(out, t)
		case SymOpen:
			ops = append(ops, t)
		case SymClose:
			for len(ops) > 0 && ops[len(ops)-1].sym != SymOpen {
				out = append(out, ops[len(ops)-1])
				ops = ops[:len(ops)-1]
			}
			if len(ops) == 0 {
				return nil, &BracketError{Col: t.pos, Open: false}
			}
			ops = ops[:len(ops)-1]
		case SymAdd, SymSub, SymMul, SymDiv:
			p := t.prec()
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if !top.sym.operator() || top.prec() < p {
					break
				}
				// Negations group right to left, so that --2 is 0-(0-2).
				if t.neg && top.prec() == p {
					break
				}
				out = append(out, top)
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, t)
		default:
			panic("arith: unknown token: " + t.String())
		}
	}
	for len(ops) > 0 {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if top.sym == SymOpen {
			return nil, &BracketError{Col: top.pos, Open: true}
		}
		out = append(out, top)
	}
	return out, nil
}
