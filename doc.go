// Package arith evaluates arithmetic expressions over float64.
//
// An expression is made of decimal numbers, the operators + - * /, round
// brackets, and whitespace. "2 + 3*4" is 14 and "(2+3)*4" is 20. Operators of
// equal precedence group left to right, so "10-2-3" is 5. A minus sign at the
// start of an expression or after another operator or an open bracket is a
// negation: "3*-2" is -6.
//
// Evaluation happens in three stages. Tokenize splits text into tokens,
// ToPostfix reorders them into postfix order, and EvalPostfix computes the
// value. Eval runs all three and rejects results that are not finite. Every
// function in the package is safe to call concurrently.
//
package arith
