package arith

import (
	"math"
	"strconv"
	"strings"
)

// Format formats x with the fewest digits that parse back to x. Numbers with
// magnitude in [1e-6, 1e21) are written in plain decimal notation, like
// "0.000001" or "123.5". Others use an exponent with a sign and no padding,
// like "1e+21" or "1.5e-7". Negative zero is written as "0", and
// non-finite values as "Infinity", "-Infinity", and "NaN".
//
// The plain decimal form of a finite result is accepted by Eval and evaluates
// to the same value.
func Format(x float64) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "Infinity"
	case math.IsInf(x, -1):
		return "-Infinity"
	case x == 0:
		return "0"
	}
	if a := math.Abs(x); a >= 1e-6 && a < 1e21 {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	s := strconv.FormatFloat(x, 'e', -1, 64)
	k := strings.IndexByte(s, 'e')
	// strconv always writes the exponent sign and at least two digits.
	mant, sign, exp := s[:k], s[k+1], strings.TrimLeft(s[k+2:], "0")
	return mant + "e" + string(sign) + exp
}
