package render

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// FormatFixed formats x with the given number of decimals (digits >= 0).
// Rounding is done on the exact binary value of x; a value exactly halfway
// between two decimals rounds away from zero (strconv rounds it to even).
// Negative zero prints without a sign, and infinities print as
// "Infinity" and "-Infinity".
func FormatFixed(x float64, digits int) string {
	switch {
	case x == 0:
		x = 0
	case math.IsInf(x, 1):
		return "Infinity"
	case math.IsInf(x, -1):
		return "-Infinity"
	}
	if !math.IsNaN(x) {
		if n, ok := halfwayUp(x, digits); ok {
			return formatScaled(n, digits, x < 0)
		}
	}
	return strconv.FormatFloat(x, 'f', digits, 64)
}

// halfwayUp reports whether |x|·10^digits lies exactly halfway between two
// integers and, if so, returns the larger of them.
func halfwayUp(x float64, digits int) (*big.Int, bool) {
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)
	t := new(big.Float).SetPrec(512).SetFloat64(math.Abs(x))
	t.Mul(t, new(big.Float).SetInt(scale))
	t.Mul(t, big.NewFloat(2))

	n, acc := t.Int(nil)
	if acc != big.Exact || n.Bit(0) == 0 {
		return nil, false
	}
	n.Add(n, big.NewInt(1))
	return n.Rsh(n, 1), true
}

// formatScaled prints n/10^digits.
func formatScaled(n *big.Int, digits int, negative bool) string {
	s := n.String()
	if len(s) <= digits {
		s = strings.Repeat("0", digits-len(s)+1) + s
	}
	if digits > 0 {
		s = s[:len(s)-digits] + "." + s[len(s)-digits:]
	}
	if negative {
		s = "-" + s
	}
	return s
}

// RoundFixed rounds x to the given number of decimals the same way
// FormatFixed does. Non-finite values are returned unchanged.
func RoundFixed(x float64, digits int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	r, err := strconv.ParseFloat(FormatFixed(x, digits), 64)
	if err != nil {
		return x
	}
	if r == 0 {
		return 0
	}
	return r
}
