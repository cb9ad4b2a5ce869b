package colour

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// formatFixed renders v with a fixed number of decimals. Ties are rounded
// away from zero on the exact binary value of v, so 0.125 gives "0.13" while
// 1.005 (stored as 1.00499...) gives "1.00".
func formatFixed(v float64, decimals int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', decimals, 64)
	}

	x := new(big.Float).SetPrec(256).SetFloat64(math.Abs(v))
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	x.Mul(x, new(big.Float).SetInt(scale))
	x.Add(x, big.NewFloat(0.5))
	n, _ := x.Int(nil)

	digits := n.String()
	if len(digits) <= decimals {
		digits = strings.Repeat("0", decimals-len(digits)+1) + digits
	}

	out := digits
	if decimals > 0 {
		split := len(digits) - decimals
		out = digits[:split] + "." + digits[split:]
	}
	if v < 0 {
		out = "-" + out
	}
	return out
}
