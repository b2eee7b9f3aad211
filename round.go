package tfidf

import (
	"math"
	"math/big"
)

// ScorePlaces is the number of decimal places TF-IDF scores are rounded to.
const ScorePlaces = 2

// RoundHalfUp rounds x to places decimal places, with exact halves going away
// from zero. Halves are judged on the exact binary value of x:
// RoundHalfUp(0.125, 2) == 0.13 but RoundHalfUp(1.005, 2) == 1 because 1.005
// is stored as 1.00499...
func RoundHalfUp(x float64, places int) float64 {
	if x == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	if places < 0 {
		places = 0
	}
	pow := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(places)), nil)

	y := new(big.Float).SetPrec(256).SetFloat64(math.Abs(x))
	y.Mul(y, new(big.Float).SetInt(pow))

	n, _ := y.Int(nil)
	frac := new(big.Float).SetPrec(256).Sub(y, new(big.Float).SetInt(n))
	if frac.Cmp(big.NewFloat(0.5)) >= 0 {
		n.Add(n, big.NewInt(1))
	}

	r, _ := new(big.Rat).SetFrac(n, pow).Float64()
	if x < 0 {
		return -r
	}
	return r
}
