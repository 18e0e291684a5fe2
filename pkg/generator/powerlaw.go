package generator

import (
	"math"
	"math/rand"
)

// samplePowerLaw draws an integer from a bounded power-law distribution
// p(k) ∝ k^(-exponent) over [min, max] by inverse-transform sampling of the
// continuous density, floored and clamped. Exponent 1 degenerates to a
// log-uniform draw.
func samplePowerLaw(rng *rand.Rand, min, max int, exponent float64) int {
	if min >= max {
		return min
	}

	lo, hi := float64(min), float64(max)+1.0
	u := rng.Float64()

	var x float64
	if math.Abs(exponent-1.0) < 1e-12 {
		x = lo * math.Exp(u*math.Log(hi/lo))
	} else {
		oneMinus := 1.0 - exponent
		a := math.Pow(lo, oneMinus)
		b := math.Pow(hi, oneMinus)
		x = math.Pow(a+u*(b-a), 1.0/oneMinus)
	}

	k := int(math.Floor(x))
	if k < min {
		k = min
	}
	if k > max {
		k = max
	}
	return k
}
