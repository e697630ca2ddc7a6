package pricing

import "math"

// Abramowitz & Stegun 26.2.17, see Hull section 11.8.
const (
	invSqrt2Pi = 0.39894228040143270286

	cndfP  = 0.2316419
	cndfB1 = 0.319381530
	cndfB2 = -0.356563782
	cndfB3 = 1.781477937
	cndfB4 = -1.821255978
	cndfB5 = 1.330274429
)

// CNDF approximates the standard normal cumulative distribution function
// to about six decimal digits. The result is clamped to [0, 1].
func CNDF(x float64) float64 {
	if math.IsNaN(x) {
		return x
	}

	negative := x < 0
	if negative {
		x = -x
	}

	nPrime := math.Exp(-0.5*x*x) * invSqrt2Pi

	k := 1.0 / (1.0 + cndfP*x)
	k2 := k * k
	k3 := k2 * k
	k4 := k3 * k
	k5 := k4 * k

	poly := k*cndfB1 + k2*cndfB2 + k3*cndfB3 + k4*cndfB4 + k5*cndfB5
	out := 1.0 - poly*nPrime

	if negative {
		out = 1.0 - out
	}
	return clampUnit(out)
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
