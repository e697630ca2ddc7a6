package validate

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/jwaldner/approxbench/internal/pricing"
)

// CDFReport measures the rational CNDF approximation against the exact
// normal CDF.
type CDFReport struct {
	From        float64 `json:"from"`
	To          float64 `json:"to"`
	Samples     int     `json:"samples"`
	MaxAbsError float64 `json:"max_abs_error"`
	WorstX      float64 `json:"worst_x"`
}

// CDFAccuracy samples [from, to] evenly and records the largest deviation of
// pricing.CNDF from the exact CDF.
func CDFAccuracy(from, to float64, samples int) CDFReport {
	if samples < 2 {
		samples = 2
	}
	if to < from {
		from, to = to, from
	}

	rep := CDFReport{From: from, To: to, Samples: samples}
	step := (to - from) / float64(samples-1)
	for i := 0; i < samples; i++ {
		x := from + float64(i)*step
		d := math.Abs(pricing.CNDF(x) - distuv.UnitNormal.CDF(x))
		if d > rep.MaxAbsError {
			rep.MaxAbsError = d
			rep.WorstX = x
		}
	}
	return rep
}

// ExactCDF is the reference normal CDF used by CDFAccuracy.
func ExactCDF(x float64) float64 {
	return distuv.UnitNormal.CDF(x)
}
