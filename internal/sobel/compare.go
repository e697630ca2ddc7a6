package sobel

import "gonum.org/v1/gonum/stat"

// VariantStats summarises how far a variant drifts from the exact kernel.
type VariantStats struct {
	Variant      Variant `json:"-"`
	Reads        int     `json:"reads"`
	Pixels       int     `json:"pixels"`
	Differing    int     `json:"differing"`
	MeanAbsError float64 `json:"mean_abs_error"`
	MaxAbsError  int     `json:"max_abs_error"`
}

// Compare scans src with both the exact kernel and v and reports the
// per-pixel deviation over the interior.
func Compare(src *Grid, v Variant) VariantStats {
	exact := Scan(src, VariantExact, nil)
	approx := Scan(src, v, nil)

	stats := VariantStats{Variant: v, Reads: v.Reads(), Pixels: src.Interior()}
	if stats.Pixels == 0 {
		return stats
	}

	errs := make([]float64, 0, stats.Pixels)
	EmitInterior(exact, func(r, c, want int) {
		d := abs(approx.At(r, c) - want)
		if d != 0 {
			stats.Differing++
		}
		if d > stats.MaxAbsError {
			stats.MaxAbsError = d
		}
		errs = append(errs, float64(d))
	})
	stats.MeanAbsError = stat.Mean(errs, nil)
	return stats
}

// CompareAll runs Compare for every variant, exact included.
func CompareAll(src *Grid) []VariantStats {
	all := make([]VariantStats, 0, len(Variants()))
	for _, v := range Variants() {
		all = append(all, Compare(src, v))
	}
	return all
}
