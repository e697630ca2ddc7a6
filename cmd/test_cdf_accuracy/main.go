package main

import (
	"fmt"
	"math"

	"github.com/jwaldner/approxbench/internal/pricing"
	"github.com/jwaldner/approxbench/internal/validate"
)

// Compare the rational CNDF against the exact normal CDF
func main() {
	fmt.Println("🎯 Testing CNDF Accuracy Against Exact Normal CDF")
	fmt.Println("================================================")

	points := []float64{-6, -4, -3, -2, -1.5, -1, -0.5, -0.1, 0, 0.1, 0.5, 1, 1.5, 2, 3, 4, 6}

	fmt.Printf("%8s  %14s  %14s  %12s\n", "x", "CNDF", "exact", "abs error")
	for _, x := range points {
		approx := pricing.CNDF(x)
		exact := validate.ExactCDF(x)
		fmt.Printf("%8.2f  %14.10f  %14.10f  %12.3e\n", x, approx, exact, math.Abs(approx-exact))
	}
	fmt.Println()

	report := validate.CDFAccuracy(-8, 8, 16001)
	fmt.Printf("📈 Sweep [%.0f, %.0f] with %d samples\n", report.From, report.To, report.Samples)
	fmt.Printf("   Max abs error: %.3e at x = %.4f\n", report.MaxAbsError, report.WorstX)

	tolerance := 1e-6
	if report.MaxAbsError <= tolerance {
		fmt.Printf("✅ ACCURATE: within ±%.0e over the whole sweep\n", tolerance)
	} else {
		fmt.Printf("⚠️  NEEDS ATTENTION: max error %.3e exceeds %.0e\n", report.MaxAbsError, tolerance)
	}

	// Symmetry check Φ(-x) = 1 - Φ(x)
	worst := 0.0
	for i := 0; i <= 800; i++ {
		x := float64(i) / 100
		if d := math.Abs(pricing.CNDF(-x) - (1 - pricing.CNDF(x))); d > worst {
			worst = d
		}
	}
	fmt.Printf("🔁 Symmetry: max |Φ(-x) - (1-Φ(x))| = %.3e\n", worst)
}
