package validate

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jwaldner/approxbench/internal/pricing"
)

// DefaultTolerance is the accepted absolute deviation from a reference price.
const DefaultTolerance = 1e-2

// Check compares one computed price against its reference value.
type Check struct {
	Index     int             `json:"index"`
	Kind      string          `json:"kind"`
	Price     decimal.Decimal `json:"price"`
	Reference decimal.Decimal `json:"reference"`
	AbsError  decimal.Decimal `json:"abs_error"`
	Pass      bool            `json:"pass"`
}

// Report is the outcome of checking a priced batch against references.
type Report struct {
	RunID       string          `json:"run_id"`
	Scale       float64         `json:"scale"`
	Tolerance   decimal.Decimal `json:"tolerance"`
	Checks      []Check         `json:"checks"`
	MaxAbsError decimal.Decimal `json:"max_abs_error"`
	Failures    int             `json:"failures"`
}

// CheckReferences rescales each computed price by scale (undoing the batch
// packing) and compares it with the record's reference value.
func CheckReferences(records []pricing.OptionRecord, results []pricing.Result, scale, tolerance float64) (*Report, error) {
	if len(records) != len(results) {
		return nil, fmt.Errorf("validate: %d records but %d results", len(records), len(results))
	}
	if !(scale > 0) {
		scale = 1
	}
	if !(tolerance > 0) {
		tolerance = DefaultTolerance
	}

	tol := decimal.NewFromFloat(tolerance)
	scaleDec := decimal.NewFromFloat(scale)
	report := &Report{
		RunID:       uuid.NewString(),
		Scale:       scale,
		Tolerance:   tol,
		Checks:      make([]Check, 0, len(records)),
		MaxAbsError: decimal.Zero,
	}

	for i, rec := range records {
		if !finite(results[i].Price) || !finite(rec.Reference) {
			return nil, fmt.Errorf("validate: record %d has a non-finite price or reference", i)
		}
		price := decimal.NewFromFloat(results[i].Price).Mul(scaleDec)
		ref := decimal.NewFromFloat(rec.Reference)
		diff := price.Sub(ref).Abs()

		c := Check{
			Index:     i,
			Kind:      rec.Kind.String(),
			Price:     price,
			Reference: ref,
			AbsError:  diff,
			Pass:      diff.LessThanOrEqual(tol),
		}
		if !c.Pass {
			report.Failures++
		}
		if diff.GreaterThan(report.MaxAbsError) {
			report.MaxAbsError = diff
		}
		report.Checks = append(report.Checks, c)
	}
	return report, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Passed reports whether every check is within tolerance.
func (r *Report) Passed() bool {
	return r.Failures == 0
}

// Summary renders a short human-readable table of the report.
func (r *Report) Summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "📊 Reference check %s (scale %.1f, tolerance %s)\n", r.RunID, r.Scale, r.Tolerance.String())
	for _, c := range r.Checks {
		mark := "✅"
		if !c.Pass {
			mark = "❌"
		}
		fmt.Fprintf(&sb, "  %s #%02d %-4s price=%s ref=%s err=%s\n", mark, c.Index, c.Kind,
			c.Price.StringFixed(6), c.Reference.StringFixed(6), c.AbsError.StringFixed(8))
	}
	fmt.Fprintf(&sb, "  max error %s, %d/%d outside tolerance\n", r.MaxAbsError.StringFixed(8), r.Failures, len(r.Checks))
	return sb.String()
}
