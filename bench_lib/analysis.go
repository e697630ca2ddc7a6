package bench

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/jwaldner/approxbench/internal/logger"
	"github.com/jwaldner/approxbench/internal/pricing"
	"github.com/jwaldner/approxbench/internal/sobel"
	"github.com/jwaldner/approxbench/internal/validate"
)

// PricingAnalysis is a priced, validated batch with per-phase timings.
type PricingAnalysis struct {
	RunID         string           `json:"run_id"`
	ExecutionMode ExecutionMode    `json:"execution_mode"`
	Results       []pricing.Result `json:"results"`
	Report        *validate.Report `json:"report"`

	PackMs     float64 `json:"pack_ms"`
	PriceMs    float64 `json:"price_ms"`
	ValidateMs float64 `json:"validate_ms"`
	TotalMs    float64 `json:"total_ms"`
}

// AnalyzePricing packs, prices and validates records, timing each phase
// separately.
func (e *Engine) AnalyzePricing(ctx context.Context, records []pricing.OptionRecord, scale, tolerance float64) (*PricingAnalysis, error) {
	analysis := &PricingAnalysis{ExecutionMode: e.effectiveMode(len(records))}

	// PHASE 1: PACK
	packStart := time.Now()
	batch := pricing.NewBatch(records, scale)
	analysis.PackMs = msSince(packStart)

	logger.Debug.Printf("🔧 PACK: %.3fms | %d records | scale %.1f", analysis.PackMs, batch.Len(), batch.Scale)

	// PHASE 2: BLACK-SCHOLES
	priceStart := time.Now()
	results, err := e.PriceBatch(ctx, batch)
	if err != nil {
		logger.Error.Printf("❌ BLACK-SCHOLES failed: %v", err)
		return nil, err
	}
	analysis.Results = results
	analysis.PriceMs = msSince(priceStart)

	logger.Info.Printf("⚡ BLACK-SCHOLES: %.3fms | %d options | Mode: %s", analysis.PriceMs, len(results), analysis.ExecutionMode)

	// PHASE 3: REFERENCE CHECK
	validateStart := time.Now()
	report, err := validate.CheckReferences(records, results, batch.Scale, tolerance)
	if err != nil {
		return nil, err
	}
	analysis.Report = report
	analysis.RunID = report.RunID
	analysis.ValidateMs = msSince(validateStart)

	analysis.TotalMs = analysis.PackMs + analysis.PriceMs + analysis.ValidateMs

	logger.L().Info("pricing analysis",
		zap.String("run_id", analysis.RunID),
		zap.String("mode", string(analysis.ExecutionMode)),
		zap.Int("options", len(results)),
		zap.Int("failures", report.Failures),
		zap.String("max_abs_error", report.MaxAbsError.String()),
		zap.Float64("total_ms", analysis.TotalMs))
	if !report.Passed() {
		logger.Warn.Printf("⚠️ REFERENCE CHECK: %d/%d prices outside tolerance %s",
			report.Failures, len(report.Checks), report.Tolerance.String())
	}

	return analysis, nil
}

// VariantAnalysis pairs a variant's deviation from the exact kernel with its
// scan time.
type VariantAnalysis struct {
	sobel.VariantStats
	Name   string  `json:"name"`
	ScanMs float64 `json:"scan_ms"`
}

// AnalyzeVariants times a scan of src with every kernel variant and reports
// each one's deviation from the exact result.
func (e *Engine) AnalyzeVariants(ctx context.Context, src *sobel.Grid) ([]VariantAnalysis, error) {
	out := make([]VariantAnalysis, 0, len(sobel.Variants()))
	for _, v := range sobel.Variants() {
		start := time.Now()
		if _, err := e.ScanImage(ctx, src, v, nil); err != nil {
			return nil, err
		}
		scanMs := msSince(start)

		stats := sobel.Compare(src, v)
		out = append(out, VariantAnalysis{VariantStats: stats, Name: v.String(), ScanMs: scanMs})

		logger.Debug.Printf("📊 SOBEL %s: %.3fms | %d reads | %d/%d pixels differ | mean err %.3f",
			v, scanMs, stats.Reads, stats.Differing, stats.Pixels, stats.MeanAbsError)
	}
	return out, nil
}

func msSince(t time.Time) float64 {
	return time.Since(t).Seconds() * 1000
}
