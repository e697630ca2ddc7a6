package pricing

import (
	"fmt"
	"math"
)

// Batch holds option inputs packed into parallel slices.
type Batch struct {
	Spot       []float64
	Strike     []float64
	Rate       []float64
	Volatility []float64
	Time       []float64
	Kind       []OptionKind

	// Scale is the divisor that was applied to Spot and Strike.
	Scale float64
}

// NewBatch packs records, dividing spot and strike by scale.
// A non-positive scale is treated as 1.
func NewBatch(records []OptionRecord, scale float64) *Batch {
	if !(scale > 0) {
		scale = 1
	}
	n := len(records)
	b := &Batch{
		Spot:       make([]float64, n),
		Strike:     make([]float64, n),
		Rate:       make([]float64, n),
		Volatility: make([]float64, n),
		Time:       make([]float64, n),
		Kind:       make([]OptionKind, n),
		Scale:      scale,
	}
	for i, rec := range records {
		b.Spot[i] = rec.Spot / scale
		b.Strike[i] = rec.Strike / scale
		b.Rate[i] = rec.Rate
		b.Volatility[i] = rec.Volatility
		b.Time[i] = rec.Time
		b.Kind[i] = rec.Kind
	}
	return b
}

// Len returns the number of packed options.
func (b *Batch) Len() int {
	return len(b.Spot)
}

// PriceAt prices the i-th packed option.
func (b *Batch) PriceAt(i int) (Result, error) {
	res, err := Price(b.Spot[i], b.Strike[i], b.Rate[i], b.Volatility[i], b.Time[i], b.Kind[i])
	if err != nil {
		return Result{}, &RecordError{Index: i, Err: err}
	}
	if math.IsNaN(res.Price) || math.IsInf(res.Price, 0) {
		return Result{}, &RecordError{Index: i, Err: fmt.Errorf("pricing: non-finite price %v", res.Price)}
	}
	return res, nil
}

// PriceRange prices options [start, end) into out, which must cover the batch.
func (b *Batch) PriceRange(out []Result, start, end int) error {
	for i := start; i < end; i++ {
		res, err := b.PriceAt(i)
		if err != nil {
			return err
		}
		out[i] = res
	}
	return nil
}

// PriceBatch prices every option once, in order. It stops at the first
// failing record and returns its *RecordError.
func PriceBatch(b *Batch) ([]Result, error) {
	out := make([]Result, b.Len())
	if err := b.PriceRange(out, 0, b.Len()); err != nil {
		return nil, err
	}
	return out, nil
}

// Prices extracts the price column from results.
func Prices(results []Result) []float64 {
	prices := make([]float64, len(results))
	for i, r := range results {
		prices[i] = r.Price
	}
	return prices
}
