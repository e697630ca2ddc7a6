package pricing

import (
	"fmt"
	"math"
)

// Price values a European option without dividends.
//
// Spot, strike, time and volatility must be strictly positive; the rate may
// be any finite number. Invalid inputs return a *DomainError and no price.
func Price(spot, strike, rate, volatility, time float64, kind OptionKind) (Result, error) {
	if err := checkInputs(spot, strike, rate, volatility, time); err != nil {
		return Result{}, err
	}
	if kind != Call && kind != Put {
		return Result{}, fmt.Errorf("pricing: unsupported option kind %v", kind)
	}

	sqrtTime := math.Sqrt(time)
	den := volatility * sqrtTime

	d1 := (math.Log(spot/strike) + (rate+0.5*volatility*volatility)*time) / den
	d2 := d1 - den

	n1 := CNDF(d1)
	n2 := CNDF(d2)

	discounted := strike * math.Exp(-rate*time)

	var price float64
	if kind == Call {
		price = spot*n1 - discounted*n2
	} else {
		price = discounted*(1.0-n2) - spot*(1.0-n1)
	}

	return Result{Price: price, N1: n1, N2: n2}, nil
}

// PriceRecord prices a record as-is, without scaling.
func PriceRecord(rec OptionRecord) (Result, error) {
	return Price(rec.Spot, rec.Strike, rec.Rate, rec.Volatility, rec.Time, rec.Kind)
}

func checkInputs(spot, strike, rate, volatility, time float64) error {
	positive := []struct {
		name string
		v    float64
	}{
		{"spot", spot},
		{"strike", strike},
		{"volatility", volatility},
		{"time", time},
	}
	for _, p := range positive {
		if !(p.v > 0) || math.IsInf(p.v, 0) {
			return &DomainError{Field: p.name, Value: p.v}
		}
	}
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		return &DomainError{Field: "rate", Value: rate}
	}
	return nil
}
