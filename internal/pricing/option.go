package pricing

import (
	"fmt"
	"strings"
)

// DefaultScale is the divisor applied to spot and strike when packing a batch.
const DefaultScale = 120.0

// OptionKind identifies a European call or put.
type OptionKind int

const (
	Call OptionKind = iota
	Put
)

func (k OptionKind) String() string {
	switch k {
	case Call:
		return "CALL"
	case Put:
		return "PUT"
	default:
		return fmt.Sprintf("OptionKind(%d)", int(k))
	}
}

// Letter returns the single-letter code used by the option input format.
func (k OptionKind) Letter() byte {
	if k == Put {
		return 'P'
	}
	return 'C'
}

// ParseKind accepts "C"/"P" (any case) or the long names "call"/"put".
func ParseKind(s string) (OptionKind, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "C", "CALL":
		return Call, nil
	case "P", "PUT":
		return Put, nil
	}
	return 0, fmt.Errorf("unknown option type %q", s)
}

// OptionRecord is one line of the option benchmark input.
type OptionRecord struct {
	Spot          float64    // spot price
	Strike        float64    // strike price
	Rate          float64    // risk-free interest rate
	DividendRate  float64    // dividend rate (not used)
	Volatility    float64    // annualized volatility
	Time          float64    // time to maturity in years (1yr = 1.0, 6mos = 0.5)
	Kind          OptionKind // CALL or PUT
	DividendValue float64    // dividend value (not used)
	Reference     float64    // DerivaGem reference value
}

// Result is the priced output for one option.
type Result struct {
	Price float64 `json:"price"`
	N1    float64 `json:"n1"` // Φ(d1)
	N2    float64 `json:"n2"` // Φ(d2)
}
