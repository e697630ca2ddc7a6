package pricing

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceHullExample(t *testing.T) {
	call, err := Price(42, 40, 0.10, 0.20, 0.50, Call)
	require.NoError(t, err)
	assert.InDelta(t, 4.7594, call.Price, 1e-3)

	put, err := Price(42, 40, 0.10, 0.20, 0.50, Put)
	require.NoError(t, err)
	assert.InDelta(t, 0.8086, put.Price, 1e-3)

	assert.Equal(t, call.N1, put.N1)
	assert.Equal(t, call.N2, put.N2)
	assert.Greater(t, call.N1, call.N2)
}

func TestPutCallParity(t *testing.T) {
	for _, s := range []float64{0.3, 42, 100, 250} {
		for _, k := range []float64{0.35, 40, 100, 300} {
			for _, r := range []float64{-0.01, 0, 0.05, 0.1} {
				for _, v := range []float64{0.05, 0.2, 0.8} {
					for _, tm := range []float64{0.01, 0.5, 2} {
						call, err := Price(s, k, r, v, tm, Call)
						require.NoError(t, err)
						put, err := Price(s, k, r, v, tm, Put)
						require.NoError(t, err)

						want := s - k*math.Exp(-r*tm)
						tol := 1e-9 * math.Max(s, k)
						assert.InDelta(t, want, call.Price-put.Price, tol,
							"s=%v k=%v r=%v v=%v t=%v", s, k, r, v, tm)
					}
				}
			}
		}
	}
}

func TestPriceIsHomogeneous(t *testing.T) {
	full, err := Price(100, 110, 0.1, 0.25, 0.5, Call)
	require.NoError(t, err)
	scaled, err := Price(100/DefaultScale, 110/DefaultScale, 0.1, 0.25, 0.5, Call)
	require.NoError(t, err)

	assert.InDelta(t, full.Price, scaled.Price*DefaultScale, 1e-9)
}

func TestPriceDomainErrors(t *testing.T) {
	cases := []struct {
		name                      string
		spot, strike, rate, v, tm float64
		field                     string
	}{
		{"zero spot", 0, 100, 0.05, 0.2, 1, "spot"},
		{"negative strike", 100, -1, 0.05, 0.2, 1, "strike"},
		{"zero strike", 100, 0, 0.05, 0.2, 1, "strike"},
		{"zero volatility", 100, 100, 0.05, 0, 1, "volatility"},
		{"zero time", 100, 100, 0.05, 0.2, 0, "time"},
		{"negative time", 100, 100, 0.05, 0.2, -0.5, "time"},
		{"NaN spot", math.NaN(), 100, 0.05, 0.2, 1, "spot"},
		{"infinite volatility", 100, 100, 0.05, math.Inf(1), 1, "volatility"},
		{"NaN rate", 100, 100, math.NaN(), 0.2, 1, "rate"},
		{"infinite rate", 100, 100, math.Inf(-1), 0.2, 1, "rate"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Price(tc.spot, tc.strike, tc.rate, tc.v, tc.tm, Call)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrDomain))

			var de *DomainError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, tc.field, de.Field)
		})
	}
}

func TestPriceUnknownKind(t *testing.T) {
	_, err := Price(100, 100, 0.05, 0.2, 1, OptionKind(7))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrDomain))
}

func TestParseKind(t *testing.T) {
	for in, want := range map[string]OptionKind{"C": Call, "c": Call, "call": Call, "P": Put, " put ": Put} {
		got, err := ParseKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := ParseKind("X")
	assert.Error(t, err)

	assert.Equal(t, byte('P'), Put.Letter())
	assert.Equal(t, "CALL", Call.String())
}
