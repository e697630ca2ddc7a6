package optionio

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwaldner/approxbench/internal/pricing"
	testdata "github.com/jwaldner/approxbench/test_data"
)

const sample = `2
42.00 40.00 0.1000 0.00 0.20 0.50 C 0.00 4.759423036851750055
42.00 40.00 0.1000 0.00 0.20 0.50 P 0.00 0.808600016880314021
`

func TestRead(t *testing.T) {
	recs, err := Read(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, recs, 2)

	want := pricing.OptionRecord{
		Spot: 42, Strike: 40, Rate: 0.1, Volatility: 0.2, Time: 0.5,
		Kind: pricing.Put, Reference: 0.808600016880314021,
	}
	assert.Equal(t, want, recs[1])
	assert.Equal(t, pricing.Call, recs[0].Kind)
}

func TestReadSkipsBlankAndCommentLines(t *testing.T) {
	in := "# generated\n\n1\n\n100 100 0.05 0 0.15 1 p 0 3.7146\n\n"
	recs, err := Read(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, pricing.Put, recs[0].Kind)
}

func TestReadErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		msg  string
	}{
		{"empty", "", "missing record count"},
		{"bad count", "forty\n", "line 1: invalid record count"},
		{"negative count", "-1\n", "invalid record count"},
		{"short record", "1\n42 40 0.1 0 0.2 0.5 C 0\n", "line 2: expected 9 fields, got 8"},
		{"bad number", "1\n42 abc 0.1 0 0.2 0.5 C 0 4.7\n", "line 2: field 2"},
		{"bad kind", "1\n42 40 0.1 0 0.2 0.5 X 0 4.7\n", "line 2: field 7"},
		{"too few", "2\n42 40 0.1 0 0.2 0.5 C 0 4.7\n", "declared 2 records, found 1"},
		{"too many", "1\n42 40 0.1 0 0.2 0.5 C 0 4.7\n42 40 0.1 0 0.2 0.5 P 0 0.8\n", "line 3: more records"},
		{"huge count", "9223372036854775807\n42 40 0.1 0 0.2 0.5 C 0 4.75\n", "declared 9223372036854775807 records, found 1"},
		{"huge count no records", "100000000\n", "declared 100000000 records, found 0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var recs []pricing.OptionRecord
			var err error
			require.NotPanics(t, func() {
				recs, err = Read(strings.NewReader(tc.in))
			})
			require.Error(t, err)
			assert.Nil(t, recs)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, testdata.Options))

	first, _, _ := strings.Cut(buf.String(), "\n")
	assert.Equal(t, "39", first)

	got, err := Read(&buf)
	require.NoError(t, err)
	if diff := cmp.Diff(testdata.Options, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteKeepsFullPrecision(t *testing.T) {
	in := []pricing.OptionRecord{{
		Spot: 42.125, Strike: 40.005, Rate: 0.04125, DividendRate: 0.0125,
		Volatility: 0.2075, Time: 0.0833, Kind: pricing.Put, DividendValue: 0.5,
		Reference: 1.0 / 3.0,
	}}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, in))

	got, err := Read(&buf)
	require.NoError(t, err)
	if diff := cmp.Diff(in, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestWritePrices(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePrices(&buf, []float64{0.5, 4.759423036851750055, 0}))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "0.500000000000000000", lines[0])
	assert.Equal(t, "0.000000000000000000", lines[2])
	for _, l := range lines {
		_, frac, ok := strings.Cut(l, ".")
		require.True(t, ok)
		assert.Len(t, frac, 18)
	}
}

func TestFileHelpers(t *testing.T) {
	dir := t.TempDir()

	in := filepath.Join(dir, "options.txt")
	require.NoError(t, os.WriteFile(in, []byte(sample), 0o644))
	recs, err := ReadFile(in)
	require.NoError(t, err)
	assert.Len(t, recs, 2)

	_, err = ReadFile(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)

	out := filepath.Join(dir, "prices.txt")
	require.NoError(t, WritePricesFile(out, []float64{1.25}))
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "1.250000000000000000\n", string(data))
}
