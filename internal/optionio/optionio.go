// Package optionio reads and writes the option benchmark text format.
//
// Input: the first non-blank line is the record count, followed by one
// record per line with nine whitespace-separated fields:
//
//	spot strike rate divq volatility time type divs refval
//
// Output: one price per line, printed with 18 decimal places.
package optionio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jwaldner/approxbench/internal/pricing"
)

const fieldsPerRecord = 9

// Read parses a count-prefixed option file.
func Read(r io.Reader) ([]pricing.OptionRecord, error) {
	sc := bufio.NewScanner(r)
	lineNo := 0
	count := -1
	var records []pricing.OptionRecord

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if count < 0 {
			n, err := strconv.Atoi(line)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("line %d: invalid record count %q", lineNo, line)
			}
			// the count is untrusted; records grow as lines arrive
			count = n
			continue
		}

		if len(records) == count {
			return nil, fmt.Errorf("line %d: more records than the declared count %d", lineNo, count)
		}
		rec, err := parseRecord(strings.Fields(line))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read options: %w", err)
	}
	if count < 0 {
		return nil, fmt.Errorf("read options: missing record count")
	}
	if len(records) != count {
		return nil, fmt.Errorf("read options: declared %d records, found %d", count, len(records))
	}
	return records, nil
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) ([]pricing.OptionRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

func parseRecord(fields []string) (pricing.OptionRecord, error) {
	if len(fields) != fieldsPerRecord {
		return pricing.OptionRecord{}, fmt.Errorf("expected %d fields, got %d", fieldsPerRecord, len(fields))
	}

	var nums [fieldsPerRecord]float64
	for i, f := range fields {
		if i == 6 {
			continue
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return pricing.OptionRecord{}, fmt.Errorf("field %d: %w", i+1, err)
		}
		nums[i] = v
	}

	kind, err := pricing.ParseKind(fields[6])
	if err != nil {
		return pricing.OptionRecord{}, fmt.Errorf("field 7: %w", err)
	}

	return pricing.OptionRecord{
		Spot:          nums[0],
		Strike:        nums[1],
		Rate:          nums[2],
		DividendRate:  nums[3],
		Volatility:    nums[4],
		Time:          nums[5],
		Kind:          kind,
		DividendValue: nums[7],
		Reference:     nums[8],
	}, nil
}

// Write emits records in the input format, count line first. Read returns
// the same values.
func Write(w io.Writer, records []pricing.OptionRecord) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", len(records))
	for _, r := range records {
		fmt.Fprintf(bw, "%s %s %s %s %s %s %c %s %s\n",
			formatField(r.Spot), formatField(r.Strike), formatField(r.Rate),
			formatField(r.DividendRate), formatField(r.Volatility), formatField(r.Time),
			r.Kind.Letter(), formatField(r.DividendValue), formatField(r.Reference))
	}
	return bw.Flush()
}

// formatField prints the shortest text that parses back to v exactly.
func formatField(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WritePrices emits one price per line with 18 decimal places.
func WritePrices(w io.Writer, prices []float64) error {
	bw := bufio.NewWriter(w)
	for _, p := range prices {
		if _, err := fmt.Fprintf(bw, "%.18f\n", p); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WritePricesFile creates (or truncates) path and writes prices to it.
func WritePricesFile(path string, prices []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WritePrices(f, prices); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
