package main

import (
	"context"
	"fmt"
	"os"
	"reflect"
	"time"

	bench "github.com/jwaldner/approxbench/bench_lib"
	"github.com/jwaldner/approxbench/internal/pricing"
	"github.com/jwaldner/approxbench/internal/sobel"
	testdata "github.com/jwaldner/approxbench/test_data"
)

// copies of the option table priced per run
const repeat = 2000

func main() {
	fmt.Println("🔬 Testing SERIAL vs PARALLEL vs AUTO engines")
	fmt.Printf("📊 Options: %d records x %d copies\n", len(testdata.Options), repeat)
	fmt.Printf("🖼️  Image: %dx%d\n", testdata.ImageHeight, testdata.ImageWidth)
	fmt.Println()

	records := make([]pricing.OptionRecord, 0, repeat*len(testdata.Options))
	for i := 0; i < repeat; i++ {
		records = append(records, testdata.Options...)
	}
	batch := pricing.NewBatch(records, pricing.DefaultScale)

	src, err := sobel.GridFromRows(testdata.ImageRows())
	if err != nil {
		fmt.Printf("❌ Bad fixture image: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	var baseline []pricing.Result
	var baseGrids []*sobel.Grid
	ok := true

	for _, mode := range []string{"serial", "parallel", "auto"} {
		results, grids := testEngine(ctx, mode, batch, src)
		if results == nil {
			ok = false
			continue
		}
		if baseline == nil {
			baseline, baseGrids = results, grids
			continue
		}
		if !reflect.DeepEqual(baseline, results) {
			fmt.Printf("❌ %s prices differ from serial\n\n", mode)
			ok = false
		}
		for i, g := range grids {
			if !reflect.DeepEqual(baseGrids[i].Pix, g.Pix) {
				fmt.Printf("❌ %s %s grid differs from serial\n\n", mode, sobel.Variants()[i])
				ok = false
			}
		}
	}

	if !ok {
		os.Exit(1)
	}
	fmt.Println("✅ All modes produced identical prices and grids")
}

func testEngine(ctx context.Context, mode string, batch *pricing.Batch, src *sobel.Grid) ([]pricing.Result, []*sobel.Grid) {
	fmt.Printf("🧪 Testing %s engine\n", mode)
	fmt.Println("=" + fmt.Sprintf("%*s", len(mode)+15, "="))

	engine := bench.NewEngineForced(mode)

	start := time.Now()
	results, err := engine.PriceBatch(ctx, batch)
	if err != nil {
		fmt.Printf("❌ Error: %v\n\n", err)
		return nil, nil
	}
	priceMs := time.Since(start).Seconds() * 1000

	fmt.Printf("✅ Priced %d options in %.2fms (%d workers)\n", len(results), priceMs, engine.Workers())

	grids := make([]*sobel.Grid, 0, len(sobel.Variants()))
	for _, v := range sobel.Variants() {
		start := time.Now()
		g, err := engine.ScanImage(ctx, src, v, nil)
		if err != nil {
			fmt.Printf("❌ %s: %v\n\n", v, err)
			return nil, nil
		}
		fmt.Printf("   🖼️  %-5s %d reads, %.3fms\n", v, v.Reads(), time.Since(start).Seconds()*1000)
		grids = append(grids, g)
	}

	fmt.Println()
	return results, grids
}
