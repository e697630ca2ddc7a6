package bench

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/jwaldner/approxbench/internal/config"
	"github.com/jwaldner/approxbench/internal/pricing"
	"github.com/jwaldner/approxbench/internal/sobel"
)

// ExecutionMode defines how batches are executed
type ExecutionMode string

const (
	ExecutionModeAuto     ExecutionMode = "auto"
	ExecutionModeSerial   ExecutionMode = "serial"
	ExecutionModeParallel ExecutionMode = "parallel"
)

// ParseExecutionMode validates a configured mode. Empty means serial and
// "cpu" is accepted as an alias for serial.
func ParseExecutionMode(s string) (ExecutionMode, error) {
	switch s {
	case "", "serial", "cpu":
		return ExecutionModeSerial, nil
	case "parallel":
		return ExecutionModeParallel, nil
	case "auto":
		return ExecutionModeAuto, nil
	}
	return "", fmt.Errorf("unknown execution mode %q (want serial|parallel|auto)", s)
}

// DefaultParallelThreshold is the batch size at which auto mode fans out.
const DefaultParallelThreshold = 4096

// Engine runs the pricing and edge-detection kernels over whole inputs.
// Every mode produces identical results; parallel mode only splits the work.
type Engine struct {
	executionMode     ExecutionMode
	workers           int
	parallelThreshold int
}

// NewEngine creates a serial engine
func NewEngine() *Engine {
	return &Engine{
		executionMode:     ExecutionModeSerial,
		workers:           runtime.GOMAXPROCS(0),
		parallelThreshold: DefaultParallelThreshold,
	}
}

// NewEngineForced creates engine with forced execution mode
func NewEngineForced(mode string) *Engine {
	e := NewEngine()

	switch mode {
	case "serial", "cpu":
		e.executionMode = ExecutionModeSerial
	case "parallel":
		e.executionMode = ExecutionModeParallel
	default:
		e.executionMode = ExecutionModeAuto
	}

	return e
}

// NewEngineFromConfig applies the engine section of the configuration.
func NewEngineFromConfig(cfg config.EngineConfig) *Engine {
	mode := cfg.ExecutionMode
	if mode == "" {
		mode = string(ExecutionModeSerial)
	}
	e := NewEngineForced(mode)
	if cfg.Workers > 0 {
		e.workers = cfg.Workers
	}
	if cfg.ParallelThreshold > 0 {
		e.parallelThreshold = cfg.ParallelThreshold
	}
	return e
}

// ExecutionMode returns the configured mode
func (e *Engine) ExecutionMode() ExecutionMode {
	return e.executionMode
}

// Workers returns the parallel worker limit
func (e *Engine) Workers() int {
	return e.workers
}

// effectiveMode resolves auto for a workload of n items.
func (e *Engine) effectiveMode(n int) ExecutionMode {
	switch e.executionMode {
	case ExecutionModeParallel:
		return ExecutionModeParallel
	case ExecutionModeAuto:
		if n >= e.parallelThreshold && e.workers > 1 {
			return ExecutionModeParallel
		}
	}
	return ExecutionModeSerial
}

// PriceBatch prices every option of the batch. On failure it returns the
// *pricing.RecordError of the lowest failing index in every mode.
func (e *Engine) PriceBatch(ctx context.Context, b *pricing.Batch) ([]pricing.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	n := b.Len()
	if n == 0 {
		return []pricing.Result{}, nil
	}
	if e.effectiveMode(n) == ExecutionModeSerial {
		return pricing.PriceBatch(b)
	}

	out := make([]pricing.Result, n)
	spans := split(n, e.workers)
	errs := make([]error, len(spans))

	var g errgroup.Group
	g.SetLimit(e.workers)
	for k, s := range spans {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			errs[k] = b.PriceRange(out, s.start, s.end)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// ScanImage filters the interior of src with the variant. emit, when set,
// sees every interior pixel in row-major order regardless of mode.
func (e *Engine) ScanImage(ctx context.Context, src *sobel.Grid, v sobel.Variant, emit sobel.EmitFunc) (*sobel.Grid, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !v.Valid() {
		return nil, fmt.Errorf("%w: %d", sobel.ErrUnknownVariant, int(v))
	}
	if e.effectiveMode(src.Interior()) == ExecutionModeSerial {
		return sobel.Scan(src, v, emit), nil
	}

	dst := sobel.NewGrid(src.Rows, src.Cols)
	var g errgroup.Group
	g.SetLimit(e.workers)
	for _, s := range split(src.Rows-2, e.workers) {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sobel.ScanRows(src, dst, v, s.start+1, s.end+1, nil)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if emit != nil {
		sobel.EmitInterior(dst, emit)
	}
	return dst, nil
}

type span struct {
	start, end int
}

// split cuts [0, n) into at most parts contiguous spans.
func split(n, parts int) []span {
	if n <= 0 {
		return nil
	}
	if parts < 1 {
		parts = 1
	}
	if parts > n {
		parts = n
	}
	size := (n + parts - 1) / parts
	spans := make([]span, 0, parts)
	for start := 0; start < n; start += size {
		end := start + size
		if end > n {
			end = n
		}
		spans = append(spans, span{start, end})
	}
	return spans
}
