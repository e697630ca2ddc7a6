package bench

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jwaldner/approxbench/internal/logger"
	"github.com/jwaldner/approxbench/internal/pricing"
	"github.com/jwaldner/approxbench/internal/sobel"
)

// slowCall is the duration above which a call is counted as slow.
const slowCall = 250 * time.Millisecond

// PerformanceWrapper wraps an Engine with call timing
type PerformanceWrapper struct {
	engine *Engine

	mu            sync.Mutex
	totalCalls    int64
	totalItems    int64
	totalDuration time.Duration
	slowCallCount int64
	failedCalls   int64
}

// NewPerformanceWrapper creates a wrapper around an engine
func NewPerformanceWrapper(engine *Engine) *PerformanceWrapper {
	return &PerformanceWrapper{engine: engine}
}

// Engine returns the wrapped engine
func (pw *PerformanceWrapper) Engine() *Engine {
	return pw.engine
}

// PriceBatch wraps Engine.PriceBatch with timing
func (pw *PerformanceWrapper) PriceBatch(ctx context.Context, b *pricing.Batch) ([]pricing.Result, error) {
	start := time.Now()
	results, err := pw.engine.PriceBatch(ctx, b)
	duration := time.Since(start)

	pw.record(duration, b.Len(), err)
	logger.Debug.Printf("📡 CALL: PriceBatch(%d options) took %v", b.Len(), duration)
	if duration > slowCall {
		logger.Debug.Printf("⚠️  SLOW CALL: PriceBatch(%d options) took %v", b.Len(), duration)
	}

	return results, err
}

// ScanImage wraps Engine.ScanImage with timing
func (pw *PerformanceWrapper) ScanImage(ctx context.Context, src *sobel.Grid, v sobel.Variant, emit sobel.EmitFunc) (*sobel.Grid, error) {
	start := time.Now()
	result, err := pw.engine.ScanImage(ctx, src, v, emit)
	duration := time.Since(start)

	pw.record(duration, src.Interior(), err)
	logger.Debug.Printf("📡 CALL: ScanImage(%dx%d, %s) took %v", src.Rows, src.Cols, v, duration)
	if duration > slowCall {
		logger.Debug.Printf("⚠️  SLOW CALL: ScanImage(%dx%d, %s) took %v", src.Rows, src.Cols, v, duration)
	}

	return result, err
}

func (pw *PerformanceWrapper) record(duration time.Duration, items int, err error) {
	pw.mu.Lock()
	defer pw.mu.Unlock()

	pw.totalCalls++
	pw.totalItems += int64(items)
	pw.totalDuration += duration
	if duration > slowCall {
		pw.slowCallCount++
	}
	if err != nil {
		pw.failedCalls++
	}
}

// PerformanceStats is a snapshot of the wrapper counters.
type PerformanceStats struct {
	Calls         int64         `json:"calls"`
	Items         int64         `json:"items"`
	Failed        int64         `json:"failed"`
	Slow          int64         `json:"slow"`
	TotalDuration time.Duration `json:"total_duration_ns"`
	AvgDuration   time.Duration `json:"avg_duration_ns"`
}

// Stats returns current counters
func (pw *PerformanceWrapper) Stats() PerformanceStats {
	pw.mu.Lock()
	defer pw.mu.Unlock()

	s := PerformanceStats{
		Calls:         pw.totalCalls,
		Items:         pw.totalItems,
		Failed:        pw.failedCalls,
		Slow:          pw.slowCallCount,
		TotalDuration: pw.totalDuration,
	}
	if s.Calls > 0 {
		s.AvgDuration = time.Duration(int64(s.TotalDuration) / s.Calls)
	}
	return s
}

// GetPerformanceStats returns current performance statistics
func (pw *PerformanceWrapper) GetPerformanceStats() string {
	s := pw.Stats()

	return fmt.Sprintf(`
📊 Engine Performance Stats
===========================
Total Calls:       %d
Items Processed:   %d
Failed Calls:      %d
Average Duration:  %v
Total Time:        %v
Slow Calls:        %d (>%v)
`,
		s.Calls,
		s.Items,
		s.Failed,
		s.AvgDuration,
		s.TotalDuration,
		s.Slow,
		slowCall,
	)
}

// Close logs the final performance report
func (pw *PerformanceWrapper) Close() {
	if pw.Stats().Calls > 0 {
		logger.Debug.Printf("📊 Engine Performance Report:%s", pw.GetPerformanceStats())
	}
}
