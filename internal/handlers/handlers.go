package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	bench "github.com/jwaldner/approxbench/bench_lib"
	"github.com/jwaldner/approxbench/internal/config"
	"github.com/jwaldner/approxbench/internal/logger"
	"github.com/jwaldner/approxbench/internal/models"
	"github.com/jwaldner/approxbench/internal/pricing"
	"github.com/jwaldner/approxbench/internal/sobel"
	testdata "github.com/jwaldner/approxbench/test_data"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 8 << 20

// KernelHandler serves the pricing and edge-detection endpoints
type KernelHandler struct {
	perf *bench.PerformanceWrapper
	cfg  *config.Config
}

// NewKernelHandler creates a handler around a timed engine
func NewKernelHandler(perf *bench.PerformanceWrapper, cfg *config.Config) *KernelHandler {
	return &KernelHandler{perf: perf, cfg: cfg}
}

// NewRouter wires every endpoint
func NewRouter(h *KernelHandler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/health", h.HealthHandler).Methods("GET")
	r.HandleFunc("/api/price", h.PriceHandler).Methods("POST")
	r.HandleFunc("/api/price/fixtures", h.FixturesHandler).Methods("GET")
	r.HandleFunc("/api/sobel", h.SobelHandler).Methods("POST")
	r.HandleFunc("/api/sobel/compare", h.CompareHandler).Methods("GET")
	return r
}

// HealthHandler reports engine mode and call statistics
func (h *KernelHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":         "ok",
		"execution_mode": h.perf.Engine().ExecutionMode(),
		"workers":        h.perf.Engine().Workers(),
		"stats":          h.perf.Stats(),
		"timestamp":      time.Now().Format(time.RFC3339),
	})
}

// PriceHandler prices a batch of options. The batch halts at the first
// invalid record, which is reported with its index.
func (h *KernelHandler) PriceHandler(w http.ResponseWriter, r *http.Request) {
	var req models.BatchCalculationRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error(), nil)
		return
	}

	records := make([]pricing.OptionRecord, len(req.Calculations))
	for i, c := range req.Calculations {
		kind, err := pricing.ParseKind(c.OptionType)
		if err != nil {
			idx := i
			writeError(w, http.StatusBadRequest, err.Error(), &idx)
			return
		}
		records[i] = pricing.OptionRecord{
			Spot:       c.StockPrice,
			Strike:     c.StrikePrice,
			Rate:       c.RiskFreeRate,
			Volatility: c.Volatility,
			Time:       c.TimeToMaturity,
			Kind:       kind,
		}
	}

	scale := req.Scale
	if !(scale > 0) {
		scale = 1
	}
	batch := pricing.NewBatch(records, scale)

	start := time.Now()
	results, err := h.perf.PriceBatch(r.Context(), batch)
	if err != nil {
		var recErr *pricing.RecordError
		if errors.As(err, &recErr) {
			logger.Warn.Printf("⚠️ PRICE: rejected batch: %v", err)
			writeError(w, http.StatusUnprocessableEntity, err.Error(), &recErr.Index)
			return
		}
		logger.Error.Printf("❌ PRICE: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}

	resp := models.BatchCalculationResponse{
		Results:           make([]models.CalculationResponse, len(results)),
		ProcessedIn:       time.Since(start).Seconds() * 1000,
		ExecutionMode:     string(h.perf.Engine().ExecutionMode()),
		TotalCalculations: len(results),
	}
	for i, res := range results {
		resp.Results[i] = models.CalculationResponse{
			OptionPrice: decimal.NewFromFloat(res.Price),
			N1:          res.N1,
			N2:          res.N2,
		}
	}

	logger.Info.Printf("⚡ PRICE: %d options in %.3fms", len(results), resp.ProcessedIn)
	writeJSON(w, http.StatusOK, resp)
}

// FixturesHandler prices the built-in option table and returns the
// reference check
func (h *KernelHandler) FixturesHandler(w http.ResponseWriter, r *http.Request) {
	analysis, err := h.perf.Engine().AnalyzePricing(r.Context(), testdata.CopyOptions(), h.cfg.Pricing.Scale, h.cfg.Pricing.Tolerance)
	if err != nil {
		logger.Error.Printf("❌ FIXTURES: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

// SobelHandler filters a caller-supplied image
func (h *KernelHandler) SobelHandler(w http.ResponseWriter, r *http.Request) {
	var req models.SobelRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error(), nil)
		return
	}

	name := req.Variant
	if name == "" {
		name = h.cfg.Sobel.Variant
	}
	variant, err := sobel.ParseVariant(name)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	src, err := sobel.GridFromRows(req.Image)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	start := time.Now()
	dst, err := h.perf.ScanImage(r.Context(), src, variant, nil)
	if err != nil {
		logger.Error.Printf("❌ SOBEL: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}

	writeJSON(w, http.StatusOK, models.SobelResponse{
		Variant:     variant.String(),
		Reads:       variant.Reads(),
		Rows:        dst.Rows,
		Cols:        dst.Cols,
		Result:      dst.ToRows(),
		ProcessedIn: time.Since(start).Seconds() * 1000,
	})
}

// CompareHandler reports every variant's deviation on the built-in image
func (h *KernelHandler) CompareHandler(w http.ResponseWriter, r *http.Request) {
	src, err := sobel.GridFromRows(testdata.ImageRows())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	variants, err := h.perf.Engine().AnalyzeVariants(r.Context(), src)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"rows":     src.Rows,
		"cols":     src.Cols,
		"variants": variants,
	})
}

func decode(w http.ResponseWriter, r *http.Request, v interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn.Printf("⚠️ failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string, index *int) {
	writeJSON(w, status, models.ErrorResponse{Status: "error", Message: message, Index: index})
}
