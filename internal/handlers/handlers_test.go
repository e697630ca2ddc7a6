package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bench "github.com/jwaldner/approxbench/bench_lib"
	"github.com/jwaldner/approxbench/internal/config"
	"github.com/jwaldner/approxbench/internal/models"
	"github.com/jwaldner/approxbench/internal/pricing"
)

func newTestRouter() http.Handler {
	cfg := &config.Config{
		Pricing: config.PricingConfig{Scale: pricing.DefaultScale, Tolerance: 1e-2},
		Sobel:   config.SobelConfig{Variant: "exact"},
	}
	perf := bench.NewPerformanceWrapper(bench.NewEngineForced("parallel"))
	return NewRouter(NewKernelHandler(perf, cfg))
}

func do(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestRouter(), http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "parallel", body["execution_mode"])
}

func TestPrice(t *testing.T) {
	req := models.BatchCalculationRequest{
		Calculations: []models.CalculationRequest{
			{StockPrice: 42, StrikePrice: 40, TimeToMaturity: 0.5, RiskFreeRate: 0.1, Volatility: 0.2, OptionType: "call"},
			{StockPrice: 42, StrikePrice: 40, TimeToMaturity: 0.5, RiskFreeRate: 0.1, Volatility: 0.2, OptionType: "P"},
		},
	}
	rec := do(t, newTestRouter(), http.MethodPost, "/api/price", req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp models.BatchCalculationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 2)
	assert.Equal(t, 2, resp.TotalCalculations)
	assert.Equal(t, "parallel", resp.ExecutionMode)
	assert.InDelta(t, 4.7594, resp.Results[0].OptionPrice.InexactFloat64(), 1e-3)
	assert.InDelta(t, 0.8086, resp.Results[1].OptionPrice.InexactFloat64(), 1e-3)
}

func TestPriceScaled(t *testing.T) {
	req := models.BatchCalculationRequest{
		Scale: pricing.DefaultScale,
		Calculations: []models.CalculationRequest{
			{StockPrice: 42, StrikePrice: 40, TimeToMaturity: 0.5, RiskFreeRate: 0.1, Volatility: 0.2, OptionType: "C"},
		},
	}
	rec := do(t, newTestRouter(), http.MethodPost, "/api/price", req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.BatchCalculationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.InDelta(t, 4.7594/pricing.DefaultScale, resp.Results[0].OptionPrice.InexactFloat64(), 1e-5)
}

func TestPriceRejectsDomainErrorWithIndex(t *testing.T) {
	req := models.BatchCalculationRequest{
		Calculations: []models.CalculationRequest{
			{StockPrice: 42, StrikePrice: 40, TimeToMaturity: 0.5, RiskFreeRate: 0.1, Volatility: 0.2, OptionType: "C"},
			{StockPrice: 42, StrikePrice: 40, TimeToMaturity: 0, RiskFreeRate: 0.1, Volatility: 0.2, OptionType: "C"},
		},
	}
	rec := do(t, newTestRouter(), http.MethodPost, "/api/price", req)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Index)
	assert.Equal(t, 1, *resp.Index)
	assert.Contains(t, resp.Message, "time")
}

func TestPriceBadRequests(t *testing.T) {
	h := newTestRouter()

	rec := do(t, h, http.MethodPost, "/api/price", "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/price", `{"calculations": [], "unknown": 1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/price", `{"calculations": [{"stock_price": 1, "strike_price": 1, "time_to_maturity": 1, "volatility": 0.2, "option_type": "straddle"}]}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Index)
	assert.Equal(t, 0, *resp.Index)

	rec = do(t, h, http.MethodGet, "/api/price", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestFixtures(t *testing.T) {
	rec := do(t, newTestRouter(), http.MethodGet, "/api/price/fixtures", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var analysis bench.PricingAnalysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &analysis))
	assert.Len(t, analysis.Results, 39)
	require.NotNil(t, analysis.Report)
	assert.Zero(t, analysis.Report.Failures)
	assert.NotEmpty(t, analysis.RunID)
}

func TestSobel(t *testing.T) {
	h := newTestRouter()
	req := models.SobelRequest{
		Image: [][]int{
			{0, 0, 0},
			{100, 0, 0},
			{0, 0, 0},
		},
	}
	rec := do(t, h, http.MethodPost, "/api/sobel", req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp models.SobelResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "exact", resp.Variant)
	assert.Equal(t, 8, resp.Reads)
	assert.Equal(t, [][]int{{0, 0, 0}, {0, 200, 0}, {0, 0, 0}}, resp.Result)

	req.Variant = "sw1"
	rec = do(t, h, http.MethodPost, "/api/sobel", req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 7, resp.Reads)
	assert.Equal(t, 0, resp.Result[1][1])
}

func TestSobelBadRequests(t *testing.T) {
	h := newTestRouter()

	rec := do(t, h, http.MethodPost, "/api/sobel", models.SobelRequest{Variant: "sw9", Image: [][]int{{0}}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/sobel", models.SobelRequest{Image: [][]int{{0, 300}}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/sobel", models.SobelRequest{Image: [][]int{{0, 1}, {2}}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCompare(t *testing.T) {
	rec := do(t, newTestRouter(), http.MethodGet, "/api/sobel/compare", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Rows     int                     `json:"rows"`
		Cols     int                     `json:"cols"`
		Variants []bench.VariantAnalysis `json:"variants"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 16, body.Rows)
	require.Len(t, body.Variants, 5)
	assert.Equal(t, "exact", body.Variants[0].Name)
	assert.Equal(t, 196, body.Variants[0].Pixels)
	assert.Zero(t, body.Variants[0].Differing)
}
