package models

import "github.com/shopspring/decimal"

// CalculationRequest for one Black-Scholes calculation
type CalculationRequest struct {
	StockPrice     float64 `json:"stock_price"`
	StrikePrice    float64 `json:"strike_price"`
	TimeToMaturity float64 `json:"time_to_maturity"`
	RiskFreeRate   float64 `json:"risk_free_rate"`
	Volatility     float64 `json:"volatility"`
	OptionType     string  `json:"option_type"` // "call"/"put" or "C"/"P"
}

// CalculationResponse for Black-Scholes results
type CalculationResponse struct {
	OptionPrice decimal.Decimal `json:"option_price"`
	N1          float64         `json:"n1"`
	N2          float64         `json:"n2"`
}

// BatchCalculationRequest for multiple calculations
type BatchCalculationRequest struct {
	Calculations []CalculationRequest `json:"calculations"`
	Scale        float64              `json:"scale,omitempty"` // Spot/strike divisor, defaults to 1
}

// BatchCalculationResponse for multiple results
type BatchCalculationResponse struct {
	Results           []CalculationResponse `json:"results"`
	ProcessedIn       float64               `json:"processed_in_ms"`
	ExecutionMode     string                `json:"execution_mode"`
	TotalCalculations int                   `json:"total_calculations"`
}

// SobelRequest asks for one filtered image
type SobelRequest struct {
	Variant string  `json:"variant"` // exact, sw1..sw4; empty means configured default
	Image   [][]int `json:"image"`
}

// SobelResponse carries the filtered grid; border pixels are zero
type SobelResponse struct {
	Variant     string  `json:"variant"`
	Reads       int     `json:"reads"`
	Rows        int     `json:"rows"`
	Cols        int     `json:"cols"`
	Result      [][]int `json:"result"`
	ProcessedIn float64 `json:"processed_in_ms"`
}

// ErrorResponse is returned for rejected requests
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Index   *int   `json:"index,omitempty"` // Failing record for batch errors
}
