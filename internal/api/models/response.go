package models

import "time"

// GameResponse describes the current state of an interactive run.
type GameResponse struct {
	ID               string    `json:"id"`
	Status           string    `json:"status"` // "in_progress", "finished"
	NextPeriod       int       `json:"next_period,omitempty"`
	Horizon          int       `json:"horizon"`
	CurrentInventory float64   `json:"current_inventory"`
	CumulativeCost   float64   `json:"cumulative_cost"`
	CreatedAt        time.Time `json:"created_at"`
}

// LedgerRow represents one period in the run ledger.
type LedgerRow struct {
	Period             int     `json:"period"`
	OrderQty           float64 `json:"order_qty"`
	Demand             float64 `json:"demand"`
	BeginInventory     float64 `json:"begin_inventory"`
	AvailableInventory float64 `json:"available_inventory"`
	Fulfilled          float64 `json:"fulfilled"`
	Unmet              float64 `json:"unmet"`
	EndInventory       float64 `json:"end_inventory"`
	Outcome            string  `json:"outcome"` // "SHORTAGE", "SURPLUS", "EXACT"
	PurchaseCost       float64 `json:"purchase_cost"`
	HoldingCost        float64 `json:"holding_cost"`
	ShortageCost       float64 `json:"shortage_cost"`
	PeriodCost         float64 `json:"period_cost"`
	CumulativeCost     float64 `json:"cumulative_cost"`
}

// StepResponse is returned after an order commits: the resolved period plus
// the run state the next decision starts from.
type StepResponse struct {
	Record LedgerRow    `json:"record"`
	Game   GameResponse `json:"game"`
}

// GameSummary contains aggregated run results.
type GameSummary struct {
	Periods           int     `json:"periods"`
	TotalCost         float64 `json:"total_cost"`
	TotalPurchaseCost float64 `json:"total_purchase_cost"`
	TotalHoldingCost  float64 `json:"total_holding_cost"`
	TotalShortageCost float64 `json:"total_shortage_cost"`
	TotalDemand       float64 `json:"total_demand"`
	TotalFulfilled    float64 `json:"total_fulfilled"`
	TotalUnmet        float64 `json:"total_unmet"`
	FillRate          float64 `json:"fill_rate"`
	PeriodsShort      int     `json:"periods_short"`
	AvgEndInventory   float64 `json:"avg_end_inventory"`
	PeakEndInventory  float64 `json:"peak_end_inventory"`
	EndingInventory   float64 `json:"ending_inventory"`
}

// LedgerResponse is the full table plus its summary.
type LedgerResponse struct {
	Ledger  []LedgerRow `json:"ledger"`
	Summary GameSummary `json:"summary"`
}

// SimulateResponse is the result of a stateless full run.
type SimulateResponse struct {
	Status  string      `json:"status"`
	Summary GameSummary `json:"summary"`
	Ledger  []LedgerRow `json:"ledger,omitempty"`
}

// CompareResponse represents the response from a policy comparison.
type CompareResponse struct {
	Comparison []PolicyComparison `json:"comparison"`
}

// PolicyComparison contains results for one policy, cheapest first.
type PolicyComparison struct {
	Policy  string      `json:"policy"`
	Summary GameSummary `json:"summary"`
}

// PolicyInfo represents information about a benchmark policy.
type PolicyInfo struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  []ParameterInfo `json:"parameters"`
}

// ParameterInfo describes a policy parameter.
type ParameterInfo struct {
	Name        string      `json:"name"`
	Type        string      `json:"type"` // "float", "int", "string"
	Description string      `json:"description"`
	Default     interface{} `json:"default,omitempty"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
