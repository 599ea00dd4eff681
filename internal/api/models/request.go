package models

// GameConfig defines the economic parameters for a run. Zero-valued fields
// fall back to the classic game defaults (30 periods, unit cost 100,
// 20%/year holding, 20/unit shortage).
type GameConfig struct {
	Name                   string  `json:"name,omitempty"`
	Horizon                int     `json:"horizon"`
	UnitCost               float64 `json:"unit_cost"`
	AnnualHoldingRatePct   float64 `json:"annual_holding_rate_pct"`
	ShortagePenaltyPerUnit float64 `json:"shortage_penalty_per_unit"`
	StartingInventory      float64 `json:"starting_inventory,omitempty"`
}

// DemandConfig defines where demand comes from.
// Mode "fixed" takes the series inline (already extracted from whatever file
// the front end accepted); mode "random" takes seed and [low, high].
// Seed is a pointer so an explicit 0 is distinguishable from "not set".
type DemandConfig struct {
	Mode   string    `json:"mode" binding:"required"` // "fixed" or "random"
	Series []float64 `json:"series,omitempty"`
	Seed   *int64    `json:"seed,omitempty"`
	Low    int       `json:"low,omitempty"`
	High   int       `json:"high,omitempty"`
}

// CreateGameRequest starts a new interactive run.
type CreateGameRequest struct {
	GameFile string     `json:"game_file,omitempty"` // preset under examples/games/
	Game     GameConfig `json:"game,omitempty"`
	Demand   DemandConfig `json:"demand" binding:"required"`
}

// OrderRequest commits one period's order quantity.
// Pointer so that an explicit 0 survives required-binding.
type OrderRequest struct {
	OrderQty *float64 `json:"order_qty" binding:"required"`
}

// SimulateRequest runs a whole order sequence in one call.
type SimulateRequest struct {
	GameFile string          `json:"game_file,omitempty"`
	Game     GameConfig      `json:"game,omitempty"`
	Demand   DemandConfig    `json:"demand" binding:"required"`
	Orders   []float64       `json:"orders" binding:"required"`
	Options  SimulateOptions `json:"options,omitempty"`
}

// SimulateOptions contains optional simulate parameters.
type SimulateOptions struct {
	IncludeLedger bool `json:"include_ledger,omitempty"` // default: false
}

// PolicySpec selects a benchmark policy and its parameters.
type PolicySpec struct {
	Name   string                 `json:"name" binding:"required"` // "constant" or "base-stock"
	Params map[string]interface{} `json:"params,omitempty"`
}

// CompareRequest benchmarks policies over one demand series.
type CompareRequest struct {
	GameFile string       `json:"game_file,omitempty"`
	Game     GameConfig   `json:"game,omitempty"`
	Demand   DemandConfig `json:"demand" binding:"required"`
	Policies []PolicySpec `json:"policies" binding:"required"`
}
