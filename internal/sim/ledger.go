package sim

import (
	"fmt"

	"inventory-game/internal/demand"
	"inventory-game/internal/model"
)

// Result bundles the ledger of a completed (or partial) run with its totals.
type Result struct {
	Ledger          []model.PeriodRecord
	TotalCost       float64
	EndingInventory float64
	TotalUnmet      float64
}

// Run drives a full game: ResetRun, then one StepPeriod per order, pulling
// demand from src. len(orders) must equal params.Horizon.
func Run(params model.GameParams, orders []float64, src demand.Source) (*Result, error) {
	if src == nil {
		return nil, fmt.Errorf("demand source is nil")
	}
	if len(orders) != params.Horizon {
		return nil, fmt.Errorf("got %d orders, horizon is %d", len(orders), params.Horizon)
	}
	if src.Horizon() < params.Horizon {
		return nil, fmt.Errorf("%w: source covers %d periods, horizon is %d",
			demand.ErrInsufficientData, src.Horizon(), params.Horizon)
	}

	e, err := New(params)
	if err != nil {
		return nil, err
	}
	if err := e.ResetRun(params.StartingInventory); err != nil {
		return nil, err
	}

	ledger := make([]model.PeriodRecord, 0, params.Horizon)
	totalUnmet := 0.0

	for period := 1; period <= params.Horizon; period++ {
		d, err := src.DemandFor(period)
		if err != nil {
			return nil, fmt.Errorf("period %d demand: %w", period, err)
		}
		rec, err := e.StepPeriod(period, orders[period-1], d)
		if err != nil {
			return nil, fmt.Errorf("period %d step: %w", period, err)
		}
		totalUnmet += rec.Unmet
		ledger = append(ledger, rec)
	}

	return &Result{
		Ledger:          ledger,
		TotalCost:       e.CumulativeCost(),
		EndingInventory: e.CurrentInventory(),
		TotalUnmet:      totalUnmet,
	}, nil
}
