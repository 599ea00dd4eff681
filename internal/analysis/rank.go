package analysis

import (
	"fmt"
	"sort"

	"inventory-game/internal/demand"
	"inventory-game/internal/model"
	"inventory-game/internal/policy"
	"inventory-game/internal/sim"
)

// PolicyResult is one benchmarked policy with its run summary.
type PolicyResult struct {
	Policy string
	Summary
}

// Replay runs a policy against a demand source. Each period the policy sees
// only the carried inventory, commits its order, and then demand is revealed,
// the same information a human player has.
func Replay(params model.GameParams, src demand.Source, p policy.Policy) (*sim.Result, error) {
	e, err := sim.New(params)
	if err != nil {
		return nil, err
	}
	if err := e.ResetRun(params.StartingInventory); err != nil {
		return nil, err
	}

	ledger := make([]model.PeriodRecord, 0, params.Horizon)
	totalUnmet := 0.0
	for period := 1; period <= params.Horizon; period++ {
		qty := p.OrderQty(policy.Context{Period: period, OnHand: e.CurrentInventory()})
		d, err := src.DemandFor(period)
		if err != nil {
			return nil, fmt.Errorf("period %d demand: %w", period, err)
		}
		rec, err := e.StepPeriod(period, qty, d)
		if err != nil {
			return nil, fmt.Errorf("policy %s, period %d: %w", p.Name(), period, err)
		}
		totalUnmet += rec.Unmet
		ledger = append(ledger, rec)
	}

	return &sim.Result{
		Ledger:          ledger,
		TotalCost:       e.CumulativeCost(),
		EndingInventory: e.CurrentInventory(),
		TotalUnmet:      totalUnmet,
	}, nil
}

// RankPolicies replays each policy over the same demand series and sorts
// ascending by total cost (cheapest first).
func RankPolicies(params model.GameParams, src demand.Source, policies []policy.Policy) ([]PolicyResult, error) {
	out := make([]PolicyResult, 0, len(policies))
	for _, p := range policies {
		res, err := Replay(params, src, p)
		if err != nil {
			return nil, err
		}
		out = append(out, PolicyResult{
			Policy:  p.Name(),
			Summary: Summarize(res.Ledger),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].TotalCost < out[j].TotalCost
	})
	return out, nil
}
