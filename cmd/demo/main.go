package main

import (
	"flag"
	"fmt"
	"path/filepath"

	"inventory-game/internal/analysis"
	"inventory-game/internal/config"
	"inventory-game/internal/demand"
	"inventory-game/internal/model"
	"inventory-game/internal/policy"
	"inventory-game/internal/sim"
)

// Demo:
// - Build the classic game (30 days, unit cost 100, 20%/yr holding, 20/unit shortage)
// - Draw a seeded demand sequence
// - Replay a base-stock policy to show how the pieces fit together
func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	n := flag.Int("n", 12, "Number of periods to show")
	level := flag.Float64("level", 80, "Base-stock level for the demo policy")
	outCSV := flag.String("out", "", "Optional path to write ledger CSV (e.g. results/demo.csv)")
	flag.Parse()

	// Defaults (can be overridden via --config).
	params := model.GameParams{
		Horizon:                config.DefaultHorizon,
		UnitCost:               config.DefaultUnitCost,
		AnnualHoldingRatePct:   config.DefaultAnnualHoldingRatePct,
		ShortagePenaltyPerUnit: config.DefaultShortagePenaltyPerUnit,
	}
	var src demand.Source
	var err error

	if *cfgPath != "" {
		cfg, cerr := config.Load(*cfgPath)
		if cerr != nil {
			panic(cerr)
		}
		params = cfg.Game.ToModelParams()
		src, err = cfg.BuildSource(filepath.Dir(*cfgPath))
	} else {
		src, err = demand.NewRandomSource(config.DefaultDemandSeed,
			config.DefaultDemandLow, config.DefaultDemandHigh, params.Horizon)
	}
	if err != nil {
		panic(err)
	}

	p := &policy.BaseStock{Level: *level}
	result, err := analysis.Replay(params, src, p)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Playing %d periods, demand=%s, policy=%s(level=%.0f)\n", params.Horizon, src.Name(), p.Name(), *level)
	fmt.Printf("Daily holding cost per unit: %.5f\n\n", params.DailyHoldingCost())

	show := *n
	if show > len(result.Ledger) {
		show = len(result.Ledger)
	}
	for i := 0; i < show; i++ {
		r := result.Ledger[i]
		fmt.Printf(
			"day %2d  order=%5.0f  demand=%5.0f  sold=%5.0f  short=%4.0f  end=%5.0f  %-8s  cost=%9.2f  cum=%10.2f\n",
			r.Period,
			r.OrderQty,
			r.Demand,
			r.Fulfilled,
			r.Unmet,
			r.EndInventory,
			string(r.Outcome),
			r.PeriodCost,
			r.CumulativeCost,
		)
	}

	if *outCSV != "" {
		if err := sim.WriteLedgerCSV(*outCSV, result.Ledger); err != nil {
			panic(err)
		}
		fmt.Printf("\nWrote CSV: %s\n", *outCSV)
	}

	s := analysis.Summarize(result.Ledger)
	fmt.Printf("\nDone. Total cost=%.2f  Fill rate=%.3f  Ending inventory=%.0f\n",
		s.TotalCost, s.FillRate, s.EndingInventory)
}
