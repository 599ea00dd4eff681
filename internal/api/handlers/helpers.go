package handlers

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"inventory-game/internal/analysis"
	"inventory-game/internal/api/models"
	"inventory-game/internal/config"
	"inventory-game/internal/demand"
	"inventory-game/internal/model"
	"inventory-game/internal/policy"
)

// buildParams turns a request game block into validated engine parameters,
// merging a preset file first when game_file names one.
func buildParams(gameFile string, g models.GameConfig) (model.GameParams, error) {
	cfg := &config.Config{
		GameFile: gameFile,
		Game: config.GameConfig{
			Name:                   g.Name,
			Horizon:                g.Horizon,
			UnitCost:               g.UnitCost,
			AnnualHoldingRatePct:   g.AnnualHoldingRatePct,
			ShortagePenaltyPerUnit: g.ShortagePenaltyPerUnit,
			StartingInventory:      g.StartingInventory,
		},
	}

	// game_file should be just the preset name (e.g. "classic"); files are
	// looked up in the games directory.
	if cfg.GameFile != "" {
		gamePath := filepath.Join(gameDir(), cfg.GameFile+".yaml")
		loaded, err := config.LoadUnchecked(gamePath)
		if err == nil {
			// Merge: preset file is base, request config is override.
			cfg.Game = config.MergeGame(loaded.Game, cfg.Game)
		} else {
			log.Printf("handlers: failed to load game preset %s: %v", gamePath, err)
		}
	}

	cfg.ApplyDefaults()
	params := cfg.Game.ToModelParams()
	if err := params.Validate(); err != nil {
		return model.GameParams{}, err
	}
	return params, nil
}

func gameDir() string {
	dir := os.Getenv("GAME_DIR")
	if dir == "" {
		wd, err := os.Getwd()
		if err == nil {
			dir = filepath.Join(wd, "examples", "games")
		} else {
			dir = "./examples/games"
		}
	}
	return dir
}

// buildSource constructs the demand source for a request.
func buildSource(d models.DemandConfig, horizon int) (demand.Source, error) {
	switch d.Mode {
	case "fixed":
		return demand.NewFixedSource(d.Series, horizon)
	case "random":
		seed := int64(config.DefaultDemandSeed)
		if d.Seed != nil {
			seed = *d.Seed
		}
		low, high := d.Low, d.High
		if low == 0 && high == 0 {
			low, high = config.DefaultDemandLow, config.DefaultDemandHigh
		}
		return demand.NewRandomSource(seed, low, high, horizon)
	default:
		return nil, fmt.Errorf("unsupported demand mode: %q", d.Mode)
	}
}

func buildPolicy(spec models.PolicySpec) (policy.Policy, error) {
	switch spec.Name {
	case "constant":
		qty := mustNum(spec.Params, "qty", 0)
		if qty < 0 {
			return nil, fmt.Errorf("constant policy: qty must be >= 0")
		}
		return &policy.Constant{Qty: qty}, nil
	case "base-stock":
		level := mustNum(spec.Params, "level", 0)
		if level < 0 {
			return nil, fmt.Errorf("base-stock policy: level must be >= 0")
		}
		return &policy.BaseStock{Level: level}, nil
	default:
		return nil, fmt.Errorf("unsupported policy: %q", spec.Name)
	}
}

func convertRecord(r model.PeriodRecord) models.LedgerRow {
	return models.LedgerRow{
		Period:             r.Period,
		OrderQty:           r.OrderQty,
		Demand:             r.Demand,
		BeginInventory:     r.BeginInventory,
		AvailableInventory: r.AvailableInventory,
		Fulfilled:          r.Fulfilled,
		Unmet:              r.Unmet,
		EndInventory:       r.EndInventory,
		Outcome:            string(r.Outcome),
		PurchaseCost:       r.PurchaseCost,
		HoldingCost:        r.HoldingCost,
		ShortageCost:       r.ShortageCost,
		PeriodCost:         r.PeriodCost,
		CumulativeCost:     r.CumulativeCost,
	}
}

func convertLedger(ledger []model.PeriodRecord) []models.LedgerRow {
	out := make([]models.LedgerRow, len(ledger))
	for i, r := range ledger {
		out[i] = convertRecord(r)
	}
	return out
}

func convertSummary(s analysis.Summary) models.GameSummary {
	return models.GameSummary{
		Periods:           s.Periods,
		TotalCost:         s.TotalCost,
		TotalPurchaseCost: s.TotalPurchaseCost,
		TotalHoldingCost:  s.TotalHoldingCost,
		TotalShortageCost: s.TotalShortageCost,
		TotalDemand:       s.TotalDemand,
		TotalFulfilled:    s.TotalFulfilled,
		TotalUnmet:        s.TotalUnmet,
		FillRate:          s.FillRate,
		PeriodsShort:      s.PeriodsShort,
		AvgEndInventory:   s.AvgEndInventory,
		PeakEndInventory:  s.PeakEndInventory,
		EndingInventory:   s.EndingInventory,
	}
}

func mustNum(m map[string]interface{}, key string, def float64) float64 {
	if v, ok := m[key]; ok && v != nil {
		switch x := v.(type) {
		case float64:
			return x
		case int:
			return float64(x)
		}
	}
	return def
}
