package model

import "errors"

// DaysPerYear converts the annual holding rate into a per-period (daily) cost.
const DaysPerYear = 365

// GameParams defines the economic parameters of one inventory game run.
// Units:
// - UnitCost: currency per unit purchased
// - AnnualHoldingRatePct: percent of unit cost per year, (0, 100]
// - ShortagePenaltyPerUnit: currency per unit of unmet demand
// - StartingInventory: units on hand before period 1
type GameParams struct {
	Horizon                int
	UnitCost               float64
	AnnualHoldingRatePct   float64
	ShortagePenaltyPerUnit float64
	StartingInventory      float64
}

func (p GameParams) Validate() error {
	if p.Horizon <= 0 {
		return errors.New("Horizon must be > 0")
	}
	if p.UnitCost <= 0 {
		return errors.New("UnitCost must be > 0")
	}
	if p.AnnualHoldingRatePct <= 0 || p.AnnualHoldingRatePct > 100 {
		return errors.New("AnnualHoldingRatePct must be in (0, 100]")
	}
	if p.ShortagePenaltyPerUnit < 0 {
		return errors.New("ShortagePenaltyPerUnit must be >= 0")
	}
	if p.StartingInventory < 0 {
		return errors.New("StartingInventory must be >= 0")
	}
	return nil
}

// DailyHoldingCost is the cost of carrying one unit of ending inventory
// for one period, derived from the annual rate.
func (p GameParams) DailyHoldingCost() float64 {
	return p.UnitCost * p.AnnualHoldingRatePct / 100 / DaysPerYear
}
