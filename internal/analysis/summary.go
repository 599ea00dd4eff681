package analysis

import "inventory-game/internal/model"

// Summary aggregates a ledger into the figures a player cares about at the
// end of a run.
type Summary struct {
	Periods int

	TotalCost         float64
	TotalPurchaseCost float64
	TotalHoldingCost  float64
	TotalShortageCost float64

	TotalDemand    float64
	TotalFulfilled float64
	TotalUnmet     float64
	// FillRate is TotalFulfilled / TotalDemand, 1.0 when there was no demand.
	FillRate float64

	PeriodsShort     int
	AvgEndInventory  float64
	PeakEndInventory float64
	EndingInventory  float64
}

func Summarize(ledger []model.PeriodRecord) Summary {
	s := Summary{Periods: len(ledger)}
	if len(ledger) == 0 {
		s.FillRate = 1
		return s
	}

	invSum := 0.0
	for _, r := range ledger {
		s.TotalPurchaseCost += r.PurchaseCost
		s.TotalHoldingCost += r.HoldingCost
		s.TotalShortageCost += r.ShortageCost

		s.TotalDemand += r.Demand
		s.TotalFulfilled += r.Fulfilled
		s.TotalUnmet += r.Unmet

		if r.Unmet > 0 {
			s.PeriodsShort++
		}
		invSum += r.EndInventory
		if r.EndInventory > s.PeakEndInventory {
			s.PeakEndInventory = r.EndInventory
		}
	}

	s.TotalCost = ledger[len(ledger)-1].CumulativeCost
	s.EndingInventory = ledger[len(ledger)-1].EndInventory
	s.AvgEndInventory = invSum / float64(len(ledger))
	if s.TotalDemand > 0 {
		s.FillRate = s.TotalFulfilled / s.TotalDemand
	} else {
		s.FillRate = 1
	}
	return s
}
