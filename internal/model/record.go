package model

// PeriodRecord is one row of per-period output, immutable once produced.
// This is the primary artifact for "what happened" in a game run.
type PeriodRecord struct {
	Period int // 1-based

	OrderQty float64
	Demand   float64

	BeginInventory     float64
	AvailableInventory float64 // BeginInventory + OrderQty
	Fulfilled          float64 // min(AvailableInventory, Demand)
	Unmet              float64 // max(Demand - AvailableInventory, 0)
	EndInventory       float64 // max(AvailableInventory - Demand, 0); never negative

	Outcome Outcome

	PurchaseCost float64
	HoldingCost  float64
	ShortageCost float64
	PeriodCost   float64

	CumulativeCost float64
}
