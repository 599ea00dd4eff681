package model

// Outcome is a human-friendly label for how a period ended.
// Keep these values stable; they are intended for CSV output.
type Outcome string

const (
	OutcomeShortage Outcome = "SHORTAGE"
	OutcomeSurplus  Outcome = "SURPLUS"
	OutcomeExact    Outcome = "EXACT"
)

func OutcomeFromBalance(unmet, endInventory float64) Outcome {
	switch {
	case unmet > 0:
		return OutcomeShortage
	case endInventory > 0:
		return OutcomeSurplus
	default:
		return OutcomeExact
	}
}
