package policy

import "math"

// Constant orders the same quantity every period regardless of stock.
type Constant struct {
	Qty float64
}

func (p *Constant) Name() string { return "constant" }

func (p *Constant) OrderQty(ctx Context) float64 {
	return math.Max(0, p.Qty)
}
