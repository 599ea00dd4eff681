package policy

// BaseStock orders up to a target level each period: whatever is missing
// between on-hand stock and Level. With stock at or above Level it orders
// nothing.
type BaseStock struct {
	Level float64
}

func (p *BaseStock) Name() string { return "base-stock" }

func (p *BaseStock) OrderQty(ctx Context) float64 {
	if ctx.OnHand >= p.Level {
		return 0
	}
	return p.Level - ctx.OnHand
}
