package policy

// Context is what a policy sees when deciding the period's order: the
// 1-based period index and the inventory carried into it. Demand for the
// period is not in scope; orders are committed before demand is revealed.
type Context struct {
	Period int
	OnHand float64
}

// Policy is a deterministic ordering rule used to benchmark a player's run.
type Policy interface {
	Name() string
	OrderQty(ctx Context) float64
}
