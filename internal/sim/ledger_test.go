package sim

import (
	"errors"
	"testing"

	"inventory-game/internal/demand"
)

func TestRunFullGame(t *testing.T) {
	params := classicParams(5)
	src, err := demand.NewFixedSource([]float64{2, 4, 0, 10, 3}, 5)
	if err != nil {
		t.Fatalf("NewFixedSource: %v", err)
	}

	res, err := Run(params, []float64{5, 0, 0, 6, 3}, src)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(res.Ledger) != 5 {
		t.Fatalf("ledger has %d rows, want 5", len(res.Ledger))
	}
	sum := 0.0
	unmet := 0.0
	for i, r := range res.Ledger {
		if r.Period != i+1 {
			t.Fatalf("row %d has period %d", i, r.Period)
		}
		sum += r.PeriodCost
		unmet += r.Unmet
		approx(t, "running cumulative", r.CumulativeCost, sum, 1e-9)
	}
	approx(t, "TotalCost", res.TotalCost, sum, 1e-9)
	if res.TotalUnmet != unmet {
		t.Fatalf("TotalUnmet = %v, want %v", res.TotalUnmet, unmet)
	}
	if res.EndingInventory != res.Ledger[4].EndInventory {
		t.Fatalf("EndingInventory = %v, want %v", res.EndingInventory, res.Ledger[4].EndInventory)
	}
}

func TestRunDeterministicWithSeed(t *testing.T) {
	params := classicParams(10)
	orders := []float64{40, 60, 0, 55, 70, 30, 0, 90, 20, 50}

	run := func() *Result {
		src, err := demand.NewRandomSource(42, 30, 100, 10)
		if err != nil {
			t.Fatalf("NewRandomSource: %v", err)
		}
		res, err := Run(params, orders, src)
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
		return res
	}

	a, b := run(), run()
	for i := range a.Ledger {
		if a.Ledger[i] != b.Ledger[i] {
			t.Fatalf("period %d differs across identically seeded runs", i+1)
		}
	}
}

func TestRunRejectsOrderCountMismatch(t *testing.T) {
	params := classicParams(5)
	src, err := demand.NewFixedSource([]float64{1, 2, 3, 4, 5}, 5)
	if err != nil {
		t.Fatalf("NewFixedSource: %v", err)
	}
	if _, err := Run(params, []float64{1, 2, 3}, src); err == nil {
		t.Fatal("Run with 3 orders over horizon 5 succeeded, want error")
	}
}

func TestRunRejectsShortSource(t *testing.T) {
	src, err := demand.NewFixedSource([]float64{1, 2, 3, 4, 5}, 5)
	if err != nil {
		t.Fatalf("NewFixedSource: %v", err)
	}
	params := classicParams(10)
	_, err = Run(params, make([]float64, 10), src)
	if !errors.Is(err, demand.ErrInsufficientData) {
		t.Fatalf("err = %v, want ErrInsufficientData", err)
	}
}
