package sim

import (
	"errors"
	"math"
	"testing"

	"inventory-game/internal/model"
)

func classicParams(horizon int) model.GameParams {
	return model.GameParams{
		Horizon:                horizon,
		UnitCost:               100,
		AnnualHoldingRatePct:   20,
		ShortagePenaltyPerUnit: 20,
	}
}

func newStartedEngine(t *testing.T, params model.GameParams, startInv float64) *Engine {
	t.Helper()
	e, err := New(params)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := e.ResetRun(startInv); err != nil {
		t.Fatalf("ResetRun: %v", err)
	}
	return e
}

func approx(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Fatalf("%s = %v, want %v (tol %v)", name, got, want, tol)
	}
}

func TestDailyHoldingCostDerivation(t *testing.T) {
	p := classicParams(1)
	// 100 * 20% / 365
	approx(t, "DailyHoldingCost", p.DailyHoldingCost(), 0.05479, 1e-5)

	e := newStartedEngine(t, p, 0)
	rec, err := e.StepPeriod(1, 10, 0)
	if err != nil {
		t.Fatalf("StepPeriod: %v", err)
	}
	// 10 units held for one day.
	approx(t, "HoldingCost", rec.HoldingCost, 0.5479, 1e-4)
}

func TestStepPeriodOversupply(t *testing.T) {
	e := newStartedEngine(t, classicParams(1), 0)

	rec, err := e.StepPeriod(1, 5, 3)
	if err != nil {
		t.Fatalf("StepPeriod: %v", err)
	}

	if rec.Fulfilled != 3 || rec.Unmet != 0 || rec.EndInventory != 2 {
		t.Fatalf("balance: fulfilled=%v unmet=%v end=%v", rec.Fulfilled, rec.Unmet, rec.EndInventory)
	}
	if rec.PurchaseCost != 500 {
		t.Fatalf("PurchaseCost = %v, want 500", rec.PurchaseCost)
	}
	if rec.ShortageCost != 0 {
		t.Fatalf("ShortageCost = %v, want 0", rec.ShortageCost)
	}
	wantHolding := 2 * e.Params().DailyHoldingCost()
	approx(t, "HoldingCost", rec.HoldingCost, wantHolding, 1e-12)
	approx(t, "PeriodCost", rec.PeriodCost, 500+wantHolding, 1e-12)
	if rec.Outcome != model.OutcomeSurplus {
		t.Fatalf("Outcome = %s, want SURPLUS", rec.Outcome)
	}
}

func TestStepPeriodShortage(t *testing.T) {
	e := newStartedEngine(t, classicParams(1), 0)

	rec, err := e.StepPeriod(1, 2, 5)
	if err != nil {
		t.Fatalf("StepPeriod: %v", err)
	}

	if rec.Fulfilled != 2 || rec.Unmet != 3 || rec.EndInventory != 0 {
		t.Fatalf("balance: fulfilled=%v unmet=%v end=%v", rec.Fulfilled, rec.Unmet, rec.EndInventory)
	}
	if rec.ShortageCost != 60 {
		t.Fatalf("ShortageCost = %v, want 60", rec.ShortageCost)
	}
	if rec.HoldingCost != 0 {
		t.Fatalf("HoldingCost = %v, want 0", rec.HoldingCost)
	}
	if rec.Outcome != model.OutcomeShortage {
		t.Fatalf("Outcome = %s, want SHORTAGE", rec.Outcome)
	}
}

func TestThreePeriodCarryOver(t *testing.T) {
	e := newStartedEngine(t, classicParams(3), 0)

	orders := []float64{5, 0, 0}
	demands := []float64{2, 4, 0}

	recs := make([]model.PeriodRecord, 0, 3)
	for i := 0; i < 3; i++ {
		rec, err := e.StepPeriod(i+1, orders[i], demands[i])
		if err != nil {
			t.Fatalf("period %d: %v", i+1, err)
		}
		recs = append(recs, rec)
	}

	if recs[0].EndInventory != 3 {
		t.Fatalf("period 1 end = %v, want 3", recs[0].EndInventory)
	}
	if recs[1].AvailableInventory != 3 || recs[1].Fulfilled != 3 || recs[1].Unmet != 1 || recs[1].EndInventory != 0 {
		t.Fatalf("period 2: %+v", recs[1])
	}
	if recs[2].AvailableInventory != 0 || recs[2].EndInventory != 0 || recs[2].PeriodCost != 0 {
		t.Fatalf("period 3: %+v", recs[2])
	}

	sum := 0.0
	for _, r := range recs {
		sum += r.PeriodCost
	}
	approx(t, "CumulativeCost", recs[2].CumulativeCost, sum, 1e-12)
	approx(t, "engine cumulative", e.CumulativeCost(), sum, 1e-12)
}

func TestBalanceInvariants(t *testing.T) {
	e := newStartedEngine(t, classicParams(30), 10)

	orders := []float64{0, 50, 5, 0, 120, 33, 0, 0, 80, 7}
	demands := []float64{40, 12, 0, 95, 60, 33, 1, 0, 200, 55}

	for i := 0; i < 30; i++ {
		order := orders[i%len(orders)]
		d := demands[i%len(demands)]
		rec, err := e.StepPeriod(i+1, order, d)
		if err != nil {
			t.Fatalf("period %d: %v", i+1, err)
		}
		if rec.EndInventory < 0 {
			t.Fatalf("period %d: negative end inventory %v", i+1, rec.EndInventory)
		}
		if rec.Fulfilled+rec.Unmet != rec.Demand {
			t.Fatalf("period %d: fulfilled %v + unmet %v != demand %v", i+1, rec.Fulfilled, rec.Unmet, rec.Demand)
		}
		if rec.Fulfilled > rec.AvailableInventory {
			t.Fatalf("period %d: fulfilled %v > available %v", i+1, rec.Fulfilled, rec.AvailableInventory)
		}
	}
}

func TestZeroStockZeroOrder(t *testing.T) {
	e := newStartedEngine(t, classicParams(1), 0)
	rec, err := e.StepPeriod(1, 0, 7)
	if err != nil {
		t.Fatalf("StepPeriod: %v", err)
	}
	if rec.EndInventory != 0 || rec.Unmet != 7 {
		t.Fatalf("got end=%v unmet=%v, want 0 and 7", rec.EndInventory, rec.Unmet)
	}
}

func TestInvalidOrderLeavesStateUnchanged(t *testing.T) {
	e := newStartedEngine(t, classicParams(2), 4)

	_, err := e.StepPeriod(1, -1, 3)
	if !errors.Is(err, ErrInvalidOrder) {
		t.Fatalf("err = %v, want ErrInvalidOrder", err)
	}
	if e.NextPeriod() != 1 || e.CurrentInventory() != 4 || e.CumulativeCost() != 0 {
		t.Fatalf("state mutated on rejected call: period=%d inv=%v cum=%v",
			e.NextPeriod(), e.CurrentInventory(), e.CumulativeCost())
	}

	// The same period still steps cleanly afterwards.
	if _, err := e.StepPeriod(1, 0, 3); err != nil {
		t.Fatalf("StepPeriod after rejection: %v", err)
	}
}

func TestSequenceErrors(t *testing.T) {
	params := classicParams(2)

	t.Run("before reset", func(t *testing.T) {
		e, err := New(params)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		if _, err := e.StepPeriod(1, 0, 0); !errors.Is(err, ErrSequence) {
			t.Fatalf("err = %v, want ErrSequence", err)
		}
	})

	t.Run("skipped period", func(t *testing.T) {
		e := newStartedEngine(t, params, 0)
		if _, err := e.StepPeriod(2, 0, 0); !errors.Is(err, ErrSequence) {
			t.Fatalf("err = %v, want ErrSequence", err)
		}
	})

	t.Run("repeated period", func(t *testing.T) {
		e := newStartedEngine(t, params, 0)
		if _, err := e.StepPeriod(1, 0, 0); err != nil {
			t.Fatalf("StepPeriod: %v", err)
		}
		if _, err := e.StepPeriod(1, 0, 0); !errors.Is(err, ErrSequence) {
			t.Fatalf("err = %v, want ErrSequence", err)
		}
	})

	t.Run("past horizon", func(t *testing.T) {
		e := newStartedEngine(t, params, 0)
		for i := 1; i <= 2; i++ {
			if _, err := e.StepPeriod(i, 0, 0); err != nil {
				t.Fatalf("period %d: %v", i, err)
			}
		}
		if !e.Finished() {
			t.Fatal("engine not finished after horizon")
		}
		if _, err := e.StepPeriod(3, 0, 0); !errors.Is(err, ErrSequence) {
			t.Fatalf("err = %v, want ErrSequence", err)
		}
	})
}

func TestResetRunStartsOver(t *testing.T) {
	e := newStartedEngine(t, classicParams(2), 0)
	if _, err := e.StepPeriod(1, 10, 4); err != nil {
		t.Fatalf("StepPeriod: %v", err)
	}

	if err := e.ResetRun(3); err != nil {
		t.Fatalf("ResetRun: %v", err)
	}
	if e.NextPeriod() != 1 || e.CurrentInventory() != 3 || e.CumulativeCost() != 0 {
		t.Fatalf("reset state: period=%d inv=%v cum=%v", e.NextPeriod(), e.CurrentInventory(), e.CumulativeCost())
	}

	rec, err := e.StepPeriod(1, 0, 2)
	if err != nil {
		t.Fatalf("StepPeriod after reset: %v", err)
	}
	if rec.BeginInventory != 3 || rec.EndInventory != 1 {
		t.Fatalf("got begin=%v end=%v, want 3 and 1", rec.BeginInventory, rec.EndInventory)
	}

	if err := e.ResetRun(-1); err == nil {
		t.Fatal("ResetRun(-1) succeeded, want error")
	}
}

func TestDeterminism(t *testing.T) {
	run := func() []model.PeriodRecord {
		e := newStartedEngine(t, classicParams(5), 2)
		orders := []float64{40, 0, 65, 10, 0}
		demands := []float64{38, 51, 30, 44, 70}
		out := make([]model.PeriodRecord, 0, 5)
		for i := 0; i < 5; i++ {
			rec, err := e.StepPeriod(i+1, orders[i], demands[i])
			if err != nil {
				t.Fatalf("period %d: %v", i+1, err)
			}
			out = append(out, rec)
		}
		return out
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("period %d differs:\n%+v\n%+v", i+1, a[i], b[i])
		}
	}
}

func TestNewRejectsBadParams(t *testing.T) {
	bad := []model.GameParams{
		{Horizon: 0, UnitCost: 100, AnnualHoldingRatePct: 20},
		{Horizon: 30, UnitCost: 0, AnnualHoldingRatePct: 20},
		{Horizon: 30, UnitCost: 100, AnnualHoldingRatePct: 0},
		{Horizon: 30, UnitCost: 100, AnnualHoldingRatePct: 101},
		{Horizon: 30, UnitCost: 100, AnnualHoldingRatePct: 20, ShortagePenaltyPerUnit: -1},
		{Horizon: 30, UnitCost: 100, AnnualHoldingRatePct: 20, StartingInventory: -5},
	}
	for i, p := range bad {
		if _, err := New(p); err == nil {
			t.Errorf("case %d: New(%+v) succeeded, want error", i, p)
		}
	}
}
