package sim

import (
	"fmt"

	"inventory-game/internal/model"
)

// runState is the only mutable carry-over between periods. It is owned
// exclusively by the Engine and reset only at the start of a new run.
type runState struct {
	inventory  float64
	cumCost    float64
	nextPeriod int
	started    bool
}

// Engine advances a game run by exactly one period at a time, applying the
// no-backorder inventory balance and the three cost components. It performs
// no I/O; demand and order quantities arrive as plain values.
//
// An Engine drives one run at a time and expects a single caller; separate
// concurrent runs each get their own Engine.
type Engine struct {
	params model.GameParams
	state  runState
}

func New(params model.GameParams) (*Engine, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Engine{params: params}, nil
}

func (e *Engine) Params() model.GameParams { return e.params }

// ResetRun reinitializes the run state. It must be called before the first
// StepPeriod of a run and is the only way to change carried inventory or the
// running cumulative cost outside of stepping.
func (e *Engine) ResetRun(startingInventory float64) error {
	if startingInventory < 0 {
		return fmt.Errorf("startingInventory must be >= 0, got %v", startingInventory)
	}
	e.state = runState{
		inventory:  startingInventory,
		nextPeriod: 1,
		started:    true,
	}
	return nil
}

// NextPeriod reports the period index the engine expects next.
// Returns 0 before ResetRun.
func (e *Engine) NextPeriod() int {
	if !e.state.started {
		return 0
	}
	return e.state.nextPeriod
}

// Finished reports whether all periods of the horizon have been processed.
func (e *Engine) Finished() bool {
	return e.state.started && e.state.nextPeriod > e.params.Horizon
}

// CurrentInventory returns the inventory carried into the next period.
func (e *Engine) CurrentInventory() float64 { return e.state.inventory }

// CumulativeCost returns the running total across processed periods.
func (e *Engine) CumulativeCost() float64 { return e.state.cumCost }

// StepPeriod resolves exactly one period: the order arrives, demand is
// served from available stock, unmet demand is lost (never backordered),
// and the three cost components are accrued.
//
// periodIndex must be the next period in sequence. demand is assumed
// non-negative; sources validate it before the run starts. On any error the
// state is untouched and no record is produced.
func (e *Engine) StepPeriod(periodIndex int, orderQty, demand float64) (model.PeriodRecord, error) {
	if !e.state.started {
		return model.PeriodRecord{}, fmt.Errorf("%w: ResetRun not called", ErrSequence)
	}
	if e.state.nextPeriod > e.params.Horizon {
		return model.PeriodRecord{}, fmt.Errorf("%w: run finished after period %d", ErrSequence, e.params.Horizon)
	}
	if periodIndex != e.state.nextPeriod {
		return model.PeriodRecord{}, fmt.Errorf("%w: got period %d, expected %d", ErrSequence, periodIndex, e.state.nextPeriod)
	}
	if orderQty < 0 {
		return model.PeriodRecord{}, fmt.Errorf("%w: got %v", ErrInvalidOrder, orderQty)
	}

	begin := e.state.inventory
	available := begin + orderQty

	fulfilled := demand
	if available < demand {
		fulfilled = available
	}
	unmet := demand - fulfilled
	end := available - fulfilled // never negative: fulfilled <= available

	purchaseCost := orderQty * e.params.UnitCost
	holdingCost := end * e.params.DailyHoldingCost()
	shortageCost := unmet * e.params.ShortagePenaltyPerUnit
	periodCost := purchaseCost + holdingCost + shortageCost

	e.state.inventory = end
	e.state.cumCost += periodCost
	e.state.nextPeriod++

	return model.PeriodRecord{
		Period: periodIndex,

		OrderQty: orderQty,
		Demand:   demand,

		BeginInventory:     begin,
		AvailableInventory: available,
		Fulfilled:          fulfilled,
		Unmet:              unmet,
		EndInventory:       end,

		Outcome: model.OutcomeFromBalance(unmet, end),

		PurchaseCost: purchaseCost,
		HoldingCost:  holdingCost,
		ShortageCost: shortageCost,
		PeriodCost:   periodCost,

		CumulativeCost: e.state.cumCost,
	}, nil
}
