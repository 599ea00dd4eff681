package store

import (
	"fmt"
	"sync"
	"time"

	"inventory-game/internal/demand"
	"inventory-game/internal/model"
	"inventory-game/internal/sim"
)

// Session is one live game run: an engine, its demand source, and the
// append-only ledger of resolved periods. A session serializes its own
// access, so concurrent HTTP requests against the same game cannot
// interleave a period step.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu         sync.Mutex
	params     model.GameParams
	source     demand.Source
	engine     *sim.Engine
	ledger     []model.PeriodRecord
	lastActive time.Time
}

func newSession(id string, params model.GameParams, src demand.Source) (*Session, error) {
	e, err := sim.New(params)
	if err != nil {
		return nil, err
	}
	if err := e.ResetRun(params.StartingInventory); err != nil {
		return nil, err
	}
	now := time.Now()
	return &Session{
		ID:         id,
		CreatedAt:  now,
		params:     params,
		source:     src,
		engine:     e,
		ledger:     make([]model.PeriodRecord, 0, params.Horizon),
		lastActive: now,
	}, nil
}

func (s *Session) Params() model.GameParams { return s.params }

// Status is a point-in-time snapshot for rendering "where am I" views.
type Status struct {
	NextPeriod       int
	Horizon          int
	CurrentInventory float64
	CumulativeCost   float64
	Finished         bool
}

func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = time.Now()
	return Status{
		NextPeriod:       s.engine.NextPeriod(),
		Horizon:          s.params.Horizon,
		CurrentInventory: s.engine.CurrentInventory(),
		CumulativeCost:   s.engine.CumulativeCost(),
		Finished:         s.engine.Finished(),
	}
}

// Step commits the order for the next period, reveals its demand, and
// resolves the period. The returned record is already appended to the
// session ledger.
func (s *Session) Step(orderQty float64) (model.PeriodRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = time.Now()

	if s.engine.Finished() {
		return model.PeriodRecord{}, fmt.Errorf("%w: run finished after period %d", sim.ErrSequence, s.params.Horizon)
	}

	period := s.engine.NextPeriod()
	d, err := s.source.DemandFor(period)
	if err != nil {
		return model.PeriodRecord{}, err
	}
	rec, err := s.engine.StepPeriod(period, orderQty, d)
	if err != nil {
		return model.PeriodRecord{}, err
	}
	s.ledger = append(s.ledger, rec)
	return rec, nil
}

// Reset restarts the run with the same parameters and demand source.
// For a seeded random source this replays the identical demand sequence.
func (s *Session) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = time.Now()

	if err := s.engine.ResetRun(s.params.StartingInventory); err != nil {
		return err
	}
	s.ledger = s.ledger[:0]
	return nil
}

// Ledger returns a copy of the resolved periods so far.
func (s *Session) Ledger() []model.PeriodRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = time.Now()

	out := make([]model.PeriodRecord, len(s.ledger))
	copy(out, s.ledger)
	return out
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastActive)
}
