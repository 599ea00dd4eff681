package demand

import (
	"errors"
	"fmt"
)

// Error kinds surfaced during source construction. Both are configuration
// problems: the run cannot start until the caller fixes the input.
var (
	ErrInsufficientData = errors.New("demand series shorter than horizon")
	ErrInvalidRange     = errors.New("invalid demand range")
)

// Source supplies the demand value for a given 1-based period index.
// Implementations validate their inputs once, at construction, so that a
// run never discovers bad demand data mid-game.
type Source interface {
	Name() string
	Horizon() int
	DemandFor(period int) (float64, error)
}

func checkPeriod(period, horizon int) error {
	if period < 1 || period > horizon {
		return fmt.Errorf("period %d out of range [1, %d]", period, horizon)
	}
	return nil
}
