package demand

import (
	"fmt"
	"math/rand"
)

// RandomSource draws integer demand uniformly from [low, high].
//
// The whole sequence is drawn up front from a generator seeded exactly once,
// so the same seed reproduces the identical demand sequence for the full
// horizon regardless of how the periods are later consumed.
type RandomSource struct {
	series  []float64
	horizon int
	seed    int64
	low     int
	high    int
}

func NewRandomSource(seed int64, low, high, horizon int) (*RandomSource, error) {
	if horizon <= 0 {
		return nil, fmt.Errorf("horizon must be > 0, got %d", horizon)
	}
	if low < 0 {
		return nil, fmt.Errorf("%w: low must be >= 0, got %d", ErrInvalidRange, low)
	}
	if high < low {
		return nil, fmt.Errorf("%w: high (%d) < low (%d)", ErrInvalidRange, high, low)
	}

	rng := rand.New(rand.NewSource(seed))
	series := make([]float64, horizon)
	for i := range series {
		series[i] = float64(low + rng.Intn(high-low+1))
	}

	return &RandomSource{
		series:  series,
		horizon: horizon,
		seed:    seed,
		low:     low,
		high:    high,
	}, nil
}

func (r *RandomSource) Name() string { return "random" }

func (r *RandomSource) Horizon() int { return r.horizon }

func (r *RandomSource) DemandFor(period int) (float64, error) {
	if err := checkPeriod(period, r.horizon); err != nil {
		return 0, err
	}
	return r.series[period-1], nil
}

// Seed returns the seed the sequence was drawn from.
func (r *RandomSource) Seed() int64 { return r.seed }
