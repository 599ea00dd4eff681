package demand

import "fmt"

// FixedSource serves demand from a user-supplied series (e.g. an uploaded
// CSV column). Rows beyond the horizon are ignored.
type FixedSource struct {
	series  []float64
	horizon int
}

// NewFixedSource validates the series once: it must cover the full horizon
// and contain no negative values.
func NewFixedSource(series []float64, horizon int) (*FixedSource, error) {
	if horizon <= 0 {
		return nil, fmt.Errorf("horizon must be > 0, got %d", horizon)
	}
	if len(series) < horizon {
		return nil, fmt.Errorf("%w: got %d values, need %d", ErrInsufficientData, len(series), horizon)
	}
	for i, v := range series {
		if i >= horizon {
			break
		}
		if v < 0 {
			return nil, fmt.Errorf("demand at row %d is negative (%v)", i+1, v)
		}
	}
	s := make([]float64, horizon)
	copy(s, series[:horizon])
	return &FixedSource{series: s, horizon: horizon}, nil
}

func (f *FixedSource) Name() string { return "fixed" }

func (f *FixedSource) Horizon() int { return f.horizon }

func (f *FixedSource) DemandFor(period int) (float64, error) {
	if err := checkPeriod(period, f.horizon); err != nil {
		return 0, err
	}
	return f.series[period-1], nil
}
