package sim

import "errors"

// Engine failures are caller-contract violations, not transient conditions:
// the engine fails fast and leaves state unchanged on a rejected call, and
// retrying with the same inputs can never succeed.
var (
	// ErrInvalidOrder rejects a negative order quantity. The period is not
	// recorded.
	ErrInvalidOrder = errors.New("order quantity must be >= 0")

	// ErrSequence rejects periods invoked out of monotonic order, past the
	// horizon, or before ResetRun. Fatal to the run; recover with ResetRun.
	ErrSequence = errors.New("period out of sequence")
)
