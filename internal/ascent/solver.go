package ascent

import "context"

// ScalarFunc is one probe of the objective along the active dimension.
type ScalarFunc func(ctx context.Context, x float64) (float64, error)

// Solver minimizes a scalar function over a closed interval, starting from an
// initial guess. It may probe f any finite number of times and return any
// point in the interval: the engine relies only on every probe passing
// through f, never on the returned point being the best one evaluated.
type Solver interface {
	// Minimize searches [low, high] for a minimizer of f. A probe error
	// aborts the search and is returned unchanged.
	Minimize(ctx context.Context, f ScalarFunc, low, high, start float64) (float64, error)

	// Name returns the name of the solver.
	Name() string
}
