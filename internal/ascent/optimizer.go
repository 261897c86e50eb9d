package ascent

import (
	"log/slog"

	"github.com/ascentlab/tuning-core/pkg/logger"
)

// DefaultThreshold is the minimum score gain a full sweep must deliver for
// the driver to start another sweep.
const DefaultThreshold = 30.0

// Optimizer tunes a parameter vector against a black-box objective by
// coordinate ascent: one bounded single-dimension search at a time, sweeping
// all dimensions in order until a full sweep stops paying for itself.
type Optimizer struct {
	objective Objective
	solver    Solver
	threshold float64
	maxSweeps int // 0 means unbounded
	progress  ProgressFunc
	log       *slog.Logger
}

// ProgressFunc receives the running best after each single-dimension search.
type ProgressFunc func(sweep, dimension int, best Result)

// NewOptimizer creates a coordinate-ascent optimizer with the default
// convergence threshold and no sweep cap.
func NewOptimizer(objective Objective, solver Solver) *Optimizer {
	return &Optimizer{
		objective: objective,
		solver:    solver,
		threshold: DefaultThreshold,
		log:       logger.Default,
	}
}

// WithThreshold sets the minimum per-sweep gain that keeps the driver sweeping
func (o *Optimizer) WithThreshold(threshold float64) *Optimizer {
	o.threshold = threshold
	return o
}

// WithMaxSweeps caps the number of full sweeps; zero removes the cap
func (o *Optimizer) WithMaxSweeps(n int) *Optimizer {
	o.maxSweeps = n
	return o
}

// WithProgress sets a callback invoked after each single-dimension search
func (o *Optimizer) WithProgress(fn ProgressFunc) *Optimizer {
	o.progress = fn
	return o
}

// WithLogger replaces the default logger
func (o *Optimizer) WithLogger(log *slog.Logger) *Optimizer {
	o.log = log
	return o
}
