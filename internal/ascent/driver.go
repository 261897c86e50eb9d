package ascent

import (
	"context"
	"errors"
)

// OptimizeAll repeatedly sweeps every dimension in order, adopting the best
// evaluated settings after each single-dimension search, until a full sweep
// improves the score by less than the threshold. On convergence it returns
// the result of the sweep before the last one (the last accepted plateau,
// not the still-changing point). On cancellation or sweep-cap exhaustion the
// best result found so far is returned alongside the error.
func (o *Optimizer) OptimizeAll(ctx context.Context, params []Parameter, bounds []Bounds) (Result, error) {
	if len(params) != len(bounds) {
		return Result{}, &LengthMismatchError{Params: len(params), Bounds: len(bounds)}
	}

	// Both trackers start from the same sentinel so the first sweep has a
	// baseline to beat.
	best := Result{Value: 0, Settings: cloneParams(params)}
	sweepBest := best

	o.log.Info("optimization started",
		"objective", o.objective.Name(),
		"solver", o.solver.Name(),
		"dimensions", len(params),
		"threshold", o.threshold)

	for sweep := 1; ; sweep++ {
		if o.maxSweeps > 0 && sweep > o.maxSweeps {
			o.log.Warn("sweep limit reached", "sweeps", o.maxSweeps, "score", best.Value)
			return best, &SweepLimitError{Sweeps: o.maxSweeps}
		}

		for i := range params {
			if err := ctx.Err(); err != nil {
				return best, err
			}

			res, err := o.OptimizeOne(ctx, best.Settings[i], bounds[i], i, withoutDimension(best.Settings, i))
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return best, err
			}
			if err != nil {
				return Result{}, err
			}
			best = res

			o.log.Debug("dimension tuned", "sweep", sweep, "dimension", i, "score", best.Value)
			if o.progress != nil {
				o.progress(sweep, i, best)
			}
		}

		gain := best.Value - sweepBest.Value
		if gain < o.threshold {
			o.log.Info("optimization converged", "sweeps", sweep, "score", sweepBest.Value, "gain", gain)
			return sweepBest, nil
		}

		o.log.Info("sweep complete", "sweep", sweep, "score", best.Value, "gain", gain)
		sweepBest = best
	}
}

// withoutDimension copies settings with the element at position i removed.
// Exclusion is positional so duplicate-valued dimensions never collide.
func withoutDimension(settings []Parameter, i int) []Parameter {
	fixed := make([]Parameter, 0, len(settings)-1)
	fixed = append(fixed, settings[:i]...)
	return append(fixed, settings[i+1:]...)
}
