package ascent

import (
	"context"
	"fmt"
)

// OptimizeOne tunes the dimension at index, holding every other dimension
// fixed. fixed holds the remaining dimensions in their original relative
// order; param supplies both the search start (its value) and the encoding
// mode for candidates. The returned result is the best evaluation actually
// observed, never the point the solver reports.
func (o *Optimizer) OptimizeOne(ctx context.Context, param Parameter, b Bounds, index int, fixed []Parameter) (Result, error) {
	// The recorder is owned by this call; concurrent optimizations never
	// share history.
	rec := NewRecorder()

	fixedEnc := EncodeParams(fixed)
	want := len(fixed) + 1

	probe := func(ctx context.Context, x float64) (float64, error) {
		settings := make([]EncodedValue, 0, want)
		settings = append(settings, fixedEnc[:index]...)
		settings = append(settings, param.Encode(x))
		settings = append(settings, fixedEnc[index:]...)

		score, echoed, err := o.objective.Evaluate(ctx, settings)
		if err != nil {
			return 0, err
		}
		if len(echoed) != want {
			return 0, &DimensionMismatchError{Want: want, Got: len(echoed)}
		}

		o.log.Debug("objective evaluated", "settings", fmt.Sprint(echoed), "score", score)
		rec.Record(score, DecodeValues(echoed))

		// The sign flip hands the engine's maximization to a minimizing solver.
		return -score, nil
	}

	if _, err := o.solver.Minimize(ctx, probe, b.Low, b.High, param.Value); err != nil {
		return Result{}, err
	}

	// The solver's reported optimum is not trusted; the best evaluated
	// settings come from the recorder.
	return rec.Best()
}
