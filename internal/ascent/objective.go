package ascent

import "context"

// Objective scores a full encoded settings vector.
// Implementations are treated as opaque and expensive; the engine never
// retries a failed evaluation.
type Objective interface {
	// Evaluate scores the settings and echoes them back. The echoed vector
	// must have the same length and order as the input, and every value must
	// keep the kind it arrived with; magnitudes may change. Higher scores are
	// better.
	Evaluate(ctx context.Context, settings []EncodedValue) (float64, []EncodedValue, error)

	// Name returns the name of the objective.
	Name() string
}
