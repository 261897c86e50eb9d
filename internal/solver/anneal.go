package solver

import (
	"context"
	"math"

	"github.com/ascentlab/tuning-core/internal/ascent"
	"github.com/ascentlab/tuning-core/pkg/utils"
)

// Annealer defaults. The initial temperature and Boltzmann schedule follow
// the classic setup; the budgets are sized for a single-dimension search.
const (
	DefaultInitialTemp  = 100.0
	DefaultAnnealIters  = 500
	DefaultStallBest    = 100
	DefaultReannealBest = 50
)

// Annealer minimizes a scalar function over a closed interval by simulated
// annealing: a random walk whose step count shrinks as the temperature
// cools, accepting uphill moves with Boltzmann probability.
type Annealer struct {
	initTemp     float64
	maxIter      int
	stallBest    int
	reannealBest int
	rng          *utils.RandSource
}

// NewAnnealer creates an annealing solver with the default schedule. A zero
// seed draws one from the clock.
func NewAnnealer(seed int64) *Annealer {
	return &Annealer{
		initTemp:     DefaultInitialTemp,
		maxIter:      DefaultAnnealIters,
		stallBest:    DefaultStallBest,
		reannealBest: DefaultReannealBest,
		rng:          utils.NewRandSource(seed),
	}
}

// WithInitialTemp sets the starting temperature
func (s *Annealer) WithInitialTemp(t float64) *Annealer {
	s.initTemp = t
	return s
}

// WithMaxIter caps the number of function evaluations per search
func (s *Annealer) WithMaxIter(n int) *Annealer {
	s.maxIter = n
	return s
}

// WithStallBest stops the search after n evaluations without a new best;
// zero disables the stall stop
func (s *Annealer) WithStallBest(n int) *Annealer {
	s.stallBest = n
	return s
}

// WithReannealBest restarts the cooling schedule after n stale evaluations;
// zero disables reannealing
func (s *Annealer) WithReannealBest(n int) *Annealer {
	s.reannealBest = n
	return s
}

// Name implements ascent.Solver.
func (s *Annealer) Name() string { return TypeAnneal }

// Minimize walks [low, high] from start, keeping the best point it ever
// evaluated. The walk stops at the evaluation budget or once the best has
// stalled for too long.
func (s *Annealer) Minimize(ctx context.Context, f ascent.ScalarFunc, low, high, start float64) (float64, error) {
	if high < low {
		return 0, &IntervalError{Low: low, High: high}
	}

	cur := utils.Clamp(start, low, high)
	fcur, err := f(ctx, cur)
	if err != nil {
		return 0, err
	}
	if low == high {
		return cur, nil
	}
	best, fbest := cur, fcur

	stale := 0
	cooling := 0
	for iter := 1; iter < s.maxIter; iter++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		cooling++
		temp := s.initTemp / math.Log(float64(cooling)+1)

		cand := s.perturb(cur, low, high, temp)
		fcand, err := f(ctx, cand)
		if err != nil {
			return 0, err
		}

		if fcand <= fcur || s.rng.Float64() < math.Exp((fcur-fcand)/temp) {
			cur, fcur = cand, fcand
		}

		if fcand < fbest {
			best, fbest = cand, fcand
			stale = 0
			continue
		}
		stale++
		if s.stallBest > 0 && stale >= s.stallBest {
			break
		}
		if s.reannealBest > 0 && stale%s.reannealBest == 0 {
			cooling = 0
		}
	}

	return best, nil
}

// perturb walks the candidate by up to one percent of the interval per
// step, taking more steps while hot, and projects back onto the bounds.
func (s *Annealer) perturb(x, low, high, temp float64) float64 {
	step := (high - low) / 100.0
	for i := 0; i < int(temp)+1; i++ {
		x += s.rng.UniformFloat64(-step, step)
		x = utils.Clamp(x, low, high)
	}
	return x
}
