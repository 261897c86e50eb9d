package solver

import (
	"strconv"

	"github.com/ascentlab/tuning-core/internal/ascent"
)

// Solver type names accepted by New.
const (
	TypeBounded = "bounded"
	TypeAnneal  = "anneal"
)

// UnknownSolverError is returned by New for a solver type it does not know.
type UnknownSolverError struct {
	SolverType string
}

func (e *UnknownSolverError) Error() string {
	return "unknown solver type: " + e.SolverType
}

// IntervalError reports search bounds in the wrong order.
type IntervalError struct {
	Low  float64
	High float64
}

func (e *IntervalError) Error() string {
	return "invalid search interval: low " + strconv.FormatFloat(e.Low, 'f', -1, 64) +
		" exceeds high " + strconv.FormatFloat(e.High, 'f', -1, 64)
}

// New creates the named solver. The seed feeds stochastic solvers; the
// bounded solver ignores it.
func New(solverType string, seed int64) (ascent.Solver, error) {
	switch solverType {
	case TypeBounded:
		return NewBounded(), nil
	case TypeAnneal:
		return NewAnnealer(seed), nil
	default:
		return nil, &UnknownSolverError{SolverType: solverType}
	}
}
