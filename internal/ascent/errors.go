package ascent

import (
	"errors"
	"strconv"
)

// ErrEmptyHistory indicates Best was called on a recorder with no recorded
// evaluations (the solver made zero probes).
var ErrEmptyHistory = errors.New("no evaluations recorded")

// LengthMismatchError indicates the params and bounds vectors disagree in
// length. It is raised before any objective evaluation.
type LengthMismatchError struct {
	Params int
	Bounds int
}

func (e *LengthMismatchError) Error() string {
	return "params and bounds have different lengths: " +
		strconv.Itoa(e.Params) + " params, " + strconv.Itoa(e.Bounds) + " bounds"
}

// DimensionMismatchError indicates the objective echoed a settings vector of
// the wrong length, violating the evaluation contract.
type DimensionMismatchError struct {
	Want int
	Got  int
}

func (e *DimensionMismatchError) Error() string {
	return "objective echoed " + strconv.Itoa(e.Got) + " settings, want " + strconv.Itoa(e.Want)
}

// SweepLimitError indicates the configured sweep cap was reached before the
// improvement per sweep fell below the threshold. The result returned
// alongside it is the best one found so far.
type SweepLimitError struct {
	Sweeps int
}

func (e *SweepLimitError) Error() string {
	return "no convergence after " + strconv.Itoa(e.Sweeps) + " sweeps"
}
