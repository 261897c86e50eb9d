package ascent

// Recorder accumulates every objective evaluation made while optimizing a
// single dimension. Bounded derivative-free solvers are not guaranteed to
// stop at the best point they sampled, so the engine records each evaluated
// point itself and recovers the true best from this history.
type Recorder struct {
	history []Result
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Clear empties the history.
func (r *Recorder) Clear() {
	r.history = r.history[:0]
}

// Len returns the number of recorded evaluations.
func (r *Recorder) Len() int {
	return len(r.history)
}

// Record appends one evaluation outcome: the score and the decoded settings
// that produced it.
func (r *Recorder) Record(score float64, settings []Parameter) {
	r.history = append(r.history, Result{Value: score, Settings: settings})
}

// Best returns the recorded result with the maximum score. Among equal
// scores the earliest recorded wins. Fails with ErrEmptyHistory if nothing
// was recorded since the last clear.
func (r *Recorder) Best() (Result, error) {
	if len(r.history) == 0 {
		return Result{}, ErrEmptyHistory
	}

	best := r.history[0]
	for _, res := range r.history[1:] {
		if res.Value > best.Value {
			best = res
		}
	}
	return best, nil
}
