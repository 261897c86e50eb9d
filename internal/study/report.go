package study

import "time"

// Study outcome statuses.
const (
	// StatusCompleted means the optimizer converged on its own
	StatusCompleted = "completed"
	// StatusStopped means the sweep cap or a cancellation cut the study short
	StatusStopped = "stopped"
)

// Setting is one tuned parameter in its final form, alongside where its
// search began. Wire holds the textual form the objective saw, including
// the scale marker for ratio parameters.
type Setting struct {
	Name  string
	Start float64
	Low   float64
	High  float64
	Value float64
	Wire  string
}

// Report summarizes a finished study run.
type Report struct {
	StudyID        string
	Name           string
	Status         string
	Reason         string
	Objective      string
	Solver         string
	StartTime      time.Time
	Duration       time.Duration
	Sweeps         int
	Evaluations    int
	BestScore      float64
	Settings       []Setting
	SweepScores    []float64
	Stats          ScoreStats
	Trend          string
	ImprovementPct float64
}
