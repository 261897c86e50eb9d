package study

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ascentlab/tuning-core/internal/ascent"
	"github.com/ascentlab/tuning-core/internal/objective"
	"github.com/ascentlab/tuning-core/internal/solver"
	"github.com/ascentlab/tuning-core/pkg/config"
	"github.com/ascentlab/tuning-core/pkg/logger"
	"github.com/ascentlab/tuning-core/pkg/utils"
)

// Runner executes one study end to end: it builds the objective and solver
// from configuration, drives the optimizer and assembles a report.
type Runner struct {
	study *config.Study
	log   *slog.Logger
}

// NewRunner creates a runner for the given study
func NewRunner(study *config.Study) *Runner {
	return &Runner{study: study, log: logger.Default}
}

// WithLogger replaces the default logger
func (r *Runner) WithLogger(log *slog.Logger) *Runner {
	r.log = log
	return r
}

// Run executes the study. A stopped study still yields a report with the
// best result found so far; cancellation additionally returns the context
// error so callers can tell a cut-short run from a converged one.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	start := time.Now()
	id := utils.GenerateStudyID()

	obj, err := objective.New(r.study.Objective, r.study.Seed)
	if err != nil {
		return nil, fmt.Errorf("failed to build objective: %w", err)
	}
	counted := &countingObjective{inner: obj}

	solverType := r.study.Solver
	if solverType == "" {
		solverType = solver.TypeBounded
	}
	solv, err := solver.New(solverType, r.study.Seed)
	if err != nil {
		return nil, fmt.Errorf("failed to build solver: %w", err)
	}

	params := make([]ascent.Parameter, len(r.study.Params))
	bounds := make([]ascent.Bounds, len(r.study.Params))
	for i, p := range r.study.Params {
		params[i] = ascent.Parameter{Value: p.Value, Ratio: p.Ratio, Integer: p.Integer}
		bounds[i] = ascent.Bounds{Low: p.Bounds.Low, High: p.Bounds.High}
	}

	sweeps := 0
	var sweepScores []float64
	progress := func(sweep, dimension int, best ascent.Result) {
		if sweep > sweeps {
			sweeps = sweep
			sweepScores = append(sweepScores, best.Value)
			return
		}
		sweepScores[sweep-1] = best.Value
	}

	opt := ascent.NewOptimizer(counted, solv).WithProgress(progress).WithLogger(r.log)
	if r.study.Threshold > 0 {
		opt = opt.WithThreshold(r.study.Threshold)
	}
	if r.study.MaxSweeps > 0 {
		opt = opt.WithMaxSweeps(r.study.MaxSweeps)
	}

	r.log.Info("study started",
		"study", r.study.Name,
		"id", id,
		"objective", obj.Name(),
		"solver", solv.Name(),
		"dimensions", len(params))

	result, err := opt.OptimizeAll(ctx, params, bounds)

	status := StatusCompleted
	reason := ""
	var runErr error
	if err != nil {
		var limitErr *ascent.SweepLimitError
		switch {
		case errors.As(err, &limitErr):
			status = StatusStopped
			reason = err.Error()
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			status = StatusStopped
			reason = err.Error()
			runErr = err
		default:
			return nil, fmt.Errorf("optimization failed: %w", err)
		}
	}

	settings := make([]Setting, len(result.Settings))
	for i, p := range result.Settings {
		settings[i] = Setting{
			Name:  r.study.Params[i].Name,
			Start: r.study.Params[i].Value,
			Low:   r.study.Params[i].Bounds.Low,
			High:  r.study.Params[i].Bounds.High,
			Value: p.Value,
			Wire:  p.Encode(p.Value).String(),
		}
	}

	report := &Report{
		StudyID:     id,
		Name:        r.study.Name,
		Status:      status,
		Reason:      reason,
		Objective:   obj.Name(),
		Solver:      solv.Name(),
		StartTime:   start,
		Duration:    time.Since(start),
		Sweeps:      sweeps,
		Evaluations: len(counted.scores),
		BestScore:   result.Value,
		Settings:    settings,
		SweepScores: sweepScores,
		Stats:       SummarizeScores(counted.scores),
		Trend:       Trend(sweepScores),
	}
	if len(sweepScores) > 0 {
		report.ImprovementPct = ImprovementPct(sweepScores[0], sweepScores[len(sweepScores)-1])
	}

	r.log.Info("study finished",
		"id", id,
		"status", status,
		"sweeps", report.Sweeps,
		"evaluations", report.Evaluations,
		"score", report.BestScore,
		"duration", report.Duration)

	return report, runErr
}

// countingObjective wraps an objective and collects every successful score
// for the report statistics.
type countingObjective struct {
	inner  ascent.Objective
	scores []float64
}

func (c *countingObjective) Name() string { return c.inner.Name() }

func (c *countingObjective) Evaluate(ctx context.Context, settings []ascent.EncodedValue) (float64, []ascent.EncodedValue, error) {
	score, echoed, err := c.inner.Evaluate(ctx, settings)
	if err != nil {
		return score, echoed, err
	}
	c.scores = append(c.scores, score)
	return score, echoed, nil
}
