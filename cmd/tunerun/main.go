package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/ascentlab/tuning-core/internal/study"
	"github.com/ascentlab/tuning-core/pkg/config"
	"github.com/ascentlab/tuning-core/pkg/logger"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

func main() {
	var studyPath string
	var logLevel string
	var seed int64
	var maxSweeps int
	var threshold float64

	flag.StringVar(&studyPath, "study", "config/study.yaml", "path to the study file")
	flag.StringVar(&logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	flag.Int64Var(&seed, "seed", 0, "seed override for stochastic objectives and solvers")
	flag.IntVar(&maxSweeps, "max-sweeps", 0, "sweep cap override; 0 keeps the study's value")
	flag.Float64Var(&threshold, "threshold", 0, "convergence threshold override; 0 keeps the study's value")
	flag.Parse()

	cfg, err := config.LoadStudy(studyPath)
	if err != nil {
		logger.Error("failed to load study", "path", studyPath, "error", err)
		os.Exit(1)
	}

	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if maxSweeps > 0 {
		cfg.MaxSweeps = maxSweeps
	}
	if threshold > 0 {
		cfg.Threshold = threshold
	}

	logger.SetDefault(logger.NewText(cfg.LogLevel, os.Stdout))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := study.NewRunner(cfg).Run(ctx)
	if report == nil {
		logger.Error("study failed", "error", err)
		stop()
		os.Exit(1)
	}
	if err != nil {
		logger.Warn("study interrupted", "error", err)
	}

	if err := renderReport(os.Stdout, report); err != nil {
		logger.Error("failed to render report", "error", err)
		stop()
		os.Exit(1)
	}
}

// renderReport prints the study outcome and the tuned settings table.
func renderReport(w io.Writer, report *study.Report) error {
	fmt.Fprintf(w, "\nStudy %s (%s)\n", report.Name, report.StudyID)
	fmt.Fprintf(w, "Status: %s", report.Status)
	if report.Reason != "" {
		fmt.Fprintf(w, " (%s)", report.Reason)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Objective %s, solver %s: %d sweeps, %d evaluations in %v\n",
		report.Objective, report.Solver, report.Sweeps, report.Evaluations, report.Duration)
	fmt.Fprintf(w, "Best score: %.6g", report.BestScore)
	if report.Sweeps > 1 {
		fmt.Fprintf(w, " (%s, %+.2f%% across sweeps)", report.Trend, report.ImprovementPct)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Scores: mean %.6g, p50 %.6g, p95 %.6g, worst %.6g\n\n",
		report.Stats.Mean, report.Stats.P50, report.Stats.P95, report.Stats.Worst)

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Parameter", "Start", "Low", "High", "Best", "Wire"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	data := make([][]string, 0, len(report.Settings))
	for _, s := range report.Settings {
		data = append(data, []string{
			s.Name,
			strconv.FormatFloat(s.Start, 'g', -1, 64),
			strconv.FormatFloat(s.Low, 'g', -1, 64),
			strconv.FormatFloat(s.High, 'g', -1, 64),
			strconv.FormatFloat(s.Value, 'g', -1, 64),
			s.Wire,
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
