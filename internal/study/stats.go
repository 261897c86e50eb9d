package study

import (
	"math"

	"github.com/ascentlab/tuning-core/pkg/utils"
)

// ScoreStats summarizes the distribution of every score evaluated in a run.
type ScoreStats struct {
	Mean   float64
	StdDev float64
	P50    float64
	P95    float64
	Best   float64
	Worst  float64
}

// SummarizeScores computes distribution statistics over evaluated scores.
func SummarizeScores(scores []float64) ScoreStats {
	if len(scores) == 0 {
		return ScoreStats{}
	}

	best := scores[0]
	worst := scores[0]
	for _, s := range scores {
		if s > best {
			best = s
		}
		if s < worst {
			worst = s
		}
	}

	return ScoreStats{
		Mean:   utils.Mean(scores),
		StdDev: utils.StdDev(scores),
		P50:    utils.Percentile(scores, 50),
		P95:    utils.Percentile(scores, 95),
		Best:   best,
		Worst:  worst,
	}
}

// Trend classifies a score curve as "improving", "degrading" or "stable" by
// the sign of its linear-regression slope.
func Trend(scores []float64) string {
	if len(scores) < 2 {
		return "stable"
	}

	n := float64(len(scores))
	var sumX, sumY, sumXY, sumX2 float64
	for i, score := range scores {
		x := float64(i)
		sumX += x
		sumY += score
		sumXY += x * score
		sumX2 += x * x
	}

	slope := (n*sumXY - sumX*sumY) / (n*sumX2 - sumX*sumX)

	// Scores are maximized, so a rising curve is improvement
	if slope > 0.01 {
		return "improving"
	}
	if slope < -0.01 {
		return "degrading"
	}

	return "stable"
}

// ImprovementPct is the percentage change from first to last, relative to
// the magnitude of first.
func ImprovementPct(first, last float64) float64 {
	if first == 0 {
		return 0
	}
	return (last - first) / math.Abs(first) * 100
}
