package objective

import (
	"fmt"

	"github.com/ascentlab/tuning-core/internal/ascent"
	"github.com/ascentlab/tuning-core/internal/backtest"
	"github.com/ascentlab/tuning-core/pkg/config"
)

// ObjectiveType represents the type of objective function
type ObjectiveType string

const (
	// TypeQuadratic scores by offset minus squared distance to targets
	TypeQuadratic ObjectiveType = "quadratic"
	// TypeSphere scores by negated squared distance to the origin
	TypeSphere ObjectiveType = "sphere"
	// TypeNoise scores each setting under a random integer multiplier
	TypeNoise ObjectiveType = "noise"
	// TypeBacktest scores by strategy performance over a synthetic market
	TypeBacktest ObjectiveType = "backtest"
)

// New creates an objective function from its configuration. The seed feeds
// stochastic objectives and series generation.
func New(cfg config.Objective, seed int64) (ascent.Objective, error) {
	switch ObjectiveType(cfg.Type) {
	case TypeQuadratic:
		return NewQuadratic(cfg.Targets, cfg.Offset), nil
	case TypeSphere:
		return &Sphere{}, nil
	case TypeNoise:
		ceiling := DefaultNoiseCeiling
		if cfg.Scale > 0 {
			ceiling = int(cfg.Scale)
		}
		return NewNoise(ceiling, seed), nil
	case TypeBacktest:
		if cfg.Series == nil {
			return nil, &InvalidObjectiveError{Reason: "backtest requires a series"}
		}
		candles, err := backtest.GenerateSeries(backtest.SeriesSpec{
			Candles:    cfg.Series.Candles,
			StartPrice: cfg.Series.StartPrice,
			Drift:      cfg.Series.Drift,
			Volatility: cfg.Series.Volatility,
			Seed:       seed,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to generate series: %w", err)
		}
		return NewStrategy(backtest.NewEngine(candles)), nil
	default:
		return nil, &UnknownObjectiveError{ObjectiveType: cfg.Type}
	}
}

// UnknownObjectiveError indicates an unknown objective type
type UnknownObjectiveError struct {
	ObjectiveType string
}

func (e *UnknownObjectiveError) Error() string {
	return "unknown objective type: " + e.ObjectiveType
}

// InvalidObjectiveError indicates an objective that cannot evaluate
type InvalidObjectiveError struct {
	Reason string
}

func (e *InvalidObjectiveError) Error() string {
	return "invalid objective: " + e.Reason
}
