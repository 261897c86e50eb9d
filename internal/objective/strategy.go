package objective

import (
	"context"
	"math"

	"github.com/ascentlab/tuning-core/internal/ascent"
	"github.com/ascentlab/tuning-core/internal/backtest"
)

// worstScore is reported for settings that violate strategy constraints or
// fail the simulation, so the search moves away without aborting.
const worstScore = -math.MaxFloat64

// Strategy scores settings by running a breakout backtest and reporting the
// balance gain percentage.
type Strategy struct {
	engine *backtest.Engine
}

// NewStrategy creates a backtest objective over the given engine.
func NewStrategy(engine *backtest.Engine) *Strategy {
	return &Strategy{engine: engine}
}

func (o *Strategy) Name() string { return string(TypeBacktest) }

// Evaluate maps settings positionally to lookback, entry distance, stop
// loss, take profit and risk percentage. A stop at or beyond the target is
// scored worst rather than rejected, as is a failed simulation.
func (o *Strategy) Evaluate(ctx context.Context, settings []ascent.EncodedValue) (float64, []ascent.EncodedValue, error) {
	if err := ctx.Err(); err != nil {
		return 0, nil, err
	}
	if len(settings) != 5 {
		return 0, nil, &InvalidObjectiveError{Reason: "backtest requires 5 settings"}
	}

	params := backtest.Params{
		Lookback:      int(settings[0].Num()),
		EntryDistance: settings[1].Num(),
		StopLoss:      settings[2].Num(),
		TakeProfit:    settings[3].Num(),
		RiskPct:       settings[4].Num(),
	}

	if params.StopLoss >= params.TakeProfit {
		return worstScore, settings, nil
	}

	perf, err := o.engine.Run(params)
	if err != nil {
		return worstScore, settings, nil
	}
	return perf, settings, nil
}
