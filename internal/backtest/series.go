package backtest

import (
	"fmt"
	"math"

	"github.com/ascentlab/tuning-core/pkg/utils"
)

// Candle is one bar of a price series.
type Candle struct {
	Open  float64
	High  float64
	Low   float64
	Close float64
}

// Range returns the candle's full price span.
func (c Candle) Range() float64 { return c.High - c.Low }

// SeriesSpec describes a synthetic price series.
type SeriesSpec struct {
	Candles    int
	StartPrice float64
	Drift      float64 // mean per-candle return
	Volatility float64 // stddev of per-candle returns
	Seed       int64
}

// GenerateSeries builds a seeded random-walk candle series. The same spec
// always yields the same series.
func GenerateSeries(spec SeriesSpec) ([]Candle, error) {
	if spec.Candles <= 0 {
		return nil, fmt.Errorf("candles must be positive, got %d", spec.Candles)
	}
	if spec.StartPrice <= 0 {
		return nil, fmt.Errorf("start price must be positive, got %f", spec.StartPrice)
	}
	if spec.Volatility <= 0 {
		return nil, fmt.Errorf("volatility must be positive, got %f", spec.Volatility)
	}

	rng := utils.NewRandSource(spec.Seed)
	candles := make([]Candle, 0, spec.Candles)
	price := spec.StartPrice

	for i := 0; i < spec.Candles; i++ {
		ret := rng.NormFloat64(spec.Drift, spec.Volatility)
		open := price
		close := open * (1 + ret)
		// Keep prices positive under extreme draws.
		if close < open*0.1 {
			close = open * 0.1
		}

		wick := open * spec.Volatility * 0.5
		high := math.Max(open, close) + rng.UniformFloat64(0, wick)
		low := math.Min(open, close) - rng.UniformFloat64(0, wick)

		candles = append(candles, Candle{Open: open, High: high, Low: low, Close: close})
		price = close
	}

	return candles, nil
}
