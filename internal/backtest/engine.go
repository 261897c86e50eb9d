package backtest

import "fmt"

// Trading constants.
const (
	InitialBalance   = 10_000.0
	VolatilityWindow = 14
)

// Params configures one backtest run. The entry, stop and take distances
// are ratios scaled by the rolling candle volatility at decision time;
// lookback and risk are plain point values.
type Params struct {
	Lookback      int     // breakout window in candles
	EntryDistance float64 // ratio: breakout margin above the rolling high
	StopLoss      float64 // ratio: stop distance below the entry
	TakeProfit    float64 // ratio: target distance above the entry
	RiskPct       float64 // percent of balance committed per trade
}

// Engine replays a long-only breakout strategy over a fixed candle series.
type Engine struct {
	candles []Candle
}

// NewEngine creates a backtesting engine over the given series.
func NewEngine(candles []Candle) *Engine {
	return &Engine{candles: candles}
}

// Run replays the strategy and returns its performance as a percent gain
// over the initial balance. A breakout above the rolling high plus the
// volatility-scaled entry margin opens a position; the stop and target
// brackets are fixed at entry from the same volatility.
func (e *Engine) Run(p Params) (float64, error) {
	if p.Lookback < 1 {
		return 0, fmt.Errorf("lookback must be at least 1, got %d", p.Lookback)
	}
	if p.RiskPct <= 0 {
		return 0, fmt.Errorf("risk percent must be positive, got %f", p.RiskPct)
	}
	if p.EntryDistance < 0 || p.StopLoss < 0 || p.TakeProfit < 0 {
		return 0, fmt.Errorf("ratio distances cannot be negative")
	}

	warmup := p.Lookback
	if warmup < VolatilityWindow {
		warmup = VolatilityWindow
	}
	if len(e.candles) <= warmup {
		return 0, fmt.Errorf("series too short: %d candles, need more than %d", len(e.candles), warmup)
	}

	balance := InitialBalance
	var (
		inPosition bool
		entry      float64
		stop       float64
		target     float64
		units      float64
	)

	for i := warmup; i < len(e.candles); i++ {
		c := e.candles[i]

		if !inPosition {
			vol := e.rollingRange(i)
			trigger := e.rollingHigh(i, p.Lookback) + p.EntryDistance*vol
			if c.High < trigger {
				continue
			}

			// A gap above the trigger fills at the open instead.
			entry = trigger
			if c.Open > trigger {
				entry = c.Open
			}
			units = balance * (p.RiskPct / 100) / entry
			stop = entry - p.StopLoss*vol
			target = entry + p.TakeProfit*vol
			inPosition = true
		}

		// Pessimistic intrabar ordering: the stop fires before the target.
		switch {
		case c.Low <= stop:
			balance += units * (stop - entry)
			inPosition = false
		case c.High >= target:
			balance += units * (target - entry)
			inPosition = false
		}

		if balance <= 0 {
			break
		}
	}

	if inPosition {
		last := e.candles[len(e.candles)-1]
		balance += units * (last.Close - entry)
	}

	return (balance - InitialBalance) / InitialBalance * 100, nil
}

// rollingHigh is the highest high over the lookback window of completed
// candles before index i.
func (e *Engine) rollingHigh(i, lookback int) float64 {
	high := e.candles[i-lookback].High
	for _, c := range e.candles[i-lookback+1 : i] {
		if c.High > high {
			high = c.High
		}
	}
	return high
}

// rollingRange is the mean candle range over the volatility window of
// completed candles before index i.
func (e *Engine) rollingRange(i int) float64 {
	sum := 0.0
	for _, c := range e.candles[i-VolatilityWindow : i] {
		sum += c.Range()
	}
	return sum / VolatilityWindow
}
