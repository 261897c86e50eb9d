package backtest

import "testing"

func TestGenerateSeriesDeterministic(t *testing.T) {
	spec := SeriesSpec{Candles: 100, StartPrice: 1.25, Drift: 0.0002, Volatility: 0.004, Seed: 7}

	first, err := GenerateSeries(spec)
	if err != nil {
		t.Fatalf("GenerateSeries failed: %v", err)
	}
	second, err := GenerateSeries(spec)
	if err != nil {
		t.Fatalf("GenerateSeries failed: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("series lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("candle %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestGenerateSeriesShape(t *testing.T) {
	spec := SeriesSpec{Candles: 250, StartPrice: 100, Drift: 0, Volatility: 0.01, Seed: 3}

	candles, err := GenerateSeries(spec)
	if err != nil {
		t.Fatalf("GenerateSeries failed: %v", err)
	}

	if len(candles) != spec.Candles {
		t.Fatalf("expected %d candles, got %d", spec.Candles, len(candles))
	}
	if candles[0].Open != spec.StartPrice {
		t.Errorf("first open = %v, expected the start price %v", candles[0].Open, spec.StartPrice)
	}

	prev := spec.StartPrice
	for i, c := range candles {
		if c.Open != prev {
			t.Fatalf("candle %d opens at %v, expected the previous close %v", i, c.Open, prev)
		}
		if c.High < c.Open || c.High < c.Close {
			t.Fatalf("candle %d high %v below its body", i, c.High)
		}
		if c.Low > c.Open || c.Low > c.Close {
			t.Fatalf("candle %d low %v above its body", i, c.Low)
		}
		if c.Low <= 0 {
			t.Fatalf("candle %d has non-positive low %v", i, c.Low)
		}
		prev = c.Close
	}
}

func TestGenerateSeriesDriftGrows(t *testing.T) {
	spec := SeriesSpec{Candles: 200, StartPrice: 100, Drift: 0.01, Volatility: 0.001, Seed: 11}

	candles, err := GenerateSeries(spec)
	if err != nil {
		t.Fatalf("GenerateSeries failed: %v", err)
	}

	last := candles[len(candles)-1]
	if last.Close <= spec.StartPrice {
		t.Errorf("final close = %v, expected growth above %v under strong drift", last.Close, spec.StartPrice)
	}
}

func TestGenerateSeriesValidation(t *testing.T) {
	tests := []struct {
		name string
		spec SeriesSpec
	}{
		{
			name: "Zero candles",
			spec: SeriesSpec{Candles: 0, StartPrice: 100, Volatility: 0.01},
		},
		{
			name: "Negative start price",
			spec: SeriesSpec{Candles: 10, StartPrice: -5, Volatility: 0.01},
		},
		{
			name: "Zero volatility",
			spec: SeriesSpec{Candles: 10, StartPrice: 100, Volatility: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := GenerateSeries(tt.spec); err == nil {
				t.Fatalf("expected error for %s", tt.name)
			}
		})
	}
}
