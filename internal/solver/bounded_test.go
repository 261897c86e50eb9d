package solver

import (
	"context"
	"errors"
	"math"
	"testing"
)

func TestBoundedQuadraticMinimum(t *testing.T) {
	tests := []struct {
		name  string
		low   float64
		high  float64
		start float64
		min   float64
	}{
		{name: "start inside", low: 0, high: 10, start: 5, min: 2},
		{name: "start at optimum", low: 0, high: 10, start: 2, min: 2},
		{name: "start below interval", low: 0, high: 10, start: -3, min: 2},
		{name: "start above interval", low: 0, high: 10, start: 42, min: 2},
		{name: "negative interval", low: -10, high: -1, start: -5, min: -4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := func(_ context.Context, x float64) (float64, error) {
				return (x - tt.min) * (x - tt.min), nil
			}

			x, err := NewBounded().Minimize(context.Background(), f, tt.low, tt.high, tt.start)
			if err != nil {
				t.Fatalf("Minimize failed: %v", err)
			}
			if math.Abs(x-tt.min) > 1e-4 {
				t.Errorf("minimum found at %v, expected near %v", x, tt.min)
			}
		})
	}
}

func TestBoundedOpensAtStart(t *testing.T) {
	var first float64
	calls := 0
	f := func(_ context.Context, x float64) (float64, error) {
		if calls == 0 {
			first = x
		}
		calls++
		return (x - 7) * (x - 7), nil
	}

	_, err := NewBounded().Minimize(context.Background(), f, 0, 10, 3.25)
	if err != nil {
		t.Fatalf("Minimize failed: %v", err)
	}
	if first != 3.25 {
		t.Errorf("first evaluation at %v, expected the start point 3.25", first)
	}
}

func TestBoundedMonotoneFindsEdge(t *testing.T) {
	f := func(_ context.Context, x float64) (float64, error) {
		return -x, nil
	}

	x, err := NewBounded().Minimize(context.Background(), f, 0, 10, 5)
	if err != nil {
		t.Fatalf("Minimize failed: %v", err)
	}
	if 10-x > 1e-3 {
		t.Errorf("minimum found at %v, expected the upper edge 10", x)
	}
}

func TestBoundedDegenerateInterval(t *testing.T) {
	calls := 0
	f := func(_ context.Context, x float64) (float64, error) {
		calls++
		return x * x, nil
	}

	x, err := NewBounded().Minimize(context.Background(), f, 4, 4, 4)
	if err != nil {
		t.Fatalf("Minimize failed: %v", err)
	}
	if x != 4 {
		t.Errorf("minimum found at %v, expected the single point 4", x)
	}
	if calls != 1 {
		t.Errorf("expected exactly 1 evaluation, got %d", calls)
	}
}

func TestBoundedInvalidInterval(t *testing.T) {
	calls := 0
	f := func(_ context.Context, x float64) (float64, error) {
		calls++
		return x, nil
	}

	_, err := NewBounded().Minimize(context.Background(), f, 10, 0, 5)

	var ivErr *IntervalError
	if !errors.As(err, &ivErr) {
		t.Fatalf("expected IntervalError, got %v", err)
	}
	if ivErr.Low != 10 || ivErr.High != 0 {
		t.Errorf("interval fields = [%v, %v], expected [10, 0]", ivErr.Low, ivErr.High)
	}
	if calls != 0 {
		t.Errorf("expected no evaluations on an invalid interval, got %d", calls)
	}
}

func TestBoundedStaysWithinBounds(t *testing.T) {
	low, high := 1.5, 8.25
	f := func(_ context.Context, x float64) (float64, error) {
		if x < low || x > high {
			t.Errorf("evaluated at %v, outside [%v, %v]", x, low, high)
		}
		return math.Sin(x) * x, nil
	}

	if _, err := NewBounded().Minimize(context.Background(), f, low, high, 2); err != nil {
		t.Fatalf("Minimize failed: %v", err)
	}
}

func TestBoundedEvaluationBudget(t *testing.T) {
	calls := 0
	f := func(_ context.Context, x float64) (float64, error) {
		calls++
		return (x - 2) * (x - 2), nil
	}

	_, err := NewBounded().WithMaxFun(10).Minimize(context.Background(), f, 0, 1e9, 5)
	if err != nil {
		t.Fatalf("Minimize failed: %v", err)
	}
	if calls > 10 {
		t.Errorf("expected at most 10 evaluations, got %d", calls)
	}
}

func TestBoundedProbeErrorPropagates(t *testing.T) {
	probeErr := errors.New("evaluation failed")
	calls := 0
	f := func(_ context.Context, x float64) (float64, error) {
		calls++
		if calls == 3 {
			return 0, probeErr
		}
		return (x - 2) * (x - 2), nil
	}

	_, err := NewBounded().Minimize(context.Background(), f, 0, 10, 5)
	if !errors.Is(err, probeErr) {
		t.Fatalf("expected the probe error unchanged, got %v", err)
	}
	if calls != 3 {
		t.Errorf("expected the search to stop at the failing probe, got %d calls", calls)
	}
}

func TestBoundedContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	f := func(_ context.Context, x float64) (float64, error) {
		cancel()
		return (x - 2) * (x - 2), nil
	}

	_, err := NewBounded().Minimize(ctx, f, 0, 10, 5)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
