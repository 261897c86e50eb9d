package objective

import (
	"context"
	"math"
	"testing"

	"github.com/ascentlab/tuning-core/internal/ascent"
)

func TestQuadraticScoresDistanceToTargets(t *testing.T) {
	obj := NewQuadratic([]float64{3, -4}, 1000)

	settings := []ascent.EncodedValue{ascent.FloatValue(8), ascent.FloatValue(-4)}
	score, echoed, err := obj.Evaluate(context.Background(), settings)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}

	if score != 975 {
		t.Errorf("Expected score 975, got %v", score)
	}
	if len(echoed) != 2 || echoed[0].Num() != 8 || echoed[1].Num() != -4 {
		t.Errorf("Expected settings echoed unchanged, got %v", echoed)
	}
}

func TestQuadraticPeaksAtTargets(t *testing.T) {
	obj := NewQuadratic([]float64{2.5, -1}, 42)

	settings := []ascent.EncodedValue{ascent.FloatValue(2.5), ascent.FloatValue(-1)}
	score, _, err := obj.Evaluate(context.Background(), settings)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}

	if score != 42 {
		t.Errorf("Expected offset score 42 at the peak, got %v", score)
	}
}

func TestQuadraticWithoutTargetsUsesOrigin(t *testing.T) {
	obj := NewQuadratic(nil, 0)

	settings := []ascent.EncodedValue{ascent.FloatValue(3), ascent.FloatValue(4)}
	score, _, err := obj.Evaluate(context.Background(), settings)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}

	if score != -25 {
		t.Errorf("Expected score -25, got %v", score)
	}
}

func TestQuadraticDimensionMismatch(t *testing.T) {
	obj := NewQuadratic([]float64{1, 2}, 0)

	_, _, err := obj.Evaluate(context.Background(), []ascent.EncodedValue{ascent.FloatValue(1)})
	if err == nil {
		t.Fatal("Expected error for mismatched dimensions, got nil")
	}
}

func TestSphere(t *testing.T) {
	obj := &Sphere{}

	if obj.Name() != "sphere" {
		t.Errorf("Expected name 'sphere', got %s", obj.Name())
	}

	settings := []ascent.EncodedValue{ascent.FloatValue(3), ascent.FloatValue(4)}
	score, echoed, err := obj.Evaluate(context.Background(), settings)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}

	if score != -25 {
		t.Errorf("Expected score -25, got %v", score)
	}
	if len(echoed) != 2 {
		t.Errorf("Expected 2 echoed settings, got %d", len(echoed))
	}
}

func TestNoiseDeterministicUnderSeed(t *testing.T) {
	first := NewNoise(DefaultNoiseCeiling, 7)
	second := NewNoise(DefaultNoiseCeiling, 7)

	settings := []ascent.EncodedValue{ascent.FloatValue(2), ascent.IntValue(3)}
	for i := 0; i < 10; i++ {
		a, _, err := first.Evaluate(context.Background(), settings)
		if err != nil {
			t.Fatalf("Evaluate failed: %v", err)
		}
		b, _, err := second.Evaluate(context.Background(), settings)
		if err != nil {
			t.Fatalf("Evaluate failed: %v", err)
		}
		if a != b {
			t.Fatalf("Expected identical scores under the same seed, got %v and %v at call %d", a, b, i)
		}
	}
}

func TestNoiseMultiplierBounds(t *testing.T) {
	obj := NewNoise(DefaultNoiseCeiling, 11)

	settings := []ascent.EncodedValue{ascent.FloatValue(1)}
	for i := 0; i < 200; i++ {
		score, echoed, err := obj.Evaluate(context.Background(), settings)
		if err != nil {
			t.Fatalf("Evaluate failed: %v", err)
		}
		if score < 0 || score > DefaultNoiseCeiling {
			t.Fatalf("Expected score within [0, %d], got %v", DefaultNoiseCeiling, score)
		}
		if score != math.Trunc(score) {
			t.Fatalf("Expected an integral multiplier for a unit setting, got %v", score)
		}
		if len(echoed) != 1 || echoed[0].Num() != 1 {
			t.Fatalf("Expected settings echoed unchanged, got %v", echoed)
		}
	}
}

func TestNoiseZeroCeiling(t *testing.T) {
	obj := NewNoise(0, 3)

	settings := []ascent.EncodedValue{ascent.FloatValue(9)}
	score, _, err := obj.Evaluate(context.Background(), settings)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}

	if score != 0 {
		t.Errorf("Expected zero score under a zero ceiling, got %v", score)
	}
}
