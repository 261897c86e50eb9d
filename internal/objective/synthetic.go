package objective

import (
	"context"
	"fmt"

	"github.com/ascentlab/tuning-core/internal/ascent"
	"github.com/ascentlab/tuning-core/pkg/utils"
)

// DefaultNoiseCeiling bounds the random multiplier drawn per setting.
const DefaultNoiseCeiling = 50

// Quadratic scores settings by offset minus the squared distance to the
// per-dimension targets. Nil targets mean the origin.
type Quadratic struct {
	targets []float64
	offset  float64
}

// NewQuadratic creates a quadratic objective peaking at targets with the
// given score at the peak.
func NewQuadratic(targets []float64, offset float64) *Quadratic {
	return &Quadratic{targets: targets, offset: offset}
}

func (o *Quadratic) Name() string { return string(TypeQuadratic) }

func (o *Quadratic) Evaluate(_ context.Context, settings []ascent.EncodedValue) (float64, []ascent.EncodedValue, error) {
	if len(o.targets) > 0 && len(o.targets) != len(settings) {
		return 0, nil, fmt.Errorf("quadratic configured for %d dimensions, got %d settings", len(o.targets), len(settings))
	}

	score := o.offset
	for i, v := range settings {
		target := 0.0
		if len(o.targets) > 0 {
			target = o.targets[i]
		}
		d := v.Num() - target
		score -= d * d
	}
	return score, settings, nil
}

// Sphere scores settings by the negated squared distance to the origin.
type Sphere struct{}

func (o *Sphere) Name() string { return string(TypeSphere) }

func (o *Sphere) Evaluate(_ context.Context, settings []ascent.EncodedValue) (float64, []ascent.EncodedValue, error) {
	score := 0.0
	for _, v := range settings {
		score -= v.Num() * v.Num()
	}
	return score, settings, nil
}

// Noise scores each setting by a random integer multiplier, so larger
// values win on average under a noisy payoff.
type Noise struct {
	ceiling int
	rng     *utils.RandSource
}

// NewNoise creates a noise objective drawing multipliers from [0, ceiling].
func NewNoise(ceiling int, seed int64) *Noise {
	return &Noise{ceiling: ceiling, rng: utils.NewRandSource(seed)}
}

func (o *Noise) Name() string { return string(TypeNoise) }

func (o *Noise) Evaluate(_ context.Context, settings []ascent.EncodedValue) (float64, []ascent.EncodedValue, error) {
	score := 0.0
	for _, v := range settings {
		score += float64(o.rng.Intn(o.ceiling+1)) * v.Num()
	}
	return score, settings, nil
}
