package solver

import (
	"context"
	"math"

	"github.com/ascentlab/tuning-core/internal/ascent"
)

// Bounded solver defaults.
const (
	DefaultMaxFun    = 500
	DefaultTolerance = 1e-5
)

var (
	goldenMean = 0.5 * (3.0 - math.Sqrt(5.0))
	sqrtEps    = math.Sqrt(2.2e-16)
)

// Bounded minimizes a scalar function over a closed interval with a
// derivative-free search that mixes golden-section steps with parabolic
// interpolation. It is deterministic and the default solver.
type Bounded struct {
	maxFun int
	xatol  float64
}

// NewBounded creates a bounded solver with the default evaluation budget and
// tolerance.
func NewBounded() *Bounded {
	return &Bounded{
		maxFun: DefaultMaxFun,
		xatol:  DefaultTolerance,
	}
}

// WithMaxFun caps the number of function evaluations per search
func (s *Bounded) WithMaxFun(n int) *Bounded {
	s.maxFun = n
	return s
}

// WithTolerance sets the absolute convergence tolerance on the argument
func (s *Bounded) WithTolerance(tol float64) *Bounded {
	s.xatol = tol
	return s
}

// Name implements ascent.Solver.
func (s *Bounded) Name() string { return TypeBounded }

// Minimize searches [low, high] for the argument minimizing f. The search
// opens at start when it lies strictly inside the interval, at the golden
// point otherwise. A degenerate interval is evaluated once and returned.
func (s *Bounded) Minimize(ctx context.Context, f ascent.ScalarFunc, low, high, start float64) (float64, error) {
	if high < low {
		return 0, &IntervalError{Low: low, High: high}
	}

	a, b := low, high
	xf := a + goldenMean*(b-a)
	if start > a && start < b {
		xf = start
	}
	fulc, nfc := xf, xf

	rat, e := 0.0, 0.0
	x := xf
	fx, err := f(ctx, x)
	if err != nil {
		return 0, err
	}
	num := 1

	ffulc, fnfc := fx, fx
	xm := 0.5 * (a + b)
	tol1 := sqrtEps*math.Abs(xf) + s.xatol/3.0
	tol2 := 2.0 * tol1

	for math.Abs(xf-xm) > tol2-0.5*(b-a) {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		golden := true
		if math.Abs(e) > tol1 {
			// Try a parabolic fit through the three best points.
			golden = false
			r := (xf - nfc) * (fx - ffulc)
			q := (xf - fulc) * (fx - fnfc)
			p := (xf-fulc)*q - (xf-nfc)*r
			q = 2.0 * (q - r)
			if q > 0.0 {
				p = -p
			}
			q = math.Abs(q)
			r = e
			e = rat

			if math.Abs(p) < math.Abs(0.5*q*r) && p > q*(a-xf) && p < q*(b-xf) {
				rat = p / q
				x = xf + rat
				if x-a < tol2 || b-x < tol2 {
					rat = tol1 * sign(xm-xf)
				}
			} else {
				golden = true
			}
		}

		if golden {
			if xf >= xm {
				e = a - xf
			} else {
				e = b - xf
			}
			rat = goldenMean * e
		}

		x = xf + sign(rat)*math.Max(math.Abs(rat), tol1)
		fu, err := f(ctx, x)
		if err != nil {
			return 0, err
		}
		num++

		if fu <= fx {
			if x >= xf {
				a = xf
			} else {
				b = xf
			}
			fulc, ffulc = nfc, fnfc
			nfc, fnfc = xf, fx
			xf, fx = x, fu
		} else {
			if x < xf {
				a = x
			} else {
				b = x
			}
			switch {
			case fu <= fnfc || nfc == xf:
				fulc, ffulc = nfc, fnfc
				nfc, fnfc = x, fu
			case fu <= ffulc || fulc == xf || fulc == nfc:
				fulc, ffulc = x, fu
			}
		}

		xm = 0.5 * (a + b)
		tol1 = sqrtEps*math.Abs(xf) + s.xatol/3.0
		tol2 = 2.0 * tol1

		if num >= s.maxFun {
			break
		}
	}

	return xf, nil
}

// sign maps zero to positive so a zero-length step still moves by tol1.
func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
