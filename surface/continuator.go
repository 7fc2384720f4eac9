package surface

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/algeom/riemann/curve"
	"github.com/algeom/riemann/xpath"
)

// Traced holds the checkpoints of one continued segment: parameter
// values in ascending order from 0 to 1 and the ordered fiber at each.
type Traced struct {
	Ts     []float64
	Fibers [][]complex128
}

// End returns a copy of the fiber at the segment's endpoint.
func (tr *Traced) End() []complex128 {
	last := tr.Fibers[len(tr.Fibers)-1]

	return append([]complex128(nil), last...)
}

// reversed returns the checkpoints of the same segment traversed
// backwards: parameters mirrored about 1/2, order flipped.
func (tr *Traced) reversed() *Traced {
	n := len(tr.Ts)
	out := &Traced{Ts: make([]float64, n), Fibers: make([][]complex128, n)}
	for i := 0; i < n; i++ {
		out.Ts[i] = 1 - tr.Ts[n-1-i]
		out.Fibers[i] = tr.Fibers[n-1-i]
	}

	return out
}

// Continuator is the analytic-continuation strategy: it tracks the
// ordered fiber of y-roots along one x-plane segment. Implementations
// own all numerical robustness (step sizing, ambiguity resolution);
// callers never retry.
type Continuator interface {
	// Continue tracks start from t=0 to t=1 along seg, returning the
	// full checkpoint trace.
	Continue(c *curve.Curve, seg xpath.Segment, start []complex128) (*Traced, error)

	// Refine tracks fiber from parameter t0 to t1 (t0 <= t1) along seg
	// and returns the fiber at t1.
	Refine(c *curve.Curve, seg xpath.Segment, t0 float64, fiber []complex128, t1 float64) ([]complex128, error)
}

// Step-size policy for the root tracker.
const (
	initialStep = 0.1
	maxStep     = 0.25
	minStep     = 1e-8
	growFactor  = 1.5
)

// RootTracker is the default Continuator: at each step it re-solves the
// full fiber and matches it to the previous fiber by nearest value,
// halving the step whenever the match is ambiguous. Near a discriminant
// point the sheets collide and the step underflows; a Puiseux-style
// strategy would take over there, which is exactly what the strategy
// interface leaves room for.
type RootTracker struct {
	// RootTol is the fiber root-solving tolerance.
	RootTol float64
}

// NewRootTracker returns a RootTracker with the given root tolerance.
func NewRootTracker(rootTol float64) *RootTracker {
	return &RootTracker{RootTol: rootTol}
}

// Continue implements Continuator.
func (rt *RootTracker) Continue(c *curve.Curve, seg xpath.Segment, start []complex128) (*Traced, error) {
	if len(start) != c.DegreeY() {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrFiberSize, len(start), c.DegreeY())
	}
	tr := &Traced{
		Ts:     []float64{0},
		Fibers: [][]complex128{append([]complex128(nil), start...)},
	}
	err := rt.march(c, seg, 0, 1, start, func(t float64, fib []complex128) {
		tr.Ts = append(tr.Ts, t)
		tr.Fibers = append(tr.Fibers, fib)
	})
	if err != nil {
		return nil, err
	}

	return tr, nil
}

// Refine implements Continuator.
func (rt *RootTracker) Refine(c *curve.Curve, seg xpath.Segment, t0 float64, fiber []complex128, t1 float64) ([]complex128, error) {
	out := append([]complex128(nil), fiber...)
	err := rt.march(c, seg, t0, t1, fiber, func(_ float64, fib []complex128) {
		out = fib
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// march advances the fiber from t0 to t1 with adaptive steps, invoking
// record at every accepted checkpoint.
func (rt *RootTracker) march(c *curve.Curve, seg xpath.Segment, t0, t1 float64, fib []complex128, record func(float64, []complex128)) error {
	t := t0
	dt := initialStep
	if rem := t1 - t0; dt > rem {
		dt = rem
	}
	for t < t1-1e-15 {
		tn := t + dt
		if tn > t1 {
			tn = t1
		}
		next, ok := rt.step(c, seg.Point(tn), fib)
		if !ok {
			dt /= 2
			if dt < minStep {
				return fmt.Errorf("%w: t=%.6g on segment %v", ErrStepUnderflow, t, seg)
			}
			continue
		}
		t, fib = tn, next
		record(t, fib)
		if dt *= growFactor; dt > maxStep {
			dt = maxStep
		}
	}

	return nil
}

// step solves the fiber at x and matches it to prev by nearest value.
// The match is rejected as ambiguous when two tracks claim one root or
// a track moves further than half the smallest root separation.
func (rt *RootTracker) step(c *curve.Curve, x complex128, prev []complex128) ([]complex128, bool) {
	roots, err := c.FiberAtTol(x, rt.RootTol)
	if err != nil {
		return nil, false
	}

	sep := math.Inf(1)
	for i := range roots {
		for j := i + 1; j < len(roots); j++ {
			if d := cmplx.Abs(roots[i] - roots[j]); d < sep {
				sep = d
			}
		}
	}

	next := make([]complex128, len(prev))
	taken := make([]bool, len(roots))
	for i, v := range prev {
		best, bestDist := -1, 0.0
		for j, r := range roots {
			d := cmplx.Abs(v - r)
			if best < 0 || d < bestDist {
				best, bestDist = j, d
			}
		}
		if bestDist > sep/2 || taken[best] {
			return nil, false
		}
		taken[best] = true
		next[i] = roots[best]
	}

	return next, true
}
