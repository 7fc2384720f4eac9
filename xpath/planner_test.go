package xpath_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/algeom/riemann/xpath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sample returns points along every segment of the path.
func sample(p xpath.Path, perSeg int) []complex128 {
	var pts []complex128
	for _, s := range p {
		for k := 0; k <= perSeg; k++ {
			pts = append(pts, s.Point(float64(k)/float64(perSeg)))
		}
	}

	return pts
}

// winding numerically accumulates the total angle swept around b along
// the sampled path, in full turns.
func winding(p xpath.Path, b complex128) float64 {
	pts := sample(p, 64)
	total := 0.0
	for i := 1; i < len(pts); i++ {
		d := cmplx.Phase(pts[i]-b) - cmplx.Phase(pts[i-1]-b)
		for d > math.Pi {
			d -= 2 * math.Pi
		}
		for d < -math.Pi {
			d += 2 * math.Pi
		}
		total += d
	}

	return total / (2 * math.Pi)
}

// assertConnected verifies segment i ends where segment i+1 starts.
func assertConnected(t *testing.T, p xpath.Path) {
	t.Helper()
	for i := 1; i < len(p); i++ {
		assert.InDelta(t, 0, cmplx.Abs(p[i].Start()-p[i-1].End()), 1e-9,
			"segment %d must start where segment %d ends", i, i-1)
	}
}

// TestSegments_EndpointsAndReverse covers Line and Arc parameterization.
func TestSegments_EndpointsAndReverse(t *testing.T) {
	l := xpath.Line{A: complex(1, 1), B: complex(3, -2)}
	assert.Equal(t, l.A, l.Start())
	assert.Equal(t, l.B, l.End())
	assert.Equal(t, l.A, l.Reverse().End())
	assert.InDelta(t, 0, cmplx.Abs(l.Point(0.5)-complex(2, -0.5)), 1e-15)

	a := xpath.Arc{Center: complex(1, 0), Radius: 2, Theta: 0, DTheta: math.Pi}
	assert.InDelta(t, 0, cmplx.Abs(a.Start()-complex(3, 0)), 1e-12)
	assert.InDelta(t, 0, cmplx.Abs(a.End()-complex(-1, 0)), 1e-12)
	assert.InDelta(t, 0, cmplx.Abs(a.Point(0.5)-complex(1, 2)), 1e-12)

	r := a.Reverse()
	assert.InDelta(t, 0, cmplx.Abs(r.Start()-a.End()), 1e-12)
	assert.InDelta(t, 0, cmplx.Abs(r.End()-a.Start()), 1e-12)
}

// TestNewPlanner_RadiiAndBase checks exclusion radii and the default
// base point for two unit-separated discriminant points.
func TestNewPlanner_RadiiAndBase(t *testing.T) {
	p, err := xpath.NewPlanner([]complex128{0, 1})
	require.NoError(t, err)

	r0, err := p.Radius(0)
	require.NoError(t, err)
	assert.InDelta(t, 0.3, r0, 1e-12, "kappa/2 × nearest distance")

	r1, err := p.Radius(1)
	require.NoError(t, err)
	assert.InDelta(t, 0.3, r1, 1e-12)

	base := p.BasePoint()
	assert.Less(t, real(base), -1.0, "base point lies left of every disc")
	assert.InDelta(t, 0, imag(base), 1e-12)

	_, err = p.Radius(complex(5, 5))
	assert.ErrorIs(t, err, xpath.ErrUnknownPoint)
}

// TestNewPlanner_Errors covers duplicates and bad options.
func TestNewPlanner_Errors(t *testing.T) {
	_, err := xpath.NewPlanner([]complex128{1, 1})
	assert.ErrorIs(t, err, xpath.ErrDuplicatePoint)

	_, err = xpath.NewPlanner([]complex128{0}, xpath.WithKappa(1.5))
	assert.ErrorIs(t, err, xpath.ErrOptionViolation)

	_, err = xpath.NewPlanner([]complex128{0}, xpath.WithBasePoint(complex(0.01, 0)))
	assert.ErrorIs(t, err, xpath.ErrInsideDisc, "supplied base inside a disc must error")
}

// TestMonodromyPath_ClosedLoopWithUnitWinding verifies the loop starts
// and ends at the base point, is connected, winds exactly once around
// its target and zero times around the other point.
func TestMonodromyPath_ClosedLoopWithUnitWinding(t *testing.T) {
	p, err := xpath.NewPlanner([]complex128{0, 1})
	require.NoError(t, err)

	loop, err := p.MonodromyPath(1, 1)
	require.NoError(t, err)
	assertConnected(t, loop)
	assert.InDelta(t, 0, cmplx.Abs(loop.Start()-p.BasePoint()), 1e-9)
	assert.InDelta(t, 0, cmplx.Abs(loop.End()-p.BasePoint()), 1e-9)

	assert.InDelta(t, 1, winding(loop, 1), 1e-6, "one turn around the target")
	assert.InDelta(t, 0, winding(loop, 0), 1e-6, "no net turn around the other point")

	_, err = p.MonodromyPath(1, 0)
	assert.ErrorIs(t, err, xpath.ErrZeroRotations)
}

// TestMonodromyPath_MultipleAndNegativeRotations checks winding counts.
func TestMonodromyPath_MultipleAndNegativeRotations(t *testing.T) {
	p, err := xpath.NewPlanner([]complex128{0, 1})
	require.NoError(t, err)

	loop, err := p.MonodromyPath(0, 2)
	require.NoError(t, err)
	assert.InDelta(t, 2, winding(loop, 0), 1e-6)

	loop, err = p.MonodromyPath(0, -1)
	require.NoError(t, err)
	assertConnected(t, loop)
	assert.InDelta(t, -1, winding(loop, 0), 1e-6, "negative rotations wind clockwise")
}

// TestAroundInfinity_EnclosesEverything: the big loop is closed,
// connected, and winds −1 around every finite discriminant point
// (clockwise in the finite plane = once around infinity).
func TestAroundInfinity_EnclosesEverything(t *testing.T) {
	p, err := xpath.NewPlanner([]complex128{complex(0, 0), complex(1, 0), complex(0, 2)})
	require.NoError(t, err)

	loop, err := p.AroundInfinity()
	require.NoError(t, err)
	assertConnected(t, loop)
	assert.InDelta(t, 0, cmplx.Abs(loop.Start()-p.BasePoint()), 1e-9)
	assert.InDelta(t, 0, cmplx.Abs(loop.End()-p.BasePoint()), 1e-9)

	for _, b := range p.DiscriminantPoints() {
		assert.InDelta(t, -1, winding(loop, b), 1e-6, "clockwise turn around %v", b)
	}
}

// TestAvoidingPath_DetoursAroundDiscs routes across a disc-blocked
// stretch and verifies every sampled point stays outside all discs.
func TestAvoidingPath_DetoursAroundDiscs(t *testing.T) {
	discr := []complex128{complex(-1, 0), complex(0, 0), complex(1, 0)}
	p, err := xpath.NewPlanner(discr)
	require.NoError(t, err)

	path, err := p.AvoidingPath(p.BasePoint(), complex(0.5, 0))
	require.NoError(t, err)
	assertConnected(t, path)
	assert.InDelta(t, 0, cmplx.Abs(path.Start()-p.BasePoint()), 1e-9)
	assert.InDelta(t, 0, cmplx.Abs(path.End()-complex(0.5, 0)), 1e-9)

	hasArc := false
	for _, s := range path {
		if _, ok := s.(xpath.Arc); ok {
			hasArc = true
		}
	}
	assert.True(t, hasArc, "a blocked straight line must be detoured with arcs")

	for _, z := range sample(path, 64) {
		for _, b := range discr {
			r, rerr := p.Radius(b)
			require.NoError(t, rerr)
			assert.GreaterOrEqual(t, cmplx.Abs(z-b), r-1e-9,
				"point %v must stay outside the disc of %v", z, b)
		}
	}
}

// TestAvoidingPath_StraightWhenClear keeps an unobstructed route as a
// single line.
func TestAvoidingPath_StraightWhenClear(t *testing.T) {
	p, err := xpath.NewPlanner([]complex128{complex(0, 5)})
	require.NoError(t, err)

	path, err := p.AvoidingPath(complex(-2, 0), complex(2, 0))
	require.NoError(t, err)
	require.Len(t, path, 1)
	_, ok := path[0].(xpath.Line)
	assert.True(t, ok, "clear route stays a straight line")

	_, err = p.AvoidingPath(complex(0, 5), complex(2, 0))
	assert.ErrorIs(t, err, xpath.ErrInsideDisc, "endpoint inside a disc must error")
}

// TestPath_Reverse reverses order and direction together.
func TestPath_Reverse(t *testing.T) {
	p := xpath.Path{
		xpath.Line{A: 0, B: 1},
		xpath.Arc{Center: 2, Radius: 1, Theta: math.Pi, DTheta: -math.Pi},
	}
	r := p.Reverse()
	require.Len(t, r, 2)
	assert.InDelta(t, 0, cmplx.Abs(r.Start()-p.End()), 1e-12)
	assert.InDelta(t, 0, cmplx.Abs(r.End()-p.Start()), 1e-12)
	assertConnected(t, r)
}
