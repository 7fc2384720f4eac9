package surface_test

import (
	"math/cmplx"
	"testing"

	"github.com/algeom/riemann/surface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPath_FiberQueries: endpoint fibers match the trace and interior
// fibers solve the curve at the queried x.
func TestPath_FiberQueries(t *testing.T) {
	f := hyperelliptic(t)
	p, err := f.PathToPlace(surface.Place{X: -3, Y: 6})
	require.NoError(t, err)

	at0, err := p.FiberAt(0)
	require.NoError(t, err)
	fibersClose(t, p.StartFiber(), at0, 1e-12)

	at1, err := p.FiberAt(1)
	require.NoError(t, err)
	fibersClose(t, p.EndFiber(), at1, 1e-12)

	// interior query: tracked values stay on the curve
	mid, err := p.FiberAt(0.37)
	require.NoError(t, err)
	x := p.XAt(0.37)
	for _, y := range mid {
		assert.InDelta(t, 0, cmplx.Abs(y*y-(x*x-x*x*x)), 1e-8, "interior fiber must satisfy y² = x² - x³")
	}
}

// TestPath_RoundTrip: a loop followed by its reverse restores the base
// fiber in its original order.
func TestPath_RoundTrip(t *testing.T) {
	f := hyperelliptic(t)
	p, err := f.MonodromyPath(1)
	require.NoError(t, err)

	loop, err := p.Concat(p.Reverse())
	require.NoError(t, err)
	fibersClose(t, f.BaseFiber(), loop.EndFiber(), 1e-10)
}

// TestPath_ConcatMismatch rejects chaining paths whose endpoints do not
// meet.
func TestPath_ConcatMismatch(t *testing.T) {
	f := hyperelliptic(t)

	route, err := f.PathToPlace(surface.Place{X: -3, Y: 6})
	require.NoError(t, err)
	loop, err := f.MonodromyPath(1)
	require.NoError(t, err)

	_, err = route.Concat(loop)
	assert.ErrorIs(t, err, surface.ErrIncompatiblePaths, "route ends at x=-3, loop starts at the base point")
}

// TestPath_ReverseGeometry mirrors start and end.
func TestPath_ReverseGeometry(t *testing.T) {
	f := hyperelliptic(t)
	p, err := f.PathToPlace(surface.Place{X: -3, Y: 6})
	require.NoError(t, err)

	r := p.Reverse()
	assert.InDelta(t, 0, cmplx.Abs(r.StartX()-p.EndX()), 1e-12)
	assert.InDelta(t, 0, cmplx.Abs(r.EndX()-p.StartX()), 1e-12)
	fibersClose(t, p.StartFiber(), r.EndFiber(), 1e-12)
}
