package surface

import (
	"fmt"
	"math/cmplx"
	"sort"

	"github.com/algeom/riemann/curve"
	"github.com/algeom/riemann/xpath"
)

// connectEps bounds how far apart two x-points may be and still count
// as the same path endpoint.
const connectEps = 1e-9

// Place is a point (x, y) on the Riemann surface. Places are routing
// input/output only; nothing stores them.
type Place struct {
	X, Y complex128
}

// PathSegment is one x-plane segment lifted to the surface: it owns its
// curve reference, the underlying x-segment and the continuation trace,
// and answers position and fiber queries at a local parameter in [0,1].
type PathSegment struct {
	c    *curve.Curve
	seg  xpath.Segment
	cont Continuator
	tr   *Traced
}

// newPathSegment continues start along seg and wraps the trace.
func newPathSegment(c *curve.Curve, seg xpath.Segment, cont Continuator, start []complex128) (*PathSegment, error) {
	tr, err := cont.Continue(c, seg, start)
	if err != nil {
		return nil, err
	}

	return &PathSegment{c: c, seg: seg, cont: cont, tr: tr}, nil
}

// XSegment returns the underlying x-plane segment.
func (s *PathSegment) XSegment() xpath.Segment { return s.seg }

// XAt returns the x-plane position at local parameter t.
func (s *PathSegment) XAt(t float64) complex128 { return s.seg.Point(clamp(t)) }

// StartFiber returns a copy of the ordered fiber at t=0.
func (s *PathSegment) StartFiber() []complex128 {
	return append([]complex128(nil), s.tr.Fibers[0]...)
}

// EndFiber returns a copy of the ordered fiber at t=1.
func (s *PathSegment) EndFiber() []complex128 { return s.tr.End() }

// FiberAt returns the ordered fiber at local parameter t, refining from
// the nearest recorded checkpoint at or before t.
func (s *PathSegment) FiberAt(t float64) ([]complex128, error) {
	t = clamp(t)
	i := sort.SearchFloat64s(s.tr.Ts, t)
	if i < len(s.tr.Ts) && s.tr.Ts[i] == t {
		return append([]complex128(nil), s.tr.Fibers[i]...), nil
	}
	i-- // checkpoint strictly before t; i >= 0 since Ts[0] == 0

	return s.cont.Refine(s.c, s.seg, s.tr.Ts[i], s.tr.Fibers[i], t)
}

// Reverse returns the segment traversed backwards, reusing the recorded
// trace rather than re-continuing.
func (s *PathSegment) Reverse() *PathSegment {
	return &PathSegment{c: s.c, seg: s.seg.Reverse(), cont: s.cont, tr: s.tr.reversed()}
}

// Path is an ordered sequence of lifted segments sharing one curve,
// chained so segment i ends exactly where segment i+1 starts, in both
// x and fiber ordering. Paths are free-standing value objects.
type Path struct {
	c        *curve.Curve
	segs     []*PathSegment
	matchTol float64
}

// Segments returns the lifted segments in order.
func (p *Path) Segments() []*PathSegment {
	return append([]*PathSegment(nil), p.segs...)
}

// StartX returns the path's starting x-point.
func (p *Path) StartX() complex128 { return p.segs[0].XAt(0) }

// EndX returns the path's final x-point.
func (p *Path) EndX() complex128 { return p.segs[len(p.segs)-1].XAt(1) }

// StartFiber returns a copy of the ordered fiber at the start.
func (p *Path) StartFiber() []complex128 { return p.segs[0].StartFiber() }

// EndFiber returns a copy of the ordered fiber at the end.
func (p *Path) EndFiber() []complex128 { return p.segs[len(p.segs)-1].EndFiber() }

// locate maps a global parameter to (segment index, local parameter)
// under a uniform per-segment split.
func (p *Path) locate(t float64) (int, float64) {
	t = clamp(t)
	u := t * float64(len(p.segs))
	i := int(u)
	if i == len(p.segs) {
		i--
	}

	return i, u - float64(i)
}

// XAt returns the x-plane position at global parameter t in [0,1].
func (p *Path) XAt(t float64) complex128 {
	i, local := p.locate(t)

	return p.segs[i].XAt(local)
}

// FiberAt returns the ordered fiber at global parameter t in [0,1].
func (p *Path) FiberAt(t float64) ([]complex128, error) {
	i, local := p.locate(t)

	return p.segs[i].FiberAt(local)
}

// Concat joins p and q into one path. The paths must share a curve and
// q must start where p ends, in x (exactly, up to geometric epsilon)
// and in fiber ordering (within the match tolerance); otherwise
// ErrIncompatiblePaths is returned.
func (p *Path) Concat(q *Path) (*Path, error) {
	if p.c != q.c {
		return nil, fmt.Errorf("%w: different curves", ErrIncompatiblePaths)
	}
	if d := cmplx.Abs(p.EndX() - q.StartX()); d > connectEps {
		return nil, fmt.Errorf("%w: x gap %.3e", ErrIncompatiblePaths, d)
	}
	end, start := p.EndFiber(), q.StartFiber()
	for i := range end {
		if d := cmplx.Abs(end[i] - start[i]); d > p.matchTol {
			return nil, fmt.Errorf("%w: fiber entry %d differs by %.3e", ErrIncompatiblePaths, i, d)
		}
	}

	segs := make([]*PathSegment, 0, len(p.segs)+len(q.segs))
	segs = append(segs, p.segs...)
	segs = append(segs, q.segs...)

	return &Path{c: p.c, segs: segs, matchTol: p.matchTol}, nil
}

// Reverse returns the path traversed backwards; the recorded traces are
// reused, so no re-continuation happens.
func (p *Path) Reverse() *Path {
	segs := make([]*PathSegment, len(p.segs))
	for i, s := range p.segs {
		segs[len(p.segs)-1-i] = s.Reverse()
	}

	return &Path{c: p.c, segs: segs, matchTol: p.matchTol}
}

// clamp restricts t to [0,1].
func clamp(t float64) float64 {
	switch {
	case t < 0:
		return 0
	case t > 1:
		return 1
	default:
		return t
	}
}
