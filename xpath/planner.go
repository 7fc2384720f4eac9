package xpath

import (
	"fmt"
	"math"
	"math/cmplx"
	"sort"
)

// geomEps is the scale below which geometric quantities count as zero.
const geomEps = 1e-12

// Planner plans x-plane paths that avoid the exclusion discs around a
// fixed set of discriminant points. It is immutable after construction.
type Planner struct {
	discr []complex128
	radii []float64
	base  complex128
	kappa float64
}

// NewPlanner builds a Planner for the given discriminant points. The
// list may be empty (a smooth curve still gets a base point and
// avoiding paths). Points are kept in the supplied order, which fixes
// the canonical generator ordering downstream.
func NewPlanner(discr []complex128, opts ...Option) (*Planner, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	for i := range discr {
		for j := i + 1; j < len(discr); j++ {
			if cmplx.Abs(discr[i]-discr[j]) < geomEps {
				return nil, fmt.Errorf("%w: %v", ErrDuplicatePoint, discr[i])
			}
		}
	}

	p := &Planner{
		discr: append([]complex128(nil), discr...),
		radii: make([]float64, len(discr)),
		kappa: o.Kappa,
	}

	// exclusion radius: κ/2 × distance to the nearest other point;
	// a lone point gets κ outright.
	for i, b := range p.discr {
		nearest := math.Inf(1)
		for j, c := range p.discr {
			if i == j {
				continue
			}
			if d := cmplx.Abs(b - c); d < nearest {
				nearest = d
			}
		}
		if math.IsInf(nearest, 1) {
			p.radii[i] = p.kappa
		} else {
			p.radii[i] = p.kappa * nearest / 2
		}
	}

	if o.BaseSet {
		if i := p.discIndexContaining(o.Base); i >= 0 {
			return nil, fmt.Errorf("%w: base point %v inside disc of %v", ErrInsideDisc, o.Base, p.discr[i])
		}
		p.base = o.Base
	} else {
		p.base = p.defaultBase()
	}

	return p, nil
}

// defaultBase picks a real point strictly left of every exclusion disc.
func (p *Planner) defaultBase() complex128 {
	if len(p.discr) == 0 {
		return complex(-1, 0)
	}
	m := math.Inf(1)
	for i, b := range p.discr {
		if v := real(b) - p.radii[i]; v < m {
			m = v
		}
	}

	return complex(m-1, 0)
}

// discIndexContaining returns the index of the disc strictly containing
// x, or -1.
func (p *Planner) discIndexContaining(x complex128) int {
	for i, b := range p.discr {
		if cmplx.Abs(x-b) < p.radii[i]-geomEps {
			return i
		}
	}

	return -1
}

// BasePoint returns the planner's base x-point.
func (p *Planner) BasePoint() complex128 { return p.base }

// DiscriminantPoints returns the discriminant points in canonical
// (supplied) order.
func (p *Planner) DiscriminantPoints() []complex128 {
	return append([]complex128(nil), p.discr...)
}

// indexOf resolves b to a discriminant-point index.
func (p *Planner) indexOf(b complex128) (int, error) {
	for i, d := range p.discr {
		if cmplx.Abs(b-d) <= 1e-9*(1+cmplx.Abs(b)) {
			return i, nil
		}
	}

	return 0, fmt.Errorf("%w: %v", ErrUnknownPoint, b)
}

// Radius returns the exclusion radius around discriminant point b.
func (p *Planner) Radius(b complex128) (float64, error) {
	i, err := p.indexOf(b)
	if err != nil {
		return 0, err
	}

	return p.radii[i], nil
}

// crossing records where a straight segment enters and exits an
// exclusion disc, in segment parameter units.
type crossing struct {
	disc      int
	tIn, tOut float64
}

// approach returns segments from x0 to x1: a straight line when it
// clears every exclusion disc, otherwise the line split at each
// offending disc with an arc over the disc boundary. The disc with
// index skip is exempt (the target of a monodromy loop). Both
// endpoints must lie outside all non-exempt discs.
func (p *Planner) approach(x0, x1 complex128, skip int) []Segment {
	v := x1 - x0
	vlen := cmplx.Abs(v)
	if vlen < geomEps {
		return []Segment{Line{A: x0, B: x1}}
	}

	var crossings []crossing
	for i, b := range p.discr {
		if i == skip {
			continue
		}
		r := p.radii[i]
		// projection parameter of b onto the segment
		ts := (real(b-x0)*real(v) + imag(b-x0)*imag(v)) / (vlen * vlen)
		d := cmplx.Abs(x0 + complex(ts, 0)*v - b)
		if d >= r-geomEps {
			continue
		}
		h := math.Sqrt(r*r-d*d) / vlen
		tIn, tOut := ts-h, ts+h
		if tOut <= 0 || tIn >= 1 {
			continue
		}
		crossings = append(crossings, crossing{disc: i, tIn: tIn, tOut: tOut})
	}
	sort.Slice(crossings, func(a, b int) bool { return crossings[a].tIn < crossings[b].tIn })

	segs := make([]Segment, 0, 2*len(crossings)+1)
	cur := x0
	for _, c := range crossings {
		pIn := x0 + complex(c.tIn, 0)*v
		pOut := x0 + complex(c.tOut, 0)*v
		if cmplx.Abs(pIn-cur) > geomEps {
			segs = append(segs, Line{A: cur, B: pIn})
		}
		segs = append(segs, p.arcAround(c.disc, pIn, pOut))
		cur = pOut
	}
	if cmplx.Abs(x1-cur) > geomEps || len(segs) == 0 {
		segs = append(segs, Line{A: cur, B: x1})
	}

	return segs
}

// arcAround returns the minor arc on disc i's boundary from pIn to
// pOut. A chord through the center is ambiguous; the counterclockwise
// semicircle is chosen deterministically.
func (p *Planner) arcAround(i int, pIn, pOut complex128) Arc {
	b := p.discr[i]
	phiIn := cmplx.Phase(pIn - b)
	phiOut := cmplx.Phase(pOut - b)
	d := normalizeAngle(phiOut - phiIn)

	return Arc{Center: b, Radius: p.radii[i], Theta: phiIn, DTheta: d}
}

// MonodromyPath returns the loop based at the base point encircling
// discriminant point b exactly nrots times: an avoiding line to the
// disc boundary, |nrots| full circles (counterclockwise for positive
// nrots), and the line back. nrots must be nonzero.
func (p *Planner) MonodromyPath(b complex128, nrots int) (Path, error) {
	i, err := p.indexOf(b)
	if err != nil {
		return nil, err
	}
	if nrots == 0 {
		return nil, ErrZeroRotations
	}
	bi := p.discr[i]
	r := p.radii[i]

	dir := bi - p.base
	entry := bi - complex(r, 0)*dir/complex(cmplx.Abs(dir), 0)

	in := p.approach(p.base, entry, i)

	sign := 1.0
	n := nrots
	if n < 0 {
		sign = -1.0
		n = -n
	}
	th := cmplx.Phase(entry - bi)
	loop := make([]Segment, 0, 2*n)
	for k := 0; k < n; k++ {
		loop = append(loop,
			Arc{Center: bi, Radius: r, Theta: th, DTheta: sign * math.Pi},
			Arc{Center: bi, Radius: r, Theta: th + sign*math.Pi, DTheta: sign * math.Pi},
		)
	}

	out := Path(in).Reverse()
	path := make(Path, 0, len(in)+len(loop)+len(out))
	path = append(path, in...)
	path = append(path, loop...)
	path = append(path, out...)

	return path, nil
}

// AroundInfinity returns a loop based at the base point encircling all
// discriminant points: a radial line out to a circle enclosing every
// exclusion disc, one full clockwise turn (positive orientation around
// the point at infinity), and the line back.
func (p *Planner) AroundInfinity() (Path, error) {
	radius := 1.0
	for i, b := range p.discr {
		if v := cmplx.Abs(b) + p.radii[i]; v > radius {
			radius = v
		}
	}
	if v := cmplx.Abs(p.base); v > radius {
		radius = v
	}
	radius *= 2

	dir := complex(-1, 0)
	if cmplx.Abs(p.base) > geomEps {
		dir = p.base / complex(cmplx.Abs(p.base), 0)
	}
	z0 := complex(radius, 0) * dir

	in := p.approach(p.base, z0, -1)
	th := cmplx.Phase(z0)
	loop := []Segment{
		Arc{Center: 0, Radius: radius, Theta: th, DTheta: -math.Pi},
		Arc{Center: 0, Radius: radius, Theta: th - math.Pi, DTheta: -math.Pi},
	}
	out := Path(in).Reverse()

	path := make(Path, 0, len(in)+len(loop)+len(out))
	path = append(path, in...)
	path = append(path, loop...)
	path = append(path, out...)

	return path, nil
}

// AvoidingPath returns a path from x0 to x1 staying outside every
// exclusion disc. Endpoints strictly inside a disc are rejected with
// ErrInsideDisc.
func (p *Planner) AvoidingPath(x0, x1 complex128) (Path, error) {
	for _, x := range []complex128{x0, x1} {
		if i := p.discIndexContaining(x); i >= 0 {
			return nil, fmt.Errorf("%w: %v inside disc of %v", ErrInsideDisc, x, p.discr[i])
		}
	}

	return Path(p.approach(x0, x1, -1)), nil
}
