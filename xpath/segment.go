package xpath

import (
	"math"
	"math/cmplx"
)

// Segment is a parameterized path piece in the complex x-plane,
// traversed as t runs from 0 to 1. Implementations are immutable
// values; Reverse returns the same locus traversed backwards.
type Segment interface {
	// Point returns the x-plane position at parameter t in [0,1].
	Point(t float64) complex128
	// Start returns Point(0).
	Start() complex128
	// End returns Point(1).
	End() complex128
	// Reverse returns the segment traversed end to start.
	Reverse() Segment
}

// Line is the straight segment from A to B.
type Line struct {
	A, B complex128
}

// Point returns A + t·(B−A).
func (l Line) Point(t float64) complex128 { return l.A + complex(t, 0)*(l.B-l.A) }

// Start returns the line's first endpoint.
func (l Line) Start() complex128 { return l.A }

// End returns the line's second endpoint.
func (l Line) End() complex128 { return l.B }

// Reverse returns the line from B to A.
func (l Line) Reverse() Segment { return Line{A: l.B, B: l.A} }

// Arc is the circular segment Center + Radius·e^{i(Theta + t·DTheta)}.
// The sign of DTheta encodes direction: positive is counterclockwise.
type Arc struct {
	Center complex128
	Radius float64
	Theta  float64
	DTheta float64
}

// Point returns the arc position at parameter t.
func (a Arc) Point(t float64) complex128 {
	phi := a.Theta + t*a.DTheta

	return a.Center + cmplx.Rect(a.Radius, phi)
}

// Start returns the arc position at t=0.
func (a Arc) Start() complex128 { return a.Point(0) }

// End returns the arc position at t=1.
func (a Arc) End() complex128 { return a.Point(1) }

// Reverse returns the arc swept in the opposite direction.
func (a Arc) Reverse() Segment {
	return Arc{Center: a.Center, Radius: a.Radius, Theta: a.Theta + a.DTheta, DTheta: -a.DTheta}
}

// Path is an ordered, connected sequence of segments: segment i ends
// where segment i+1 starts.
type Path []Segment

// Start returns the first segment's start, or 0 for an empty path.
func (p Path) Start() complex128 {
	if len(p) == 0 {
		return 0
	}

	return p[0].Start()
}

// End returns the last segment's end, or 0 for an empty path.
func (p Path) End() complex128 {
	if len(p) == 0 {
		return 0
	}

	return p[len(p)-1].End()
}

// Reverse returns the path traversed backwards: reversed segment order,
// each segment reversed.
func (p Path) Reverse() Path {
	out := make(Path, len(p))
	for i, s := range p {
		out[len(p)-1-i] = s.Reverse()
	}

	return out
}

// normalizeAngle maps an angle difference into (-π, π].
func normalizeAngle(d float64) float64 {
	for d > math.Pi {
		d -= 2 * math.Pi
	}
	for d <= -math.Pi {
		d += 2 * math.Pi
	}

	return d
}
