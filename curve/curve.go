// Package curve represents a plane algebraic curve f(x,y)=0 with
// distinguished variable y, and solves for its fiber of y-roots above a
// fixed x by simultaneous (Durand–Kerner) root iteration.
package curve

import (
	"errors"
	"fmt"
	"math/cmplx"
)

// Sentinel errors for curve construction and fiber solving.
var (
	// ErrDegenerate is returned when the polynomial has y-degree < 1 or
	// an identically zero leading y-coefficient.
	ErrDegenerate = errors.New("curve: polynomial is degenerate in y")

	// ErrDegenerateFiber is returned when the leading y-coefficient
	// vanishes at the requested x, so the fiber drops degree there.
	ErrDegenerateFiber = errors.New("curve: fiber degenerates at this x")

	// ErrNoConvergence is returned when the root iteration fails to
	// settle within the iteration cap.
	ErrNoConvergence = errors.New("curve: root iteration did not converge")
)

const (
	// DefaultRootTol is the relative tolerance at which the root
	// iteration is considered settled.
	DefaultRootTol = 1e-14

	// maxIterations caps the Durand–Kerner sweeps per fiber solve.
	maxIterations = 500

	// leadingEps is the scale below which the leading coefficient at a
	// specific x counts as vanished.
	leadingEps = 1e-13
)

// Curve is an immutable plane algebraic curve f(x,y) = Σ_j c_j(x)·y^j,
// with each coefficient c_j a polynomial in x.
type Curve struct {
	// coeffs[j][k] multiplies y^j · x^k.
	coeffs [][]complex128
	degY   int
}

// New builds a Curve from coefficient rows: coeffs[j] lists the x-poly
// multiplying y^j, lowest x-power first. The rows are deep-copied.
// The top row must contain a nonzero entry and j must reach at least 1,
// otherwise ErrDegenerate is returned.
func New(coeffs [][]complex128) (*Curve, error) {
	degY := len(coeffs) - 1
	if degY < 1 {
		return nil, fmt.Errorf("%w: y-degree %d", ErrDegenerate, degY)
	}
	lead := coeffs[degY]
	zero := true
	for _, c := range lead {
		if c != 0 {
			zero = false
			break
		}
	}
	if zero {
		return nil, fmt.Errorf("%w: leading y-coefficient is identically zero", ErrDegenerate)
	}

	cp := make([][]complex128, len(coeffs))
	for j, row := range coeffs {
		cp[j] = make([]complex128, len(row))
		copy(cp[j], row)
	}

	return &Curve{coeffs: cp, degY: degY}, nil
}

// DegreeY returns the y-degree of the curve, i.e. the fiber size above
// a generic x.
func (c *Curve) DegreeY() int { return c.degY }

// evalPoly evaluates a univariate polynomial (lowest power first) by
// Horner's scheme.
func evalPoly(cs []complex128, z complex128) complex128 {
	var v complex128
	for k := len(cs) - 1; k >= 0; k-- {
		v = v*z + cs[k]
	}

	return v
}

// CoeffsAt returns the univariate polynomial in y obtained by fixing x,
// lowest power first, length DegreeY()+1.
func (c *Curve) CoeffsAt(x complex128) []complex128 {
	out := make([]complex128, c.degY+1)
	for j, row := range c.coeffs {
		out[j] = evalPoly(row, x)
	}

	return out
}

// Eval evaluates f(x, y).
func (c *Curve) Eval(x, y complex128) complex128 {
	return evalPoly(c.CoeffsAt(x), y)
}

// EvalDY evaluates ∂f/∂y at (x, y).
func (c *Curve) EvalDY(x, y complex128) complex128 {
	cs := c.CoeffsAt(x)
	d := make([]complex128, len(cs)-1)
	for j := 1; j < len(cs); j++ {
		d[j-1] = complex(float64(j), 0) * cs[j]
	}

	return evalPoly(d, y)
}

// FiberAt returns the ordered fiber of y-roots above x using
// DefaultRootTol. The order is the iteration's settled order and is
// deterministic for a fixed input.
func (c *Curve) FiberAt(x complex128) ([]complex128, error) {
	return c.FiberAtTol(x, DefaultRootTol)
}

// FiberAtTol is FiberAt with an explicit relative tolerance.
// Returns ErrDegenerateFiber when the leading coefficient vanishes at x
// and ErrNoConvergence when the iteration fails to settle.
func (c *Curve) FiberAtTol(x complex128, tol float64) ([]complex128, error) {
	cs := c.CoeffsAt(x)
	n := c.degY

	// scale for the vanishing test: largest coefficient magnitude
	scale := 0.0
	for _, v := range cs {
		if a := cmplx.Abs(v); a > scale {
			scale = a
		}
	}
	lead := cs[n]
	if scale == 0 || cmplx.Abs(lead) < leadingEps*scale {
		return nil, fmt.Errorf("%w: x=%v", ErrDegenerateFiber, x)
	}

	// monic normalization
	monic := make([]complex128, n+1)
	for j, v := range cs {
		monic[j] = v / lead
	}

	// Durand–Kerner with the standard geometric seed, recentered at the
	// root centroid -a_{n-1}/n.
	center := -monic[n-1] / complex(float64(n), 0)
	seed := complex(0.4, 0.9)
	z := make([]complex128, n)
	w := seed
	for i := range z {
		z[i] = center + w
		w *= seed
	}

	for it := 0; it < maxIterations; it++ {
		maxDelta := 0.0
		for i := range z {
			num := evalPoly(monic, z[i])
			den := complex(1, 0)
			for j := range z {
				if j != i {
					den *= z[i] - z[j]
				}
			}
			if den == 0 {
				// coincident iterates; nudge apart and retry next sweep
				z[i] += complex(tol, tol)
				maxDelta = 1
				continue
			}
			delta := num / den
			z[i] -= delta
			if d := cmplx.Abs(delta) / (1 + cmplx.Abs(z[i])); d > maxDelta {
				maxDelta = d
			}
		}
		if maxDelta < tol {
			return z, nil
		}
	}

	return nil, fmt.Errorf("%w: x=%v after %d iterations", ErrNoConvergence, x, maxIterations)
}
