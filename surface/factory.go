package surface

import (
	"fmt"
	"math/cmplx"

	"github.com/algeom/riemann/curve"
	"github.com/algeom/riemann/perm"
	"github.com/algeom/riemann/xpath"
	"github.com/algeom/riemann/ypath"
)

// Factory builds paths on the Riemann surface of a plane algebraic
// curve: monodromy loops, homology cycles and routes to individual
// places. Construction is eager — the base fiber, the full monodromy
// group and the cycle builder are all computed inside NewFactory, so a
// successfully constructed Factory never fails on group queries.
// A Factory is immutable and safe for concurrent use.
type Factory struct {
	c        *curve.Curve
	planner  *xpath.Planner
	cycles   *ypath.Builder
	cont     Continuator
	matchTol float64
	rootTol  float64

	baseX     complex128
	baseFiber []complex128

	// finite branch points (discriminant points with non-identity
	// permutation) in canonical order, their permutations, and the
	// permutation at infinity (nil when infinity is unbranched)
	branch  []complex128
	perms   []perm.Perm
	infPerm perm.Perm
}

// NewFactory builds a Factory for the curve c with the given
// discriminant points. The point order is canonical: it fixes the
// generator order of the monodromy group and every cycle derived from
// it. Returns ErrInconsistentMonodromy when the computed permutations
// violate the product law, and ErrToleranceMismatch when a supplied
// base fiber does not solve the curve within tolerance.
func NewFactory(c *curve.Curve, discr []complex128, opts ...Option) (*Factory, error) {
	if c == nil {
		return nil, ErrNilCurve
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	popts := []xpath.Option{xpath.WithKappa(o.Kappa)}
	if o.BaseSet {
		popts = append(popts, xpath.WithBasePoint(o.BasePoint))
	}
	planner, err := xpath.NewPlanner(discr, popts...)
	if err != nil {
		return nil, err
	}

	f := &Factory{
		c:        c,
		planner:  planner,
		matchTol: o.MatchTol,
		rootTol:  o.RootTol,
		baseX:    planner.BasePoint(),
		cont:     o.Continuator,
	}
	if f.cont == nil {
		f.cont = NewRootTracker(o.RootTol)
	}

	if f.baseFiber, err = f.resolveBaseFiber(o.BaseFiber); err != nil {
		return nil, err
	}
	if err = f.deriveMonodromy(); err != nil {
		return nil, err
	}
	if f.cycles, err = ypath.New(c.DegreeY(), f.branch, f.perms, f.infPerm); err != nil {
		return nil, err
	}

	return f, nil
}

// resolveBaseFiber fixes the sheet ordering above the base point:
// either the supplied fiber, verified to solve the curve, or the solved
// fiber in its settled order.
func (f *Factory) resolveBaseFiber(supplied []complex128) ([]complex128, error) {
	solved, err := f.c.FiberAtTol(f.baseX, f.rootTol)
	if err != nil {
		return nil, err
	}
	if supplied == nil {
		return solved, nil
	}
	if len(supplied) != f.c.DegreeY() {
		return nil, fmt.Errorf("%w: base fiber has %d entries, want %d", ErrFiberSize, len(supplied), f.c.DegreeY())
	}
	if _, err = perm.Match(supplied, solved, f.matchTol); err != nil {
		return nil, fmt.Errorf("%w: supplied base fiber does not solve the curve at %v", ErrToleranceMismatch, f.baseX)
	}

	return append([]complex128(nil), supplied...), nil
}

// deriveMonodromy continues the base fiber around every discriminant
// point and around infinity. Identity permutations are dropped; the
// permutation at infinity is kept only when non-trivial; the product
// of all kept finite permutations followed by infinity must be the
// identity.
func (f *Factory) deriveMonodromy() error {
	for _, d := range f.planner.DiscriminantPoints() {
		sigma, err := f.loopPermutation(func() (xpath.Path, error) {
			return f.planner.MonodromyPath(d, 1)
		})
		if err != nil {
			return err
		}
		if sigma.IsIdentity() {
			continue
		}
		f.branch = append(f.branch, d)
		f.perms = append(f.perms, sigma)
	}

	sigmaInf, err := f.loopPermutation(f.planner.AroundInfinity)
	if err != nil {
		return err
	}
	if !sigmaInf.IsIdentity() {
		f.infPerm = sigmaInf
	}

	prod := perm.Identity(f.c.DegreeY())
	for _, p := range f.perms {
		prod = prod.Compose(p)
	}
	if f.infPerm != nil {
		prod = prod.Compose(f.infPerm)
	}
	if !prod.IsIdentity() {
		return fmt.Errorf("%w: generator product %v", ErrInconsistentMonodromy, prod)
	}

	return nil
}

// loopPermutation continues the base fiber along one planned loop and
// matches the end fiber back onto the base fiber.
func (f *Factory) loopPermutation(plan func() (xpath.Path, error)) (perm.Perm, error) {
	xp, err := plan()
	if err != nil {
		return nil, err
	}
	path, err := f.BuildPath(xp, f.baseX, f.baseFiber)
	if err != nil {
		return nil, err
	}
	sigma, err := perm.Match(path.EndFiber(), f.baseFiber, f.matchTol)
	if err != nil {
		return nil, fmt.Errorf("%w: loop end fiber does not return to the base fiber", ErrToleranceMismatch)
	}

	return sigma, nil
}

// pickContinuator selects the continuation strategy for one x-segment.
// Today every segment uses the configured tracker; a local technique
// for segments grazing a discriminant disc would hook in here.
func (f *Factory) pickContinuator(_ xpath.Segment) Continuator { return f.cont }

// BasePoint returns the base x-point all loops and routes start from.
func (f *Factory) BasePoint() complex128 { return f.baseX }

// BaseFiber returns a copy of the ordered fiber above the base point.
// Its order defines the sheet numbering.
func (f *Factory) BaseFiber() []complex128 {
	return append([]complex128(nil), f.baseFiber...)
}

// BasePlace returns the place on sheet 0 above the base point.
func (f *Factory) BasePlace() Place {
	return Place{X: f.baseX, Y: f.baseFiber[0]}
}

// DiscriminantPoints returns the discriminant points in canonical
// order, branched or not.
func (f *Factory) DiscriminantPoints() []complex128 {
	return f.planner.DiscriminantPoints()
}

// BranchPoints returns the branch points in canonical order: the
// discriminant points with non-identity permutation, with cmplx.Inf()
// appended when infinity is branched.
func (f *Factory) BranchPoints() []complex128 {
	out := append([]complex128(nil), f.branch...)
	if f.infPerm != nil {
		out = append(out, cmplx.Inf())
	}

	return out
}

// MonodromyGroup returns the branch points and their permutations, in
// canonical order, infinity last when branched.
func (f *Factory) MonodromyGroup() ([]complex128, []perm.Perm) {
	perms := append([]perm.Perm(nil), f.perms...)
	if f.infPerm != nil {
		perms = append(perms, f.infPerm)
	}

	return f.BranchPoints(), perms
}

// IsInfinityBranch reports whether the point at infinity is branched.
func (f *Factory) IsInfinityBranch() bool { return f.infPerm != nil }

// Genus returns the genus implied by the branching data.
func (f *Factory) Genus() int { return f.cycles.Genus() }

// Planner returns the underlying x-plane planner.
func (f *Factory) Planner() *xpath.Planner { return f.planner }

// BuildPath lifts an x-plane path starting at x0 with the given
// ordered fiber onto the surface, continuing segment by segment.
func (f *Factory) BuildPath(xp xpath.Path, x0 complex128, fiber []complex128) (*Path, error) {
	if len(xp) == 0 {
		return nil, ErrEmptyXPath
	}
	if len(fiber) != f.c.DegreeY() {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrFiberSize, len(fiber), f.c.DegreeY())
	}
	if d := cmplx.Abs(xp.Start() - x0); d > connectEps {
		return nil, fmt.Errorf("%w: path starts %.3e away from x0", ErrIncompatiblePaths, d)
	}

	cur := append([]complex128(nil), fiber...)
	segs := make([]*PathSegment, 0, len(xp))
	for _, seg := range xp {
		ps, err := newPathSegment(f.c, seg, f.pickContinuator(seg), cur)
		if err != nil {
			return nil, err
		}
		segs = append(segs, ps)
		cur = ps.EndFiber()
	}

	return &Path{c: f.c, segs: segs, matchTol: f.matchTol}, nil
}

// MonodromyPath returns the lifted loop from the base point once
// counterclockwise around discriminant point b and back.
func (f *Factory) MonodromyPath(b complex128) (*Path, error) {
	xp, err := f.planner.MonodromyPath(b, 1)
	if err != nil {
		return nil, err
	}

	return f.BuildPath(xp, f.baseX, f.baseFiber)
}

// cycleToPath assembles one winding word into a lifted path based at
// the base point. The empty word yields the trivial path staying put.
func (f *Factory) cycleToPath(w ypath.Cycle) (*Path, error) {
	if len(w) == 0 {
		return f.BuildPath(xpath.Path{xpath.Line{A: f.baseX, B: f.baseX}}, f.baseX, f.baseFiber)
	}

	var xp xpath.Path
	for _, turn := range w {
		loop, err := f.planner.MonodromyPath(turn.Point, turn.Rots)
		if err != nil {
			return nil, err
		}
		xp = append(xp, loop...)
	}

	return f.BuildPath(xp, f.baseX, f.baseFiber)
}

// cyclesToPaths maps winding words to lifted paths.
func (f *Factory) cyclesToPaths(words []ypath.Cycle) ([]*Path, error) {
	out := make([]*Path, len(words))
	for i, w := range words {
		p, err := f.cycleToPath(w)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}

	return out, nil
}

// ACycles returns the genus-many a-cycles as lifted paths.
func (f *Factory) ACycles() ([]*Path, error) {
	return f.cyclesToPaths(f.cycles.ACycles())
}

// BCycles returns the genus-many b-cycles as lifted paths.
func (f *Factory) BCycles() ([]*Path, error) {
	return f.cyclesToPaths(f.cycles.BCycles())
}

// CCycles returns the c-cycles as lifted paths together with the
// 2·genus × len(paths) matrix expressing the a- and b-cycles as integer
// combinations of them. Cycles contributing to no combination are
// pruned, along with their matrix columns.
func (f *Factory) CCycles() ([]*Path, *ypath.IntMatrix, error) {
	words, m := f.cycles.CCycles()

	var keep []int
	for j := 0; j < m.Cols(); j++ {
		if !m.IsZeroCol(j) {
			keep = append(keep, j)
		}
	}
	kept := make([]ypath.Cycle, len(keep))
	for i, j := range keep {
		kept[i] = words[j]
	}

	paths, err := f.cyclesToPaths(kept)
	if err != nil {
		return nil, nil, err
	}

	return paths, m.KeepCols(keep), nil
}

// PathToPlace returns a lifted path from the base place to the place p:
// an avoiding x-path to p.X, preceded by a sheet-switching loop when p
// lies on a sheet other than the base sheet. Returns ErrNearDiscriminant
// when p.X falls inside a discriminant exclusion disc, and
// ErrToleranceMismatch when no sheet above p.X carries a y-value within
// tolerance of p.Y.
func (f *Factory) PathToPlace(p Place) (*Path, error) {
	for _, d := range f.planner.DiscriminantPoints() {
		r, err := f.planner.Radius(d)
		if err != nil {
			return nil, err
		}
		if cmplx.Abs(p.X-d) < r {
			return nil, fmt.Errorf("%w: x=%v near %v", ErrNearDiscriminant, p.X, d)
		}
	}

	xp, err := f.planner.AvoidingPath(f.baseX, p.X)
	if err != nil {
		return nil, err
	}
	direct, err := f.BuildPath(xp, f.baseX, f.baseFiber)
	if err != nil {
		return nil, err
	}

	end := direct.EndFiber()
	sheet, best := 0, cmplx.Abs(end[0]-p.Y)
	for i := 1; i < len(end); i++ {
		if d := cmplx.Abs(end[i] - p.Y); d < best {
			sheet, best = i, d
		}
	}
	if best > f.matchTol {
		return nil, fmt.Errorf("%w: no sheet above %v matches y=%v (closest %.3e)", ErrToleranceMismatch, p.X, p.Y, best)
	}
	if sheet == 0 {
		return direct, nil
	}

	word, err := f.cycles.SheetPath(sheet)
	if err != nil {
		return nil, err
	}
	swap, err := f.cycleToPath(word)
	if err != nil {
		return nil, err
	}
	tail, err := f.BuildPath(xp, f.baseX, swap.EndFiber())
	if err != nil {
		return nil, err
	}
	route, err := swap.Concat(tail)
	if err != nil {
		return nil, err
	}
	if d := cmplx.Abs(route.EndFiber()[0] - p.Y); d > f.matchTol {
		return nil, fmt.Errorf("%w: routed path misses y=%v by %.3e", ErrToleranceMismatch, p.Y, d)
	}

	return route, nil
}
