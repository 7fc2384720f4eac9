// Package ypath derives abstract homology cycles — winding words in the
// monodromy generators — from a monodromy group, together with the
// base-sheet switching words used for routing.
package ypath

import (
	"errors"
	"fmt"

	"github.com/algeom/riemann/perm"
)

// Sentinel errors for the cycle builder.
var (
	// ErrBadGroup is returned when the branch points and permutations
	// do not form a consistent monodromy group description.
	ErrBadGroup = errors.New("ypath: inconsistent monodromy group")

	// ErrSheetIndex is returned when a sheet index is out of range.
	ErrSheetIndex = errors.New("ypath: sheet index out of range")

	// ErrSheetUnreachable is returned when the monodromy action cannot
	// carry the base sheet to the requested sheet (the surface is
	// disconnected).
	ErrSheetUnreachable = errors.New("ypath: sheet unreachable from base sheet")
)

// Turn is one step of a winding word: wind Rots times around the
// finite branch point at Point (negative is clockwise).
type Turn struct {
	Point complex128
	Rots  int
}

// Cycle is an ordered winding word. Cycles produced by Builder are
// closed: applying the word's permutations returns the base sheet to
// itself.
type Cycle []Turn

// Reverse returns the word undoing c: reversed order, negated windings.
func (c Cycle) Reverse() Cycle {
	out := make(Cycle, len(c))
	for i, t := range c {
		out[len(c)-1-i] = Turn{Point: t.Point, Rots: -t.Rots}
	}

	return out
}

// merge combines consecutive turns around the same point and drops
// zero windings.
func merge(c Cycle) Cycle {
	out := make(Cycle, 0, len(c))
	for _, t := range c {
		if t.Rots == 0 {
			continue
		}
		if n := len(out); n > 0 && out[n-1].Point == t.Point {
			out[n-1].Rots += t.Rots
			if out[n-1].Rots == 0 {
				out = out[:n-1]
			}
			continue
		}
		out = append(out, t)
	}

	return out
}

// edge is one sheet transition induced by a generator: applying
// generator gen once from sheet u lands on sheet v.
type edge struct {
	gen, u, v int
}

// Builder converts a monodromy group into abstract cycles. It is
// immutable after construction.
type Builder struct {
	n      int
	points []complex128
	perms  []perm.Perm
	inf    perm.Perm // nil when infinity is not a branch point
	genus  int

	// monodromy graph over sheets and its BFS spanning tree
	edges      []edge
	treeEdge   []bool
	reached    []bool
	parent     []int
	parentEdge []int
}

// New builds a cycle Builder from the finite branch points and their
// permutations, in canonical order, plus the permutation at infinity
// (nil when infinity is unbranched). nSheets is the fiber size.
func New(nSheets int, points []complex128, perms []perm.Perm, infinity perm.Perm) (*Builder, error) {
	if nSheets < 1 {
		return nil, fmt.Errorf("%w: %d sheets", ErrBadGroup, nSheets)
	}
	if len(points) != len(perms) {
		return nil, fmt.Errorf("%w: %d branch points vs %d permutations", ErrBadGroup, len(points), len(perms))
	}
	for i, p := range perms {
		if p.Len() != nSheets {
			return nil, fmt.Errorf("%w: permutation %d acts on %d sheets, want %d", ErrBadGroup, i, p.Len(), nSheets)
		}
	}
	if infinity != nil && infinity.Len() != nSheets {
		return nil, fmt.Errorf("%w: infinity permutation acts on %d sheets, want %d", ErrBadGroup, infinity.Len(), nSheets)
	}

	b := &Builder{
		n:      nSheets,
		points: append([]complex128(nil), points...),
		perms:  append([]perm.Perm(nil), perms...),
		inf:    infinity,
	}
	b.buildGraph()
	b.genus = b.riemannHurwitz()

	return b, nil
}

// buildGraph lists the sheet transitions of every finite generator and
// grows a BFS spanning tree from sheet 0. Transpositions contribute a
// single undirected edge; longer permutation cycles one edge per step.
func (b *Builder) buildGraph() {
	for g, sigma := range b.perms {
		for _, cyc := range sigma.Cycles() {
			switch {
			case len(cyc) < 2:
				continue
			case len(cyc) == 2:
				b.edges = append(b.edges, edge{gen: g, u: cyc[0], v: cyc[1]})
			default:
				for k := range cyc {
					b.edges = append(b.edges, edge{gen: g, u: cyc[k], v: cyc[(k+1)%len(cyc)]})
				}
			}
		}
	}

	b.treeEdge = make([]bool, len(b.edges))
	b.reached = make([]bool, b.n)
	b.parent = make([]int, b.n)
	b.parentEdge = make([]int, b.n)
	for i := range b.parent {
		b.parent[i] = -1
		b.parentEdge[i] = -1
	}

	queue := []int{0}
	b.reached[0] = true
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for ei, e := range b.edges {
			var other int
			switch u {
			case e.u:
				other = e.v
			case e.v:
				other = e.u
			default:
				continue
			}
			if b.reached[other] {
				continue
			}
			b.reached[other] = true
			b.parent[other] = u
			b.parentEdge[other] = ei
			b.treeEdge[ei] = true
			queue = append(queue, other)
		}
	}
}

// riemannHurwitz computes the genus from the branching data:
// 2 - 2g = 2n - Σ(cycle length - 1) over all generators including
// infinity.
func (b *Builder) riemannHurwitz() int {
	branching := 0
	count := func(p perm.Perm) {
		for _, cyc := range p.Cycles() {
			branching += len(cyc) - 1
		}
	}
	for _, p := range b.perms {
		count(p)
	}
	if b.inf != nil {
		count(b.inf)
	}
	g := (branching - 2*b.n + 2) / 2
	if g < 0 {
		g = 0
	}

	return g
}

// Genus returns the genus implied by the branching data.
func (b *Builder) Genus() int { return b.genus }

// SheetCount returns the fiber size.
func (b *Builder) SheetCount() int { return b.n }

// turnFor returns the winding step traversing e from sheet `from`:
// +1 when the generator carries `from` forward along e, -1 when the
// traversal runs against it.
func (b *Builder) turnFor(e edge, from int) Turn {
	rots := 1
	if from != e.u {
		rots = -1
	}

	return Turn{Point: b.points[e.gen], Rots: rots}
}

// sheetWord returns the spanning-tree word carrying sheet 0 to k.
// The caller guarantees k is reached.
func (b *Builder) sheetWord(k int) Cycle {
	var rev Cycle
	for s := k; s != 0; s = b.parent[s] {
		e := b.edges[b.parentEdge[s]]
		rev = append(rev, b.turnFor(e, b.parent[s]))
	}
	out := make(Cycle, len(rev))
	for i, t := range rev {
		out[len(rev)-1-i] = t
	}

	return merge(out)
}

// SheetPath returns a winding word carrying the base sheet (index 0)
// to sheet k. For k=0 the word is empty.
func (b *Builder) SheetPath(k int) (Cycle, error) {
	if k < 0 || k >= b.n {
		return nil, fmt.Errorf("%w: %d of %d", ErrSheetIndex, k, b.n)
	}
	if !b.reached[k] {
		return nil, fmt.Errorf("%w: sheet %d", ErrSheetUnreachable, k)
	}
	if k == 0 {
		return Cycle{}, nil
	}

	return b.sheetWord(k), nil
}

// CCycles returns the c-cycles — one closed word per non-tree edge of
// the monodromy graph: out to the edge's sheet, once across it, and
// back — together with the 2·genus × len(cycles) matrix expressing the
// a-cycles (first genus rows) and b-cycles (last genus rows) as integer
// combinations of them. Columns that contribute to no combination are
// NOT pruned here; that is the consumer's policy.
func (b *Builder) CCycles() ([]Cycle, *IntMatrix) {
	var cycles []Cycle
	for ei, e := range b.edges {
		if b.treeEdge[ei] {
			continue
		}
		var w Cycle
		w = append(w, b.sheetWord(e.u)...)
		w = append(w, Turn{Point: b.points[e.gen], Rots: 1})
		w = append(w, b.sheetWord(e.v).Reverse()...)
		cycles = append(cycles, merge(w))
	}

	return cycles, b.combinations(len(cycles))
}

// combinations builds the a/b linear-combination matrix by the chain
// pairing over the branch-point ladder: consecutive differences of the
// per-branch-point c-cycle classes, with the class at infinity given by
// the relation that all generators multiply to the identity.
func (b *Builder) combinations(ncols int) *IntMatrix {
	g := b.genus
	m := NewIntMatrix(2*g, ncols)
	if g == 0 || ncols == 0 {
		return m
	}

	// ladder of class vectors: zero, one unit per c-cycle, and the
	// infinity class -Σ when infinity is branched
	vecs := make([][]int, 0, ncols+2)
	vecs = append(vecs, make([]int, ncols))
	for j := 0; j < ncols; j++ {
		v := make([]int, ncols)
		v[j] = 1
		vecs = append(vecs, v)
	}
	if b.inf != nil && !b.inf.IsIdentity() {
		v := make([]int, ncols)
		for j := range v {
			v[j] = -1
		}
		vecs = append(vecs, v)
	}

	at := func(i int) []int {
		if i < len(vecs) {
			return vecs[i]
		}

		return make([]int, ncols)
	}
	for k := 1; k <= g; k++ {
		ak, bk := at(2*k-1), at(2*k)
		prev := at(2 * (k - 1))
		for j := 0; j < ncols; j++ {
			m.Set(k-1, j, ak[j]-prev[j])
			m.Set(g+k-1, j, bk[j]-ak[j])
		}
	}

	return m
}

// combine expands one matrix row into a single closed word.
func (b *Builder) combine(row []int, cycles []Cycle) Cycle {
	var out Cycle
	for j, mult := range row {
		switch {
		case mult > 0:
			for k := 0; k < mult; k++ {
				out = append(out, cycles[j]...)
			}
		case mult < 0:
			rev := cycles[j].Reverse()
			for k := 0; k < -mult; k++ {
				out = append(out, rev...)
			}
		}
	}

	return merge(out)
}

// ACycles returns the genus-many a-cycles as winding words.
func (b *Builder) ACycles() []Cycle {
	cycles, m := b.CCycles()
	out := make([]Cycle, b.genus)
	for k := 0; k < b.genus; k++ {
		out[k] = b.combine(m.Row(k), cycles)
	}

	return out
}

// BCycles returns the genus-many b-cycles as winding words.
func (b *Builder) BCycles() []Cycle {
	cycles, m := b.CCycles()
	out := make([]Cycle, b.genus)
	for k := 0; k < b.genus; k++ {
		out[k] = b.combine(m.Row(b.genus+k), cycles)
	}

	return out
}
