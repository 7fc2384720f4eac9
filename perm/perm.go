// Package perm implements permutations of fiber sheet indices,
// providing composition, inversion, cycle decomposition, and
// nearest-value matching of two ordered fibers under a tolerance.
package perm

import (
	"errors"
	"fmt"
	"math/cmplx"
)

// Sentinel errors for permutation construction and fiber matching.
var (
	// ErrNotBijection is returned when an image slice does not describe
	// a bijection on [0, n).
	ErrNotBijection = errors.New("perm: image slice is not a bijection")

	// ErrLengthMismatch is returned when two fibers differ in length.
	ErrLengthMismatch = errors.New("perm: fibers differ in length")

	// ErrNoMatch is returned when a fiber value has no unique partner
	// within tolerance in the other fiber.
	ErrNoMatch = errors.New("perm: no fiber value within tolerance")
)

const panicSizeMismatch = "perm: compose of permutations with different sizes"

// Perm is a permutation of sheet indices in image form: p[i] is the
// index sheet i is sent to. A Perm is always a bijection on [0, len(p)).
type Perm []int

// New validates image as a bijection on [0, len(image)) and returns it
// as a Perm. The slice is copied; the caller keeps ownership of image.
func New(image []int) (Perm, error) {
	n := len(image)
	seen := make([]bool, n)
	for i, v := range image {
		if v < 0 || v >= n {
			return nil, fmt.Errorf("%w: image[%d]=%d out of range", ErrNotBijection, i, v)
		}
		if seen[v] {
			return nil, fmt.Errorf("%w: duplicate image %d", ErrNotBijection, v)
		}
		seen[v] = true
	}
	p := make(Perm, n)
	copy(p, image)

	return p, nil
}

// Identity returns the identity permutation on n sheets.
func Identity(n int) Perm {
	p := make(Perm, n)
	for i := range p {
		p[i] = i
	}

	return p
}

// Len returns the number of sheets the permutation acts on.
func (p Perm) Len() int { return len(p) }

// Apply returns the image of sheet i.
func (p Perm) Apply(i int) int { return p[i] }

// IsIdentity reports whether p fixes every sheet.
func (p Perm) IsIdentity() bool {
	for i, v := range p {
		if v != i {
			return false
		}
	}

	return true
}

// Equal reports whether p and q are the same permutation.
func (p Perm) Equal(q Perm) bool {
	if len(p) != len(q) {
		return false
	}
	for i, v := range p {
		if v != q[i] {
			return false
		}
	}

	return true
}

// Compose returns the permutation "p then q": sheet i is sent to
// q[p[i]]. Panics if the sizes differ (programmer error).
func (p Perm) Compose(q Perm) Perm {
	if len(p) != len(q) {
		panic(panicSizeMismatch)
	}
	r := make(Perm, len(p))
	for i, v := range p {
		r[i] = q[v]
	}

	return r
}

// Inverse returns the permutation undoing p.
func (p Perm) Inverse() Perm {
	r := make(Perm, len(p))
	for i, v := range p {
		r[v] = i
	}

	return r
}

// Pow returns p applied k times; negative k uses the inverse.
func (p Perm) Pow(k int) Perm {
	base := p
	if k < 0 {
		base = p.Inverse()
		k = -k
	}
	r := Identity(len(p))
	for ; k > 0; k-- {
		r = r.Compose(base)
	}

	return r
}

// Cycles returns the disjoint cycle decomposition of p. Each cycle is
// listed starting from its smallest sheet; cycles are ordered by that
// smallest sheet. Fixed sheets appear as singleton cycles.
func (p Perm) Cycles() [][]int {
	var cycles [][]int
	seen := make([]bool, len(p))
	for i := range p {
		if seen[i] {
			continue
		}
		cyc := []int{i}
		seen[i] = true
		for j := p[i]; j != i; j = p[j] {
			cyc = append(cyc, j)
			seen[j] = true
		}
		cycles = append(cycles, cyc)
	}

	return cycles
}

// Match infers the permutation taking positions of from to positions of
// to: the returned p satisfies |from[i] - to[p[i]]| <= tol for every i.
// Matching is nearest-value; an unmatched entry or two entries claiming
// the same partner yield ErrNoMatch, unequal lengths ErrLengthMismatch.
func Match(from, to []complex128, tol float64) (Perm, error) {
	if len(from) != len(to) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(from), len(to))
	}
	n := len(from)
	p := make(Perm, n)
	taken := make([]bool, n)
	for i, v := range from {
		best, bestDist := -1, 0.0
		for j, w := range to {
			d := cmplx.Abs(v - w)
			if best < 0 || d < bestDist {
				best, bestDist = j, d
			}
		}
		if bestDist > tol {
			return nil, fmt.Errorf("%w: entry %d is %.3e from its nearest partner (tol %.3e)",
				ErrNoMatch, i, bestDist, tol)
		}
		if taken[best] {
			return nil, fmt.Errorf("%w: entries collide on partner %d", ErrNoMatch, best)
		}
		taken[best] = true
		p[i] = best
	}

	return p, nil
}
