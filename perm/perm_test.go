package perm_test

import (
	"testing"

	"github.com/algeom/riemann/perm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_RejectsNonBijections verifies out-of-range and duplicate
// images are rejected with ErrNotBijection.
func TestNew_RejectsNonBijections(t *testing.T) {
	_, err := perm.New([]int{0, 2})
	assert.ErrorIs(t, err, perm.ErrNotBijection, "out-of-range image must error")

	_, err = perm.New([]int{1, 1, 0})
	assert.ErrorIs(t, err, perm.ErrNotBijection, "duplicate image must error")

	p, err := perm.New([]int{2, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, perm.Perm{2, 0, 1}, p)
}

// TestIdentity_Properties checks Identity, IsIdentity and Equal.
func TestIdentity_Properties(t *testing.T) {
	id := perm.Identity(4)
	assert.True(t, id.IsIdentity(), "Identity must report IsIdentity")

	p := perm.Perm{1, 0, 2, 3}
	assert.False(t, p.IsIdentity(), "transposition is not the identity")
	assert.True(t, p.Compose(p).IsIdentity(), "transposition squared is the identity")
	assert.True(t, p.Equal(p.Inverse()), "a transposition is its own inverse")
}

// TestCompose_Order verifies left-to-right composition: p then q.
func TestCompose_Order(t *testing.T) {
	p := perm.Perm{1, 2, 0} // 0→1→2→0
	q := perm.Perm{0, 2, 1} // swap 1,2

	r := p.Compose(q)
	// sheet 0: p sends to 1, q sends 1 to 2.
	assert.Equal(t, 2, r.Apply(0), "compose must apply p first, then q")
	assert.True(t, p.Compose(p.Inverse()).IsIdentity(), "p∘p⁻¹ = id")
}

// TestPow matches repeated composition, including negative exponents.
func TestPow(t *testing.T) {
	p := perm.Perm{1, 2, 0}
	assert.True(t, p.Pow(3).IsIdentity(), "3-cycle cubed is the identity")
	assert.True(t, p.Pow(-1).Equal(p.Inverse()), "Pow(-1) equals Inverse")
	assert.True(t, p.Pow(0).IsIdentity(), "Pow(0) is the identity")
	assert.True(t, p.Pow(2).Equal(p.Compose(p)), "Pow(2) equals p∘p")
}

// TestCycles checks the disjoint cycle decomposition ordering contract.
func TestCycles(t *testing.T) {
	p := perm.Perm{1, 0, 2, 4, 3}
	cycles := p.Cycles()
	require.Len(t, cycles, 3)
	assert.Equal(t, []int{0, 1}, cycles[0])
	assert.Equal(t, []int{2}, cycles[1], "fixed sheet appears as singleton")
	assert.Equal(t, []int{3, 4}, cycles[2])
}

// TestMatch_Transposition recovers a swap of two nearly-equal fibers.
func TestMatch_Transposition(t *testing.T) {
	base := []complex128{complex(1, 0), complex(-1, 0)}
	end := []complex128{complex(-1, 1e-14), complex(1, -1e-14)}

	phi, err := perm.Match(end, base, 1e-12)
	require.NoError(t, err)
	assert.Equal(t, perm.Perm{1, 0}, phi, "continued fiber is the swapped base fiber")
}

// TestMatch_Errors covers tolerance failure, collisions and length
// mismatch.
func TestMatch_Errors(t *testing.T) {
	a := []complex128{1, 2}
	_, err := perm.Match(a, []complex128{1}, 1e-12)
	assert.ErrorIs(t, err, perm.ErrLengthMismatch)

	_, err = perm.Match(a, []complex128{1, 2.5}, 1e-12)
	assert.ErrorIs(t, err, perm.ErrNoMatch, "value beyond tolerance must error")

	// both entries of `from` are nearest the same target
	_, err = perm.Match([]complex128{1, 1 + 1e-13}, []complex128{1, 9}, 1e-12)
	assert.ErrorIs(t, err, perm.ErrNoMatch, "colliding partners must error")
}
