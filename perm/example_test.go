// Package perm_test provides runnable examples for the permutation
// algebra, showing both code and expected output.
package perm_test

import (
	"fmt"

	"github.com/algeom/riemann/perm"
)

// ExamplePerm_Compose demonstrates left-to-right composition: sheet i first
// moves through p, then through q.
func ExamplePerm_Compose() {
	// 1) A transposition of sheets 0 and 1 on three sheets.
	p, _ := perm.New([]int{1, 0, 2})
	// 2) A 3-cycle 0→1→2→0.
	q, _ := perm.New([]int{1, 2, 0})

	// 3) Compose "p then q" and print the image form.
	fmt.Println(p.Compose(q))
	// 4) Composing q with its inverse yields the identity.
	fmt.Println(q.Compose(q.Inverse()).IsIdentity())
	// Output:
	// [2 1 0]
	// true
}

// ExampleMatch demonstrates inferring a permutation from two orderings
// of the same fiber values.
func ExampleMatch() {
	// 1) A fiber and the same values after one loop swapped them.
	base := []complex128{complex(2, 0), complex(-2, 0)}
	end := []complex128{complex(-2, 0), complex(2, 0)}

	// 2) Match end back onto base within a tolerance.
	sigma, err := perm.Match(end, base, 1e-12)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(sigma)
	// Output: [1 0]
}
