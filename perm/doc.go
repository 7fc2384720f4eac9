// Package perm provides permutations of fiber sheet indices for
// monodromy computations on Riemann surfaces.
//
// A fiber is the ordered tuple of y-roots of f(x,y)=0 above a fixed x;
// its positional slots are the sheets. Continuing the fiber around a
// loop in the x-plane returns the same set of values in a possibly
// different order, and Match recovers that reordering numerically:
//
//	phi, err := perm.Match(endFiber, baseFiber, 1e-12)
//
// phi[i] = j means sheet i is carried to sheet j by the loop.
//
// Perms compose left-to-right: p.Compose(q) is "p then q", matching the
// order loops are traversed. Identity, Inverse, Pow and Cycles round
// out the small algebra the monodromy engine and the homology builder
// need; nothing here touches geometry.
package perm
