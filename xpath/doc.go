// Package xpath plans abstract paths in the complex x-plane: the base
// geometry every Riemann-surface path is lifted from.
//
// Segments come in two variants, Line and Arc, both parameterized over
// t in [0,1] and reversible; a Path chains them end to start.
//
// The Planner owns the discriminant points of a curve and an exclusion
// disc around each (radius κ/2 × distance to the nearest neighbor, so
// discs are pairwise disjoint for κ < 1). It plans three kinds of
// routes, all based at a fixed base point chosen left of every disc:
//
//   - MonodromyPath(b, n): out to the boundary of b's disc, n full
//     turns around it, and back — the generator loops of the
//     fundamental group.
//   - AroundInfinity(): one clockwise turn along a circle enclosing
//     every disc — the generator at infinity.
//   - AvoidingPath(x0, x1): a straight line detoured over the boundary
//     of any disc it would cross.
//
// Paths never pass through a discriminant point; routing *to* one is a
// different problem (Puiseux territory) and is not handled here.
//
// The planner performs no analytic continuation and knows nothing about
// fibers; see package surface for the lifting machinery.
package xpath
