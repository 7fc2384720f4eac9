// Package surface lifts x-plane paths onto the Riemann surface of a
// plane algebraic curve f(x,y)=0 and is the package callers normally
// import.
//
// The Factory ties the collaborators together. Built from a curve and
// its discriminant points, it eagerly computes the base fiber (the
// sheet ordering), the full monodromy group (one loop continuation per
// discriminant point, plus infinity, verified against the product law)
// and the abstract homology cycles. It then answers:
//
//   - MonodromyPath(b): the lifted generator loop around b.
//   - ACycles()/BCycles()/CCycles(): homology cycles as concrete lifted
//     paths, c-cycles paired with their a/b combination matrix.
//   - PathToPlace(p): a route from the base place to an arbitrary place
//     (x, y), switching sheets through a monodromy word when needed.
//   - BuildPath(xp, x0, fiber): the raw lifting primitive.
//
// Lifting is analytic continuation: a Continuator tracks the ordered
// fiber of y-roots along each x-segment. The default RootTracker
// re-solves the fiber at adaptive steps and matches roots by nearest
// value, refusing any ambiguous match; places inside a discriminant
// exclusion disc are rejected with ErrNearDiscriminant rather than
// tracked through the collision.
//
// Paths and the Factory are immutable after construction and safe for
// concurrent use.
package surface
