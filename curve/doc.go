// Package curve models the defining polynomial f(x,y) of a plane
// algebraic curve and computes its fiber: the ordered y-roots of
// f(x,y)=0 for a fixed x.
//
// Coefficients are stored as rows of x-polynomials, one row per power
// of y, so f = y² + x³ − x² is
//
//	curve.New([][]complex128{
//		{0, 0, -1, 1}, // y⁰: -x² + x³
//		{0},           // y¹
//		{1},           // y²
//	})
//
// (note the sign: rows give Σ c_j(x)·y^j directly).
//
// FiberAt solves all roots simultaneously by Durand–Kerner iteration;
// the settled order is deterministic but has no global meaning — sheet
// identity across different x-values is established by analytic
// continuation in package surface, never by re-solving.
//
// The fiber degenerates where the leading y-coefficient vanishes or at
// discriminant x-values where roots collide; the former is reported as
// ErrDegenerateFiber, the latter shows up as matching failures in the
// continuation layer.
package curve
