package surface

import "errors"

// Sentinel errors for path construction, monodromy and routing. All are
// fatal to the requested operation; nothing is retried internally.
var (
	// ErrNilCurve is returned if a nil curve pointer is passed.
	ErrNilCurve = errors.New("surface: curve is nil")

	// ErrToleranceMismatch is returned when a computed fiber holds no
	// value within tolerance of an expected target: the requested place
	// is not reachable as specified, or the continuation is inadequate.
	ErrToleranceMismatch = errors.New("surface: fiber value outside tolerance")

	// ErrInconsistentMonodromy is returned when the product of all
	// branch-point permutations and the permutation at infinity is not
	// the identity: a missed branch point or a generator-order error.
	ErrInconsistentMonodromy = errors.New("surface: contradictory permutation at infinity")

	// ErrNearDiscriminant is returned when a target place lies inside
	// the exclusion disc of a discriminant point. Routing there needs a
	// local Puiseux technique and is explicitly unimplemented.
	ErrNearDiscriminant = errors.New("surface: place too close to a discriminant point, routing unimplemented")

	// ErrIncompatiblePaths is returned when two paths cannot be chained
	// because the end state of one does not match the start of the other.
	ErrIncompatiblePaths = errors.New("surface: path endpoint states do not match")

	// ErrStepUnderflow is returned when the continuation step size
	// drops below its floor without resolving a sheet ambiguity.
	ErrStepUnderflow = errors.New("surface: continuation step size underflow")

	// ErrEmptyXPath is returned when a surface path is requested over
	// zero x-plane segments.
	ErrEmptyXPath = errors.New("surface: x-path has no segments")

	// ErrFiberSize is returned when a starting fiber does not match the
	// curve's y-degree.
	ErrFiberSize = errors.New("surface: fiber size does not match curve y-degree")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("surface: invalid option supplied")
)
