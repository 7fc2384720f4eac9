package xpath

import "errors"

var (
	// ErrUnknownPoint is returned when a queried x-value is not one of
	// the planner's discriminant points.
	ErrUnknownPoint = errors.New("xpath: not a discriminant point")

	// ErrDuplicatePoint is returned when two supplied discriminant
	// points coincide.
	ErrDuplicatePoint = errors.New("xpath: duplicate discriminant point")

	// ErrZeroRotations is returned when a monodromy loop is requested
	// with zero windings.
	ErrZeroRotations = errors.New("xpath: monodromy path needs a nonzero winding count")

	// ErrInsideDisc is returned when a path endpoint lies inside the
	// exclusion disc of a discriminant point.
	ErrInsideDisc = errors.New("xpath: point lies inside a discriminant exclusion disc")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("xpath: invalid option supplied")
)
