package xpath

import "fmt"

// DefaultKappa scales exclusion radii: each discriminant point gets a
// disc of radius κ/2 times the distance to its nearest neighbor, so
// discs never overlap for κ < 1.
const DefaultKappa = 3.0 / 5.0

// Option configures a Planner via functional arguments. An invalid
// Option is recorded internally and surfaced as ErrOptionViolation
// when NewPlanner is invoked.
type Option func(*Options)

// Options holds Planner configuration.
type Options struct {
	// Kappa is the exclusion-radius scale, in (0, 1).
	Kappa float64

	// Base, when BaseSet, overrides the computed base point. It must
	// lie outside every exclusion disc.
	Base    complex128
	BaseSet bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with DefaultKappa and a computed base
// point.
func DefaultOptions() Options {
	return Options{Kappa: DefaultKappa}
}

// WithKappa sets the exclusion-radius scale; k must be in (0, 1).
func WithKappa(k float64) Option {
	return func(o *Options) {
		if k <= 0 || k >= 1 {
			o.err = fmt.Errorf("%w: kappa %g outside (0,1)", ErrOptionViolation, k)
			return
		}
		o.Kappa = k
	}
}

// WithBasePoint fixes the base point instead of computing one.
func WithBasePoint(b complex128) Option {
	return func(o *Options) {
		o.Base = b
		o.BaseSet = true
	}
}
