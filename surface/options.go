package surface

import (
	"fmt"

	"github.com/algeom/riemann/curve"
	"github.com/algeom/riemann/xpath"
)

// Numeric defaults, centralized so no tolerance is hard-coded at a call
// site.
const (
	// DefaultMatchTol is the tolerance for matching fiber values:
	// base-sheet verification, monodromy matching, sheet identification.
	DefaultMatchTol = 1e-12

	// DefaultKappa is the exclusion-radius scale handed to the planner.
	DefaultKappa = xpath.DefaultKappa

	// DefaultRootTol is the fiber root-solving tolerance.
	DefaultRootTol = curve.DefaultRootTol
)

// Option configures a Factory via functional arguments. An invalid
// Option is recorded internally and surfaced as ErrOptionViolation when
// NewFactory is invoked.
type Option func(*Options)

// Options holds Factory configuration.
type Options struct {
	// Kappa scales discriminant exclusion radii, in (0, 1).
	Kappa float64

	// MatchTol bounds fiber-value matching distances.
	MatchTol float64

	// RootTol bounds the fiber root iteration.
	RootTol float64

	// BasePoint, when BaseSet, overrides the planner's base point.
	BasePoint complex128
	BaseSet   bool

	// BaseFiber, when non-nil, fixes the sheet ordering above the base
	// point instead of solving for one. It is verified against the
	// curve at construction.
	BaseFiber []complex128

	// Continuator overrides the analytic-continuation strategy.
	Continuator Continuator

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the documented defaults and the
// root-tracking continuator.
func DefaultOptions() Options {
	return Options{
		Kappa:    DefaultKappa,
		MatchTol: DefaultMatchTol,
		RootTol:  DefaultRootTol,
	}
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

// WithMatchTol sets the fiber-matching tolerance; must be positive.
func WithMatchTol(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 {
			o.err = fmt.Errorf("%w: match tolerance %g", ErrOptionViolation, tol)
			return
		}
		o.MatchTol = tol
	}
}

// WithRootTol sets the root-solving tolerance; must be positive.
func WithRootTol(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 {
			o.err = fmt.Errorf("%w: root tolerance %g", ErrOptionViolation, tol)
			return
		}
		o.RootTol = tol
	}
}

// WithBasePoint fixes the base x-point instead of letting the planner
// choose one.
func WithBasePoint(x complex128) Option {
	return func(o *Options) {
		o.BasePoint = x
		o.BaseSet = true
	}
}

// WithBaseFiber fixes the ordered fiber above the base point. The
// values are verified against the curve at construction.
func WithBaseFiber(fiber []complex128) Option {
	return func(o *Options) {
		if len(fiber) == 0 {
			o.err = fmt.Errorf("%w: empty base fiber", ErrOptionViolation)
			return
		}
		o.BaseFiber = append([]complex128(nil), fiber...)
	}
}

// WithContinuator sets a custom analytic-continuation strategy.
func WithContinuator(c Continuator) Option {
	return func(o *Options) {
		if c == nil {
			o.err = fmt.Errorf("%w: nil continuator", ErrOptionViolation)
			return
		}
		o.Continuator = c
	}
}
