// Package kmcerr defines the sentinel errors for this module's three
// error kinds: InvalidConfiguration, PreconditionViolated, and
// OutOfDomain. Callers match against these with errors.Is/errors.As
// rather than string comparison; every error this module returns for one
// of these kinds wraps exactly one of them with %w. Errors coming from a
// RateCalculator, from reading or parsing a scenario file, or from
// registering metrics are wrapped as they come, without a sentinel. Some
// failures panic instead (see selector.Base.CalculateRate and
// selector.Base.CalculateTimeStep for which failures are which).
package kmcerr

import "errors"

var (
	// ErrInvalidConfiguration marks a construction-time failure: an empty
	// id list, a non-positive rate upper bound, a duplicate id, or
	// mismatched id/rate slice lengths.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrPrecondition marks a precondition violated by a value the
	// caller's RateCalculator produced -- a negative rate, or a rate
	// exceeding the rejection selector's upper bound.
	ErrPrecondition = errors.New("precondition violated")

	// ErrOutOfDomain marks an operation referencing an event id the
	// selector does not know about, e.g. UpdateRate on an unmapped id.
	ErrOutOfDomain = errors.New("event id out of domain")
)
