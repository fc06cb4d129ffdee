// Package astroerr defines the error taxonomy shared across the ephemeris
// engine. Each kind is a distinct sentinel — the set is flat, not a hierarchy,
// matching the error style goeph uses for its own SPK/search failures.
package astroerr

import "errors"

var (
	// ErrDateTimeFormat is returned for unparseable or out-of-range calendar input.
	ErrDateTimeFormat = errors.New("astroerr: invalid date/time")

	// ErrEarthNotAllowed is returned when Earth is passed to an operation that
	// requires a body other than the observer (e.g. AngleFromSun(Earth)).
	ErrEarthNotAllowed = errors.New("astroerr: earth not allowed here")

	// ErrInvalidBody is returned when a body is outside the supported set, or
	// unsupported by the specific operation.
	ErrInvalidBody = errors.New("astroerr: invalid body")

	// ErrBadVector is returned when a zero-length vector is passed to an
	// operation that requires a direction.
	ErrBadVector = errors.New("astroerr: zero-length vector")

	// ErrBadAxis is returned when an axis index outside {0,1,2} is given to Pivot.
	ErrBadAxis = errors.New("astroerr: invalid rotation axis")

	// ErrNoConverge is returned when a numeric solver exceeds its iteration budget.
	ErrNoConverge = errors.New("astroerr: failed to converge")

	// ErrInternal marks an invariant assumed unreachable that was reached.
	ErrInternal = errors.New("astroerr: internal invariant violated")
)
