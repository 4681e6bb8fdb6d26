package dstat

import "errors"

// Error kinds raised by the statistical core. The core wraps these with the
// failing computation and block index where one applies, so callers should
// match with errors.Is.
var (
	// ErrNoBlocks indicates that no block with a positive informative site
	// count was supplied, so no statistic is defined. Callers are expected
	// to treat this as a "no data" outcome rather than a failure.
	ErrNoBlocks = errors.New("dstat: no blocks with informative sites")

	// ErrInsufficientBlocks indicates fewer than two blocks, for which no
	// leave-one-out subset exists and the jackknife is undefined.
	ErrInsufficientBlocks = errors.New("dstat: jackknife requires at least two blocks")

	// ErrDivisionUndefined indicates a zero denominator in a D-statistic or
	// deletion-weight computation.
	ErrDivisionUndefined = errors.New("dstat: division undefined")

	// ErrDomain indicates a negative or non-finite value where the
	// estimator guarantees a finite non-negative one, which means the
	// inputs were malformed.
	ErrDomain = errors.New("dstat: value outside statistical domain")
)
