package histogram

import "errors"

// Sentinel errors for bin construction.
var (
	// ErrDegenerateBins indicates fewer than 2 rows were available after
	// restricting to the active subset, or too few to fill every requested
	// bin with ⌈n/binsize⌉-row chunks — the caller (search) treats this as a per-pair skip, not a
	// fatal error, per spec §4.4's "per-pair failures silently skip".
	ErrDegenerateBins = errors.New("histogram: degenerate bin construction")
)
