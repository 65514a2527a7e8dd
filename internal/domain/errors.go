package domain

import "errors"

// ─── Sentinel Errors ────────────────────────────────────────────────────────
// Matched with errors.Is; call sites wrap these with context via %w.

var (
	// Construction errors
	ErrInvalidConfig = errors.New("invalid configuration")

	// Inverse calendar mapping errors
	ErrInvalidMonth = errors.New("month out of range")
	ErrInvalidDay   = errors.New("day out of range")

	// Forward calendar mapping error. A correct 365/366 month-length
	// sequence always absorbs the day, so hitting this indicates a bug
	// in the sequence itself.
	ErrOutOfBounds = errors.New("date out of bounds")
)
