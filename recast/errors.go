package recast

import "errors"

// ErrInvalidGrid is returned when a Grid's bounds or cell sizes cannot
// produce a usable voxel grid: degenerate bounds, non-positive cell sizes,
// or a cell count that would overflow a 32-bit index.
var ErrInvalidGrid = errors.New("recast: invalid grid configuration")

// ErrInternalInvariant is the error a heightfield consistency check
// (checkColumnOrder) reports when a column's spans are out of order. It
// always wraps more specific context via %w. No build stage runs that
// check, so the pipeline itself never returns this error.
var ErrInternalInvariant = errors.New("recast: internal invariant violated")
