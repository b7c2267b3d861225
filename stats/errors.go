package stats

import "errors"

// Sentinel errors for the stats package.
var (
	// ErrNilMap indicates a matrix builder or accumulator was given a
	// nil *planarmap.Map.
	ErrNilMap = errors.New("stats: map is nil")

	// ErrOutOfRange indicates a row/column index outside a matrix's
	// current dimensions.
	ErrOutOfRange = errors.New("stats: index out of range")

	// ErrUnknownLabel indicates a node, edge, or face label not present
	// in a matrix's index at build time.
	ErrUnknownLabel = errors.New("stats: unknown label")
)
