package mapbuilder

import "errors"

// ErrTooFewVertices is returned when a parametric fixture (Chain,
// Grid) is asked for fewer than its minimum viable size.
var ErrTooFewVertices = errors.New("mapbuilder: too few vertices requested")
