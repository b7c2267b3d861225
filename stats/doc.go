// Package stats offers matrix-based views and running accumulators
// over a *planarmap.Map.
//
// AdjacencyMatrix and IncidenceMatrix are dense, build-on-demand
// projections of the map's current node/edge/face collections, for
// callers who want classic graph-theoretic queries (degree sequences,
// spectral analysis, linear-algebra packages) without walking darts.
// They are snapshots: taken once, they do not track subsequent Euler
// operations.
//
// FaceAccumulator is the opposite: a live registration against an
// euler.HookSet that keeps per-face pixel count, area, and perimeter
// current as operations run, so callers never need to re-derive them
// from scratch (or rescan the label image) to ask "how big is this
// face right now".
package stats
