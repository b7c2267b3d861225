// Package cellmap is a planar topological map core: a dart-based
// planar subdivision (α/σ/φ permutations over nodes, edges, and
// faces), a four-primitive Euler operator kernel that keeps the
// subdivision's invariants intact across every mutation, and a
// versioned pyramid of checkpointed history on top of it.
//
// Everything lives in subpackages:
//
//	label/      — union-find label bookkeeping for merged/removed cells
//	posindex/   — 2D nearest-node spatial index
//	planarmap/  — the planar subdivision itself: Vector2 through Face
//	euler/      — RemoveIsolatedNode, MergeEdges, RemoveBridge, MergeFaces
//	pyramid/    — recorded, replayable history with sparse checkpoints
//	cellimage/  — crack-edge raster → node/edge extraction
//	stats/      — adjacency/incidence matrix views, per-face accumulators
//	policy/     — face-adjacency dual graph and merge-scripting algorithms
//	mapbuilder/ — deterministic named fixture maps
//
// There is no root-level API: import the subpackage whose concern you
// need, starting from planarmap.New for the subdivision itself.
package cellmap
