// Package planarmap implements a planar topological map: the partition
// of the 2D plane induced by a set of polygonal edges into nodes
// (0-cells), edges (1-cells), and faces (2-cells), encoded with darts —
// signed integers whose magnitude names an edge and whose sign selects
// an orientation — related by three navigations:
//
//   - Alpha(d):  flip sign, the opposite dart on the same edge.
//   - Sigma(d):  rotate to the next dart counterclockwise at start(d).
//   - Phi(d):    Sigma(Alpha(d), -1), one step around d's left face.
//
// All cross-references between nodes, edges, and faces are dense
// integer labels into label-indexed slices on *Map, never pointers —
// this keeps the inherently cyclic node/edge/face reference graph
// free of ownership cycles and makes every cell trivially relabel-able
// (euler needs exactly that when it merges or splits cells).
//
// A logically deleted cell is represented by clearing its label slot;
// any Dart still referring to a cleared edge fails with ErrInvalidDart
// rather than silently dereferencing stale state.
//
// File layout follows the teacher's core package: types.go holds the
// data types and sentinel errors, api.go the public constructors and
// read-only getters, construct.go the five-step embedding algorithm,
// darts.go the alpha/sigma/phi navigation, queries.go the derived
// geometric queries, and methods_*.go the per-cell mutation primitives
// that package euler drives.
package planarmap
