// Package euler implements the four primitive Euler operators —
// RemoveIsolatedNode, MergeEdges, RemoveBridge, MergeFaces — and their
// two compositions, RemoveEdge and RemoveEdgeWithEnds, over a
// *planarmap.Map.
//
// Every primitive runs the same six phases: pre-hooks, topological and
// geometric surgery, label-image update, uninitialisation of obsolete
// cells, post-hooks, and (when pixels changed ownership)
// associatePixels notification. A pre-hook returning false aborts the
// operation before any state change; an invariant violation detected
// mid-surgery is fatal and latches the map via MarkCorrupted.
//
// A Kernel owns the HookSet that every operation dispatches through;
// callers register handlers with Kernel.Hooks() the same way teacher
// packages wire OnVisit/OnEnqueue callbacks into a traversal.
package euler
