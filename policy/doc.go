// Package policy builds a face-adjacency dual graph over a
// *planarmap.Map — one vertex per finite face, one edge per
// non-bridge map edge — and runs the traversal, shortest-path, and
// minimum-spanning-tree algorithms over it needed to script batches
// of Euler operations: reachability between two faces, a minimum
// merge-cost spanning order, and the cheapest chain of merges joining
// two faces.
//
// The dual graph itself is read-only and disconnected from the
// planarmap's own locking; callers that want the scripted Steps
// applied do so explicitly via Execute, against a live
// *pyramid.Pyramid, after the dual graph has been built from a
// snapshot of the map's current topology.
package policy
