// Package posindex implements a sorted, multi-associative index from 2D
// position to an integer label (typically a node label), supporting
// nearest-neighbour queries within a caller-supplied radius.
//
// The index is keyed on the x-coordinate using a red-black tree
// (github.com/emirpasic/gods/trees/redblacktree), which gives the
// lower_bound-style Floor/Ceiling probes the nearest search needs.
// Multiple entries may share an x-coordinate (hence "multi-associative");
// each tree node therefore stores a small bucket of entries rather than
// a single value.
//
// Grounded on fine-structures-fine.SDK/lib2x3/factor.go, the one example
// repo in the corpus that reaches for emirpasic/gods for an ordered
// structure over comparable keys.
package posindex
