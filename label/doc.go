// Package label implements a disjoint-set over dense integer labels,
// supporting merge of two classes and forward traversal of every member
// of a merged class.
//
// Unlike a classic union-find, callers never ask "which class is x in"
// in isolation — they ask "give me every label that used to be its own
// class and now answers to this one". planarmap.LabelImage is built on
// exactly this: euler.MergeFaces folds a merged face's raster pixels
// into its survivor in O(1) by calling LabelImage.Remap, which is a
// Set.Relabel; later pixel lookups call LabelImage.Resolve, which is
// Set.Leader. Set therefore keeps an explicit back-chain (prev)
// alongside the current leader, so MergedIterator can walk a class
// without scanning the whole label space.
//
// Grounded on the union-find inlined in prim_kruskal.Kruskal (path
// compression, union by chain), split out here because planarmap needs
// it independently of any particular graph algorithm.
package label
