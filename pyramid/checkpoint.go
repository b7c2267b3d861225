package pyramid

import "github.com/gocellmap/cellmap/planarmap"

// StatsSnapshotter lets an external accumulator participate in
// checkpointing alongside the subdivision itself — see stats.FaceAccumulator,
// which implements this. Its state is snapshotted at every checkpoint
// and restored only when CutAbove rewinds to one; GetLevel hands the
// checkpoint's snapshot back without restoring it.
type StatsSnapshotter interface {
	Snapshot() any
	Restore(snapshot any)
}

// checkpoint is a full copy of the subdivision at some history index,
// plus whatever external statistics state was registered alongside it.
type checkpoint struct {
	level      int
	subdivision *planarmap.Map
	stats      any
}

// CheckpointStore is a sorted mapping from history index to checkpoint.
// Entries are always appended in increasing level order (Pyramid only
// ever stores a checkpoint at its current, ever-growing top level), so
// lookups and truncation stay O(log n) / O(1) amortised without a
// separate sort step.
type CheckpointStore struct {
	entries []checkpoint
}

// newCheckpointStore returns a store seeded with a checkpoint at level
// 0, the pyramid's initial subdivision.
func newCheckpointStore(initial *planarmap.Map, stats any) *CheckpointStore {
	return &CheckpointStore{entries: []checkpoint{{level: 0, subdivision: initial, stats: stats}}}
}

// store appends a checkpoint at level, which must be greater than
// every previously stored level.
func (cs *CheckpointStore) store(level int, subdivision *planarmap.Map, stats any) {
	cs.entries = append(cs.entries, checkpoint{level: level, subdivision: subdivision, stats: stats})
}

// nearestAtOrBefore returns the checkpoint with the greatest level ≤
// target via binary search. target must be ≥ 0; the store always
// contains a level-0 entry, so this never fails to find one.
func (cs *CheckpointStore) nearestAtOrBefore(target int) checkpoint {
	lo, hi := 0, len(cs.entries)-1
	best := 0
	for lo <= hi {
		mid := (lo + hi) / 2
		if cs.entries[mid].level <= target {
			best = mid
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}

	return cs.entries[best]
}

// truncateAbove drops every checkpoint whose level exceeds target,
// used by CutAbove to keep the store consistent with a shortened
// history.
func (cs *CheckpointStore) truncateAbove(target int) {
	i := len(cs.entries)
	for i > 0 && cs.entries[i-1].level > target {
		i--
	}
	cs.entries = cs.entries[:i]
}

// latest returns the highest-level checkpoint in the store.
func (cs *CheckpointStore) latest() checkpoint {
	return cs.entries[len(cs.entries)-1]
}
