package euler

import (
	"errors"

	"github.com/gocellmap/cellmap/planarmap"
)

// Sentinel errors for euler operations. All are recoverable except the
// fatal latch raised via planarmap.Map.MarkCorrupted, which surfaces
// through planarmap.ErrCorrupt.
var (
	// ErrNotIsolated is returned by RemoveIsolatedNode when the node's
	// degree is nonzero.
	ErrNotIsolated = errors.New("euler: node is not isolated")

	// ErrDegreeNotTwo is returned by MergeEdges when start(d)'s degree
	// is not exactly 2.
	ErrDegreeNotTwo = errors.New("euler: node degree is not two")

	// ErrSelfLoopMerge is returned by MergeEdges when the two incident
	// edges at the degree-2 node are the same edge (a self-loop).
	ErrSelfLoopMerge = errors.New("euler: cannot merge a self-loop")

	// ErrNotABridge is returned by RemoveBridge when the dart's edge is
	// not a bridge.
	ErrNotABridge = errors.New("euler: edge is not a bridge")

	// ErrIsBridge is returned by MergeFaces when the dart's edge is a
	// bridge (left face == right face already, merging would be a
	// no-op that RemoveBridge must handle instead).
	ErrIsBridge = errors.New("euler: edge is a bridge")

	// ErrHookCancelled is returned when a registered pre-hook vetoes the
	// operation. No state changes when this is returned.
	ErrHookCancelled = errors.New("euler: operation cancelled by hook")
)

// Kernel binds a HookSet to the *planarmap.Map it mutates. All four
// primitives and both composites are methods on Kernel so that hook
// dispatch is always routed through the same registered collection.
type Kernel struct {
	m     *planarmap.Map
	hooks HookSet
}

// New returns a Kernel operating on m, with an empty HookSet.
func New(m *planarmap.Map) *Kernel {
	return &Kernel{m: m}
}

// Map returns the planar subdivision this kernel mutates.
func (k *Kernel) Map() *planarmap.Map { return k.m }

// Hooks returns a pointer to the kernel's HookSet for registration.
func (k *Kernel) Hooks() *HookSet { return &k.hooks }

// wrapCorrupt latches m and returns planarmap.ErrCorrupt wrapped with
// context, used whenever surgery detects a state it should never see
// if the map's invariants held going in.
func (k *Kernel) wrapCorrupt(where string, cause error) error {
	k.m.MarkCorrupted()

	return errors.Join(planarmap.ErrCorrupt, errors.New("euler: "+where+": "+cause.Error()))
}
