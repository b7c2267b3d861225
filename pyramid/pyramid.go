package pyramid

import (
	"sync"

	"github.com/gocellmap/cellmap/euler"
	"github.com/gocellmap/cellmap/planarmap"
)

// minCheckpointThreshold is the floor on how many operations may
// accumulate since the last checkpoint before a new one is taken,
// regardless of how small the subdivision has shrunk.
const minCheckpointThreshold = 10

// checkpointDivisor relates a checkpoint's cell count to the number of
// operations it tolerates before the next checkpoint: total_cells/4.
const checkpointDivisor = 4

// Pyramid owns a growing top-level subdivision, the Euler kernel that
// mutates it, the flat operation history that records every top-level
// call, and a sparse CheckpointStore that bounds how much of that
// history GetLevel ever has to replay.
type Pyramid struct {
	mu sync.RWMutex

	top    *planarmap.Map
	kernel *euler.Kernel

	history []Operation
	staging [][]Operation // open BeginComposite/EndComposite nesting

	checkpoints     *CheckpointStore
	sinceCheckpoint int

	stats StatsSnapshotter
}

// Option configures a Pyramid at construction time.
type Option func(*Pyramid)

// WithStats registers an external accumulator to be snapshotted
// alongside the subdivision at every checkpoint. Levels returned by
// GetLevel and ApproachLevel carry the snapshot of the checkpoint they
// were replayed from; only CutAbove restores the accumulator, from that
// same snapshot.
func WithStats(s StatsSnapshotter) Option {
	return func(p *Pyramid) { p.stats = s }
}

// New returns a Pyramid whose level 0 is a fresh clone of initial;
// the caller's Map is never aliased or mutated by the pyramid.
func New(initial *planarmap.Map, opts ...Option) *Pyramid {
	level0 := initial.Clone()
	p := &Pyramid{
		top:    level0,
		kernel: euler.New(level0),
	}
	for _, opt := range opts {
		opt(p)
	}
	var stats any
	if p.stats != nil {
		stats = p.stats.Snapshot()
	}
	p.checkpoints = newCheckpointStore(level0.Clone(), stats)

	return p
}

// Top returns the current top-level subdivision. Callers must not
// mutate it directly; go through the Pyramid's own methods so the
// history stays consistent with the map's actual state.
func (p *Pyramid) Top() *planarmap.Map {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.top
}

// TopLevel returns the index of the current top level, equal to the
// number of top-level (post-collapse) entries recorded in the history.
func (p *Pyramid) TopLevel() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return len(p.history)
}

// BeginComposite opens a new composite recording scope: every
// primitive call made before the matching EndComposite is appended to
// this composite's child list instead of to the history root.
// Composites nest; EndComposite closes the innermost open one.
func (p *Pyramid) BeginComposite() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.staging = append(p.staging, nil)
}

// EndComposite closes the innermost open composite and records it as
// one entry in whatever scope encloses it (the next composite out, or
// the history root). A composite of exactly one child collapses back
// into that child, so RemoveEdge wrapping a single RemoveBridge call
// never pays for a pointless composite wrapper.
func (p *Pyramid) EndComposite() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := len(p.staging)
	if n == 0 {
		return ErrCompositeNotOpen
	}
	children := p.staging[n-1]
	p.staging = p.staging[:n-1]

	var collapsed Operation
	switch len(children) {
	case 0:
		return nil
	case 1:
		collapsed = children[0]
	default:
		collapsed = Operation{Kind: OpComposite, Children: children}
	}
	p.appendOp(collapsed)

	return nil
}

// appendOp records op in the innermost open composite's child list, or
// at the history root (advancing the top level and possibly taking a
// checkpoint) if no composite is open. Callers must hold p.mu.
func (p *Pyramid) appendOp(op Operation) {
	if n := len(p.staging); n > 0 {
		p.staging[n-1] = append(p.staging[n-1], op)

		return
	}
	p.history = append(p.history, op.clone())
	p.sinceCheckpoint++
	p.maybeCheckpoint()
}

// maybeCheckpoint stores a fresh checkpoint at the current top level
// if the number of operations recorded since the last one exceeds
// max(total_cells/4, 10), where total_cells is the top level's current
// node+edge+face count. Callers must hold p.mu.
func (p *Pyramid) maybeCheckpoint() {
	totalCells := p.top.NodeCount() + p.top.EdgeCount() + p.top.FaceCount()
	threshold := totalCells / checkpointDivisor
	if threshold < minCheckpointThreshold {
		threshold = minCheckpointThreshold
	}
	if p.sinceCheckpoint <= threshold {
		return
	}
	var stats any
	if p.stats != nil {
		stats = p.stats.Snapshot()
	}
	p.checkpoints.store(len(p.history), p.top.Clone(), stats)
	p.sinceCheckpoint = 0
}

// RemoveIsolatedNode removes node, recording the call as a primitive
// Operation if it succeeds.
func (p *Pyramid) RemoveIsolatedNode(node int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.kernel.RemoveIsolatedNode(node); err != nil {
		return err
	}
	p.appendOp(Operation{Kind: OpRemoveIsolatedNode, Arg: node})

	return nil
}

// MergeEdges merges the degree-2 node at start(d)'s two incident edges,
// recording the call as a primitive Operation if it succeeds.
func (p *Pyramid) MergeEdges(d int) (survivorEdge int, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	survivorEdge, err = p.kernel.MergeEdges(d)
	if err != nil {
		return 0, err
	}
	p.appendOp(Operation{Kind: OpMergeEdges, Arg: d})

	return survivorEdge, nil
}

// RemoveBridge removes the bridge edge(d), recording the call as a
// primitive Operation if it succeeds.
func (p *Pyramid) RemoveBridge(d int) (survivorFace int, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	survivorFace, err = p.kernel.RemoveBridge(d)
	if err != nil {
		return 0, err
	}
	p.appendOp(Operation{Kind: OpRemoveBridge, Arg: d})

	return survivorFace, nil
}

// MergeFaces merges the two faces bordering edge(d), recording the
// call as a primitive Operation if it succeeds.
func (p *Pyramid) MergeFaces(d int) (survivorFace int, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	survivorFace, err = p.kernel.MergeFaces(d)
	if err != nil {
		return 0, err
	}
	p.appendOp(Operation{Kind: OpMergeFaces, Arg: d})

	return survivorFace, nil
}

// RemoveEdge dispatches to RemoveBridge or MergeFaces as euler.RemoveEdge
// does, recording the call as a one-entry composite (which collapses to
// a plain primitive entry) so replay reproduces the same dispatch
// without re-inspecting IsBridge against whatever topology happens to
// exist at replay time.
func (p *Pyramid) RemoveEdge(d int) (survivorFace int, err error) {
	p.BeginComposite()
	dart := p.Top().MakeDart(d)
	isBridge, ierr := dart.IsBridge()
	if ierr != nil {
		_ = p.EndComposite()

		return 0, ierr
	}
	if isBridge {
		survivorFace, err = p.RemoveBridge(d)
	} else {
		survivorFace, err = p.MergeFaces(d)
	}
	if err != nil {
		_ = p.EndComposite()

		return 0, err
	}
	if cerr := p.EndComposite(); cerr != nil {
		return survivorFace, cerr
	}

	return survivorFace, nil
}

// RemoveEdgeWithEnds removes edge(d) via RemoveEdge, then removes
// either endpoint left isolated, recording the whole sequence as one
// composite Operation.
func (p *Pyramid) RemoveEdgeWithEnds(d int) (survivorFace int, err error) {
	dart := p.Top().MakeDart(d)
	start, err := dart.StartNode()
	if err != nil {
		return 0, err
	}
	end, err := dart.EndNode()
	if err != nil {
		return 0, err
	}

	p.BeginComposite()
	survivorFace, err = p.RemoveEdge(d)
	if err != nil {
		_ = p.EndComposite()

		return 0, err
	}
	for _, endpoint := range []int{start, end} {
		if n, nerr := p.Top().Node(endpoint); nerr == nil && n.Degree() == 0 {
			if rerr := p.RemoveIsolatedNode(endpoint); rerr != nil {
				_ = p.EndComposite()

				return survivorFace, rerr
			}
		}
	}
	if cerr := p.EndComposite(); cerr != nil {
		return survivorFace, cerr
	}

	return survivorFace, nil
}

// Hooks returns the kernel's hook set, so callers can register
// pre/post hooks that fire as the pyramid drives the top level. The
// replay behind GetLevel, ApproachLevel and CutAbove runs on a fresh
// kernel with no hooks registered, so these hooks do not fire there.
func (p *Pyramid) Hooks() *euler.HookSet {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.kernel.Hooks()
}
