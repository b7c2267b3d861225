package pyramid

import (
	"github.com/gocellmap/cellmap/euler"
	"github.com/gocellmap/cellmap/planarmap"
)

// Level is a reconstructed subdivision at some history index, paired
// with the external statistics snapshot of the checkpoint it was
// replayed from (statistics themselves are not replayed).
type Level struct {
	Subdivision *planarmap.Map
	Stats       any
}

// GetLevel locates the checkpoint at or before i, clones its
// subdivision, and replays history[checkpointLevel:i] onto the clone.
// If replay fails partway, the partial clone is discarded and the
// error is returned; the pyramid's own top level is never touched by
// this call.
func (p *Pyramid) GetLevel(i int) (*Level, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.getLevelLocked(i, len(p.history))
}

// getLevelLocked implements GetLevel and ApproachLevel; maxOps bounds
// how many entries of the replay slice are actually applied. Callers
// must hold at least p.mu.RLock().
func (p *Pyramid) getLevelLocked(i, maxOps int) (*Level, error) {
	if i < 0 || i > len(p.history) {
		return nil, ErrLevelOutOfRange
	}
	ck := p.checkpoints.nearestAtOrBefore(i)
	clone := ck.subdivision.Clone()
	k := euler.New(clone)

	span := p.history[ck.level:i]
	if maxOps < len(span) {
		span = span[:maxOps]
	}
	if _, err := replay(k, span); err != nil {
		return nil, err
	}

	return &Level{Subdivision: clone, Stats: ck.stats}, nil
}

// ApproachLevel behaves like GetLevel but stops after applying at most
// maxSteps top-level operations (a composite counts as one step
// regardless of its child count), reporting how many were actually
// applied. The returned Level reflects whatever prefix of
// history[checkpoint:target] was applied, which may be short of
// target if maxSteps was exhausted first.
func (p *Pyramid) ApproachLevel(target, maxSteps int) (level *Level, applied int, err error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if target < 0 || target > len(p.history) {
		return nil, 0, ErrLevelOutOfRange
	}
	ck := p.checkpoints.nearestAtOrBefore(target)
	clone := ck.subdivision.Clone()
	k := euler.New(clone)

	span := p.history[ck.level:target]
	if maxSteps < len(span) {
		span = span[:maxSteps]
	}
	n, err := replay(k, span)
	if err != nil {
		return nil, n, err
	}

	return &Level{Subdivision: clone, Stats: ck.stats}, n, nil
}

// CutAbove truncates the history and any checkpoints beyond i, then
// resets the top level to the result of replaying the (now final)
// history onto the nearest surviving checkpoint. It is the pyramid's
// only operation that can shrink history: any level index greater
// than i becomes unreachable afterward.
func (p *Pyramid) CutAbove(i int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	level, err := p.getLevelLocked(i, i)
	if err != nil {
		return err
	}

	p.history = p.history[:i]
	p.checkpoints.truncateAbove(i)
	p.top = level.Subdivision
	p.kernel = euler.New(p.top)
	p.sinceCheckpoint = i - p.checkpoints.latest().level
	if p.stats != nil && level.Stats != nil {
		p.stats.Restore(level.Stats)
	}

	return nil
}
