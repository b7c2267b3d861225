package stats

import (
	"math"
	"sync"

	"github.com/gocellmap/cellmap/euler"
	"github.com/gocellmap/cellmap/planarmap"
)

// FaceStats is one face's running pixel count, geometric area, and
// boundary perimeter.
type FaceStats struct {
	PixelCount int
	Area       float64
	Perimeter  float64
}

// FaceAccumulator keeps FaceStats current for every live face by
// registering against an euler.HookSet, so callers never need to
// rescan the label image or re-walk every contour to ask how big a
// face currently is. It implements pyramid.StatsSnapshotter, so a
// Pyramid can checkpoint and restore it alongside the subdivision
// itself.
type FaceAccumulator struct {
	mu    sync.RWMutex
	m     *planarmap.Map
	stats map[int]FaceStats

	// pendingMerge stashes the two faces a MergeFaces call is about to
	// fuse, captured by the pre-hook, since the post-hook only reports
	// the survivor: mergeDelta derives which of the two vanished by
	// elimination.
	pendingMerge struct {
		left, right int
		active      bool
	}

	tokens []euler.Token
}

// NewFaceAccumulator seeds a FaceAccumulator from m's current faces
// and registers it against hooks. The returned accumulator stays
// correct for every later operation dispatched through hooks, until
// Close unregisters it.
func NewFaceAccumulator(m *planarmap.Map, hooks *euler.HookSet) (*FaceAccumulator, error) {
	if m == nil {
		return nil, ErrNilMap
	}

	fa := &FaceAccumulator{m: m, stats: make(map[int]FaceStats)}
	for _, label := range m.FaceLabels() {
		if err := fa.reseed(label); err != nil {
			return nil, err
		}
	}

	fa.tokens = append(fa.tokens,
		hooks.OnAssociatePixels(fa.onAssociatePixels),
		hooks.OnPreMergeFaces(fa.onPreMergeFaces),
		hooks.OnPostMergeFaces(fa.onPostMergeFaces),
		hooks.OnPostRemoveBridge(fa.onPostRemoveBridge),
	)

	return fa, nil
}

// Close unregisters every hook this accumulator installed.
func (fa *FaceAccumulator) Close(hooks *euler.HookSet) {
	for _, t := range fa.tokens {
		hooks.Unregister(t)
	}
	fa.tokens = nil
}

// Stats returns a copy of face's current stats, or the zero value if
// face is not (or no longer) tracked.
func (fa *FaceAccumulator) Stats(face int) FaceStats {
	fa.mu.RLock()
	defer fa.mu.RUnlock()

	return fa.stats[face]
}

// Snapshot implements pyramid.StatsSnapshotter.
func (fa *FaceAccumulator) Snapshot() any {
	fa.mu.RLock()
	defer fa.mu.RUnlock()

	cp := make(map[int]FaceStats, len(fa.stats))
	for k, v := range fa.stats {
		cp[k] = v
	}

	return cp
}

// Restore implements pyramid.StatsSnapshotter. It ignores snapshots of
// the wrong type, leaving the accumulator unchanged.
func (fa *FaceAccumulator) Restore(snapshot any) {
	cp, ok := snapshot.(map[int]FaceStats)
	if !ok {
		return
	}

	fa.mu.Lock()
	defer fa.mu.Unlock()

	fa.stats = make(map[int]FaceStats, len(cp))
	for k, v := range cp {
		fa.stats[k] = v
	}
}

func (fa *FaceAccumulator) onAssociatePixels(face int, pixels []planarmap.Pixel) {
	fa.mu.Lock()
	defer fa.mu.Unlock()

	s := fa.stats[face]
	s.PixelCount += len(pixels)
	fa.stats[face] = s
}

func (fa *FaceAccumulator) onPreMergeFaces(dart int) bool {
	d := fa.m.MakeDart(dart)
	left, err := d.LeftFace()
	if err != nil {
		return true
	}
	right, err := d.RightFace()
	if err != nil {
		return true
	}
	fa.pendingMerge.left, fa.pendingMerge.right, fa.pendingMerge.active = left, right, true

	return true
}

func (fa *FaceAccumulator) onPostMergeFaces(survivor int) {
	if !fa.pendingMerge.active {
		return
	}
	merged := fa.pendingMerge.left
	if survivor == merged {
		merged = fa.pendingMerge.right
	}
	fa.pendingMerge.active = false

	fa.mu.Lock()
	ss := fa.stats[survivor]
	ss.PixelCount += fa.stats[merged].PixelCount
	delete(fa.stats, merged)
	fa.stats[survivor] = ss
	fa.mu.Unlock()

	_ = fa.reseedGeometry(survivor)
}

func (fa *FaceAccumulator) onPostRemoveBridge(survivorFace int) {
	_ = fa.reseedGeometry(survivorFace)
}

// reseed populates label's stats entirely from scratch: pixel count
// from the map's own running Face.PixelArea, area and perimeter from
// its current contour geometry.
func (fa *FaceAccumulator) reseed(label int) error {
	f, err := fa.m.Face(label)
	if err != nil {
		return err
	}
	area, err := fa.m.Area(f)
	if err != nil {
		return err
	}
	perim, err := contourPerimeter(fa.m, f)
	if err != nil {
		return err
	}

	fa.mu.Lock()
	fa.stats[label] = FaceStats{PixelCount: f.PixelArea, Area: area, Perimeter: perim}
	fa.mu.Unlock()

	return nil
}

// reseedGeometry refreshes area and perimeter only, leaving the
// hook-accumulated pixel count untouched.
func (fa *FaceAccumulator) reseedGeometry(label int) error {
	f, err := fa.m.Face(label)
	if err != nil {
		return err
	}
	area, err := fa.m.Area(f)
	if err != nil {
		return err
	}
	perim, err := contourPerimeter(fa.m, f)
	if err != nil {
		return err
	}

	fa.mu.Lock()
	s := fa.stats[label]
	s.Area, s.Perimeter = area, perim
	fa.stats[label] = s
	fa.mu.Unlock()

	return nil
}

// contourPerimeter sums the closed boundary length of every one of
// f's anchor contours (outer plus holes), unlike ContourArea it does
// not special-case bridges: a dangling bridge's two traversals both
// contribute to the walked perimeter.
func contourPerimeter(m *planarmap.Map, f *planarmap.Face) (float64, error) {
	var total float64
	for _, anchor := range f.Anchors {
		poly, err := m.ContourPoly(m.MakeDart(anchor))
		if err != nil {
			return 0, err
		}
		total += polygonPerimeter(poly)
	}

	return total, nil
}

func polygonPerimeter(poly []planarmap.Vector2) float64 {
	n := len(poly)
	if n < 2 {
		return 0
	}
	var total float64
	for i := 0; i < n; i++ {
		a := poly[i]
		b := poly[(i+1)%n]
		d := b.Sub(a)
		total += math.Sqrt(d.SqMagnitude())
	}

	return total
}
