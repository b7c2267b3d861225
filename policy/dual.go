package policy

import (
	"math"

	"github.com/gocellmap/cellmap/planarmap"
)

// WeightFunc scores the map edge identified by edgeLabel for dual
// graph purposes (merge cost, region-growing priority, ...). It is
// called once per non-bridge edge while the dual graph is built.
type WeightFunc func(m *planarmap.Map, edgeLabel int) (float64, error)

// BoundaryLength weighs an edge by the length of its polyline: the
// default choice for "merge the cheapest shared boundary first".
func BoundaryLength(m *planarmap.Map, edgeLabel int) (float64, error) {
	e, err := m.Edge(edgeLabel)
	if err != nil {
		return 0, err
	}

	return polylineLength(e.Poly.Points()), nil
}

// AreaDifference weighs an edge by the absolute difference between
// the areas of the two faces it separates: merging similarly-sized
// faces first, or the reverse, depending on how the caller orders the
// resulting Steps.
func AreaDifference(m *planarmap.Map, edgeLabel int) (float64, error) {
	e, err := m.Edge(edgeLabel)
	if err != nil {
		return 0, err
	}
	left, err := m.Face(e.LeftFace)
	if err != nil {
		return 0, err
	}
	right, err := m.Face(e.RightFace)
	if err != nil {
		return 0, err
	}
	aLeft, err := m.Area(left)
	if err != nil {
		return 0, err
	}
	aRight, err := m.Area(right)
	if err != nil {
		return 0, err
	}

	return math.Abs(aLeft - aRight), nil
}

func polylineLength(pts []planarmap.Vector2) float64 {
	var total float64
	for i := 1; i < len(pts); i++ {
		d := pts[i].Sub(pts[i-1])
		total += math.Sqrt(d.SqMagnitude())
	}

	return total
}

// dualEdge is one arc of the dual graph: the map edge between two
// finite faces, plus the dart (always the edge's positive-sign
// orientation) a Step would feed to euler.RemoveEdge to merge them.
type dualEdge struct {
	to     int
	dart   int
	weight float64
}

// DualGraph is the face-adjacency graph of a planarmap.Map's finite
// faces: one vertex per finite face, one edge per non-bridge map edge
// connecting two distinct finite faces. It is a snapshot — built once
// from m's topology at call time — and does not track later mutation.
type DualGraph struct {
	faces []int
	adj   map[int][]dualEdge
}

// BuildDualGraph walks every live edge of m and assembles the dual
// graph, scoring each retained edge with weight. Bridges are excluded
// (both their sides are the same face, so they contribute no dual
// edge); edges bordering the infinite face are excluded on that side
// only — the infinite face itself never becomes a dual vertex.
func BuildDualGraph(m *planarmap.Map, weight WeightFunc) (*DualGraph, error) {
	if m == nil {
		return nil, ErrNilMap
	}
	if weight == nil {
		weight = BoundaryLength
	}

	g := &DualGraph{adj: make(map[int][]dualEdge)}
	for _, label := range m.FaceLabels() {
		if label == planarmap.InfiniteFace {
			continue
		}
		g.faces = append(g.faces, label)
		if _, ok := g.adj[label]; !ok {
			g.adj[label] = nil
		}
	}

	for _, edgeLabel := range m.EdgeLabels() {
		e, err := m.Edge(edgeLabel)
		if err != nil {
			return nil, err
		}
		if e.IsBridge() {
			continue
		}
		left, right := e.LeftFace, e.RightFace
		if left == planarmap.InfiniteFace || right == planarmap.InfiniteFace {
			continue
		}

		w, err := weight(m, edgeLabel)
		if err != nil {
			return nil, err
		}
		g.adj[left] = append(g.adj[left], dualEdge{to: right, dart: edgeLabel, weight: w})
		g.adj[right] = append(g.adj[right], dualEdge{to: left, dart: edgeLabel, weight: w})
	}

	return g, nil
}

// Faces returns the dual graph's vertex set: every finite face label
// of the map it was built from, in ascending order.
func (g *DualGraph) Faces() []int { return append([]int(nil), g.faces...) }

// Neighbors returns the dual-graph neighbours of face: the other
// finite face across each of its non-bridge boundary edges.
func (g *DualGraph) Neighbors(face int) ([]int, error) {
	edges, ok := g.adj[face]
	if !ok {
		return nil, ErrUnknownFace
	}
	out := make([]int, len(edges))
	for i, e := range edges {
		out[i] = e.to
	}

	return out, nil
}
