package policy

import (
	"container/heap"
	"math"

	"github.com/gocellmap/cellmap/planarmap"
)

// CheapestPath finds the lowest-total-weight chain of dual-graph edges
// joining srcFace to dstFace via Dijkstra's algorithm, and returns it
// as the Steps a caller would feed to Execute to merge everything
// between the two faces. Returns ErrNoPath if dstFace is unreachable
// from srcFace.
func CheapestPath(m *planarmap.Map, srcFace, dstFace int, weight WeightFunc) ([]Step, error) {
	g, err := BuildDualGraph(m, weight)
	if err != nil {
		return nil, err
	}
	if _, ok := g.adj[srcFace]; !ok {
		return nil, ErrUnknownFace
	}
	if _, ok := g.adj[dstFace]; !ok {
		return nil, ErrUnknownFace
	}
	if srcFace == dstFace {
		return nil, nil
	}

	dist := make(map[int]float64, len(g.faces))
	visited := make(map[int]bool, len(g.faces))
	prevFace := make(map[int]int, len(g.faces))
	prevEdge := make(map[int]dualEdge, len(g.faces))
	for _, f := range g.faces {
		dist[f] = math.Inf(1)
	}
	dist[srcFace] = 0

	pq := &faceQueue{{face: srcFace, dist: 0}}
	heap.Init(pq)
	for pq.Len() > 0 {
		item := heap.Pop(pq).(*pqItem)
		u := item.face
		if visited[u] {
			continue
		}
		visited[u] = true
		if u == dstFace {
			break
		}
		for _, e := range g.adj[u] {
			if visited[e.to] {
				continue
			}
			nd := dist[u] + e.weight
			if nd < dist[e.to] {
				dist[e.to] = nd
				prevFace[e.to] = u
				prevEdge[e.to] = e
				heap.Push(pq, &pqItem{face: e.to, dist: nd})
			}
		}
	}

	if !visited[dstFace] {
		return nil, ErrNoPath
	}

	var steps []Step
	for cur := dstFace; cur != srcFace; {
		e, ok := prevEdge[cur]
		if !ok {
			return nil, ErrNoPath
		}
		steps = append(steps, Step{Dart: e.dart, Weight: e.weight})
		cur = prevFace[cur]
	}
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}

	return steps, nil
}

// pqItem is one entry of the Dijkstra priority queue: a face label and
// its current best-known distance from the source.
type pqItem struct {
	face int
	dist float64
}

// faceQueue is a min-heap of *pqItem ordered by ascending dist, using
// the same lazy-decrease-key pattern as Dijkstra implementations that
// push duplicate entries rather than mutate the heap in place.
type faceQueue []*pqItem

func (q faceQueue) Len() int            { return len(q) }
func (q faceQueue) Less(i, j int) bool  { return q[i].dist < q[j].dist }
func (q faceQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *faceQueue) Push(x interface{}) { *q = append(*q, x.(*pqItem)) }
func (q *faceQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]

	return item
}
