package policy

import (
	"sort"

	"github.com/gocellmap/cellmap/planarmap"
)

// MergeOrder computes a minimum merge-cost spanning sequence of the
// map's finite faces: the cheapest set of |faces|-1 dual edges, by
// weight, that connects every finite face without forming a cycle —
// a face-merge analogue of a minimum spanning tree. It returns the
// Steps in ascending weight order, ready to feed to Execute.
//
// Returns ErrDisconnected if the map's finite faces do not form a
// single connected component of the dual graph (two faces can never
// be joined by any sequence of mergeFaces calls alone).
func MergeOrder(m *planarmap.Map, weight WeightFunc) ([]Step, error) {
	g, err := BuildDualGraph(m, weight)
	if err != nil {
		return nil, err
	}

	type candidate struct {
		u, v   int
		dart   int
		weight float64
	}
	var candidates []candidate
	seen := make(map[[2]int]bool)
	for _, u := range g.faces {
		for _, e := range g.adj[u] {
			key := [2]int{u, e.to}
			rev := [2]int{e.to, u}
			if seen[key] || seen[rev] {
				continue
			}
			seen[key] = true
			candidates = append(candidates, candidate{u: u, v: e.to, dart: e.dart, weight: e.weight})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].weight < candidates[j].weight
	})

	if len(g.faces) == 0 {
		return nil, nil
	}

	parent := make(map[int]int, len(g.faces))
	rank := make(map[int]int, len(g.faces))
	for _, f := range g.faces {
		parent[f] = f
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}

		return x
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra == rb {
			return
		}
		if rank[ra] < rank[rb] {
			parent[ra] = rb
		} else {
			parent[rb] = ra
			if rank[ra] == rank[rb] {
				rank[ra]++
			}
		}
	}

	var steps []Step
	for _, c := range candidates {
		if find(c.u) == find(c.v) {
			continue
		}
		union(c.u, c.v)
		steps = append(steps, Step{Dart: c.dart, Weight: c.weight})
		if len(steps) == len(g.faces)-1 {
			break
		}
	}

	if len(steps) < len(g.faces)-1 {
		return nil, ErrDisconnected
	}

	return steps, nil
}
