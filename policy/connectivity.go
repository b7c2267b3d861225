package policy

import "github.com/gocellmap/cellmap/planarmap"

// Connectivity reports whether dst is reachable from src through the
// map's dual graph, i.e. whether some sequence of mergeFaces
// operations could eventually fuse the two faces without ever adding
// an edge. It runs a plain breadth-first search, stopping as soon as
// dst is first reached as a neighbour.
func Connectivity(m *planarmap.Map, srcFace, dstFace int) (bool, error) {
	g, err := BuildDualGraph(m, nil)
	if err != nil {
		return false, err
	}

	return connected(g, srcFace, dstFace)
}

func connected(g *DualGraph, src, dst int) (bool, error) {
	if _, ok := g.adj[src]; !ok {
		return false, ErrUnknownFace
	}
	if _, ok := g.adj[dst]; !ok {
		return false, ErrUnknownFace
	}
	if src == dst {
		return true, nil
	}

	visited := map[int]bool{src: true}
	queue := []int{src}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, e := range g.adj[cur] {
			if visited[e.to] {
				continue
			}
			if e.to == dst {
				return true, nil
			}
			visited[e.to] = true
			queue = append(queue, e.to)
		}
	}

	return false, nil
}
