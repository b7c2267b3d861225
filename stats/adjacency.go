package stats

import (
	"math"
	"sort"

	"github.com/gocellmap/cellmap/planarmap"
)

// AdjacencyMatrix is a dense V×V projection of a map's current nodes
// and edges: Mat[i][j] holds the summed polyline length of every edge
// directly joining the nodes at row i and column j (0 if none), so
// parallel edges and self-loops both contribute rather than collapse
// to a boolean.
type AdjacencyMatrix struct {
	Mat         [][]float64
	NodeIndex   map[int]int // node label -> row/col
	nodeByIndex []int       // row/col -> node label
}

// NewAdjacencyMatrix builds an AdjacencyMatrix from m's currently
// valid nodes and edges. Labels are assigned rows/columns in ascending
// order for reproducibility.
func NewAdjacencyMatrix(m *planarmap.Map) (*AdjacencyMatrix, error) {
	if m == nil {
		return nil, ErrNilMap
	}

	labels := m.NodeLabels()
	sort.Ints(labels)
	idx := make(map[int]int, len(labels))
	for i, l := range labels {
		idx[l] = i
	}

	n := len(labels)
	mat := make([][]float64, n)
	for i := range mat {
		mat[i] = make([]float64, n)
	}

	for _, el := range m.EdgeLabels() {
		e, err := m.Edge(el)
		if err != nil {
			continue
		}
		i, iok := idx[e.Start]
		j, jok := idx[e.End]
		if !iok || !jok {
			continue
		}
		length := polylineLength(e.Poly)
		mat[i][j] += length
		if i != j {
			mat[j][i] += length
		}
	}

	return &AdjacencyMatrix{Mat: mat, NodeIndex: idx, nodeByIndex: labels}, nil
}

// VertexCount returns the matrix's dimension.
func (am *AdjacencyMatrix) VertexCount() int { return len(am.nodeByIndex) }

// NodeLabel returns the node label at row/column idx.
func (am *AdjacencyMatrix) NodeLabel(idx int) (int, error) {
	if idx < 0 || idx >= len(am.nodeByIndex) {
		return 0, ErrOutOfRange
	}

	return am.nodeByIndex[idx], nil
}

// At returns Mat[i][j], or ErrOutOfRange if either index is invalid.
func (am *AdjacencyMatrix) At(i, j int) (float64, error) {
	if i < 0 || i >= len(am.Mat) || j < 0 || j >= len(am.Mat) {
		return 0, ErrOutOfRange
	}

	return am.Mat[i][j], nil
}

// Neighbors returns the node labels directly joined to nodeLabel by at
// least one edge.
func (am *AdjacencyMatrix) Neighbors(nodeLabel int) ([]int, error) {
	i, ok := am.NodeIndex[nodeLabel]
	if !ok {
		return nil, ErrUnknownLabel
	}

	var out []int
	for j, w := range am.Mat[i] {
		if w > 0 {
			out = append(out, am.nodeByIndex[j])
		}
	}

	return out, nil
}

// polylineLength sums the Euclidean length of consecutive points along
// pl.
func polylineLength(pl *planarmap.Polyline) float64 {
	if pl == nil {
		return 0
	}
	pts := pl.Points()
	var total float64
	for i := 0; i+1 < len(pts); i++ {
		d := pts[i+1].Sub(pts[i])
		total += math.Sqrt(d.SqMagnitude())
	}

	return total
}
