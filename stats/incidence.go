package stats

import (
	"sort"

	"github.com/gocellmap/cellmap/planarmap"
)

// IncidenceMatrix is a dense V×E projection of a map's current nodes
// and edges: Data[i][j] is -1 if node i is edge j's start, +1 if it is
// the end, 0 otherwise (for a self-loop, the end write wins, leaving
// +1: the row still records incidence, just not net direction).
type IncidenceMatrix struct {
	Data        [][]float64
	NodeIndex   map[int]int
	EdgeIndex   map[int]int
	nodeByIndex []int
	edgeByIndex []int
}

// NewIncidenceMatrix builds an IncidenceMatrix from m's currently
// valid nodes and edges.
func NewIncidenceMatrix(m *planarmap.Map) (*IncidenceMatrix, error) {
	if m == nil {
		return nil, ErrNilMap
	}

	nodeLabels := m.NodeLabels()
	sort.Ints(nodeLabels)
	edgeLabels := m.EdgeLabels()
	sort.Ints(edgeLabels)

	nIdx := make(map[int]int, len(nodeLabels))
	for i, l := range nodeLabels {
		nIdx[l] = i
	}
	eIdx := make(map[int]int, len(edgeLabels))
	for j, l := range edgeLabels {
		eIdx[l] = j
	}

	data := make([][]float64, len(nodeLabels))
	for i := range data {
		data[i] = make([]float64, len(edgeLabels))
	}

	for j, el := range edgeLabels {
		e, err := m.Edge(el)
		if err != nil {
			continue
		}
		data[nIdx[e.Start]][j] = -1
		data[nIdx[e.End]][j] = 1
	}

	return &IncidenceMatrix{
		Data:        data,
		NodeIndex:   nIdx,
		EdgeIndex:   eIdx,
		nodeByIndex: nodeLabels,
		edgeByIndex: edgeLabels,
	}, nil
}

// At returns Data[i][j], or ErrOutOfRange if either index is invalid.
func (im *IncidenceMatrix) At(i, j int) (float64, error) {
	if i < 0 || i >= len(im.Data) || j < 0 || j >= len(im.edgeByIndex) {
		return 0, ErrOutOfRange
	}

	return im.Data[i][j], nil
}

// IncidentEdges returns the edge labels touching nodeLabel.
func (im *IncidenceMatrix) IncidentEdges(nodeLabel int) ([]int, error) {
	i, ok := im.NodeIndex[nodeLabel]
	if !ok {
		return nil, ErrUnknownLabel
	}

	var out []int
	for j, v := range im.Data[i] {
		if v != 0 {
			out = append(out, im.edgeByIndex[j])
		}
	}

	return out, nil
}
