package cellimage

import "github.com/gocellmap/cellmap/planarmap"

// nodeRecord tracks the planarmap node label assigned to a crack-grid
// node position, plus which of its cardinal connections already have
// an edge traced for them.
type nodeRecord struct {
	label int
	used  Conn
}

// builder accumulates planarmap-ready node positions and edge specs
// while tracing the crack grid.
type builder struct {
	grid      *ConnGrid
	nodes     map[Point]*nodeRecord
	positions []*planarmap.Vector2
	edges     []*planarmap.EdgeSpec
}

// nodeAt returns the node record at p, creating one (and its
// planarmap position entry) on first visit.
func (b *builder) nodeAt(p Point) *nodeRecord {
	if rec, ok := b.nodes[p]; ok {
		return rec
	}
	pos := planarmap.Vector2{X: float64(p.X) - 0.5, Y: float64(p.Y) - 0.5}
	b.positions = append(b.positions, &pos)
	label := len(b.positions) - 1 // positions is 1-indexed; slot 0 is the nil filler added by Build.
	rec := &nodeRecord{label: label}
	b.nodes[p] = rec

	return rec
}

// followAllEdgesStartingWith traces one polyline for every unclaimed
// cardinal connection at every crack cell whose bits intersect
// connMask, registering a node at each cell visited and an edge for
// every traced strand.
func (b *builder) followAllEdgesStartingWith(connMask Conn) {
	for y := 0; y < b.grid.height; y++ {
		for x := 0; x < b.grid.width; x++ {
			pos := Point{x, y}
			bits := b.grid.At(pos)
			if bits&connMask == 0 {
				continue
			}

			startRec := b.nodeAt(pos)
			for _, startDir := range [4]direction{dirEast, dirNorth, dirWest, dirSouth} {
				startConn := startDir.conn()
				if bits&startConn == 0 || startRec.used&startConn != 0 {
					continue
				}

				points, endPos, endDir := followEdge(b.grid, pos, startDir)
				endConn := endDir.conn()
				endRec := b.nodeAt(endPos)

				start, end := startRec.label, endRec.label
				poly := append([]planarmap.Vector2(nil), points...)
				b.edges = append(b.edges, &planarmap.EdgeSpec{Start: start, End: end, Points: poly})

				startRec.used |= startConn
				if endPos == pos && endRec == startRec {
					startRec.used |= endConn
				} else {
					endRec.used |= endConn
				}
			}
		}
	}
}

// Build traces the crack-edge map induced by label, a rectangular
// raster of segment labels, and returns the node positions and edge
// specs ready to pass to planarmap.New. width and height (the label
// raster's own extent, not the crack grid's) are also returned so the
// caller can pass them straight through as New's image-size
// parameters.
func Build(label [][]int) (positions []*planarmap.Vector2, edges []*planarmap.EdgeSpec, width, height int, err error) {
	if len(label) == 0 || len(label[0]) == 0 {
		return nil, nil, 0, 0, ErrEmptyLabels
	}
	height, width = len(label), len(label[0])
	for _, row := range label {
		if len(row) != width {
			return nil, nil, 0, 0, ErrNonRectangular
		}
	}

	grid := buildConnections(label)
	grid.makeSymmetric()
	grid.markNodes()

	b := &builder{
		grid:      grid,
		nodes:     make(map[Point]*nodeRecord),
		positions: []*planarmap.Vector2{nil}, // slot 0 reserved, matching planarmap.New's 1-indexed convention
	}
	b.followAllEdgesStartingWith(ConnNode)
	b.followAllEdgesStartingWith(ConnMaybeNode)

	specs := make([]*planarmap.EdgeSpec, len(b.edges)+1)
	specs[0] = nil
	copy(specs[1:], b.edges)

	return b.positions, specs, width, height, nil
}
