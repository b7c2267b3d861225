package cellimage

import "math/bits"

// Point is an integer crack-grid coordinate: (0,0) is the corner
// shared by label-raster pixels (0,0), (-1,0), (0,-1), and (-1,-1).
type Point struct{ X, Y int }

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// ConnGrid is a 2D raster of Conn bitmasks over the crack grid
// induced by a (width x height) label raster: it has (width+1) x
// (height+1) cells, one per pixel corner.
type ConnGrid struct {
	width, height int // crack-grid extent, i.e. labelWidth+1, labelHeight+1
	cells         []Conn
}

func newConnGrid(width, height int) *ConnGrid {
	return &ConnGrid{width: width, height: height, cells: make([]Conn, width*height)}
}

func (g *ConnGrid) inBounds(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.width && p.Y < g.height
}

func (g *ConnGrid) idx(p Point) int { return p.Y*g.width + p.X }

// At returns the bitmask at p, or 0 if p is outside the grid.
func (g *ConnGrid) At(p Point) Conn {
	if !g.inBounds(p) {
		return 0
	}

	return g.cells[g.idx(p)]
}

// set ORs bits into the cell at p.
func (g *ConnGrid) set(p Point, bits Conn) {
	g.cells[g.idx(p)] |= bits
}

// Store overwrites the cell at p with bits exactly.
func (g *ConnGrid) Store(p Point, bits Conn) {
	g.cells[g.idx(p)] = bits
}

// buildConnections detects the crack-grid connections induced by
// label, a rectangular width x height raster of segment labels: crack
// cell (x,y) gets CONN_RIGHT set whenever labels on either side of the
// horizontal crack between pixel rows y-1 and y at column x differ (a
// segment boundary runs through it), and CONN_DOWN analogously for the
// vertical crack between pixel columns x-1 and x at row y.
//
// This only ever sets each cell's own outgoing bits; makeSymmetric
// fills in the reciprocal CONN_LEFT/CONN_UP bits on the neighbour.
func buildConnections(label [][]int) *ConnGrid {
	h := len(label)
	w := len(label[0])
	g := newConnGrid(w+1, h+1)

	at := func(x, y int) (int, bool) {
		if x < 0 || y < 0 || x >= w || y >= h {
			return 0, false
		}

		return label[y][x], true
	}

	for y := 0; y <= h; y++ {
		for x := 0; x <= w; x++ {
			// horizontal crack running right from corner (x,y),
			// separating pixel rows y-1 and y at column x.
			above, aok := at(x, y-1)
			below, bok := at(x, y)
			if aok && bok && above != below {
				g.set(Point{x, y}, ConnRight)
			}
			// vertical crack running down from corner (x,y),
			// separating pixel columns x-1 and x at row y.
			left, lok := at(x-1, y)
			right, rok := at(x, y)
			if lok && rok && left != right {
				g.set(Point{x, y}, ConnDown)
			}
		}
	}

	return g
}

// makeSymmetric propagates each cell's outgoing CONN_RIGHT/CONN_DOWN
// bit onto its neighbour's incoming CONN_LEFT/CONN_UP bit, so that
// every connection is recorded from both ends regardless of which
// pixel-boundary scan first noticed it.
func (g *ConnGrid) makeSymmetric() {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := g.At(Point{x, y})
			if c&ConnRight != 0 && x+1 < g.width {
				g.set(Point{x + 1, y}, ConnLeft)
			}
			if c&ConnDown != 0 && y+1 < g.height {
				g.set(Point{x, y + 1}, ConnUp)
			}
		}
	}
}

// markNodes classifies every crack cell as a definite node (degree ≥
// 3 in the four cardinal connections), a tentative node (the
// CONN_RIGHT|CONN_DOWN corner pattern, or a diagonal crossing), or
// plain pass-through.
//
// A boundary strand can also terminate at degree 1 where it runs off
// the raster edge (a two-region split with no interior junction is
// the common case). Such a cell can only occur on the crack grid's own
// border, since every transition inside the raster closes into a loop
// or a higher-degree junction; markNodes treats it as a node too, so
// followEdge has somewhere to stop and register the strand.
func (g *ConnGrid) markNodes() {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			p := Point{x, y}
			c := g.At(p)
			degree := bits.OnesCount8(uint8(c & ConnAll4))
			onBorder := x == 0 || y == 0 || x == g.width-1 || y == g.height-1
			switch {
			case degree > 2:
				g.set(p, ConnNode)
			case degree == 1 && onBorder:
				g.set(p, ConnNode)
			case (c&ConnAll4) == (ConnRight|ConnDown) || c&ConnDiag != 0:
				g.set(p, ConnMaybeNode)
			}
		}
	}
}
