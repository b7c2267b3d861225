package cellimage

import "github.com/gocellmap/cellmap/planarmap"

// directionVector gives the world-space displacement of one crack step
// in d, matching d.step() but as a continuous Vector2.
func directionVector(d direction) planarmap.Vector2 {
	s := d.step()

	return planarmap.Vector2{X: float64(s.X), Y: float64(s.Y)}
}

// followEdge walks the crack grid starting at pos, heading dir,
// collecting one Vector2 per crack step at half-integer offsets
// (x-0.5, y-0.5), until it reaches a definite node (CONN_NODE) or
// returns to its own starting cell (a self-loop). Diagonal crossings
// it passes through are resolved by the incoming direction's parity
// and have their traversed bits cleared so a later call through the
// same crossing does not retrace this strand.
//
// It returns the collected points, the crack cell it stopped at, and
// the direction pointing back the way it came (so the caller can
// register the reciprocal connection at the far end).
func followEdge(grid *ConnGrid, pos Point, dir direction) (points []planarmap.Vector2, endPos Point, endDir direction) {
	startPos := pos
	vPos := planarmap.Vector2{X: float64(pos.X) - 0.5, Y: float64(pos.Y) - 0.5}
	points = append(points, vPos)

	for {
		vPos = vPos.Add(directionVector(dir))
		points = append(points, vPos)
		pos = pos.Add(dir.step())

		if pos == startPos {
			break
		}

		connection := grid.At(pos)
		if connection&ConnDiag != 0 {
			turnLeft := connection&ConnDiagUpLeft != 0 && dir.isVertical() ||
				connection&ConnDiagUpRight != 0 && !dir.isVertical()
			connection &^= dir.opposite().conn()
			if turnLeft {
				dir = dir.turnLeft()
			} else {
				dir = dir.turnRight()
			}
			connection &^= dir.conn()
			if connection&ConnAll4 == 0 {
				connection &^= ConnMaybeNode
			}
			grid.Store(pos, connection)

			continue
		}
		if connection&ConnNode != 0 {
			break
		}
		if connection&ConnMaybeNode != 0 {
			grid.Store(pos, connection&^ConnMaybeNode)
		}

		dir = dir.turnRight()
		for connection&dir.conn() == 0 {
			dir = dir.turnLeft()
		}
	}

	return points, pos, dir.opposite()
}
