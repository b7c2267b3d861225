package cellimage

// direction indexes the four cardinal directions in the same order as
// cardinalOrder: 0=East, 1=North, 2=West, 3=South.
type direction int

const (
	dirEast direction = iota
	dirNorth
	dirWest
	dirSouth
)

// step returns the crack-grid offset one step in d.
func (d direction) step() Point {
	switch d {
	case dirEast:
		return Point{1, 0}
	case dirNorth:
		return Point{0, -1}
	case dirWest:
		return Point{-1, 0}
	default: // dirSouth
		return Point{0, 1}
	}
}

// conn returns the cardinal connection bit corresponding to d.
func (d direction) conn() Conn { return cardinalOrder[d] }

// turnRight advances one step East→North→West→South→East; in this
// package's screen coordinates, where Y increases downward and North is
// up, that is a counterclockwise rotation.
func (d direction) turnRight() direction { return (d + 1) % 4 }

// turnLeft rotates one step the other way (East→South→West→North),
// clockwise on screen.
func (d direction) turnLeft() direction { return (d + 3) % 4 }

// opposite returns the reverse of d.
func (d direction) opposite() direction { return (d + 2) % 4 }

// isVertical reports whether d runs North/South.
func (d direction) isVertical() bool { return d == dirNorth || d == dirSouth }
