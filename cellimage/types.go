package cellimage

import "errors"

// Sentinel errors for cellimage construction.
var (
	// ErrEmptyLabels indicates Build was called with a label raster
	// that has no rows or no columns.
	ErrEmptyLabels = errors.New("cellimage: label raster must have at least one row and one column")

	// ErrNonRectangular indicates the label raster's rows differ in
	// length.
	ErrNonRectangular = errors.New("cellimage: all rows must have the same length")
)

// Conn is a bitmask of crack-grid connection and classification bits.
// The four cardinal bits record which neighbouring crack cell this one
// connects to by a segment boundary; the remaining bits classify the
// cell once connections have been symmetrised.
type Conn uint8

const (
	ConnRight Conn = 1 << iota
	ConnUp
	ConnLeft
	ConnDown

	// ConnDiagUpLeft and ConnDiagUpRight mark a crack cell where two
	// boundary strands cross diagonally without meeting: the cell
	// connects NE-SW or NW-SE rather than forming a true junction.
	// followEdge resolves which strand to continue along by the
	// incoming direction's parity.
	ConnDiagUpLeft
	ConnDiagUpRight

	// ConnNode marks a crack cell with three or more cardinal
	// connections (a genuine topological node), or a degree-1 cell on
	// the crack grid's border where a boundary strand runs off the
	// raster.
	ConnNode

	// ConnMaybeNode marks a two-connection cell that is either a
	// diagonal crossing or the corner pattern CONN_RIGHT|CONN_DOWN,
	// both of which followEdge may need to treat as a node boundary
	// depending on which strand it arrives on; demoted back to a
	// plain pass-through once a circulator has crossed it.
	ConnMaybeNode
)

// ConnAll4 is the mask of the four cardinal connection bits.
const ConnAll4 = ConnRight | ConnUp | ConnLeft | ConnDown

// ConnDiag is the mask of both diagonal-crossing bits.
const ConnDiag = ConnDiagUpLeft | ConnDiagUpRight

// cardinalOrder lists the four cardinal bits in circulator direction
// order: East, North, West, South.
var cardinalOrder = [4]Conn{ConnRight, ConnUp, ConnLeft, ConnDown}
