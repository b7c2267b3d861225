package cellimage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gocellmap/cellmap/cellimage"
)

// exported test helpers reach the unexported grid construction through
// the small wrappers in export_test.go.

func TestConnGrid_StraightBorderToBorderBoundary(t *testing.T) {
	// two rows, one column: the single boundary between them runs
	// straight from the top border to the bottom border with no
	// interior junction anywhere.
	label := [][]int{
		{0},
		{1},
	}
	grid := cellimage.BuildConnGridForTest(label)

	assert.Equal(t, cellimage.ConnRight, grid.At(cellimage.Point{X: 0, Y: 1})&cellimage.ConnRight)
	assert.Equal(t, cellimage.ConnLeft, grid.At(cellimage.Point{X: 1, Y: 1})&cellimage.ConnLeft)

	// both ends touch the crack grid's own border at degree 1, so they
	// must be promoted to nodes or followEdge would have nowhere to
	// stop.
	assert.NotZero(t, grid.At(cellimage.Point{X: 0, Y: 1})&cellimage.ConnNode)
	assert.NotZero(t, grid.At(cellimage.Point{X: 1, Y: 1})&cellimage.ConnNode)
}

func TestConnGrid_SingleInteriorPixelIsland(t *testing.T) {
	label := [][]int{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	}
	grid := cellimage.BuildConnGridForTest(label)

	// the lone ambiguous corner where the island's top and left edges
	// meet is the only crack cell classified as a (maybe-)node; the
	// other three corners are plain degree-2 turns.
	assert.NotZero(t, grid.At(cellimage.Point{X: 1, Y: 1})&cellimage.ConnMaybeNode)
	assert.Zero(t, grid.At(cellimage.Point{X: 2, Y: 1})&(cellimage.ConnNode|cellimage.ConnMaybeNode))
	assert.Zero(t, grid.At(cellimage.Point{X: 1, Y: 2})&(cellimage.ConnNode|cellimage.ConnMaybeNode))
	assert.Zero(t, grid.At(cellimage.Point{X: 2, Y: 2})&(cellimage.ConnNode|cellimage.ConnMaybeNode))

	assert.Equal(t, cellimage.ConnRight|cellimage.ConnDown, grid.At(cellimage.Point{X: 1, Y: 1})&cellimage.ConnAll4)
	assert.Equal(t, cellimage.ConnDown|cellimage.ConnLeft, grid.At(cellimage.Point{X: 2, Y: 1})&cellimage.ConnAll4)
	assert.Equal(t, cellimage.ConnRight|cellimage.ConnUp, grid.At(cellimage.Point{X: 1, Y: 2})&cellimage.ConnAll4)
	assert.Equal(t, cellimage.ConnUp|cellimage.ConnLeft, grid.At(cellimage.Point{X: 2, Y: 2})&cellimage.ConnAll4)
}

func TestConnGrid_UniformLabelHasNoConnections(t *testing.T) {
	label := [][]int{
		{7, 7},
		{7, 7},
	}
	grid := cellimage.BuildConnGridForTest(label)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			assert.Zero(t, grid.At(cellimage.Point{X: x, Y: y}))
		}
	}
}
