package cellimage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gocellmap/cellmap/cellimage"
)

func TestBuild_StraightBorderToBorderBoundary(t *testing.T) {
	label := [][]int{
		{0},
		{1},
	}
	positions, edges, width, height, err := cellimage.Build(label)
	require.NoError(t, err)
	assert.Equal(t, 1, width)
	assert.Equal(t, 2, height)

	// two border nodes, one edge between them: no interior junction
	// exists for a straight two-region split.
	require.Len(t, positions, 3)
	require.Len(t, edges, 2)

	edge := edges[1]
	require.NotNil(t, edge)
	assert.ElementsMatch(t, []int{1, 2}, []int{edge.Start, edge.End})
	assert.Len(t, edge.Points, 2)
}

func TestBuild_SingleInteriorPixelIslandIsAClosedSelfLoop(t *testing.T) {
	label := [][]int{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	}
	positions, edges, width, height, err := cellimage.Build(label)
	require.NoError(t, err)
	assert.Equal(t, 3, width)
	assert.Equal(t, 3, height)

	// the island's boundary has no genuine junction, only the one
	// ambiguous corner pattern, so it is traced as a single node with a
	// self-loop edge tracing its perimeter.
	require.Len(t, positions, 2)
	require.Len(t, edges, 2)

	edge := edges[1]
	require.NotNil(t, edge)
	assert.Equal(t, 1, edge.Start)
	assert.Equal(t, 1, edge.End)
	assert.Len(t, edge.Points, 5)
	assert.Equal(t, edge.Points[0], edge.Points[len(edge.Points)-1])
}

func TestBuild_UniformLabelProducesNoEdges(t *testing.T) {
	label := [][]int{
		{5, 5},
		{5, 5},
	}
	positions, edges, _, _, err := cellimage.Build(label)
	require.NoError(t, err)
	assert.Len(t, positions, 1) // just the reserved nil slot
	assert.Len(t, edges, 1)
}

func TestBuild_RejectsEmptyLabels(t *testing.T) {
	_, _, _, _, err := cellimage.Build(nil)
	assert.ErrorIs(t, err, cellimage.ErrEmptyLabels)

	_, _, _, _, err = cellimage.Build([][]int{{}})
	assert.ErrorIs(t, err, cellimage.ErrEmptyLabels)
}

func TestBuild_RejectsNonRectangular(t *testing.T) {
	_, _, _, _, err := cellimage.Build([][]int{{0, 0}, {0}})
	assert.ErrorIs(t, err, cellimage.ErrNonRectangular)
}
