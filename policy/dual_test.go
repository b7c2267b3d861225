package policy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gocellmap/cellmap/policy"
)

func TestBuildDualGraph_TwoSquaresShareOneDualEdge(t *testing.T) {
	m := buildTwoSquares(t)
	left, right := squareFaces(t, m)

	g, err := policy.BuildDualGraph(m, policy.BoundaryLength)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{left, right}, g.Faces())

	n, err := g.Neighbors(left)
	require.NoError(t, err)
	assert.Equal(t, []int{right}, n)

	n, err = g.Neighbors(right)
	require.NoError(t, err)
	assert.Equal(t, []int{left}, n)
}

func TestBuildDualGraph_RejectsNilMap(t *testing.T) {
	_, err := policy.BuildDualGraph(nil, nil)
	assert.ErrorIs(t, err, policy.ErrNilMap)
}

func TestAreaDifference_BothSquaresAreUnitArea(t *testing.T) {
	m := buildTwoSquares(t)

	w, err := policy.AreaDifference(m, 7)
	require.NoError(t, err)
	assert.InDelta(t, 0, w, 1e-9)
}
