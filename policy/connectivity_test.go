package policy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gocellmap/cellmap/planarmap"
	"github.com/gocellmap/cellmap/policy"
)

func TestConnectivity_AdjacentSquaresAreConnected(t *testing.T) {
	m := buildTwoSquares(t)
	left, right := squareFaces(t, m)

	ok, err := policy.Connectivity(m, left, right)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestConnectivity_FaceIsConnectedToItself(t *testing.T) {
	m := buildTwoSquares(t)
	left, _ := squareFaces(t, m)

	ok, err := policy.Connectivity(m, left, left)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestConnectivity_RejectsInfiniteFace(t *testing.T) {
	m := buildTwoSquares(t)
	left, _ := squareFaces(t, m)

	_, err := policy.Connectivity(m, left, planarmap.InfiniteFace)
	assert.ErrorIs(t, err, policy.ErrUnknownFace)
}
