package planarmap_test

import (
	"math"
	"testing"

	"github.com/gocellmap/cellmap/planarmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_TriangleHasOneFiniteFace(t *testing.T) {
	m := buildTriangle(t)

	assert.Equal(t, 3, m.NodeCount())
	assert.Equal(t, 3, m.EdgeCount())
	assert.Equal(t, 2, m.FaceCount(), "infinite face plus the one enclosed triangle")

	var finiteArea float64
	for label := 0; label < 10; label++ {
		f, err := m.Face(label)
		if err != nil {
			continue
		}
		if f.Label == planarmap.InfiniteFace {
			continue
		}
		area, err := m.Area(f)
		require.NoError(t, err)
		finiteArea = math.Abs(area)
	}
	assert.InDelta(t, 0.5, finiteArea, 1e-9)
}

func TestNew_BridgeYieldsNoFiniteFace(t *testing.T) {
	m := buildBridge(t)

	assert.Equal(t, 2, m.NodeCount())
	assert.Equal(t, 1, m.EdgeCount())
	assert.Equal(t, 1, m.FaceCount(), "a dangling edge creates no enclosed area")

	inf, err := m.Face(planarmap.InfiniteFace)
	require.NoError(t, err)
	assert.Len(t, inf.Anchors, 1, "both sides of the bridge lie on one contour, the infinite face's single anchor")
}

func TestNew_RejectsUnknownEndpoint(t *testing.T) {
	n1 := planarmap.Vector2{X: 0, Y: 0}
	positions := []*planarmap.Vector2{nil, &n1}
	edges := []*planarmap.EdgeSpec{
		nil,
		{Start: 1, End: 2, Points: []planarmap.Vector2{n1, {X: 1, Y: 0}}},
	}
	_, err := planarmap.New(positions, edges, 0, 0)
	assert.ErrorIs(t, err, planarmap.ErrInvalidNode)
}

func TestNew_RejectsShortPolyline(t *testing.T) {
	n1, n2 := planarmap.Vector2{X: 0, Y: 0}, planarmap.Vector2{X: 1, Y: 0}
	positions := []*planarmap.Vector2{nil, &n1, &n2}
	edges := []*planarmap.EdgeSpec{
		nil,
		{Start: 1, End: 2, Points: []planarmap.Vector2{n1}},
	}
	_, err := planarmap.New(positions, edges, 0, 0)
	assert.ErrorIs(t, err, planarmap.ErrShortPolyline)
}

func TestNew_SquareWithBridge(t *testing.T) {
	// A closed unit square (nodes 1-4) plus a pendant edge dangling off
	// node 1 outward into node 5: one finite face (the square) plus the
	// infinite face, whose contour takes in both sides of the bridge.
	n1 := planarmap.Vector2{X: 0, Y: 0}
	n2 := planarmap.Vector2{X: 1, Y: 0}
	n3 := planarmap.Vector2{X: 1, Y: 1}
	n4 := planarmap.Vector2{X: 0, Y: 1}
	n5 := planarmap.Vector2{X: -1, Y: 0}
	positions := []*planarmap.Vector2{nil, &n1, &n2, &n3, &n4, &n5}
	edges := []*planarmap.EdgeSpec{
		nil,
		{Start: 1, End: 2, Points: []planarmap.Vector2{n1, n2}},
		{Start: 2, End: 3, Points: []planarmap.Vector2{n2, n3}},
		{Start: 3, End: 4, Points: []planarmap.Vector2{n3, n4}},
		{Start: 4, End: 1, Points: []planarmap.Vector2{n4, n1}},
		{Start: 1, End: 5, Points: []planarmap.Vector2{n1, n5}},
	}
	m, err := planarmap.New(positions, edges, 0, 0)
	require.NoError(t, err)

	assert.Equal(t, 5, m.NodeCount())
	assert.Equal(t, 5, m.EdgeCount())
	assert.Equal(t, 2, m.FaceCount())

	bridge, err := m.Edge(5)
	require.NoError(t, err)
	assert.True(t, bridge.IsBridge())
}

func TestNew_WithLabelImage(t *testing.T) {
	n1 := planarmap.Vector2{X: 1, Y: 1}
	n2 := planarmap.Vector2{X: 8, Y: 1}
	n3 := planarmap.Vector2{X: 8, Y: 8}
	n4 := planarmap.Vector2{X: 1, Y: 8}
	positions := []*planarmap.Vector2{nil, &n1, &n2, &n3, &n4}
	edges := []*planarmap.EdgeSpec{
		nil,
		{Start: 1, End: 2, Points: []planarmap.Vector2{n1, n2}},
		{Start: 2, End: 3, Points: []planarmap.Vector2{n2, n3}},
		{Start: 3, End: 4, Points: []planarmap.Vector2{n3, n4}},
		{Start: 4, End: 1, Points: []planarmap.Vector2{n4, n1}},
	}
	m, err := planarmap.New(positions, edges, 10, 10, planarmap.WithLabelImage())
	require.NoError(t, err)
	require.True(t, m.HasImage())

	v, err := m.Image().FaceLabelAt(5, 5)
	require.NoError(t, err)
	assert.NotEqual(t, planarmap.InfiniteFace, v, "the square's interior should not resolve to the infinite face")

	v, err = m.Image().FaceLabelAt(0, 0)
	require.NoError(t, err)
	assert.Equal(t, planarmap.InfiniteFace, v, "outside the square resolves to the infinite face")
}
