package planarmap_test

import (
	"testing"

	"github.com/gocellmap/cellmap/planarmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueries_BoundingBoxOfFiniteFace(t *testing.T) {
	m := buildTriangle(t)

	var finite *planarmap.Face
	for label := 0; label < 10; label++ {
		f, err := m.Face(label)
		if err != nil || f.Label == planarmap.InfiniteFace {
			continue
		}
		finite = f
	}
	require.NotNil(t, finite)

	bb, err := m.BoundingBox(finite)
	require.NoError(t, err)
	assert.Equal(t, planarmap.Vector2{X: 0, Y: 0}, bb.Min)
	assert.Equal(t, planarmap.Vector2{X: 1, Y: 1}, bb.Max)
}

func TestQueries_BoundingBoxOfInfiniteFaceErrors(t *testing.T) {
	m := buildTriangle(t)
	inf, err := m.Face(planarmap.InfiniteFace)
	require.NoError(t, err)

	_, err = m.BoundingBox(inf)
	assert.ErrorIs(t, err, planarmap.ErrInfiniteFaceNoBox)
}

func TestQueries_ContainsInteriorAndExterior(t *testing.T) {
	m := buildTriangle(t)

	var finite *planarmap.Face
	for label := 0; label < 10; label++ {
		f, err := m.Face(label)
		if err != nil || f.Label == planarmap.InfiniteFace {
			continue
		}
		finite = f
	}
	require.NotNil(t, finite)

	inside, err := m.Contains(finite, planarmap.Vector2{X: 0.2, Y: 0.2})
	require.NoError(t, err)
	assert.True(t, inside)

	outside, err := m.Contains(finite, planarmap.Vector2{X: 5, Y: 5})
	require.NoError(t, err)
	assert.False(t, outside)

	inf, err := m.Face(planarmap.InfiniteFace)
	require.NoError(t, err)
	infContains, err := m.Contains(inf, planarmap.Vector2{X: 5, Y: 5})
	require.NoError(t, err)
	assert.True(t, infContains)
}

func TestQueries_ContourPolyIsClosedWithoutDuplicateEndpoint(t *testing.T) {
	m := buildTriangle(t)
	poly, err := m.ContourPoly(m.MakeDart(1))
	require.NoError(t, err)

	assert.Len(t, poly, 3, "triangle contour has three vertices, closing point dropped")
	assert.NotEqual(t, poly[0], poly[len(poly)-1])
}
