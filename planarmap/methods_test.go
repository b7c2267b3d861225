package planarmap_test

import (
	"testing"

	"github.com/gocellmap/cellmap/planarmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoNodesAndEdge(t *testing.T) (m *planarmap.Map, a, b, edge int) {
	t.Helper()
	m = emptyMap(t)
	a = m.AddNode(planarmap.Vector2{X: 0, Y: 0})
	b = m.AddNode(planarmap.Vector2{X: 1, Y: 0})
	poly, err := planarmap.NewPolyline([]planarmap.Vector2{{X: 0, Y: 0}, {X: 1, Y: 0}})
	require.NoError(t, err)
	edge, err = m.AddEdge(a, b, poly)
	require.NoError(t, err)

	return m, a, b, edge
}

func TestMethods_SetEdgeGeometryOverwrites(t *testing.T) {
	m, a, _, edge := twoNodesAndEdge(t)
	c := m.AddNode(planarmap.Vector2{X: 2, Y: 2})
	poly, err := planarmap.NewPolyline([]planarmap.Vector2{{X: 0, Y: 0}, {X: 2, Y: 2}})
	require.NoError(t, err)

	require.NoError(t, m.SetEdgeGeometry(edge, a, c, poly))
	e, err := m.Edge(edge)
	require.NoError(t, err)
	assert.Equal(t, c, e.End)
	assert.Equal(t, poly, e.Poly)
}

func TestMethods_SetEdgeFaceInvalidatesCaches(t *testing.T) {
	m, _, _, edge := twoNodesAndEdge(t)
	face := m.NewFace()
	require.NoError(t, m.SetFaceAnchors(face, []int{edge}))

	_, err := m.Area(mustFace(t, m, face))
	require.NoError(t, err)

	require.NoError(t, m.SetEdgeFace(edge, true, face))
	f, err := m.Face(face)
	require.NoError(t, err)
	area, err := m.Area(f)
	require.NoError(t, err)
	_ = area // recomputation must not error after invalidation
}

func mustFace(t *testing.T, m *planarmap.Map, label int) *planarmap.Face {
	t.Helper()
	f, err := m.Face(label)
	require.NoError(t, err)

	return f
}

func TestMethods_UninitEdgeThenLookupFails(t *testing.T) {
	m, _, _, edge := twoNodesAndEdge(t)
	require.NoError(t, m.UninitEdge(edge))

	_, err := m.Edge(edge)
	assert.ErrorIs(t, err, planarmap.ErrInvalidDart)
}

func TestMethods_SetEdgeProtected(t *testing.T) {
	m, _, _, edge := twoNodesAndEdge(t)
	require.NoError(t, m.SetEdgeProtected(edge, true))
	e, err := m.Edge(edge)
	require.NoError(t, err)
	assert.True(t, e.Protected)
}

func TestMethods_NewFaceAllocatesEmptyFace(t *testing.T) {
	m := emptyMap(t)
	label := m.NewFace()
	f, err := m.Face(label)
	require.NoError(t, err)
	assert.Empty(t, f.Anchors)
}

func TestMethods_AppendFaceAnchor(t *testing.T) {
	m := emptyMap(t)
	label := m.NewFace()
	require.NoError(t, m.AppendFaceAnchor(label, 7))
	require.NoError(t, m.AppendFaceAnchor(label, -9))

	f, err := m.Face(label)
	require.NoError(t, err)
	assert.Equal(t, []int{7, -9}, f.Anchors)
}

func TestMethods_AbsorbFaceGeometryFoldsPixelArea(t *testing.T) {
	m := emptyMap(t)
	survivor := m.NewFace()
	merged := m.NewFace()
	require.NotPanics(t, func() { m.ImageFillPolygon(nil, survivor) }) // no-op: no image
	f, err := m.Face(merged)
	require.NoError(t, err)
	f.PixelArea = 12
	sf, err := m.Face(survivor)
	require.NoError(t, err)
	sf.PixelArea = 3

	require.NoError(t, m.AbsorbFaceGeometry(survivor, merged))
	sf, err = m.Face(survivor)
	require.NoError(t, err)
	assert.Equal(t, 15, sf.PixelArea)
}

func TestMethods_UninitFaceRefusesInfiniteFace(t *testing.T) {
	m := emptyMap(t)
	err := m.UninitFace(planarmap.InfiniteFace)
	assert.ErrorIs(t, err, planarmap.ErrCorrupt)
}

func TestMethods_OperationsOnInvalidFaceError(t *testing.T) {
	m := emptyMap(t)
	err := m.SetFaceAnchors(999, []int{1})
	assert.ErrorIs(t, err, planarmap.ErrInvalidFace)
}
