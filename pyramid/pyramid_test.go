package pyramid_test

import (
	"testing"

	"github.com/gocellmap/cellmap/planarmap"
	"github.com/gocellmap/cellmap/pyramid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTriangle mirrors the triangle fixture used throughout euler's
// tests: three nodes, three edges (1: n1->n2, 2: n2->n3, 3: n3->n1),
// one finite face of area 45.
func buildTriangle(t *testing.T) *planarmap.Map {
	t.Helper()
	n1 := planarmap.Vector2{X: 0, Y: 0}
	n2 := planarmap.Vector2{X: 10, Y: 0}
	n3 := planarmap.Vector2{X: 5, Y: 9}
	positions := []*planarmap.Vector2{nil, &n1, &n2, &n3}
	edges := []*planarmap.EdgeSpec{
		nil,
		{Start: 1, End: 2, Points: []planarmap.Vector2{n1, n2}},
		{Start: 2, End: 3, Points: []planarmap.Vector2{n2, n3}},
		{Start: 3, End: 1, Points: []planarmap.Vector2{n3, n1}},
	}
	m, err := planarmap.New(positions, edges, 0, 0)
	require.NoError(t, err)

	return m
}

// buildTwoNodeBridge mirrors spec scenario 1: a single dangling edge.
func buildTwoNodeBridge(t *testing.T) *planarmap.Map {
	t.Helper()
	n1 := planarmap.Vector2{X: 0, Y: 0}
	n2 := planarmap.Vector2{X: 10, Y: 0}
	positions := []*planarmap.Vector2{nil, &n1, &n2}
	edges := []*planarmap.EdgeSpec{
		nil,
		{Start: 1, End: 2, Points: []planarmap.Vector2{n1, n2}},
	}
	m, err := planarmap.New(positions, edges, 0, 0)
	require.NoError(t, err)

	return m
}

// TestGetLevel_ReplaysExactlyOneOperation follows spec scenario 5:
// merge the triangle's two faces at level 0→1, then merge-edges-smooth
// the degree-2 node the merge leaves behind at level 1→2. GetLevel(1)
// must reproduce exactly the post-merge, pre-smoothing state.
func TestGetLevel_ReplaysExactlyOneOperation(t *testing.T) {
	m := buildTriangle(t)
	p := pyramid.New(m)

	_, err := p.MergeFaces(1) // edge1 borders the finite and infinite faces
	require.NoError(t, err)
	assert.Equal(t, 1, p.TopLevel())
	require.Equal(t, 1, p.Top().FaceCount())
	require.Equal(t, 2, p.Top().EdgeCount())

	// merging edge1 left node3 at degree 2 (darts -2 and +3); dart(3)
	// starts at node3.
	_, err = p.MergeEdges(3)
	require.NoError(t, err)
	assert.Equal(t, 2, p.TopLevel())
	require.Equal(t, 1, p.Top().EdgeCount())

	level1, err := p.GetLevel(1)
	require.NoError(t, err)
	assert.Equal(t, 1, level1.Subdivision.FaceCount())
	assert.Equal(t, 2, level1.Subdivision.EdgeCount())
	assert.Equal(t, 3, level1.Subdivision.NodeCount())

	level0, err := p.GetLevel(0)
	require.NoError(t, err)
	assert.Equal(t, 2, level0.Subdivision.FaceCount())
	assert.Equal(t, 3, level0.Subdivision.EdgeCount())
}

func TestGetLevel_OutOfRange(t *testing.T) {
	m := buildTriangle(t)
	p := pyramid.New(m)

	_, err := p.GetLevel(5)
	assert.ErrorIs(t, err, pyramid.ErrLevelOutOfRange)

	_, err = p.GetLevel(-1)
	assert.ErrorIs(t, err, pyramid.ErrLevelOutOfRange)
}

func TestGetLevel_DoesNotMutateTop(t *testing.T) {
	m := buildTriangle(t)
	p := pyramid.New(m)

	_, err := p.MergeFaces(1)
	require.NoError(t, err)

	level0, err := p.GetLevel(0)
	require.NoError(t, err)
	assert.Equal(t, 2, level0.Subdivision.FaceCount())
	assert.Equal(t, 1, p.Top().FaceCount(), "retrieving an earlier level must not touch the live top level")
}

func TestApproachLevel_StopsAtMaxSteps(t *testing.T) {
	m := buildTriangle(t)
	p := pyramid.New(m)

	_, err := p.MergeFaces(1)
	require.NoError(t, err)
	_, err = p.MergeEdges(3)
	require.NoError(t, err)

	level, applied, err := p.ApproachLevel(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, applied)
	assert.Equal(t, 1, level.Subdivision.FaceCount())
	assert.Equal(t, 2, level.Subdivision.EdgeCount(), "only the first operation was replayed")
}

func TestCutAbove_TruncatesHistoryAndChecksOutOfRangeAfterward(t *testing.T) {
	m := buildTriangle(t)
	p := pyramid.New(m)

	_, err := p.MergeFaces(1)
	require.NoError(t, err)
	_, err = p.MergeEdges(3)
	require.NoError(t, err)
	require.Equal(t, 2, p.TopLevel())

	err = p.CutAbove(1)
	require.NoError(t, err)
	assert.Equal(t, 1, p.TopLevel())
	assert.Equal(t, 2, p.Top().EdgeCount())

	_, err = p.GetLevel(2)
	assert.ErrorIs(t, err, pyramid.ErrLevelOutOfRange)
}

// TestRemoveEdge_RecordsAsSinglePrimitiveAfterCollapse checks that
// RemoveEdge's single-child composite wrapper collapses: TopLevel
// advances by exactly one per call, not two.
func TestRemoveEdge_RecordsAsSinglePrimitiveAfterCollapse(t *testing.T) {
	m := buildTriangle(t)
	p := pyramid.New(m)

	_, err := p.RemoveEdge(1)
	require.NoError(t, err)
	assert.Equal(t, 1, p.TopLevel())
}

func TestEndComposite_WithoutBeginReturnsError(t *testing.T) {
	m := buildTriangle(t)
	p := pyramid.New(m)

	err := p.EndComposite()
	assert.ErrorIs(t, err, pyramid.ErrCompositeNotOpen)
}

func TestRemoveEdgeWithEnds_RecordsOneCompositeCoveringNodeRemoval(t *testing.T) {
	m := buildTwoNodeBridge(t)
	p := pyramid.New(m)

	_, err := p.RemoveEdgeWithEnds(1)
	require.NoError(t, err)
	assert.Equal(t, 1, p.TopLevel(), "the whole sequence is one composite top-level entry")
	assert.Equal(t, 0, p.Top().NodeCount())

	level0, err := p.GetLevel(0)
	require.NoError(t, err)
	assert.Equal(t, 2, level0.Subdivision.NodeCount())
}
