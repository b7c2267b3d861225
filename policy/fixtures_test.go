package policy_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gocellmap/cellmap/planarmap"
)

// buildTwoSquares builds two unit-scaled squares glued along a shared
// vertical edge (n2-n5): two finite faces, each bordering the shared
// edge on one side and the infinite face on the rest of their
// boundary, plus the infinite face itself.
//
//	n6 --- n5 --- n4
//	 |      |      |
//	n1 --- n2 --- n3
func buildTwoSquares(t *testing.T) *planarmap.Map {
	t.Helper()
	n1 := planarmap.Vector2{X: 0, Y: 0}
	n2 := planarmap.Vector2{X: 1, Y: 0}
	n3 := planarmap.Vector2{X: 2, Y: 0}
	n4 := planarmap.Vector2{X: 2, Y: 1}
	n5 := planarmap.Vector2{X: 1, Y: 1}
	n6 := planarmap.Vector2{X: 0, Y: 1}
	positions := []*planarmap.Vector2{nil, &n1, &n2, &n3, &n4, &n5, &n6}
	edges := []*planarmap.EdgeSpec{
		nil,
		{Start: 1, End: 2, Points: []planarmap.Vector2{n1, n2}},
		{Start: 2, End: 3, Points: []planarmap.Vector2{n2, n3}},
		{Start: 3, End: 4, Points: []planarmap.Vector2{n3, n4}},
		{Start: 4, End: 5, Points: []planarmap.Vector2{n4, n5}},
		{Start: 5, End: 6, Points: []planarmap.Vector2{n5, n6}},
		{Start: 6, End: 1, Points: []planarmap.Vector2{n6, n1}},
		{Start: 2, End: 5, Points: []planarmap.Vector2{n2, n5}},
	}
	m, err := planarmap.New(positions, edges, 0, 0)
	require.NoError(t, err)

	return m
}

// squareFaces returns the two finite face labels of buildTwoSquares,
// read off the shared edge (n2-n5, edge label 7) whose two sides are
// exactly the two square interiors, never the infinite face.
func squareFaces(t *testing.T, m *planarmap.Map) (left, right int) {
	t.Helper()
	d := m.MakeDart(7)
	var err error
	left, err = d.LeftFace()
	require.NoError(t, err)
	right, err = d.RightFace()
	require.NoError(t, err)

	return left, right
}
