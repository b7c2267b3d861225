package stats_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gocellmap/cellmap/planarmap"
)

// buildTriangle constructs the same closed triangle fixture euler's
// tests use (area 45), optionally with a label image attached.
func buildTriangle(t *testing.T, withImage bool) *planarmap.Map {
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
	var opts []planarmap.Option
	w, h := 0, 0
	if withImage {
		opts = append(opts, planarmap.WithLabelImage())
		w, h = 12, 12
	}
	m, err := planarmap.New(positions, edges, w, h, opts...)
	require.NoError(t, err)

	return m
}

// triangleFace returns the triangle fixture's one finite face.
func triangleFace(t *testing.T, m *planarmap.Map) *planarmap.Face {
	t.Helper()
	for _, label := range m.FaceLabels() {
		if label == planarmap.InfiniteFace {
			continue
		}
		f, err := m.Face(label)
		require.NoError(t, err)

		return f
	}
	t.Fatal("no finite face found")

	return nil
}
