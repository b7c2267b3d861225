package planarmap_test

import (
	"testing"

	"github.com/gocellmap/cellmap/planarmap"
	"github.com/stretchr/testify/assert"
)

func TestVector2_Arithmetic(t *testing.T) {
	a := planarmap.Vector2{X: 1, Y: 2}
	b := planarmap.Vector2{X: 3, Y: -1}

	assert.Equal(t, planarmap.Vector2{X: 4, Y: 1}, a.Add(b))
	assert.Equal(t, planarmap.Vector2{X: -2, Y: 3}, a.Sub(b))
	assert.Equal(t, float64(1), a.Dot(planarmap.Vector2{X: 1, Y: 0}))
	assert.Equal(t, float64(5), a.SqMagnitude())
}

func TestBBox_ExtendAndUnion(t *testing.T) {
	bb := planarmap.EmptyBBox()
	assert.False(t, bb.Defined())

	bb = bb.Extend(planarmap.Vector2{X: 1, Y: 1})
	bb = bb.Extend(planarmap.Vector2{X: -1, Y: 3})
	assert.True(t, bb.Defined())
	assert.Equal(t, planarmap.Vector2{X: -1, Y: 1}, bb.Min)
	assert.Equal(t, planarmap.Vector2{X: 1, Y: 3}, bb.Max)
	assert.True(t, bb.Contains(planarmap.Vector2{X: 0, Y: 2}))
	assert.False(t, bb.Contains(planarmap.Vector2{X: 5, Y: 5}))

	other := planarmap.EmptyBBox().Extend(planarmap.Vector2{X: 10, Y: 10})
	u := planarmap.Union(bb, other)
	assert.Equal(t, planarmap.Vector2{X: -1, Y: 1}, u.Min)
	assert.Equal(t, planarmap.Vector2{X: 10, Y: 10}, u.Max)

	// Union against an undefined box is the identity.
	assert.Equal(t, bb, planarmap.Union(bb, planarmap.EmptyBBox()))
}

func TestNewPolyline_RejectsShort(t *testing.T) {
	_, err := planarmap.NewPolyline([]planarmap.Vector2{{X: 0, Y: 0}})
	assert.ErrorIs(t, err, planarmap.ErrShortPolyline)
}

func TestPolyline_PartialAreaOfUnitSquare(t *testing.T) {
	// A unit square traversed as a single closed polyline. With Y growing
	// downward this path runs clockwise on screen, so its trapezoid sum
	// comes out to -1.
	pl, err := planarmap.NewPolyline([]planarmap.Vector2{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: 0},
	})
	assert.NoError(t, err)
	assert.InDelta(t, -1.0, pl.PartialArea(), 1e-9)
}

func TestPolyline_ReversedNegatesArea(t *testing.T) {
	pl, err := planarmap.NewPolyline([]planarmap.Vector2{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: 0},
	})
	assert.NoError(t, err)
	assert.InDelta(t, -pl.PartialArea(), pl.Reversed().PartialArea(), 1e-9)
}

func TestPolyline_ConcatDropsSharedPoint(t *testing.T) {
	a, _ := planarmap.NewPolyline([]planarmap.Vector2{{X: 0, Y: 0}, {X: 1, Y: 0}})
	b, _ := planarmap.NewPolyline([]planarmap.Vector2{{X: 1, Y: 0}, {X: 2, Y: 0}})

	merged := a.Concat(b)
	assert.Equal(t, []planarmap.Vector2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}, merged.Points())
}
