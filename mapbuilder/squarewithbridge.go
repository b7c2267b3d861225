package mapbuilder

import "github.com/gocellmap/cellmap/planarmap"

// SquareWithBridge builds a ten-unit square (one finite face) plus a
// pendant edge dangling from one corner toward the centre: the square
// boundary's anchor set gains the bridge as an extra anchor-reachable
// dart without creating a second finite face.
func SquareWithBridge(opts ...Option) (*planarmap.Map, error) {
	cfg := defaultConfig(0)
	for _, o := range opts {
		o(&cfg)
	}

	n1 := planarmap.Vector2{X: 0, Y: 0}
	n2 := planarmap.Vector2{X: 10, Y: 0}
	n3 := planarmap.Vector2{X: 10, Y: 10}
	n4 := planarmap.Vector2{X: 0, Y: 10}
	n5 := planarmap.Vector2{X: 5, Y: 5}
	positions := []*planarmap.Vector2{nil, &n1, &n2, &n3, &n4, &n5}
	edges := []*planarmap.EdgeSpec{
		nil,
		{Start: 1, End: 2, Points: []planarmap.Vector2{n1, n2}},
		{Start: 2, End: 3, Points: []planarmap.Vector2{n2, n3}},
		{Start: 3, End: 4, Points: []planarmap.Vector2{n3, n4}},
		{Start: 4, End: 1, Points: []planarmap.Vector2{n4, n1}},
		{Start: 1, End: 5, Points: []planarmap.Vector2{n1, n5}},
	}

	return planarmap.New(positions, edges, cfg.width, cfg.height, cfg.resolve()...)
}
