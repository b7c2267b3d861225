package mapbuilder

import "github.com/gocellmap/cellmap/planarmap"

// Triangle builds a closed triangle of area 45: one finite face
// bounded by three edges, no bridges.
func Triangle(opts ...Option) (*planarmap.Map, error) {
	cfg := defaultConfig(0)
	for _, o := range opts {
		o(&cfg)
	}

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

	return planarmap.New(positions, edges, cfg.width, cfg.height, cfg.resolve()...)
}
