package mapbuilder

import "github.com/gocellmap/cellmap/planarmap"

// TwoNodeBridge builds two nodes ten units apart joined by a single
// edge: no finite face, the edge a bridge (its left and right face
// both the infinite face).
func TwoNodeBridge(opts ...Option) (*planarmap.Map, error) {
	cfg := defaultConfig(0)
	for _, o := range opts {
		o(&cfg)
	}

	n1, n2 := planarmap.Vector2{X: 0, Y: 0}, planarmap.Vector2{X: 10, Y: 0}
	positions := []*planarmap.Vector2{nil, &n1, &n2}
	edges := []*planarmap.EdgeSpec{
		nil,
		{Start: 1, End: 2, Points: []planarmap.Vector2{n1, n2}},
	}

	return planarmap.New(positions, edges, cfg.width, cfg.height, cfg.resolve()...)
}
