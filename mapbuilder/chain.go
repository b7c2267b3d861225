package mapbuilder

import "github.com/gocellmap/cellmap/planarmap"

const minChainNodes = 2

// Chain builds n collinear nodes joined end to end by n-1 bridge
// edges, spaced Option.spacing units apart (5 by default, matching
// the degree-two-smoothing worked example). No finite face results:
// every edge is a bridge. Requires n >= 2.
func Chain(n int, opts ...Option) (*planarmap.Map, error) {
	if n < minChainNodes {
		return nil, ErrTooFewVertices
	}

	cfg := defaultConfig(5)
	for _, o := range opts {
		o(&cfg)
	}

	positions := make([]*planarmap.Vector2, n+1)
	for i := 1; i <= n; i++ {
		p := planarmap.Vector2{X: float64(i-1) * cfg.spacing, Y: 0}
		positions[i] = &p
	}

	edges := make([]*planarmap.EdgeSpec, n)
	for i := 1; i < n; i++ {
		edges[i] = &planarmap.EdgeSpec{
			Start:  i,
			End:    i + 1,
			Points: []planarmap.Vector2{*positions[i], *positions[i+1]},
		}
	}

	return planarmap.New(positions, edges, cfg.width, cfg.height, cfg.resolve()...)
}
