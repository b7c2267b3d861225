package mapbuilder

import "github.com/gocellmap/cellmap/planarmap"

const minGridDim = 1

// Grid builds a rows x cols orthogonal lattice of nodes, spaced
// Option.spacing units apart (1 by default), connecting each cell to
// its right and bottom neighbours. The interior forms (rows-1) *
// (cols-1) unit-square finite faces bordering each other and the
// infinite face; rows == 1 or cols == 1 degenerates to a bridge chain
// with no finite face. Requires rows >= 1 and cols >= 1.
//
// Node labels follow row-major order: label(r, c) = r*cols + c + 1.
func Grid(rows, cols int, opts ...Option) (*planarmap.Map, error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, ErrTooFewVertices
	}

	cfg := defaultConfig(1)
	for _, o := range opts {
		o(&cfg)
	}

	label := func(r, c int) int { return r*cols + c + 1 }
	n := rows * cols

	positions := make([]*planarmap.Vector2, n+1)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			p := planarmap.Vector2{X: float64(c) * cfg.spacing, Y: float64(r) * cfg.spacing}
			positions[label(r, c)] = &p
		}
	}

	var edges []*planarmap.EdgeSpec
	edges = append(edges, nil) // label 0 reserved
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			u := label(r, c)
			if c+1 < cols {
				v := label(r, c+1)
				edges = append(edges, &planarmap.EdgeSpec{
					Start: u, End: v, Points: []planarmap.Vector2{*positions[u], *positions[v]},
				})
			}
			if r+1 < rows {
				v := label(r+1, c)
				edges = append(edges, &planarmap.EdgeSpec{
					Start: u, End: v, Points: []planarmap.Vector2{*positions[u], *positions[v]},
				})
			}
		}
	}

	return planarmap.New(positions, edges, cfg.width, cfg.height, cfg.resolve()...)
}
