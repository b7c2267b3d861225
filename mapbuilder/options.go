package mapbuilder

import "github.com/gocellmap/cellmap/planarmap"

// Option customizes a fixture constructor's call to planarmap.New,
// mirroring the separation between mapbuilder's own knobs (image
// extent, lattice spacing) and raw planarmap.Option passthrough.
type Option func(*config)

type config struct {
	width, height int
	withImage     bool
	spacing       float64
	mapOpts       []planarmap.Option
}

func defaultConfig(defaultSpacing float64) config {
	return config{spacing: defaultSpacing}
}

// WithImageExtent requests a label image of the given size attached
// to the constructed map (implies planarmap.WithLabelImage()).
func WithImageExtent(width, height int) Option {
	return func(c *config) {
		c.width, c.height = width, height
		c.withImage = true
	}
}

// WithSpacing overrides a parametric fixture's (Chain, Grid) distance
// between adjacent nodes. Panics if spacing is not positive, matching
// the fail-fast posture of an invalid functional option.
func WithSpacing(units float64) Option {
	if units <= 0 {
		panic("mapbuilder: WithSpacing(units<=0)")
	}

	return func(c *config) { c.spacing = units }
}

// WithMapOption passes a raw planarmap.Option through to New, for
// knobs mapbuilder does not otherwise expose (e.g. WithAngleTolerance).
func WithMapOption(opt planarmap.Option) Option {
	return func(c *config) { c.mapOpts = append(c.mapOpts, opt) }
}

func (c config) resolve() []planarmap.Option {
	opts := append([]planarmap.Option(nil), c.mapOpts...)
	if c.withImage {
		opts = append(opts, planarmap.WithLabelImage())
	}

	return opts
}
