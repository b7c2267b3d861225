package policy

import "github.com/gocellmap/cellmap/pyramid"

// Execute applies steps in order against p, each via p.RemoveEdge, and
// wraps the whole batch in a single composite so a policy run is
// itself one recorded, replayable pyramid level range. It stops and
// returns the underlying error at the first Step that fails; earlier
// Steps remain applied and recorded.
func Execute(p *pyramid.Pyramid, steps []Step) error {
	p.BeginComposite()
	for _, s := range steps {
		if _, err := p.RemoveEdge(s.Dart); err != nil {
			_ = p.EndComposite()

			return err
		}
	}

	return p.EndComposite()
}
