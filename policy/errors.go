package policy

import "errors"

var (
	// ErrNilMap is returned when a nil *planarmap.Map is supplied.
	ErrNilMap = errors.New("policy: map is nil")

	// ErrUnknownFace is returned when a face label is not a vertex of
	// the dual graph (either it does not exist, or it is the infinite
	// face, which the dual graph never includes).
	ErrUnknownFace = errors.New("policy: face is not a finite face of this map")

	// ErrDisconnected is returned by MergeOrder when the dual graph's
	// finite faces do not form a single connected component: no
	// sequence of face merges can ever join them without first adding
	// an edge.
	ErrDisconnected = errors.New("policy: dual graph is disconnected")

	// ErrNoPath is returned by CheapestPath when dst is unreachable
	// from src through the dual graph.
	ErrNoPath = errors.New("policy: no merge path between the requested faces")
)
