package policy

// Step is one scripted Euler operation: merge the two faces on either
// side of Dart by removing the edge it names. Dart is always the
// edge's positive orientation, suitable for euler.RemoveEdge (which
// dispatches to MergeFaces or RemoveBridge as the edge requires).
type Step struct {
	Dart   int
	Weight float64
}
