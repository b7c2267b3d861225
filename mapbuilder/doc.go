// Package mapbuilder assembles deterministic *planarmap.Map fixtures
// by name: TwoNodeBridge, Triangle, SquareWithBridge, Chain, and Grid.
// Each constructor lays out node positions and edge polylines on a
// fixed coordinate scheme and hands them to planarmap.New, exactly the
// concrete shapes used as worked examples. The other packages' test
// suites still build their own fixtures; only mapbuilder's own tests
// use these.
package mapbuilder
