package cellimage

// BuildConnGridForTest runs the full connection-detection pipeline
// (detect, symmetrize, classify) and returns the resulting grid, for
// tests that want to inspect crack-cell classification directly
// without going through Build's edge tracing.
func BuildConnGridForTest(label [][]int) *ConnGrid {
	g := buildConnections(label)
	g.makeSymmetric()
	g.markNodes()

	return g
}
