package planarmap

// AddEdge allocates a fresh edge label connecting start to end along
// poly, threading +label into start's σ-orbit and -label into end's.
// Faces are left unresolved (unresolvedFace); the caller (euler, or a
// fresh planarmap.New call) is responsible for re-embedding.
func (m *Map) AddEdge(start, end int, poly *Polyline) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.nodeAt(start) == nil || m.nodeAt(end) == nil {
		return 0, ErrInvalidNode
	}
	label := m.nextEdgeLabel
	m.nextEdgeLabel++
	for label >= len(m.edges) {
		m.edges = append(m.edges, nil)
	}
	m.edges[label] = &Edge{
		Label: label, Start: start, End: end, Poly: poly,
		LeftFace: unresolvedFace, RightFace: unresolvedFace, valid: true,
	}
	m.nodes[start].darts = append(m.nodes[start].darts, label)
	m.nodes[end].darts = append(m.nodes[end].darts, -label)

	return label, nil
}

// SetEdgeGeometry overwrites edge label's endpoints and polyline, used
// by euler.MergeEdges to turn the survivor edge into the concatenation
// of itself and the merged edge.
func (m *Map) SetEdgeGeometry(label, start, end int, poly *Polyline) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e := m.edgeAt(label)
	if e == nil || !e.valid {
		return ErrInvalidDart
	}
	e.Start = start
	e.End = end
	e.Poly = poly

	return nil
}

// SetEdgeFace sets edge label's left (isLeft) or right face to
// faceLabel, invalidating the old and new face's geometric caches.
func (m *Map) SetEdgeFace(label int, isLeft bool, faceLabel int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e := m.edgeAt(label)
	if e == nil || !e.valid {
		return ErrInvalidDart
	}
	var old int
	if isLeft {
		old = e.LeftFace
		e.LeftFace = faceLabel
	} else {
		old = e.RightFace
		e.RightFace = faceLabel
	}
	if f := m.faceAt(old); f != nil {
		f.invalidateCache()
	}
	if f := m.faceAt(faceLabel); f != nil {
		f.invalidateCache()
	}

	return nil
}

// UninitEdge clears edge label's slot. The caller must have already
// removed both of its darts from their owning nodes' σ-orbits.
func (m *Map) UninitEdge(label int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e := m.edgeAt(label)
	if e == nil || !e.valid {
		return ErrInvalidDart
	}
	e.valid = false
	m.edges[label] = nil

	return nil
}

// SetEdgePixels overwrites edge label's cached label-image pixel list,
// used by euler after it unstamps and restamps the surviving edge's
// raster footprint during MergeEdges.
func (m *Map) SetEdgePixels(label int, pixels []Pixel) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e := m.edgeAt(label)
	if e == nil || !e.valid {
		return ErrInvalidDart
	}
	e.EdgePixels = pixels

	return nil
}

// SetEdgeProtected sets edge label's protection flag, used by external
// merge policies to veto automatic removal via a pre-hook.
func (m *Map) SetEdgeProtected(label int, protected bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e := m.edgeAt(label)
	if e == nil || !e.valid {
		return ErrInvalidDart
	}
	e.Protected = protected

	return nil
}
