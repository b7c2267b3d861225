package planarmap

// Clone returns a deep copy of m: independent node, edge, and face
// slices, an independent label image if one is present, and the same
// corrupted latch. The clone carries no position index — a caller
// that needs nearest-node queries on the clone must AttachPositionIndex
// again, since a spatial index is a cache, not subdivision state.
//
// Clone is the primitive pyramid checkpoints are built on: storing a
// checkpoint means storing a Clone, and replaying history onto it
// never aliases the checkpoint's own node/edge/face storage.
func (m *Map) Clone() *Map {
	m.mu.RLock()
	defer m.mu.RUnlock()

	clone := &Map{
		nodes:         make([]*Node, len(m.nodes)),
		edges:         make([]*Edge, len(m.edges)),
		faces:         make([]*Face, len(m.faces)),
		imageWidth:    m.imageWidth,
		imageHeight:   m.imageHeight,
		nextNodeLabel: m.nextNodeLabel,
		nextEdgeLabel: m.nextEdgeLabel,
		nextFaceLabel: m.nextFaceLabel,
		corrupted:     m.corrupted,
	}
	for i, n := range m.nodes {
		if n == nil {
			continue
		}
		clone.nodes[i] = &Node{
			Label: n.Label,
			Pos:   n.Pos,
			darts: append([]int(nil), n.darts...),
			valid: n.valid,
		}
	}
	for i, e := range m.edges {
		if e == nil {
			continue
		}
		clone.edges[i] = &Edge{
			Label:      e.Label,
			Start:      e.Start,
			End:        e.End,
			Poly:       e.Poly.clonePolyline(),
			LeftFace:   e.LeftFace,
			RightFace:  e.RightFace,
			Protected:  e.Protected,
			EdgePixels: append([]Pixel(nil), e.EdgePixels...),
			valid:      e.valid,
		}
	}
	for i, f := range m.faces {
		if f == nil {
			continue
		}
		clone.faces[i] = &Face{
			Label:     f.Label,
			Anchors:   append([]int(nil), f.Anchors...),
			bboxValid: f.bboxValid,
			bbox:      f.bbox,
			areaValid: f.areaValid,
			area:      f.area,
			PixelArea: f.PixelArea,
			valid:     f.valid,
		}
	}
	if m.image != nil {
		clone.image = m.image.clone()
	}

	return clone
}
