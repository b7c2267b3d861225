package planarmap

import "github.com/gocellmap/cellmap/posindex"

// AddNode allocates a fresh node label at pos and returns it. Used by
// euler.RemoveBridge's caller-visible contract only indirectly (bridge
// removal never creates nodes), but kept here as the dual of
// UninitNode for symmetry; mapbuilder builds its fixtures through New
// instead.
func (m *Map) AddNode(pos Vector2) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	label := m.nextNodeLabel
	m.nextNodeLabel++
	for label >= len(m.nodes) {
		m.nodes = append(m.nodes, nil)
	}
	m.nodes[label] = &Node{Label: label, Pos: pos, valid: true}
	if m.posIdx != nil {
		m.posHandles[label] = m.posIdx.Insert(posindex.Point{X: pos.X, Y: pos.Y}, label)
	}

	return label
}

// UninitNode clears node label's slot. It fails with ErrInvalidNode
// if the node is absent, or with ErrCorrupt if it still has incident
// darts (euler.
// RemoveIsolatedNode checks degree before calling this; UninitNode
// re-checks as a defensive invariant guard).
func (m *Map) UninitNode(label int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := m.nodeAt(label)
	if n == nil || !n.valid {
		return ErrInvalidNode
	}
	if len(n.darts) != 0 {
		return ErrCorrupt
	}
	n.valid = false
	m.nodes[label] = nil
	if m.posIdx != nil {
		if h, ok := m.posHandles[label]; ok {
			_ = m.posIdx.Erase(h)
			delete(m.posHandles, label)
		}
	}

	return nil
}

// AppendDartToNode appends dart to node label's σ-orbit, at the end
// (callers that need a specific angular position re-sort or splice
// explicitly; this primitive only threads the reference).
func (m *Map) AppendDartToNode(label, dart int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := m.nodeAt(label)
	if n == nil || !n.valid {
		return ErrInvalidNode
	}
	n.darts = append(n.darts, dart)

	return nil
}

// RemoveDartFromNode removes the first occurrence of dart from node
// label's σ-orbit. It fails with ErrCorrupt if dart is not present
// (per I3, every edge appears in its endpoint's list exactly once).
func (m *Map) RemoveDartFromNode(label, dart int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := m.nodeAt(label)
	if n == nil || !n.valid {
		return ErrInvalidNode
	}
	for i, d := range n.darts {
		if d == dart {
			n.darts = append(n.darts[:i], n.darts[i+1:]...)

			return nil
		}
	}

	return ErrCorrupt
}

// ReplaceDartInNode rewrites the first occurrence of old in node
// label's σ-orbit to new, preserving its angular position. Valid only
// when old and new share the same local tangent direction at the
// node, which holds for the survivor-relabelling step of
// euler.MergeEdges.
func (m *Map) ReplaceDartInNode(label, old, newDart int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := m.nodeAt(label)
	if n == nil || !n.valid {
		return ErrInvalidNode
	}
	for i, d := range n.darts {
		if d == old {
			n.darts[i] = newDart

			return nil
		}
	}

	return ErrCorrupt
}
