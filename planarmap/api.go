package planarmap

// File: api.go
// Role: thin public facade — constructors, getters, and the mutation
// primitives package euler drives. No topological reasoning lives
// here; euler owns the surgery order, this file only owns making each
// individual step safe and bookkept (label slots, cache invalidation).

import "github.com/gocellmap/cellmap/posindex"

// NodeCount, EdgeCount, and FaceCount return the number of currently
// valid (non-uninitialised) cells of each kind.
func (m *Map) NodeCount() int { return countValid(m.nodes) }
func (m *Map) EdgeCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := 0
	for _, e := range m.edges {
		if e != nil && e.valid {
			n++
		}
	}

	return n
}
func (m *Map) FaceCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := 0
	for _, f := range m.faces {
		if f != nil && f.valid {
			n++
		}
	}

	return n
}

// NodeLabels, EdgeLabels, and FaceLabels return the currently valid
// labels of each kind, in ascending order. Callers that need to walk
// every live cell (stats' matrix builders, chiefly) use these instead
// of probing label ranges themselves.
func (m *Map) NodeLabels() []int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []int
	for _, n := range m.nodes {
		if n != nil && n.valid {
			out = append(out, n.Label)
		}
	}

	return out
}

func (m *Map) EdgeLabels() []int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []int
	for _, e := range m.edges {
		if e != nil && e.valid {
			out = append(out, e.Label)
		}
	}

	return out
}

func (m *Map) FaceLabels() []int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []int
	for _, f := range m.faces {
		if f != nil && f.valid {
			out = append(out, f.Label)
		}
	}

	return out
}

func countValid(nodes []*Node) int {
	n := 0
	for _, nd := range nodes {
		if nd != nil && nd.valid {
			n++
		}
	}

	return n
}

// Node returns the node at label, or ErrInvalidNode if absent.
func (m *Map) Node(label int) (*Node, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := m.nodeAt(label)
	if n == nil || !n.valid {
		return nil, ErrInvalidNode
	}

	return n, nil
}

// Edge returns the edge at label, or ErrInvalidDart if absent.
func (m *Map) Edge(label int) (*Edge, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e := m.edgeAt(label)
	if e == nil || !e.valid {
		return nil, ErrInvalidDart
	}

	return e, nil
}

// Face returns the face at label, or ErrInvalidFace if absent.
func (m *Map) Face(label int) (*Face, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	f := m.faceAt(label)
	if f == nil || !f.valid {
		return nil, ErrInvalidFace
	}

	return f, nil
}

// Dart returns the Dart bound to m for the given nonzero signed label.
func (m *Map) Dart(signedLabel int) Dart { return m.MakeDart(signedLabel) }

// Image returns the map's label image, or nil if it was constructed
// without one.
func (m *Map) Image() *LabelImage { return m.image }

// Corrupted reports whether the map has latched into the fatal
// ErrCorrupt state. The latch is a flag only: Map's mutation methods
// and euler's operations do not consult it and keep running after it
// is set.
func (m *Map) Corrupted() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.corrupted
}

// MarkCorrupted latches the map into the fatal state. Only euler calls
// this, when it detects an invariant violation mid-operation.
func (m *Map) MarkCorrupted() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.corrupted = true
}

// Lock, Unlock, RLock and RUnlock expose the map's structural mutex.
// euler does not take it around a whole primitive: every Map method it
// calls locks on its own, so a concurrent reader can observe a
// partially-applied Euler operation.
func (m *Map) Lock()    { m.mu.Lock() }
func (m *Map) Unlock()  { m.mu.Unlock() }
func (m *Map) RLock()   { m.mu.RLock() }
func (m *Map) RUnlock() { m.mu.RUnlock() }

// AttachPositionIndex installs idx as the map's node-position index;
// every node present at the time of the call is inserted into it, and
// every future AddNode/UninitNode keeps it in sync. Passing a nil idx
// detaches it.
func (m *Map) AttachPositionIndex(idx *posindex.Index) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.posIdx = idx
	m.posHandles = nil
	if idx == nil {
		return
	}
	m.posHandles = make(map[int]posindex.Handle)
	for _, n := range m.nodes {
		if n != nil && n.valid {
			m.posHandles[n.Label] = idx.Insert(posindex.Point{X: n.Pos.X, Y: n.Pos.Y}, n.Label)
		}
	}
}

// NearestNode returns the label of the node nearest to p within
// rMax2, using the attached position index. It fails with
// ErrNoPositionIndex if none is attached.
func (m *Map) NearestNode(p Vector2, rMax2 float64) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.posIdx == nil {
		return 0, ErrNoPositionIndex
	}
	label, _, err := m.posIdx.Nearest(posindex.Point{X: p.X, Y: p.Y}, rMax2)
	if err != nil {
		return 0, err
	}

	return label, nil
}
