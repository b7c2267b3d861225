package planarmap

// NewFace allocates a fresh, empty face label with no anchors. None of
// the euler primitives call it: they only ever remove faces.
func (m *Map) NewFace() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	label := m.nextFaceLabel
	m.nextFaceLabel++
	for label >= len(m.faces) {
		m.faces = append(m.faces, nil)
	}
	m.faces[label] = &Face{Label: label, valid: true}

	return label
}

// SetFaceAnchors overwrites face label's anchor list and invalidates
// its geometric caches.
func (m *Map) SetFaceAnchors(label int, anchors []int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	f := m.faceAt(label)
	if f == nil || !f.valid {
		return ErrInvalidFace
	}
	f.Anchors = anchors
	f.invalidateCache()

	return nil
}

// AppendFaceAnchor adds one more anchor to face label's contour list
// and invalidates its geometric caches.
func (m *Map) AppendFaceAnchor(label, anchor int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	f := m.faceAt(label)
	if f == nil || !f.valid {
		return ErrInvalidFace
	}
	f.Anchors = append(f.Anchors, anchor)
	f.invalidateCache()

	return nil
}

// InvalidateFace clears face label's cached area/bounding box.
func (m *Map) InvalidateFace(label int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	f := m.faceAt(label)
	if f == nil || !f.valid {
		return ErrInvalidFace
	}
	f.invalidateCache()

	return nil
}

// AbsorbFaceGeometry folds merged's running PixelArea into survivor's
// and invalidates survivor's lazy caches (its true area/bbox are
// recomputed lazily from its now-larger anchor set). merged itself is
// left untouched for the caller to uninitialise.
func (m *Map) AbsorbFaceGeometry(survivor, merged int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	sf := m.faceAt(survivor)
	mf := m.faceAt(merged)
	if sf == nil || !sf.valid || mf == nil || !mf.valid {
		return ErrInvalidFace
	}
	sf.PixelArea += mf.PixelArea
	sf.invalidateCache()

	return nil
}

// UninitFace clears face label's slot. The caller must have already
// migrated or dropped every anchor referencing it.
func (m *Map) UninitFace(label int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	f := m.faceAt(label)
	if f == nil || !f.valid {
		return ErrInvalidFace
	}
	if label == InfiniteFace {
		return ErrCorrupt
	}
	f.valid = false
	m.faces[label] = nil

	return nil
}
