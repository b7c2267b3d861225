package planarmap

// HasImage reports whether the map carries a label image.
func (m *Map) HasImage() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.image != nil
}

// ImageStampEdge rasterizes poly's segments as edge pixels (-1),
// returning the set of pixels touched so a later restamp can fold them
// back into a face. It is a no-op (returns nil) if no image is
// present.
func (m *Map) ImageStampEdge(poly *Polyline) []Pixel {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.image == nil {
		return nil
	}

	return m.image.stampEdge(poly)
}

// ImageUnstampEdge restores pixels (previously returned by
// ImageStampEdge) to faceLabel, and accumulates their count into
// faceLabel's PixelArea. It is a no-op if no image is present.
func (m *Map) ImageUnstampEdge(pixels []Pixel, faceLabel int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.image == nil {
		return
	}
	m.image.unstampEdge(pixels, faceLabel)
	if f := m.faceAt(faceLabel); f != nil {
		f.PixelArea += len(pixels)
	}
}

// ImageFillPolygon scan-converts poly's interior with faceLabel,
// skipping pixels already marked as edge pixels, and accumulates the
// painted pixel count into faceLabel's PixelArea. No-op if no image.
func (m *Map) ImageFillPolygon(poly []Vector2, faceLabel int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.image == nil {
		return
	}
	before := m.image.count(faceLabel)
	m.image.fillPolygon(poly, faceLabel)
	after := m.image.count(faceLabel)
	if f := m.faceAt(faceLabel); f != nil {
		f.PixelArea += after - before
	}
}

// ImageRemapFace records that faceLabel `from` is now owned by
// faceLabel `to` in the label-image LUT, in O(1) regardless of pixel
// area. It leaves both faces' PixelArea unchanged; AbsorbFaceGeometry
// folds those.
func (m *Map) ImageRemapFace(from, to int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.image == nil {
		return
	}
	m.image.Remap(from, to)
}
