package planarmap

// ContourArea sums PartialArea over every non-bridge dart in anchor's
// φ-orbit. Bridge darts contribute nothing because a bridge's polyline
// is traversed twice (once from each side) during any full embedding
// walk and would otherwise double-count or cancel depending on
// winding — excluding them is what makes contour area equal the true
// enclosed area of a face with dangling bridges attached.
func (m *Map) ContourArea(anchor Dart) (float64, error) {
	var total float64
	d := anchor
	for {
		isBridge, err := d.IsBridge()
		if err != nil {
			return 0, err
		}
		if !isBridge {
			pl, err := d.Polyline()
			if err != nil {
				return 0, err
			}
			total += pl.PartialArea()
		}
		next, err := d.NextPhi()
		if err != nil {
			return 0, err
		}
		if next.Equal(anchor) {
			return total, nil
		}
		d = next
	}
}

// ContourPoly concatenates the polylines of anchor's φ-orbit into a
// single closed point sequence, reversing each dart's polyline when
// traversed with negative sign.
func (m *Map) ContourPoly(anchor Dart) ([]Vector2, error) {
	var out []Vector2
	d := anchor
	first := true
	for {
		pl, err := d.Polyline()
		if err != nil {
			return nil, err
		}
		pts := pl.Points()
		if first {
			out = append(out, pts...)
			first = false
		} else {
			out = append(out, pts[1:]...)
		}
		next, err := d.NextPhi()
		if err != nil {
			return nil, err
		}
		if next.Equal(anchor) {
			// Drop the duplicated closing point (== out[0]) so callers
			// get a clean polygon vertex list.
			if len(out) > 1 {
				out = out[:len(out)-1]
			}

			return out, nil
		}
		d = next
	}
}

// Area returns f's cached signed area: the sum of ContourArea over
// every anchor. It is computed on first access after construction or
// invalidation.
func (m *Map) Area(f *Face) (float64, error) {
	if f.areaValid {
		return f.area, nil
	}
	var total float64
	for _, anchor := range f.Anchors {
		a, err := m.ContourArea(m.MakeDart(anchor))
		if err != nil {
			return 0, err
		}
		total += a
	}
	f.area = total
	f.areaValid = true

	return total, nil
}

// BoundingBox returns f's cached bounding box: the union of every
// anchor contour's bounding box. It fails with ErrInfiniteFaceNoBox
// for the infinite face.
func (m *Map) BoundingBox(f *Face) (BBox, error) {
	if f.Label == InfiniteFace {
		return BBox{}, ErrInfiniteFaceNoBox
	}
	if f.bboxValid {
		return f.bbox, nil
	}
	bb := EmptyBBox()
	for _, anchor := range f.Anchors {
		poly, err := m.ContourPoly(m.MakeDart(anchor))
		if err != nil {
			return BBox{}, err
		}
		for _, p := range poly {
			bb = bb.Extend(p)
		}
	}
	f.bbox = bb
	f.bboxValid = true

	return bb, nil
}

// Contains reports whether p lies inside f: first via the label image
// if present (O(1)), else via boundingBox ∧ outerContour ∧ ¬anyHole.
func (m *Map) Contains(f *Face, p Vector2) (bool, error) {
	if f.Label == InfiniteFace {
		// The infinite face contains p iff no finite face does; the
		// label-image fast path answers this directly, and the
		// fallback degrades to "not inside any finite face's outer
		// contour", which is the same statement.
		if m.image != nil {
			x, y := int(round(p.X)), int(round(p.Y))
			v, err := m.image.FaceLabelAt(x, y)
			if err == nil {
				return v == InfiniteFace, nil
			}
		}
		for _, other := range m.faces {
			if other == nil || !other.valid || other.Label == InfiniteFace {
				continue
			}
			inside, err := m.Contains(other, p)
			if err != nil {
				return false, err
			}
			if inside {
				return false, nil
			}
		}

		return true, nil
	}

	if m.image != nil {
		x, y := int(round(p.X)), int(round(p.Y))
		v, err := m.image.FaceLabelAt(x, y)
		if err == nil && v != pixelEdgeValue {
			return v == f.Label, nil
		}
	}

	bb, err := m.BoundingBox(f)
	if err != nil {
		return false, err
	}
	if !bb.Contains(p) {
		return false, nil
	}
	if len(f.Anchors) == 0 {
		return false, nil
	}
	outer, err := m.ContourPoly(m.MakeDart(f.Anchors[0]))
	if err != nil {
		return false, err
	}
	if !pointInPolygon(outer, p) {
		return false, nil
	}
	for _, hole := range f.Anchors[1:] {
		poly, err := m.ContourPoly(m.MakeDart(hole))
		if err != nil {
			return false, err
		}
		if pointInPolygon(poly, p) {
			return false, nil
		}
	}

	return true, nil
}
