package planarmap

import (
	"math"
	"sort"
)

// New builds a Map from node positions and edge specifications.
// positions[0] and edgeSpecs[0] are reserved (ignored) slots so that
// label 0 stays free for the infinite face's conceptual "no node"
// counterpart; a nil entry elsewhere marks an absent slot, retained so
// the remaining labels stay dense and stable.
//
// Construction proceeds in five steps, per spec: instantiate nodes,
// instantiate edges (threading σ-orbit dart lists), sort each node's
// σ-orbit by outgoing angle, seed preliminary face contours by walking
// φ-orbits, then embed faces (classify outer-vs-hole by contour area
// and attach holes to their parent).
func New(positions []*Vector2, edgeSpecs []*EdgeSpec, imageWidth, imageHeight int, opts ...Option) (*Map, error) {
	cfg := defaultBuildConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	m := &Map{
		imageWidth:  imageWidth,
		imageHeight: imageHeight,
	}

	if err := m.instantiateNodes(positions); err != nil {
		return nil, err
	}
	if err := m.instantiateEdges(edgeSpecs); err != nil {
		return nil, err
	}
	m.sortSigmaOrbits(cfg.minDist, cfg.stepDist)

	if cfg.withImage {
		m.image = newLabelImage(imageWidth, imageHeight)
		for _, e := range m.edges {
			if e != nil && e.valid {
				e.EdgePixels = m.image.stampEdge(e.Poly)
			}
		}
	}

	prelim, err := m.seedPreliminaryContours()
	if err != nil {
		return nil, err
	}
	if err := m.embedFaces(prelim); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Map) instantiateNodes(positions []*Vector2) error {
	m.nodes = make([]*Node, len(positions))
	maxLabel := 0
	for i, p := range positions {
		if i == 0 || p == nil {
			continue
		}
		m.nodes[i] = &Node{Label: i, Pos: *p, valid: true}
		if i > maxLabel {
			maxLabel = i
		}
	}
	m.nextNodeLabel = maxLabel + 1

	return nil
}

func (m *Map) instantiateEdges(specs []*EdgeSpec) error {
	m.edges = make([]*Edge, len(specs))
	maxLabel := 0
	for i, spec := range specs {
		if i == 0 || spec == nil {
			continue
		}
		startNode := m.nodeAt(spec.Start)
		endNode := m.nodeAt(spec.End)
		if startNode == nil || endNode == nil {
			return ErrInvalidNode
		}
		pts := append([]Vector2(nil), spec.Points...)
		if len(pts) < 2 {
			return ErrShortPolyline
		}
		pts[0] = startNode.Pos
		pts[len(pts)-1] = endNode.Pos
		poly, err := NewPolyline(pts)
		if err != nil {
			return err
		}
		e := &Edge{
			Label:     i,
			Start:     spec.Start,
			End:       spec.End,
			Poly:      poly,
			LeftFace:  unresolvedFace,
			RightFace: unresolvedFace,
			valid:     true,
		}
		m.edges[i] = e
		startNode.darts = append(startNode.darts, i)
		endNode.darts = append(endNode.darts, -i)
		if i > maxLabel {
			maxLabel = i
		}
	}
	m.nextEdgeLabel = maxLabel + 1

	return nil
}

// sortSigmaOrbits reorders every node's dart list into ascending
// outgoing angle θ(d) = atan2(-Δy, Δx), where Δ is the vector from the
// node to the dart's first tangent sample. Darts whose first segment
// is parallel within minAngle = atan2(minDist, stepDist) are compared
// again at each dart's next polyline point (a polyline that runs out
// stays at its last point), repeating until the ambiguity resolves or
// both polylines are exhausted (in which case
// the comparison falls back to the darts' signed labels, a documented
// implementation choice — spec.md leaves the exhausted case open).
func (m *Map) sortSigmaOrbits(minDist, stepDist float64) {
	minAngle := math.Atan2(minDist, stepDist)
	for _, n := range m.nodes {
		if n == nil || !n.valid {
			continue
		}
		node := n
		sort.SliceStable(node.darts, func(i, j int) bool {
			return m.lessByAngle(node, node.darts[i], node.darts[j], minAngle)
		})
	}
}

// orientedSamples returns the dart's polyline points ordered starting
// at the node (pts[0] == node position), so pts[k] for k >= 1 is the
// sample k steps away from the node along the dart's direction.
func (m *Map) orientedSamples(dart int) []Vector2 {
	e := m.edges[abs(dart)]
	pts := e.Poly.Points()
	if dart > 0 {
		return pts
	}
	rev := make([]Vector2, len(pts))
	for i, p := range pts {
		rev[len(pts)-1-i] = p
	}

	return rev
}

func angleFromNode(node Vector2, sample Vector2) float64 {
	d := sample.Sub(node)

	return math.Atan2(-d.Y, d.X)
}

// normalizeAngle maps a into [0, 2π).
func normalizeAngle(a float64) float64 {
	const twoPi = 2 * math.Pi
	for a < 0 {
		a += twoPi
	}
	for a >= twoPi {
		a -= twoPi
	}

	return a
}

func angularDiff(a, b float64) float64 {
	d := math.Abs(normalizeAngle(a) - normalizeAngle(b))
	if d > math.Pi {
		d = 2*math.Pi - d
	}

	return d
}

func (m *Map) lessByAngle(node *Node, d1, d2 int, minAngle float64) bool {
	if d1 == d2 {
		return false
	}
	s1 := m.orientedSamples(d1)
	s2 := m.orientedSamples(d2)
	const maxDepth = 64
	for depth := 1; depth < maxDepth; depth++ {
		i1 := depth
		if i1 >= len(s1) {
			i1 = len(s1) - 1
		}
		i2 := depth
		if i2 >= len(s2) {
			i2 = len(s2) - 1
		}
		a1 := angleFromNode(node.Pos, s1[i1])
		a2 := angleFromNode(node.Pos, s2[i2])
		if angularDiff(a1, a2) > minAngle {
			return normalizeAngle(a1) < normalizeAngle(a2)
		}
		bothExhausted := i1 == len(s1)-1 && i2 == len(s2)-1
		if bothExhausted {
			break
		}
	}

	// Genuinely collinear (or exhausted without resolving): fall back
	// to a stable, deterministic tiebreak.
	return d1 < d2
}

type prelimContour struct {
	faceLabel int
	anchor    int
}

// seedPreliminaryContours walks the φ-orbit from every unresolved dart
// side, stamping a fresh preliminary face label on every visited dart
// and recording one anchor per contour. The infinite face (label 0) is
// created first so the first real contour gets label 1.
func (m *Map) seedPreliminaryContours() ([]prelimContour, error) {
	m.faces = []*Face{{Label: InfiniteFace, valid: true}}
	m.nextFaceLabel = 1

	var contours []prelimContour
	for _, e := range m.edges {
		if e == nil || !e.valid {
			continue
		}
		for _, sign := range [2]int{1, -1} {
			d := m.MakeDart(sign * e.Label)
			cur, err := d.LeftFace()
			if err != nil {
				return nil, err
			}
			if cur != unresolvedFace {
				continue
			}
			faceLabel := m.nextFaceLabel
			m.nextFaceLabel++
			m.faces = append(m.faces, &Face{Label: faceLabel, valid: true})
			if err := m.stampContour(d, faceLabel); err != nil {
				return nil, err
			}
			contours = append(contours, prelimContour{faceLabel: faceLabel, anchor: d.Label})
		}
	}

	return contours, nil
}

// stampContour sets leftFace = faceLabel on every dart in anchor's
// φ-orbit.
func (m *Map) stampContour(anchor Dart, faceLabel int) error {
	d := anchor
	for {
		e, err := m.edgeOf(d)
		if err != nil {
			return err
		}
		if d.Label > 0 {
			e.LeftFace = faceLabel
		} else {
			e.RightFace = faceLabel
		}
		next, err := d.NextPhi()
		if err != nil {
			return err
		}
		if next.Equal(anchor) {
			return nil
		}
		d = next
	}
}

// embedFaces classifies every preliminary contour as outer (positive
// area, kept as its own finite face) or hole (non-positive area,
// attached to a parent face), sorting by descending |area| (ties:
// negative-area first) so parents are always resolved before the
// holes they might contain.
func (m *Map) embedFaces(prelim []prelimContour) error {
	type scored struct {
		prelimContour
		area float64
	}
	scoredContours := make([]scored, 0, len(prelim))
	for _, c := range prelim {
		area, err := m.ContourArea(m.MakeDart(c.anchor))
		if err != nil {
			return err
		}
		scoredContours = append(scoredContours, scored{c, area})
	}
	sort.SliceStable(scoredContours, func(i, j int) bool {
		ai, aj := math.Abs(scoredContours[i].area), math.Abs(scoredContours[j].area)
		if ai != aj {
			return ai > aj
		}
		// Tie: negative-area contour first.
		return scoredContours[i].area < scoredContours[j].area
	})

	var accepted []int // face labels of finalized finite faces, in processing order
	for _, c := range scoredContours {
		face := m.faceAt(c.faceLabel)
		if c.area > 0 {
			face.Anchors = []int{c.anchor}
			if m.image != nil {
				poly, err := m.ContourPoly(m.MakeDart(c.anchor))
				if err != nil {
					return err
				}
				m.image.fillPolygon(poly, c.faceLabel)
			}
			accepted = append(accepted, c.faceLabel)
			continue
		}

		parent, err := m.resolveHoleParent(c.anchor, accepted)
		if err != nil {
			return err
		}
		// The hole's own preliminary face label is discarded; its
		// contour becomes an extra anchor on the parent. Darts already
		// carry the preliminary label as leftFace — rewrite them onto
		// the parent so face.leftFace invariants (I4) hold.
		if err := m.rewriteContourFace(m.MakeDart(c.anchor), parent); err != nil {
			return err
		}
		m.faceAt(c.faceLabel).valid = false
		parentFace := m.faceAt(parent)
		parentFace.Anchors = append(parentFace.Anchors, c.anchor)
		parentFace.invalidateCache()
	}

	return nil
}

func (m *Map) rewriteContourFace(anchor Dart, newFace int) error {
	d := anchor
	for {
		e, err := m.edgeOf(d)
		if err != nil {
			return err
		}
		if d.Label > 0 {
			e.LeftFace = newFace
		} else {
			e.RightFace = newFace
		}
		next, err := d.NextPhi()
		if err != nil {
			return err
		}
		if next.Equal(anchor) {
			return nil
		}
		d = next
	}
}

// resolveHoleParent finds the face that should own a hole contour
// anchored at `anchor`: the label-image fast path if an image is
// present, else brute-force containment against every accepted finite
// face so far, else the infinite face.
func (m *Map) resolveHoleParent(anchor int, accepted []int) (int, error) {
	d := m.MakeDart(anchor)
	start, err := d.StartNode()
	if err != nil {
		return 0, err
	}
	startPos := m.nodeAt(start).Pos

	if m.image != nil {
		// Fast path: sample a pixel just to the left of the contour's
		// starting dart (outside the hole, inside its parent) and read
		// its (pre-LUT) label directly.
		pts := m.orientedSamples(anchor)
		if len(pts) >= 2 {
			tangent := pts[1].Sub(pts[0])
			// Left-hand normal of the tangent, nudged a fraction of a
			// pixel outward from the contour.
			normal := Vector2{X: tangent.Y, Y: -tangent.X}
			if mag := math.Sqrt(normal.SqMagnitude()); mag > 0 {
				normal = Vector2{X: normal.X / mag, Y: normal.Y / mag}
			}
			probe := startPos.Add(Vector2{X: normal.X * 0.5, Y: normal.Y * 0.5})
			x, y := int(round(probe.X)), int(round(probe.Y))
			if v, err := m.image.At(x, y); err == nil && v != pixelEdgeValue {
				return v, nil
			}
		}
	}

	// Fallback: brute-force containment test, most recently accepted
	// (hence smallest so far, by our descending-area processing order)
	// face wins first so the tightest enclosing face is picked.
	for i := len(accepted) - 1; i >= 0; i-- {
		label := accepted[i]
		poly, err := m.ContourPoly(m.MakeDart(m.faceAt(label).Anchors[0]))
		if err != nil {
			return 0, err
		}
		if pointInPolygon(poly, startPos) {
			return label, nil
		}
	}

	return InfiniteFace, nil
}
