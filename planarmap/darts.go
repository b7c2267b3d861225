package planarmap

// Dart is an oriented half-edge: a nonzero signed integer whose
// magnitude names an edge and whose sign selects an orientation (+ =
// the edge's polyline order start→end, - = reverse), bound to the Map
// instance it navigates. Darts are values, never owning references;
// they carry their Map only to resolve navigation and equality.
type Dart struct {
	m     *Map
	Label int
}

// Equal reports whether d and other name the same oriented half-edge
// on the same Map instance.
func (d Dart) Equal(other Dart) bool {
	return d.m == other.m && d.Label == other.Label
}

// EdgeLabel returns the magnitude of d's signed label.
func (d Dart) EdgeLabel() int {
	if d.Label < 0 {
		return -d.Label
	}

	return d.Label
}

// Sign returns +1 or -1.
func (d Dart) Sign() int {
	if d.Label < 0 {
		return -1
	}

	return 1
}

func (m *Map) edgeOf(d Dart) (*Edge, error) {
	if d.m != m || d.Label == 0 {
		return nil, ErrInvalidDart
	}
	e := m.edgeAt(d.EdgeLabel())
	if e == nil || !e.valid {
		return nil, ErrInvalidDart
	}

	return e, nil
}

func (m *Map) edgeAt(label int) *Edge {
	if label <= 0 || label >= len(m.edges) {
		return nil
	}

	return m.edges[label]
}

func (m *Map) nodeAt(label int) *Node {
	if label <= 0 || label >= len(m.nodes) {
		return nil
	}

	return m.nodes[label]
}

func (m *Map) faceAt(label int) *Face {
	if label < 0 || label >= len(m.faces) {
		return nil
	}

	return m.faces[label]
}

// MakeDart returns the Dart bound to m with the given nonzero signed
// label. It does not validate that the dart's edge currently exists;
// validity is checked lazily by navigation and query methods.
func (m *Map) MakeDart(signedLabel int) Dart {
	return Dart{m: m, Label: signedLabel}
}

// NextAlpha returns the opposite dart on the same edge: α(d).
func (d Dart) NextAlpha() (Dart, error) {
	if _, err := d.m.edgeOf(d); err != nil {
		return Dart{}, err
	}

	return Dart{m: d.m, Label: -d.Label}, nil
}

// StartNode returns the label of d's start node.
func (d Dart) StartNode() (int, error) {
	e, err := d.m.edgeOf(d)
	if err != nil {
		return 0, err
	}
	if d.Label > 0 {
		return e.Start, nil
	}

	return e.End, nil
}

// EndNode returns the label of d's end node (start of α(d)).
func (d Dart) EndNode() (int, error) {
	e, err := d.m.edgeOf(d)
	if err != nil {
		return 0, err
	}
	if d.Label > 0 {
		return e.End, nil
	}

	return e.Start, nil
}

// NextSigma rotates d by k positions within start(d)'s σ-orbit:
// σ(d, k). k may be negative.
func (d Dart) NextSigma(k int) (Dart, error) {
	e, err := d.m.edgeOf(d)
	if err != nil {
		return Dart{}, err
	}
	var startLabel int
	if d.Label > 0 {
		startLabel = e.Start
	} else {
		startLabel = e.End
	}
	n := d.m.nodeAt(startLabel)
	if n == nil || !n.valid || len(n.darts) == 0 {
		return Dart{}, ErrInvalidDart
	}
	pos := -1
	for i, dl := range n.darts {
		if dl == d.Label {
			pos = i
			break
		}
	}
	if pos < 0 {
		return Dart{}, ErrCorrupt
	}
	sz := len(n.darts)
	next := ((pos+k)%sz + sz) % sz

	return Dart{m: d.m, Label: n.darts[next]}, nil
}

// PrevSigma rotates d by -k positions: σ(d, -k).
func (d Dart) PrevSigma(k int) (Dart, error) {
	return d.NextSigma(-k)
}

// NextPhi traces one step forward around d's left face: φ(d) =
// σ(α(d), -1).
func (d Dart) NextPhi() (Dart, error) {
	a, err := d.NextAlpha()
	if err != nil {
		return Dart{}, err
	}

	return a.PrevSigma(1)
}

// PrevPhi is the inverse of NextPhi: σ(d, 1) then α.
func (d Dart) PrevPhi() (Dart, error) {
	s, err := d.NextSigma(1)
	if err != nil {
		return Dart{}, err
	}

	return s.NextAlpha()
}

// LeftFace returns the label of the face to d's left.
func (d Dart) LeftFace() (int, error) {
	e, err := d.m.edgeOf(d)
	if err != nil {
		return 0, err
	}
	if d.Label > 0 {
		return e.LeftFace, nil
	}

	return e.RightFace, nil
}

// RightFace returns the label of the face to d's right: the left face
// of α(d).
func (d Dart) RightFace() (int, error) {
	a, err := d.NextAlpha()
	if err != nil {
		return 0, err
	}

	return a.LeftFace()
}

// IsBridge reports whether d's edge has the same face on both sides.
func (d Dart) IsBridge() (bool, error) {
	e, err := d.m.edgeOf(d)
	if err != nil {
		return false, err
	}

	return e.IsBridge(), nil
}

// IsLoop reports whether d's edge starts and ends at the same node.
func (d Dart) IsLoop() (bool, error) {
	e, err := d.m.edgeOf(d)
	if err != nil {
		return false, err
	}

	return e.IsLoop(), nil
}

// Polyline returns d's edge's polyline, oriented from start(d) to
// end(d): the edge's own polyline if d.Label > 0, reversed otherwise.
func (d Dart) Polyline() (*Polyline, error) {
	e, err := d.m.edgeOf(d)
	if err != nil {
		return nil, err
	}
	if d.Label > 0 {
		return e.Poly, nil
	}

	return e.Poly.Reversed(), nil
}
