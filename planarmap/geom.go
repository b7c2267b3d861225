package planarmap

import "math"

// Vector2 is a pair of floating-point coordinates.
type Vector2 struct {
	X, Y float64
}

// Add returns v + other.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns v - other.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Dot returns the dot product of v and other.
func (v Vector2) Dot(other Vector2) float64 {
	return v.X*other.X + v.Y*other.Y
}

// SqMagnitude returns v's squared Euclidean length.
func (v Vector2) SqMagnitude() float64 {
	return v.X*v.X + v.Y*v.Y
}

// BBox is an axis-aligned bounding box. A zero-value BBox is not a
// valid box; use EmptyBBox and Extend, or NewBBox, to build one.
type BBox struct {
	Min, Max Vector2
	defined  bool
}

// EmptyBBox returns a BBox with no points in it yet.
func EmptyBBox() BBox {
	return BBox{
		Min: Vector2{X: math.Inf(1), Y: math.Inf(1)},
		Max: Vector2{X: math.Inf(-1), Y: math.Inf(-1)},
	}
}

// Defined reports whether Extend has been called at least once.
func (b BBox) Defined() bool { return b.defined }

// Extend grows b to also cover p.
func (b BBox) Extend(p Vector2) BBox {
	b.defined = true
	if p.X < b.Min.X {
		b.Min.X = p.X
	}
	if p.Y < b.Min.Y {
		b.Min.Y = p.Y
	}
	if p.X > b.Max.X {
		b.Max.X = p.X
	}
	if p.Y > b.Max.Y {
		b.Max.Y = p.Y
	}

	return b
}

// Union returns the smallest BBox covering both a and b. An undefined
// operand is simply ignored.
func Union(a, b BBox) BBox {
	if !a.defined {
		return b
	}
	if !b.defined {
		return a
	}
	out := a
	out = out.Extend(b.Min)
	out = out.Extend(b.Max)

	return out
}

// Contains reports whether p lies within the closed box.
func (b BBox) Contains(p Vector2) bool {
	return b.defined && p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Polyline is an ordered sequence of at least two points, carrying a
// cached bounding box and a cached signed partial area.
type Polyline struct {
	pts  []Vector2
	bbox BBox
	area float64 // sum of trapezoid contributions; see PartialArea
}

// NewPolyline builds a Polyline from pts, which must contain at least
// two points. pts is copied; the caller's slice is not retained.
func NewPolyline(pts []Vector2) (*Polyline, error) {
	if len(pts) < 2 {
		return nil, ErrShortPolyline
	}
	pl := &Polyline{pts: append([]Vector2(nil), pts...)}
	pl.recompute()

	return pl, nil
}

func (pl *Polyline) recompute() {
	bb := EmptyBBox()
	var area float64
	for i, p := range pl.pts {
		bb = bb.Extend(p)
		if i+1 < len(pl.pts) {
			q := pl.pts[i+1]
			area += (q.X - p.X) * (p.Y + q.Y)
		}
	}
	pl.bbox = bb
	pl.area = area / 2
}

// Points returns the polyline's points. The returned slice must not be
// mutated by the caller.
func (pl *Polyline) Points() []Vector2 { return pl.pts }

// clonePolyline returns an independent copy of pl, or nil if pl is nil.
func (pl *Polyline) clonePolyline() *Polyline {
	if pl == nil {
		return nil
	}

	return &Polyline{pts: append([]Vector2(nil), pl.pts...), bbox: pl.bbox, area: pl.area}
}

// BoundingBox returns the cached axis-aligned bounding box.
func (pl *Polyline) BoundingBox() BBox { return pl.bbox }

// PartialArea returns the (open) polyline's signed trapezoid-sum area
// contribution: half the sum, over consecutive point pairs p, q, of
// (q.X-p.X)*(p.Y+q.Y). Closed into a full contour alongside the other
// darts of a φ-orbit, these partial sums add up to the contour's
// signed area.
func (pl *Polyline) PartialArea() float64 { return pl.area }

// Reversed returns a new Polyline with points in reverse order.
func (pl *Polyline) Reversed() *Polyline {
	n := len(pl.pts)
	rev := make([]Vector2, n)
	for i, p := range pl.pts {
		rev[n-1-i] = p
	}
	out := &Polyline{pts: rev}
	out.recompute()

	return out
}

// Concat returns a new Polyline formed by appending other's points
// after pl's, dropping the duplicated shared point at the junction
// (pl's last point is assumed equal to other's first point).
func (pl *Polyline) Concat(other *Polyline) *Polyline {
	out := make([]Vector2, 0, len(pl.pts)+len(other.pts)-1)
	out = append(out, pl.pts...)
	out = append(out, other.pts[1:]...)
	merged := &Polyline{pts: out}
	merged.recompute()

	return merged
}
