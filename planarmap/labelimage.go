package planarmap

import "github.com/gocellmap/cellmap/label"

// LabelImage is a 2D raster of face labels: pixel p holds -1 while it
// is occupied by an edge, or the face label (possibly through lut, see
// Remap) that geometrically contains it otherwise. Invariant I5 binds:
// every pixel is -1 or resolves, through the lut, to the label of the
// face containing it.
type LabelImage struct {
	width, height int
	pix           []int      // row-major, -1 = edge pixel
	lut           *label.Set // lut.Leader(L) = current label of the face formerly known as L
}

// pixelEdgeValue marks a pixel currently occupied by an edge.
const pixelEdgeValue = -1

// newLabelImage allocates a label image of the given extent, every
// pixel initially unset (treated as belonging to the infinite face
// until edges and faces are stamped during construction).
func newLabelImage(width, height int) *LabelImage {
	li := &LabelImage{width: width, height: height, pix: make([]int, width*height)}
	for i := range li.pix {
		li.pix[i] = InfiniteFace
	}

	return li
}

// Width and Height report the image extent.
func (li *LabelImage) Width() int  { return li.width }
func (li *LabelImage) Height() int { return li.height }

func (li *LabelImage) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < li.width && y < li.height
}

func (li *LabelImage) idx(x, y int) int { return y*li.width + x }

// At returns the raw stored value at (x, y): pixelEdgeValue or a
// (pre-LUT) face label.
func (li *LabelImage) At(x, y int) (int, error) {
	if !li.inBounds(x, y) {
		return 0, ErrOutOfBounds
	}

	return li.pix[li.idx(x, y)], nil
}

// FaceLabelAt resolves the raw stored value through the LUT, returning
// the face label that currently owns pixel (x, y), or pixelEdgeValue
// if the pixel is an edge pixel.
func (li *LabelImage) FaceLabelAt(x, y int) (int, error) {
	v, err := li.At(x, y)
	if err != nil || v == pixelEdgeValue {
		return v, err
	}

	return li.Resolve(v), nil
}

// clone returns an independent copy of li.
func (li *LabelImage) clone() *LabelImage {
	c := &LabelImage{
		width:  li.width,
		height: li.height,
		pix:    append([]int(nil), li.pix...),
	}
	if li.lut != nil {
		c.lut = li.lut.Clone()
	}

	return c
}

// Resolve follows the lut from a raw stored label to its current face
// label. A label never remapped resolves to itself.
func (li *LabelImage) Resolve(raw int) int {
	if raw < 0 || li.lut == nil || raw >= li.lut.Len() {
		return raw
	}
	leader, err := li.lut.Leader(raw)
	if err != nil {
		return raw
	}

	return leader
}

// Remap records that every pixel currently resolving to `from` should
// henceforth resolve to `to`, without rewriting the raster. Used by
// euler.MergeFaces so a merge is O(1) regardless of the merged face's
// pixel area.
func (li *LabelImage) Remap(from, to int) {
	if li.lut == nil {
		li.lut = label.NewIdentity(0)
	}
	n := from
	if to > n {
		n = to
	}
	li.lut.Extend(n + 1)
	// Both from and to are now in range; Extend makes the only error
	// Relabel can return unreachable.
	_ = li.lut.Relabel(from, to)
}

// count returns the number of raw-stored pixels equal to label,
// without following the LUT (callers pass the pre-merge raw label they
// just painted with, so no resolution is needed).
func (li *LabelImage) count(label int) int {
	n := 0
	for _, v := range li.pix {
		if v == label {
			n++
		}
	}

	return n
}

func (li *LabelImage) set(x, y, v int) {
	if li.inBounds(x, y) {
		li.pix[li.idx(x, y)] = v
	}
}

// stampEdge rasterizes pl's segments with pixelEdgeValue, returning
// the pixels touched (deduplicated) so callers can restore them later.
func (li *LabelImage) stampEdge(pl *Polyline) []Pixel {
	seen := map[Pixel]bool{}
	var out []Pixel
	pts := pl.Points()
	for i := 0; i+1 < len(pts); i++ {
		for _, p := range rasterSegment(pts[i], pts[i+1]) {
			if !seen[p] {
				seen[p] = true
				out = append(out, p)
			}
		}
	}
	for _, p := range out {
		li.set(p.X, p.Y, pixelEdgeValue)
	}

	return out
}

// unstampEdge restores previously stamped edge pixels to a given
// face label (used when an edge is removed and its pixels fold back
// into the surrounding face, per euler's removeBridge/mergeEdges).
func (li *LabelImage) unstampEdge(pixels []Pixel, faceLabel int) {
	for _, p := range pixels {
		li.set(p.X, p.Y, faceLabel)
	}
}

type Pixel struct{ X, Y int }

// rasterSegment returns the integer pixels touched by the straight
// segment a→b, via a standard Bresenham walk.
func rasterSegment(a, b Vector2) []Pixel {
	x0, y0 := int(round(a.X)), int(round(a.Y))
	x1, y1 := int(round(b.X)), int(round(b.Y))

	dx, dy := abs(x1-x0), abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)

	var out []Pixel
	x, y := x0, y0
	if dx >= dy {
		errv := dx / 2
		for i := 0; i <= dx; i++ {
			out = append(out, Pixel{X: x, Y: y})
			errv -= dy
			if errv < 0 {
				y += sy
				errv += dx
			}
			x += sx
		}
	} else {
		errv := dy / 2
		for i := 0; i <= dy; i++ {
			out = append(out, Pixel{X: x, Y: y})
			errv -= dx
			if errv < 0 {
				x += sx
				errv += dy
			}
			y += sy
		}
	}

	return out
}

// fillPolygon stamps every interior pixel of the closed polygon poly
// (even-odd rule, scanline fill) with label, skipping pixels already
// marked pixelEdgeValue.
func (li *LabelImage) fillPolygon(poly []Vector2, label int) {
	if len(poly) < 3 {
		return
	}
	bb := EmptyBBox()
	for _, p := range poly {
		bb = bb.Extend(p)
	}
	yMin := int(round(bb.Min.Y))
	yMax := int(round(bb.Max.Y))
	if yMin < 0 {
		yMin = 0
	}
	if yMax >= li.height {
		yMax = li.height - 1
	}

	for y := yMin; y <= yMax; y++ {
		scanY := float64(y) + 0.5
		xs := scanlineCrossings(poly, scanY)
		for i := 0; i+1 < len(xs); i += 2 {
			x0 := int(round(xs[i]))
			x1 := int(round(xs[i+1]))
			for x := x0; x <= x1; x++ {
				if li.inBounds(x, y) && li.pix[li.idx(x, y)] != pixelEdgeValue {
					li.set(x, y, label)
				}
			}
		}
	}
}

// scanlineCrossings returns the sorted x-coordinates at which the
// closed polygon poly crosses the horizontal line y = scanY.
func scanlineCrossings(poly []Vector2, scanY float64) []float64 {
	var xs []float64
	n := len(poly)
	for i := 0; i < n; i++ {
		a := poly[i]
		b := poly[(i+1)%n]
		if (a.Y <= scanY && b.Y > scanY) || (b.Y <= scanY && a.Y > scanY) {
			t := (scanY - a.Y) / (b.Y - a.Y)
			xs = append(xs, a.X+t*(b.X-a.X))
		}
	}
	// Insertion sort: crossing counts per scanline are small.
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] > xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}

	return xs
}

// pointInPolygon reports whether p lies inside the closed polygon
// poly, via the even-odd ray-casting rule.
func pointInPolygon(poly []Vector2, p Vector2) bool {
	inside := false
	n := len(poly)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := poly[j], poly[i]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			t := (p.Y - a.Y) / (b.Y - a.Y)
			xCross := a.X + t*(b.X-a.X)
			if p.X < xCross {
				inside = !inside
			}
		}
	}

	return inside
}

func round(f float64) float64 {
	if f < 0 {
		return float64(int(f - 0.5))
	}

	return float64(int(f + 0.5))
}

func abs(i int) int {
	if i < 0 {
		return -i
	}

	return i
}

func sign(i int) int {
	switch {
	case i > 0:
		return 1
	case i < 0:
		return -1
	default:
		return 0
	}
}
