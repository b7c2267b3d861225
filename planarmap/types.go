package planarmap

import (
	"errors"
	"sync"

	"github.com/gocellmap/cellmap/posindex"
)

// Sentinel errors for planarmap operations. All are recoverable except
// ErrCorrupt, which comes with a latched flag on the Map (see
// Map.Corrupted) — see euler for the kernel that can raise it.
var (
	// ErrInvalidDart indicates a dart whose edge has been uninitialised.
	ErrInvalidDart = errors.New("planarmap: invalid dart")

	// ErrInvalidNode indicates a reference to a nonexistent or
	// uninitialised node label.
	ErrInvalidNode = errors.New("planarmap: invalid node")

	// ErrInvalidFace indicates a reference to a nonexistent or
	// uninitialised face label.
	ErrInvalidFace = errors.New("planarmap: invalid face")

	// ErrInfiniteFaceNoBox indicates BoundingBox() was called on the
	// infinite face (label 0), which has no bounding box.
	ErrInfiniteFaceNoBox = errors.New("planarmap: infinite face has no bounding box")

	// ErrShortPolyline indicates a polyline with fewer than two points.
	ErrShortPolyline = errors.New("planarmap: polyline needs at least 2 points")

	// ErrCorrupt indicates an invariant violation was detected
	// mid-operation; the Map must not be mutated further.
	ErrCorrupt = errors.New("planarmap: map is corrupt")

	// ErrNoImage indicates a LabelImage operation was attempted on a
	// Map constructed without an image extent.
	ErrNoImage = errors.New("planarmap: map has no label image")

	// ErrOutOfBounds indicates a pixel coordinate outside the image.
	ErrOutOfBounds = errors.New("planarmap: pixel out of image bounds")

	// ErrNoPositionIndex indicates NearestNode was called without a
	// position index attached via AttachPositionIndex.
	ErrNoPositionIndex = errors.New("planarmap: no position index attached")
)

// sentinel face-side value meaning "not yet resolved during construction".
const unresolvedFace = -1

// InfiniteFace is the reserved label of the distinguished unbounded
// face. It always exists once a Map has been constructed.
const InfiniteFace = 0

// Node is a 0-cell: a position plus the σ-orbit of darts incident at
// it, stored in counterclockwise angular order.
type Node struct {
	Label int
	Pos   Vector2

	darts []int // signed dart labels, σ-orbit order
	valid bool
}

// Darts returns a copy of the node's σ-orbit (signed dart labels, in
// counterclockwise order).
func (n *Node) Darts() []int { return append([]int(nil), n.darts...) }

// Degree returns the number of darts incident at the node.
func (n *Node) Degree() int { return len(n.darts) }

// Edge is a 1-cell: an oriented polyline between two nodes, with the
// two faces it borders resolved once the map is fully embedded.
type Edge struct {
	Label     int
	Start, End int
	Poly      *Polyline
	LeftFace  int
	RightFace int
	Protected bool

	// EdgePixels caches the label-image pixels last stamped for this
	// edge (nil if the map carries no image), so euler can unstamp and
	// restamp exactly those pixels when an edge is merged or removed
	// without rescanning the raster.
	EdgePixels []Pixel

	valid bool
}

// IsBridge reports whether e's two sides belong to the same face.
func (e *Edge) IsBridge() bool { return e.LeftFace == e.RightFace }

// IsLoop reports whether e starts and ends at the same node.
func (e *Edge) IsLoop() bool { return e.Start == e.End }

// Face is a 2-cell: a set of boundary contours (anchors), one dart per
// contour, plus lazily cached geometric properties.
type Face struct {
	Label   int
	Anchors []int // one anchor dart per boundary contour; outer first if finite

	bboxValid bool
	bbox      BBox
	areaValid bool
	area      float64

	PixelArea int // running count maintained by euler when a label image is present

	valid bool
}

// invalidateCache clears f's lazy geometric caches. Any mutating
// primitive that changes f's contour set must call this.
func (f *Face) invalidateCache() {
	f.bboxValid = false
	f.areaValid = false
}

// Map owns the node, edge, and face collections of a planar
// subdivision, indexed by dense label, plus an optional raster label
// image. A nil slot at label L means L has been uninitialised (or was
// never assigned); see planarmap's doc comment on label-indexed
// storage.
type Map struct {
	mu sync.RWMutex

	nodes []*Node
	edges []*Edge
	faces []*Face

	imageWidth, imageHeight int
	image                   *LabelImage

	posIdx     *posindex.Index
	posHandles map[int]posindex.Handle

	nextNodeLabel int
	nextEdgeLabel int
	nextFaceLabel int

	corrupted bool
}

// EdgeSpec describes one edge to be created by New: its endpoints and
// the polyline connecting them (first point must equal the start
// node's position, last point the end node's position).
type EdgeSpec struct {
	Start, End int
	Points     []Vector2
}

// Option configures a Map at construction time.
type Option func(*buildConfig)

type buildConfig struct {
	withImage       bool
	minDist         float64
	stepDist        float64
	useLabelImageLUT bool
}

func defaultBuildConfig() buildConfig {
	return buildConfig{
		minDist:  1e-6,
		stepDist: 1.0,
	}
}

// WithLabelImage requests that New allocate and populate a LabelImage,
// sized by the image width and height passed to New, during face
// embedding.
func WithLabelImage() Option {
	return func(c *buildConfig) { c.withImage = true }
}

// WithAngleTolerance overrides the minDist/stepDist pair used to
// resolve near-parallel darts at a node (see sortSigmaOrbits):
// minAngle = atan2(minDist, stepDist).
func WithAngleTolerance(minDist, stepDist float64) Option {
	return func(c *buildConfig) {
		c.minDist = minDist
		c.stepDist = stepDist
	}
}
