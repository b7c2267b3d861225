package posindex

import (
	"errors"
	"math"
	"sync"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"
)

// ErrNotFound is the empty-result sentinel returned by Nearest when no
// entry qualifies, and by Erase when the handle is unknown.
var ErrNotFound = errors.New("posindex: not found")

// Point is a 2D position. It is a standalone type (rather than an
// import of planarmap.Vector2) so this package has no dependency on
// the subdivision it indexes.
type Point struct {
	X, Y float64
}

func sqDist(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y

	return dx*dx + dy*dy
}

// Handle identifies a previously inserted entry for later removal.
// Handles are assigned in insertion order and never reused, which is
// what lets Nearest break distance ties by "earliest inserted wins".
type Handle uint64

type entry struct {
	id    Handle
	pos   Point
	label int
}

// Index is a sorted multimap from position to integer label, keyed on
// the x-coordinate. All methods are safe for concurrent use.
type Index struct {
	mu     sync.RWMutex
	tree   *redblacktree.Tree // float64 x -> []entry, sorted ascending by x
	byID   map[Handle]float64 // handle -> owning bucket's x-key, for Erase
	nextID Handle
}

// New returns an empty Index.
func New() *Index {
	return &Index{
		tree: redblacktree.NewWith(utils.Float64Comparator),
		byID: make(map[Handle]float64),
	}
}

// Insert records p as associated with label and returns a Handle that
// can later be passed to Erase. Duplicate positions and duplicate
// labels are both permitted.
func (idx *Index) Insert(p Point, label int) Handle {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	id := idx.nextID
	idx.nextID++

	var bucket []entry
	if v, found := idx.tree.Get(p.X); found {
		bucket = v.([]entry)
	}
	bucket = append(bucket, entry{id: id, pos: p, label: label})
	idx.tree.Put(p.X, bucket)
	idx.byID[id] = p.X

	return id
}

// Erase removes the entry identified by h. It fails with ErrNotFound
// if h is unknown (already erased, or never returned by Insert).
func (idx *Index) Erase(h Handle) error {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	x, ok := idx.byID[h]
	if !ok {
		return ErrNotFound
	}
	delete(idx.byID, h)

	v, found := idx.tree.Get(x)
	if !found {
		return ErrNotFound
	}
	bucket := v.([]entry)
	for i, e := range bucket {
		if e.id == h {
			bucket = append(bucket[:i], bucket[i+1:]...)
			break
		}
	}
	if len(bucket) == 0 {
		idx.tree.Remove(x)
	} else {
		idx.tree.Put(x, bucket)
	}

	return nil
}

// Len returns the number of entries currently indexed.
func (idx *Index) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return len(idx.byID)
}

// Nearest returns the label whose position is closest to p, among
// entries whose squared distance to p does not exceed rMax2. Ties are
// broken by insertion order (the earliest-inserted entry wins). It
// fails with ErrNotFound if no entry qualifies.
//
// The search starts at the bucket lower_bound(p.X) and walks both
// directions via repeated Floor/Ceiling probes, pruning a direction
// once (x-p.X)^2 exceeds rMax2 — the bound only grows tighter as a
// closer candidate is found, but we keep rMax2 fixed to match the
// contract of "closest within rMax2", not "closest found so far".
func (idx *Index) Nearest(p Point, rMax2 float64) (label int, pos Point, err error) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	var (
		bestSq    = math.Inf(1)
		bestEntry entry
		found     bool
	)

	consider := func(bucket []entry) {
		for _, e := range bucket {
			d := sqDist(p, e.pos)
			if d > rMax2 {
				continue
			}
			if !found || d < bestSq || (d == bestSq && e.id < bestEntry.id) {
				bestSq = d
				bestEntry = e
				found = true
			}
		}
	}

	// Walk leftward (x <= p.X) starting at the floor of p.X.
	key := p.X
	for {
		node, ok := idx.tree.Floor(key)
		if !ok {
			break
		}
		x := node.Key.(float64)
		if dx := x - p.X; dx*dx > rMax2 {
			break
		}
		consider(node.Value.([]entry))
		key = math.Nextafter(x, math.Inf(-1))
	}

	// Walk rightward (x > p.X) starting strictly after p.X.
	key = math.Nextafter(p.X, math.Inf(1))
	for {
		node, ok := idx.tree.Ceiling(key)
		if !ok {
			break
		}
		x := node.Key.(float64)
		if dx := x - p.X; dx*dx > rMax2 {
			break
		}
		consider(node.Value.([]entry))
		key = math.Nextafter(x, math.Inf(1))
	}

	if !found {
		return 0, Point{}, ErrNotFound
	}

	return bestEntry.label, bestEntry.pos, nil
}
