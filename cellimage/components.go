package cellimage

import (
	"container/list"
	"errors"

	"github.com/gocellmap/cellmap/planarmap"
)

// ErrNoLargerRegion is returned by NearestLargerRegion when no pixel
// in img belongs to a region at or above minArea.
var ErrNoLargerRegion = errors.New("cellimage: no region at or above the area threshold is reachable")

// Region is one maximal set of same-label pixels found by
// ConnectedComponents, identified by its resolved face label and the
// pixel coordinates it covers.
type Region struct {
	Label  int
	Pixels []planarmap.Pixel
}

// ConnectedComponents partitions every non-edge pixel of img into
// maximal 4-connected regions of equal resolved label. A face whose
// anchors enclose disjoint areas (a hole-bearing contour split across
// the raster by a bridge, say) is reported as more than one Region
// sharing the same Label.
func ConnectedComponents(img *planarmap.LabelImage) []Region {
	w, h := img.Width(), img.Height()
	seen := make([]bool, w*h)
	idx := func(x, y int) int { return y*w + x }

	var regions []Region
	offsets := [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if seen[idx(x, y)] {
				continue
			}
			label, err := img.FaceLabelAt(x, y)
			if err != nil || label == -1 {
				seen[idx(x, y)] = true // edge pixel: not part of any region

				continue
			}
			seen[idx(x, y)] = true

			queue := []planarmap.Pixel{{X: x, Y: y}}
			region := Region{Label: label}
			for qi := 0; qi < len(queue); qi++ {
				p := queue[qi]
				region.Pixels = append(region.Pixels, p)
				for _, d := range offsets {
					nx, ny := p.X+d[0], p.Y+d[1]
					if nx < 0 || ny < 0 || nx >= w || ny >= h || seen[idx(nx, ny)] {
						continue
					}
					nl, nerr := img.FaceLabelAt(nx, ny)
					if nerr != nil || nl != label {
						continue
					}
					seen[idx(nx, ny)] = true
					queue = append(queue, planarmap.Pixel{X: nx, Y: ny})
				}
			}
			regions = append(regions, region)
		}
	}

	return regions
}

// NearestLargerRegion runs a 0-1 BFS from start: moving to a
// neighbouring pixel of the same resolved label costs 0, moving to a
// pixel of a different label costs 1. Edge pixels (label -1) belong to
// no region: a path crosses them at no cost and keeps the label of the
// region it came from. It returns the label of the
// nearest pixel (by that crossing-count metric) whose region area, per
// areaByLabel, is at or above minArea, and how many label crossings
// away it is. Used to find which neighbouring face a sliver region is
// cheapest to merge into.
func NearestLargerRegion(img *planarmap.LabelImage, areaByLabel map[int]int, start planarmap.Pixel, minArea int) (label, crossings int, err error) {
	w, h := img.Width(), img.Height()
	const inf = int(^uint(0) >> 1)
	dist := make([]int, w*h)
	lbl := make([]int, w*h)
	for i := range dist {
		dist[i] = inf
		lbl[i] = -1
	}
	idx := func(x, y int) int { return y*w + x }

	startLabel, serr := img.FaceLabelAt(start.X, start.Y)
	if serr != nil {
		return 0, 0, serr
	}
	dist[idx(start.X, start.Y)] = 0
	lbl[idx(start.X, start.Y)] = startLabel

	dq := list.New()
	dq.PushFront(start)

	offsets := [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(planarmap.Pixel)
		ui := idx(u.X, u.Y)
		uLabel := lbl[ui]

		if area, ok := areaByLabel[uLabel]; ok && area >= minArea {
			return uLabel, dist[ui], nil
		}

		for _, d := range offsets {
			vx, vy := u.X+d[0], u.Y+d[1]
			if vx < 0 || vy < 0 || vx >= w || vy >= h {
				continue
			}
			vLabel, verr := img.FaceLabelAt(vx, vy)
			if verr != nil {
				continue
			}
			if vLabel == -1 {
				vLabel = uLabel
			}
			vi := idx(vx, vy)
			step := 0
			if vLabel != uLabel {
				step = 1
			}
			nd := dist[ui] + step
			if nd < dist[vi] {
				dist[vi] = nd
				lbl[vi] = vLabel
				v := planarmap.Pixel{X: vx, Y: vy}
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	return 0, 0, ErrNoLargerRegion
}
