package euler

import (
	"math"

	"github.com/gocellmap/cellmap/planarmap"
)

// RemoveIsolatedNode uninitialises node, which must have degree 0.
// Fails with ErrNotIsolated if it has any incident darts, or with
// planarmap.ErrInvalidNode if the label does not name a live node.
func (k *Kernel) RemoveIsolatedNode(node int) error {
	n, err := k.m.Node(node)
	if err != nil {
		return err
	}
	if n.Degree() != 0 {
		return ErrNotIsolated
	}
	if !runPreDart(k.hooks.preRemoveNode, node) {
		return ErrHookCancelled
	}

	if err := k.m.UninitNode(node); err != nil {
		return err
	}
	runPostInt(k.hooks.postRemoveNode, node)

	return nil
}

// MergeEdges smooths the degree-2 node start(d), concatenating the two
// edges incident at it into one surviving edge: σ(d)'s edge, which
// keeps its label and its direction and now joins its own far end to
// the far end of d's edge through the now-removed node. Fails with ErrDegreeNotTwo if start(d) is not
// degree 2, or ErrSelfLoopMerge if both incident darts name the same
// edge.
func (k *Kernel) MergeEdges(d int) (survivorEdge int, err error) {
	dart := k.m.MakeDart(d)
	n, err := dart.StartNode()
	if err != nil {
		return 0, err
	}
	node, err := k.m.Node(n)
	if err != nil {
		return 0, err
	}
	if node.Degree() != 2 {
		return 0, ErrDegreeNotTwo
	}

	d1dart, err := dart.NextSigma(1)
	if err != nil {
		return 0, err
	}
	e1Label, e2Label := d1dart.EdgeLabel(), dart.EdgeLabel()
	if e1Label == e2Label {
		return 0, ErrSelfLoopMerge
	}

	if !runPreDart(k.hooks.preMergeEdges, d) {
		return 0, ErrHookCancelled
	}

	e1, err := k.m.Edge(e1Label)
	if err != nil {
		return 0, err
	}
	e2, err := k.m.Edge(e2Label)
	if err != nil {
		return 0, err
	}

	// caseA: n is e1's Start, so the merged edge's Start end is what
	// changes (to far(e2)); caseB: n is e1's End, so the End changes.
	caseA := e1.Start == n
	farE1 := e1.Start
	if caseA {
		farE1 = e1.End
	}
	farE2 := e2.Start
	if e2.Start == n {
		farE2 = e2.End
	}

	// segment of e2's polyline oriented n -> far(e2).
	segNToFarE2 := e2.Poly
	if e2.Start != n {
		segNToFarE2 = e2.Poly.Reversed()
	}
	// segment of e2's polyline oriented far(e2) -> n.
	segFarE2ToN := e2.Poly
	if e2.Start == n {
		segFarE2ToN = e2.Poly.Reversed()
	}

	var newStart, newEnd int
	var newPoly *planarmap.Polyline
	var newDartAtFarE2 int
	if caseA {
		newStart, newEnd = farE2, farE1
		newPoly = segFarE2ToN.Concat(e1.Poly)
		newDartAtFarE2 = e1Label
	} else {
		newStart, newEnd = farE1, farE2
		newPoly = e1.Poly.Concat(segNToFarE2)
		newDartAtFarE2 = -e1Label
	}

	if err := k.m.SetEdgeGeometry(e1Label, newStart, newEnd, newPoly); err != nil {
		return 0, k.wrapCorrupt("mergeEdges: set geometry", err)
	}
	if err := k.m.ReplaceDartInNode(farE2, -d, newDartAtFarE2); err != nil {
		return 0, k.wrapCorrupt("mergeEdges: relabel far node", err)
	}
	if err := k.m.RemoveDartFromNode(n, d); err != nil {
		return 0, k.wrapCorrupt("mergeEdges: detach node", err)
	}
	if err := k.m.RemoveDartFromNode(n, d1dart.Label); err != nil {
		return 0, k.wrapCorrupt("mergeEdges: detach node", err)
	}

	if k.m.HasImage() {
		fillFace := e1.LeftFace
		k.m.ImageUnstampEdge(e1.EdgePixels, fillFace)
		k.m.ImageUnstampEdge(e2.EdgePixels, fillFace)
		newPixels := k.m.ImageStampEdge(newPoly)
		if err := k.m.SetEdgePixels(e1Label, newPixels); err != nil {
			return 0, k.wrapCorrupt("mergeEdges: restamp", err)
		}
	}

	if err := k.m.UninitEdge(e2Label); err != nil {
		return 0, k.wrapCorrupt("mergeEdges: uninit merged edge", err)
	}
	if err := k.m.UninitNode(n); err != nil {
		return 0, k.wrapCorrupt("mergeEdges: uninit node", err)
	}

	runPostInt(k.hooks.postMergeEdges, e1Label)

	return e1Label, nil
}

// RemoveBridge removes the dangling edge edge(d), which must be a
// bridge (its two sides belong to the same face f). The bridge splits
// f's contour containing d into two contours, unless one endpoint had
// degree 1, in which case that endpoint becomes isolated and is
// removed, and the contour count is unchanged. Fails with
// ErrNotABridge if edge(d) is not a bridge.
func (k *Kernel) RemoveBridge(d int) (survivorFace int, err error) {
	dart := k.m.MakeDart(d)
	isBridge, err := dart.IsBridge()
	if err != nil {
		return 0, err
	}
	if !isBridge {
		return 0, ErrNotABridge
	}
	f, err := dart.LeftFace()
	if err != nil {
		return 0, err
	}

	if !runPreDart(k.hooks.preRemoveBridge, d) {
		return 0, ErrHookCancelled
	}

	face, err := k.m.Face(f)
	if err != nil {
		return 0, err
	}

	anchorA, err := dart.PrevSigma(1)
	if err != nil {
		return 0, err
	}
	antiAlpha, err := dart.NextAlpha()
	if err != nil {
		return 0, err
	}
	anchorB, err := antiAlpha.PrevSigma(1)
	if err != nil {
		return 0, err
	}

	oldAnchorIdx, err := findAnchorOfDart(k.m, face, d)
	if err != nil {
		return 0, k.wrapCorrupt("removeBridge: locate anchor", err)
	}

	start, err := dart.StartNode()
	if err != nil {
		return 0, err
	}
	end, err := dart.EndNode()
	if err != nil {
		return 0, err
	}
	startDegree, err := nodeDegree(k.m, start)
	if err != nil {
		return 0, err
	}
	endDegree, err := nodeDegree(k.m, end)
	if err != nil {
		return 0, err
	}

	e, err := k.m.Edge(dart.EdgeLabel())
	if err != nil {
		return 0, err
	}

	if err := k.m.RemoveDartFromNode(start, e.Label); err != nil {
		return 0, k.wrapCorrupt("removeBridge: detach start", err)
	}
	if err := k.m.RemoveDartFromNode(end, -e.Label); err != nil {
		return 0, k.wrapCorrupt("removeBridge: detach end", err)
	}

	newAnchors := make([]int, 0, len(face.Anchors)+1)
	newAnchors = append(newAnchors, face.Anchors[:oldAnchorIdx]...)
	newAnchors = append(newAnchors, face.Anchors[oldAnchorIdx+1:]...)

	bothEndpointsSurvive := startDegree > 1 && endDegree > 1
	if bothEndpointsSurvive {
		areaA, err := k.m.ContourArea(anchorA)
		if err != nil {
			return 0, err
		}
		areaB, err := k.m.ContourArea(anchorB)
		if err != nil {
			return 0, err
		}
		if math.Abs(areaA) >= math.Abs(areaB) {
			newAnchors = append(newAnchors, anchorA.Label, anchorB.Label)
		} else {
			newAnchors = append(newAnchors, anchorB.Label, anchorA.Label)
		}
	} else if startDegree > 1 {
		newAnchors = append(newAnchors, anchorA.Label)
	} else if endDegree > 1 {
		newAnchors = append(newAnchors, anchorB.Label)
	}
	// If both endpoints are isolated, the bridge's contour vanishes
	// entirely along with the edge: no replacement anchor.

	if err := k.m.SetFaceAnchors(f, newAnchors); err != nil {
		return 0, k.wrapCorrupt("removeBridge: set anchors", err)
	}

	var collected []planarmap.Pixel
	if k.m.HasImage() {
		collected = e.EdgePixels
		k.m.ImageUnstampEdge(collected, f)
	}

	if err := k.m.UninitEdge(e.Label); err != nil {
		return 0, k.wrapCorrupt("removeBridge: uninit edge", err)
	}
	if startDegree == 1 {
		if err := k.RemoveIsolatedNode(start); err != nil {
			return 0, k.wrapCorrupt("removeBridge: remove isolated start", err)
		}
	}
	if endDegree == 1 {
		if err := k.RemoveIsolatedNode(end); err != nil {
			return 0, k.wrapCorrupt("removeBridge: remove isolated end", err)
		}
	}

	runPostInt(k.hooks.postRemoveBridge, f)
	runAssociatePixels(k.hooks.associatePixels, f, collected)

	return f, nil
}

// MergeFaces removes the non-bridge edge edge(d), fusing its left and
// right faces into one survivor (the larger of the two by area,
// always preferring the infinite face as survivor when it is
// involved). Fails with ErrIsBridge if edge(d) is a bridge.
func (k *Kernel) MergeFaces(d int) (survivorFace int, err error) {
	dart := k.m.MakeDart(d)
	isBridge, err := dart.IsBridge()
	if err != nil {
		return 0, err
	}
	if isBridge {
		return 0, ErrIsBridge
	}

	left, err := dart.LeftFace()
	if err != nil {
		return 0, err
	}
	right, err := dart.RightFace()
	if err != nil {
		return 0, err
	}
	leftFace, err := k.m.Face(left)
	if err != nil {
		return 0, err
	}
	rightFace, err := k.m.Face(right)
	if err != nil {
		return 0, err
	}
	leftArea, err := k.m.Area(leftFace)
	if err != nil {
		return 0, err
	}
	rightArea, err := k.m.Area(rightFace)
	if err != nil {
		return 0, err
	}

	if right == planarmap.InfiniteFace || (left != planarmap.InfiniteFace && math.Abs(leftArea) < math.Abs(rightArea)) {
		alpha, err := dart.NextAlpha()
		if err != nil {
			return 0, err
		}
		dart = alpha
		left, right = right, left
	}

	if !runPreDart(k.hooks.preMergeFaces, d) {
		return 0, ErrHookCancelled
	}

	survivor, merged := left, right
	e, err := k.m.Edge(dart.EdgeLabel())
	if err != nil {
		return 0, err
	}
	mergedFace, err := k.m.Face(merged)
	if err != nil {
		return 0, err
	}

	// Relabel every dart of every anchor-orbit of merged onto survivor.
	for _, anchor := range mergedFace.Anchors {
		if err := relabelContourFace(k.m, k.m.MakeDart(anchor), survivor); err != nil {
			return 0, k.wrapCorrupt("mergeFaces: relabel contour", err)
		}
	}

	survivorFaceObj, err := k.m.Face(survivor)
	if err != nil {
		return 0, err
	}
	// Drop survivor's own anchor that referenced e (if any — the two
	// faces may have shared only e, in which case survivor's contour
	// vanishes entirely) and append every one of merged's anchors.
	newSurvivorAnchors, _ := replaceAnchorNotReferencingEdge(k.m, survivorFaceObj.Anchors, e.Label)
	newSurvivorAnchors = append(newSurvivorAnchors, mergedFace.Anchors...)
	if err := k.m.SetFaceAnchors(survivor, newSurvivorAnchors); err != nil {
		return 0, k.wrapCorrupt("mergeFaces: set anchors", err)
	}

	var collected []planarmap.Pixel
	if k.m.HasImage() {
		k.m.ImageRemapFace(merged, survivor)
		collected = e.EdgePixels
		k.m.ImageUnstampEdge(collected, survivor)
	}

	startNode, err := dart.StartNode()
	if err != nil {
		return 0, err
	}
	endNode, err := dart.EndNode()
	if err != nil {
		return 0, err
	}
	if err := k.m.RemoveDartFromNode(startNode, dart.Label); err != nil {
		return 0, k.wrapCorrupt("mergeFaces: detach start", err)
	}
	if err := k.m.RemoveDartFromNode(endNode, -dart.Label); err != nil {
		return 0, k.wrapCorrupt("mergeFaces: detach end", err)
	}

	if err := k.m.AbsorbFaceGeometry(survivor, merged); err != nil {
		return 0, k.wrapCorrupt("mergeFaces: absorb geometry", err)
	}

	if err := k.m.UninitEdge(e.Label); err != nil {
		return 0, k.wrapCorrupt("mergeFaces: uninit edge", err)
	}
	if err := k.m.UninitFace(merged); err != nil {
		return 0, k.wrapCorrupt("mergeFaces: uninit merged face", err)
	}

	startDeg, err := nodeDegree(k.m, startNode)
	if err != nil {
		return 0, err
	}
	if startDeg == 0 {
		if err := k.RemoveIsolatedNode(startNode); err != nil {
			return 0, k.wrapCorrupt("mergeFaces: remove isolated start", err)
		}
	}
	endDeg, err := nodeDegree(k.m, endNode)
	if err != nil {
		return 0, err
	}
	if endDeg == 0 {
		if err := k.RemoveIsolatedNode(endNode); err != nil {
			return 0, k.wrapCorrupt("mergeFaces: remove isolated end", err)
		}
	}

	runPostInt(k.hooks.postMergeFaces, survivor)
	runAssociatePixels(k.hooks.associatePixels, survivor, collected)

	return survivor, nil
}

func nodeDegree(m *planarmap.Map, label int) (int, error) {
	n, err := m.Node(label)
	if err != nil {
		return 0, err
	}

	return n.Degree(), nil
}

func findAnchorOfDart(m *planarmap.Map, f *planarmap.Face, dart int) (int, error) {
	for i, anchor := range f.Anchors {
		ok, err := anchorSharesContour(m, anchor, dart)
		if err != nil {
			return 0, err
		}
		if ok {
			return i, nil
		}
	}

	return 0, planarmap.ErrCorrupt
}

func anchorSharesContour(m *planarmap.Map, anchor, dart int) (bool, error) {
	d := m.MakeDart(anchor)
	start := d
	for {
		if d.Label == dart {
			return true, nil
		}
		next, err := d.NextPhi()
		if err != nil {
			return false, err
		}
		if next.Equal(start) {
			return false, nil
		}
		d = next
	}
}

func relabelContourFace(m *planarmap.Map, anchor planarmap.Dart, newFace int) error {
	d := anchor
	for {
		edgeLabel := d.EdgeLabel()
		isLeft := d.Label > 0
		if err := m.SetEdgeFace(edgeLabel, isLeft, newFace); err != nil {
			return err
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

// replaceAnchorNotReferencingEdge drops the first anchor in anchors
// whose φ-orbit contains a dart of edgeLabel, returning the remaining
// anchors and whether one was dropped.
func replaceAnchorNotReferencingEdge(m *planarmap.Map, anchors []int, edgeLabel int) ([]int, bool) {
	out := make([]int, 0, len(anchors))
	dropped := false
	for _, a := range anchors {
		refs, err := anchorReferencesEdge(m, a, edgeLabel)
		if err == nil && refs && !dropped {
			dropped = true

			continue
		}
		out = append(out, a)
	}

	return out, dropped
}

func anchorReferencesEdge(m *planarmap.Map, anchor, edgeLabel int) (bool, error) {
	d := m.MakeDart(anchor)
	start := d
	for {
		if d.EdgeLabel() == edgeLabel {
			return true, nil
		}
		next, err := d.NextPhi()
		if err != nil {
			return false, err
		}
		if next.Equal(start) {
			return false, nil
		}
		d = next
	}
}
