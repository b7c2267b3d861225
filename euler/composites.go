package euler

// RemoveEdge removes edge(d) by dispatching to RemoveBridge when it is
// a bridge, or MergeFaces otherwise, returning the label of whichever
// face the removal's pixels and contours folded into.
func (k *Kernel) RemoveEdge(d int) (survivorFace int, err error) {
	dart := k.m.MakeDart(d)
	isBridge, err := dart.IsBridge()
	if err != nil {
		return 0, err
	}
	if isBridge {
		return k.RemoveBridge(d)
	}

	return k.MergeFaces(d)
}

// RemoveEdgeWithEnds removes edge(d) via RemoveEdge, then removes
// either endpoint that ends up isolated as a result. Endpoint labels
// are cached before the removal since RemoveEdge may itself have
// already uninitialised one or both (RemoveBridge and MergeFaces both
// remove newly-isolated endpoints internally); the follow-up check is
// therefore a defensive no-op in the common case and only fires when
// the underlying primitive left an endpoint at degree 0 without
// removing it.
func (k *Kernel) RemoveEdgeWithEnds(d int) (survivorFace int, err error) {
	dart := k.m.MakeDart(d)
	start, err := dart.StartNode()
	if err != nil {
		return 0, err
	}
	end, err := dart.EndNode()
	if err != nil {
		return 0, err
	}

	survivorFace, err = k.RemoveEdge(d)
	if err != nil {
		return 0, err
	}

	for _, endpoint := range []int{start, end} {
		if n, nerr := k.m.Node(endpoint); nerr == nil && n.Degree() == 0 {
			if rerr := k.RemoveIsolatedNode(endpoint); rerr != nil {
				return survivorFace, rerr
			}
		}
	}

	return survivorFace, nil
}
