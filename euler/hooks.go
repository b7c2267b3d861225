package euler

import "github.com/gocellmap/cellmap/planarmap"

// Token identifies a previously registered hook handler, for later
// unregistration. Tokens are assigned in registration order and never
// reused within a HookSet's lifetime.
type Token uint64

type entry[T any] struct {
	token Token
	fn    T
}

// HookSet is the ordered collection of callable handlers dispatched by
// every euler operation, per spec.md §6.2 and §9's "ordered collections
// of callable handlers, not inheritance hierarchies". Each phase has
// its own registerable list; handlers run in registration order.
type HookSet struct {
	preRemoveNode    []entry[func(node int) bool]
	postRemoveNode   []entry[func(node int)]
	preMergeEdges    []entry[func(dart int) bool]
	postMergeEdges   []entry[func(survivorEdge int)]
	preRemoveBridge  []entry[func(dart int) bool]
	postRemoveBridge []entry[func(survivorFace int)]
	preMergeFaces    []entry[func(dart int) bool]
	postMergeFaces   []entry[func(survivorFace int)]
	associatePixels  []entry[func(face int, pixels []planarmap.Pixel)]

	nextToken Token
}

func (h *HookSet) newToken() Token {
	h.nextToken++

	return h.nextToken
}

// OnPreRemoveNode registers fn to run before RemoveIsolatedNode. A
// false return vetoes the operation.
func (h *HookSet) OnPreRemoveNode(fn func(node int) bool) Token {
	t := h.newToken()
	h.preRemoveNode = append(h.preRemoveNode, entry[func(int) bool]{t, fn})

	return t
}

// OnPostRemoveNode registers fn to run after a successful
// RemoveIsolatedNode.
func (h *HookSet) OnPostRemoveNode(fn func(node int)) Token {
	t := h.newToken()
	h.postRemoveNode = append(h.postRemoveNode, entry[func(int)]{t, fn})

	return t
}

// OnPreMergeEdges registers fn to run before MergeEdges.
func (h *HookSet) OnPreMergeEdges(fn func(dart int) bool) Token {
	t := h.newToken()
	h.preMergeEdges = append(h.preMergeEdges, entry[func(int) bool]{t, fn})

	return t
}

// OnPostMergeEdges registers fn to run after a successful MergeEdges,
// receiving the survivor edge's label.
func (h *HookSet) OnPostMergeEdges(fn func(survivorEdge int)) Token {
	t := h.newToken()
	h.postMergeEdges = append(h.postMergeEdges, entry[func(int)]{t, fn})

	return t
}

// OnPreRemoveBridge registers fn to run before RemoveBridge.
func (h *HookSet) OnPreRemoveBridge(fn func(dart int) bool) Token {
	t := h.newToken()
	h.preRemoveBridge = append(h.preRemoveBridge, entry[func(int) bool]{t, fn})

	return t
}

// OnPostRemoveBridge registers fn to run after a successful
// RemoveBridge, receiving the face the bridge's pixels folded into.
func (h *HookSet) OnPostRemoveBridge(fn func(survivorFace int)) Token {
	t := h.newToken()
	h.postRemoveBridge = append(h.postRemoveBridge, entry[func(int)]{t, fn})

	return t
}

// OnPreMergeFaces registers fn to run before MergeFaces.
func (h *HookSet) OnPreMergeFaces(fn func(dart int) bool) Token {
	t := h.newToken()
	h.preMergeFaces = append(h.preMergeFaces, entry[func(int) bool]{t, fn})

	return t
}

// OnPostMergeFaces registers fn to run after a successful MergeFaces,
// receiving the survivor face's label.
func (h *HookSet) OnPostMergeFaces(fn func(survivorFace int)) Token {
	t := h.newToken()
	h.postMergeFaces = append(h.postMergeFaces, entry[func(int)]{t, fn})

	return t
}

// OnAssociatePixels registers fn to run whenever an operation
// re-associates a pixel list to a face (a merge or bridge removal
// restamping edge pixels into the surrounding face).
func (h *HookSet) OnAssociatePixels(fn func(face int, pixels []planarmap.Pixel)) Token {
	t := h.newToken()
	h.associatePixels = append(h.associatePixels, entry[func(int, []planarmap.Pixel)]{t, fn})

	return t
}

// Unregister removes the handler previously registered under token,
// from whichever phase list it belongs to. It is a no-op if token is
// unknown (already unregistered, or never issued by this HookSet).
func (h *HookSet) Unregister(token Token) {
	h.preRemoveNode = removeToken(h.preRemoveNode, token)
	h.postRemoveNode = removeToken(h.postRemoveNode, token)
	h.preMergeEdges = removeToken(h.preMergeEdges, token)
	h.postMergeEdges = removeToken(h.postMergeEdges, token)
	h.preRemoveBridge = removeToken(h.preRemoveBridge, token)
	h.postRemoveBridge = removeToken(h.postRemoveBridge, token)
	h.preMergeFaces = removeToken(h.preMergeFaces, token)
	h.postMergeFaces = removeToken(h.postMergeFaces, token)
	h.associatePixels = removeToken(h.associatePixels, token)
}

func removeToken[T any](list []entry[T], token Token) []entry[T] {
	for i, e := range list {
		if e.token == token {
			return append(list[:i], list[i+1:]...)
		}
	}

	return list
}

// runPreDart dispatches an ordered []entry[func(int) bool] list over
// dart, stopping (and reporting false) at the first handler that
// vetoes.
func runPreDart(list []entry[func(int) bool], dart int) bool {
	for _, e := range list {
		if !e.fn(dart) {
			return false
		}
	}

	return true
}

func runPostInt(list []entry[func(int)], arg int) {
	for _, e := range list {
		e.fn(arg)
	}
}

func runAssociatePixels(list []entry[func(int, []planarmap.Pixel)], face int, pixels []planarmap.Pixel) {
	if len(pixels) == 0 {
		return
	}
	for _, e := range list {
		e.fn(face, pixels)
	}
}
