package label

import "errors"

// ErrOutOfRange indicates a label outside [0, N) was passed to a Set
// operation.
var ErrOutOfRange = errors.New("label: out of range")

// Set is a disjoint-set over the dense integer range [0, N). leader[i]
// holds the current representative of i's class; prev[i] holds the
// next label in the back-chain that threads i's class, or i itself
// when i ends that chain. Growing the set (Extend)
// never invalidates existing leaders.
type Set struct {
	leader []int
	prev   []int
}

// NewIdentity returns a Set of size n where every label is its own
// leader and its own back-chain root.
func NewIdentity(n int) *Set {
	s := &Set{leader: make([]int, n), prev: make([]int, n)}
	for i := 0; i < n; i++ {
		s.leader[i] = i
		s.prev[i] = i
	}

	return s
}

// Len returns the number of labels tracked by the set.
func (s *Set) Len() int { return len(s.leader) }

// Clone returns an independent copy of s.
func (s *Set) Clone() *Set {
	return &Set{
		leader: append([]int(nil), s.leader...),
		prev:   append([]int(nil), s.prev...),
	}
}

// Extend grows the set to size n, assigning identity leader/prev to
// every newly added label. It is a no-op if n <= Len().
func (s *Set) Extend(n int) {
	for i := len(s.leader); i < n; i++ {
		s.leader = append(s.leader, i)
		s.prev = append(s.prev, i)
	}
}

// Leader returns the current representative of x's class.
func (s *Set) Leader(x int) (int, error) {
	if x < 0 || x >= len(s.leader) {
		return 0, ErrOutOfRange
	}

	return s.leader[x], nil
}

// Relabel merges the class currently led by from into the class led by
// to: every former member of from's class is walked via the prev-chain
// starting at from, each visited label has its leader set to to, and
// from's chain is spliced onto the head of to's chain. After Relabel,
// leader[x] == to for every label that was a member of from's class,
// including from itself. Relabel is a no-op if from == to.
func (s *Set) Relabel(from, to int) error {
	if from < 0 || from >= len(s.leader) || to < 0 || to >= len(s.leader) {
		return ErrOutOfRange
	}
	if from == to {
		return nil
	}

	// Walk from's back-chain, repointing every visited label's leader to `to`.
	x := from
	for {
		s.leader[x] = to
		nxt := s.prev[x]
		if nxt == x {
			break
		}
		x = nxt
	}
	// x is now the root of from's back-chain (prev[x] == x); splice it
	// onto the head of to's chain so future traversals from `to` reach
	// every label merged in either direction.
	if s.prev[to] != to {
		s.prev[x] = s.prev[to]
	}
	s.prev[to] = from

	return nil
}

// MergedIterator walks L and every label that Relabel has ever folded
// into L's class, in back-chain order (most recently merged first).
// It never visits a label twice.
type MergedIterator struct {
	set  *Set
	next int
	done bool
}

// Iterate returns a MergedIterator positioned at the start of L's
// merged-member chain.
func (s *Set) Iterate(l int) (*MergedIterator, error) {
	if l < 0 || l >= len(s.leader) {
		return nil, ErrOutOfRange
	}

	return &MergedIterator{set: s, next: l}, nil
}

// Next returns the next member label of the chain and true, or (0,
// false) once every member has been visited.
func (it *MergedIterator) Next() (int, bool) {
	if it.done {
		return 0, false
	}
	cur := it.next
	nxt := it.set.prev[cur]
	if nxt == cur {
		it.done = true
	} else {
		it.next = nxt
	}

	return cur, true
}
