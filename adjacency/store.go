// SPDX-License-Identifier: MIT

package adjacency

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvlindex/labels"
)

// NodeID is re-exported so callers of this package need not import labels.
type NodeID = labels.NodeID

// MaxSlots is the largest number of slots a Store may hold. Every slot index
// and every degree must be representable as a NodeID and as an int, so the
// ceiling drops to math.MaxInt32 on 32-bit platforms.
const MaxSlots uint64 = min(math.MaxUint32, math.MaxInt)

var (
	// ErrIDSpaceExhausted indicates the graph has too many nodes and edges
	// for the fixed-width NodeID.
	ErrIDSpaceExhausted = errors.New("adjacency: node identifier space exhausted")

	// ErrLayoutMismatch indicates blocks were emitted out of Place order.
	ErrLayoutMismatch = errors.New("adjacency: emit order does not match placement")
)

// Store is the immutable flat adjacency sequence.
type Store struct {
	buf   []NodeID
	nodes int
}

// Degree returns the out-degree of id.
// Panics if id is not the offset of a block.
func (s *Store) Degree(id NodeID) int {
	return int(s.buf[id])
}

// Window returns the half-open slot range [lo, hi) holding the children of id.
// lo == hi for a leaf.
func (s *Store) Window(id NodeID) (lo, hi int) {
	lo = int(id) + 1
	return lo, lo + int(s.buf[id])
}

// At returns the identifier stored in slot i. Used together with Window by
// the traversal engine so it can scan a block without re-slicing.
func (s *Store) At(i int) NodeID {
	return s.buf[i]
}

// Children returns the child identifiers of id as a sub-slice of the store.
// The result aliases internal storage and must not be modified.
func (s *Store) Children(id NodeID) []NodeID {
	lo, hi := s.Window(id)
	if lo == hi {
		return nil
	}
	return s.buf[lo:hi:hi]
}

// Slots returns the total number of slots (nodes + edges).
func (s *Store) Slots() int { return len(s.buf) }

// Nodes returns the number of blocks in the store.
func (s *Store) Nodes() int { return s.nodes }

// Edges returns the number of child slots, counting repeated edges.
func (s *Store) Edges() int { return len(s.buf) - s.nodes }

// Layout is the two-pass writer producing a Store.
// A Layout is not safe for concurrent use.
type Layout struct {
	limit  uint64
	cursor uint64
	placed int
	buf    []NodeID
	next   int // index into placement order checked by Emit
	ids    []NodeID
}

// LayoutOption customizes a Layout.
type LayoutOption func(*Layout)

// WithSlotLimit lowers the slot ceiling below MaxSlots.
// Panics if n is zero or larger than MaxSlots.
func WithSlotLimit(n uint64) LayoutOption {
	if n == 0 || n > MaxSlots {
		panic(fmt.Sprintf("adjacency: WithSlotLimit(%d) out of range", n))
	}
	return func(l *Layout) { l.limit = n }
}

// WithNodeHint pre-sizes the placement bookkeeping for n nodes.
func WithNodeHint(n int) LayoutOption {
	return func(l *Layout) {
		if n > 0 {
			l.ids = make([]NodeID, 0, n)
		}
	}
}

// NewLayout returns an empty Layout.
func NewLayout(opts ...LayoutOption) *Layout {
	l := &Layout{limit: MaxSlots}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Place reserves a block for a node with the given out-degree and returns its
// identifier (the current cursor). The cursor then advances by 1+degree.
// Complexity: O(1).
func (l *Layout) Place(degree int) (NodeID, error) {
	if degree < 0 {
		return 0, fmt.Errorf("adjacency: negative degree %d", degree)
	}
	next := l.cursor + 1 + uint64(degree)
	if next > l.limit {
		return 0, fmt.Errorf("%w: %d slots needed after %d nodes, limit %d",
			ErrIDSpaceExhausted, next, l.placed, l.limit)
	}
	id := NodeID(l.cursor)
	l.cursor = next
	l.placed++
	l.ids = append(l.ids, id)
	return id, nil
}

// Emit writes the block of id: its degree followed by children.
// Blocks must be emitted in exactly the order they were placed, with the
// same number of children that was passed to Place.
// Complexity: O(len(children)).
func (l *Layout) Emit(id NodeID, children ...NodeID) error {
	if l.buf == nil {
		l.buf = make([]NodeID, 0, l.cursor)
	}
	if l.next >= len(l.ids) || l.ids[l.next] != id || uint64(len(l.buf)) != uint64(id) {
		return fmt.Errorf("%w: block %d at slot %d", ErrLayoutMismatch, id, len(l.buf))
	}
	// The block must end exactly where the next placed block starts.
	want := l.cursor
	if l.next+1 < len(l.ids) {
		want = uint64(l.ids[l.next+1])
	}
	if end := uint64(id) + 1 + uint64(len(children)); end != want {
		return fmt.Errorf("%w: block %d has %d children, placed with a different degree",
			ErrLayoutMismatch, id, len(children))
	}
	l.buf = append(l.buf, NodeID(len(children)))
	l.buf = append(l.buf, children...)
	l.next++
	return nil
}

// Finish seals the layout. Every placed block must have been emitted.
func (l *Layout) Finish() (*Store, error) {
	if l.next != len(l.ids) {
		return nil, fmt.Errorf("%w: %d of %d blocks emitted", ErrLayoutMismatch, l.next, len(l.ids))
	}
	buf := l.buf
	if buf == nil {
		buf = []NodeID{}
	}
	s := &Store{buf: buf, nodes: l.placed}
	l.buf, l.ids = nil, nil
	return s, nil
}

// Cursor returns the number of slots reserved so far.
func (l *Layout) Cursor() uint64 { return l.cursor }
