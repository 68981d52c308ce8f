// SPDX-License-Identifier: MIT

package traverse

import (
	"iter"

	"github.com/katalvlaran/lvlindex/adjacency"
)

// Iterator is a lazy multi-source BFS. It is single-use and not safe for
// concurrent use; create one per traversal.
type Iterator struct {
	store *adjacency.Store
	opts  Options

	// order is the visited set in insertion order and also the frontier
	// queue; depth[i] is the BFS depth of order[i].
	order []adjacency.NodeID
	depth []int
	seen  map[adjacency.NodeID]struct{}

	cursor int // next entry of order to expand
	level  int // depth of the node whose window is loaded
	lo, hi int // unconsumed child window in the store
	done   bool
}

// New seeds a traversal with roots. Duplicate roots collapse into one.
// The store must outlive the iterator.
func New(store *adjacency.Store, roots []adjacency.NodeID, opts ...Option) *Iterator {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	capacity := o.Capacity
	if capacity < len(roots) {
		capacity = len(roots)
	}

	it := &Iterator{
		store: store,
		opts:  o,
		order: make([]adjacency.NodeID, 0, capacity),
		depth: make([]int, 0, capacity),
		seen:  make(map[adjacency.NodeID]struct{}, capacity),
	}
	for _, id := range roots {
		it.insert(id, 0)
	}
	return it
}

// insert adds id to the visited set. It reports false if id was already seen.
func (it *Iterator) insert(id adjacency.NodeID, d int) bool {
	if _, ok := it.seen[id]; ok {
		return false
	}
	it.seen[id] = struct{}{}
	it.order = append(it.order, id)
	it.depth = append(it.depth, d)
	return true
}

// Next returns the next discovered node. Once it returns false it keeps
// returning false.
func (it *Iterator) Next() (Step, bool) {
	for !it.done {
		// Expanding: scan the rest of the current window.
		for it.lo < it.hi {
			id := it.store.At(it.lo)
			it.lo++
			if it.insert(id, it.level+1) {
				return Step{ID: id, Depth: it.level + 1}, true
			}
		}

		// Advance-frontier: the visited set in insertion order is the queue.
		if it.cursor >= len(it.order) {
			it.finish()
			break
		}
		id, d := it.order[it.cursor], it.depth[it.cursor]
		it.cursor++
		if it.opts.MaxDepth > 0 && d >= it.opts.MaxDepth {
			// Depths are non-decreasing along order, so nothing left expands.
			it.finish()
			break
		}
		it.level = d
		it.lo, it.hi = it.store.Window(id)
	}
	return Step{}, false
}

// finish moves the iterator into its terminal state and drops the visited set.
func (it *Iterator) finish() {
	it.done = true
	it.lo, it.hi = 0, 0
	it.seen = nil
}

// Visited returns how many nodes (roots included) have been discovered so far.
func (it *Iterator) Visited() int { return len(it.order) }

// Seq adapts the iterator to a range-over-func sequence of (depth, id).
// Breaking out of the loop leaves the iterator resumable.
func (it *Iterator) Seq() iter.Seq2[int, adjacency.NodeID] {
	return func(yield func(int, adjacency.NodeID) bool) {
		for {
			s, ok := it.Next()
			if !ok || !yield(s.Depth, s.ID) {
				return
			}
		}
	}
}

// Count drains the iterator and returns the number of steps produced.
func (it *Iterator) Count() int {
	n := 0
	for _, ok := it.Next(); ok; _, ok = it.Next() {
		n++
	}
	return n
}

// Last drains the iterator and returns the final step, which carries the
// greatest depth. ok is false if nothing was produced.
func (it *Iterator) Last() (last Step, ok bool) {
	for s, more := it.Next(); more; s, more = it.Next() {
		last, ok = s, true
	}
	return last, ok
}
