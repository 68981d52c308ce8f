// SPDX-License-Identifier: MIT

package hierarchy

import (
	"iter"

	"github.com/katalvlaran/lvlindex/adjacency"
	"github.com/katalvlaran/lvlindex/labels"
	"github.com/katalvlaran/lvlindex/traverse"
)

// Index is the immutable parent→child index. Build one with FromPairs,
// FromLists, FromEdges or FromMap.
type Index[T comparable] struct {
	labels *labels.Index[T]
	store  *adjacency.Store
}

// CountNodes returns the number of distinct labels, parents and children
// combined.
func (x *Index[T]) CountNodes() int { return x.labels.Len() }

// CountEdges returns the number of stored relations, repeated ones included.
func (x *Index[T]) CountEdges() int { return x.store.Edges() }

// Contains reports whether label appeared anywhere in the input.
func (x *Index[T]) Contains(label T) bool {
	_, ok := x.labels.Lookup(label)
	return ok
}

// ChildrenOf returns the children of label in layout order.
// ok is false if label is unknown; a known leaf returns an empty, non-nil
// slice. The slice is a copy owned by the caller.
// Complexity: O(1) + O(k).
func (x *Index[T]) ChildrenOf(label T) (children []T, ok bool) {
	id, ok := x.labels.Lookup(label)
	if !ok {
		return nil, false
	}
	ids := x.store.Children(id)
	children = make([]T, len(ids))
	for i, cid := range ids {
		children[i] = x.labels.MustLabel(cid)
	}
	return children, true
}

// DescendantsOf starts a breadth-first walk below roots. Unknown roots are
// dropped; with no known root the walk is empty. Roots themselves are never
// produced.
func (x *Index[T]) DescendantsOf(roots ...T) *Descendants[T] {
	return x.Walk(roots)
}

// DescendantsSeq is DescendantsOf as a range-over-func sequence of
// (depth, label).
func (x *Index[T]) DescendantsSeq(roots ...T) iter.Seq2[int, T] {
	return x.Walk(roots).Seq()
}

// Walk is DescendantsOf with traversal options such as traverse.WithMaxDepth.
func (x *Index[T]) Walk(roots []T, opts ...traverse.Option) *Descendants[T] {
	return &Descendants[T]{
		labels: x.labels,
		it:     traverse.New(x.store, x.labels.Resolve(roots), opts...),
	}
}

// Descendants is a lazy, single-use sequence of (depth, label) items.
type Descendants[T comparable] struct {
	labels *labels.Index[T]
	it     *traverse.Iterator
}

// Next returns the next descendant and its depth. ok is false once the walk
// is exhausted, and stays false.
func (d *Descendants[T]) Next() (depth int, label T, ok bool) {
	s, ok := d.it.Next()
	if !ok {
		return 0, label, false
	}
	return s.Depth, d.labels.MustLabel(s.ID), true
}

// Seq adapts the walk to a range-over-func sequence.
func (d *Descendants[T]) Seq() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for depth, id := range d.it.Seq() {
			if !yield(depth, d.labels.MustLabel(id)) {
				return
			}
		}
	}
}

// Labels drains the walk and returns the labels in visit order.
func (d *Descendants[T]) Labels() []T {
	var out []T
	for _, label := range d.Seq() {
		out = append(out, label)
	}
	return out
}

// Count drains the walk and returns how many descendants it produced.
func (d *Descendants[T]) Count() int { return d.it.Count() }

// Levels drains the walk and returns the depth of the last descendant, i.e.
// the number of levels below the roots. 0 if there were no descendants.
func (d *Descendants[T]) Levels() int {
	last, ok := d.it.Last()
	if !ok {
		return 0
	}
	return last.Depth
}
