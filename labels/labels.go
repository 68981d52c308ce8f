// SPDX-License-Identifier: MIT

package labels

import (
	"errors"
	"fmt"
)

// Sentinel errors for label assignment.
var (
	// ErrDuplicateLabel indicates a label was assigned an identifier twice.
	ErrDuplicateLabel = errors.New("labels: label already assigned")

	// ErrDuplicateID indicates an identifier was handed out to two labels.
	ErrDuplicateID = errors.New("labels: identifier already assigned")

	// ErrFrozen indicates Assign was called on a builder that was already frozen.
	ErrFrozen = errors.New("labels: builder is frozen")
)

// NodeID is the dense identifier of a node. It is also the offset of the
// node's block inside adjacency.Store.
type NodeID = uint32

// Builder accumulates label↔identifier pairs during index construction.
// A Builder is not safe for concurrent use.
type Builder[T comparable] struct {
	byLabel map[T]NodeID
	byID    map[NodeID]T
	frozen  bool
}

// NewBuilder returns a Builder pre-sized for capacity labels.
// A negative capacity is treated as zero.
func NewBuilder[T comparable](capacity int) *Builder[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Builder[T]{
		byLabel: make(map[T]NodeID, capacity),
		byID:    make(map[NodeID]T, capacity),
	}
}

// Assign records label ↔ id in both directions.
// Complexity: O(1) average.
func (b *Builder[T]) Assign(label T, id NodeID) error {
	if b.frozen {
		return ErrFrozen
	}
	if prev, ok := b.byLabel[label]; ok {
		return fmt.Errorf("%w: %v (id %d)", ErrDuplicateLabel, label, prev)
	}
	if prev, ok := b.byID[id]; ok {
		return fmt.Errorf("%w: %d (label %v)", ErrDuplicateID, id, prev)
	}
	b.byLabel[label] = id
	b.byID[id] = label
	return nil
}

// Lookup resolves a label while the builder is still open. The hierarchy
// builder needs this to resolve children before freezing.
func (b *Builder[T]) Lookup(label T) (NodeID, bool) {
	id, ok := b.byLabel[label]
	return id, ok
}

// Len reports how many labels have been assigned so far.
func (b *Builder[T]) Len() int { return len(b.byLabel) }

// Freeze closes the builder and returns the immutable Index. Further calls
// to Assign fail with ErrFrozen.
func (b *Builder[T]) Freeze() *Index[T] {
	b.frozen = true
	return &Index[T]{byLabel: b.byLabel, byID: b.byID}
}

// Index is the immutable bidirectional label map.
type Index[T comparable] struct {
	byLabel map[T]NodeID
	byID    map[NodeID]T
}

// Lookup returns the identifier of label, or false if label is unknown.
func (x *Index[T]) Lookup(label T) (NodeID, bool) {
	id, ok := x.byLabel[label]
	return id, ok
}

// Label returns the label behind id, or false if id was never assigned.
func (x *Index[T]) Label(id NodeID) (T, bool) {
	label, ok := x.byID[id]
	return label, ok
}

// MustLabel is Label for identifiers read back from the adjacency store,
// where an unknown id means the index is corrupt.
func (x *Index[T]) MustLabel(id NodeID) T {
	label, ok := x.byID[id]
	if !ok {
		panic(fmt.Sprintf("labels: unknown node id %d", id))
	}
	return label
}

// Len returns the number of distinct labels.
func (x *Index[T]) Len() int { return len(x.byLabel) }

// Resolve maps labels to identifiers in order, silently dropping unknown ones.
// The returned slice is freshly allocated.
func (x *Index[T]) Resolve(labels []T) []NodeID {
	ids := make([]NodeID, 0, len(labels))
	for _, l := range labels {
		if id, ok := x.byLabel[l]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}
