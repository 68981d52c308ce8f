// SPDX-License-Identifier: MIT

package hierarchy

import (
	"cmp"
	"context"
	"fmt"
	"iter"
	"log/slog"
	"maps"
	"slices"

	"github.com/katalvlaran/lvlindex/adjacency"
	"github.com/katalvlaran/lvlindex/labels"
)

// Edge is one parent→child relation.
type Edge[T comparable] struct {
	Parent T
	Child  T
}

// FromPairs builds an Index from a sequence of (parent, child) relations.
// Complexity: O(V + E).
func FromPairs[T comparable](pairs iter.Seq2[T, T], opts ...Option) (*Index[T], error) {
	cfg := resolve(opts)
	agg := newAggregator[T](cfg)
	for parent, child := range pairs {
		agg.add(parent, child)
	}
	return agg.build(cfg)
}

// FromLists builds an Index from a sequence of (parent, children) relations.
// A parent listed with no children still becomes a node.
// Complexity: O(V + E).
func FromLists[T comparable](lists iter.Seq2[T, []T], opts ...Option) (*Index[T], error) {
	cfg := resolve(opts)
	agg := newAggregator[T](cfg)
	for parent, children := range lists {
		agg.node(parent)
		for _, child := range children {
			agg.add(parent, child)
		}
	}
	return agg.build(cfg)
}

// FromEdges is FromPairs over a slice.
func FromEdges[T comparable](edges []Edge[T], opts ...Option) (*Index[T], error) {
	return FromPairs[T](func(yield func(T, T) bool) {
		for _, e := range edges {
			if !yield(e.Parent, e.Child) {
				return
			}
		}
	}, opts...)
}

// FromMap is FromLists over a map. Parents are visited in sorted order so the
// resulting identifiers do not depend on map iteration order.
func FromMap[T cmp.Ordered](m map[T][]T, opts ...Option) (*Index[T], error) {
	keys := slices.Sorted(maps.Keys(m))
	return FromLists[T](func(yield func(T, []T) bool) {
		for _, k := range keys {
			if !yield(k, m[k]) {
				return
			}
		}
	}, opts...)
}

func resolve(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// edgeKey identifies a relation for WithDedupEdges.
type edgeKey[T comparable] struct {
	parent, child T
}

// aggregator collects relations per parent. Labels are kept in first-seen
// order; that order drives both layout passes.
type aggregator[T comparable] struct {
	pos      map[T]int
	keys     []T
	children [][]T
	edges    int
	seen     map[edgeKey[T]]struct{} // nil unless dedup
}

func newAggregator[T comparable](cfg config) *aggregator[T] {
	a := &aggregator[T]{
		pos:      make(map[T]int, cfg.capacity),
		keys:     make([]T, 0, cfg.capacity),
		children: make([][]T, 0, cfg.capacity),
	}
	if cfg.dedup {
		a.seen = make(map[edgeKey[T]]struct{}, cfg.capacity)
	}
	return a
}

// node returns the position of label, registering it with no children if new.
func (a *aggregator[T]) node(label T) int {
	if i, ok := a.pos[label]; ok {
		return i
	}
	i := len(a.keys)
	a.pos[label] = i
	a.keys = append(a.keys, label)
	a.children = append(a.children, nil)
	return i
}

// add records parent→child and makes sure child is a node of its own.
func (a *aggregator[T]) add(parent, child T) {
	p := a.node(parent)
	a.node(child)
	if a.seen != nil {
		k := edgeKey[T]{parent, child}
		if _, dup := a.seen[k]; dup {
			return
		}
		a.seen[k] = struct{}{}
	}
	a.children[p] = append(a.children[p], child)
	a.edges++
}

// build runs the two layout passes and freezes the label maps.
func (a *aggregator[T]) build(cfg config) (*Index[T], error) {
	layout := adjacency.NewLayout(
		adjacency.WithNodeHint(len(a.keys)),
		adjacency.WithSlotLimit(cfg.slotLimit),
	)
	lb := labels.NewBuilder[T](len(a.keys))

	// Pass 1: identifier = running cursor, advanced by 1+degree.
	ids := make([]labels.NodeID, len(a.keys))
	for i, label := range a.keys {
		id, err := layout.Place(len(a.children[i]))
		if err != nil {
			return nil, fmt.Errorf("hierarchy: placing %d nodes, %d edges: %w", len(a.keys), a.edges, err)
		}
		if err := lb.Assign(label, id); err != nil {
			return nil, fmt.Errorf("hierarchy: %w", err)
		}
		ids[i] = id
	}

	// Pass 2: same order; children resolve through the complete label map.
	var scratch []labels.NodeID
	for i := range a.keys {
		scratch = scratch[:0]
		for _, child := range a.children[i] {
			cid, _ := lb.Lookup(child) // closure: every child was registered by add
			scratch = append(scratch, cid)
		}
		if err := layout.Emit(ids[i], scratch...); err != nil {
			return nil, fmt.Errorf("hierarchy: %w", err)
		}
	}

	store, err := layout.Finish()
	if err != nil {
		return nil, fmt.Errorf("hierarchy: %w", err)
	}
	idx := &Index[T]{labels: lb.Freeze(), store: store}

	if cfg.logger != nil {
		cfg.logger.LogAttrs(context.Background(), slog.LevelDebug, "hierarchy built",
			slog.Int("nodes", store.Nodes()),
			slog.Int("edges", store.Edges()),
			slog.Int("slots", store.Slots()),
			slog.Bool("dedup", cfg.dedup),
		)
	}
	return idx, nil
}
