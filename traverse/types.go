// SPDX-License-Identifier: MIT

package traverse

import (
	"fmt"

	"github.com/katalvlaran/lvlindex/adjacency"
)

// Step is one item produced by the iterator.
type Step struct {
	// ID is the discovered node.
	ID adjacency.NodeID

	// Depth is the BFS distance, in edges, from the nearest root.
	Depth int
}

// Option configures an Iterator.
type Option func(*Options)

// Options holds traversal parameters.
type Options struct {
	// MaxDepth, if > 0, stops expansion of nodes at that depth, so no step
	// deeper than MaxDepth is produced. 0 disables the limit.
	MaxDepth int

	// Capacity pre-sizes the visited set.
	Capacity int
}

// DefaultOptions returns options with no depth limit and no pre-sizing.
func DefaultOptions() Options {
	return Options{MaxDepth: 0, Capacity: 0}
}

// WithMaxDepth limits the traversal to depth d.
//
//	d > 0:  limit to depth d
//	d == 0: explicit no limit
//	d < 0:  panics
func WithMaxDepth(d int) Option {
	if d < 0 {
		panic(fmt.Sprintf("traverse: WithMaxDepth(%d) cannot be negative", d))
	}
	return func(o *Options) { o.MaxDepth = d }
}

// WithCapacity pre-sizes the visited set for n nodes. Panics if n < 0.
func WithCapacity(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("traverse: WithCapacity(%d) cannot be negative", n))
	}
	return func(o *Options) { o.Capacity = n }
}
