// SPDX-License-Identifier: MIT

package hierarchy

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvlindex/adjacency"
)

// ErrIDSpaceExhausted is returned by every constructor when the graph has too
// many nodes and edges for the uint32 identifier. It is the same value as
// adjacency.ErrIDSpaceExhausted, so errors.Is matches either.
var ErrIDSpaceExhausted = adjacency.ErrIDSpaceExhausted

// Option customizes Build.
type Option func(*config)

// config holds resolved build parameters.
type config struct {
	dedup     bool
	capacity  int
	logger    *slog.Logger
	slotLimit uint64
}

func defaultConfig() config {
	return config{slotLimit: adjacency.MaxSlots}
}

// WithDedupEdges drops repeated (parent, child) relations so each child
// appears at most once in its parent's block.
func WithDedupEdges() Option {
	return func(c *config) { c.dedup = true }
}

// WithCapacity pre-sizes the aggregation for roughly n distinct labels.
// Panics if n < 0.
func WithCapacity(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("hierarchy: WithCapacity(%d) cannot be negative", n))
	}
	return func(c *config) { c.capacity = n }
}

// WithLogger makes Build emit one debug record with layout statistics.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("hierarchy: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// withSlotLimit lowers the identifier ceiling; tests use it to reach
// ErrIDSpaceExhausted without billions of nodes.
func withSlotLimit(n uint64) Option {
	return func(c *config) { c.slotLimit = n }
}
