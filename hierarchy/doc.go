// SPDX-License-Identifier: MIT

// Package hierarchy builds and queries an immutable, label-keyed parent→child
// index, tuned for large taxonomies (hundreds of thousands of categories)
// that are built once and traversed many times.
//
// What
//
//   - FromPairs / FromEdges:  build from (parent, child) relations.
//   - FromLists / FromMap:    build from (parent, []children) relations.
//   - Index.CountNodes:       distinct labels, parents and children combined.
//   - Index.ChildrenOf:       direct children, distinguishing "unknown node"
//     (ok == false) from "known node with no children" (empty, ok == true).
//   - Index.DescendantsOf:    lazy multi-source BFS yielding (depth, label),
//     each reachable label exactly once.
//
// How
//
//	Build aggregates relations per parent, registers every child as a node
//	of its own, then lays the graph out in a single []uint32 where a node's
//	identifier is the offset of its block (degree, then child identifiers).
//	See packages labels, adjacency and traverse for the three layers.
//
// Duplicate edges
//
//	A relation listed twice is kept twice: the parent's block holds the child
//	twice and its degree counts both. ChildrenOf reports the repetition;
//	DescendantsOf still yields the child once. WithDedupEdges switches to set
//	semantics per parent.
//
// Concurrency
//
//	An Index is immutable after Build returns and may be shared across
//	goroutines without locking. Each DescendantsOf call owns its traversal
//	state; a Descendants value itself must not be shared.
//
// Complexity (V = labels, E = relations)
//
//   - Build:          O(V + E) time, O(V + E) memory.
//   - ChildrenOf:     O(1) + O(k) to copy k child labels.
//   - DescendantsOf:  O(roots) to start, then O(1) amortized per item.
//
// Errors
//
//   - ErrIDSpaceExhausted  if V+E exceeds the uint32 identifier range.
//
// Usage
//
//	idx, err := hierarchy.FromEdges([]hierarchy.Edge[string]{
//	    {"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"},
//	})
//	if err != nil {
//	    // only ErrIDSpaceExhausted
//	}
//	kids, ok := idx.ChildrenOf("A")            // [B C], true
//	for depth, label := range idx.DescendantsSeq("A") {
//	    fmt.Println(depth, label)              // 1 B, 1 C, 2 D
//	}
package hierarchy
