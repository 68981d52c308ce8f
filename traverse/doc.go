// SPDX-License-Identifier: MIT

// Package traverse provides a lazy, multi-source breadth-first iterator over
// an adjacency.Store.
//
// What
//
//   - New(store, roots, opts...) seeds the visited set with every root (depth 0).
//   - Next() yields one (NodeID, Depth) Step per newly discovered node.
//   - Roots are never yielded; every reachable node is yielded exactly once.
//
// How
//
//	The visited set is kept in insertion order and doubles as the FIFO
//	frontier: a cursor walks it, loading each entry's child window from the
//	store. A child is yielded the moment it is first inserted, tagged with
//	the depth of the node that discovered it plus one. No per-level buffers
//	are materialized, and cycles terminate because a visited node is never
//	inserted twice.
//
// Determinism
//
//	For a given store and root order the yielded sequence is fully
//	reproducible; two iterators over the same store never share state.
//
// Complexity (V = reachable nodes, E = their out-edges)
//
//   - Time:   O(V + E) over the full sequence, O(1) amortized per Next.
//   - Memory: O(V) for the visited set and the depth column.
//
// Options
//
//   - WithMaxDepth(d)   stop expanding nodes at depth d (d>0); 0 means no limit.
//   - WithCapacity(n)   pre-size the visited set for n nodes.
//
// There is no error path: unknown roots are the caller's concern (see
// hierarchy.Index.DescendantsOf), and an empty root set yields nothing.
package traverse
