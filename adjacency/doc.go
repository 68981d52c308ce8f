// SPDX-License-Identifier: MIT

// Package adjacency implements the flat adjacency store of lvlindex.
//
// Every node's children list lives in one contiguous []NodeID. A node's
// identifier is the offset of its block:
//
//	slot id       : out-degree k
//	slot id+1..id+k : child identifiers, in aggregation order
//
// A node with k == 0 occupies exactly one slot. Identifiers are handed out by
// a single forward cursor that advances by 1+k per node (Layout.Place), so
// blocks never overlap and no separate offset table is needed.
//
// Construction is two-pass:
//
//	l := adjacency.NewLayout()
//	idA, _ := l.Place(2)          // pass 1: reserve blocks, learn identifiers
//	idB, _ := l.Place(0)
//	idC, _ := l.Place(0)
//	_ = l.Emit(idA, idB, idC)     // pass 2: same order, write degree + children
//	_ = l.Emit(idB)
//	_ = l.Emit(idC)
//	store, _ := l.Finish()
//
// The finished Store is immutable and safe for concurrent readers.
//
// Complexity
//
//   - Place, Degree: O(1).
//   - Emit: O(k).
//   - Children: O(1) (sub-slice, no copy).
//   - Memory: exactly V+E slots of 4 bytes.
//
// Errors
//
//   - ErrIDSpaceExhausted  if the cursor would exceed MaxSlots: the NodeID
//     range on 64-bit platforms, math.MaxInt32 where int is 32 bits.
//   - ErrLayoutMismatch    if Emit is not called in Place order or Finish is
//     called before every placed block was emitted.
package adjacency
