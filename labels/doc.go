// SPDX-License-Identifier: MIT

// Package labels maps caller-chosen label values to dense node identifiers and back.
//
// What
//
//   - NodeID: the fixed-width (uint32) identifier shared by every package of lvlindex.
//   - Builder[T]: write-once accumulator used while an index is being constructed.
//   - Index[T]: the frozen, immutable pair of maps label→NodeID and NodeID→label.
//
// The two maps are populated together and are exact inverses of each other.
// Once Freeze has been called the Index is never mutated again, so any number
// of goroutines may call Lookup and Label concurrently without locking.
//
// Identifiers are assigned by the caller (see hierarchy.Build); this package
// does not choose them. That lets an identifier double as a storage offset in
// the adjacency store without a separate offset table.
//
// Complexity
//
//   - Assign, Lookup, Label: O(1) average (Go map).
//   - Memory: two map entries per label.
//
// Errors
//
//   - ErrDuplicateLabel  if a label is assigned twice.
//   - ErrDuplicateID     if an identifier is assigned to two labels.
//   - ErrFrozen          if Assign is called after Freeze.
package labels
