// Package slotvec implements a generational slot table: a growable array
// storing values behind stable (slot, generation) Index handles, with O(1)
// insert and remove and built-in stale-handle detection.
//
// What:
//
//   - Add stores a value and returns an Index; Get/Remove accept only an
//     Index whose generation exactly matches the slot's current occupancy.
//   - Removing a value advances the slot's generation and threads the slot
//     into an intrusive free list, so the slot is reused in O(1) while every
//     old handle for it stays invalid forever (no ABA).
//   - Replay primitives (OpenAt, OpenAtNext, ForceOccupy,
//     RemovePreservingGeneration) let a diff engine re-create or undo
//     occupancies at exact slots and generations.
//   - JSON/YAML serialization emits only live entries, keyed by the compact
//     "{slot}.{generation}" literal; loading rebuilds the free list from
//     the implicit gaps.
//
// Why:
//
//   - Arena-style storage for cyclic structures (graphs, IRs) without
//     pointers, reference counting, or lifetime puzzles.
//   - Handles that can be stored, serialized, and validated later, instead
//     of pointers that silently dangle.
//
// Complexity:
//
//   - Add / Get / Remove / Clear: O(1) (Add amortized).
//   - Iteration: O(slots) per walk, occupied entries in slot order.
//   - ForceOccupy: O(open slots) worst case (free-chain unlink).
//
// Errors:
//
//   - ErrMalformedIndex: compact literal does not parse.
//   - ErrDuplicateIndex: serialized input names a slot twice.
//
// SlotVec performs no locking; see package graph for the single-writer
// discipline it inherits.
package slotvec
