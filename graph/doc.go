// Package graph implements an in-memory directed graph over two
// generational slot tables (package slotvec), with stable validity-checked
// handles and a transactional diff engine for lossless undo/redo.
//
// What:
//
//   - AddVertex/AddEdge/UpdateVertex/UpdateEdge/RemoveEdge/RemoveVertex
//     each return a reversible Diff record alongside their result.
//   - ApplyDiff replays a record, RollbackDiff inverts it; both validate
//     the target slot generations first and fail with ErrInvalidDiff
//     (graph untouched) when state does not match — stale or out-of-order
//     diffs are detected, never silently corrupting.
//   - Re-created elements land at their exact recorded slot and
//     generation, so redo reproduces the identical Index values.
//   - Every live edge appears in both endpoints' adjacency lists (out on
//     the source, in on the target) and nowhere else; RemoveVertex cascades
//     over the incident edges and embeds their records in its diff.
//   - JSON/YAML round-trips preserve all handles and adjacency.
//
// Why:
//
//   - Undo/redo stacks: push each returned Diff; pop and RollbackDiff to
//     undo, ApplyDiff to redo.
//   - State synchronization: ship the records to a replica holding the
//     same base state and ApplyDiff them in order.
//   - Editor/compiler IR storage: handles survive arbitrary mutation
//     sequences and detect staleness instead of dangling.
//
// Complexity:
//
//   - AddVertex/AddEdge/Update*/lookups: O(1) amortized.
//   - RemoveEdge: O(degree of its endpoints); RemoveVertex: O(degree).
//   - Apply/Rollback: O(1) per record, O(degree) for RemoveVertexDiff.
//
// Errors:
//
//   - ErrVertexNotFound / ErrEdgeNotFound: a caller-supplied handle did not
//     resolve; the typed wrappers carry the handle.
//   - ErrInvalidDiff: a diff no longer matches graph state.
//
// The Graph is single-threaded by design: no internal locking, no
// goroutines, no context plumbing — every operation is a bounded
// synchronous computation. Hosts that share a Graph across goroutines
// wrap it in one exclusive lock.
package graph
