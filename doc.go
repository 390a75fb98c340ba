// Package gengraph is an embeddable, in-memory directed-graph store built
// around two ideas: stable generational handles and reversible diffs.
//
// 🚀 What is gengraph?
//
//	A small, single-threaded library that gives a host application:
//		• Stable references: every vertex and edge is addressed by a
//		  (slot, generation) Index that detects staleness instead of
//		  silently resolving to a different occupant
//		• Reversible diffs: every mutation returns a self-contained record
//		  that can be rolled back or re-applied later, with strict
//		  validation against the current graph state
//		• A bidirectional adjacency invariant maintained across every
//		  mutation, including cascade removal of a vertex's neighborhood
//
// ✨ Why choose gengraph?
//
//   - Undo/redo for free – stash the diffs on a stack, replay them in order
//   - No ABA surprises – removed handles stay invalid forever
//   - Pure Go – plain values, no hidden globals, no cgo
//   - Serializable – JSON and YAML round-trips preserve every handle
//
// Everything is organized under two subpackages:
//
//	slotvec/ — the generational slot table: O(1) insert/remove behind
//	           stable Index handles, with an intrusive free list
//	graph/   — the Graph built on two slot tables, plus the diff engine
//
// Quick sketch:
//
//	g := graph.New[string, int]()
//	a, _ := g.AddVertex("a")
//	b, _ := g.AddVertex("b")
//	e, d, _ := g.AddEdge(a, b, 7)
//	_ = g.RollbackDiff(d) // edge e is gone, as if never added
//	_ = g.ApplyDiff(d)    // edge e is back, same index, same generation
//
// The store is deliberately not concurrent and not persistent: it is the
// in-memory core a host (editor, compiler IR, simulation) wraps with its
// own synchronization and storage policy.
package gengraph
