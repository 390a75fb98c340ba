// Package graph: read-only lookups, bulk iteration, and whole-graph
// housekeeping (Clear, Clone).
//
// Lookups come in two shapes: comma-ok getters for control flow, and
// Assert*Exists for producing a typed error before a multi-step operation
// proceeds. All iteration is lazy and restartable, visiting entries in
// slot order (reuse means slot order is not insertion order).

package graph

import (
	"iter"

	"github.com/katalvlaran/gengraph/slotvec"
)

// GetVertex returns the live vertex at ix. The pointer reaches into graph
// storage: reading is free, but mutating payloads through it bypasses diff
// tracking (prefer UpdateVertex) and the adjacency lists must not be
// touched at all.
// Complexity: O(1).
func (g *Graph[V, E]) GetVertex(ix VertexIndex) (*Vertex[V], bool) {
	v, ok := g.vertices.Get(slotvec.Index(ix))
	if !ok {
		return nil, false
	}

	return v, true
}

// GetVertexData returns a copy of the payload of the vertex at ix.
// Complexity: O(1).
func (g *Graph[V, E]) GetVertexData(ix VertexIndex) (V, bool) {
	v, ok := g.GetVertex(ix)
	if !ok {
		var zero V

		return zero, false
	}

	return v.data, true
}

// GetVertexDataMut returns a pointer to the payload of the vertex at ix.
// Mutations through it are not diff-tracked; use UpdateVertex when the
// change must be reversible.
// Complexity: O(1).
func (g *Graph[V, E]) GetVertexDataMut(ix VertexIndex) (*V, bool) {
	v, ok := g.GetVertex(ix)
	if !ok {
		return nil, false
	}

	return &v.data, true
}

// GetEdge returns the live edge at ix. Same aliasing contract as GetVertex.
// Complexity: O(1).
func (g *Graph[V, E]) GetEdge(ix EdgeIndex) (*Edge[E], bool) {
	e, ok := g.edges.Get(slotvec.Index(ix))
	if !ok {
		return nil, false
	}

	return e, true
}

// GetEdgeData returns a copy of the payload of the edge at ix.
// Complexity: O(1).
func (g *Graph[V, E]) GetEdgeData(ix EdgeIndex) (E, bool) {
	e, ok := g.GetEdge(ix)
	if !ok {
		var zero E

		return zero, false
	}

	return e.data, true
}

// GetEdgeDataMut returns a pointer to the payload of the edge at ix.
// Mutations through it are not diff-tracked; use UpdateEdge when the
// change must be reversible.
// Complexity: O(1).
func (g *Graph[V, E]) GetEdgeDataMut(ix EdgeIndex) (*E, bool) {
	e, ok := g.GetEdge(ix)
	if !ok {
		return nil, false
	}

	return &e.data, true
}

// AssertVertexExists returns a VertexNotFoundError if ix does not resolve
// to a live vertex, and nil otherwise.
// Complexity: O(1).
func (g *Graph[V, E]) AssertVertexExists(ix VertexIndex) error {
	if _, ok := g.GetVertex(ix); !ok {
		return &VertexNotFoundError{Index: ix}
	}

	return nil
}

// AssertEdgeExists returns an EdgeNotFoundError if ix does not resolve to
// a live edge, and nil otherwise.
// Complexity: O(1).
func (g *Graph[V, E]) AssertEdgeExists(ix EdgeIndex) error {
	if _, ok := g.GetEdge(ix); !ok {
		return &EdgeNotFoundError{Index: ix}
	}

	return nil
}

// SharedEdges returns a lazy sequence of the edges directed from -> to.
// Only that single direction is reported; callers wanting both directions
// query twice with the arguments swapped.
// Complexity: O(out-degree of from) per walk.
func (g *Graph[V, E]) SharedEdges(from, to VertexIndex) (iter.Seq[EdgeIndex], error) {
	v, ok := g.GetVertex(from)
	if !ok {
		return nil, &VertexNotFoundError{Index: from}
	}

	return func(yield func(EdgeIndex) bool) {
		for _, adj := range v.out {
			if adj.Vertex == to && !yield(adj.Edge) {
				return
			}
		}
	}, nil
}

// VertexIndexes yields the handle of every live vertex, in slot order.
func (g *Graph[V, E]) VertexIndexes() iter.Seq[VertexIndex] {
	return func(yield func(VertexIndex) bool) {
		for ix := range g.vertices.Indexes() {
			if !yield(VertexIndex(ix)) {
				return
			}
		}
	}
}

// EdgeIndexes yields the handle of every live edge, in slot order.
func (g *Graph[V, E]) EdgeIndexes() iter.Seq[EdgeIndex] {
	return func(yield func(EdgeIndex) bool) {
		for ix := range g.edges.Indexes() {
			if !yield(EdgeIndex(ix)) {
				return
			}
		}
	}
}

// Vertices yields (handle, vertex) pairs for every live vertex, in slot
// order. Same aliasing contract as GetVertex.
func (g *Graph[V, E]) Vertices() iter.Seq2[VertexIndex, *Vertex[V]] {
	return func(yield func(VertexIndex, *Vertex[V]) bool) {
		for ix, v := range g.vertices.All() {
			if !yield(VertexIndex(ix), v) {
				return
			}
		}
	}
}

// Edges yields (handle, edge) pairs for every live edge, in slot order.
func (g *Graph[V, E]) Edges() iter.Seq2[EdgeIndex, *Edge[E]] {
	return func(yield func(EdgeIndex, *Edge[E]) bool) {
		for ix, e := range g.edges.All() {
			if !yield(EdgeIndex(ix), e) {
				return
			}
		}
	}
}

// VertexData yields (handle, payload copy) pairs for every live vertex.
func (g *Graph[V, E]) VertexData() iter.Seq2[VertexIndex, V] {
	return func(yield func(VertexIndex, V) bool) {
		for ix, v := range g.vertices.All() {
			if !yield(VertexIndex(ix), v.data) {
				return
			}
		}
	}
}

// EdgeData yields (handle, payload copy) pairs for every live edge.
func (g *Graph[V, E]) EdgeData() iter.Seq2[EdgeIndex, E] {
	return func(yield func(EdgeIndex, E) bool) {
		for ix, e := range g.edges.All() {
			if !yield(EdgeIndex(ix), e.data) {
				return
			}
		}
	}
}

// VertexDataMut yields (handle, payload pointer) pairs for every live
// vertex. Writes through the pointers mutate stored payloads directly and
// are not diff-tracked.
func (g *Graph[V, E]) VertexDataMut() iter.Seq2[VertexIndex, *V] {
	return func(yield func(VertexIndex, *V) bool) {
		for ix, v := range g.vertices.All() {
			if !yield(VertexIndex(ix), &v.data) {
				return
			}
		}
	}
}

// EdgeDataMut yields (handle, payload pointer) pairs for every live edge.
// Writes through the pointers are not diff-tracked.
func (g *Graph[V, E]) EdgeDataMut() iter.Seq2[EdgeIndex, *E] {
	return func(yield func(EdgeIndex, *E) bool) {
		for ix, e := range g.edges.All() {
			if !yield(EdgeIndex(ix), &e.data) {
				return
			}
		}
	}
}

// VertexCount returns the number of live vertices. O(1).
func (g *Graph[V, E]) VertexCount() int {
	return g.vertices.Len()
}

// EdgeCount returns the number of live edges. O(1).
func (g *Graph[V, E]) EdgeCount() int {
	return g.edges.Len()
}

// Clear resets the graph to the empty state. Slot numbers and generations
// restart from zero, so diffs recorded before the Clear must not be
// replayed against it.
// Complexity: O(1).
func (g *Graph[V, E]) Clear() {
	g.vertices.Clear()
	g.edges.Clear()
}

// Clone returns a deep copy of the graph: every live vertex and edge keeps
// its exact handle, and the free lists are copied too, so diffs recorded
// against the original replay identically against the clone. Payloads are
// copied by assignment, as with any Go container.
// Complexity: O(V + E).
func (g *Graph[V, E]) Clone() *Graph[V, E] {
	return &Graph[V, E]{
		vertices: g.vertices.CloneFunc(func(v *Vertex[V]) *Vertex[V] { return v.clone() }),
		edges:    g.edges.CloneFunc(func(e *Edge[E]) *Edge[E] { return e.clone() }),
	}
}
