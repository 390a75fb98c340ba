// Package graph: central types for the generational graph store.
//
// This file declares the typed index handles (VertexIndex, EdgeIndex), the
// Adjacency pair, Vertex and Edge payload carriers, the Graph container,
// and the New constructor. Mutations live in methods.go, queries and
// iteration in methods_query.go, the diff engine in diff_apply.go and
// diff_rollback.go, serialization in codec.go.
package graph

import (
	"slices"

	"github.com/katalvlaran/gengraph/slotvec"
)

// VertexIndex is a stable handle to one occupancy of a vertex slot.
// It is a distinct type from EdgeIndex on purpose: the two tables have
// independent slot spaces and a handle for one must not be accepted by
// the other.
type VertexIndex slotvec.Index

// EdgeIndex is a stable handle to one occupancy of an edge slot.
type EdgeIndex slotvec.Index

// String renders the handle in the compact "{slot}.{generation}" form.
func (ix VertexIndex) String() string { return slotvec.Index(ix).String() }

// String renders the handle in the compact "{slot}.{generation}" form.
func (ix EdgeIndex) String() string { return slotvec.Index(ix).String() }

// Adjacency is one entry of a vertex's adjacency list: the neighboring
// vertex plus the edge that connects to it. The same pair shape serves
// both directions (out_adjacency stores the edge's target, in_adjacency
// its source).
type Adjacency struct {
	// Vertex is the neighbor on the far end of Edge.
	Vertex VertexIndex `json:"vertex" yaml:"vertex"`

	// Edge is the connecting edge.
	Edge EdgeIndex `json:"edge" yaml:"edge"`
}

// Vertex is a graph node: caller data plus both adjacency directions.
// The adjacency lists are owned by the Graph and kept consistent with the
// edge table by every mutation; they are only readable from outside.
type Vertex[V any] struct {
	out  []Adjacency // edges leaving this vertex: (target, edge)
	in   []Adjacency // edges arriving at this vertex: (source, edge)
	data V
}

// newVertex returns a vertex with empty adjacency.
func newVertex[V any](data V) *Vertex[V] {
	return &Vertex[V]{data: data}
}

// OutAdjacency returns the (target, edge) entries for every edge leaving
// this vertex. The slice is an independent copy; mutating it never
// touches the graph, and it does not track later mutations.
func (v *Vertex[V]) OutAdjacency() []Adjacency { return slices.Clone(v.out) }

// InAdjacency returns the (source, edge) entries for every edge arriving
// at this vertex, as an independent copy like OutAdjacency.
func (v *Vertex[V]) InAdjacency() []Adjacency { return slices.Clone(v.in) }

// Data returns a copy of the vertex payload.
func (v *Vertex[V]) Data() V { return v.data }

// addOut and addIn push adjacency entries without any validation; callers
// have already checked both endpoints.
func (v *Vertex[V]) addOut(to VertexIndex, edge EdgeIndex) {
	v.out = append(v.out, Adjacency{Vertex: to, Edge: edge})
}

func (v *Vertex[V]) addIn(from VertexIndex, edge EdgeIndex) {
	v.in = append(v.in, Adjacency{Vertex: from, Edge: edge})
}

// removeOut deletes the entry carrying edge from the out list, reporting
// whether it was present.
func (v *Vertex[V]) removeOut(edge EdgeIndex) bool {
	pos := slices.IndexFunc(v.out, func(a Adjacency) bool { return a.Edge == edge })
	if pos < 0 {
		return false
	}
	v.out = slices.Delete(v.out, pos, pos+1)

	return true
}

// removeIn deletes the entry carrying edge from the in list, reporting
// whether it was present.
func (v *Vertex[V]) removeIn(edge EdgeIndex) bool {
	pos := slices.IndexFunc(v.in, func(a Adjacency) bool { return a.Edge == edge })
	if pos < 0 {
		return false
	}
	v.in = slices.Delete(v.in, pos, pos+1)

	return true
}

// clone returns an independent copy of the vertex. The payload is copied
// by assignment; payload types carrying interior pointers share them, as
// with any Go container.
func (v *Vertex[V]) clone() *Vertex[V] {
	return &Vertex[V]{out: slices.Clone(v.out), in: slices.Clone(v.in), data: v.data}
}

// Edge is a directed connection between two vertices, plus caller data.
type Edge[E any] struct {
	from VertexIndex
	to   VertexIndex
	data E
}

// newEdge returns an edge connecting from to to.
func newEdge[E any](from, to VertexIndex, data E) *Edge[E] {
	return &Edge[E]{from: from, to: to, data: data}
}

// From returns the source vertex handle.
func (e *Edge[E]) From() VertexIndex { return e.from }

// To returns the target vertex handle.
func (e *Edge[E]) To() VertexIndex { return e.to }

// Data returns a copy of the edge payload.
func (e *Edge[E]) Data() E { return e.data }

func (e *Edge[E]) clone() *Edge[E] {
	out := *e

	return &out
}

// Graph is the in-memory generational graph store: two slot tables (one
// per element kind) plus the bidirectional adjacency bookkeeping that
// every mutation maintains.
//
// Graph is a plain value with no hidden globals and no internal locking;
// it assumes single-writer exclusive access (wrap it in a lock if multiple
// goroutines mutate it). V and E are the vertex and edge payload types and
// are stored by value. Self-loops and parallel edges are always permitted.
type Graph[V, E any] struct {
	vertices *slotvec.SlotVec[*Vertex[V]]
	edges    *slotvec.SlotVec[*Edge[E]]
}

// New creates an empty Graph.
// Complexity: O(1)
func New[V, E any]() *Graph[V, E] {
	return &Graph[V, E]{
		vertices: slotvec.New[*Vertex[V]](),
		edges:    slotvec.New[*Edge[E]](),
	}
}
