// Package graph: mutation surface.
//
// Every mutation validates caller-supplied handles first (failing fast
// with a typed error before anything changes), then mutates the slot
// tables, maintains the bidirectional adjacency invariant, and returns a
// reversible Diff describing exactly what happened. Internal lookups that
// run after validation use the must* helpers: a miss there means the
// adjacency invariant is already broken, which is corruption, and panics.

package graph

import (
	"fmt"

	"github.com/katalvlaran/gengraph/slotvec"
)

// AddVertex inserts a new vertex carrying data and returns its handle plus
// the diff recording the insertion. It always succeeds.
// Complexity: O(1) amortized.
func (g *Graph[V, E]) AddVertex(data V) (VertexIndex, Diff[V, E]) {
	ix := VertexIndex(g.vertices.Add(newVertex(data)))

	return ix, AddVertexDiff[V, E]{Index: ix, Data: data}
}

// AddEdge inserts a new directed edge from -> to carrying data.
// Both endpoints are validated before anything mutates; a stale or unknown
// endpoint returns a VertexNotFoundError naming it and leaves the graph
// untouched. On success the matching adjacency entries are pushed on both
// endpoints (out on from, in on to; a self-loop pushes both onto the same
// vertex).
// Complexity: O(1) amortized.
func (g *Graph[V, E]) AddEdge(from, to VertexIndex, data E) (EdgeIndex, Diff[V, E], error) {
	// 1) Fail fast on either endpoint before touching any table.
	if err := g.AssertVertexExists(from); err != nil {
		return EdgeIndex{}, nil, err
	}
	if err := g.AssertVertexExists(to); err != nil {
		return EdgeIndex{}, nil, err
	}

	// 2) Allocate the edge.
	ix := EdgeIndex(g.edges.Add(newEdge(from, to, data)))

	// 3) Link both endpoints. Lookups cannot miss after step 1.
	g.mustVertex(from).addOut(to, ix)
	g.mustVertex(to).addIn(from, ix)

	return ix, AddEdgeDiff[V, E]{Index: ix, From: from, To: to, Data: data}, nil
}

// UpdateVertex replaces the payload of the vertex at ix, returning the
// previous payload and a diff carrying both before and after.
// Complexity: O(1).
func (g *Graph[V, E]) UpdateVertex(ix VertexIndex, data V) (V, Diff[V, E], error) {
	v, ok := g.GetVertex(ix)
	if !ok {
		var zero V

		return zero, nil, &VertexNotFoundError{Index: ix}
	}

	old := v.data
	v.data = data

	return old, UpdateVertexDataDiff[V, E]{Index: ix, Before: old, After: data}, nil
}

// UpdateEdge replaces the payload of the edge at ix, returning the
// previous payload and a diff carrying both before and after.
// Complexity: O(1).
func (g *Graph[V, E]) UpdateEdge(ix EdgeIndex, data E) (E, Diff[V, E], error) {
	e, ok := g.GetEdge(ix)
	if !ok {
		var zero E

		return zero, nil, &EdgeNotFoundError{Index: ix}
	}

	old := e.data
	e.data = data

	return old, UpdateEdgeDataDiff[V, E]{Index: ix, Before: old, After: data}, nil
}

// RemoveEdge deletes the edge at ix: the adjacency entries on both
// endpoints are detached, then the slot is freed (generation advances).
// Returns the removed payload and the diff preserving the full edge.
// Complexity: O(deg) for the adjacency detach.
func (g *Graph[V, E]) RemoveEdge(ix EdgeIndex) (E, Diff[V, E], error) {
	data, diff, err := g.removeEdgeInternal(ix)
	if err != nil {
		var zero E

		return zero, nil, err
	}

	return data, diff, nil
}

// removeEdgeInternal is the shared removal path: it returns the concrete
// RemoveEdgeDiff so RemoveVertex can embed it as a nested record.
func (g *Graph[V, E]) removeEdgeInternal(ix EdgeIndex) (E, RemoveEdgeDiff[V, E], error) {
	e, ok := g.GetEdge(ix)
	if !ok {
		var zero E

		return zero, RemoveEdgeDiff[V, E]{}, &EdgeNotFoundError{Index: ix}
	}

	// Detach both adjacency entries. The edge was just proven live, so a
	// missing entry means the bidirectional invariant is broken.
	if !g.mustVertex(e.from).removeOut(ix) {
		panic(fmt.Sprintf("graph: state corrupted: edge %s missing from out-adjacency of %s", ix, e.from))
	}
	if !g.mustVertex(e.to).removeIn(ix) {
		panic(fmt.Sprintf("graph: state corrupted: edge %s missing from in-adjacency of %s", ix, e.to))
	}

	removed, ok := g.edges.Remove(slotvec.Index(ix))
	if !ok {
		panic(fmt.Sprintf("graph: state corrupted: edge %s vanished during removal", ix))
	}

	return removed.data, RemoveEdgeDiff[V, E]{Index: ix, Edge: *removed}, nil
}

// RemoveVertex deletes the vertex at ix after removing every incident edge
// in both directions. Each incident edge is removed through the normal
// edge-removal path and collected as a nested RemoveEdge record, so the
// returned RemoveVertexDiff restores the whole neighborhood on rollback.
// A self-loop appears in both adjacency directions but is removed (and
// recorded) exactly once.
// Complexity: O(degree).
func (g *Graph[V, E]) RemoveVertex(ix VertexIndex) (V, Diff[V, E], error) {
	v, ok := g.GetVertex(ix)
	if !ok {
		var zero V

		return zero, nil, &VertexNotFoundError{Index: ix}
	}

	// Snapshot incident edges before detaching anything; the live lists
	// shrink as edges are removed. Dedupe so self-loops are seen once.
	incident := incidentEdges(v)

	edgeDiffs := make([]RemoveEdgeDiff[V, E], 0, len(incident))
	for _, eix := range incident {
		_, diff, err := g.removeEdgeInternal(eix)
		if err != nil {
			panic(fmt.Sprintf("graph: state corrupted: incident edge %s of vertex %s: %v", eix, ix, err))
		}
		edgeDiffs = append(edgeDiffs, diff)
	}

	// All incident edges are gone; the vertex's adjacency is now empty and
	// the slot can be freed.
	removed, ok := g.vertices.Remove(slotvec.Index(ix))
	if !ok {
		panic(fmt.Sprintf("graph: state corrupted: vertex %s vanished during removal", ix))
	}

	diff := RemoveVertexDiff[V, E]{Index: ix, Vertex: *removed.clone(), RemovedEdges: edgeDiffs}

	return removed.data, diff, nil
}

// incidentEdges collects the distinct edges touching v, out entries first.
func incidentEdges[V any](v *Vertex[V]) []EdgeIndex {
	seen := make(map[EdgeIndex]struct{}, len(v.out)+len(v.in))
	out := make([]EdgeIndex, 0, len(v.out)+len(v.in))
	for _, adj := range v.out {
		if _, dup := seen[adj.Edge]; dup {
			continue
		}
		seen[adj.Edge] = struct{}{}
		out = append(out, adj.Edge)
	}
	for _, adj := range v.in {
		if _, dup := seen[adj.Edge]; dup {
			continue
		}
		seen[adj.Edge] = struct{}{}
		out = append(out, adj.Edge)
	}

	return out
}

// mustVertex returns the live vertex at ix and treats a miss as corruption:
// callers only use it after the handle has been validated in the same
// operation.
func (g *Graph[V, E]) mustVertex(ix VertexIndex) *Vertex[V] {
	v, ok := g.GetVertex(ix)
	if !ok {
		panic(fmt.Sprintf("graph: state corrupted: validated vertex %s is gone", ix))
	}

	return v
}

// mustEdge is the edge counterpart of mustVertex.
func (g *Graph[V, E]) mustEdge(ix EdgeIndex) *Edge[E] {
	e, ok := g.GetEdge(ix)
	if !ok {
		panic(fmt.Sprintf("graph: state corrupted: validated edge %s is gone", ix))
	}

	return e
}
