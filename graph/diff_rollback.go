// Package graph: diff inversion (the "undo" direction).
//
// RollbackDiff is the exact inverse of ApplyDiff. The one asymmetry worth
// knowing about: undoing an Add frees the slot *without* advancing its
// generation (RemovePreservingGeneration), so that a later re-apply of the
// same record can validate the slot with OpenAt and mint the identical
// Index. Undoing a Remove writes the preserved value back at the original
// generation, which requires the slot to be open at generation+1, i.e.
// nothing reused it since the removal.

package graph

import (
	"fmt"

	"github.com/katalvlaran/gengraph/slotvec"
)

// RollbackDiff inverts diff against the graph. The error is nil on
// success; otherwise it wraps ErrInvalidDiff and the graph is untouched.
// Complexity: O(1) for vertex/edge/update records, O(degree) for
// RemoveVertexDiff.
func (g *Graph[V, E]) RollbackDiff(d Diff[V, E]) error {
	switch diff := d.(type) {
	case AddVertexDiff[V, E]:
		return g.rollbackAddVertex(diff)
	case AddEdgeDiff[V, E]:
		return g.rollbackAddEdge(diff)
	case UpdateVertexDataDiff[V, E]:
		return g.rollbackUpdateVertex(diff)
	case UpdateEdgeDataDiff[V, E]:
		return g.rollbackUpdateEdge(diff)
	case RemoveEdgeDiff[V, E]:
		return g.rollbackRemoveEdge(diff)
	case RemoveVertexDiff[V, E]:
		return g.rollbackRemoveVertex(diff)
	default:
		return fmt.Errorf("%w: unknown diff record %T", ErrInvalidDiff, d)
	}
}

// rollbackAddVertex undoes a vertex creation. The vertex must currently be
// live at the recorded generation; it is removed together with any edges
// still incident (their slots keep their generations too, mirroring the
// vertex), leaving the slot open at exactly the recorded generation.
func (g *Graph[V, E]) rollbackAddVertex(diff AddVertexDiff[V, E]) error {
	if err := g.AssertVertexExists(diff.Index); err != nil {
		return invalidDiff("roll back add-vertex", diff.Index)
	}
	g.removeVertexAndReset(diff.Index)

	return nil
}

// rollbackAddEdge undoes an edge creation: normal detach, but the slot's
// generation is preserved for exact re-apply.
func (g *Graph[V, E]) rollbackAddEdge(diff AddEdgeDiff[V, E]) error {
	if err := g.AssertEdgeExists(diff.Index); err != nil {
		return invalidDiff("roll back add-edge", diff.Index)
	}
	g.removeEdgeAndReset(diff.Index)

	return nil
}

// rollbackUpdateVertex restores the payload to the record's Before value.
func (g *Graph[V, E]) rollbackUpdateVertex(diff UpdateVertexDataDiff[V, E]) error {
	v, ok := g.GetVertex(diff.Index)
	if !ok {
		return invalidDiff("roll back update-vertex-data", diff.Index)
	}
	v.data = diff.Before

	return nil
}

// rollbackUpdateEdge restores the payload to the record's Before value.
func (g *Graph[V, E]) rollbackUpdateEdge(diff UpdateEdgeDataDiff[V, E]) error {
	e, ok := g.GetEdge(diff.Index)
	if !ok {
		return invalidDiff("roll back update-edge-data", diff.Index)
	}
	e.data = diff.Before

	return nil
}

// rollbackRemoveEdge restores the preserved edge at its original slot and
// generation and re-links adjacency on both endpoints. The slot must be
// open at exactly generation+1 (nothing reused it since the removal) and
// both endpoints must be live.
func (g *Graph[V, E]) rollbackRemoveEdge(diff RemoveEdgeDiff[V, E]) error {
	if err := g.AssertVertexExists(diff.Edge.from); err != nil {
		return invalidDiff("roll back remove-edge", diff.Edge.from)
	}
	if err := g.AssertVertexExists(diff.Edge.to); err != nil {
		return invalidDiff("roll back remove-edge", diff.Edge.to)
	}
	ix := slotvec.Index(diff.Index)
	if !g.edges.OpenAtNext(ix) {
		return invalidDiff("roll back remove-edge", diff.Index)
	}

	g.restoreEdge(diff)

	return nil
}

// rollbackRemoveVertex restores the vertex and its whole removed
// neighborhood. Every precondition is checked before the first write:
// the vertex slot and every nested edge slot must be open at exactly
// generation+1, and every far endpoint must either be live or be the
// vertex being restored. Nested edges are restored as a set; their order
// in the record does not matter.
func (g *Graph[V, E]) rollbackRemoveVertex(diff RemoveVertexDiff[V, E]) error {
	if !g.vertices.OpenAtNext(slotvec.Index(diff.Index)) {
		return invalidDiff("roll back remove-vertex", diff.Index)
	}
	for _, re := range diff.RemovedEdges {
		if !g.edges.OpenAtNext(slotvec.Index(re.Index)) {
			return invalidDiff("roll back remove-vertex", re.Index)
		}
		for _, endpoint := range []VertexIndex{re.Edge.from, re.Edge.to} {
			if endpoint == diff.Index {
				continue // restored alongside the vertex itself
			}
			if err := g.AssertVertexExists(endpoint); err != nil {
				return invalidDiff("roll back remove-vertex", endpoint)
			}
		}
	}

	// All preconditions hold; restore the vertex first so edge re-linking
	// can resolve it, then the neighborhood.
	g.vertices.ForceOccupy(slotvec.Index(diff.Index), diff.Vertex.clone())
	for _, re := range diff.RemovedEdges {
		g.restoreEdge(re)
	}

	return nil
}

// restoreEdge writes the preserved edge back at its original generation
// and pushes the matching adjacency entries. Preconditions are the
// caller's responsibility.
func (g *Graph[V, E]) restoreEdge(diff RemoveEdgeDiff[V, E]) {
	g.edges.ForceOccupy(slotvec.Index(diff.Index), diff.Edge.clone())
	g.mustVertex(diff.Edge.from).addOut(diff.Edge.to, diff.Index)
	g.mustVertex(diff.Edge.to).addIn(diff.Edge.from, diff.Index)
}

// removeVertexAndReset is the generation-preserving counterpart of
// RemoveVertex, used only when rolling back an AddVertexDiff. The vertex
// (and any still-incident edges) must have been validated live.
func (g *Graph[V, E]) removeVertexAndReset(ix VertexIndex) {
	v := g.mustVertex(ix)
	for _, eix := range incidentEdges(v) {
		g.removeEdgeAndReset(eix)
	}
	if _, ok := g.vertices.RemovePreservingGeneration(slotvec.Index(ix)); !ok {
		panic(fmt.Sprintf("graph: state corrupted: vertex %s vanished during rollback", ix))
	}
}

// removeEdgeAndReset is the generation-preserving counterpart of
// RemoveEdge, used only when rolling back adds.
func (g *Graph[V, E]) removeEdgeAndReset(ix EdgeIndex) {
	e := g.mustEdge(ix)
	if !g.mustVertex(e.from).removeOut(ix) {
		panic(fmt.Sprintf("graph: state corrupted: edge %s missing from out-adjacency of %s", ix, e.from))
	}
	if !g.mustVertex(e.to).removeIn(ix) {
		panic(fmt.Sprintf("graph: state corrupted: edge %s missing from in-adjacency of %s", ix, e.to))
	}
	if _, ok := g.edges.RemovePreservingGeneration(slotvec.Index(ix)); !ok {
		panic(fmt.Sprintf("graph: state corrupted: edge %s vanished during rollback", ix))
	}
}
