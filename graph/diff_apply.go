// Package graph: diff replay (the "redo" direction).
//
// ApplyDiff re-executes a recorded mutation against a graph that is in the
// exact prior state. The engine never guesses: every branch revalidates
// the target slot generations before the first write, so a diff applied
// out of causal order, or against a graph that never produced it, fails
// with ErrInvalidDiff and mutates nothing. Re-created elements land in the
// exact slot at the exact generation the record names, which is what makes
// redo reproduce the identical Index values.

package graph

import (
	"fmt"

	"github.com/katalvlaran/gengraph/slotvec"
)

// ApplyDiff replays diff against the graph. The error is nil on success;
// otherwise it wraps ErrInvalidDiff and the graph is untouched.
// Complexity: O(1) for vertex/edge/update records, O(degree) for
// RemoveVertexDiff.
func (g *Graph[V, E]) ApplyDiff(d Diff[V, E]) error {
	switch diff := d.(type) {
	case AddVertexDiff[V, E]:
		return g.applyAddVertex(diff)
	case AddEdgeDiff[V, E]:
		return g.applyAddEdge(diff)
	case UpdateVertexDataDiff[V, E]:
		return g.applyUpdateVertex(diff)
	case UpdateEdgeDataDiff[V, E]:
		return g.applyUpdateEdge(diff)
	case RemoveEdgeDiff[V, E]:
		return g.applyRemoveEdge(diff)
	case RemoveVertexDiff[V, E]:
		return g.applyRemoveVertex(diff)
	default:
		return fmt.Errorf("%w: unknown diff record %T", ErrInvalidDiff, d)
	}
}

// applyAddVertex re-creates the recorded vertex at its exact slot and
// generation. The slot must be open at exactly the recorded generation,
// which is the state RollbackDiff of the same record leaves behind.
func (g *Graph[V, E]) applyAddVertex(diff AddVertexDiff[V, E]) error {
	ix := slotvec.Index(diff.Index)
	if !g.vertices.OpenAt(ix) {
		return invalidDiff("apply add-vertex", diff.Index)
	}
	g.vertices.ForceOccupy(ix, newVertex(diff.Data))

	return nil
}

// applyAddEdge re-creates the recorded edge and re-links adjacency on both
// endpoints. Both endpoints must be live and the edge slot open at exactly
// the recorded generation.
func (g *Graph[V, E]) applyAddEdge(diff AddEdgeDiff[V, E]) error {
	if err := g.AssertVertexExists(diff.From); err != nil {
		return invalidDiff("apply add-edge", diff.From)
	}
	if err := g.AssertVertexExists(diff.To); err != nil {
		return invalidDiff("apply add-edge", diff.To)
	}
	ix := slotvec.Index(diff.Index)
	if !g.edges.OpenAt(ix) {
		return invalidDiff("apply add-edge", diff.Index)
	}

	g.edges.ForceOccupy(ix, newEdge(diff.From, diff.To, diff.Data))
	g.mustVertex(diff.From).addOut(diff.To, diff.Index)
	g.mustVertex(diff.To).addIn(diff.From, diff.Index)

	return nil
}

// applyUpdateVertex overwrites the payload with the record's After value.
func (g *Graph[V, E]) applyUpdateVertex(diff UpdateVertexDataDiff[V, E]) error {
	v, ok := g.GetVertex(diff.Index)
	if !ok {
		return invalidDiff("apply update-vertex-data", diff.Index)
	}
	v.data = diff.After

	return nil
}

// applyUpdateEdge overwrites the payload with the record's After value.
func (g *Graph[V, E]) applyUpdateEdge(diff UpdateEdgeDataDiff[V, E]) error {
	e, ok := g.GetEdge(diff.Index)
	if !ok {
		return invalidDiff("apply update-edge-data", diff.Index)
	}
	e.data = diff.After

	return nil
}

// applyRemoveEdge re-executes the normal removal path: adjacency detaches
// and the generation advances, exactly as the original mutation did.
func (g *Graph[V, E]) applyRemoveEdge(diff RemoveEdgeDiff[V, E]) error {
	if err := g.AssertEdgeExists(diff.Index); err != nil {
		return invalidDiff("apply remove-edge", diff.Index)
	}
	if _, _, err := g.removeEdgeInternal(diff.Index); err != nil {
		panic(fmt.Sprintf("graph: state corrupted: validated edge %s failed to remove: %v", diff.Index, err))
	}

	return nil
}

// applyRemoveVertex re-executes the normal cascade removal path.
func (g *Graph[V, E]) applyRemoveVertex(diff RemoveVertexDiff[V, E]) error {
	if err := g.AssertVertexExists(diff.Index); err != nil {
		return invalidDiff("apply remove-vertex", diff.Index)
	}
	if _, _, err := g.RemoveVertex(diff.Index); err != nil {
		panic(fmt.Sprintf("graph: state corrupted: validated vertex %s failed to remove: %v", diff.Index, err))
	}

	return nil
}
