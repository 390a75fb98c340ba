// Package graph: the closed set of reversible mutation records.
//
// Every Graph mutation returns one of the six records below. A record is
// a complete, self-contained description of the change: enough to replay
// it with ApplyDiff and to invert it with RollbackDiff, each validated
// against the graph's current slot generations before anything is touched.
// Records are immutable values; the Graph keeps no history of its own, so
// hosts own the stack/log discipline entirely.

package graph

// Diff is one reversible mutation record. The set of implementations is
// closed (the marker method is unexported): AddVertexDiff, AddEdgeDiff,
// UpdateVertexDataDiff, UpdateEdgeDataDiff, RemoveEdgeDiff and
// RemoveVertexDiff. ApplyDiff and RollbackDiff dispatch over exactly
// these six.
type Diff[V, E any] interface {
	isDiff()
}

// AddVertexDiff records the creation of a vertex: the handle that was
// minted and the payload it was created with.
type AddVertexDiff[V, E any] struct {
	Index VertexIndex
	Data  V
}

// AddEdgeDiff records the creation of an edge: the minted handle, both
// endpoints and the payload.
type AddEdgeDiff[V, E any] struct {
	Index EdgeIndex
	From  VertexIndex
	To    VertexIndex
	Data  E
}

// UpdateVertexDataDiff records an in-place payload replacement on a
// vertex. Before/After make the record reversible in both directions.
type UpdateVertexDataDiff[V, E any] struct {
	Index  VertexIndex
	Before V
	After  V
}

// UpdateEdgeDataDiff records an in-place payload replacement on an edge.
type UpdateEdgeDataDiff[V, E any] struct {
	Index  EdgeIndex
	Before E
	After  E
}

// RemoveEdgeDiff records the removal of an edge, preserving the full edge
// (endpoints and payload) so rollback can restore it at the original slot
// and generation.
type RemoveEdgeDiff[V, E any] struct {
	Index EdgeIndex
	Edge  Edge[E]
}

// RemoveVertexDiff records the removal of a vertex together with the
// cascade removal of every incident edge. RemovedEdges holds one nested
// record per incident edge (a self-loop contributes exactly one), so a
// rollback restores the whole neighborhood atomically.
type RemoveVertexDiff[V, E any] struct {
	Index        VertexIndex
	Vertex       Vertex[V]
	RemovedEdges []RemoveEdgeDiff[V, E]
}

func (AddVertexDiff[V, E]) isDiff()        {}
func (AddEdgeDiff[V, E]) isDiff()          {}
func (UpdateVertexDataDiff[V, E]) isDiff() {}
func (UpdateEdgeDataDiff[V, E]) isDiff()   {}
func (RemoveEdgeDiff[V, E]) isDiff()       {}
func (RemoveVertexDiff[V, E]) isDiff()     {}
