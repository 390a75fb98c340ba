// SPDX-License-Identifier: MIT
// Package graph: sentinel error set and index-carrying error types.
//
// Sentinels are matched with errors.Is; the typed wrappers carry the
// offending handle and are recovered with errors.As. Routine failures
// (stale or unknown handles, diffs that no longer match graph state) are
// always returned, never panicked. Panics are reserved for internal
// invariant violations, which indicate corrupted graph state rather than
// bad caller input.

package graph

import (
	"errors"
	"fmt"
)

var (
	// ErrVertexNotFound indicates an operation referenced a vertex handle
	// that does not resolve to a live vertex (wrong slot, stale generation,
	// or removed).
	ErrVertexNotFound = errors.New("graph: vertex does not exist")

	// ErrEdgeNotFound indicates an operation referenced an edge handle that
	// does not resolve to a live edge.
	ErrEdgeNotFound = errors.New("graph: edge does not exist")

	// ErrInvalidDiff indicates a diff whose recorded slot generations do not
	// match the graph's current state: it was applied or rolled back out of
	// causal order, or against a graph that never produced it. The graph is
	// left untouched.
	ErrInvalidDiff = errors.New("graph: diff does not match current graph state")
)

// VertexNotFoundError carries the handle that failed to resolve.
// It unwraps to ErrVertexNotFound.
type VertexNotFoundError struct {
	Index VertexIndex
}

func (e *VertexNotFoundError) Error() string {
	return fmt.Sprintf("graph: vertex %s does not exist", e.Index)
}

func (e *VertexNotFoundError) Unwrap() error { return ErrVertexNotFound }

// EdgeNotFoundError carries the handle that failed to resolve.
// It unwraps to ErrEdgeNotFound.
type EdgeNotFoundError struct {
	Index EdgeIndex
}

func (e *EdgeNotFoundError) Error() string {
	return fmt.Sprintf("graph: edge %s does not exist", e.Index)
}

func (e *EdgeNotFoundError) Unwrap() error { return ErrEdgeNotFound }

// InvalidDiffError carries the diff variant and the handle whose slot
// state failed revalidation. It unwraps to ErrInvalidDiff.
type InvalidDiffError struct {
	// Op names the failing diff variant and direction, e.g. "apply add-vertex".
	Op string

	// Index is the compact form of the offending handle.
	Index string
}

func (e *InvalidDiffError) Error() string {
	return fmt.Sprintf("graph: cannot %s diff at index %s: state does not match", e.Op, e.Index)
}

func (e *InvalidDiffError) Unwrap() error { return ErrInvalidDiff }

// invalidDiff builds the typed error for one failed revalidation.
func invalidDiff(op string, ix fmt.Stringer) error {
	return &InvalidDiffError{Op: op, Index: ix.String()}
}
