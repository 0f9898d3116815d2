// SPDX-License-Identifier: MIT
// Package floydwarshall: sentinel error set.
// This file defines ONLY package-level sentinel errors. All functions return
// these sentinels and tests check them via errors.Is. Expected query outcomes
// (no path, cycle detected) are NOT errors — they are PathStatus values.

package floydwarshall

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "floydwarshall: ..." for consistency and to
// allow easy grepping across logs. If context is essential, wrap with
// fmt.Errorf("ctx: %w", ErrX) — callers still match via errors.Is.

var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to FloydWarshall.
	ErrNilGraph = errors.New("floydwarshall: graph is nil")

	// ErrEmptyGraph indicates that the graph has no registered vertices,
	// so there is no table to relax.
	ErrEmptyGraph = errors.New("floydwarshall: graph has no vertices")

	// ErrVertexNotFound indicates that a path query referenced a vertex
	// that is not part of the relaxed table. This is a caller mistake,
	// distinct from the valid NoPath outcome between known vertices.
	ErrVertexNotFound = errors.New("floydwarshall: vertex not found in relaxed table")

	// ErrInconsistentHops indicates a finite distance whose next-hop chain
	// is missing an entry. The engine never produces such a table; it means
	// the dense tables were mutated outside the relaxation pass.
	ErrInconsistentHops = errors.New("floydwarshall: next-hop chain inconsistent with distance table")
)
