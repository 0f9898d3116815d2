// SPDX-License-Identifier: MIT
// Package: floydwarshall
//
// Purpose:
//   - Hop-by-hop path reconstruction over the relaxed next-hop table.
//   - Cycle guard: a revisited vertex terminates the walk with
//     CycleDetected instead of looping forever.
//
// Contract:
//   - Bounded at most V appends; the membership check doubles as the bound.
//   - Expected outcomes are PathStatus values; errors mark caller mistakes
//     or externally corrupted tables only.

package floydwarshall

import (
	"fmt"
	"math"
)

// PathBetween reconstructs one shortest path from source to destination by
// walking the next-hop table.
//
// Semantics:
//
//   - Unknown endpoints return ErrVertexNotFound (a caller mistake, not a
//     walk outcome).
//   - An infinite recorded distance returns Status NoPath — the normal
//     outcome for unreachable pairs.
//   - Otherwise the walk starts at source and repeatedly extends by
//     next(current, destination) until the destination is reached,
//     collecting the sequence source..destination inclusive.
//   - Cycle guard: if the candidate hop is already in the path built so
//     far, the walk stops with Status CycleDetected. This protects against
//     next-hop chains corrupted by an unrelaxed negative cycle; the rest
//     of the table remains valid and other pairs may still be queried.
//   - source == destination returns the single-vertex path [source]
//     immediately, even on a negative-cycle graph (the walk has nowhere
//     to go: it is already at its destination).
//
// Complexity: O(V) time and space per query.
func (r *Result) PathBetween(source, destination string) (PathResult, error) {
	// Stage 1: resolve endpoints against the arena snapshot.
	si, ok := r.index[source]
	if !ok {
		return PathResult{}, fmt.Errorf("%w: %q", ErrVertexNotFound, source)
	}
	di, ok := r.index[destination]
	if !ok {
		return PathResult{}, fmt.Errorf("%w: %q", ErrVertexNotFound, destination)
	}

	// Stage 2: the NoPath outcome needs no walk.
	total := r.dist[si*r.stride+di]
	if math.IsInf(total, 1) {
		return PathResult{Status: NoPath, Weight: total}, nil
	}

	// Stage 3: walk the chain, extending one hop at a time.
	// seen doubles as the cycle guard and the ≤V step bound.
	seen := make([]bool, r.order)
	seen[si] = true
	path := make([]string, 1, r.order)
	path[0] = source

	var cur, hop int
	for cur = si; cur != di; cur = hop {
		hop = r.next[cur*r.stride+di]
		if hop < 0 {
			// A finite distance with no recorded hop: the tables were
			// mutated outside the relaxation pass.
			return PathResult{}, fmt.Errorf("%w: %s→%s at %s", ErrInconsistentHops, source, destination, r.ids[cur])
		}
		if seen[hop] {
			return PathResult{Status: CycleDetected, Weight: total}, nil
		}
		seen[hop] = true
		path = append(path, r.ids[hop])
	}

	return PathResult{Status: ReachedDestination, Vertices: path, Weight: total}, nil
}
