// SPDX-License-Identifier: MIT
// Package: floydwarshall
//
// Purpose:
//   - Canonical dense APSP (Floyd–Warshall) sweep with deterministic loop order.
//   - Runs in place on the core Graph's dense tables; relaxes distances and
//     propagates first hops; no allocations inside the hot loops.
//
// Contract:
//   - +Inf means "no path" off-diagonal; the diagonal must be initialized
//     before calling (core.InitDiagonal, edges-then-diagonal order).
//   - Negative weights are legal; negative cycles are flagged by the
//     post-sweep diagonal scan, never rejected up front.

package floydwarshall

import (
	"math"

	"github.com/katalvlaran/apsp/core"
)

// FloydWarshall relaxes all-pairs shortest paths in place on g and returns
// a Result view over the relaxed tables.
//
// Semantics:
//
//   - For each intermediate k in fixed arena order, for each ordered (i, j):
//     if dist(i,k) and dist(k,j) are finite and their sum strictly improves
//     dist(i,j), the distance is relaxed and next(i,j) takes next(i,k) —
//     the first hop out of i, so paths can be walked hop by hop.
//   - Improvement is strict `<` (deterministic tie rule: the first shortest
//     path found wins).
//   - After the sweep, one O(V) diagonal scan records every vertex with
//     dist(v,v) < 0 on the Result; the table is NOT discarded — pairs not
//     touching a negative cycle remain valid (see Result.PathBetween).
//
// Running the sweep a second time on an already relaxed table changes
// nothing, unless the graph contains a negative cycle (whose pair
// distances never stabilize).
//
// Determinism:
//
//   - Loop order is fixed (k → i → j), ensuring stable accumulation order.
//
// Complexity: Time O(V³), Extra space O(V) for the Result snapshot.
func FloydWarshall(g *core.Graph) (*Result, error) {
	// Validate: non-nil graph with at least one vertex.
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.Order() == 0 {
		return nil, ErrEmptyGraph
	}

	// Borrow the live tables and relax them in place.
	dist, next, stride, n := g.Dense()
	relaxInPlace(dist, next, stride, n)

	// Snapshot the arena and run the diagonal scan.
	r := &Result{
		ids:    g.Vertices(),
		index:  make(map[string]int, n),
		dist:   dist,
		next:   next,
		stride: stride,
		order:  n,
	}
	var i int
	for i = range r.ids {
		r.index[r.ids[i]] = i
	}
	r.negative = scanNegativeDiagonal(dist, stride, n, r.ids)

	return r, nil
}

// relaxInPlace runs the APSP closure on the dense tables in place.
//
// Policy (assumed by callers):
//   - +Inf (math.Inf(1)) denotes "no path" off-diagonal.
//   - dist and next are row-major with row stride `stride`, of which the
//     leading n×n block is live.
//
// Loop order is fixed (k → i → j) for deterministic accumulation.
// Time: O(n³); Extra space: O(1). No allocations inside the hot loops.
func relaxInPlace(dist []float64, next []int, stride, n int) {
	// Loop counters and temporaries, declared once for the whole sweep.
	var (
		k, i, j      int     // loop indices
		baseK, baseI int     // row base offsets for k and i in the flat buffers
		ik, ij, kj   float64 // distances d[i,k], d[i,j], d[k,j]
		cand         float64 // candidate length via k: d[i,k] + d[k,j]
		hop          int     // first hop i→k, copied into improved cells
	)

	// Fixed k → i → j nesting; the order is part of the contract.
	for k = 0; k < n; k++ { // k: the intermediate admitted this pass
		baseK = k * stride

		for i = 0; i < n; i++ { // i: source row
			baseI = i * stride
			ik = dist[baseI+k]
			if math.IsInf(ik, 1) {
				continue // i cannot reach k; no candidate via k exists
			}
			// The first hop toward k is the first hop of every improved i→j.
			// Within this i row the only cell that can rewrite next[i,k] is
			// (i, j=k) itself, and it writes this same value back.
			hop = next[baseI+k]

			for j = 0; j < n; j++ { // j: destination column
				kj = dist[baseK+j]
				if math.IsInf(kj, 1) {
					continue // k cannot reach j
				}
				ij = dist[baseI+j]
				cand = ik + kj
				if cand < ij { // strict improvement only; ties keep the incumbent
					dist[baseI+j] = cand
					next[baseI+j] = hop // first hop out of i stays walkable
				}
			}
		}
	}
}

// scanNegativeDiagonal collects the vertices whose self-distance ended
// below zero: each lies on a negative closed walk. Cycle-free vertices
// keep dist(v,v) = 0; a preserved negative self-loop is flagged here as
// the one-vertex case.
// Complexity: O(n).
func scanNegativeDiagonal(dist []float64, stride, n int, ids []string) []string {
	var flagged []string
	var v int
	for v = 0; v < n; v++ {
		if dist[v*stride+v] < 0 {
			flagged = append(flagged, ids[v])
		}
	}

	return flagged
}
