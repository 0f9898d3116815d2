// SPDX-License-Identifier: MIT
// Package floydwarshall: result types for the relaxation sweep and the
// path walker. This file declares PathStatus, PathResult, and the Result
// view over the relaxed tables; the algorithms live in floydwarshall.go
// and path.go.

package floydwarshall

import (
	"fmt"
	"math"
)

// PathStatus is the terminal state of a path reconstruction walk.
//
// Reconstruction outcomes are expected, recoverable results — a tagged
// status, not an error. Caller mistakes (unknown vertices) surface as
// sentinel errors instead.
type PathStatus int

const (
	// ReachedDestination: the walk arrived at the destination; the full
	// vertex sequence is returned.
	ReachedDestination PathStatus = iota

	// NoPath: the recorded distance is +Inf; no directed path exists.
	// A normal query outcome, never an error.
	NoPath

	// CycleDetected: the next-hop chain revisited a vertex before reaching
	// the destination. The chain is inconsistent with a shortest-path
	// invariant — almost always an unrelaxed negative cycle between the
	// endpoints. Other pairs in the table remain valid.
	CycleDetected
)

// String renders the status for logs and reports.
func (s PathStatus) String() string {
	switch s {
	case ReachedDestination:
		return "ReachedDestination"
	case NoPath:
		return "NoPath"
	case CycleDetected:
		return "CycleDetected"
	default:
		return fmt.Sprintf("PathStatus(%d)", int(s))
	}
}

// PathResult is the tagged outcome of Result.PathBetween.
//
// Vertices is populated only for ReachedDestination: the full sequence from
// source to destination inclusive, with no repeated vertex. Weight always
// carries the table distance for the queried pair: the exact path weight on
// success, +Inf for NoPath, and the (unreliable) table value when a cycle
// was detected.
type PathResult struct {
	Status   PathStatus // terminal state of the walk
	Vertices []string   // source..destination, nil unless ReachedDestination
	Weight   float64    // table distance for the pair
}

// Result is a read view over the tables relaxed by FloydWarshall.
//
// It snapshots the arena (IDs and index) at relaxation time and shares the
// dense table storage with the source graph. The model's lifecycle makes
// the tables read-only after the sweep; mutating the graph afterwards
// leaves Result undefined.
type Result struct {
	ids    []string       // arena snapshot, first-appearance order
	index  map[string]int // vertex ID → arena index at relaxation time
	dist   []float64      // relaxed distance table, row-major
	next   []int          // relaxed next-hop table, row-major
	stride int            // row stride of both tables
	order  int            // live side length (number of vertices)

	negative []string // vertices with dist(v,v) < 0, arena order
}

// Vertices returns a copy of the relaxed table's vertex IDs in
// first-appearance order. Complexity: O(V).
func (r *Result) Vertices() []string {
	out := make([]string, len(r.ids))
	copy(out, r.ids)

	return out
}

// Order returns the number of vertices in the relaxed table.
func (r *Result) Order() int { return r.order }

// Distance returns the relaxed shortest-path distance from `from` to `to`,
// or +Inf when either vertex is unknown or no directed path exists.
// Complexity: O(1).
func (r *Result) Distance(from, to string) float64 {
	i, ok := r.index[from]
	if !ok {
		return math.Inf(1)
	}
	j, ok := r.index[to]
	if !ok {
		return math.Inf(1)
	}

	return r.dist[i*r.stride+j]
}

// NextHop returns the first vertex to move to from `from` along a shortest
// path toward `to`, or ("", false) when either vertex is unknown or no hop
// is recorded. Complexity: O(1).
func (r *Result) NextHop(from, to string) (string, bool) {
	i, ok := r.index[from]
	if !ok {
		return "", false
	}
	j, ok := r.index[to]
	if !ok {
		return "", false
	}
	hop := r.next[i*r.stride+j]
	if hop < 0 {
		return "", false
	}

	return r.ids[hop], true
}

// HasNegativeCycle reports whether the diagonal scan found any vertex with
// a negative self-distance after the sweep — the signature of a negative
// cycle reachable round that vertex.
func (r *Result) HasNegativeCycle() bool { return len(r.negative) > 0 }

// NegativeCycleVertices returns a copy of the vertices flagged by the
// diagonal scan, in arena order. Empty when the table is cycle-free.
// Complexity: O(V).
func (r *Result) NegativeCycleVertices() []string {
	out := make([]string, len(r.negative))
	copy(out, r.negative)

	return out
}
