// Package core implements the Graph operations: edge recording, diagonal
// initialization, and sentinel-correct lookups over the dense tables.
package core

import (
	"fmt"
	"math"
)

// newTables allocates side×side dense tables pre-filled with the sentinels:
// +Inf for distances, NoHop for next hops.
// Complexity: O(side²).
func newTables(side int) ([]float64, []int) {
	dist := make([]float64, side*side)
	next := make([]int, side*side)
	inf := math.Inf(1)
	var i int
	for i = range dist {
		dist[i] = inf
		next[i] = NoHop
	}

	return dist, next
}

// ensure returns the arena index for id, registering it first if unseen.
// Registration grows the tables when the arena outgrows the allocated side.
// Complexity: amortized O(1) per call (growth doubles the side).
func (g *Graph) ensure(id string) int {
	if i, ok := g.index[id]; ok {
		return i
	}

	// New vertex: grow the tables first if the arena is at capacity.
	i := len(g.ids)
	if i == g.side {
		g.grow()
	}
	g.index[id] = i
	g.ids = append(g.ids, id)

	return i
}

// grow doubles the allocated side and copies the live block into the new
// tables. Fresh cells come pre-filled with the sentinels from newTables.
// Complexity: O(newSide²), amortized O(1) per added vertex.
func (g *Graph) grow() {
	newSide := g.side * 2
	if newSide == 0 {
		newSide = defaultReserve
	}
	dist, next := newTables(newSide)

	// Copy the live n×n block row by row; stride changes from side to newSide.
	n := len(g.ids)
	var r int
	for r = 0; r < n; r++ {
		copy(dist[r*newSide:r*newSide+n], g.dist[r*g.side:r*g.side+n])
		copy(next[r*newSide:r*newSide+n], g.next[r*g.side:r*g.side+n])
	}

	g.dist, g.next, g.side = dist, next, newSide
}

// AddVertex registers id in the arena without recording any edge.
// Adding an existing vertex is a no-op. Returns ErrEmptyVertexID for "".
// Complexity: amortized O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.ensure(id)

	return nil
}

// AddEdge records or overwrites the direct distance and next-hop entry for
// (from, to), registering both endpoints in the arena if new.
//
// Semantics:
//
//   - Any finite weight sign is accepted; negative edges are legal input.
//   - NaN and ±Inf weights are rejected with ErrBadWeight, since they would
//     collide with the +Inf "no path" sentinel.
//   - Duplicate (from, to) edges overwrite: last write wins, counted once.
//
// Complexity: amortized O(1).
func (g *Graph) AddEdge(from, to string, weight float64) error {
	// 1) Validate endpoint IDs.
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}

	// 2) Validate the weight against the sentinel policy.
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("%w: edge %s→%s weight=%v", ErrBadWeight, from, to, weight)
	}

	// 3) Register endpoints and locate the cell.
	i := g.ensure(from)
	j := g.ensure(to)
	pos := i*g.side + j

	// 4) Count each (from, to) pair once, regardless of overwrites.
	if g.next[pos] == NoHop {
		g.edges++
	}

	// 5) Record the direct distance; the first hop toward `to` is `to` itself.
	g.dist[pos] = weight
	g.next[pos] = j

	return nil
}

// InitDiagonal sets distance(v, v) = 0 for every registered vertex.
//
// Call it after all edges are loaded (edges-then-diagonal): a self-loop
// recorded with weight ≥ 0 is reset to 0, while a NEGATIVE self-loop is
// preserved on the diagonal so the engine's negative-cycle scan can flag
// it instead of this method silently normalizing it away. Idempotent.
// Complexity: O(V).
func (g *Graph) InitDiagonal() {
	n := len(g.ids)
	var v, pos int
	for v = 0; v < n; v++ {
		pos = v*g.side + v
		if g.dist[pos] < 0 {
			continue // explicit negative self-loop stays visible
		}
		g.dist[pos] = 0
	}
}

// Distance returns the stored distance for (from, to), or +Inf when either
// endpoint is unknown or no path has been recorded. Lookups never mutate
// the table. Complexity: O(1).
func (g *Graph) Distance(from, to string) float64 {
	i, ok := g.index[from]
	if !ok {
		return math.Inf(1)
	}
	j, ok := g.index[to]
	if !ok {
		return math.Inf(1)
	}

	return g.dist[i*g.side+j]
}

// NextHop returns the next vertex on a shortest path from `from` toward
// `to`, or ("", false) when either endpoint is unknown or no hop has been
// recorded. Lookups never mutate the table. Complexity: O(1).
func (g *Graph) NextHop(from, to string) (string, bool) {
	i, ok := g.index[from]
	if !ok {
		return "", false
	}
	j, ok := g.index[to]
	if !ok {
		return "", false
	}
	hop := g.next[i*g.side+j]
	if hop == NoHop {
		return "", false
	}

	return g.ids[hop], true
}

// HasVertex reports whether id is registered in the arena. Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.index[id]

	return ok
}

// IndexOf returns the arena index assigned to id, if registered.
// Indices are dense, stable, and ordered by first appearance.
// Complexity: O(1).
func (g *Graph) IndexOf(id string) (int, bool) {
	i, ok := g.index[id]

	return i, ok
}

// Vertices returns a copy of the vertex IDs in first-appearance order.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	out := make([]string, len(g.ids))
	copy(out, g.ids)

	return out
}

// Order returns the number of registered vertices. Complexity: O(1).
func (g *Graph) Order() int { return len(g.ids) }

// EdgeCount returns the number of distinct (from, to) pairs recorded by
// AddEdge before relaxation; duplicates count once. Complexity: O(1).
func (g *Graph) EdgeCount() int { return g.edges }

// Dense exposes the live tables for in-place relaxation.
//
// Both slices are row-major with row stride `stride` (the allocated side),
// of which the leading order×order block is live. The engine mutates them
// in place; other callers should treat them as read-only.
func (g *Graph) Dense() (dist []float64, next []int, stride, order int) {
	return g.dist, g.next, g.side, len(g.ids)
}

// Clone returns a deep copy of the Graph: arena, both tables, and counters.
// The clone is fully independent of the original. Complexity: O(side²).
func (g *Graph) Clone() *Graph {
	c := &Graph{
		index: make(map[string]int, len(g.index)),
		ids:   make([]string, len(g.ids)),
		dist:  make([]float64, len(g.dist)),
		next:  make([]int, len(g.next)),
		side:  g.side,
		edges: g.edges,
	}
	for id, i := range g.index {
		c.index[id] = i
	}
	copy(c.ids, g.ids)
	copy(c.dist, g.dist)
	copy(c.next, g.next)

	return c
}
