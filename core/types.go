// Package core defines the Graph model for all-pairs shortest paths:
// a vertex arena, a dense distance table, and a dense next-hop table.
//
// This file declares the Graph type, GraphOption, sentinel errors, and the
// NewGraph constructor. Table operations live in graph.go.
//
// Errors:
//
//	ErrEmptyVertexID - vertex ID is the empty string.
//	ErrBadWeight     - edge weight is NaN or ±Inf.
package core

import (
	"errors"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrBadWeight indicates a NaN or ±Inf edge weight, which would collide
	// with the +Inf "no path" sentinel used by the distance table.
	ErrBadWeight = errors.New("core: edge weight must be finite")
)

// NoHop marks an absent entry in the dense next-hop table.
// NextHop translates it to the ("", false) form for callers.
const NoHop = -1

// defaultReserve is the initial side length of the dense tables when the
// Graph is constructed without an explicit capacity.
const defaultReserve = 8

// Graph is the core in-memory model: a vertex arena plus two dense
// row-major tables over arena indices.
//
// The distance table holds float64 weights with +Inf meaning "no path
// known"; the next-hop table holds arena indices with NoHop meaning "no
// next hop known". Both tables are square with side length `side`, of
// which only the leading Order()×Order() block is live.
type Graph struct {
	index map[string]int // vertex ID → arena index
	ids   []string       // arena index → vertex ID, first-appearance order

	dist []float64 // row-major distance entries, stride = side
	next []int     // row-major next-hop indices, stride = side
	side int       // allocated side length of both tables

	edges int // direct edges recorded (duplicates counted once)
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the dense tables for n vertices, avoiding
// reallocation during loading when the vertex count is known up front.
// Must pass a non-negative value; negative values panic.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n < 0 {
			// Panic to signal invalid configuration early.
			panic("core: capacity must be non-negative")
		}
		g.side = n
	}
}

// NewGraph creates an empty Graph with the given options.
// Both tables start fully initialized to their sentinels (+Inf / NoHop),
// so absent pairs read correctly without any insert-on-read behavior.
// Complexity: O(side²) for the initial sentinel fill.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		index: make(map[string]int),
		side:  defaultReserve,
	}
	var opt GraphOption
	for _, opt = range opts { // apply each functional option
		opt(g)
	}
	g.dist, g.next = newTables(g.side)

	return g
}
