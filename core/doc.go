// Package core provides the in-memory model for all-pairs shortest-path
// computation: a vertex arena plus dense distance and next-hop tables.
//
// Overview:
//
//   - Vertices are opaque string labels, registered on first appearance and
//     assigned a stable dense index (the arena). First-appearance order is
//     preserved for deterministic iteration; it carries no semantic meaning.
//   - The distance table maps each ordered vertex pair to a float64 weight,
//     with +Inf (math.Inf(1)) as the "no path known" sentinel.
//   - The next-hop table maps each ordered pair to the first vertex to move
//     to along a shortest path, enabling hop-by-hop path reconstruction
//     without storing full paths.
//
// When to use:
//
//   - As the substrate for the floydwarshall package, which relaxes the
//     distance table in place and fills in next hops.
//   - Directly, whenever you need a dense pairwise distance relation with
//     deterministic vertex order and no map-iteration nondeterminism.
//
// Key properties:
//
//   - Dense storage — both tables are flat row-major arrays over arena
//     indices, so lookups never allocate and never insert default entries.
//   - Monotonic growth — AddEdge and AddVertex only ever add vertices;
//     nothing is deleted during the lifetime of a Graph.
//   - Last write wins — duplicate (from, to) edges overwrite the previous
//     weight; there is no multi-edge aggregation.
//   - Sign-agnostic — negative edge weights are accepted; only NaN and ±Inf
//     are rejected, because they collide with the sentinel arithmetic.
//
// Call order:
//
//	The canonical build sequence is edges-then-diagonal:
//
//	    g := core.NewGraph()
//	    g.AddEdge("A", "B", 1)
//	    g.AddEdge("B", "C", 2)
//	    g.InitDiagonal()
//
//	InitDiagonal sets distance(v, v) = 0 for every registered vertex.
//	A self-loop recorded with weight ≥ 0 is reset to 0; a NEGATIVE
//	self-loop is preserved so that the engine's negative-cycle scan can
//	flag it instead of silently normalizing it away.
//
// Error handling (sentinel errors):
//
//   - ErrEmptyVertexID: an endpoint ID is the empty string.
//   - ErrBadWeight: an edge weight is NaN or ±Inf.
//
// Thread safety:
//
//   - A Graph is not safe for concurrent mutation. The intended lifecycle is
//     single-threaded: build, relax, then read — synchronize externally if
//     you share a Graph across goroutines.
//
// See also:
//
//   - floydwarshall.FloydWarshall: the relaxation sweep over this model.
//   - edgelist.LoadGraph: build a Graph from a whitespace edge-list file.
//
// Thanks for choosing apsp! We aim to keep the model small, deterministic,
// and honest about what it stores. If you spot any issue or have
// suggestions, please open an issue or PR on GitHub.
package core
