// Package floydwarshall computes all-pairs shortest paths over the core
// Graph model and reconstructs explicit routes from the next-hop table.
//
// The floydwarshall package provides:
//
//   - FloydWarshall: the deterministic k→i→j relaxation sweep, run in place
//     on the model's dense tables, followed by a negative-cycle diagonal
//     scan. O(V³) time, O(V²) space, no allocations in the hot loops.
//   - Result: a read view over the relaxed tables — distances, next hops,
//     and the set of vertices sitting on (or reachable round) a negative
//     cycle.
//   - Result.PathBetween: hop-by-hop path reconstruction with a cycle
//     guard, returning a tagged PathResult (ReachedDestination, NoPath,
//     CycleDetected) instead of treating expected outcomes as errors.
//
// The sweep tolerates negative edge weights. Negative cycles are not
// rejected up front: they surface as negative diagonal entries (reported
// by Result) and as CycleDetected outcomes for pairs whose next-hop chain
// rounds the cycle. The table stays valid for all unaffected pairs.
//
// See the examples in this package and core for usage patterns.
package floydwarshall
