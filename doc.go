// Package apsp is your in-memory toolkit for computing, inspecting,
// and reporting all-pairs shortest paths — from dense distance tables to
// explicit hop-by-hop routes.
//
// 🚀 What is apsp?
//
//	A small, focused library built around the Floyd–Warshall closure:
//		• Core model: vertex arena + dense distance and next-hop tables
//		• Engine: deterministic k→i→j relaxation, O(V³) time, O(V²) space
//		• Routes: hop-by-hop path reconstruction with cycle protection
//		• Diagnostics: negative-cycle detection via the diagonal scan
//		• Glue: edge-list files, plain-text reports, a timing CLI
//
// ✨ Why choose apsp?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – fixed loop order, stable vertex order, no map iteration
//   - Honest about failure – +Inf means "no path", corrupted chains are
//     reported per pair instead of aborting the whole table
//   - Extensible – tables stay readable after the run for your own analysis
//
// Under the hood, everything is organized under five subpackages:
//
//	core/          — vertex arena, distance table, next-hop table
//	floydwarshall/ — the relaxation sweep and path reconstruction
//	edgelist/      — whitespace edge-list file loader
//	report/        — pairwise distance / route report writer
//	cmd/apsp/      — CLI: solve a file, benchmark a case list
//
// Quick ASCII example:
//
//	    A──1──B
//	     \    │
//	     10   2
//	       \  │
//	        ──C
//
//	the shortest route A→C costs 3 and travels A→B→C, not the direct edge.
//
// Dive into README.md for full examples and the per-package documentation
// for contracts, complexity notes and edge-case policy.
//
//	go get github.com/katalvlaran/apsp
package apsp
