// Package report renders a relaxed all-pairs result as a plain-text
// document, one line per ordered vertex pair.
//
// What:
//
//   - Write streams "from: U to: V - W" lines in first-appearance order,
//     skipping same-vertex pairs.
//   - Unreachable pairs render the INF marker instead of a number.
//   - WithPaths appends the hop-by-hop route ("via A->B->C"); pairs whose
//     route collapses into a negative cycle are marked "[cycle detected]"
//     and the report continues with the next pair.
//   - WriteFile is the file-path convenience over Write.
//
// Why:
//
//   - A stable, diff-friendly layout: batch runs can be compared with
//     plain text tooling, and golden files stay readable.
//
// Errors:
//
//   - ErrNilResult: Write was handed a nil result.
package report
