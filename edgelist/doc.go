// Package edgelist decodes whitespace-separated edge-list documents and
// folds them into core graphs ready for relaxation.
//
// What:
//
//   - Parse reads a leading edge count n, then n (from, to, weight) triples.
//   - Tokens are separated by any whitespace; line breaks carry no meaning.
//   - Tokens after the n-th triple are ignored, so documents may carry
//     trailing commentary.
//   - BuildGraph sizes a core.Graph for the distinct endpoints, records
//     every triple (last write wins for repeated pairs), and seals the
//     diagonal.
//   - Load and LoadGraph are the file-path conveniences over Parse and
//     BuildGraph.
//
// Why:
//
//   - Route tables, currency pairs, and dependency weights all arrive as
//     flat triples; one loader keeps every caller on the same contract.
//   - Malformed documents surface as ErrMalformedInput at the boundary,
//     so the relaxation engine can assume well-formed tables.
//
// Complexity:
//
//   - Parse:      O(n) time, O(n) memory for the decoded triples.
//   - BuildGraph: O(n) expected time, O(V²) memory for the dense tables.
//
// Errors:
//
//   - ErrMalformedInput: the count or a triple cannot be decoded, the
//     document ends early, or a weight is not a finite number.
package edgelist
