// Package edgelist defines the decoded edge type and sentinel errors
// for the edgelist subpackage of github.com/katalvlaran/apsp.
package edgelist

import "errors"

// ErrMalformedInput indicates a document that does not follow the
// count-then-triples layout: a bad or missing count, a truncated triple,
// or a weight that is not a finite number.
var ErrMalformedInput = errors.New("edgelist: malformed edge-list input")

// maxReserve caps the slice capacity preallocated from the count header.
// The header is a claim about the document, not a measured length, so
// allocation never follows it past this cap; append grows the slice when
// the triples really are present.
const maxReserve = 4096

// Edge is one decoded (from, to, weight) triple. Direction matters:
// the triple (A, B, w) says nothing about B→A.
type Edge struct {
	From   string  // source vertex ID
	To     string  // destination vertex ID
	Weight float64 // finite edge weight; negative values are legal
}
