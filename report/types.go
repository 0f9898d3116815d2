// Package report defines rendering options and sentinel errors
// for the report subpackage of github.com/katalvlaran/apsp.
package report

import "errors"

// ErrNilResult indicates Write was handed a nil result.
var ErrNilResult = errors.New("report: nil result")

// Options configures report rendering.
type Options struct {
	// IncludePaths appends the reconstructed route to every reachable
	// pair line. Default: distances only.
	IncludePaths bool
}

// Option adjusts Options in functional-option style.
type Option func(*Options)

// WithPaths turns on hop-by-hop route rendering.
func WithPaths() Option {
	return func(o *Options) { o.IncludePaths = true }
}

// defaultOptions returns the distances-only configuration.
func defaultOptions() Options {
	return Options{}
}
