package report

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/katalvlaran/apsp/floydwarshall"
)

// infMarker renders unreachable pairs; kept stable for diff tooling.
const infMarker = "INF"

// Write renders one line per ordered pair (u, v), u ≠ v, in
// first-appearance order. Distances use %g; unreachable pairs render the
// INF marker. With WithPaths, reachable pairs carry their route and
// cycle-tainted pairs are marked without aborting the report.
// Complexity: O(V²) lines, O(V³) with paths in the worst case.
func Write(w io.Writer, res *floydwarshall.Result, opts ...Option) error {
	if res == nil {
		return ErrNilResult
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	bw := bufio.NewWriter(w)
	ids := res.Vertices()
	for _, u := range ids {
		for _, v := range ids {
			if u == v {
				continue
			}
			if err := writePair(bw, res, u, v, o); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}

// writePair renders a single ordered pair onto bw.
func writePair(bw *bufio.Writer, res *floydwarshall.Result, u, v string, o Options) error {
	d := res.Distance(u, v)
	if math.IsInf(d, 1) {
		_, err := fmt.Fprintf(bw, "from: %s to: %s - %s\n", u, v, infMarker)

		return err
	}
	if !o.IncludePaths {
		_, err := fmt.Fprintf(bw, "from: %s to: %s - %g\n", u, v, d)

		return err
	}

	p, err := res.PathBetween(u, v)
	if err != nil {
		return err
	}
	switch p.Status {
	case floydwarshall.CycleDetected:
		_, err = fmt.Fprintf(bw, "from: %s to: %s - %g [cycle detected]\n", u, v, d)
	default:
		_, err = fmt.Fprintf(bw, "from: %s to: %s - %g via %s\n", u, v, d, strings.Join(p.Vertices, "->"))
	}

	return err
}

// WriteFile renders the report into a freshly created (or truncated)
// file at path.
func WriteFile(path string, res *floydwarshall.Result, opts ...Option) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = Write(f, res, opts...); err != nil {
		f.Close()

		return err
	}

	return f.Close()
}
