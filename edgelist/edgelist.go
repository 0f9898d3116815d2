package edgelist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/katalvlaran/apsp/core"
)

// Parse decodes an edge-list document from r: a leading count n followed
// by n whitespace-separated (from, to, weight) triples. Anything after
// the n-th triple is ignored. A count of zero yields an empty, valid
// slice. Returns ErrMalformedInput when the layout cannot be decoded;
// transport failures from r are returned as-is.
// Complexity: O(n) time and memory.
func Parse(r io.Reader) ([]Edge, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	tok, err := nextToken(sc)
	if err != nil {
		return nil, describe(err, "edge count")
	}
	count, err := strconv.Atoi(tok)
	if err != nil || count < 0 {
		return nil, fmt.Errorf("%w: edge count %q", ErrMalformedInput, tok)
	}

	reserve := count
	if reserve > maxReserve {
		reserve = maxReserve
	}
	edges := make([]Edge, 0, reserve)
	for i := 0; i < count; i++ {
		from, err := nextToken(sc)
		if err != nil {
			return nil, describe(err, fmt.Sprintf("triple %d source", i))
		}
		to, err := nextToken(sc)
		if err != nil {
			return nil, describe(err, fmt.Sprintf("triple %d destination", i))
		}
		wTok, err := nextToken(sc)
		if err != nil {
			return nil, describe(err, fmt.Sprintf("triple %d weight", i))
		}
		w, err := strconv.ParseFloat(wTok, 64)
		if err != nil || math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("%w: triple %d weight %q", ErrMalformedInput, i, wTok)
		}
		edges = append(edges, Edge{From: from, To: to, Weight: w})
	}

	return edges, nil
}

// nextToken advances the scanner by one whitespace-separated token.
// Reports io.ErrUnexpectedEOF when the document ends first.
func nextToken(sc *bufio.Scanner) (string, error) {
	if sc.Scan() {
		return sc.Text(), nil
	}
	if err := sc.Err(); err != nil {
		return "", err
	}

	return "", io.ErrUnexpectedEOF
}

// describe classifies a token failure: a document that ends early is
// malformed, anything else is a transport error from the reader.
func describe(err error, what string) error {
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: document ends before %s", ErrMalformedInput, what)
	}

	return fmt.Errorf("edgelist: reading %s: %w", what, err)
}

// BuildGraph folds decoded edges into a core.Graph sized upfront for the
// distinct endpoints, then seals the diagonal. Repeated (from, to) pairs
// follow last-write-wins, matching core.AddEdge.
// Complexity: O(n) expected time.
func BuildGraph(edges []Edge) (*core.Graph, error) {
	distinct := make(map[string]struct{}, 2*len(edges))
	for _, e := range edges {
		distinct[e.From] = struct{}{}
		distinct[e.To] = struct{}{}
	}

	g := core.NewGraph(core.WithCapacity(len(distinct)))
	for _, e := range edges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, err
		}
	}
	g.InitDiagonal()

	return g, nil
}

// Load reads and decodes the edge-list document stored at path.
func Load(path string) ([]Edge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	edges, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return edges, nil
}

// LoadGraph is the one-call pipeline: Load, then BuildGraph.
func LoadGraph(path string) (*core.Graph, error) {
	edges, err := Load(path)
	if err != nil {
		return nil, err
	}

	return BuildGraph(edges)
}
