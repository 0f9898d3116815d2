package floydwarshall_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/katalvlaran/apsp/core"
	"github.com/katalvlaran/apsp/floydwarshall"
)

// mustGraph builds a Graph from edges and seals it with InitDiagonal,
// failing the test on any rejected edge.
func mustGraph(t *testing.T, edges []edge) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range edges {
		if err := g.AddEdge(e.u, e.v, e.w); err != nil {
			t.Fatalf("AddEdge(%s,%s,%v): %v", e.u, e.v, e.w, err)
		}
	}
	g.InitDiagonal()

	return g
}

// mustRelax runs the sweep and fails the test on any error.
func mustRelax(t *testing.T, g *core.Graph) *floydwarshall.Result {
	t.Helper()
	res, err := floydwarshall.FloydWarshall(g)
	if err != nil {
		t.Fatalf("FloydWarshall: %v", err)
	}

	return res
}

// joined renders a path as A->B->C for compact comparisons.
func joined(p floydwarshall.PathResult) string {
	return strings.Join(p.Vertices, "->")
}

// ------------------------------------------------------------------------
// 1. Validation: unknown endpoints are caller mistakes, not walk outcomes.
// ------------------------------------------------------------------------

func TestPathBetween_UnknownSource(t *testing.T) {
	res := mustRelax(t, mustGraph(t, []edge{{"A", "B", 1}}))
	_, err := res.PathBetween("Z", "B")
	if !errors.Is(err, floydwarshall.ErrVertexNotFound) {
		t.Fatalf("expected ErrVertexNotFound for unknown source, got %v", err)
	}
}

func TestPathBetween_UnknownDestination(t *testing.T) {
	res := mustRelax(t, mustGraph(t, []edge{{"A", "B", 1}}))
	_, err := res.PathBetween("A", "Z")
	if !errors.Is(err, floydwarshall.ErrVertexNotFound) {
		t.Fatalf("expected ErrVertexNotFound for unknown destination, got %v", err)
	}
}

// ------------------------------------------------------------------------
// 2. Canonical walks: shortcut, unreachable pair, same-vertex pair.
// ------------------------------------------------------------------------

func TestPathBetween_ShortcutBeatsDirectEdge(t *testing.T) {
	// A→B(1), B→C(2), A→C(10): the two-hop route wins.
	res := mustRelax(t, mustGraph(t, []edge{
		{"A", "B", 1}, {"B", "C", 2}, {"A", "C", 10},
	}))

	if got := res.Distance("A", "C"); got != 3 {
		t.Errorf("Distance(A,C) = %v; want 3", got)
	}
	if hop, ok := res.NextHop("A", "C"); !ok || hop != "B" {
		t.Errorf("NextHop(A,C) = %q,%v; want B,true", hop, ok)
	}

	p, err := res.PathBetween("A", "C")
	if err != nil {
		t.Fatal(err)
	}
	if p.Status != floydwarshall.ReachedDestination {
		t.Fatalf("status = %v; want ReachedDestination", p.Status)
	}
	if got := joined(p); got != "A->B->C" {
		t.Errorf("path = %s; want A->B->C", got)
	}
	if p.Weight != 3 {
		t.Errorf("weight = %v; want 3", p.Weight)
	}
}

func TestPathBetween_UnreachablePair(t *testing.T) {
	// A→B only; B cannot get back to A.
	res := mustRelax(t, mustGraph(t, []edge{{"A", "B", 1}}))

	if got := res.Distance("B", "A"); !math.IsInf(got, 1) {
		t.Errorf("Distance(B,A) = %v; want +Inf", got)
	}

	p, err := res.PathBetween("B", "A")
	if err != nil {
		t.Fatal(err)
	}
	if p.Status != floydwarshall.NoPath {
		t.Errorf("status = %v; want NoPath", p.Status)
	}
	if p.Vertices != nil {
		t.Errorf("expected nil vertices on NoPath, got %v", p.Vertices)
	}
	if !math.IsInf(p.Weight, 1) {
		t.Errorf("weight = %v; want +Inf", p.Weight)
	}
}

func TestPathBetween_SameVertexPair(t *testing.T) {
	res := mustRelax(t, mustGraph(t, []edge{{"A", "B", 1}}))

	p, err := res.PathBetween("A", "A")
	if err != nil {
		t.Fatal(err)
	}
	if p.Status != floydwarshall.ReachedDestination {
		t.Fatalf("status = %v; want ReachedDestination", p.Status)
	}
	if got := joined(p); got != "A" {
		t.Errorf("path = %s; want the single vertex A", got)
	}
	if p.Weight != 0 {
		t.Errorf("weight = %v; want 0", p.Weight)
	}
}

// ------------------------------------------------------------------------
// 3. Negative cycles: pinned two-vertex boundary, cycle guard, recovery.
// ------------------------------------------------------------------------

func TestPathBetween_TwoVertexNegativeCycle(t *testing.T) {
	// A→B(1), B→A(-3): total cycle weight -2. The sweep terminates after
	// its fixed k-passes; the exact post-sweep table for insertion order
	// A,B is pinned here so any change in relaxation order shows up.
	g := mustGraph(t, []edge{{"A", "B", 1}, {"B", "A", -3}})
	res := mustRelax(t, g)

	if !res.HasNegativeCycle() {
		t.Fatal("expected the two-vertex cycle to be flagged")
	}
	if got := res.NegativeCycleVertices(); len(got) != 2 || got[0] != "A" || got[1] != "B" {
		t.Errorf("flagged vertices = %v; want [A B]", got)
	}

	pins := []struct {
		u, v string
		want float64
	}{
		{"A", "A", -2}, {"A", "B", -1},
		{"B", "A", -5}, {"B", "B", -4},
	}
	for _, p := range pins {
		if got := res.Distance(p.u, p.v); got != p.want {
			t.Errorf("Distance(%s,%s) = %v; want %v", p.u, p.v, got, p.want)
		}
	}

	// A second sweep over the already-tainted table keeps driving the
	// cycle entries down; the values never stabilize.
	second := mustRelax(t, g.Clone())
	if !(second.Distance("A", "B") < res.Distance("A", "B")) {
		t.Errorf("second sweep: Distance(A,B) = %v; want strictly below %v",
			second.Distance("A", "B"), res.Distance("A", "B"))
	}

	// Short walks on cycle vertices still resolve: one hop A→B, and the
	// same-vertex rule for A→A.
	ab, err := res.PathBetween("A", "B")
	if err != nil {
		t.Fatal(err)
	}
	if ab.Status != floydwarshall.ReachedDestination || joined(ab) != "A->B" || ab.Weight != -1 {
		t.Errorf("PathBetween(A,B) = %v %s %v; want ReachedDestination A->B -1",
			ab.Status, joined(ab), ab.Weight)
	}

	aa, err := res.PathBetween("A", "A")
	if err != nil {
		t.Fatal(err)
	}
	if aa.Status != floydwarshall.ReachedDestination || joined(aa) != "A" {
		t.Errorf("PathBetween(A,A) = %v %s; want the single vertex A", aa.Status, joined(aa))
	}
}

func TestPathBetween_CycleGuardTrips(t *testing.T) {
	// Negative triangle A→B→C→A (total -1) plus an exit edge A→D. The
	// tainted next-hop chain for A→D circles back to A, so the walk must
	// stop with CycleDetected instead of looping.
	res := mustRelax(t, mustGraph(t, []edge{
		{"A", "B", 1}, {"B", "C", -1}, {"C", "A", -1}, {"A", "D", 10},
	}))

	if got := res.NegativeCycleVertices(); len(got) != 3 {
		t.Fatalf("flagged vertices = %v; want the three cycle members", got)
	}

	p, err := res.PathBetween("A", "D")
	if err != nil {
		t.Fatal(err)
	}
	if p.Status != floydwarshall.CycleDetected {
		t.Fatalf("status = %v; want CycleDetected", p.Status)
	}
	if p.Vertices != nil {
		t.Errorf("expected nil vertices on CycleDetected, got %v", p.Vertices)
	}

	// Pairs untouched by the cycle keep working on the same table.
	back, err := res.PathBetween("D", "A")
	if err != nil {
		t.Fatal(err)
	}
	if back.Status != floydwarshall.NoPath {
		t.Errorf("PathBetween(D,A) status = %v; want NoPath", back.Status)
	}
	if got := res.Distance("D", "D"); got != 0 {
		t.Errorf("Distance(D,D) = %v; want 0", got)
	}
}

// ------------------------------------------------------------------------
// 4. Corrupted tables: a cleared hop cell must surface the sentinel.
// ------------------------------------------------------------------------

func TestPathBetween_SeveredHopChain(t *testing.T) {
	// A finite distance whose hop cell was cleared through the live Dense
	// tables must surface ErrInconsistentHops, never a walk off the
	// recorded path. The engine itself writes a hop alongside every finite
	// distance; only a holder of the Dense slices can break that pairing.
	g := mustGraph(t, []edge{{"A", "B", 1}, {"B", "C", 2}, {"A", "C", 10}})
	res := mustRelax(t, g)

	_, next, stride, _ := g.Dense()
	bi, ok := g.IndexOf("B")
	if !ok {
		t.Fatal("vertex B not indexed")
	}
	ci, ok := g.IndexOf("C")
	if !ok {
		t.Fatal("vertex C not indexed")
	}
	next[bi*stride+ci] = core.NoHop

	// The severed cell strands every walk routed through it: the two-hop
	// A→C walk reaches B and stops, the direct B→C walk stops immediately.
	if _, err := res.PathBetween("A", "C"); !errors.Is(err, floydwarshall.ErrInconsistentHops) {
		t.Fatalf("PathBetween(A,C) = %v; want ErrInconsistentHops", err)
	}
	_, err := res.PathBetween("B", "C")
	if !errors.Is(err, floydwarshall.ErrInconsistentHops) {
		t.Fatalf("PathBetween(B,C) = %v; want ErrInconsistentHops", err)
	}
	if !strings.Contains(err.Error(), "at B") {
		t.Errorf("error %q does not name the stranded vertex", err)
	}

	// Pairs that avoid the severed cell keep walking on the same table.
	p, err := res.PathBetween("A", "B")
	if err != nil {
		t.Fatal(err)
	}
	if p.Status != floydwarshall.ReachedDestination || joined(p) != "A->B" {
		t.Errorf("PathBetween(A,B) = %v %s; want ReachedDestination A->B", p.Status, joined(p))
	}
}

// ------------------------------------------------------------------------
// 5. Properties: path weights match the table, and the table matches an
//    exhaustive search on small graphs.
// ------------------------------------------------------------------------

func TestPathWeights_MatchTableExactly(t *testing.T) {
	res := mustRelax(t, mustGraph(t, clrsEdges))

	direct := adjacency(clrsEdges)
	for _, u := range res.Vertices() {
		for _, v := range res.Vertices() {
			p, err := res.PathBetween(u, v)
			if err != nil {
				t.Fatalf("PathBetween(%s,%s): %v", u, v, err)
			}
			if p.Status != floydwarshall.ReachedDestination {
				t.Fatalf("PathBetween(%s,%s) status = %v; the fixture is strongly connected", u, v, p.Status)
			}
			if first, last := p.Vertices[0], p.Vertices[len(p.Vertices)-1]; first != u || last != v {
				t.Errorf("path %s spans %s..%s; want %s..%s", joined(p), first, last, u, v)
			}

			// Every consecutive pair must be a recorded edge, the walk must
			// never revisit a vertex, and the direct weights must sum to the
			// table distance with no drift.
			sum := 0.0
			visited := map[string]bool{u: true}
			for i := 1; i < len(p.Vertices); i++ {
				from, to := p.Vertices[i-1], p.Vertices[i]
				w, ok := direct[from][to]
				if !ok {
					t.Fatalf("path %s uses missing edge %s→%s", joined(p), from, to)
				}
				if visited[to] {
					t.Fatalf("path %s revisits %s", joined(p), to)
				}
				visited[to] = true
				sum += w
			}
			if sum != res.Distance(u, v) {
				t.Errorf("path %s sums to %v; table says %v", joined(p), sum, res.Distance(u, v))
			}
		}
	}
}

func TestRelaxation_MatchesBruteForce(t *testing.T) {
	// Mixed fixture: an undirected-style component, a directed chain and
	// an isolated vertex. Small enough for exhaustive search.
	mixed := []edge{
		{"a", "b", 2}, {"b", "a", 2},
		{"b", "c", 3}, {"c", "b", 3},
		{"a", "c", 10}, {"c", "a", 10},
		{"d", "e", 7},
	}

	cases := []struct {
		name     string
		edges    []edge
		isolated string
	}{
		{"negative_edges", clrsEdges, ""},
		{"mixed_components", mixed, "f"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustGraph(t, tc.edges)
			if tc.isolated != "" {
				if err := g.AddVertex(tc.isolated); err != nil {
					t.Fatal(err)
				}
				g.InitDiagonal()
			}
			res := mustRelax(t, g)

			adj := adjacency(tc.edges)
			for _, u := range res.Vertices() {
				for _, v := range res.Vertices() {
					want := shortestSimplePath(adj, u, v)
					if got := res.Distance(u, v); got != want {
						t.Errorf("Distance(%s,%s) = %v; brute force says %v", u, v, got, want)
					}
				}
			}
		})
	}
}

// ------------------------------------------------------------------------
// Helpers.
// ------------------------------------------------------------------------

// adjacency folds an edge list into nested weight maps, last write wins.
func adjacency(edges []edge) map[string]map[string]float64 {
	adj := make(map[string]map[string]float64)
	for _, e := range edges {
		if adj[e.u] == nil {
			adj[e.u] = make(map[string]float64)
		}
		adj[e.u][e.v] = e.w
	}

	return adj
}

// shortestSimplePath returns the minimum weight over all simple directed
// paths from u to v by depth-first enumeration, or +Inf when v is
// unreachable. Valid only on graphs without negative cycles, where some
// shortest path is always simple.
func shortestSimplePath(adj map[string]map[string]float64, u, v string) float64 {
	if u == v {
		return 0
	}

	best := math.Inf(1)
	visited := map[string]bool{u: true}
	var walk func(cur string, acc float64)
	walk = func(cur string, acc float64) {
		for next, w := range adj[cur] {
			if next == v {
				if acc+w < best {
					best = acc + w
				}

				continue
			}
			if visited[next] {
				continue
			}
			visited[next] = true
			walk(next, acc+w)
			visited[next] = false
		}
	}
	walk(u, 0)

	return best
}
