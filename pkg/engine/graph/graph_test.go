package graph

import (
	"math/rand"
	"testing"
)

func TestDelaunay_SmallInputs(t *testing.T) {
	if got := Delaunay(nil); len(got) != 0 {
		t.Errorf("Delaunay(nil) = %v, want none", got)
	}
	if got := Delaunay([]Point{{0, 0, 0}}); len(got) != 0 {
		t.Errorf("Delaunay(1 point) = %v, want none", got)
	}
	if got := Delaunay([]Point{{0, 0, 0}, {5, 0, 0}}); len(got) != 1 || got[0] != (Edge{0, 1}) {
		t.Errorf("Delaunay(2 points) = %v, want [0-1]", got)
	}
	if got := Delaunay([]Point{{0, 0, 0}, {5, 0, 0}, {0, 5, 0}}); len(got) != 3 {
		t.Errorf("Delaunay(3 points) = %v, want all 3 pairs", got)
	}
}

func TestDelaunay_SingleTetrahedron(t *testing.T) {
	got := Delaunay([]Point{{0, 0, 0}, {10, 0, 0}, {0, 10, 0}, {0, 0, 10}})
	if len(got) != 6 {
		t.Fatalf("Delaunay(tetrahedron) = %v, want 6 edges", got)
	}
	for i := 1; i < len(got); i++ {
		if !got[i-1].Less(got[i]) {
			t.Errorf("edges not sorted: %v", got)
		}
	}
}

func TestDelaunay_LatticeCubeIsConnected(t *testing.T) {
	var pts []Point
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			for z := 0; z < 3; z++ {
				pts = append(pts, Point{float64(x * 10), float64(y * 10), float64(z * 10)})
			}
		}
	}
	edges := Delaunay(pts)
	if !Connected(len(pts), edges) {
		t.Fatalf("lattice triangulation is not connected: %d edges", len(edges))
	}
	// Every lattice neighbour pair is a Delaunay edge of a cubic lattice.
	set := make(map[Edge]bool)
	for _, e := range edges {
		set[e] = true
	}
	idx := func(x, y, z int) int { return x*9 + y*3 + z }
	if !set[NewEdge(idx(0, 0, 0), idx(1, 0, 0))] || !set[NewEdge(idx(1, 1, 1), idx(1, 1, 2))] {
		t.Error("missing axis-aligned lattice edge")
	}
}

// emptySphere reports whether the circumsphere of the four points contains no
// other point with a clear margin.
func emptySphere(pts []Point, q [4]int) bool {
	c, r2 := circumsphere(pts[q[0]], pts[q[1]], pts[q[2]], pts[q[3]])
	if r2 > 1e6 {
		return false
	}
	for i, p := range pts {
		if i == q[0] || i == q[1] || i == q[2] || i == q[3] {
			continue
		}
		if p.dist2(c) < r2*(1+1e-3) {
			return false
		}
	}
	return true
}

func TestDelaunay_ContainsEveryEmptySphereTetrahedron(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	pts := make([]Point, 14)
	for i := range pts {
		pts[i] = Point{r.Float64() * 60, r.Float64() * 30, r.Float64() * 60}
	}
	edges := Delaunay(pts)
	set := make(map[Edge]bool)
	for _, e := range edges {
		set[e] = true
	}

	n := len(pts)
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			for c := b + 1; c < n; c++ {
				for d := c + 1; d < n; d++ {
					q := [4]int{a, b, c, d}
					if !emptySphere(pts, q) {
						continue
					}
					for i := 0; i < 4; i++ {
						for j := i + 1; j < 4; j++ {
							if !set[NewEdge(q[i], q[j])] {
								t.Errorf("empty-sphere tetrahedron %v missing edge %d-%d", q, q[i], q[j])
							}
						}
					}
				}
			}
		}
	}
}

func TestDelaunay_Deterministic(t *testing.T) {
	pts := []Point{{1, 2, 3}, {20, 4, 7}, {8, 15, 30}, {40, 2, 12}, {33, 20, 41}, {5, 5, 50}}
	a := Delaunay(pts)
	b := Delaunay(pts)
	if len(a) != len(b) {
		t.Fatalf("edge counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("edge %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestMinimumSpanningTree(t *testing.T) {
	edges := []WeightedEdge{
		{NewEdge(0, 1), 1},
		{NewEdge(1, 2), 2},
		{NewEdge(0, 2), 3},
		{NewEdge(2, 3), 1},
		{NewEdge(1, 3), 5},
	}
	tree := MinimumSpanningTree(4, edges)
	if len(tree) != 3 {
		t.Fatalf("len(tree) = %d, want 3", len(tree))
	}
	want := map[Edge]bool{{0, 1}: true, {2, 3}: true, {1, 2}: true}
	for _, e := range tree {
		if !want[e] {
			t.Errorf("unexpected tree edge %v", e)
		}
	}
	if !Connected(4, tree) {
		t.Error("tree does not span")
	}
}

func TestMinimumSpanningTree_TieBreakByEdgeOrder(t *testing.T) {
	edges := []WeightedEdge{
		{NewEdge(1, 2), 1},
		{NewEdge(0, 2), 1},
		{NewEdge(0, 1), 1},
	}
	tree := MinimumSpanningTree(3, edges)
	if len(tree) != 2 || tree[0] != (Edge{0, 1}) || tree[1] != (Edge{0, 2}) {
		t.Errorf("tree = %v, want [0-1 0-2]", tree)
	}
}

func TestConnected(t *testing.T) {
	if Connected(3, []Edge{{0, 1}}) {
		t.Error("Connected reported true for a split graph")
	}
	if !Connected(1, nil) {
		t.Error("a single vertex is connected")
	}
}
