package graph

import (
	"math"

	"github.com/zyedidia/generic/mapset"
)

// jitterScale is the size of the deterministic perturbation applied to each
// input point relative to the bounding box span. Room centers lie on an
// integer lattice, so exact cospherical configurations are common.
const jitterScale = 1e-6

type tetra struct {
	v      [4]int
	center Point
	r2     float64
	dead   bool
}

type face [3]int

func makeFace(a, b, c int) face {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}
	return face{a, b, c}
}

// Delaunay returns the deduplicated, sorted edge set of the 3D Delaunay
// triangulation of points. Fewer than two points yield no edges; two or
// three points yield every pair.
func Delaunay(points []Point) []Edge {
	n := len(points)
	if n < 2 {
		return nil
	}
	if n < 4 {
		var edges []Edge
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				edges = append(edges, NewEdge(i, j))
			}
		}
		return edges
	}

	lo, hi := bounds(points)
	span := math.Max(hi.X-lo.X, math.Max(hi.Y-lo.Y, hi.Z-lo.Z))
	if span == 0 {
		span = 1
	}

	verts := make([]Point, 0, n+4)
	for i, p := range points {
		verts = append(verts, jitter(p, i, span))
	}

	// Super tetrahedron enclosing every point with a wide margin.
	mid := Point{(lo.X + hi.X) / 2, (lo.Y + hi.Y) / 2, (lo.Z + hi.Z) / 2}
	s := span * 1000
	verts = append(verts,
		Point{mid.X - s, mid.Y - s, mid.Z - s},
		Point{mid.X + s, mid.Y + s, mid.Z - s},
		Point{mid.X + s, mid.Y - s, mid.Z + s},
		Point{mid.X - s, mid.Y + s, mid.Z + s},
	)

	tetras := []*tetra{newTetra(verts, n, n+1, n+2, n+3)}

	for i := 0; i < n; i++ {
		p := verts[i]

		var bad []*tetra
		for _, t := range tetras {
			if p.dist2(t.center) < t.r2 {
				t.dead = true
				bad = append(bad, t)
			}
		}

		// Boundary of the cavity: faces used by exactly one bad tetrahedron.
		counts := make(map[face]int, len(bad)*4)
		var order []face
		for _, t := range bad {
			for _, f := range [4]face{
				makeFace(t.v[0], t.v[1], t.v[2]),
				makeFace(t.v[0], t.v[1], t.v[3]),
				makeFace(t.v[0], t.v[2], t.v[3]),
				makeFace(t.v[1], t.v[2], t.v[3]),
			} {
				if counts[f] == 0 {
					order = append(order, f)
				}
				counts[f]++
			}
		}

		alive := tetras[:0]
		for _, t := range tetras {
			if !t.dead {
				alive = append(alive, t)
			}
		}
		tetras = alive

		for _, f := range order {
			if counts[f] == 1 {
				tetras = append(tetras, newTetra(verts, f[0], f[1], f[2], i))
			}
		}
	}

	set := mapset.New[Edge]()
	for _, t := range tetras {
		for a := 0; a < 4; a++ {
			for b := a + 1; b < 4; b++ {
				if t.v[a] < n && t.v[b] < n {
					set.Put(NewEdge(t.v[a], t.v[b]))
				}
			}
		}
	}
	edges := make([]Edge, 0, set.Size())
	set.Each(func(e Edge) {
		edges = append(edges, e)
	})
	SortEdges(edges)
	return edges
}

func newTetra(verts []Point, a, b, c, d int) *tetra {
	center, r2 := circumsphere(verts[a], verts[b], verts[c], verts[d])
	return &tetra{v: [4]int{a, b, c, d}, center: center, r2: r2}
}

// circumsphere returns the center and squared radius of the sphere through
// four points. A flat tetrahedron has an infinite sphere.
func circumsphere(a, b, c, d Point) (Point, float64) {
	ba, ca, da := b.sub(a), c.sub(a), d.sub(a)
	det := 2 * ba.dot(ca.cross(da))
	if math.Abs(det) < 1e-12 {
		return a, math.Inf(1)
	}
	lb, lc, ld := ba.dot(ba), ca.dot(ca), da.dot(da)
	cd, db, bc := ca.cross(da), da.cross(ba), ba.cross(ca)
	off := Point{
		(lb*cd.X + lc*db.X + ld*bc.X) / det,
		(lb*cd.Y + lc*db.Y + ld*bc.Y) / det,
		(lb*cd.Z + lc*db.Z + ld*bc.Z) / det,
	}
	return Point{a.X + off.X, a.Y + off.Y, a.Z + off.Z}, off.dot(off)
}

func bounds(points []Point) (Point, Point) {
	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		lo = Point{math.Min(lo.X, p.X), math.Min(lo.Y, p.Y), math.Min(lo.Z, p.Z)}
		hi = Point{math.Max(hi.X, p.X), math.Max(hi.Y, p.Y), math.Max(hi.Z, p.Z)}
	}
	return lo, hi
}

// jitter offsets p by a tiny amount derived from its index.
func jitter(p Point, i int, span float64) Point {
	h := mix64(uint64(i) + 0x9e3779b97f4a7c15)
	unit := func(shift uint) float64 {
		return float64((h>>shift)&0xFFFF)/65535.0 - 0.5
	}
	k := span * jitterScale
	return Point{p.X + unit(0)*k, p.Y + unit(16)*k, p.Z + unit(32)*k}
}

func mix64(z uint64) uint64 {
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
