// Package graph provides room-graph primitives: undirected edges,
// 3D Delaunay triangulation and minimum spanning trees.
package graph

import (
	"fmt"
	"sort"
)

// Edge is an unordered pair of vertex indices normalized so V1 < V2.
type Edge struct {
	V1 int `json:"from"`
	V2 int `json:"to"`
}

// NewEdge returns the normalized edge between a and b
func NewEdge(a, b int) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{V1: a, V2: b}
}

// Less orders edges by V1, then V2
func (e Edge) Less(o Edge) bool {
	if e.V1 != o.V1 {
		return e.V1 < o.V1
	}
	return e.V2 < o.V2
}

func (e Edge) String() string {
	return fmt.Sprintf("%d-%d", e.V1, e.V2)
}

// SortEdges sorts edges in place by V1, then V2
func SortEdges(edges []Edge) {
	sort.Slice(edges, func(i, j int) bool { return edges[i].Less(edges[j]) })
}

// Point is a vertex position in 3D space
type Point struct {
	X, Y, Z float64
}

func (p Point) sub(o Point) Point {
	return Point{p.X - o.X, p.Y - o.Y, p.Z - o.Z}
}

func (p Point) dot(o Point) float64 {
	return p.X*o.X + p.Y*o.Y + p.Z*o.Z
}

func (p Point) cross(o Point) Point {
	return Point{
		p.Y*o.Z - p.Z*o.Y,
		p.Z*o.X - p.X*o.Z,
		p.X*o.Y - p.Y*o.X,
	}
}

func (p Point) dist2(o Point) float64 {
	d := p.sub(o)
	return d.dot(d)
}
