package graph

import "sort"

// WeightedEdge is an edge with a traversal weight
type WeightedEdge struct {
	Edge
	Weight float64
}

// MinimumSpanningTree returns the Kruskal minimum spanning forest over n vertices.
// Ties are broken by edge order so the result is deterministic.
func MinimumSpanningTree(n int, edges []WeightedEdge) []Edge {
	sorted := make([]WeightedEdge, len(edges))
	copy(sorted, edges)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Weight != sorted[j].Weight {
			return sorted[i].Weight < sorted[j].Weight
		}
		return sorted[i].Edge.Less(sorted[j].Edge)
	})

	uf := newUnionFind(n)
	var tree []Edge
	for _, e := range sorted {
		if len(tree) == n-1 {
			break
		}
		if uf.union(e.V1, e.V2) {
			tree = append(tree, e.Edge)
		}
	}
	return tree
}

type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n), rank: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

func (uf *unionFind) find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}
	return x
}

// union merges the sets of a and b and reports whether they were distinct.
func (uf *unionFind) union(a, b int) bool {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return false
	}
	switch {
	case uf.rank[ra] < uf.rank[rb]:
		uf.parent[ra] = rb
	case uf.rank[ra] > uf.rank[rb]:
		uf.parent[rb] = ra
	default:
		uf.parent[rb] = ra
		uf.rank[ra]++
	}
	return true
}

// Connected reports whether edges connect all n vertices
func Connected(n int, edges []Edge) bool {
	if n <= 1 {
		return true
	}
	uf := newUnionFind(n)
	components := n
	for _, e := range edges {
		if uf.union(e.V1, e.V2) {
			components--
		}
	}
	return components == 1
}
