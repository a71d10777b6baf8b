package generator

import (
	"github.com/zyedidia/generic/mapset"

	"roguelike3d/pkg/engine/graph"
	"roguelike3d/pkg/engine/rng"
	"roguelike3d/pkg/game/rooms"
)

// Plan is the room connectivity chosen for a dungeon
type Plan struct {
	Triangulation []graph.Edge
	SpanningTree  []graph.Edge
	// Edges is the final corridor list in routing order.
	Edges []graph.Edge
}

// planConnections triangulates the room centers, keeps the minimum spanning
// tree and a random share of the remaining edges, then shuffles the result.
func planConnections(cfg Config, r *rng.Stream, placed []*rooms.Room) Plan {
	points := make([]graph.Point, len(placed))
	for i, room := range placed {
		c := room.Center()
		points[i] = graph.Point{X: float64(c.X), Y: float64(c.Y), Z: float64(c.Z)}
	}

	var plan Plan
	plan.Triangulation = graph.Delaunay(points)
	if len(plan.Triangulation) == 0 {
		return plan
	}

	weighted := make([]graph.WeightedEdge, len(plan.Triangulation))
	for i, e := range plan.Triangulation {
		weighted[i] = graph.WeightedEdge{Edge: e, Weight: edgeWeight(points[e.V1], points[e.V2], cfg.VerticalWeight)}
	}
	plan.SpanningTree = graph.MinimumSpanningTree(len(points), weighted)

	keep := mapset.New[graph.Edge]()
	for _, e := range plan.SpanningTree {
		keep.Put(e)
	}
	for _, e := range plan.Triangulation {
		if keep.Has(e) {
			continue
		}
		if r.Chance(cfg.ExtraEdgeChance) {
			keep.Put(e)
		}
	}

	edges := make([]graph.Edge, 0, keep.Size())
	keep.Each(func(e graph.Edge) {
		edges = append(edges, e)
	})
	graph.SortEdges(edges)
	r.Shuffle(len(edges), func(i, j int) {
		edges[i], edges[j] = edges[j], edges[i]
	})
	plan.Edges = edges
	return plan
}

// edgeWeight is the squared distance with the vertical component scaled by k.
func edgeWeight(a, b graph.Point, k float64) float64 {
	dx, dy, dz := a.X-b.X, (a.Y-b.Y)*k, a.Z-b.Z
	return dx*dx + dy*dy + dz*dz
}
