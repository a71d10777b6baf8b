package generator

import (
	"log"

	"roguelike3d/pkg/engine/assert"
	"roguelike3d/pkg/engine/graph"
	"roguelike3d/pkg/engine/pathfind"
	"roguelike3d/pkg/engine/world"
	"roguelike3d/pkg/game/rooms"
)

// Corridor is one routed connection between two rooms
type Corridor struct {
	Edge       graph.Edge
	Path       []world.Coordinates
	Staircases []world.StairsInfo
}

var (
	corridorAir = world.NewTile(world.CorridorAir, world.Color{R: 1, G: 1, B: 1})
	stairsAir   = world.NewTile(world.StairsAir, world.Color{R: 1, G: 1, B: 1})
)

// routeCorridors carves a corridor for every planned edge in order. Each
// corridor starts on an edge tile of the first room and ends on an edge tile
// of the second, walled with the first room's wall color.
func routeCorridors(cfg Config, pf *pathfind.Pathfinder, grid *world.Grid, placed []*rooms.Room, edges []graph.Edge, logger *log.Logger) ([]Corridor, []graph.Edge) {
	var corridors []Corridor
	var skipped []graph.Edge
	for _, e := range edges {
		from, to := placed[e.V1], placed[e.V2]
		path := pf.FindPath(from.WorldEdgeTiles(), to.WorldEdgeTiles(), to.Center(), grid)
		if len(path) == 0 {
			if cfg.CorridorPolicy == CorridorSkip {
				logger.Printf("no corridor between rooms %d and %d, skipping", e.V1, e.V2)
				skipped = append(skipped, e)
				continue
			}
			assert.Failf("no corridor between rooms %d and %d", e.V1, e.V2)
		}

		wall := world.NewTile(world.Block, from.WallColor)
		staircases := pathfind.PlacePathWithStairs(path, grid, wall, corridorAir, stairsAir)
		corridors = append(corridors, Corridor{Edge: e, Path: path, Staircases: staircases})
	}
	return corridors, skipped
}
