package generator

import (
	"roguelike3d/pkg/engine/rng"
	"roguelike3d/pkg/engine/world"
	"roguelike3d/pkg/game/rooms"
)

// PlacementStats counts the outcome of the rejection sampler
type PlacementStats struct {
	Tries       int `json:"tries"`
	OutOfBounds int `json:"out_of_bounds"`
	Overlaps    int `json:"overlaps"`
}

// footprint marks every tile claimed by a placed room: its occupied tiles and their six neighbours.
type footprint struct {
	dims    world.Dimensions
	claimed []bool
}

func newFootprint(dims world.Dimensions) *footprint {
	return &footprint{dims: dims, claimed: make([]bool, dims.Volume())}
}

func (f *footprint) claim(room *rooms.Room) {
	room.ForEachOccupied(func(c world.Coordinates, _ world.Tile) {
		f.mark(c)
		for _, n := range c.Neighbours() {
			f.mark(n)
		}
	})
}

func (f *footprint) mark(c world.Coordinates) {
	if f.dims.Contains(c) {
		f.claimed[f.dims.Index(c)] = true
	}
}

func (f *footprint) overlaps(room *rooms.Room) bool {
	hit := false
	room.ForEachOccupied(func(c world.Coordinates, _ world.Tile) {
		if !hit && f.claimed[f.dims.Index(c)] {
			hit = true
		}
	})
	return hit
}

// placeRooms rejection-samples rooms into grid until the target count is
// reached or the try budget runs out. Each try consumes two sub-seeds from r:
// one for the room itself and one to continue the outer stream.
func placeRooms(cfg Config, r *rng.Stream, grid *world.Grid) ([]*rooms.Room, PlacementStats) {
	var placed []*rooms.Room
	var stats PlacementStats
	dims := grid.Dims()
	fp := newFootprint(dims)
	weights := cfg.KindWeights.slice()
	kinds := rooms.AllKinds()

	for stats.Tries < cfg.TryBudget && len(placed) < cfg.TargetRooms {
		stats.Tries++

		kind := kinds[r.Weighted(weights)]
		roomSeed := r.Next()
		nextSeed := r.Next()

		r.Seed(roomSeed)
		room := rooms.Generate(kind, r, roomSeed, cfg.RoomSizes)
		room.Offset = world.Coordinates{
			X: r.IntRange(0, dims.Width-room.Size.Width),
			Y: r.IntRange(0, dims.Height-room.Size.Height),
			Z: r.IntRange(0, dims.Length-room.Size.Length),
		}
		r.Seed(nextSeed)

		if !room.Box().FitsIn(dims) {
			stats.OutOfBounds++
			continue
		}
		if fp.overlaps(room) {
			stats.Overlaps++
			continue
		}

		room.Place(grid)
		fp.claim(room)
		placed = append(placed, room)
	}
	return placed, stats
}
