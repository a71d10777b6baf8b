package pathfind

import "roguelike3d/pkg/engine/world"

// CorridorWall returns the side-wall tile derived from wall
func CorridorWall(wall world.Tile) world.Tile {
	t := wall
	t.Type = world.CorridorBlock
	t.Color.R, t.Color.G = t.Color.G, t.Color.R
	t.Color.B = 1
	return t
}

// StairsWall returns the wall placed beside a staircase top part
func StairsWall(wall world.Tile) world.Tile {
	t := wall
	t.Type = world.StairsBlock
	t.Color.R = 1
	return t
}

// StairsWall2 returns the wall placed beside a staircase bottom part
func StairsWall2(wall world.Tile) world.Tile {
	t := wall
	t.Type = world.StairsBlock2
	t.Color.G = 1
	return t
}

// PlacePathWithStairs carves path into grid and encloses it in walls.
//
// Every path tile becomes air. Every vertical step becomes a staircase whose
// top and bottom parts take the staircase orientation and whose remaining
// tiles (shaft, supports and exit headroom) become stairsAir. Then each replaceable or out-of-bounds neighbour of a carved tile
// is walled: same-level neighbours get a corridor wall that later corridors may
// dig through, while floor and ceiling neighbours get wall itself, which they may not.
// The placed staircases are returned in path order.
func PlacePathWithStairs(path []world.Coordinates, grid *world.Grid, wall, air, stairsAir world.Tile) []world.StairsInfo {
	top := stairsAir
	top.Type = world.StairsTopPart
	bottom := stairsAir
	bottom.Type = world.StairsBottomPart

	var staircases []world.StairsInfo
	carved := make([]world.Coordinates, 0, len(path))
	for i, c := range path {
		grid.Set(c, air)
		carved = append(carved, c)
		if i == 0 || c.Y == path[i-1].Y {
			continue
		}

		info := world.GetStairsInfo(c, path[i-1])
		top.Orientation = info.Orientation
		bottom.Orientation = info.Orientation
		grid.Set(info.Tiles[world.StairsTop], top)
		grid.Set(info.Tiles[world.StairsBottom], bottom)
		for _, c := range info.Tiles[world.StairsShaft1:] {
			grid.Set(c, stairsAir)
		}
		carved = append(carved, info.Tiles[:]...)
		staircases = append(staircases, info)
	}

	corridorWall := CorridorWall(wall)
	stairsWall := StairsWall(wall)
	stairsWall2 := StairsWall2(wall)

	for _, c := range carved {
		kind := grid.Type(c)
		for _, adj := range c.Neighbours() {
			if grid.InBounds(adj) && !grid.Type(adj).Replaceable() {
				continue
			}
			if adj.Y != c.Y {
				grid.SetInOrOutOfBounds(adj, wall)
				continue
			}
			switch kind {
			case world.StairsTopPart:
				grid.SetInOrOutOfBounds(adj, stairsWall)
			case world.StairsBottomPart:
				grid.SetInOrOutOfBounds(adj, stairsWall2)
			default:
				grid.SetInOrOutOfBounds(adj, corridorWall)
			}
		}
	}
	return staircases
}
