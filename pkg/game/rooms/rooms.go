// Package rooms generates the room shapes placed by the dungeon generator.
//
// A room owns a local tile buffer that includes a one-tile margin on every
// side. Void cells are not part of the room; FakeAir cells reserve space but
// are never written into the dungeon.
package rooms

import (
	"fmt"
	"strings"

	"roguelike3d/pkg/engine/assert"
	"roguelike3d/pkg/engine/rng"
	"roguelike3d/pkg/engine/world"
)

// Kind is the shape variant of a room
type Kind uint8

// Kind constants
const (
	Rect Kind = iota
	Oval
	Ellipsoid
)

// Margin is the number of buffer tiles reserved around every room shape
const Margin = 1

// AllKinds returns all room kinds for iteration
func AllKinds() []Kind {
	return []Kind{Rect, Oval, Ellipsoid}
}

// String returns the string representation of a kind
func (k Kind) String() string {
	switch k {
	case Rect:
		return "rect"
	case Oval:
		return "oval"
	case Ellipsoid:
		return "ellipsoid"
	default:
		return "unknown"
	}
}

// ParseKind returns the kind with the given name
func ParseKind(s string) (Kind, error) {
	for _, k := range AllKinds() {
		if strings.EqualFold(s, k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown room kind %q", s)
}

// Room is one generated room. Offset is zero until the room is placed.
type Room struct {
	Kind      Kind
	Seed      int64
	Offset    world.Coordinates
	Size      world.Dimensions
	Tiles     []world.Tile
	EdgeTiles []world.Coordinates
	WallColor world.Color
}

// Box returns the room's bounding box in dungeon coordinates
func (r *Room) Box() world.Box {
	return world.Box{Offset: r.Offset, Size: r.Size}
}

// Center returns offset + size/2
func (r *Room) Center() world.Coordinates {
	return r.Box().Center()
}

// Local returns the tile at local buffer coordinates
func (r *Room) Local(c world.Coordinates) world.Tile {
	return r.Tiles[r.Size.Index(c)]
}

func (r *Room) set(c world.Coordinates, t world.Tile) {
	r.Tiles[r.Size.Index(c)] = t
}

// WorldEdgeTiles returns the edge tiles translated into dungeon coordinates
func (r *Room) WorldEdgeTiles() []world.Coordinates {
	out := make([]world.Coordinates, len(r.EdgeTiles))
	for i, c := range r.EdgeTiles {
		out[i] = c.Add(r.Offset)
	}
	return out
}

// ForEachOccupied calls fn with the dungeon coordinates of every non-Void tile
func (r *Room) ForEachOccupied(fn func(c world.Coordinates, t world.Tile)) {
	for i, t := range r.Tiles {
		if t.Type != world.Void {
			fn(r.Size.At(i).Add(r.Offset), t)
		}
	}
}

// Place stamps the room into grid, skipping Void and FakeAir tiles.
func (r *Room) Place(grid *world.Grid) {
	assert.That(r.Box().FitsIn(grid.Dims()), "r.Box().FitsIn(grid.Dims())")
	r.ForEachOccupied(func(c world.Coordinates, t world.Tile) {
		if t.Type != world.FakeAir {
			grid.Set(c, t)
		}
	})
}

// Generate creates a room of the given kind from the seeded stream.
func Generate(kind Kind, r *rng.Stream, seed int64, sizes Sizes) *Room {
	var room *Room
	switch kind {
	case Rect:
		room = generateRect(r, sizes.Rect)
	case Oval:
		room = generateShape(r, sizes.Oval, insideOval)
	case Ellipsoid:
		room = generateShape(r, sizes.Ellipsoid, insideEllipsoid)
	default:
		assert.Failf("unknown room kind %d", kind)
	}
	room.Kind = kind
	room.Seed = seed
	room.EdgeTiles = findEdgeTiles(room)
	assert.That(len(room.EdgeTiles) > 0, "len(room.EdgeTiles) > 0")
	return room
}

func sampleSize(r *rng.Stream, sr SizeRange) world.Dimensions {
	return world.Dimensions{
		Width:  r.IntRange(sr.Min.Width, sr.Max.Width),
		Height: r.IntRange(sr.Min.Height, sr.Max.Height),
		Length: r.IntRange(sr.Min.Length, sr.Max.Length),
	}
}

func sampleWallColor(r *rng.Stream) world.Color {
	return world.Color{
		R: r.Float32Range(0.3, 1),
		G: r.Float32Range(0.3, 1),
		B: r.Float32Range(0.3, 1),
	}
}

var white = world.Color{R: 1, G: 1, B: 1}

func newRoom(size world.Dimensions, fill world.TileType, wallColor world.Color) *Room {
	room := &Room{
		Size:      size,
		Tiles:     make([]world.Tile, size.Volume()),
		WallColor: wallColor,
	}
	if fill != world.Void {
		for i := range room.Tiles {
			room.Tiles[i] = world.NewTile(fill, white)
		}
	}
	return room
}

// generateRect builds a box room: FakeAir margin, Block shell, Air interior.
func generateRect(r *rng.Stream, sr SizeRange) *Room {
	size := sampleSize(r, sr)
	room := newRoom(size, world.FakeAir, sampleWallColor(r))
	wall := world.NewTile(world.Block, room.WallColor)
	air := world.NewTile(world.Air, white)

	inner := world.Box{
		Offset: world.Coordinates{X: Margin, Y: Margin, Z: Margin},
		Size:   world.Dimensions{Width: size.Width - 2*Margin, Height: size.Height - 2*Margin, Length: size.Length - 2*Margin},
	}
	shell := inner.Max().Sub(world.Coordinates{X: 1, Y: 1, Z: 1})
	inner.ForEach(func(c world.Coordinates) {
		onShell := c.X == inner.Offset.X || c.X == shell.X ||
			c.Y == inner.Offset.Y || c.Y == shell.Y ||
			c.Z == inner.Offset.Z || c.Z == shell.Z
		if onShell {
			room.set(c, wall)
		} else {
			room.set(c, air)
		}
	})
	return room
}

// insideFn reports whether local cell c of a buffer of the given size lies in the shape.
type insideFn func(c world.Coordinates, size world.Dimensions) bool

// axis returns the normalized offset of cell i from the center of the
// margin-trimmed span [Margin, n-Margin).
func axis(i, n int) float64 {
	half := float64(n-2*Margin) / 2
	center := float64(n) / 2
	return (float64(i) + 0.5 - center) / half
}

func inBody(c world.Coordinates, size world.Dimensions) bool {
	return c.X >= Margin && c.X < size.Width-Margin &&
		c.Y >= Margin && c.Y < size.Height-Margin &&
		c.Z >= Margin && c.Z < size.Length-Margin
}

// insideOval is a vertical elliptic cylinder filling the body height.
func insideOval(c world.Coordinates, size world.Dimensions) bool {
	if !inBody(c, size) {
		return false
	}
	x, z := axis(c.X, size.Width), axis(c.Z, size.Length)
	return x*x+z*z <= 1
}

func insideEllipsoid(c world.Coordinates, size world.Dimensions) bool {
	if !inBody(c, size) {
		return false
	}
	x, y, z := axis(c.X, size.Width), axis(c.Y, size.Height), axis(c.Z, size.Length)
	return x*x+y*y+z*z <= 1
}

// generateShape rasterizes a curved room. Cells whose six neighbours all lie in
// the shape become Air, the remaining shape cells become Block, and Block cells
// with no Air among their 26 neighbours are dropped.
func generateShape(r *rng.Stream, sr SizeRange, inside insideFn) *Room {
	size := sampleSize(r, sr)
	room := newRoom(size, world.Void, sampleWallColor(r))
	wall := world.NewTile(world.Block, room.WallColor)
	air := world.NewTile(world.Air, white)

	bounds := world.Box{Size: size}
	bounds.ForEach(func(c world.Coordinates) {
		if !inside(c, size) {
			return
		}
		for _, n := range c.Neighbours() {
			if !inside(n, size) {
				room.set(c, wall)
				return
			}
		}
		room.set(c, air)
	})

	bounds.ForEach(func(c world.Coordinates) {
		if room.Local(c).Type != world.Block {
			return
		}
		if !touchesAir(room, c) {
			room.set(c, world.Tile{})
		}
	})
	return room
}

func touchesAir(room *Room, c world.Coordinates) bool {
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				n := c.Add(world.Coordinates{X: dx, Y: dy, Z: dz})
				if room.Size.Contains(n) && room.Local(n).Type == world.Air {
					return true
				}
			}
		}
	}
	return false
}

// outside reports whether local cell c is beyond the room: out of the buffer, Void or FakeAir.
func outside(room *Room, c world.Coordinates) bool {
	if !room.Size.Contains(c) {
		return true
	}
	t := room.Local(c).Type
	return t == world.Void || t == world.FakeAir
}

// findEdgeTiles returns the wall cells a corridor may enter through: cells on
// the lowest usable Air layer with Air on one horizontal side and the outside
// on the opposite side.
func findEdgeTiles(room *Room) []world.Coordinates {
	for y := 0; y < room.Size.Height; y++ {
		if !layerHasAir(room, y) {
			continue
		}
		var edges []world.Coordinates
		for x := 0; x < room.Size.Width; x++ {
			for z := 0; z < room.Size.Length; z++ {
				c := world.Coordinates{X: x, Y: y, Z: z}
				if room.Local(c).Type != world.Block {
					continue
				}
				for _, o := range world.AllOrientations() {
					d := o.Delta()
					in := c.Sub(d)
					if room.Size.Contains(in) && room.Local(in).Type == world.Air && outside(room, c.Add(d)) {
						edges = append(edges, c)
						break
					}
				}
			}
		}
		if len(edges) > 0 {
			return edges
		}
	}
	return nil
}

func layerHasAir(room *Room, y int) bool {
	for x := 0; x < room.Size.Width; x++ {
		for z := 0; z < room.Size.Length; z++ {
			if room.Local(world.Coordinates{X: x, Y: y, Z: z}).Type == world.Air {
				return true
			}
		}
	}
	return false
}
