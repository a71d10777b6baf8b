package world

import (
	"sort"

	"roguelike3d/pkg/engine/assert"
)

// Grid is the bounded tile volume with a sparse out-of-bounds overlay.
// Tiles are stored densely in x, y, z order; the overlay holds tiles that
// corridor walls spill past the volume boundary.
type Grid struct {
	dims    Dimensions
	tiles   []Tile
	overlay map[Coordinates]Tile
}

// NewGrid creates a grid of Void tiles with the given dimensions
func NewGrid(dims Dimensions) *Grid {
	assert.That(dims.Width > 0 && dims.Height > 0 && dims.Length > 0, "dims.Width > 0 && dims.Height > 0 && dims.Length > 0")
	return &Grid{
		dims:    dims,
		tiles:   make([]Tile, dims.Volume()),
		overlay: make(map[Coordinates]Tile),
	}
}

// Dims returns the grid dimensions
func (g *Grid) Dims() Dimensions {
	return g.dims
}

// InBounds checks if a position is within grid bounds
func (g *Grid) InBounds(c Coordinates) bool {
	return g.dims.Contains(c)
}

// Get returns the tile at an in-bounds position
func (g *Grid) Get(c Coordinates) Tile {
	assert.That(g.dims.Contains(c), "g.dims.Contains(c)")
	return g.tiles[g.dims.Index(c)]
}

// Type returns the tile type at an in-bounds position
func (g *Grid) Type(c Coordinates) TileType {
	return g.Get(c).Type
}

// Set replaces the tile at an in-bounds position
func (g *Grid) Set(c Coordinates, t Tile) {
	assert.That(g.dims.Contains(c), "g.dims.Contains(c)")
	g.tiles[g.dims.Index(c)] = t
}

// GetIndex returns the tile at a linear index
func (g *Grid) GetIndex(i int) Tile {
	return g.tiles[i]
}

// GetInOrOutOfBounds returns the tile at any position.
// Positions outside the volume read from the overlay and default to Void.
func (g *Grid) GetInOrOutOfBounds(c Coordinates) Tile {
	if g.dims.Contains(c) {
		return g.tiles[g.dims.Index(c)]
	}
	return g.overlay[c]
}

// SetInOrOutOfBounds writes a tile at any position.
// Positions outside the volume are written to the overlay.
func (g *Grid) SetInOrOutOfBounds(c Coordinates, t Tile) {
	if g.dims.Contains(c) {
		g.tiles[g.dims.Index(c)] = t
		return
	}
	g.overlay[c] = t
}

// OverlaySize returns the number of out-of-bounds tiles
func (g *Grid) OverlaySize() int {
	return len(g.overlay)
}

// OverlayCoordinates returns the overlay positions in lexicographic order
func (g *Grid) OverlayCoordinates() []Coordinates {
	coords := make([]Coordinates, 0, len(g.overlay))
	for c := range g.overlay {
		coords = append(coords, c)
	}
	sort.Slice(coords, func(i, j int) bool { return coords[i].Less(coords[j]) })
	return coords
}

// ForEach iterates over every in-bounds tile in index order
func (g *Grid) ForEach(fn func(c Coordinates, t Tile)) {
	for i, t := range g.tiles {
		fn(g.dims.At(i), t)
	}
}

// ForEachOverlay iterates over the overlay in lexicographic order
func (g *Grid) ForEachOverlay(fn func(c Coordinates, t Tile)) {
	for _, c := range g.OverlayCoordinates() {
		fn(c, g.overlay[c])
	}
}

// Count returns the number of in-bounds tiles of the given type
func (g *Grid) Count(t TileType) int {
	n := 0
	for _, tile := range g.tiles {
		if tile.Type == t {
			n++
		}
	}
	return n
}

// Clear resets every tile to Void and drops the overlay
func (g *Grid) Clear() {
	for i := range g.tiles {
		g.tiles[i] = Tile{}
	}
	clear(g.overlay)
}
