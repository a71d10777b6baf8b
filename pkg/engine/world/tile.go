// Package world provides 3D voxel grid primitives: tiles, coordinates,
// the bounded tile grid with its out-of-bounds overlay, and staircase geometry.
package world

// TileType identifies what occupies a single voxel.
type TileType uint8

// TileType constants. Void is the zero value.
const (
	Void TileType = iota
	Air
	Block
	CorridorBlock
	CorridorAir
	StairsAir
	StairsTopPart
	StairsBottomPart
	StairsBlock
	StairsBlock2
	FakeAir
)

// AllTileTypes returns all tile types in declaration order
func AllTileTypes() []TileType {
	return []TileType{
		Void, Air, Block, CorridorBlock, CorridorAir, StairsAir,
		StairsTopPart, StairsBottomPart, StairsBlock, StairsBlock2, FakeAir,
	}
}

// String returns the string representation of a tile type
func (t TileType) String() string {
	switch t {
	case Void:
		return "Void"
	case Air:
		return "Air"
	case Block:
		return "Block"
	case CorridorBlock:
		return "CorridorBlock"
	case CorridorAir:
		return "CorridorAir"
	case StairsAir:
		return "StairsAir"
	case StairsTopPart:
		return "StairsTopPart"
	case StairsBottomPart:
		return "StairsBottomPart"
	case StairsBlock:
		return "StairsBlock"
	case StairsBlock2:
		return "StairsBlock2"
	case FakeAir:
		return "FakeAir"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the tile type is one of the declared constants
func (t TileType) IsValid() bool {
	return t <= FakeAir
}

// CorridorCanPass reports whether a planar corridor step may enter a tile of this type.
func (t TileType) CorridorCanPass() bool {
	return t == Void || t == CorridorBlock || t == CorridorAir
}

// CanPlaceStairs reports whether a staircase tile may be placed over this type.
func (t TileType) CanPlaceStairs() bool {
	return t == Void || t == CorridorBlock
}

// IsSolid reports whether the tile blocks movement.
func (t TileType) IsSolid() bool {
	switch t {
	case Block, CorridorBlock, StairsBlock, StairsBlock2:
		return true
	}
	return false
}

// IsStairs reports whether the tile belongs to a staircase.
func (t TileType) IsStairs() bool {
	switch t {
	case StairsAir, StairsTopPart, StairsBottomPart, StairsBlock, StairsBlock2:
		return true
	}
	return false
}

// Replaceable reports whether a corridor wall may overwrite a tile of this type.
// Floors and ceilings (Block) are never replaceable.
func (t TileType) Replaceable() bool {
	switch t {
	case Void, CorridorBlock, StairsBlock, StairsBlock2:
		return true
	}
	return false
}

// IsEmpty reports whether the tile is part of an open walkable volume.
func (t TileType) IsEmpty() bool {
	switch t {
	case Air, CorridorAir, StairsAir:
		return true
	}
	return false
}

// Color is a linear RGB render color
type Color struct {
	R float32 `json:"r"`
	G float32 `json:"g"`
	B float32 `json:"b"`
}

// Tile is a single voxel of the dungeon.
type Tile struct {
	Type        TileType
	Orientation Orientation
	Color       Color
}

// NewTile creates a tile with no orientation
func NewTile(t TileType, c Color) Tile {
	return Tile{Type: t, Color: c}
}
