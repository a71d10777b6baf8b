package pathfind

import (
	"fmt"

	"roguelike3d/pkg/engine/world"
)

// Costs is the per-tile traversal policy of the pathfinder.
type Costs struct {
	CorridorVoid  float64 `yaml:"corridor_void"`
	CorridorAir   float64 `yaml:"corridor_air"`
	CorridorBlock float64 `yaml:"corridor_block"`
	CorridorOther float64 `yaml:"corridor_other"`

	StairsVoid          float64 `yaml:"stairs_void"`
	StairsCorridorBlock float64 `yaml:"stairs_corridor_block"`
	StairsBlock         float64 `yaml:"stairs_block"`
	StairsBlock2        float64 `yaml:"stairs_block2"`
	StairsOther         float64 `yaml:"stairs_other"`
}

// DefaultCosts returns the standard tuning: reusing corridors is cheaper than
// digging fresh Void, and staircases cost an order of magnitude more than planar steps.
func DefaultCosts() Costs {
	return Costs{
		CorridorVoid:  10,
		CorridorAir:   6,
		CorridorBlock: 8,
		CorridorOther: 500,

		StairsVoid:          100,
		StairsCorridorBlock: 90,
		StairsBlock:         80,
		StairsBlock2:        80,
		StairsOther:         10000,
	}
}

// Corridor returns the cost of a planar step into a tile of type t
func (c Costs) Corridor(t world.TileType) float64 {
	switch t {
	case world.Void:
		return c.CorridorVoid
	case world.CorridorAir:
		return c.CorridorAir
	case world.CorridorBlock:
		return c.CorridorBlock
	default:
		return c.CorridorOther
	}
}

// Stairs returns the cost of placing one staircase tile over a tile of type t
func (c Costs) Stairs(t world.TileType) float64 {
	switch t {
	case world.Void:
		return c.StairsVoid
	case world.CorridorBlock:
		return c.StairsCorridorBlock
	case world.StairsBlock:
		return c.StairsBlock
	case world.StairsBlock2:
		return c.StairsBlock2
	default:
		return c.StairsOther
	}
}

// Validate checks that the tuning keeps the qualitative routing bias
func (c Costs) Validate() error {
	for name, v := range map[string]float64{
		"corridor_void": c.CorridorVoid, "corridor_air": c.CorridorAir,
		"corridor_block": c.CorridorBlock, "corridor_other": c.CorridorOther,
		"stairs_void": c.StairsVoid, "stairs_corridor_block": c.StairsCorridorBlock,
		"stairs_block": c.StairsBlock, "stairs_block2": c.StairsBlock2, "stairs_other": c.StairsOther,
	} {
		if v <= 0 {
			return fmt.Errorf("cost %s must be positive, got %v", name, v)
		}
	}
	if !(c.CorridorAir < c.CorridorBlock && c.CorridorBlock < c.CorridorVoid) {
		return fmt.Errorf("corridor costs must satisfy air < block < void, got %v/%v/%v",
			c.CorridorAir, c.CorridorBlock, c.CorridorVoid)
	}
	if c.StairsVoid <= c.CorridorVoid {
		return fmt.Errorf("stairs_void (%v) must exceed corridor_void (%v)", c.StairsVoid, c.CorridorVoid)
	}
	return nil
}
