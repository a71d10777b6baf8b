// Package renderdata extracts draw instances from a dungeon grid for
// instanced rendering by an external renderer.
package renderdata

import (
	"fmt"

	"roguelike3d/pkg/engine/assert"
	"roguelike3d/pkg/engine/world"
)

// Tag selects the mesh an instance is drawn with
type Tag uint8

// Tag constants
const (
	Solid Tag = iota
	StairsNorth
	StairsSouth
	StairsEast
	StairsWest
)

// AllTags returns every tag in batch order
func AllTags() []Tag {
	return []Tag{Solid, StairsNorth, StairsSouth, StairsEast, StairsWest}
}

func (t Tag) String() string {
	switch t {
	case Solid:
		return "solid"
	case StairsNorth:
		return "stairs_north"
	case StairsSouth:
		return "stairs_south"
	case StairsEast:
		return "stairs_east"
	case StairsWest:
		return "stairs_west"
	default:
		return "unknown"
	}
}

// MarshalText encodes the tag by name
func (t Tag) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes a tag name
func (t *Tag) UnmarshalText(b []byte) error {
	for _, tag := range AllTags() {
		if tag.String() == string(b) {
			*t = tag
			return nil
		}
	}
	return fmt.Errorf("unknown render tag %q", b)
}

// Instance is one drawable tile
type Instance struct {
	Position world.Coordinates `json:"pos"`
	Color    world.Color       `json:"color"`
	Tag      Tag               `json:"tag"`
}

// Batch groups the instances sharing a tag
type Batch struct {
	Tag       Tag        `json:"tag"`
	Instances []Instance `json:"instances"`
}

func stairsTag(o world.Orientation) Tag {
	switch o {
	case world.North:
		return StairsNorth
	case world.South:
		return StairsSouth
	case world.East:
		return StairsEast
	case world.West:
		return StairsWest
	}
	assert.Failf("staircase part without orientation")
	return Solid
}

// instanceOf reports whether t is drawn and how
func instanceOf(c world.Coordinates, t world.Tile) (Instance, bool) {
	switch {
	case t.Type == world.StairsTopPart || t.Type == world.StairsBottomPart:
		return Instance{Position: c, Color: t.Color, Tag: stairsTag(t.Orientation)}, true
	case t.Type.IsSolid():
		return Instance{Position: c, Color: t.Color, Tag: Solid}, true
	}
	return Instance{}, false
}

// Collect returns every drawn tile of grid, in-bounds tiles in index order
// followed by overlay tiles in coordinate order.
func Collect(grid *world.Grid) []Instance {
	var out []Instance
	visit := func(c world.Coordinates, t world.Tile) {
		if inst, ok := instanceOf(c, t); ok {
			out = append(out, inst)
		}
	}
	grid.ForEach(visit)
	for _, c := range grid.OverlayCoordinates() {
		visit(c, grid.GetInOrOutOfBounds(c))
	}
	return out
}

// Batches groups instances by tag. Empty batches are omitted.
func Batches(instances []Instance) []Batch {
	byTag := make([][]Instance, len(AllTags()))
	for _, inst := range instances {
		byTag[inst.Tag] = append(byTag[inst.Tag], inst)
	}
	var out []Batch
	for _, tag := range AllTags() {
		if len(byTag[tag]) > 0 {
			out = append(out, Batch{Tag: tag, Instances: byTag[tag]})
		}
	}
	return out
}
