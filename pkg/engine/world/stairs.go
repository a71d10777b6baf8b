package world

import "roguelike3d/pkg/engine/assert"

// StairsRun is the horizontal length of a staircase per level of rise.
const StairsRun = 3

// Staircase tile slots in StairsInfo.Tiles
const (
	StairsTop = iota
	StairsBottom
	StairsShaft1
	StairsShaft2
	StairsBelowTop
	StairsBelowBottom
	StairsAboveTop
	StairsAboveBottom
	StairsBelowExit
	StairsAboveExit
	StairsTileCount
)

// StairsCoreCount is the number of tiles carved for a staircase: both parts and the shaft.
const StairsCoreCount = 4

// StairsInfo describes the tiles implicated by a single staircase move.
type StairsInfo struct {
	Vertical    Coordinates
	Horizontal  Coordinates
	Tiles       [StairsTileCount]Coordinates
	Orientation Orientation
}

// IsStairsMove reports whether the step from -> to is a staircase jump
func IsStairsMove(from, to Coordinates) bool {
	d := to.Sub(from)
	if d.Y != 1 && d.Y != -1 {
		return false
	}
	return (abs(d.X) == StairsRun && d.Z == 0) || (abs(d.Z) == StairsRun && d.X == 0)
}

// GetStairsInfo computes the staircase geometry for the move from -> to.
// The move must rise or fall one level over exactly three tiles on one axis.
func GetStairsInfo(to, from Coordinates) StairsInfo {
	d := to.Sub(from)
	assert.That(d.Y == 1 || d.Y == -1, "d.Y == 1 || d.Y == -1")

	var orientation Orientation
	switch {
	case d.Z == StairsRun && d.X == 0:
		orientation = North
	case d.X == -StairsRun && d.Z == 0:
		orientation = West
	case d.Z == -StairsRun && d.X == 0:
		orientation = South
	case d.X == StairsRun && d.Z == 0:
		orientation = East
	default:
		assert.Failf("unrecognized staircase delta %v", d)
	}

	vertical := Coordinates{Y: d.Y}
	horizontal := orientation.Delta()

	var tiles [StairsTileCount]Coordinates
	if d.Y == -1 {
		tiles[StairsTop] = from.Add(vertical).Add(horizontal)
		tiles[StairsBottom] = to.Sub(horizontal)
		tiles[StairsShaft1] = from.Add(horizontal)
		tiles[StairsShaft2] = from.Add(horizontal.Scale(2))
	} else {
		orientation = orientation.Opposite()
		tiles[StairsTop] = from.Add(horizontal.Scale(2))
		tiles[StairsBottom] = from.Add(horizontal)
		tiles[StairsShaft1] = to.Sub(horizontal)
		tiles[StairsShaft2] = to.Sub(horizontal.Scale(2))
	}
	tiles[StairsBelowTop] = tiles[StairsTop].Sub(Up)
	tiles[StairsBelowBottom] = tiles[StairsBottom].Sub(Up)
	tiles[StairsAboveTop] = tiles[StairsTop].Add(Up)
	tiles[StairsAboveBottom] = tiles[StairsBottom].Add(Up)
	tiles[StairsBelowExit] = to.Sub(Up)
	tiles[StairsAboveExit] = to.Add(Up)

	return StairsInfo{
		Vertical:    vertical,
		Horizontal:  horizontal,
		Tiles:       tiles,
		Orientation: orientation,
	}
}

// Core returns the carved tiles of the staircase: top part, bottom part and shaft
func (s StairsInfo) Core() []Coordinates {
	return s.Tiles[:StairsCoreCount]
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
