package renderdata

import (
	"testing"

	"roguelike3d/pkg/engine/assert"
	"roguelike3d/pkg/engine/world"
)

func TestCollect_TagsAndOrder(t *testing.T) {
	grid := world.NewGrid(world.Dimensions{Width: 4, Height: 4, Length: 4})
	red := world.Color{R: 1}
	grid.Set(world.Coordinates{X: 0, Y: 0, Z: 1}, world.NewTile(world.Block, red))
	grid.Set(world.Coordinates{X: 0, Y: 1, Z: 1}, world.NewTile(world.Air, red))
	grid.Set(world.Coordinates{X: 1, Y: 0, Z: 0}, world.NewTile(world.CorridorAir, red))

	top := world.NewTile(world.StairsTopPart, red)
	top.Orientation = world.East
	grid.Set(world.Coordinates{X: 2, Y: 2, Z: 2}, top)
	bottom := world.NewTile(world.StairsBottomPart, red)
	bottom.Orientation = world.West
	grid.Set(world.Coordinates{X: 3, Y: 1, Z: 2}, bottom)

	grid.SetInOrOutOfBounds(world.Coordinates{X: -1, Y: 0, Z: 0}, world.NewTile(world.CorridorBlock, red))
	grid.SetInOrOutOfBounds(world.Coordinates{X: 4, Y: 0, Z: 0}, world.NewTile(world.Void, red))

	got := Collect(grid)
	want := []Instance{
		{Position: world.Coordinates{X: 0, Y: 0, Z: 1}, Color: red, Tag: Solid},
		{Position: world.Coordinates{X: 2, Y: 2, Z: 2}, Color: red, Tag: StairsEast},
		{Position: world.Coordinates{X: 3, Y: 1, Z: 2}, Color: red, Tag: StairsWest},
		{Position: world.Coordinates{X: -1, Y: 0, Z: 0}, Color: red, Tag: Solid},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d instances, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("instance %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestBatches(t *testing.T) {
	in := []Instance{
		{Tag: StairsWest}, {Tag: Solid}, {Tag: Solid}, {Tag: StairsNorth},
	}
	batches := Batches(in)
	if len(batches) != 3 {
		t.Fatalf("got %d batches, want 3", len(batches))
	}
	wantTags := []Tag{Solid, StairsNorth, StairsWest}
	wantSizes := []int{2, 1, 1}
	for i, b := range batches {
		if b.Tag != wantTags[i] || len(b.Instances) != wantSizes[i] {
			t.Errorf("batch %d = %v x%d, want %v x%d", i, b.Tag, len(b.Instances), wantTags[i], wantSizes[i])
		}
	}
}

func TestCollect_StairsWithoutOrientation(t *testing.T) {
	grid := world.NewGrid(world.Dimensions{Width: 2, Height: 2, Length: 2})
	grid.Set(world.Coordinates{}, world.NewTile(world.StairsTopPart, world.Color{}))
	defer func() {
		if v := assert.Recover(recover()); v == nil {
			t.Error("unoriented staircase part did not raise a violation")
		}
	}()
	Collect(grid)
}

func TestTag_TextRoundTrip(t *testing.T) {
	for _, tag := range AllTags() {
		b, _ := tag.MarshalText()
		var got Tag
		if err := got.UnmarshalText(b); err != nil || got != tag {
			t.Errorf("UnmarshalText(%q) = %v, %v, want %v", b, got, err, tag)
		}
	}
	var bad Tag
	if err := bad.UnmarshalText([]byte("stairs_up")); err == nil {
		t.Error("unknown tag accepted")
	}
}
