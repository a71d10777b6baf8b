package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gookit/color"

	"roguelike3d/pkg/engine/world"
	"roguelike3d/pkg/game/generator"
)

func newTestRenderer(buf *bytes.Buffer) *TUIRenderer {
	color.Disable()
	r := New(buf)
	r.Init()
	return r
}

func TestRenderFrame_DrawsLayerNorthUp(t *testing.T) {
	grid := world.NewGrid(world.Dimensions{Width: 3, Height: 2, Length: 2})
	grid.Set(world.Coordinates{X: 0, Y: 1, Z: 1}, world.NewTile(world.Block, world.Color{R: 1}))
	grid.Set(world.Coordinates{X: 1, Y: 1, Z: 1}, world.NewTile(world.Air, world.Color{}))
	grid.Set(world.Coordinates{X: 2, Y: 1, Z: 0}, world.NewTile(world.CorridorAir, world.Color{}))
	stairs := world.NewTile(world.StairsTopPart, world.Color{})
	stairs.Orientation = world.East
	grid.Set(world.Coordinates{X: 0, Y: 1, Z: 0}, stairs)

	d := &generator.Dungeon{Seed: 5, Grid: grid, Spawn: world.Coordinates{X: 1, Y: 1, Z: 0}, SpawnRoom: 0}

	var buf bytes.Buffer
	r := newTestRenderer(&buf)
	r.RenderFrame(d, []int{1})

	out := buf.String()
	for _, want := range []string{"Dungeon 5 (3x2x2)", "Layer 1", IconWall + IconAir + " \n", "▶" + IconSpawn + IconCorridor + "\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, IconWall+IconAir) > strings.Index(out, "▶"+IconSpawn) {
		t.Error("z=1 row not printed above z=0")
	}
}

func TestRenderFrame_LayerOutOfRange(t *testing.T) {
	d := &generator.Dungeon{Grid: world.NewGrid(world.Dimensions{Width: 2, Height: 2, Length: 2}), SpawnRoom: -1}
	var buf bytes.Buffer
	newTestRenderer(&buf).RenderFrame(d, []int{7})
	if !strings.Contains(buf.String(), "Layer 7: out of range") {
		t.Errorf("missing range error:\n%s", buf.String())
	}
}

func TestFormatText(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRenderer(&buf)
	tests := []struct {
		in   string
		want string
	}{
		{"GT{LAYER} 3", "Layer 3"},
		{"TILE{CorridorAir}", "corridor"},
		{"ROOM{4}", "Room 4"},
		{"BAD{x}", "ERROR, function not found: BAD -> x"},
	}
	for _, tt := range tests {
		if got := r.FormatText(tt.in); got != tt.want {
			t.Errorf("FormatText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWindow(t *testing.T) {
	tests := []struct{ focus, n, total, want int }{
		{5, 20, 10, 0},
		{0, 4, 10, 0},
		{9, 4, 10, 6},
		{5, 4, 10, 3},
	}
	for _, tt := range tests {
		if got := window(tt.focus, tt.n, tt.total); got != tt.want {
			t.Errorf("window(%d, %d, %d) = %d, want %d", tt.focus, tt.n, tt.total, got, tt.want)
		}
	}
}

func TestRenderFrame_Cursor(t *testing.T) {
	grid := world.NewGrid(world.Dimensions{Width: 3, Height: 1, Length: 1})
	d := &generator.Dungeon{Grid: grid, Spawn: world.Coordinates{X: 0}, SpawnRoom: 0}

	var buf bytes.Buffer
	r := newTestRenderer(&buf)
	r.SetCursor(world.Coordinates{X: 2})
	r.RenderFrame(d, []int{0})
	if !strings.Contains(buf.String(), IconSpawn+" "+IconCursor+"\n") {
		t.Errorf("cursor not drawn:\n%s", buf.String())
	}
}
