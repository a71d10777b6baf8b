package devtools

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"roguelike3d/pkg/engine/world"
	"roguelike3d/pkg/game/generator"
)

func smallDungeon() *generator.Dungeon {
	grid := world.NewGrid(world.Dimensions{Width: 3, Height: 3, Length: 2})
	grid.Set(world.Coordinates{X: 0, Y: 1, Z: 1}, world.NewTile(world.Block, world.Color{R: 1}))
	grid.Set(world.Coordinates{X: 1, Y: 1, Z: 1}, world.NewTile(world.Air, world.Color{}))
	top := world.NewTile(world.StairsTopPart, world.Color{})
	top.Orientation = world.North
	grid.Set(world.Coordinates{X: 2, Y: 1, Z: 0}, top)
	bottom := world.NewTile(world.StairsBottomPart, world.Color{})
	bottom.Orientation = world.West
	grid.Set(world.Coordinates{X: 0, Y: 1, Z: 0}, bottom)
	grid.SetInOrOutOfBounds(world.Coordinates{X: -1, Y: 1, Z: 0}, world.NewTile(world.CorridorBlock, world.Color{}))
	return &generator.Dungeon{Seed: 9, Grid: grid, Spawn: world.Coordinates{X: 1, Y: 1, Z: 0}, SpawnRoom: 0}
}

func TestTileSymbol(t *testing.T) {
	tests := []struct {
		tile world.Tile
		want rune
	}{
		{world.NewTile(world.Void, world.Color{}), ' '},
		{world.NewTile(world.Block, world.Color{}), '#'},
		{world.NewTile(world.CorridorAir, world.Color{}), '+'},
		{world.Tile{Type: world.StairsTopPart, Orientation: world.East}, 'E'},
		{world.Tile{Type: world.StairsBottomPart, Orientation: world.South}, 's'},
	}
	for _, tt := range tests {
		if got := tileSymbol(tt.tile); got != tt.want {
			t.Errorf("tileSymbol(%v) = %q, want %q", tt.tile.Type, got, tt.want)
		}
	}
}

func TestWriteDungeonDump(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteDungeonDump(&buf, smallDungeon()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"seed: 9\n",
		"--- Layer y=1 ---\n#.\nw@N\n",
		"pos: -1,1,0 type: CorridorBlock",
		"=== END DUNGEON DUMP ===",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Layer y=0") || strings.Contains(out, "Layer y=2") {
		t.Error("empty layers were written")
	}
}

func TestDumpDungeonToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dump.txt")
	got, err := DumpDungeonToFile(smallDungeon(), path)
	if err != nil {
		t.Fatal(err)
	}
	raw, err := os.ReadFile(got)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(raw, []byte("=== DUNGEON DUMP DEBUG")) {
		t.Errorf("unexpected file start: %q", raw[:20])
	}
}

func TestRenderLayersHTML(t *testing.T) {
	page := RenderLayersHTML(smallDungeon(), nil)
	for _, want := range []string{
		"Dungeon 9 (3x3x2)",
		"Layer 1",
		`<span class="wall" style="color:rgb(255,0,0)">`,
		`<span class="spawn">@</span>`,
	} {
		if !strings.Contains(page, want) {
			t.Errorf("page missing %q", want)
		}
	}
}
