// Package devtools provides developer tools for inspecting generated dungeons.
package devtools

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"roguelike3d/pkg/engine/world"
	"roguelike3d/pkg/game/generator"
)

const mapDumpFilename = "map.txt"

// tileSymbol returns the single-character symbol of a tile. Staircase parts
// use their orientation letter, upper case for the top part.
func tileSymbol(t world.Tile) rune {
	switch t.Type {
	case world.Void:
		return ' '
	case world.Air:
		return '.'
	case world.Block:
		return '#'
	case world.CorridorBlock:
		return '%'
	case world.CorridorAir:
		return '+'
	case world.StairsAir:
		return ':'
	case world.StairsTopPart, world.StairsBottomPart:
		r := rune(t.Orientation.String()[0])
		if t.Type == world.StairsBottomPart {
			r += 'a' - 'A'
		}
		return r
	case world.StairsBlock:
		return '='
	case world.StairsBlock2:
		return '-'
	case world.FakeAir:
		return '?'
	default:
		return '!'
	}
}

// writeLayer writes one Y slice, north (+z) first, with the spawn overlaid.
func writeLayer(w io.Writer, d *generator.Dungeon, y int) {
	dims := d.Dims()
	var b strings.Builder
	for z := dims.Length - 1; z >= 0; z-- {
		b.Reset()
		for x := 0; x < dims.Width; x++ {
			c := world.Coordinates{X: x, Y: y, Z: z}
			if c == d.Spawn && d.SpawnRoom >= 0 {
				b.WriteByte('@')
				continue
			}
			b.WriteRune(tileSymbol(d.Grid.Get(c)))
		}
		fmt.Fprintln(w, strings.TrimRight(b.String(), " "))
	}
}

// layerIsEmpty reports whether every tile of a Y slice is Void
func layerIsEmpty(d *generator.Dungeon, y int) bool {
	dims := d.Dims()
	for x := 0; x < dims.Width; x++ {
		for z := 0; z < dims.Length; z++ {
			if d.Grid.Type(world.Coordinates{X: x, Y: y, Z: z}) != world.Void {
				return false
			}
		}
	}
	return true
}

// WriteDungeonDump writes a full debug dump of d: metadata, legend, every
// non-empty layer, rooms, corridors with their staircases and overlay tiles.
// Format is human- and LLM-readable (sections, key: value, consistent structure).
func WriteDungeonDump(w io.Writer, d *generator.Dungeon) error {
	bw := bufio.NewWriter(w)
	dims := d.Dims()

	// --- Metadata ---
	fmt.Fprintln(bw, "=== DUNGEON DUMP DEBUG (rooms, corridors, layers) ===")
	fmt.Fprintln(bw, "")
	fmt.Fprintln(bw, "--- Metadata ---")
	fmt.Fprintf(bw, "seed: %d\n", d.Seed)
	fmt.Fprintf(bw, "width: %d\n", dims.Width)
	fmt.Fprintf(bw, "height: %d\n", dims.Height)
	fmt.Fprintf(bw, "length: %d\n", dims.Length)
	fmt.Fprintf(bw, "coordinate_system: x,y,z (0-based, y=up, layers printed with +z at the top)\n")
	fmt.Fprintf(bw, "digest: %s\n", d.Digest())
	fmt.Fprintf(bw, "spawn: %d,%d,%d\n", d.Spawn.X, d.Spawn.Y, d.Spawn.Z)
	fmt.Fprintf(bw, "spawn_room: %d\n", d.SpawnRoom)
	fmt.Fprintf(bw, "rooms: %d\n", len(d.Rooms))
	fmt.Fprintf(bw, "corridors: %d\n", len(d.Corridors))
	fmt.Fprintf(bw, "staircases: %d\n", d.StaircaseCount())
	fmt.Fprintf(bw, "skipped_edges: %d\n", len(d.Skipped))
	fmt.Fprintf(bw, "placement_tries: %d\n", d.Placement.Tries)
	fmt.Fprintf(bw, "placement_out_of_bounds: %d\n", d.Placement.OutOfBounds)
	fmt.Fprintf(bw, "placement_overlaps: %d\n", d.Placement.Overlaps)
	if d.SetStats != nil {
		fmt.Fprintf(bw, "path_sets: %v\n", *d.SetStats)
	}
	fmt.Fprintln(bw, "")

	// --- Legend ---
	fmt.Fprintln(bw, "--- Legend (tile symbols) ---")
	fmt.Fprintln(bw, "' ' = void  . = room air  # = wall  % = corridor wall  + = corridor  : = stair shaft  N/E/S/W = stairs top part  n/e/s/w = stairs bottom part  = = stair block  - = stair block 2  @ = spawn")
	fmt.Fprintln(bw, "")

	// --- Layers ---
	for y := 0; y < dims.Height; y++ {
		if layerIsEmpty(d, y) {
			continue
		}
		fmt.Fprintf(bw, "--- Layer y=%d ---\n", y)
		writeLayer(bw, d, y)
		fmt.Fprintln(bw, "")
	}

	// --- Rooms ---
	fmt.Fprintln(bw, "--- Rooms ---")
	for i, room := range d.Rooms {
		c := room.Center()
		fmt.Fprintf(bw, "  index: %d kind: %s seed: %d offset: %d,%d,%d size: %dx%dx%d center: %d,%d,%d edge_tiles: %d\n",
			i, room.Kind, room.Seed, room.Offset.X, room.Offset.Y, room.Offset.Z,
			room.Size.Width, room.Size.Height, room.Size.Length, c.X, c.Y, c.Z, len(room.EdgeTiles))
	}
	fmt.Fprintln(bw, "")

	// --- Corridors ---
	fmt.Fprintln(bw, "--- Corridors (routing order) ---")
	for _, cor := range d.Corridors {
		first, last := cor.Path[0], cor.Path[len(cor.Path)-1]
		fmt.Fprintf(bw, "  from: %d to: %d length: %d start: %d,%d,%d end: %d,%d,%d staircases: %d\n",
			cor.Edge.V1, cor.Edge.V2, len(cor.Path), first.X, first.Y, first.Z, last.X, last.Y, last.Z, len(cor.Staircases))
		for _, s := range cor.Staircases {
			top, bottom := s.Tiles[world.StairsTop], s.Tiles[world.StairsBottom]
			fmt.Fprintf(bw, "    stairs top: %d,%d,%d bottom: %d,%d,%d orientation: %s\n",
				top.X, top.Y, top.Z, bottom.X, bottom.Y, bottom.Z, s.Orientation)
		}
	}
	fmt.Fprintln(bw, "")

	fmt.Fprintln(bw, "Skipped edges:")
	if len(d.Skipped) == 0 {
		fmt.Fprintln(bw, "  (none)")
	}
	for _, e := range d.Skipped {
		fmt.Fprintf(bw, "  from: %d to: %d\n", e.V1, e.V2)
	}
	fmt.Fprintln(bw, "")

	// --- Overlay ---
	fmt.Fprintln(bw, "Out-of-bounds tiles:")
	if d.Grid.OverlaySize() == 0 {
		fmt.Fprintln(bw, "  (none)")
	}
	for _, c := range d.Grid.OverlayCoordinates() {
		fmt.Fprintf(bw, "  pos: %d,%d,%d type: %s\n", c.X, c.Y, c.Z, d.Grid.GetInOrOutOfBounds(c).Type)
	}
	fmt.Fprintln(bw, "")

	fmt.Fprintln(bw, "=== END DUNGEON DUMP ===")
	return bw.Flush()
}

// DumpDungeonToFile writes WriteDungeonDump output to path, or map.txt when
// path is empty, and returns the absolute path written.
func DumpDungeonToFile(d *generator.Dungeon, path string) (string, error) {
	if path == "" {
		path = mapDumpFilename
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteDungeonDump(f, d); err != nil {
		return absPath, err
	}
	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}
