package generator

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strconv"
	"time"

	"roguelike3d/pkg/engine/graph"
	"roguelike3d/pkg/engine/pset"
	"roguelike3d/pkg/engine/world"
	"roguelike3d/pkg/game/rooms"
)

// Timings records how long each generation phase took
type Timings struct {
	Placement time.Duration `json:"placement_ns"`
	Planning  time.Duration `json:"planning_ns"`
	Corridors time.Duration `json:"corridors_ns"`
	Total     time.Duration `json:"total_ns"`
}

// Dungeon is the result of one generation pass
type Dungeon struct {
	Seed      int64
	Grid      *world.Grid
	Rooms     []*rooms.Room
	Plan      Plan
	Corridors []Corridor
	// Skipped lists edges left unrouted under the skip corridor policy.
	Skipped   []graph.Edge
	Spawn     world.Coordinates
	SpawnRoom int

	Placement PlacementStats
	Timings   Timings
	SetStats  *pset.Stats

	dump []byte
}

// Dims returns the dungeon dimensions
func (d *Dungeon) Dims() world.Dimensions {
	return d.Grid.Dims()
}

// RoomAt returns the index of the first room whose bounding box contains c.
func (d *Dungeon) RoomAt(c world.Coordinates) (int, bool) {
	for i, room := range d.Rooms {
		if room.Box().Contains(c) {
			return i, true
		}
	}
	return -1, false
}

// StaircaseCount returns the number of staircases across all corridors
func (d *Dungeon) StaircaseCount() int {
	n := 0
	for _, c := range d.Corridors {
		n += len(c.Staircases)
	}
	return n
}

// Dump returns the canonical text form of the grid: one "<index> <type>" line
// per in-bounds tile and one "<x> <y> <z> <type>" line per overlay tile,
// sorted lexicographically.
func (d *Dungeon) Dump() []byte {
	if d.dump != nil {
		return d.dump
	}
	lines := make([]string, 0, d.Grid.Dims().Volume()+d.Grid.OverlaySize())
	for i := 0; i < d.Grid.Dims().Volume(); i++ {
		lines = append(lines, strconv.Itoa(i)+" "+strconv.Itoa(int(d.Grid.GetIndex(i).Type)))
	}
	d.Grid.ForEachOverlay(func(c world.Coordinates, t world.Tile) {
		lines = append(lines, strconv.Itoa(c.X)+" "+strconv.Itoa(c.Y)+" "+strconv.Itoa(c.Z)+" "+strconv.Itoa(int(t.Type)))
	})
	sort.Strings(lines)

	var buf bytes.Buffer
	for _, l := range lines {
		buf.WriteString(l)
		buf.WriteByte('\n')
	}
	d.dump = buf.Bytes()
	return d.dump
}

// Digest returns the hex SHA-256 of Dump
func (d *Dungeon) Digest() string {
	sum := sha256.Sum256(d.Dump())
	return hex.EncodeToString(sum[:])
}

// chooseSpawn picks the spawn room and drops the spawn point from its center
// onto the room floor.
func chooseSpawn(d *Dungeon, override int, pick func(n int) int) {
	if len(d.Rooms) == 0 {
		dims := d.Dims()
		d.SpawnRoom = -1
		d.Spawn = world.Coordinates{X: dims.Width / 2, Y: dims.Height / 2, Z: dims.Length / 2}
		return
	}
	idx := override
	if idx < 0 || idx >= len(d.Rooms) {
		idx = pick(len(d.Rooms))
	}
	c := d.Rooms[idx].Center()
	for {
		below := c.Sub(world.Up)
		if !d.Grid.InBounds(below) || d.Grid.Type(below) != world.Air {
			break
		}
		c = below
	}
	d.SpawnRoom = idx
	d.Spawn = c
}
