// Package report summarizes a generated dungeon as JSON.
package report

import (
	"encoding/json"
	"io"
	"time"

	"roguelike3d/pkg/engine/graph"
	"roguelike3d/pkg/engine/pset"
	"roguelike3d/pkg/engine/world"
	"roguelike3d/pkg/game/generator"
)

// Version is the report format version
const Version = "1.0"

type Report struct {
	Version    string           `json:"version"`
	Seed       int64            `json:"seed"`
	ConfigHash string           `json:"config_hash,omitempty"`
	Digest     string           `json:"digest"`
	Dims       world.Dimensions `json:"dims"`
	Spawn      [3]int           `json:"spawn"`
	SpawnRoom  int              `json:"spawn_room"`

	Rooms     []Room       `json:"rooms"`
	Graph     Graph        `json:"graph"`
	Corridors []Corridor   `json:"corridors"`
	Skipped   []graph.Edge `json:"skipped"`

	Placement generator.PlacementStats `json:"placement"`
	TimingsMS Timings                  `json:"timings_ms"`
	SetStats  *pset.Stats              `json:"set_stats,omitempty"`
	Tiles     map[string]int           `json:"tiles"`
	Overlay   int                      `json:"overlay_tiles"`
}

type Room struct {
	Index     int              `json:"index"`
	Kind      string           `json:"kind"`
	Seed      int64            `json:"seed"`
	Offset    [3]int           `json:"offset"`
	Size      world.Dimensions `json:"size"`
	EdgeTiles int              `json:"edge_tiles"`
}

type Graph struct {
	Triangulation int          `json:"triangulation_edges"`
	SpanningTree  []graph.Edge `json:"spanning_tree"`
	Planned       []graph.Edge `json:"planned"`
}

type Corridor struct {
	From       int `json:"from"`
	To         int `json:"to"`
	Length     int `json:"length"`
	Staircases int `json:"staircases"`
}

type Timings struct {
	Placement float64 `json:"placement"`
	Planning  float64 `json:"planning"`
	Corridors float64 `json:"corridors"`
	Total     float64 `json:"total"`
}

func triple(c world.Coordinates) [3]int {
	return [3]int{c.X, c.Y, c.Z}
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func nonNil(edges []graph.Edge) []graph.Edge {
	if edges == nil {
		return []graph.Edge{}
	}
	return edges
}

// Build summarizes d
func Build(d *generator.Dungeon, configHash string) Report {
	r := Report{
		Version:    Version,
		Seed:       d.Seed,
		ConfigHash: configHash,
		Digest:     d.Digest(),
		Dims:       d.Dims(),
		Spawn:      triple(d.Spawn),
		SpawnRoom:  d.SpawnRoom,
		Rooms:      make([]Room, len(d.Rooms)),
		Graph: Graph{
			Triangulation: len(d.Plan.Triangulation),
			SpanningTree:  nonNil(d.Plan.SpanningTree),
			Planned:       nonNil(d.Plan.Edges),
		},
		Corridors: make([]Corridor, len(d.Corridors)),
		Skipped:   nonNil(d.Skipped),
		Placement: d.Placement,
		TimingsMS: Timings{
			Placement: ms(d.Timings.Placement),
			Planning:  ms(d.Timings.Planning),
			Corridors: ms(d.Timings.Corridors),
			Total:     ms(d.Timings.Total),
		},
		SetStats: d.SetStats,
		Tiles:    make(map[string]int),
		Overlay:  d.Grid.OverlaySize(),
	}
	for i, room := range d.Rooms {
		r.Rooms[i] = Room{
			Index:     i,
			Kind:      room.Kind.String(),
			Seed:      room.Seed,
			Offset:    triple(room.Offset),
			Size:      room.Size,
			EdgeTiles: len(room.EdgeTiles),
		}
	}
	for i, c := range d.Corridors {
		r.Corridors[i] = Corridor{From: c.Edge.V1, To: c.Edge.V2, Length: len(c.Path), Staircases: len(c.Staircases)}
	}
	d.Grid.ForEach(func(_ world.Coordinates, t world.Tile) {
		r.Tiles[t.Type.String()]++
	})
	return r
}

// Write encodes r as indented JSON
func Write(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
