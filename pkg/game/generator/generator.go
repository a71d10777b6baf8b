package generator

import (
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"roguelike3d/pkg/engine/assert"
	"roguelike3d/pkg/engine/pathfind"
	"roguelike3d/pkg/engine/pset"
	"roguelike3d/pkg/engine/rng"
	"roguelike3d/pkg/engine/world"
	"roguelike3d/pkg/game/reference"
)

// DungeonGenerator is an interface for dungeon generation algorithms
type DungeonGenerator interface {
	Generate(seed int64) *Dungeon
	Name() string
}

// Verifier checks a canonical dump against a stored reference
type Verifier interface {
	Verify(seed int64, dump []byte) error
}

// Generator places rooms, plans their connections and carves corridors.
// It owns one pathfinder arena and is not safe for concurrent use.
type Generator struct {
	cfg      Config
	logger   *log.Logger
	pf       *pathfind.Pathfinder
	stats    *pset.Stats
	verifier Verifier
}

var _ DungeonGenerator = (*Generator)(nil)

// New creates a generator. A nil logger discards output.
func New(cfg Config, logger *log.Logger) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	g := &Generator{cfg: cfg, logger: logger}
	opts := cfg.PathfindOptions()
	if cfg.SetStats {
		g.stats = &pset.Stats{}
		opts.Stats = g.stats
	}
	g.pf = pathfind.New(cfg.Dims, opts)
	return g, nil
}

// Name returns the generator name
func (g *Generator) Name() string {
	return "Delaunay"
}

// Config returns the generator configuration
func (g *Generator) Config() Config {
	return g.cfg
}

// SetVerifier enables the canonical-output self-check after every generation
func (g *Generator) SetVerifier(v Verifier) {
	g.verifier = v
}

// Generate builds the dungeon for seed. Equal seeds and configs produce
// identical dungeons. Invariant violations panic with *assert.Violation.
func (g *Generator) Generate(seed int64) *Dungeon {
	start := time.Now()
	if g.stats != nil {
		*g.stats = pset.Stats{}
	}
	r := rng.New(seed)
	grid := world.NewGrid(g.cfg.Dims)
	d := &Dungeon{Seed: seed, Grid: grid}

	phase := time.Now()
	d.Rooms, d.Placement = placeRooms(g.cfg, r, grid)
	d.Timings.Placement = time.Since(phase)
	g.logger.Printf("seed %d: placed %d/%d rooms in %d tries (%d out of bounds, %d overlapping) in %v",
		seed, len(d.Rooms), g.cfg.TargetRooms, d.Placement.Tries, d.Placement.OutOfBounds, d.Placement.Overlaps, d.Timings.Placement)

	phase = time.Now()
	d.Plan = planConnections(g.cfg, r, d.Rooms)
	d.Timings.Planning = time.Since(phase)
	g.logger.Printf("seed %d: planned %d corridors (%d triangulation edges, %d in spanning tree) in %v",
		seed, len(d.Plan.Edges), len(d.Plan.Triangulation), len(d.Plan.SpanningTree), d.Timings.Planning)

	phase = time.Now()
	d.Corridors, d.Skipped = routeCorridors(g.cfg, g.pf, grid, d.Rooms, d.Plan.Edges, g.logger)
	d.Timings.Corridors = time.Since(phase)
	g.logger.Printf("seed %d: carved %d corridors with %d staircases in %v",
		seed, len(d.Corridors), d.StaircaseCount(), d.Timings.Corridors)

	chooseSpawn(d, g.cfg.SpawnRoom, r.Intn)
	d.Timings.Total = time.Since(start)

	if g.stats != nil {
		snapshot := *g.stats
		d.SetStats = &snapshot
		g.logger.Printf("seed %d: path sets: %v", seed, snapshot)
	}

	if g.verifier != nil {
		g.verify(d)
	}
	return d
}

func (g *Generator) verify(d *Dungeon) {
	err := g.verifier.Verify(d.Seed, d.Dump())
	switch {
	case err == nil:
		g.logger.Printf("seed %d: canonical output matches reference", d.Seed)
	case errors.Is(err, reference.ErrNoReference):
		g.logger.Printf("seed %d: reference check skipped: %v", d.Seed, err)
	default:
		assert.Failf("canonical output for seed %d: %v", d.Seed, err)
	}
}

// MustNew is like New but panics on an invalid config
func MustNew(cfg Config, logger *log.Logger) *Generator {
	g, err := New(cfg, logger)
	if err != nil {
		panic(fmt.Sprintf("generator: %v", err))
	}
	return g
}
