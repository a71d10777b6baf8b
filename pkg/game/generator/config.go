package generator

import (
	"errors"
	"fmt"

	"roguelike3d/pkg/engine/pathfind"
	"roguelike3d/pkg/engine/pset"
	"roguelike3d/pkg/engine/world"
	"roguelike3d/pkg/game/rooms"
)

// ErrInvalidConfig is wrapped by every Validate failure
var ErrInvalidConfig = errors.New("invalid generator config")

// CorridorPolicy decides what happens when no corridor can be routed for an edge
type CorridorPolicy string

// Corridor policies
const (
	CorridorFatal CorridorPolicy = "fatal"
	CorridorSkip  CorridorPolicy = "skip"
)

// KindWeights are the relative odds of each room kind
type KindWeights struct {
	Rect      float64 `yaml:"rect"`
	Oval      float64 `yaml:"oval"`
	Ellipsoid float64 `yaml:"ellipsoid"`
}

func (w KindWeights) slice() []float64 {
	return []float64{w.Rect, w.Oval, w.Ellipsoid}
}

// Config holds every generation parameter. The zero value is not usable; start from DefaultConfig.
type Config struct {
	Dims        world.Dimensions `yaml:"dims"`
	TargetRooms int              `yaml:"target_rooms"`
	TryBudget   int              `yaml:"try_budget"`
	KindWeights KindWeights      `yaml:"kind_weights"`
	RoomSizes   rooms.Sizes      `yaml:"room_sizes"`

	// VerticalWeight scales the y component of edge lengths in the spanning tree.
	VerticalWeight      float64 `yaml:"vertical_weight"`
	ExtraEdgeChance     float64 `yaml:"extra_edge_chance"`
	AllowAnyExtraChance bool    `yaml:"allow_any_extra_chance"`

	Costs           pathfind.Costs `yaml:"costs"`
	DigStairsBlocks bool           `yaml:"dig_stairs_blocks"`
	SetBackend      pset.Backend   `yaml:"set_backend"`
	SetStats        bool           `yaml:"set_stats"`
	CorridorPolicy  CorridorPolicy `yaml:"corridor_policy"`

	// SpawnRoom forces the spawn room index; negative picks one at random.
	SpawnRoom int `yaml:"spawn_room"`
}

// DefaultConfig returns the standard 60x30x60 dungeon configuration
func DefaultConfig() Config {
	return Config{
		Dims:        world.Dimensions{Width: 60, Height: 30, Length: 60},
		TargetRooms: 10,
		TryBudget:   1000,
		KindWeights: KindWeights{Rect: 1, Oval: 1, Ellipsoid: 1},
		RoomSizes:   rooms.DefaultSizes(),

		VerticalWeight:  5,
		ExtraEdgeChance: 0.15,

		Costs:           pathfind.DefaultCosts(),
		DigStairsBlocks: true,
		SetBackend:      pset.Patricia,
		CorridorPolicy:  CorridorFatal,

		SpawnRoom: -1,
	}
}

// PathfindOptions returns the pathfinder options derived from the config
func (c Config) PathfindOptions() pathfind.Options {
	return pathfind.Options{
		Costs:           c.Costs,
		DigStairsBlocks: c.DigStairsBlocks,
		Backend:         c.SetBackend,
	}
}

// Validate checks the config for values generation cannot work with
func (c Config) Validate() error {
	if c.Dims.Width <= 0 || c.Dims.Height <= 0 || c.Dims.Length <= 0 {
		return fmt.Errorf("%w: dims %v must be positive", ErrInvalidConfig, c.Dims)
	}
	if !c.Dims.CanPack() {
		return fmt.Errorf("%w: dims %v exceed %dx%dx%d", ErrInvalidConfig, c.Dims,
			world.PackMaxWidth, world.PackMaxHeight, world.PackMaxLength)
	}
	if c.TargetRooms < 0 || c.TryBudget < 0 {
		return fmt.Errorf("%w: target_rooms and try_budget must not be negative", ErrInvalidConfig)
	}
	total := 0.0
	for _, w := range c.KindWeights.slice() {
		if w < 0 {
			return fmt.Errorf("%w: kind weights must not be negative", ErrInvalidConfig)
		}
		total += w
	}
	if total == 0 {
		return fmt.Errorf("%w: at least one room kind needs a positive weight", ErrInvalidConfig)
	}
	if err := c.RoomSizes.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.VerticalWeight < 3 || c.VerticalWeight > 10 {
		return fmt.Errorf("%w: vertical_weight %v outside [3, 10]", ErrInvalidConfig, c.VerticalWeight)
	}
	lo, hi := 0.125, 0.2
	if c.AllowAnyExtraChance {
		lo, hi = 0, 1
	}
	if c.ExtraEdgeChance < lo || c.ExtraEdgeChance > hi {
		return fmt.Errorf("%w: extra_edge_chance %v outside [%v, %v]", ErrInvalidConfig, c.ExtraEdgeChance, lo, hi)
	}
	if err := c.Costs.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := c.SetBackend.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	switch c.CorridorPolicy {
	case CorridorFatal, CorridorSkip:
	default:
		return fmt.Errorf("%w: unknown corridor_policy %q", ErrInvalidConfig, c.CorridorPolicy)
	}
	return nil
}
