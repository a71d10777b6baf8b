// Package pathfind routes corridors between rooms with an A*-style search
// whose moves include single planar steps and three-tile staircase jumps.
package pathfind

import (
	"math"

	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"

	"roguelike3d/pkg/engine/assert"
	"roguelike3d/pkg/engine/pset"
	"roguelike3d/pkg/engine/world"
)

// Options configures a Pathfinder
type Options struct {
	Costs Costs
	// DigStairsBlocks lets a staircase top part replace a StairsBlock and a
	// bottom part replace a StairsBlock2.
	DigStairsBlocks bool
	Backend         pset.Backend
	// Stats, when set, collects persistent-set statistics across searches.
	Stats *pset.Stats
}

// DefaultOptions returns the standard pathfinder options
func DefaultOptions() Options {
	return Options{
		Costs:           DefaultCosts(),
		DigStairsBlocks: true,
		Backend:         pset.Patricia,
	}
}

const noPrev = -1

type node struct {
	prev   int32
	cost   float64
	set    pset.Set
	closed bool
}

type entry struct {
	cost  float64
	pos   world.Coordinates
	index int32
}

func entryLess(a, b entry) bool {
	if a.cost != b.cost {
		return a.cost < b.cost
	}
	return a.pos.Less(b.pos)
}

// Pathfinder owns a node arena sized to one grid and reuses it across searches.
// It is not safe for concurrent use.
type Pathfinder struct {
	dims    world.Dimensions
	opts    Options
	nodes   []node
	touched []int32
	empty   pset.Set
	open    *heap.Heap[entry]
}

// New creates a pathfinder for grids of the given dimensions
func New(dims world.Dimensions, opts Options) *Pathfinder {
	assert.That(dims.CanPack(), "dims.CanPack()")

	empty := pset.Empty(opts.Backend)
	if opts.Stats != nil {
		empty = pset.NewMeasured(empty, opts.Stats)
	}
	p := &Pathfinder{
		dims:  dims,
		opts:  opts,
		nodes: make([]node, dims.Volume()),
		empty: empty,
		open:  heap.New[entry](entryLess),
	}
	for i := range p.nodes {
		p.nodes[i] = node{prev: noPrev, cost: math.Inf(1), set: empty}
	}
	return p
}

// Dims returns the grid dimensions the arena was built for
func (p *Pathfinder) Dims() world.Dimensions {
	return p.dims
}

func (p *Pathfinder) reset() {
	p.empty = p.empty.Clear()
	for _, i := range p.touched {
		p.nodes[i] = node{prev: noPrev, cost: math.Inf(1), set: p.empty}
	}
	p.touched = p.touched[:0]
	for p.open.Size() > 0 {
		p.open.Pop()
	}
}

func (p *Pathfinder) touch(i int32) *node {
	n := &p.nodes[i]
	if math.IsInf(n.cost, 1) && n.prev == noPrev && !n.closed {
		p.touched = append(p.touched, i)
	}
	return n
}

// FindPath returns the cheapest path from any start tile to any finish tile,
// or nil when no route exists. Costs accumulate the per-tile policy plus the
// Euclidean distance of each entered tile to target.
func (p *Pathfinder) FindPath(starts, finishes []world.Coordinates, target world.Coordinates, grid *world.Grid) []world.Coordinates {
	assert.That(grid.Dims() == p.dims, "grid.Dims() == p.dims")
	p.reset()

	finishSet := mapset.New[world.Coordinates]()
	for _, c := range finishes {
		finishSet.Put(c)
	}

	for _, c := range starts {
		i := int32(p.dims.Index(c))
		n := p.touch(i)
		n.cost = 0
		n.set = p.empty
		p.open.Push(entry{cost: 0, pos: c, index: i})
	}

	var buf [12]world.Coordinates
	for {
		e, ok := p.open.Pop()
		if !ok {
			return nil
		}
		cur := &p.nodes[e.index]
		if cur.closed || e.cost != cur.cost {
			continue
		}
		cur.closed = true

		if finishSet.Has(e.pos) {
			return p.reconstruct(e.index)
		}

		for _, nc := range p.neighbours(e.pos, buf[:0]) {
			ni := int32(p.dims.Index(nc))
			nb := &p.nodes[ni]
			if nb.closed || cur.set.Contains(nc.Pack()) {
				continue
			}

			stairs := world.IsStairsMove(e.pos, nc)
			var cost float64
			var info world.StairsInfo
			if stairs {
				info = world.GetStairsInfo(nc, e.pos)
				var passable bool
				cost, passable = p.stairsCost(e.pos, nc, info, grid, finishSet, target)
				if !passable || p.overlaps(cur.set, info) {
					continue
				}
			} else {
				t := grid.Type(nc)
				if !t.CorridorCanPass() && !finishSet.Has(nc) {
					continue
				}
				cost = p.opts.Costs.Corridor(t) + nc.Distance(target)
			}

			newCost := cur.cost + cost
			if newCost >= nb.cost {
				continue
			}
			nb = p.touch(ni)
			nb.prev = e.index
			nb.cost = newCost
			set := cur.set.Insert(e.pos.Pack())
			if stairs {
				for _, c := range info.Tiles {
					set = set.Insert(c.Pack())
				}
			}
			nb.set = set
			p.open.Push(entry{cost: newCost, pos: nc, index: ni})
		}
	}
}

func (p *Pathfinder) stairsCost(from, to world.Coordinates, info world.StairsInfo, grid *world.Grid, finishSet mapset.Set[world.Coordinates], target world.Coordinates) (float64, bool) {
	for _, c := range info.Tiles {
		if !p.dims.Contains(c) {
			return 0, false
		}
	}
	for _, c := range [2]world.Coordinates{from, to} {
		if !grid.Type(c).CorridorCanPass() && !finishSet.Has(c) {
			return 0, false
		}
	}

	top := grid.Type(info.Tiles[world.StairsTop])
	if !top.CanPlaceStairs() && !(p.opts.DigStairsBlocks && top == world.StairsBlock) {
		return 0, false
	}
	bottom := grid.Type(info.Tiles[world.StairsBottom])
	if !bottom.CanPlaceStairs() && !(p.opts.DigStairsBlocks && bottom == world.StairsBlock2) {
		return 0, false
	}
	for _, c := range info.Tiles[world.StairsShaft1:] {
		if !grid.Type(c).CanPlaceStairs() {
			return 0, false
		}
	}

	cost := to.Distance(target)
	for _, c := range info.Tiles {
		cost += p.opts.Costs.Stairs(grid.Type(c))
	}
	return cost, true
}

func (p *Pathfinder) overlaps(set pset.Set, info world.StairsInfo) bool {
	for _, c := range info.Tiles {
		if set.Contains(c.Pack()) {
			return true
		}
	}
	return false
}

// neighbours appends the planar and staircase neighbours of c that lie in bounds.
func (p *Pathfinder) neighbours(c world.Coordinates, out []world.Coordinates) []world.Coordinates {
	w, h, l := p.dims.Width, p.dims.Height, p.dims.Length
	r := world.StairsRun

	if c.X >= 1 {
		out = append(out, world.Coordinates{X: c.X - 1, Y: c.Y, Z: c.Z})
	}
	if c.X < w-1 {
		out = append(out, world.Coordinates{X: c.X + 1, Y: c.Y, Z: c.Z})
	}
	if c.Z >= 1 {
		out = append(out, world.Coordinates{X: c.X, Y: c.Y, Z: c.Z - 1})
	}
	if c.Z < l-1 {
		out = append(out, world.Coordinates{X: c.X, Y: c.Y, Z: c.Z + 1})
	}

	// Leave a level above and below every staircase for its support tiles.
	for _, dy := range [2]int{-1, 1} {
		if dy == -1 && c.Y < 2 {
			continue
		}
		if dy == 1 && c.Y >= h-2 {
			continue
		}
		y := c.Y + dy
		if c.X >= r {
			out = append(out, world.Coordinates{X: c.X - r, Y: y, Z: c.Z})
		}
		if c.X < w-r {
			out = append(out, world.Coordinates{X: c.X + r, Y: y, Z: c.Z})
		}
		if c.Z >= r {
			out = append(out, world.Coordinates{X: c.X, Y: y, Z: c.Z - r})
		}
		if c.Z < l-r {
			out = append(out, world.Coordinates{X: c.X, Y: y, Z: c.Z + r})
		}
	}
	return out
}

func (p *Pathfinder) reconstruct(i int32) []world.Coordinates {
	var path []world.Coordinates
	for i != noPrev {
		path = append(path, p.dims.At(int(i)))
		i = p.nodes[i].prev
	}
	for a, b := 0, len(path)-1; a < b; a, b = a+1, b-1 {
		path[a], path[b] = path[b], path[a]
	}
	return path
}

// PathCost returns the accumulated search cost of a path as FindPath would
// compute it on an unmodified grid.
func (p *Pathfinder) PathCost(path []world.Coordinates, target world.Coordinates, grid *world.Grid) float64 {
	total := 0.0
	for i := 1; i < len(path); i++ {
		from, to := path[i-1], path[i]
		if world.IsStairsMove(from, to) {
			info := world.GetStairsInfo(to, from)
			total += to.Distance(target)
			for _, c := range info.Tiles {
				total += p.opts.Costs.Stairs(grid.Type(c))
			}
			continue
		}
		total += p.opts.Costs.Corridor(grid.Type(to)) + to.Distance(target)
	}
	return total
}
