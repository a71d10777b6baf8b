package world

// Box is an axis-aligned region given by its minimum corner and size
type Box struct {
	Offset Coordinates `json:"offset"`
	Size   Dimensions  `json:"size"`
}

// Max returns the exclusive maximum corner
func (b Box) Max() Coordinates {
	return b.Offset.Add(b.Size.AsCoordinates())
}

// Center returns offset + size/2
func (b Box) Center() Coordinates {
	return b.Offset.Add(Coordinates{b.Size.Width / 2, b.Size.Height / 2, b.Size.Length / 2})
}

// Contains reports whether c lies inside the box
func (b Box) Contains(c Coordinates) bool {
	return b.Size.Contains(c.Sub(b.Offset))
}

// FitsIn reports whether the box lies entirely inside a volume of the given dimensions
func (b Box) FitsIn(d Dimensions) bool {
	m := b.Max()
	return b.Offset.X >= 0 && b.Offset.Y >= 0 && b.Offset.Z >= 0 &&
		m.X <= d.Width && m.Y <= d.Height && m.Z <= d.Length
}

// Intersection returns the overlap of two boxes and whether it is non-empty
func (b Box) Intersection(o Box) (Box, bool) {
	lo := Coordinates{max(b.Offset.X, o.Offset.X), max(b.Offset.Y, o.Offset.Y), max(b.Offset.Z, o.Offset.Z)}
	bm, om := b.Max(), o.Max()
	hi := Coordinates{min(bm.X, om.X), min(bm.Y, om.Y), min(bm.Z, om.Z)}
	if lo.X >= hi.X || lo.Y >= hi.Y || lo.Z >= hi.Z {
		return Box{}, false
	}
	size := hi.Sub(lo)
	return Box{Offset: lo, Size: Dimensions{size.X, size.Y, size.Z}}, true
}

// Intersects reports whether two boxes overlap
func (b Box) Intersects(o Box) bool {
	_, ok := b.Intersection(o)
	return ok
}

// Expand returns the box grown by n tiles on every side
func (b Box) Expand(n int) Box {
	return Box{
		Offset: b.Offset.Sub(Coordinates{n, n, n}),
		Size:   Dimensions{b.Size.Width + 2*n, b.Size.Height + 2*n, b.Size.Length + 2*n},
	}
}

// ForEach iterates over every coordinate in the box in index order
func (b Box) ForEach(fn func(c Coordinates)) {
	m := b.Max()
	for x := b.Offset.X; x < m.X; x++ {
		for y := b.Offset.Y; y < m.Y; y++ {
			for z := b.Offset.Z; z < m.Z; z++ {
				fn(Coordinates{x, y, z})
			}
		}
	}
}
