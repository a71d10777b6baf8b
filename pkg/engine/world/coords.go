package world

import (
	"fmt"
	"math"
)

// Dimensions is the size of a tile volume
type Dimensions struct {
	Width  int `yaml:"width" json:"width"`
	Height int `yaml:"height" json:"height"`
	Length int `yaml:"length" json:"length"`
}

// Volume returns the number of tiles in the volume
func (d Dimensions) Volume() int {
	return d.Width * d.Height * d.Length
}

// Contains reports whether c lies inside the volume
func (d Dimensions) Contains(c Coordinates) bool {
	return c.X >= 0 && c.X < d.Width &&
		c.Y >= 0 && c.Y < d.Height &&
		c.Z >= 0 && c.Z < d.Length
}

// Index returns the linear index of c: x*L*H + y*L + z
func (d Dimensions) Index(c Coordinates) int {
	return c.X*d.Length*d.Height + c.Y*d.Length + c.Z
}

// At returns the coordinates of a linear index
func (d Dimensions) At(index int) Coordinates {
	plane := d.Length * d.Height
	return Coordinates{
		X: index / plane,
		Y: (index % plane) / d.Length,
		Z: index % d.Length,
	}
}

// AsCoordinates returns the dimensions as a size vector
func (d Dimensions) AsCoordinates() Coordinates {
	return Coordinates{X: d.Width, Y: d.Height, Z: d.Length}
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%dx%d", d.Width, d.Height, d.Length)
}

// Coordinates is a signed integer grid position.
// Negative values and values past the dimensions address the out-of-bounds overlay.
type Coordinates struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// Up is the unit vertical offset
var Up = Coordinates{Y: 1}

// Add returns c + o
func (c Coordinates) Add(o Coordinates) Coordinates {
	return Coordinates{c.X + o.X, c.Y + o.Y, c.Z + o.Z}
}

// Sub returns c - o
func (c Coordinates) Sub(o Coordinates) Coordinates {
	return Coordinates{c.X - o.X, c.Y - o.Y, c.Z - o.Z}
}

// Scale returns c * k
func (c Coordinates) Scale(k int) Coordinates {
	return Coordinates{c.X * k, c.Y * k, c.Z * k}
}

// Less orders coordinates lexicographically by x, then y, then z.
func (c Coordinates) Less(o Coordinates) bool {
	if c.X != o.X {
		return c.X < o.X
	}
	if c.Y != o.Y {
		return c.Y < o.Y
	}
	return c.Z < o.Z
}

// Distance returns the Euclidean distance between c and o
func (c Coordinates) Distance(o Coordinates) float64 {
	return c.Sub(o).Length()
}

// Length returns the Euclidean length of c
func (c Coordinates) Length() float64 {
	return math.Sqrt(float64(c.X*c.X + c.Y*c.Y + c.Z*c.Z))
}

// Neighbours returns the six axis-aligned neighbours of c
func (c Coordinates) Neighbours() [6]Coordinates {
	return [6]Coordinates{
		{c.X - 1, c.Y, c.Z},
		{c.X + 1, c.Y, c.Z},
		{c.X, c.Y - 1, c.Z},
		{c.X, c.Y + 1, c.Z},
		{c.X, c.Y, c.Z - 1},
		{c.X, c.Y, c.Z + 1},
	}
}

// HorizontalNeighbours returns the four same-level neighbours of c
func (c Coordinates) HorizontalNeighbours() [4]Coordinates {
	return [4]Coordinates{
		{c.X - 1, c.Y, c.Z},
		{c.X + 1, c.Y, c.Z},
		{c.X, c.Y, c.Z - 1},
		{c.X, c.Y, c.Z + 1},
	}
}

func (c Coordinates) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

// Packing layout for 32-bit set keys: 11 bits x, 10 bits y, 11 bits z.
const (
	PackMaxWidth  = 1 << 11
	PackMaxHeight = 1 << 10
	PackMaxLength = 1 << 11
)

// CanPack reports whether every in-bounds coordinate of d fits the packed key layout
func (d Dimensions) CanPack() bool {
	return d.Width <= PackMaxWidth && d.Height <= PackMaxHeight && d.Length <= PackMaxLength
}

// Pack returns the 32-bit key of an in-bounds coordinate
func (c Coordinates) Pack() uint32 {
	return uint32(c.X)<<21 | uint32(c.Y)<<11 | uint32(c.Z)
}

// Unpack is the inverse of Pack
func Unpack(k uint32) Coordinates {
	return Coordinates{
		X: int(k >> 21),
		Y: int((k >> 11) & (PackMaxHeight - 1)),
		Z: int(k & (PackMaxLength - 1)),
	}
}
