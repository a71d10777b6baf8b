package rooms

import (
	"fmt"

	"roguelike3d/pkg/engine/world"
)

// MinSide is the smallest buffer side that still leaves a margin, two walls and one interior cell.
const MinSide = 2*Margin + 3

// SizeRange bounds the sampled buffer size of one room kind, inclusive.
type SizeRange struct {
	Min world.Dimensions `yaml:"min"`
	Max world.Dimensions `yaml:"max"`
}

// Sizes holds the size range of every room kind
type Sizes struct {
	Rect      SizeRange `yaml:"rect"`
	Oval      SizeRange `yaml:"oval"`
	Ellipsoid SizeRange `yaml:"ellipsoid"`
}

// DefaultSizes returns the standard room size ranges
func DefaultSizes() Sizes {
	return Sizes{
		Rect: SizeRange{
			Min: world.Dimensions{Width: 13, Height: 9, Length: 13},
			Max: world.Dimensions{Width: 22, Height: 12, Length: 22},
		},
		Oval: SizeRange{
			Min: world.Dimensions{Width: 13, Height: 9, Length: 13},
			Max: world.Dimensions{Width: 22, Height: 12, Length: 22},
		},
		Ellipsoid: SizeRange{
			Min: world.Dimensions{Width: 13, Height: 11, Length: 13},
			Max: world.Dimensions{Width: 20, Height: 16, Length: 20},
		},
	}
}

// For returns the size range of a kind
func (s Sizes) For(k Kind) SizeRange {
	switch k {
	case Oval:
		return s.Oval
	case Ellipsoid:
		return s.Ellipsoid
	default:
		return s.Rect
	}
}

// Validate checks every range is ordered and large enough to hold a room
func (s Sizes) Validate() error {
	for _, k := range AllKinds() {
		if err := s.For(k).validate(); err != nil {
			return fmt.Errorf("%s room size: %w", k, err)
		}
	}
	return nil
}

func (sr SizeRange) validate() error {
	lo, hi := sr.Min, sr.Max
	if lo.Width < MinSide || lo.Height < MinSide || lo.Length < MinSide {
		return fmt.Errorf("min %v is below %d on some axis", lo, MinSide)
	}
	if lo.Width > hi.Width || lo.Height > hi.Height || lo.Length > hi.Length {
		return fmt.Errorf("min %v exceeds max %v", lo, hi)
	}
	return nil
}
