package world

// Orientation is the facing of a staircase part
type Orientation uint8

// Orientation constants
const (
	None Orientation = iota
	North
	East
	South
	West
)

// AllOrientations returns all valid orientations for iteration
func AllOrientations() []Orientation {
	return []Orientation{North, East, South, West}
}

// String returns the string representation of an orientation
func (o Orientation) String() string {
	switch o {
	case None:
		return "None"
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the orientation is a cardinal direction
func (o Orientation) IsValid() bool {
	return o >= North && o <= West
}

// Opposite returns the opposite orientation
func (o Orientation) Opposite() Orientation {
	switch o {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return o
	}
}

// Delta returns the unit horizontal offset for this orientation.
// North points to +z and East to +x.
func (o Orientation) Delta() Coordinates {
	switch o {
	case North:
		return Coordinates{Z: 1}
	case East:
		return Coordinates{X: 1}
	case South:
		return Coordinates{Z: -1}
	case West:
		return Coordinates{X: -1}
	default:
		return Coordinates{}
	}
}

// OrientationOf returns the orientation whose delta points along d.
// Only the sign of the single non-zero horizontal axis is considered.
func OrientationOf(d Coordinates) Orientation {
	switch {
	case d.X == 0 && d.Z > 0:
		return North
	case d.X == 0 && d.Z < 0:
		return South
	case d.Z == 0 && d.X > 0:
		return East
	case d.Z == 0 && d.X < 0:
		return West
	default:
		return None
	}
}
