package world

import "math/rand"

// Direction is a cardinal facing. Values double as wall bit offsets.
type Direction int

// Direction constants. Adding one rotates clockwise.
const (
	East Direction = iota
	South
	West
	North
)

// AllDirections returns the four directions in bit order.
func AllDirections() []Direction {
	return []Direction{East, South, West, North}
}

// RandomDirection picks a direction uniformly from rng.
func RandomDirection(rng *rand.Rand) Direction {
	return Direction(rng.Intn(4))
}

// Rotate turns the direction by n quarter turns clockwise (negative n turns counter-clockwise).
func (d Direction) Rotate(n int) Direction {
	return Direction(((int(d)+n)%4 + 4) % 4)
}

// Opposite returns the direction facing the other way.
func (d Direction) Opposite() Direction {
	return d.Rotate(2)
}

// Delta returns the x and y offsets of a single step.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	case North:
		return 0, -1
	default:
		return 0, 0
	}
}

// IsValid reports whether d is one of the four cardinal directions.
func (d Direction) IsValid() bool {
	return d >= East && d <= North
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	case North:
		return "North"
	default:
		return "Unknown"
	}
}
