package world

// Rect is an axis-aligned region with inclusive corners (X1,Y1)-(X2,Y2).
type Rect struct {
	X1, Y1 int
	X2, Y2 int
}

// Width returns the number of columns covered.
func (r Rect) Width() int {
	return r.X2 - r.X1 + 1
}

// Height returns the number of rows covered.
func (r Rect) Height() int {
	return r.Y2 - r.Y1 + 1
}

// Area returns the number of cells covered.
func (r Rect) Area() int {
	return r.Width() * r.Height()
}

// Contains returns true if the given point is inside the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X1 && x <= r.X2 && y >= r.Y1 && y <= r.Y2
}

// IsContact reports whether other shares one full edge of equal length
// with r at unit distance.
func (r Rect) IsContact(other Rect) bool {
	sameRows := other.Y1 == r.Y1 && other.Y2 == r.Y2
	sameCols := other.X1 == r.X1 && other.X2 == r.X2
	switch {
	case sameRows && other.X1 == r.X2+1: // east
		return true
	case sameCols && other.Y1 == r.Y2+1: // south
		return true
	case sameRows && other.X2+1 == r.X1: // west
		return true
	case sameCols && other.Y2+1 == r.Y1: // north
		return true
	}
	return false
}

// BoundaryBits returns the wall bits a cell at x, y gets from sitting on
// the edges of r: bit d is set when the cell lies on the side facing d.
func (r Rect) BoundaryBits(x, y int) Cell {
	var v Cell
	if x == r.X2 {
		v |= WallBit(East)
	}
	if y == r.Y2 {
		v |= WallBit(South)
	}
	if x == r.X1 {
		v |= WallBit(West)
	}
	if y == r.Y1 {
		v |= WallBit(North)
	}
	return v
}

// Side returns the one-cell strip of r lying along side d.
func (r Rect) Side(d Direction) Rect {
	switch d {
	case East:
		return Rect{r.X2, r.Y1, r.X2, r.Y2}
	case South:
		return Rect{r.X1, r.Y2, r.X2, r.Y2}
	case West:
		return Rect{r.X1, r.Y1, r.X1, r.Y2}
	default:
		return Rect{r.X1, r.Y1, r.X2, r.Y1}
	}
}

// Room is a rectangular room plus the corridor strips cut from its edges.
type Room struct {
	Rect
	Corridors []Rect
}

// RoomList holds rooms in row-major scan order: rooms of one band of rows
// appear left to right, and bands appear top to bottom. The wall resolver's
// neighbour search and blocked-room spacing depend on this order, so
// anything producing a RoomList must preserve it.
type RoomList []Room

// Corridors returns every corridor in room order.
func (rl RoomList) Corridors() []Rect {
	var out []Rect
	for _, room := range rl {
		out = append(out, room.Corridors...)
	}
	return out
}

// InCorridor reports whether x, y lies on any corridor strip.
func (rl RoomList) InCorridor(x, y int) bool {
	for _, room := range rl {
		for _, c := range room.Corridors {
			if c.Contains(x, y) {
				return true
			}
		}
	}
	return false
}
