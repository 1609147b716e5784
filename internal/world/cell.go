package world

// Cell is the packed value stored for one map square.
//
// Bits 0-3 are walls on the East, South, West and North sides, bits 4-7
// are doors on the same sides. A door bit is independent of the wall bit
// on that side and lets the player pass through it.
type Cell int

// Blocked marks a square that can never be entered: the border ring and
// rooms taken out of play.
const Blocked Cell = -1

const (
	wallMask Cell = 0x0F
	doorMask Cell = 0xF0
)

// WallBit returns the wall bit for side d.
func WallBit(d Direction) Cell {
	return 1 << uint(d)
}

// DoorBit returns the door bit for side d.
func DoorBit(d Direction) Cell {
	return 1 << uint(4+d)
}

// IsBlocked reports whether the cell is unreachable.
func (c Cell) IsBlocked() bool {
	return c == Blocked
}

// Wall reports whether a wall stands on side d.
func (c Cell) Wall(d Direction) bool {
	return c&WallBit(d) != 0
}

// Door reports whether a door sits on side d.
func (c Cell) Door(d Direction) bool {
	return c&DoorBit(d) != 0
}

// HasDoor reports whether any side carries a door.
func (c Cell) HasDoor() bool {
	return c&doorMask != 0
}

// Passable reports whether the player may leave the cell through side d.
func (c Cell) Passable(d Direction) bool {
	return !c.Wall(d) || c.Door(d)
}

// WallState unpacks the cell into per-side wall and door flags.
func (c Cell) WallState() WallState {
	var ws WallState
	if c.IsBlocked() {
		return ws
	}
	for _, d := range AllDirections() {
		ws.Wall[d] = c.Wall(d)
		ws.Door[d] = c.Door(d)
	}
	return ws
}

// WallState is the unpacked form of a cell's wall and door bits, indexed by Direction.
type WallState struct {
	Wall [4]bool
	Door [4]bool
}
