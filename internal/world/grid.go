package world

// Grid stores cell, fog and walked values in flat row-major buffers.
//
// The buffers include a one-cell border around the interior, so interior
// coordinates run from 1 to Width() and 1 to Height(). Accessors never
// fail: reads outside the buffer return sentinel values and writes are
// dropped.
type Grid struct {
	width  int // including the border
	height int // including the border
	cells  []Cell
	fog    []uint8
	walked []uint8
}

// NewGrid creates a grid with the given interior size. Every cell starts
// Blocked, fogged when fog is true, and unwalked.
func NewGrid(width, height int, fog bool) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	g := &Grid{
		width:  width + 2,
		height: height + 2,
	}
	size := g.width * g.height
	g.cells = make([]Cell, size)
	g.fog = make([]uint8, size)
	g.walked = make([]uint8, size)

	var fogValue uint8
	if fog {
		fogValue = 1
	}
	for i := range g.cells {
		g.cells[i] = Blocked
		g.fog[i] = fogValue
	}
	return g
}

// index converts x, y to a buffer offset.
func (g *Grid) index(x, y int) (int, bool) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return 0, false
	}
	return y*g.width + x, true
}

// Width returns the interior width.
func (g *Grid) Width() int {
	return g.width - 2
}

// Height returns the interior height.
func (g *Grid) Height() int {
	return g.height - 2
}

// InInterior reports whether x, y lies inside the border ring.
func (g *Grid) InInterior(x, y int) bool {
	return x >= 1 && x <= g.width-2 && y >= 1 && y <= g.height-2
}

// At returns the cell value, or Blocked outside the grid.
func (g *Grid) At(x, y int) Cell {
	i, ok := g.index(x, y)
	if !ok {
		return Blocked
	}
	return g.cells[i]
}

// SetAt overwrites the cell value.
func (g *Grid) SetAt(x, y int, value Cell) {
	if i, ok := g.index(x, y); ok {
		g.cells[i] = value
	}
}

// UpdateAt adds delta to the cell value.
func (g *Grid) UpdateAt(x, y int, delta Cell) {
	if i, ok := g.index(x, y); ok {
		g.cells[i] += delta
	}
}

// FogAt returns 1 when the cell is hidden, 0 when revealed. Outside the grid it returns 1.
func (g *Grid) FogAt(x, y int) int {
	i, ok := g.index(x, y)
	if !ok {
		return 1
	}
	return int(g.fog[i])
}

// SetFogAt sets the fog flag (0 revealed, non-zero hidden).
func (g *Grid) SetFogAt(x, y int, value int) {
	if i, ok := g.index(x, y); ok {
		g.fog[i] = flag(value)
	}
}

// WalkedAt returns 1 once the player has stood on the cell. Outside the grid it returns 1.
func (g *Grid) WalkedAt(x, y int) int {
	i, ok := g.index(x, y)
	if !ok {
		return 1
	}
	return int(g.walked[i])
}

// SetWalkedAt sets the walked flag.
func (g *Grid) SetWalkedAt(x, y int, value int) {
	if i, ok := g.index(x, y); ok {
		g.walked[i] = flag(value)
	}
}

func flag(v int) uint8 {
	if v != 0 {
		return 1
	}
	return 0
}
