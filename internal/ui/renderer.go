package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// canvas is the drawing surface the renderer writes to.
type canvas interface {
	SetContent(x, y int, r rune, style tcell.Style)
}

// Status is the text shown in the info panel beside the map.
type Status struct {
	Floor   int
	Score   int
	State   string
	Message string
}

var (
	wallStyle    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	doorStyle    = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	walkedStyle  = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	blockedStyle = tcell.StyleDefault.Foreground(tcell.ColorDimGray)
	playerStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	textStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

var playerArrows = [4]rune{'→', '↓', '←', '↑'}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
	legend []gamedata.ObjectDef
}

// NewRenderer creates a renderer whose info panel lists the given
// catalogue entries.
func NewRenderer(screen *Screen, legend []gamedata.ObjectDef) *Renderer {
	return &Renderer{screen: screen, legend: legend}
}

// Render draws the minimap, objects, player and info panel. If the map
// does not fit on the terminal only a notice is drawn.
func (r *Renderer) Render(d *world.Dungeon, status Status) {
	r.screen.clear()
	mapW, mapH := mapSize(d)
	if r.screen.Fits(mapW, mapH) {
		drawMap(r.screen, d)
		drawPanel(r.screen, mapW+2, status, r.legend)
	} else {
		drawText(r.screen, 0, 0, fmt.Sprintf("Terminal too small: need %dx%d", mapW, mapH), textStyle)
	}
	r.screen.show()
}

// mapSize returns the screen area the minimap covers.
func mapSize(d *world.Dungeon) (int, int) {
	return 2*d.Width() + 1, 2*d.Height() + 1
}

// cellOrigin returns the screen position of a cell's centre. Cells sit on
// a stride of two so neighbours share the wall column or row between them.
func cellOrigin(x, y int) (int, int) {
	return 2*x - 1, 2*y - 1
}

// drawMap draws every revealed cell with its walls and doors.
func drawMap(c canvas, d *world.Dungeon) {
	for b := range d.MapIterator() {
		if b.Fog != 0 {
			continue
		}
		cx, cy := cellOrigin(b.X, b.Y)
		if !b.Enter {
			c.SetContent(cx, cy, '▒', blockedStyle)
			continue
		}
		if b.Walked != 0 {
			c.SetContent(cx, cy, '·', walkedStyle)
		}

		for _, dir := range world.AllDirections() {
			dx, dy := dir.Delta()
			wx, wy := cx+dx, cy+dy
			switch {
			case b.WallState.Door[dir]:
				c.SetContent(wx, wy, doorRune(dir), doorStyle)
			case b.WallState.Wall[dir]:
				c.SetContent(wx, wy, wallRune(dir), wallStyle)
			}
		}
		for _, corner := range [][2]int{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}} {
			c.SetContent(cx+corner[0], cy+corner[1], '+', wallStyle)
		}
	}

	for _, obj := range d.Objects() {
		if !obj.Visible || d.FogAt(obj.X, obj.Y) != 0 {
			continue
		}
		style := tcell.StyleDefault.Foreground(gamedata.RGBColor(obj.Color))
		if obj.Alpha < 1 {
			style = style.Dim(true)
		}
		cx, cy := cellOrigin(obj.X, obj.Y)
		c.SetContent(cx, cy, gamedata.FirstRune(obj.Mark), style)
	}

	p := d.PlayerPos()
	if p.Direction.IsValid() {
		cx, cy := cellOrigin(p.X, p.Y)
		c.SetContent(cx, cy, playerArrows[p.Direction], playerStyle)
	}
}

func wallRune(dir world.Direction) rune {
	if dir == world.East || dir == world.West {
		return '│'
	}
	return '─'
}

func doorRune(dir world.Direction) rune {
	if dir == world.East || dir == world.West {
		return '‖'
	}
	return '='
}

// drawPanel writes the status lines starting at column x, followed by a
// legend of catalogue marks in their colours.
func drawPanel(c canvas, x int, status Status, legend []gamedata.ObjectDef) {
	lines := []string{
		fmt.Sprintf("Floor %d", status.Floor),
		fmt.Sprintf("Score %d", status.Score),
		"",
		status.Message,
		"",
		"W go  A/D turn  S back",
		"Q/E strafe  arrows move",
		"Esc quit",
	}
	if status.State != "" {
		lines = append(lines, "", "["+status.State+"]")
	}
	for i, line := range lines {
		drawText(c, x, i+1, line, textStyle)
	}

	y := len(lines) + 2
	for i := range legend {
		def := &legend[i]
		c.SetContent(x, y, def.MarkRune(), tcell.StyleDefault.Foreground(def.TCellColor()))
		drawText(c, x+2, y, def.Name, textStyle)
		y++
	}
}

func drawText(c canvas, x, y int, text string, style tcell.Style) {
	i := 0
	for _, ch := range text {
		c.SetContent(x+i, y, ch, style)
		i++
	}
}
