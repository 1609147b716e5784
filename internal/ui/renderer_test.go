package ui

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// fakeCanvas records the last rune and style written at each position.
type fakeCanvas struct {
	cells  map[[2]int]rune
	styles map[[2]int]tcell.Style
}

func newFakeCanvas() *fakeCanvas {
	return &fakeCanvas{cells: make(map[[2]int]rune), styles: make(map[[2]int]tcell.Style)}
}

func (f *fakeCanvas) SetContent(x, y int, r rune, style tcell.Style) {
	f.cells[[2]int{x, y}] = r
	f.styles[[2]int{x, y}] = style
}

func (f *fakeCanvas) at(x, y int) rune {
	return f.cells[[2]int{x, y}]
}

func (f *fakeCanvas) row(y, from, to int) string {
	var sb strings.Builder
	for x := from; x <= to; x++ {
		if r, ok := f.cells[[2]int{x, y}]; ok {
			sb.WriteRune(r)
		} else {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

func TestDrawMapRoomWithDoor(t *testing.T) {
	d := world.NewDungeon(2, 1, rand.New(rand.NewSource(1)), world.WithFog(false))
	box := world.WallBit(world.East) | world.WallBit(world.South) |
		world.WallBit(world.West) | world.WallBit(world.North)
	d.SetAt(1, 1, box|world.DoorBit(world.East))
	d.SetAt(2, 1, box|world.DoorBit(world.West))
	d.SetPlayer(1, 1, world.East)

	c := newFakeCanvas()
	drawMap(c, d)

	if got := c.row(0, 0, 4); got != "+─+─+" {
		t.Errorf("top row = %q", got)
	}
	if got := c.row(1, 0, 4); got != "│→‖ │" {
		t.Errorf("middle row = %q", got)
	}
	if got := c.row(2, 0, 4); got != "+─+─+" {
		t.Errorf("bottom row = %q", got)
	}
}

func TestDrawMapHidesFog(t *testing.T) {
	d := world.NewDungeon(3, 1, rand.New(rand.NewSource(1)))
	for x := 1; x <= 3; x++ {
		d.SetAt(x, 1, world.WallBit(world.North))
	}
	d.SetPlayer(1, 1, world.East)
	d.SetFogAt(1, 1, 0)
	d.AddObject(3, 1, "$", nil)

	c := newFakeCanvas()
	drawMap(c, d)

	if c.at(1, 0) != '─' {
		t.Error("revealed cell should draw its wall")
	}
	if _, ok := c.cells[[2]int{5, 0}]; ok {
		t.Error("fogged cell should not be drawn")
	}
	if _, ok := c.cells[[2]int{5, 1}]; ok {
		t.Error("object under fog should not be drawn")
	}
}

func TestDrawMapObjects(t *testing.T) {
	d := world.NewDungeon(3, 1, rand.New(rand.NewSource(1)), world.WithFog(false))
	for x := 1; x <= 3; x++ {
		d.SetAt(x, 1, 0)
	}
	d.SetPlayer(1, 1, world.North)
	d.AddObject(2, 1, "$", nil)
	d.AddObject(3, 1, "!", nil, world.WithVisible(false))

	c := newFakeCanvas()
	drawMap(c, d)

	if c.at(1, 1) != '↑' {
		t.Errorf("player = %q, want ↑", c.at(1, 1))
	}
	if c.at(3, 1) != '$' {
		t.Errorf("object = %q, want $", c.at(3, 1))
	}
	if c.at(5, 1) == '!' {
		t.Error("invisible object was drawn")
	}
}

func TestDrawPanel(t *testing.T) {
	c := newFakeCanvas()
	legend := []gamedata.ObjectDef{
		{ID: "gold", Name: "Gold", Mark: "$", Color: "#FFC107"},
		{ID: "exit", Name: "Stairs", Mark: ">", Color: "#FFD700"},
	}
	drawPanel(c, 10, Status{Floor: 2, Score: 35, Message: "Gem (+25)", State: "explore"}, legend)

	if got := c.row(1, 10, 16); got != "Floor 2" {
		t.Errorf("floor line = %q", got)
	}
	if got := c.row(2, 10, 17); got != "Score 35" {
		t.Errorf("score line = %q", got)
	}
	if got := c.row(4, 10, 18); got != "Gem (+25)" {
		t.Errorf("message line = %q", got)
	}

	// ten status lines, a blank, then the legend
	if got := c.row(12, 10, 15); got != "$ Gold" {
		t.Errorf("first legend line = %q", got)
	}
	if got := c.row(13, 10, 17); got != "> Stairs" {
		t.Errorf("second legend line = %q", got)
	}
	if c.styles[[2]int{10, 12}] != tcell.StyleDefault.Foreground(gamedata.RGBColor(0xFFC107)) {
		t.Error("legend mark not drawn in its catalogue colour")
	}
}

func TestMapSize(t *testing.T) {
	d := world.NewDungeon(7, 4, rand.New(rand.NewSource(1)))
	if w, h := mapSize(d); w != 15 || h != 9 {
		t.Errorf("mapSize = %dx%d, want 15x9", w, h)
	}
}

func TestScreenFits(t *testing.T) {
	sim := tcell.NewSimulationScreen("")
	s, err := newScreen(sim)
	if err != nil {
		t.Fatalf("newScreen: %v", err)
	}
	defer s.Close()
	sim.SetSize(40, 20)

	if !s.Fits(40, 20) {
		t.Error("40x20 should fit a 40x20 screen")
	}
	if s.Fits(41, 20) || s.Fits(40, 21) {
		t.Error("larger areas should not fit")
	}
}
