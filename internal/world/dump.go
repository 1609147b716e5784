package world

import "strings"

// wallGlyphs maps the four wall bits of a cell to a box-drawing rune.
var wallGlyphs = [16]rune{
	' ', '┤', '┴', '┘',
	'├', '║', '└', '┻',
	'┬', '┐', '═', '┫',
	'┌', '┳', '┣', '□',
}

var playerGlyphs = [4]rune{'→', '↓', '←', '↑'}

const (
	blockedGlyph = '#'
	doorGlyph    = '+'
)

// Dump renders the whole grid, border included, one text line per row.
// Blocked cells print as '#', the player as an arrow, cells with a door
// as '+'. With doorOff set, door cells print their wall glyph instead.
func (d *Dungeon) Dump(doorOff bool) string {
	g := d.grid
	var sb strings.Builder
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			sb.WriteRune(d.glyphAt(x, y, doorOff))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (d *Dungeon) glyphAt(x, y int, doorOff bool) rune {
	if x == d.player.X && y == d.player.Y && d.player.Direction.IsValid() {
		return playerGlyphs[d.player.Direction]
	}
	value := d.grid.At(x, y)
	switch {
	case value.IsBlocked():
		return blockedGlyph
	case value.HasDoor() && !doorOff:
		return doorGlyph
	default:
		return wallGlyphs[value&wallMask]
	}
}
