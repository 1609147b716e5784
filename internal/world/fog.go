package world

// ClearFogWithinPlayer reveals the cells the player can see.
//
// The sweep walks at most viewRange cells forward from the player. At each
// step it peeks through the open sides perpendicular to travel, plus one
// cell diagonally ahead when that neighbour is open forward, and through
// side doors. A forward wall ends the sweep; a forward door reveals only
// the cell just beyond it.
func (d *Dungeon) ClearFogWithinPlayer() {
	g := d.grid
	dir := d.player.Direction
	dx, dy := dir.Delta()
	x, y := d.player.X, d.player.Y

	for i := 0; i < d.viewRange; i++ {
		g.SetFogAt(x, y, 0)
		value := g.At(x, y)

		for _, side := range []Direction{dir.Rotate(1), dir.Rotate(-1)} {
			sx, sy := side.Delta()
			switch {
			case !value.Wall(side):
				g.SetFogAt(x+sx, y+sy, 0)
				if !g.At(x+sx, y+sy).Wall(dir) {
					g.SetFogAt(x+sx+dx, y+sy+dy, 0)
				}
			case value.Door(side):
				g.SetFogAt(x+sx, y+sy, 0)
			}
		}

		x, y = x+dx, y+dy
		if value.Wall(dir) {
			if value.Door(dir) {
				g.SetFogAt(x, y, 0)
			}
			return
		}
		g.SetFogAt(x, y, 0)
	}
}
