package world

// Player is the explorer's position and facing.
type Player struct {
	X, Y      int
	Direction Direction
}

// PlayerPos returns a copy of the player state.
func (d *Dungeon) PlayerPos() Player {
	return d.player
}

// SetPlayer places the player without revealing fog or firing events.
// It is meant for hand-built maps; Build places the player itself.
func (d *Dungeon) SetPlayer(x, y int, dir Direction) {
	d.player = Player{X: x, Y: y, Direction: dir}
}

// SetPlayerRandom puts the player on a random open cell with a random
// facing, reveals the view and marks the cell walked.
func (d *Dungeon) SetPlayerRandom() bool {
	pos, ok := d.RandomPos(PosConfig{})
	if !ok {
		return false
	}
	d.player = Player{X: pos.X, Y: pos.Y, Direction: RandomDirection(d.rng)}
	d.ClearFogWithinPlayer()
	d.grid.SetWalkedAt(pos.X, pos.Y, 1)
	return true
}

// MovePlayer steps one cell in direction dir and turns to face it.
// It returns false without moving when a wall without a door stands on
// that side. A successful move reveals fog, marks the new cell walked and
// dispatches object events.
func (d *Dungeon) MovePlayer(dir Direction) bool {
	if !dir.IsValid() {
		return false
	}
	if !d.grid.At(d.player.X, d.player.Y).Passable(dir) {
		return false
	}

	dx, dy := dir.Delta()
	d.player.X += dx
	d.player.Y += dy
	d.player.Direction = dir

	d.ClearFogWithinPlayer()
	d.grid.SetWalkedAt(d.player.X, d.player.Y, 1)
	d.DispatchObjectEvent()
	return true
}

// GoPlayer moves forward.
func (d *Dungeon) GoPlayer() bool {
	return d.MovePlayer(d.player.Direction)
}

// GoRightPlayer steps to the right and faces that way.
func (d *Dungeon) GoRightPlayer() bool {
	return d.MovePlayer(d.player.Direction.Rotate(1))
}

// GoLeftPlayer steps to the left and faces that way.
func (d *Dungeon) GoLeftPlayer() bool {
	return d.MovePlayer(d.player.Direction.Rotate(-1))
}

// TurnRightPlayer turns a quarter clockwise.
func (d *Dungeon) TurnRightPlayer() bool {
	return d.turn(1)
}

// TurnLeftPlayer turns a quarter counter-clockwise.
func (d *Dungeon) TurnLeftPlayer() bool {
	return d.turn(-1)
}

// TurnBackPlayer turns around.
func (d *Dungeon) TurnBackPlayer() bool {
	return d.turn(2)
}

func (d *Dungeon) turn(n int) bool {
	d.player.Direction = d.player.Direction.Rotate(n)
	d.ClearFogWithinPlayer()
	return true
}
