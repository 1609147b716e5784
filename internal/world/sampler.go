package world

// maxPosAttempts bounds the rejection sampling in RandomPos.
const maxPosAttempts = 1000

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// PosConfig selects which cells RandomPos refuses. Blocked cells are
// always refused.
type PosConfig struct {
	WithoutCorridor bool    // refuse cells on a corridor strip
	WithoutDoor     bool    // refuse cells with any door bit
	WithoutPlayer   bool    // refuse the player's cell
	Exclude         []Point // refuse these coordinates
}

// RandomPos draws random interior cells until one passes cfg. It gives up
// after maxPosAttempts draws and returns false; callers should then skip
// whatever needed the position.
func (d *Dungeon) RandomPos(cfg PosConfig) (Point, bool) {
	w, h := d.grid.Width(), d.grid.Height()
	if w <= 0 || h <= 0 {
		return Point{}, false
	}

	for i := 0; i < maxPosAttempts; i++ {
		p := Point{X: 1 + d.rng.Intn(w), Y: 1 + d.rng.Intn(h)}
		if d.acceptPos(p, cfg) {
			return p, true
		}
	}
	return Point{}, false
}

func (d *Dungeon) acceptPos(p Point, cfg PosConfig) bool {
	value := d.grid.At(p.X, p.Y)
	if value.IsBlocked() {
		return false
	}
	if cfg.WithoutCorridor && d.rooms.InCorridor(p.X, p.Y) {
		return false
	}
	if cfg.WithoutDoor && value.HasDoor() {
		return false
	}
	if cfg.WithoutPlayer && p.X == d.player.X && p.Y == d.player.Y {
		return false
	}
	for _, ex := range cfg.Exclude {
		if ex == p {
			return false
		}
	}
	return true
}

// RandomPosList draws up to count positions. Unless allowDuplicates is set,
// every accepted position is excluded from later draws. The list is cut
// short at the first failed draw. cfg.Exclude is not modified.
func (d *Dungeon) RandomPosList(count int, allowDuplicates bool, cfg PosConfig) []Point {
	cfg.Exclude = append([]Point(nil), cfg.Exclude...)

	result := make([]Point, 0, max(count, 0))
	for i := 0; i < count; i++ {
		p, ok := d.RandomPos(cfg)
		if !ok {
			break
		}
		result = append(result, p)
		if !allowDuplicates {
			cfg.Exclude = append(cfg.Exclude, p)
		}
	}
	return result
}
