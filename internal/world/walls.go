package world

import (
	"math"
	"math/rand"
	"sort"

	"github.com/zyedidia/generic/mapset"
)

const blockChance = 0.6

// wallStats summarises one resolveWalls pass for telemetry.
type wallStats struct {
	Blocked     int
	Connections int
	Stitches    int
	Doors       int
}

// resolveWalls stamps wall bits for every room and corridor, removes a few
// rooms from play, opens walls between randomly connected rooms, merges
// abutting corridors and places doors.
//
// rooms must be in row-major order; see RoomList.
func resolveWalls(g *Grid, rooms RoomList, rng *rand.Rand) wallStats {
	var stats wallStats

	blocked := pickBlockedRooms(len(rooms), rng)
	stats.Blocked = blocked.Size()

	connected, n := connectRooms(rooms, blocked, rng)
	stats.Connections = n

	stampWalls(g, rooms, blocked, connected)
	stats.Stitches = stitchCorridors(g, rooms.Corridors())
	stats.Doors = placeDoors(g, rooms, rng)
	return stats
}

// pickBlockedRooms chooses rooms to wall off entirely. A candidate is
// skipped when it sits next to an already blocked index, either directly
// or one approximate row above or below.
func pickBlockedRooms(count int, rng *rand.Rand) mapset.Set[int] {
	blocked := mapset.New[int]()
	if count == 0 {
		return blocked
	}

	rowLen := math.Sqrt(float64(count)) - 1
	attempts := int(math.Round(math.Sqrt(float64(count)))) - 1

	var picked []int
	for i := 0; i < attempts; i++ {
		if rng.Float64() >= blockChance {
			continue
		}
		candidate := rng.Intn(count)
		if nearBlocked(candidate, picked, rowLen) {
			continue
		}
		picked = append(picked, candidate)
		blocked.Put(candidate)
	}
	return blocked
}

func nearBlocked(candidate int, picked []int, rowLen float64) bool {
	c := float64(candidate)
	for _, p := range picked {
		v := float64(p)
		for _, shift := range []float64{0, -rowLen, rowLen} {
			if v-1+shift <= c && c <= v+1+shift {
				return true
			}
		}
	}
	return false
}

// connectRooms picks len(rooms) random (room, direction) pairs and records
// an opening between the room and its contact neighbour in that direction.
// The returned map holds, per room index, the set of opened sides.
func connectRooms(rooms RoomList, blocked mapset.Set[int], rng *rand.Rand) (map[int]mapset.Set[Direction], int) {
	connected := make(map[int]mapset.Set[Direction])
	count := 0
	link := func(a int, d Direction, b int) {
		for _, side := range []struct {
			idx int
			dir Direction
		}{{a, d}, {b, d.Opposite()}} {
			set, ok := connected[side.idx]
			if !ok {
				set = mapset.New[Direction]()
				connected[side.idx] = set
			}
			set.Put(side.dir)
		}
		count++
	}

	for i := 0; i < len(rooms); i++ {
		idx := rng.Intn(len(rooms))
		d := RandomDirection(rng)
		if blocked.Has(idx) {
			continue
		}
		room := rooms[idx].Rect

		switch d {
		case East:
			next := idx + 1
			if next < len(rooms) && room.IsContact(rooms[next].Rect) && !blocked.Has(next) {
				link(idx, East, next)
			}
		case West:
			prev := idx - 1
			if prev >= 0 && room.IsContact(rooms[prev].Rect) && !blocked.Has(prev) {
				link(idx, West, prev)
			}
		case South:
			for j := idx + 1; j < len(rooms); j++ {
				other := rooms[j].Rect
				if other.Y1 < room.Y2 {
					continue // still in this band
				}
				if room.Y2+2 < other.Y1 && room.X2 < other.X1 {
					break // past the band below
				}
				if room.IsContact(other) && !blocked.Has(j) {
					link(idx, South, j)
				}
			}
		case North:
			for j := idx - 1; j >= 0; j-- {
				other := rooms[j].Rect
				if other.Y2 > room.Y1 {
					continue
				}
				if room.Y1-2 > other.Y2 && room.X1 > other.X2 {
					break
				}
				if room.IsContact(other) && !blocked.Has(j) {
					link(idx, North, j)
				}
			}
		}
	}
	return connected, count
}

// stampWalls writes each room's boundary bits, minus the sides it was
// connected on, and each corridor's full boundary bits.
func stampWalls(g *Grid, rooms RoomList, blocked mapset.Set[int], connected map[int]mapset.Set[Direction]) {
	for i, room := range rooms {
		var open Cell
		if set, ok := connected[i]; ok {
			set.Each(func(d Direction) {
				open |= WallBit(d)
			})
		}
		keep := ^open

		for x := room.X1; x <= room.X2; x++ {
			for y := room.Y1; y <= room.Y2; y++ {
				if blocked.Has(i) {
					g.SetAt(x, y, Blocked)
					continue
				}
				g.SetAt(x, y, room.BoundaryBits(x, y)&keep)
			}
		}

		for _, c := range room.Corridors {
			for x := c.X1; x <= c.X2; x++ {
				for y := c.Y1; y <= c.Y2; y++ {
					g.SetAt(x, y, c.BoundaryBits(x, y))
				}
			}
		}
	}
}

// stitchCorridors removes the wall pair between corridors that lie side by
// side when one spans the other, joining stubs cut from neighbouring rooms
// into one passage. It returns the number of joined pairs.
func stitchCorridors(g *Grid, corridors []Rect) int {
	sorted := make([]Rect, len(corridors))
	copy(sorted, corridors)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].X1 != sorted[j].X1 {
			return sorted[i].X1 < sorted[j].X1
		}
		return sorted[i].Y1 < sorted[j].Y1
	})

	stitches := 0
	for i, a := range sorted {
		for _, b := range sorted[i+1:] {
			if stitchPair(g, a, b) {
				stitches++
			}
		}
	}
	return stitches
}

// stitchPair opens the shared boundary of a and b over the narrower span.
func stitchPair(g *Grid, a, b Rect) bool {
	switch {
	case b.X1 <= a.X1 && a.X2 <= b.X2:
		return openRows(g, a, b, a.X1, a.X2)
	case a.X1 <= b.X1 && b.X2 <= a.X2:
		return openRows(g, a, b, b.X1, b.X2)
	case b.Y1 <= a.Y1 && a.Y2 <= b.Y2:
		return openCols(g, a, b, a.Y1, a.Y2)
	case a.Y1 <= b.Y1 && b.Y2 <= a.Y2:
		return openCols(g, a, b, b.Y1, b.Y2)
	}
	return false
}

// openRows clears the south/north wall pair on columns x1..x2 when b sits
// directly below or above a.
func openRows(g *Grid, a, b Rect, x1, x2 int) bool {
	switch {
	case b.Y1-1 == a.Y2:
		for x := x1; x <= x2; x++ {
			clearWall(g, x, a.Y2, South)
			clearWall(g, x, a.Y2+1, North)
		}
		return true
	case b.Y2+1 == a.Y1:
		for x := x1; x <= x2; x++ {
			clearWall(g, x, a.Y1, North)
			clearWall(g, x, a.Y1-1, South)
		}
		return true
	}
	return false
}

// openCols clears the east/west wall pair on rows y1..y2 when b sits
// directly right or left of a.
func openCols(g *Grid, a, b Rect, y1, y2 int) bool {
	switch {
	case b.X1-1 == a.X2:
		for y := y1; y <= y2; y++ {
			clearWall(g, a.X2, y, East)
			clearWall(g, a.X2+1, y, West)
		}
		return true
	case b.X2+1 == a.X1:
		for y := y1; y <= y2; y++ {
			clearWall(g, a.X1, y, West)
			clearWall(g, a.X1-1, y, East)
		}
		return true
	}
	return false
}

// clearWall subtracts the wall bit for side d if it is present, so a
// boundary cleared twice stays consistent.
func clearWall(g *Grid, x, y int, d Direction) {
	v := g.At(x, y)
	if v.IsBlocked() || !v.Wall(d) {
		return
	}
	g.UpdateAt(x, y, -WallBit(d))
}

// placeDoors makes one attempt per room side that has no door yet: a
// random cell on that side becomes a door if both it and the cell beyond
// carry the facing walls. It returns the number of doors placed.
func placeDoors(g *Grid, rooms RoomList, rng *rand.Rand) int {
	doors := 0
	for _, room := range rooms {
		for _, d := range AllDirections() {
			side := room.Side(d)
			if sideHasDoor(g, side, d) {
				continue
			}

			x, y := side.X1, side.Y1
			if d == East || d == West {
				y = side.Y1 + rng.Intn(side.Height())
			} else {
				x = side.X1 + rng.Intn(side.Width())
			}
			dx, dy := d.Delta()
			inside, outside := g.At(x, y), g.At(x+dx, y+dy)
			if outside.IsBlocked() || !inside.Wall(d) || !outside.Wall(d.Opposite()) {
				continue
			}
			g.SetAt(x, y, inside|DoorBit(d))
			g.SetAt(x+dx, y+dy, outside|DoorBit(d.Opposite()))
			doors++
		}
	}
	return doors
}

// sideHasDoor reports whether any cell of the strip already has a door on
// side d. Blocked cells count as having one, so walled-off rooms get none.
func sideHasDoor(g *Grid, side Rect, d Direction) bool {
	for x := side.X1; x <= side.X2; x++ {
		for y := side.Y1; y <= side.Y2; y++ {
			if g.At(x, y)&DoorBit(d) == DoorBit(d) {
				return true
			}
		}
	}
	return false
}
