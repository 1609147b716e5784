package world

import "math/rand"

// corridorCounts is the weighted table for how many corridors a room gets.
// Each bucket is equally likely.
var corridorCounts = [24]int{
	0,
	1, 1, 1, 1, 1, 1, 1, 1, 1,
	2, 2, 2, 2, 2, 2, 2, 2,
	3, 3, 3, 3,
	4, 4,
}

// carveCorridors shrinks each room by cutting one-cell corridor strips from
// its edges. Rooms are processed in order; a strip that would abut a
// corridor from an earlier room along the same axis is rejected.
func carveCorridors(rects []Rect, width, height, minLen int, rng *rand.Rand) RoomList {
	rooms := make(RoomList, 0, len(rects))
	for _, rect := range rects {
		room := Room{Rect: rect}
		count := corridorCounts[rng.Intn(len(corridorCounts))]

		// one shuffled stack per room; a direction is used up once tried
		dirs := AllDirections()
		rng.Shuffle(len(dirs), func(i, j int) { dirs[i], dirs[j] = dirs[j], dirs[i] })

		for i := 0; i < count && len(dirs) > 0; i++ {
			for len(dirs) > 0 {
				d := dirs[len(dirs)-1]
				dirs = dirs[:len(dirs)-1]

				corridor, rest, ok := cutStrip(room.Rect, d, width, height, minLen)
				if !ok || conflicts(corridor, d, rooms) {
					continue
				}
				room.Corridors = append(room.Corridors, corridor)
				room.Rect = rest
				break
			}
		}
		rooms = append(rooms, room)
	}
	return rooms
}

// cutStrip splits the side-d strip off r. It fails when r already touches
// the grid edge on that side or is too narrow on the cut axis.
func cutStrip(r Rect, d Direction, width, height, minLen int) (strip, rest Rect, ok bool) {
	rest = r
	switch d {
	case East:
		if r.X2 == width || r.X2-r.X1 <= minLen {
			return Rect{}, r, false
		}
		rest.X2--
	case South:
		if r.Y2 == height || r.Y2-r.Y1 <= minLen {
			return Rect{}, r, false
		}
		rest.Y2--
	case West:
		if r.X1 == 1 || r.X2-r.X1 <= minLen {
			return Rect{}, r, false
		}
		rest.X1++
	case North:
		if r.Y1 == 1 || r.Y2-r.Y1 <= minLen {
			return Rect{}, r, false
		}
		rest.Y1++
	default:
		return Rect{}, r, false
	}
	return r.Side(d), rest, true
}

// conflicts reports whether a strip cut on side d lies directly beside a
// corridor of an earlier room, with more than one cell of overlap along
// the strip.
func conflicts(strip Rect, d Direction, earlier RoomList) bool {
	vertical := d == East || d == West
	for _, room := range earlier {
		for _, c := range room.Corridors {
			if vertical {
				if (c.X1 == strip.X2+1 || c.X2 == strip.X1-1) && overlap(strip.Y1, strip.Y2, c.Y1, c.Y2) > 1 {
					return true
				}
				continue
			}
			if (c.Y1 == strip.Y2+1 || c.Y2 == strip.Y1-1) && overlap(strip.X1, strip.X2, c.X1, c.X2) > 1 {
				return true
			}
		}
	}
	return false
}

// overlap returns how many cells the ranges [a1,a2] and [b1,b2] share.
func overlap(a1, a2, b1, b2 int) int {
	lo, hi := max(a1, b1), min(a2, b2)
	if hi < lo {
		return 0
	}
	return hi - lo + 1
}
