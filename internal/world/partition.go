package world

import (
	"math/rand"
	"sort"
)

// partitionRooms cuts the interior of a width x height grid into rooms
// with randomly placed horizontal and vertical lines.
//
// A cut line at c ends one band at c and starts the next at c+1. Lines
// closer than minLen to an accepted line are skipped. The result is in
// row-major order.
func partitionRooms(width, height, minLen int, rng *rand.Rand) []Rect {
	// the formulas below work on the bordered extents
	fullW, fullH := width+2, height+2

	hLines := pickCutLines(fullH, minLen, rng)
	vLines := pickCutLines(fullW, minLen, rng)

	var rooms []Rect
	prevH := 0
	for _, h := range append(hLines, height) {
		prevV := 0
		for _, v := range append(vLines, width) {
			rooms = append(rooms, Rect{X1: prevV + 1, Y1: prevH + 1, X2: v, Y2: h})
			prevV = v
		}
		prevH = h
	}
	return rooms
}

// pickCutLines chooses up to (extent-3)/(minLen+1) cut positions along an
// axis of the given bordered extent and returns them sorted ascending.
func pickCutLines(extent, minLen int, rng *rand.Rand) []int {
	limit := (extent - 3) / (minLen + 1)

	var candidates []int
	for i := minLen; i < extent-2-minLen; i++ {
		candidates = append(candidates, i)
	}
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	lines := make([]int, 0, limit)
	for len(lines) < limit && len(candidates) > 0 {
		line := candidates[len(candidates)-1]
		candidates = candidates[:len(candidates)-1]
		if tooClose(line, lines, minLen) {
			continue
		}
		lines = append(lines, line)
	}

	sort.Ints(lines)
	return lines
}

func tooClose(line int, accepted []int, minLen int) bool {
	for _, a := range accepted {
		if line-minLen <= a && a <= line+minLen {
			return true
		}
	}
	return false
}
