package world

import (
	"math/rand"
	"testing"
)

func TestRandomPosWithoutPlayer(t *testing.T) {
	d := NewDungeon(3, 1, rand.New(rand.NewSource(7)))
	d.SetAt(1, 1, 0)
	d.SetAt(2, 1, 0)
	d.SetPlayer(1, 1, East)

	for i := 0; i < 50; i++ {
		p, ok := d.RandomPos(PosConfig{WithoutPlayer: true})
		if !ok {
			t.Fatalf("Trial %d found no position", i)
		}
		if p != (Point{2, 1}) {
			t.Fatalf("Trial %d returned %+v, want (2,1)", i, p)
		}
	}
}

func TestRandomPosNeverBlocked(t *testing.T) {
	d := buildDungeon(t, 99, DefaultWidth, DefaultHeight)
	for i := 0; i < 200; i++ {
		p, ok := d.RandomPos(PosConfig{})
		if !ok {
			t.Fatal("No position on a built dungeon")
		}
		if d.At(p.X, p.Y).IsBlocked() {
			t.Fatalf("Returned blocked cell %+v", p)
		}
		if p.X < 1 || p.X > d.Width() || p.Y < 1 || p.Y > d.Height() {
			t.Fatalf("Returned border cell %+v", p)
		}
	}
}

func TestRandomPosFullyBlocked(t *testing.T) {
	d := NewDungeon(4, 4, rand.New(rand.NewSource(1)))
	if p, ok := d.RandomPos(PosConfig{}); ok {
		t.Errorf("Expected no position, got %+v", p)
	}
}

func TestRandomPosFilters(t *testing.T) {
	d := NewDungeon(3, 1, rand.New(rand.NewSource(3)))
	d.SetAt(1, 1, 0)
	d.SetAt(2, 1, WallBit(East)|DoorBit(East))
	d.SetAt(3, 1, 0)
	d.rooms = RoomList{{
		Rect:      Rect{X1: 1, Y1: 1, X2: 2, Y2: 1},
		Corridors: []Rect{{X1: 3, Y1: 1, X2: 3, Y2: 1}},
	}}

	for i := 0; i < 50; i++ {
		p, ok := d.RandomPos(PosConfig{WithoutDoor: true, WithoutCorridor: true})
		if !ok || p != (Point{1, 1}) {
			t.Fatalf("Got %+v, %v; want (1,1)", p, ok)
		}
	}

	for i := 0; i < 50; i++ {
		p, ok := d.RandomPos(PosConfig{Exclude: []Point{{1, 1}, {3, 1}}})
		if !ok || p != (Point{2, 1}) {
			t.Fatalf("Got %+v, %v; want (2,1)", p, ok)
		}
	}
}

func TestRandomPosListDistinct(t *testing.T) {
	d := NewDungeon(3, 1, rand.New(rand.NewSource(11)))
	for x := 1; x <= 3; x++ {
		d.SetAt(x, 1, 0)
	}
	exclude := []Point{{9, 9}}

	list := d.RandomPosList(5, false, PosConfig{Exclude: exclude})
	if len(list) != 3 {
		t.Fatalf("Got %d positions, want 3", len(list))
	}
	seen := make(map[Point]bool)
	for _, p := range list {
		if seen[p] {
			t.Errorf("Duplicate position %+v", p)
		}
		seen[p] = true
	}
	if len(exclude) != 1 || exclude[0] != (Point{9, 9}) {
		t.Errorf("Caller exclude list modified: %+v", exclude)
	}
}

func TestRandomPosListDuplicates(t *testing.T) {
	d := NewDungeon(3, 1, rand.New(rand.NewSource(11)))
	d.SetAt(2, 1, 0)

	list := d.RandomPosList(4, true, PosConfig{})
	if len(list) != 4 {
		t.Fatalf("Got %d positions, want 4", len(list))
	}
	for _, p := range list {
		if p != (Point{2, 1}) {
			t.Errorf("Unexpected position %+v", p)
		}
	}
}

func TestRandomPosListZero(t *testing.T) {
	d := buildDungeon(t, 5, DefaultWidth, DefaultHeight)
	if list := d.RandomPosList(0, false, PosConfig{}); len(list) != 0 {
		t.Errorf("Expected empty list, got %+v", list)
	}
}
