package gamedata

import (
	"math/rand"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestLoadObjects(t *testing.T) {
	objects, err := LoadObjects()
	if err != nil {
		t.Fatalf("Failed to load objects: %v", err)
	}

	if len(objects) != 5 {
		t.Errorf("Expected 5 objects, got %d", len(objects))
	}

	expectedIDs := map[string]bool{ExitID: false, "gold": false, "gem": false, "potion": false, "sign": false}
	for _, o := range objects {
		if _, ok := expectedIDs[o.ID]; ok {
			expectedIDs[o.ID] = true
		}
		if _, err := ParseHexRGB(o.Color); err != nil {
			t.Errorf("Object %q has bad color %q: %v", o.ID, o.Color, err)
		}
	}

	for id, found := range expectedIDs {
		if !found {
			t.Errorf("Expected object %q not found", id)
		}
	}
}

func TestObjectRegistry(t *testing.T) {
	registry, err := LoadObjectRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	exit := registry.GetByID(ExitID)
	if exit == nil {
		t.Fatal("Exit not found by ID")
	}
	if exit.Mark != ">" || exit.SpawnWeight != 0 {
		t.Errorf("Unexpected exit definition: %+v", exit)
	}
	if len(registry.All()) != 5 {
		t.Errorf("Expected 5 definitions, got %d", len(registry.All()))
	}
	if registry.GetByID("dragon") != nil {
		t.Error("Unknown ID should return nil")
	}

	// Same seed spawns the same sequence, and never the exit
	rng1 := rand.New(rand.NewSource(12345))
	rng2 := rand.New(rand.NewSource(12345))
	for i := 0; i < 50; i++ {
		a := registry.SpawnRandom(rng1)
		b := registry.SpawnRandom(rng2)
		if a == nil || b == nil {
			t.Fatal("SpawnRandom returned nil")
		}
		if a.ID != b.ID {
			t.Errorf("Spawn %d mismatch: %s != %s", i, a.ID, b.ID)
		}
		if a.ID == ExitID {
			t.Error("Exit has no spawn weight and should never spawn")
		}
	}
}

func TestSpawnRandomSkipsZeroWeights(t *testing.T) {
	registry := NewObjectRegistry([]ObjectDef{
		{ID: "a", SpawnWeight: 0},
		{ID: "b", SpawnWeight: 1},
		{ID: "c", SpawnWeight: 0},
		{ID: "d", SpawnWeight: 3},
	})
	rng := rand.New(rand.NewSource(7))
	counts := make(map[string]int)
	for i := 0; i < 1000; i++ {
		counts[registry.SpawnRandom(rng).ID]++
	}
	if counts["a"] != 0 || counts["c"] != 0 {
		t.Errorf("Zero-weight objects spawned: %v", counts)
	}
	if counts["b"] == 0 || counts["d"] <= counts["b"] {
		t.Errorf("Unexpected spawn distribution: %v", counts)
	}
}

func TestSpawnRandomEmpty(t *testing.T) {
	registry := NewObjectRegistry([]ObjectDef{{ID: "fixed", SpawnWeight: 0}})
	if got := registry.SpawnRandom(rand.New(rand.NewSource(1))); got != nil {
		t.Errorf("Expected nil, got %+v", got)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00FF00", true},
		{"#FFFFFF", true},
		{"#000000", true},
		{"invalid", false},
		{"#FFF", false}, // Too short
		{"#GG0000", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}
}

func TestParseHexRGB(t *testing.T) {
	rgb, err := ParseHexRGB("#12AB9F")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rgb != 0x12AB9F {
		t.Errorf("Expected 0x12AB9F, got %#x", rgb)
	}
	if RGBColor(rgb) != tcell.NewRGBColor(0x12, 0xAB, 0x9F) {
		t.Error("RGBColor does not match tcell.NewRGBColor")
	}
}

func TestObjectDefMethods(t *testing.T) {
	def := ObjectDef{ID: "test", Mark: "T", Color: "#FF0000"}

	if def.MarkRune() != 'T' {
		t.Errorf("Expected mark 'T', got %c", def.MarkRune())
	}
	if def.RGB() != 0xFF0000 {
		t.Errorf("Expected 0xFF0000, got %#x", def.RGB())
	}
	if def.TCellColor() == tcell.ColorDefault {
		t.Error("TCellColor returned the default color")
	}

	if FirstRune("★x") != '★' || FirstRune("") != '?' {
		t.Error("FirstRune mismatch")
	}

	bad := ObjectDef{Color: "nope"}
	if bad.RGB() != 0xFFFFFF || bad.MarkRune() != '?' {
		t.Error("Fallbacks not applied")
	}
}
