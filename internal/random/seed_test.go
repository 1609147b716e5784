package random

import "testing"

func TestNewSeedVaries(t *testing.T) {
	a, err := NewSeed()
	if err != nil {
		t.Fatalf("NewSeed: %v", err)
	}
	b, err := NewSeed()
	if err != nil {
		t.Fatalf("NewSeed: %v", err)
	}
	if a == b {
		t.Errorf("two seeds were equal: %d", a)
	}
}

func TestNewRandFixedSeed(t *testing.T) {
	r1, seed, err := NewRand(42)
	if err != nil {
		t.Fatalf("NewRand: %v", err)
	}
	if seed != 42 {
		t.Fatalf("expected seed 42, got %d", seed)
	}
	r2, _, _ := NewRand(42)
	for i := 0; i < 10; i++ {
		if r1.Int63() != r2.Int63() {
			t.Fatal("same seed produced different sequences")
		}
	}
}

func TestNewRandZeroSeed(t *testing.T) {
	_, seed, err := NewRand(0)
	if err != nil {
		t.Fatalf("NewRand: %v", err)
	}
	if seed == 0 {
		t.Error("zero seed should be replaced")
	}
}
