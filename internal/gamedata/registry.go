package gamedata

import (
	"errors"
	"math/rand"
	"sort"
)

// ObjectRegistry holds the object catalogue and picks random spawns from it.
type ObjectRegistry struct {
	objects []ObjectDef
	// cumulative[i] is the total spawn weight of objects[0..i]
	cumulative []int
}

// NewObjectRegistry creates a registry from loaded object definitions.
func NewObjectRegistry(objects []ObjectDef) *ObjectRegistry {
	cumulative := make([]int, len(objects))
	total := 0
	for i, o := range objects {
		total += max(o.SpawnWeight, 0)
		cumulative[i] = total
	}
	return &ObjectRegistry{objects: objects, cumulative: cumulative}
}

// LoadObjectRegistry loads and creates a registry from the embedded objects.json.
func LoadObjectRegistry() (*ObjectRegistry, error) {
	objects, err := LoadObjects()
	if err != nil {
		return nil, err
	}
	if len(objects) == 0 {
		return nil, errors.New("no objects loaded from objects.json")
	}
	return NewObjectRegistry(objects), nil
}

// SpawnRandom picks a definition with probability proportional to its
// spawnWeight. Returns nil when every weight is zero.
func (r *ObjectRegistry) SpawnRandom(rng *rand.Rand) *ObjectDef {
	if len(r.cumulative) == 0 || r.cumulative[len(r.cumulative)-1] <= 0 {
		return nil
	}
	roll := rng.Intn(r.cumulative[len(r.cumulative)-1])
	// first index whose running total exceeds roll
	i := sort.SearchInts(r.cumulative, roll+1)
	return &r.objects[i]
}

// GetByID returns the object definition with the given ID, or nil if not found.
func (r *ObjectRegistry) GetByID(id string) *ObjectDef {
	for i := range r.objects {
		if r.objects[i].ID == id {
			return &r.objects[i]
		}
	}
	return nil
}

// All returns all object definitions in catalogue order.
func (r *ObjectRegistry) All() []ObjectDef {
	return r.objects
}
