package gamedata

import "github.com/gdamore/tcell/v2"

// ExitID is the catalogue id of the stairs that lead to the next floor.
const ExitID = "exit"

// ObjectDef defines a map object type loaded from JSON.
type ObjectDef struct {
	ID          string  `json:"id"`          // Unique identifier (e.g., "gold")
	Name        string  `json:"name"`        // Display name (e.g., "Gold Coins")
	Mark        string  `json:"mark"`        // Single character for rendering (e.g., "$")
	Color       string  `json:"color"`       // Hex color code (e.g., "#FFC107")
	Alpha       float64 `json:"alpha"`       // Opacity for renderers that blend
	Sphere      bool    `json:"sphere"`      // Drawn as a sphere in a first-person view
	Score       int     `json:"score"`       // Points awarded when the player steps on it
	Consumable  bool    `json:"consumable"`  // Removed from the map once stepped on
	SpawnWeight int     `json:"spawnWeight"` // Relative spawn frequency; 0 never spawns at random
}

// MarkRune returns the mark as a rune for rendering.
func (o *ObjectDef) MarkRune() rune {
	return FirstRune(o.Mark)
}

// FirstRune returns the first rune of a mark, or '?' for an empty one.
func FirstRune(mark string) rune {
	for _, r := range mark {
		return r
	}
	return '?'
}

// TCellColor returns the color as a tcell.Color.
func (o *ObjectDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(o.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// RGB returns the color packed as 0xRRGGBB, white if it does not parse.
func (o *ObjectDef) RGB() uint32 {
	rgb, err := ParseHexRGB(o.Color)
	if err != nil {
		return 0xFFFFFF
	}
	return rgb
}

// ObjectsFile represents the structure of objects.json.
type ObjectsFile struct {
	Objects []ObjectDef `json:"objects"`
}

// LoadObjects loads object definitions from the embedded objects.json file.
func LoadObjects() ([]ObjectDef, error) {
	file, err := Load[ObjectsFile]("objects.json")
	if err != nil {
		return nil, err
	}
	return file.Objects, nil
}
