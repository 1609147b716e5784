// Package game provides the main game loop and floor progression.
package game

// State represents the current game state.
type State int

const (
	// StateExplore is the default mode: the player walks the current floor.
	StateExplore State = iota
	// StateCleared means the last floor's exit was reached.
	StateCleared
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateExplore:
		return "explore"
	case StateCleared:
		return "cleared"
	default:
		return "unknown"
	}
}
