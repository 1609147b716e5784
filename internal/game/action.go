package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// Action is a player command.
type Action int

const (
	ActionNone Action = iota
	ActionGo
	ActionTurnLeft
	ActionTurnRight
	ActionTurnBack
	ActionStrafeLeft
	ActionStrafeRight
	ActionMoveEast
	ActionMoveSouth
	ActionMoveWest
	ActionMoveNorth
	ActionQuit
)

var actionNames = map[Action]string{
	ActionNone:        "none",
	ActionGo:          "go",
	ActionTurnLeft:    "turn-left",
	ActionTurnRight:   "turn-right",
	ActionTurnBack:    "turn-back",
	ActionStrafeLeft:  "strafe-left",
	ActionStrafeRight: "strafe-right",
	ActionMoveEast:    "move-east",
	ActionMoveSouth:   "move-south",
	ActionMoveWest:    "move-west",
	ActionMoveNorth:   "move-north",
	ActionQuit:        "quit",
}

// String returns the action name used in span attributes.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// perform applies a movement action to d and reports whether anything changed.
func (a Action) perform(d *world.Dungeon) bool {
	switch a {
	case ActionGo:
		return d.GoPlayer()
	case ActionTurnLeft:
		return d.TurnLeftPlayer()
	case ActionTurnRight:
		return d.TurnRightPlayer()
	case ActionTurnBack:
		return d.TurnBackPlayer()
	case ActionStrafeLeft:
		return d.GoLeftPlayer()
	case ActionStrafeRight:
		return d.GoRightPlayer()
	case ActionMoveEast:
		return d.MovePlayer(world.East)
	case ActionMoveSouth:
		return d.MovePlayer(world.South)
	case ActionMoveWest:
		return d.MovePlayer(world.West)
	case ActionMoveNorth:
		return d.MovePlayer(world.North)
	default:
		return false
	}
}

// keyAction maps a key press to an action. W/A/S/D walk relative to the
// facing, Q/E strafe, and the arrow keys move in absolute directions.
func keyAction(key tcell.Key, r rune) Action {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyUp:
		return ActionMoveNorth
	case tcell.KeyDown:
		return ActionMoveSouth
	case tcell.KeyLeft:
		return ActionMoveWest
	case tcell.KeyRight:
		return ActionMoveEast
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return ActionGo
		case 'a', 'A':
			return ActionTurnLeft
		case 's', 'S':
			return ActionTurnBack
		case 'd', 'D':
			return ActionTurnRight
		case 'q', 'Q':
			return ActionStrafeLeft
		case 'e', 'E':
			return ActionStrafeRight
		case 'x', 'X':
			return ActionQuit
		}
	}
	return ActionNone
}
