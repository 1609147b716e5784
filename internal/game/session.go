package game

import (
	"context"
	"fmt"
	"math/rand"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeoncrawl/internal/config"
	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/telemetry"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// Session is one run through a stack of floors. It owns the dungeon and
// the objects placed on it, and has no knowledge of the terminal.
type Session struct {
	cfg      config.Config
	registry *gamedata.ObjectRegistry
	rng      *rand.Rand
	dungeon  *world.Dungeon

	state   State
	floor   int
	score   int
	exitID  int
	message string

	// set by the exit callback, handled once the move completes
	descend bool
}

// NewSession creates a session using cfg for dungeon size and floor count.
// Call Start to build the first floor.
func NewSession(cfg config.Config, registry *gamedata.ObjectRegistry, rng *rand.Rand) *Session {
	dungeon := world.NewDungeon(cfg.Width, cfg.Height, rng,
		world.WithViewRange(cfg.ViewRange),
		world.WithFog(cfg.Fog),
	)
	return &Session{
		cfg:      cfg,
		registry: registry,
		rng:      rng,
		dungeon:  dungeon,
		state:    StateExplore,
	}
}

// Start builds the first floor.
func (s *Session) Start(ctx context.Context) error {
	s.floor = 0
	s.score = 0
	s.state = StateExplore
	return s.nextFloor(ctx)
}

// Dungeon returns the current floor.
func (s *Session) Dungeon() *world.Dungeon { return s.dungeon }

// State returns the current game state.
func (s *Session) State() State { return s.state }

// Floor returns the 1-based floor number.
func (s *Session) Floor() int { return s.floor }

// Score returns the points collected so far.
func (s *Session) Score() int { return s.score }

// Message returns the latest status line.
func (s *Session) Message() string { return s.message }

// HasExit reports whether the current floor has an exit object.
func (s *Session) HasExit() bool { return s.exitID != 0 }

// Apply performs a player action. Reaching the exit builds the next floor
// or, on the last one, clears the run.
func (s *Session) Apply(ctx context.Context, action Action) error {
	if s.state != StateExplore {
		return nil
	}
	if !action.perform(s.dungeon) {
		if action != ActionNone && action != ActionQuit {
			s.message = "Blocked."
		}
		return nil
	}
	if !s.descend {
		return nil
	}
	s.descend = false

	if s.cfg.Floors > 0 && s.floor >= s.cfg.Floors {
		s.state = StateCleared
		s.message = fmt.Sprintf("You escaped with %d points.", s.score)
		return nil
	}
	return s.nextFloor(ctx)
}

func (s *Session) nextFloor(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.floor")
	defer span.End()

	if err := s.dungeon.Build(ctx); err != nil {
		span.RecordError(err)
		return fmt.Errorf("build floor %d: %w", s.floor+1, err)
	}
	s.floor++
	s.exitID = 0
	s.descend = false

	s.placeExit()
	treasures := s.placeTreasure()

	span.SetAttributes(
		attribute.Int("game.floor", s.floor),
		attribute.Bool("game.has_exit", s.exitID != 0),
		attribute.Int("game.treasure_count", treasures),
	)

	if s.exitID == 0 {
		s.message = fmt.Sprintf("Floor %d. There is no way down.", s.floor)
	} else {
		s.message = fmt.Sprintf("Floor %d. Find the stairs.", s.floor)
	}
	return nil
}

// placeExit puts the stairs in a room, away from the player and doors. If
// no such cell is found the floor has no exit.
func (s *Session) placeExit() {
	def := s.registry.GetByID(gamedata.ExitID)
	if def == nil {
		return
	}
	pos, ok := s.dungeon.RandomPos(world.PosConfig{
		WithoutPlayer:   true,
		WithoutCorridor: true,
		WithoutDoor:     true,
	})
	if !ok {
		return
	}

	events := world.NewMapEvent(world.EventAround, func(*world.Dungeon, *world.MapObject) bool {
		s.descend = true
		return true
	}, nil)
	s.exitID = s.dungeon.AddObject(pos.X, pos.Y, def.Mark, events, objectOptions(def)...)
}

// placeTreasure scatters catalogue objects over the floor and returns how
// many were placed.
func (s *Session) placeTreasure() int {
	count := max(1, len(s.dungeon.Rooms())/2)

	cfg := world.PosConfig{WithoutPlayer: true}
	for _, obj := range s.dungeon.Objects() {
		cfg.Exclude = append(cfg.Exclude, world.Point{X: obj.X, Y: obj.Y})
	}

	placed := 0
	for _, pos := range s.dungeon.RandomPosList(count, false, cfg) {
		def := s.registry.SpawnRandom(s.rng)
		if def == nil {
			break
		}
		events := world.NewMapEvent(world.EventAround, s.pickup(def), nil)
		s.dungeon.AddObject(pos.X, pos.Y, def.Mark, events, objectOptions(def)...)
		placed++
	}
	return placed
}

func (s *Session) pickup(def *gamedata.ObjectDef) world.ObjectEvent {
	return func(*world.Dungeon, *world.MapObject) bool {
		s.score += def.Score
		if def.Score > 0 {
			s.message = fmt.Sprintf("%s (+%d)", def.Name, def.Score)
		} else {
			s.message = def.Name
		}
		return !def.Consumable
	}
}

func objectOptions(def *gamedata.ObjectDef) []world.ObjectOption {
	return []world.ObjectOption{
		world.WithKind(def.ID),
		world.WithColor(def.RGB()),
		world.WithAlpha(def.Alpha),
		world.WithSphere(def.Sphere),
	}
}
