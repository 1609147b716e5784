package game

import (
	"context"
	"math/rand"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeoncrawl/internal/config"
	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/telemetry"
	"github.com/samdwyer/dungeoncrawl/internal/ui"
)

// Game holds the terminal and the session it drives.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *Session
	running  bool
}

// New creates a new game instance.
func New(cfg config.Config, registry *gamedata.ObjectRegistry, rng *rand.Rand) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen, registry.All()),
		session:  NewSession(cfg, registry, rng),
		running:  true,
	}, nil
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")

	ctx, initSpan := tracer.Start(ctx, "game.init")
	if err := g.session.Start(ctx); err != nil {
		initSpan.RecordError(err)
		initSpan.End()
		g.screen.Close()
		return err
	}
	initSpan.SetAttributes(
		attribute.Int("dungeon.rooms", len(g.session.Dungeon().Rooms())),
		attribute.Bool("game.has_exit", g.session.HasExit()),
	)
	initSpan.End()

	var err error
	for g.running && err == nil {
		g.renderer.Render(g.session.Dungeon(), g.status())
		err = g.handleInput(ctx)
	}

	g.screen.Close()
	return err
}

func (g *Game) status() ui.Status {
	return ui.Status{
		Floor:   g.session.Floor(),
		Score:   g.session.Score(),
		State:   g.session.State().String(),
		Message: g.session.Message(),
	}
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) error {
	switch ev := g.screen.PollEvent().(type) {
	case *tcell.EventKey:
		action := keyAction(ev.Key(), ev.Rune())
		if action == ActionQuit {
			g.running = false
			return nil
		}
		return g.session.Apply(ctx, action)
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return nil
}
