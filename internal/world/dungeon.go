package world

import (
	"context"
	"errors"
	"iter"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/dungeoncrawl/internal/telemetry"
)

const (
	// Default dungeon dimensions (interior, without the border)
	DefaultWidth  = 15
	DefaultHeight = 15

	// DefaultViewRange is how many cells ahead the fog sweep reaches.
	DefaultViewRange = 3

	// minRoomLength is the shortest span a room may be cut down to.
	minRoomLength = 3
)

// ErrNoPlacement is returned by Build when no open cell could be found
// for the player.
var ErrNoPlacement = errors.New("no open cell for player")

// Dungeon owns the map grid, the rooms it was generated from, the player
// and the objects placed on the map.
type Dungeon struct {
	width     int
	height    int
	viewRange int
	fog       bool

	grid    *Grid
	rooms   RoomList
	player  Player
	objects []*MapObject

	objectCounter int
	generation    int
	rng           *rand.Rand
}

// Option configures a Dungeon.
type Option func(*Dungeon)

// WithViewRange sets how far ahead the player sees.
func WithViewRange(n int) Option {
	return func(d *Dungeon) { d.viewRange = n }
}

// WithFog turns fog of war on or off. With fog off every cell starts revealed.
func WithFog(enabled bool) Option {
	return func(d *Dungeon) { d.fog = enabled }
}

// NewDungeon creates an empty dungeon with the given interior size. All
// randomness is drawn from rng; a nil rng gets a time-seeded source.
// Negative sizes are treated as zero; Build on an empty interior returns
// ErrNoPlacement.
func NewDungeon(width, height int, rng *rand.Rand, opts ...Option) *Dungeon {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	d := &Dungeon{
		width:     max(width, 0),
		height:    max(height, 0),
		viewRange: DefaultViewRange,
		fog:       true,
		rng:       rng,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.Init()
	return d
}

// Init clears the map, rooms and objects and resets the player to 0,0
// facing East.
func (d *Dungeon) Init() {
	d.grid = NewGrid(d.width, d.height, d.fog)
	d.rooms = nil
	d.objects = nil
	d.player = Player{Direction: East}
	d.generation++
}

// Build generates a new floor: rooms, corridors, walls and doors, then
// places the player. Objects from the previous floor are discarded.
func (d *Dungeon) Build(ctx context.Context) error {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.build")
	defer span.End()

	startTime := time.Now()

	d.Init()

	if d.width < 1 || d.height < 1 {
		span.RecordError(ErrNoPlacement)
		span.SetStatus(codes.Error, "empty interior")
		return ErrNoPlacement
	}

	// Cut the interior into rooms
	rects := partitionRooms(d.width, d.height, minRoomLength, d.rng)

	// Carve corridor strips from room edges
	d.rooms = carveCorridors(rects, d.width, d.height, minRoomLength, d.rng)

	// Stamp walls and doors
	stats := resolveWalls(d.grid, d.rooms, d.rng)

	span.SetAttributes(
		attribute.Int("dungeon.width", d.width),
		attribute.Int("dungeon.height", d.height),
		attribute.Int("dungeon.room_count", len(d.rooms)),
		attribute.Int("dungeon.corridor_count", len(d.rooms.Corridors())),
		attribute.Int("dungeon.blocked_count", stats.Blocked),
		attribute.Int("dungeon.connection_count", stats.Connections),
		attribute.Int("dungeon.stitch_count", stats.Stitches),
		attribute.Int("dungeon.door_count", stats.Doors),
	)

	if !d.SetPlayerRandom() {
		span.RecordError(ErrNoPlacement)
		span.SetStatus(codes.Error, "player placement failed")
		return ErrNoPlacement
	}

	span.SetAttributes(
		attribute.Int("player.x", d.player.X),
		attribute.Int("player.y", d.player.Y),
		attribute.String("player.direction", d.player.Direction.String()),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)
	return nil
}

// Rooms returns the rooms of the current floor in row-major order.
func (d *Dungeon) Rooms() RoomList {
	return d.rooms
}

// Width returns the interior width.
func (d *Dungeon) Width() int {
	return d.grid.Width()
}

// Height returns the interior height.
func (d *Dungeon) Height() int {
	return d.grid.Height()
}

// ViewRange returns how far ahead the player sees.
func (d *Dungeon) ViewRange() int {
	return d.viewRange
}

// At returns the cell value at x, y (Blocked outside the map).
func (d *Dungeon) At(x, y int) Cell { return d.grid.At(x, y) }

// SetAt overwrites the cell value at x, y.
func (d *Dungeon) SetAt(x, y int, v Cell) { d.grid.SetAt(x, y, v) }

// UpdateAt adds delta to the cell value at x, y.
func (d *Dungeon) UpdateAt(x, y int, delta Cell) { d.grid.UpdateAt(x, y, delta) }

// FogAt returns 1 for hidden cells and 0 for revealed ones.
func (d *Dungeon) FogAt(x, y int) int { return d.grid.FogAt(x, y) }

// SetFogAt sets the fog flag at x, y.
func (d *Dungeon) SetFogAt(x, y, v int) { d.grid.SetFogAt(x, y, v) }

// WalkedAt returns 1 once the player has stood on x, y.
func (d *Dungeon) WalkedAt(x, y int) int { return d.grid.WalkedAt(x, y) }

// SetWalkedAt sets the walked flag at x, y.
func (d *Dungeon) SetWalkedAt(x, y, v int) { d.grid.SetWalkedAt(x, y, v) }

// Block describes one interior cell for renderers.
type Block struct {
	X, Y      int
	WallState WallState
	Fog       int
	Enter     bool
	Walked    int
}

// MapIterator yields every interior cell, column by column. The sequence
// can be ranged over any number of times.
func (d *Dungeon) MapIterator() iter.Seq[Block] {
	return func(yield func(Block) bool) {
		g := d.grid
		for x := 1; x <= g.Width(); x++ {
			for y := 1; y <= g.Height(); y++ {
				value := g.At(x, y)
				b := Block{
					X:         x,
					Y:         y,
					WallState: value.WallState(),
					Fog:       g.FogAt(x, y),
					Enter:     !value.IsBlocked(),
					Walked:    g.WalkedAt(x, y),
				}
				if !yield(b) {
					return
				}
			}
		}
	}
}
