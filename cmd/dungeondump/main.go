// Command dungeondump generates one floor and prints it to the terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/gookit/color"

	"github.com/samdwyer/dungeoncrawl/internal/config"
	"github.com/samdwyer/dungeoncrawl/internal/random"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

var (
	colorBlocked = color.Style{color.FgGray}
	colorWall    = color.Style{color.FgWhite}
	colorDoor    = color.Style{color.FgYellow, color.OpBold}
	colorPlayer  = color.Style{color.FgGreen, color.OpBold}
	colorInfo    = color.Style{color.FgCyan}
)

func main() {
	doorOff := flag.Bool("door-off", false, "draw door cells with their wall glyph")
	plain := flag.Bool("plain", false, "disable colour output")
	flag.Parse()

	if err := config.LoadDotEnv(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	rng, seed, err := random.NewRand(cfg.Seed)
	if err != nil {
		log.Fatalf("Failed to seed generator: %v", err)
	}

	d := world.NewDungeon(cfg.Width, cfg.Height, rng,
		world.WithViewRange(cfg.ViewRange),
		world.WithFog(cfg.Fog),
	)
	if err := d.Build(context.Background()); err != nil {
		log.Fatalf("Build failed (seed %d): %v", seed, err)
	}

	if *plain {
		color.Disable()
	}
	fmt.Print(colorize(d.Dump(*doorOff)))
	fmt.Println(colorInfo.Sprint(summary(d, seed)))
}

// summary describes the floor in one line.
func summary(d *world.Dungeon, seed int64) string {
	return fmt.Sprintf("seed %d  %dx%d  view %d  rooms %d  corridors %d",
		seed, d.Width(), d.Height(), d.ViewRange(), len(d.Rooms()), len(d.Rooms().Corridors()))
}

// colorize wraps each glyph of a dump in its style.
func colorize(dump string) string {
	var sb strings.Builder
	for _, r := range dump {
		switch {
		case r == '\n':
			sb.WriteRune(r)
		case r == '#':
			sb.WriteString(colorBlocked.Sprint(string(r)))
		case r == '+':
			sb.WriteString(colorDoor.Sprint(string(r)))
		case strings.ContainsRune("→↓←↑", r):
			sb.WriteString(colorPlayer.Sprint(string(r)))
		default:
			sb.WriteString(colorWall.Sprint(string(r)))
		}
	}
	return sb.String()
}
