package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseHexRGB converts a hex color string (e.g., "#FF0000" or "FF0000") to 0xRRGGBB.
func ParseHexRGB(hex string) (uint32, error) {
	hex = strings.TrimPrefix(hex, "#")

	if len(hex) != 6 {
		return 0, fmt.Errorf("invalid hex color length: %s", hex)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}
	return uint32(v), nil
}

// ParseHexColor converts a hex color string to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	rgb, err := ParseHexRGB(hex)
	if err != nil {
		return tcell.ColorDefault, err
	}
	return RGBColor(rgb), nil
}

// RGBColor converts a packed 0xRRGGBB value to a tcell.Color.
func RGBColor(rgb uint32) tcell.Color {
	return tcell.NewHexColor(int32(rgb & 0xFFFFFF))
}
