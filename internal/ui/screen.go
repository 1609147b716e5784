// Package ui draws the dungeon minimap in the terminal using tcell.
package ui

import "github.com/gdamore/tcell/v2"

// Screen is the terminal surface the minimap and info panel are drawn on.
type Screen struct {
	screen tcell.Screen
}

// NewScreen creates and initializes a new terminal screen.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return newScreen(s)
}

func newScreen(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.HideCursor()
	s.Clear()
	return &Screen{screen: s}, nil
}

// Close restores the terminal.
func (s *Screen) Close() {
	s.screen.Fini()
}

// PollEvent waits for and returns the next terminal event.
func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// Sync forces a complete redraw after a resize.
func (s *Screen) Sync() {
	s.screen.Sync()
}

// Fits reports whether a w x h area starting at the origin is fully visible.
func (s *Screen) Fits(w, h int) bool {
	sw, sh := s.screen.Size()
	return w <= sw && h <= sh
}

// SetContent draws one rune. Positions off the terminal are dropped.
func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.screen.SetContent(x, y, r, nil, style)
}

func (s *Screen) clear() { s.screen.Clear() }

func (s *Screen) show() { s.screen.Show() }
