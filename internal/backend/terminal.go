package backend

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keychord/internal/input/key"
)

// Terminal owns a tcell screen and delivers translated key events.
type Terminal struct {
	screen tcell.Screen
}

// NewTerminal creates a terminal backend.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// Init initializes the screen. Fini must be called before exit.
func (t *Terminal) Init() error {
	return t.screen.Init()
}

// Fini restores the terminal.
func (t *Terminal) Fini() {
	t.screen.Fini()
}

// PollKey blocks until the next translatable key event. The boolean result
// is false once the screen is finalized.
func (t *Terminal) PollKey() (key.Event, bool) {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return key.Event{}, false
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if e, ok := TranslateKey(ev); ok {
				return e, true
			}
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}

// Clear erases the screen buffer.
func (t *Terminal) Clear() {
	t.screen.Clear()
}

// Show flushes the screen buffer to the terminal.
func (t *Terminal) Show() {
	t.screen.Show()
}

// DrawText writes a line of text starting at the given cell.
func (t *Terminal) DrawText(x, y int, text string) {
	for i, r := range []rune(text) {
		t.screen.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
}
