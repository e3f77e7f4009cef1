package backend

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keychord/internal/input/key"
)

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want key.Event
	}{
		{
			"plain rune",
			tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone),
			key.Event{Key: key.KeyRune, Text: "a"},
		},
		{
			"alt rune",
			tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt),
			key.Event{Key: key.KeyRune, Modifiers: key.ModAlt, Text: "x"},
		},
		{
			"ctrl letter chord",
			tcell.NewEventKey(tcell.KeyCtrlA, 0, tcell.ModCtrl),
			key.Event{Key: key.KeyRune, Modifiers: key.ModCtrl, Text: "a"},
		},
		{
			"enter",
			tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone),
			key.NewSpecialEvent(key.KeyEnter, key.ModNone),
		},
		{
			"escape",
			tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
			key.NewSpecialEvent(key.KeyEscape, key.ModNone),
		},
		{
			"shift function key",
			tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModShift),
			key.NewSpecialEvent(key.KeyF5, key.ModShift),
		},
		{
			"backspace2 folds into backspace",
			tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone),
			key.NewSpecialEvent(key.KeyBackspace, key.ModNone),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TranslateKey(tt.ev)
			if !ok {
				t.Fatal("TranslateKey() ok = false, want true")
			}
			if !got.Equals(tt.want) {
				t.Errorf("TranslateKey() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestTranslateKeyChordKeyString(t *testing.T) {
	// A Ctrl+A chord from the terminal must produce the same keystring as
	// the binding spec "<Ctrl-a>".
	ev := tcell.NewEventKey(tcell.KeyCtrlA, 0, tcell.ModCtrl)
	got, ok := TranslateKey(ev)
	if !ok {
		t.Fatal("TranslateKey() ok = false, want true")
	}
	if ks, want := got.KeyString(), key.Normalize("<Ctrl-a>"); ks != want {
		t.Errorf("KeyString() = %q, want %q", ks, want)
	}
}

func TestTranslateMods(t *testing.T) {
	tests := []struct {
		mask tcell.ModMask
		want key.Modifier
	}{
		{tcell.ModNone, key.ModNone},
		{tcell.ModShift, key.ModShift},
		{tcell.ModCtrl, key.ModCtrl},
		{tcell.ModAlt, key.ModAlt},
		{tcell.ModMeta, key.ModMeta},
		{tcell.ModCtrl | tcell.ModAlt, key.ModCtrl | key.ModAlt},
	}

	for _, tt := range tests {
		if got := translateMods(tt.mask); got != tt.want {
			t.Errorf("translateMods(%v) = %v, want %v", tt.mask, got, tt.want)
		}
	}
}
