package key

import "testing"

func TestEventKeyString(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  string
	}{
		{"plain rune", NewRuneEvent('a', ModNone), "a"},
		{"upper rune", NewRuneEvent('A', ModShift), "Shift+A"},
		{"ctrl rune", NewRuneEvent('a', ModCtrl), "Ctrl+A"},
		{"ctrl punctuation", NewRuneEvent('-', ModCtrl), "Ctrl+-"},
		{"meta plus", NewRuneEvent('+', ModMeta), "Meta++"},
		{"ctrl alt rune", NewRuneEvent('x', ModCtrl|ModAlt), "Ctrl+Alt+X"},
		{"special key", NewSpecialEvent(KeyEnter, ModNone), "Enter"},
		{"ctrl special", NewSpecialEvent(KeyDelete, ModCtrl|ModAlt), "Ctrl+Alt+Delete"},
		{"function key", NewSpecialEvent(KeyF5, ModShift), "Shift+F5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.event.KeyString()
			if got != tt.want {
				t.Errorf("KeyString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEventKeyStringMatchesNormalize(t *testing.T) {
	// An event and the binding spec it should trigger must produce the
	// same keystring.
	pairs := []struct {
		event Event
		spec  string
	}{
		{NewRuneEvent('a', ModCtrl), "<Ctrl-a>"},
		{NewRuneEvent('x', ModCtrl), "Control+x"},
		{NewRuneEvent('x', ModMeta), "Windows+x"},
		{NewRuneEvent('x', ModAlt), "Mod1+x"},
		{NewRuneEvent('-', ModCtrl), "Control--"},
	}

	for _, p := range pairs {
		if got, want := p.event.KeyString(), Normalize(p.spec); got != want {
			t.Errorf("event %#v keystring %q != Normalize(%q) = %q",
				p.event, got, p.spec, want)
		}
	}
}

func TestEventIsText(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  bool
	}{
		{"rune", NewRuneEvent('a', ModNone), true},
		{"digit", NewRuneEvent('4', ModNone), true},
		{"no text", NewSpecialEvent(KeyEscape, ModNone), false},
		{"control char", Event{Key: KeyRune, Text: "\x01"}, false},
		{"empty", Event{Key: KeyRune}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.event.IsText(); got != tt.want {
				t.Errorf("IsText() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEventName(t *testing.T) {
	if got := NewSpecialEvent(KeyPageUp, ModNone).Name(); got != "PageUp" {
		t.Errorf("Name() = %q, want %q", got, "PageUp")
	}
	if got := NewRuneEvent('b', ModNone).Name(); got != "b" {
		t.Errorf("Name() = %q, want %q", got, "b")
	}
}

func TestEventEquals(t *testing.T) {
	a := NewRuneEvent('a', ModCtrl)
	b := NewRuneEvent('a', ModCtrl)
	c := NewRuneEvent('a', ModAlt)

	if !a.Equals(b) {
		t.Error("identical events not equal")
	}
	if a.Equals(c) {
		t.Error("events with different modifiers compare equal")
	}
}
