package key

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Event represents a single key press as delivered by an event source.
// It is a fixed structural type: sources validate and translate their raw
// events into this shape at the boundary, so the matching core never deals
// with source-specific representations.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Modifiers contains the active modifier keys.
	Modifiers Modifier

	// Text is the printable text produced by the press, possibly empty
	// (modifier-only presses and most special keys carry no text).
	Text string
}

// NewRuneEvent creates a key event for a printable character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{
		Key:       KeyRune,
		Modifiers: mods,
		Text:      string(r),
	}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{
		Key:       key,
		Modifiers: mods,
	}
}

// IsText returns true if the event carries printable text.
func (e Event) IsText() bool {
	if e.Text == "" {
		return false
	}
	for _, r := range e.Text {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}

// Name returns the key token for this event: the special key's name, or the
// text as typed for character keys.
func (e Event) Name() string {
	if e.Key.IsSpecial() {
		return e.Key.String()
	}
	return e.Text
}

// KeyString returns the canonical keystring for this event, suitable for
// equality lookup against normalized binding specs.
// Examples: "Ctrl+A", "Ctrl+Alt+Delete", "a".
func (e Event) KeyString() string {
	return joinKeyString(e.Modifiers, e.Name())
}

// Equals returns true if two events represent the same key press.
func (e Event) Equals(other Event) bool {
	return e.Key == other.Key &&
		e.Modifiers == other.Modifiers &&
		e.Text == other.Text
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Key: %s, Modifiers: %s, Text: %q}",
		e.Key.String(), e.Modifiers.String(), e.Text)
}

// joinKeyString builds the canonical keystring from a modifier set and a key
// token. A single-character alphabetic token is upper-cased when combined
// with at least one modifier; with no modifiers the token passes through
// unchanged.
func joinKeyString(mods Modifier, name string) string {
	if mods == ModNone {
		return name
	}
	if r, size := utf8.DecodeRuneInString(name); size == len(name) && unicode.IsLetter(r) {
		name = string(unicode.ToUpper(r))
	}
	return mods.String() + "+" + name
}
