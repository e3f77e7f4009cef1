// Package key provides key event types and keystring normalization for the
// input system.
//
// This package defines the fundamental types for representing keyboard input:
//
//   - Key: Identifies a keyboard key (special keys or printable runes)
//   - Modifier: Represents modifier keys (Ctrl, Alt, Shift, Meta)
//   - Event: A single key press with modifiers and printable text
//
// # Keystrings
//
// Bindings and incoming events are compared through a canonical textual form
// called a keystring: zero or more modifier tokens joined by "+", followed by
// a key token ("Ctrl+X", "Ctrl+Alt+Delete", "Meta++"). Normalize produces the
// canonical form for binding specifications written in any of the accepted
// spellings:
//
//	"Control+x"  -> "Ctrl+X"
//	"<Ctrl-a>"   -> "Ctrl+A"
//	"Mod1+x"     -> "Alt+X"
//	"Windows++"  -> "Meta++"
//
// Event.KeyString produces the same canonical form for live key events, so
// lookups reduce to string equality.
package key
