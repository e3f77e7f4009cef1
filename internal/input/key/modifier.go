package key

import "strings"

// Modifier represents keyboard modifier keys.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModShift indicates the Shift key.
	ModShift Modifier = 1 << iota

	// ModCtrl indicates the Control key.
	ModCtrl

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt

	// ModMeta indicates the Meta key (Cmd on macOS, Win on Windows).
	ModMeta
)

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// HasShift returns true if Shift is pressed.
func (m Modifier) HasShift() bool {
	return m.Has(ModShift)
}

// HasCtrl returns true if Control is pressed.
func (m Modifier) HasCtrl() bool {
	return m.Has(ModCtrl)
}

// HasAlt returns true if Alt is pressed.
func (m Modifier) HasAlt() bool {
	return m.Has(ModAlt)
}

// HasMeta returns true if Meta is pressed.
func (m Modifier) HasMeta() bool {
	return m.Has(ModMeta)
}

// HasNonShift returns true if any modifier other than Shift is pressed.
// Shift alone is not a chord modifier: it changes the character produced
// by the key rather than forming a combination with it.
func (m Modifier) HasNonShift() bool {
	return m&(ModCtrl|ModAlt|ModMeta) != 0
}

// With returns a new Modifier with the specified modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns a new Modifier with the specified modifier removed.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// IsEmpty returns true if no modifiers are set.
func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

// String returns the canonical keystring prefix like "Ctrl+Alt".
// Modifiers always appear in the fixed order Ctrl, Alt, Shift, Meta so
// that equal modifier sets produce equal strings.
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}

	var parts []string
	if m.HasCtrl() {
		parts = append(parts, "Ctrl")
	}
	if m.HasAlt() {
		parts = append(parts, "Alt")
	}
	if m.HasShift() {
		parts = append(parts, "Shift")
	}
	if m.HasMeta() {
		parts = append(parts, "Meta")
	}
	return strings.Join(parts, "+")
}

// modifierNameMap maps modifier spellings to Modifier values. Raw spellings
// from other windowing conventions (Control, Windows, Mod1, Mod4) map to the
// same values as the canonical tokens. Matching is exact: lowercase words
// like "alt" are not modifier tokens, so chain text such as "a-b" is never
// misread as a modified key.
var modifierNameMap = map[string]Modifier{
	"Ctrl":    ModCtrl,
	"Control": ModCtrl,
	"Alt":     ModAlt,
	"Mod1":    ModAlt,
	"Meta":    ModMeta,
	"Windows": ModMeta,
	"Mod4":    ModMeta,
	"Shift":   ModShift,
}

// ModifierFromName returns the Modifier for a given spelling.
// The second return value reports whether the name is a known modifier.
func ModifierFromName(name string) (Modifier, bool) {
	m, ok := modifierNameMap[name]
	return m, ok
}
