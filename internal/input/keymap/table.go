package keymap

import (
	"strings"

	"github.com/dshills/keychord/internal/input/key"
)

// MatchResult classifies a chain lookup.
type MatchResult int

const (
	// MatchNone means no chain equals or extends the text; the chain is
	// invalid and should be abandoned.
	MatchNone MatchResult = iota

	// MatchPartial means the text is a strict prefix of at least one
	// chain but equals none; the parser should keep accumulating.
	MatchPartial

	// MatchDefinitive means the text equals exactly one chain and no
	// longer chain extends it; the command fires immediately.
	MatchDefinitive

	// MatchAmbiguous means the text equals a chain and is also a strict
	// prefix of a longer one; resolution waits on the ambiguity timer.
	MatchAmbiguous
)

// String returns a human-readable name for the result.
func (r MatchResult) String() string {
	switch r {
	case MatchNone:
		return "none"
	case MatchPartial:
		return "partial"
	case MatchDefinitive:
		return "definitive"
	case MatchAmbiguous:
		return "ambiguous"
	default:
		return "unknown"
	}
}

// Table holds the special and chain bindings of one configuration section.
// A Table is immutable after construction; reloading a section builds a
// replacement rather than mutating in place.
type Table struct {
	special map[string]string
	chains  map[string]string
}

// New creates an empty binding table.
func New() *Table {
	return &Table{
		special: make(map[string]string),
		chains:  make(map[string]string),
	}
}

// Add classifies a key spec and stores it in the matching set. Specs whose
// normalized form carries a modifier go into the special set under the
// normalized keystring; all others go into the chain set under their
// literal text.
func (t *Table) Add(spec, command string) {
	normalized := key.Normalize(spec)
	if key.HasModifier(normalized) {
		t.special[normalized] = command
		return
	}
	t.chains[spec] = command
}

// Special looks up an exact modifier-key combination by its normalized
// keystring.
func (t *Table) Special(keystring string) (string, bool) {
	command, ok := t.special[keystring]
	return command, ok
}

// MatchChain matches accumulated chain text against the chain set and
// returns the classification plus the matched command for MatchDefinitive
// and MatchAmbiguous results.
func (t *Table) MatchChain(text string) (MatchResult, string) {
	command, exact := t.chains[text]

	prefix := false
	for chain := range t.chains {
		if len(chain) > len(text) && strings.HasPrefix(chain, text) {
			prefix = true
			break
		}
	}

	switch {
	case exact && prefix:
		return MatchAmbiguous, command
	case exact:
		return MatchDefinitive, command
	case prefix:
		return MatchPartial, ""
	default:
		return MatchNone, ""
	}
}

// HasSpecial reports whether a normalized keystring is bound in the special
// set.
func (t *Table) HasSpecial(keystring string) bool {
	_, ok := t.special[keystring]
	return ok
}

// HasChain reports whether a literal chain is bound.
func (t *Table) HasChain(text string) bool {
	_, ok := t.chains[text]
	return ok
}

// Len returns the number of special and chain bindings.
func (t *Table) Len() (special, chains int) {
	return len(t.special), len(t.chains)
}
