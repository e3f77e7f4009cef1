package key

import "strings"

// Normalize canonicalizes a binding spec into a keystring.
//
// Accepted spellings: an optional surrounding "<...>", modifier tokens
// separated from the rest by "+" or "-", and a trailing key token. Raw
// modifier spellings (Control, Windows, Mod1, Mod4) map to the canonical
// tokens; unknown words are not modifiers and pass through verbatim as part
// of the key token. Normalization is total and idempotent: every input maps
// to exactly one canonical form, and normalizing that form again is a no-op.
//
//	Normalize("Control+x")  == "Ctrl+X"
//	Normalize("<Ctrl-a>")   == "Ctrl+A"
//	Normalize("Control--")  == "Ctrl+-"
//	Normalize("Windows+++") == "Meta++"
//	Normalize("ba")         == "ba"
func Normalize(spec string) string {
	s := spec
	if len(s) > 2 && strings.HasPrefix(s, "<") && strings.HasSuffix(s, ">") {
		s = s[1 : len(s)-1]
	}

	var mods Modifier
	rest := s
	for {
		i := strings.IndexAny(rest, "+-")
		if i <= 0 {
			break
		}
		mod, ok := ModifierFromName(rest[:i])
		if !ok {
			break
		}
		mods = mods.With(mod)
		rest = rest[i+1:]
	}

	// A run of separator characters left after the modifiers means the
	// separator itself is the key ("Meta+++" leaves "++", key is "+").
	if len(rest) > 1 && (rest[0] == '+' || rest[0] == '-') &&
		strings.Count(rest, string(rest[0])) == len(rest) {
		rest = rest[:1]
	}

	return joinKeyString(mods, rest)
}

// HasModifier reports whether a normalized keystring contains at least one
// canonical modifier token. Binding tables use this to classify specs:
// modified combinations are special bindings, everything else is chain text.
func HasModifier(keystring string) bool {
	i := strings.IndexByte(keystring, '+')
	if i <= 0 {
		return false
	}
	_, ok := ModifierFromName(keystring[:i])
	return ok
}
