// Package keymap provides the binding table for the key parser.
//
// A Table holds two disjoint binding sets built from one configuration
// section:
//
//   - special bindings: exact modifier-key combinations, keyed by their
//     normalized keystring ("Ctrl+A")
//   - chain bindings: ordered key-text sequences, keyed by their literal
//     text ("ba", "ccc")
//
// Classification happens when a spec is added: a spec whose normalized form
// contains at least one modifier token is special, everything else is a
// chain. Chain lookup is exact string and prefix comparison over the literal
// accumulated text: case matters, no fuzzy matching.
package keymap
