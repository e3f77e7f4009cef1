// Package config defines the configuration source contract for the key
// parser and an in-memory implementation for embedding and tests.
//
// A Source supplies named sections of key bindings plus the ambiguity
// timeout. Sources are constructor-injected into the parser; there is no
// package-level configuration state. Loading configuration from files is
// deliberately out of scope; callers that want file-backed settings
// implement Source over their own store.
package config
