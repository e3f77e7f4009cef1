package config

import (
	"fmt"
	"sync"
	"time"
)

// Entry is a single binding within a section: a raw key spec mapped to a
// command string.
type Entry struct {
	// Keys is the key spec as written ("<Ctrl-a>", "ba", "Control+x").
	Keys string

	// Command is the command string dispatched when the binding fires.
	Command string
}

// Source supplies binding sections and the ambiguity timeout to a parser.
type Source interface {
	// Section returns the ordered bindings of a named section.
	// A missing section is an error (ErrSectionNotFound), never a silent
	// empty table.
	Section(name string) ([]Entry, error)

	// Timeout returns the ambiguous-match timeout. Zero disables
	// automatic disambiguation: an ambiguous chain then persists until a
	// further key resolves or abandons it.
	Timeout() time.Duration
}

// MapSource is an in-memory Source.
type MapSource struct {
	mu       sync.RWMutex
	sections map[string][]Entry
	timeout  time.Duration
}

// NewMapSource creates an empty in-memory source with the given timeout.
func NewMapSource(timeout time.Duration) *MapSource {
	return &MapSource{
		sections: make(map[string][]Entry),
		timeout:  timeout,
	}
}

// SetSection stores a section, replacing any previous entries under the
// same name.
func (s *MapSource) SetSection(name string, entries []Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := make([]Entry, len(entries))
	copy(copied, entries)
	s.sections[name] = copied
}

// Add appends one binding to a section, creating the section if needed.
func (s *MapSource) Add(section, keys, command string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sections[section] = append(s.sections[section], Entry{Keys: keys, Command: command})
}

// Section implements Source.
func (s *MapSource) Section(name string) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, ok := s.sections[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSectionNotFound, name)
	}

	copied := make([]Entry, len(entries))
	copy(copied, entries)
	return copied, nil
}

// Timeout implements Source.
func (s *MapSource) Timeout() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.timeout
}

// SetTimeout updates the ambiguity timeout.
func (s *MapSource) SetTimeout(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timeout = d
}
