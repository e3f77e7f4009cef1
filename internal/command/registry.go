package command

import (
	"fmt"
	"sort"
	"sync"

	"github.com/dshills/keychord/internal/input"
)

// HandlerFunc executes one dispatched command.
type HandlerFunc func(d input.Dispatch) error

// Registry maps command names to handlers.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]HandlerFunc
}

// NewRegistry creates an empty command registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]HandlerFunc),
	}
}

// Register adds a handler for a command name, replacing any previous
// handler under the same name.
func (r *Registry) Register(name string, fn HandlerFunc) error {
	if name == "" {
		return ErrEmptyName
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[name] = fn
	return nil
}

// Unregister removes the handler for a command name.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.handlers, name)
}

// Has returns true if a handler is registered for the command.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.handlers[name]
	return ok
}

// List returns all registered command names, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Execute runs the handler for a dispatched command.
func (r *Registry) Execute(d input.Dispatch) error {
	r.mu.RLock()
	fn, ok := r.handlers[d.Command]
	r.mu.RUnlock()

	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, d.Command)
	}
	return fn(d)
}

// Executor adapts the registry to the parser's Executor interface.
// Execution errors are passed to onErr; a nil onErr drops them.
func (r *Registry) Executor(onErr func(error)) input.Executor {
	return input.ExecutorFunc(func(d input.Dispatch) {
		if err := r.Execute(d); err != nil && onErr != nil {
			onErr(err)
		}
	})
}
