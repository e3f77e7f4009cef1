package command

import "errors"

// Command sink errors.
var (
	// ErrUnknownCommand indicates no handler exists for a dispatched
	// command name.
	ErrUnknownCommand = errors.New("command: unknown command")

	// ErrEmptyName indicates a registration with an empty command name.
	ErrEmptyName = errors.New("command: empty command name")
)
