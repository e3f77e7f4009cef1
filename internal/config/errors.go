package config

import "errors"

// Errors returned by configuration operations.
var (
	// ErrSectionNotFound indicates the requested section does not exist
	// in the configuration source.
	ErrSectionNotFound = errors.New("config section not found")

	// ErrNoSection indicates no section name was supplied and none was
	// previously established.
	ErrNoSection = errors.New("no config section supplied")
)
