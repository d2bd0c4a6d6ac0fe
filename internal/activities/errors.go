package activities

import "errors"

var (
	// ErrNotFound is returned when no activity has the requested name.
	ErrNotFound = errors.New("activity not found")

	// ErrAlreadyRegistered is returned when signing up an email that is
	// already on the roster.
	ErrAlreadyRegistered = errors.New("already registered")

	// ErrNotRegistered is returned when unregistering an email that is not
	// on the roster.
	ErrNotRegistered = errors.New("not registered")

	// ErrInvalidSeed is returned when a seed dataset fails validation.
	ErrInvalidSeed = errors.New("invalid seed")
)
