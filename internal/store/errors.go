package store

import "errors"

var (
	// ErrNotFound is returned when an id lookup misses
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail is returned when registering an email that
	// already belongs to a user. The match is case-sensitive.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidTransition is returned in strict mode when a status
	// change is not a legal lifecycle step
	ErrInvalidTransition = errors.New("illegal status transition")
)
