package services

import "errors"

var (
	// ErrEmailExists signals a registration attempt with an already
	// registered email address.
	ErrEmailExists = errors.New("email already registered")

	// ErrUnauthorized signals a missing, malformed, or unresolvable
	// credential.
	ErrUnauthorized = errors.New("invalid credentials")
)
