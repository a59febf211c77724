package usecase

import "errors"

var (
	// ErrInvalidInput marks caller mistakes that map to a 400 response.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound marks lookups for entities that do not exist.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized marks requests with a missing or bad credential.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrDependencyUnavailable marks transient downstream failures the
	// caller may retry, such as a bid losing the race for a row lock.
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
