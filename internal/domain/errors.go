package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database, or is not visible to the caller.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing name, fun outside 0-10, depart before arrive).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrUnauthenticated is returned when an operation that needs a user is
// called without one. Handlers should map this to HTTP 401.
var ErrUnauthenticated = errors.New("unauthenticated")
