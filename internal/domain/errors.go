package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the backing store.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing destination, end date before start date).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrUnavailable is returned by repo implementations when the backing store
// cannot be reached. It is deliberately distinct from ErrNotFound so callers
// can tell "no data" apart from "backend down".
// Handlers should map this to HTTP 503.
var ErrUnavailable = errors.New("storage unavailable")
