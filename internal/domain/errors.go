package domain

import "errors"

// ErrValidation is returned when a request is rejected before any call to the
// external backend (e.g. missing or malformed body).
// Handlers map this to HTTP 400.
var ErrValidation = errors.New("validation error")

// ErrNotFound is returned by repo and service functions when a row lookup
// inside a multi-step flow comes up empty. Single-row reads exposed directly
// over HTTP do NOT use it — a missing profile is a 200 with a null body,
// matching the upstream contract.
var ErrNotFound = errors.New("not found")

// ErrUpstreamAuth is returned when the hosted authentication provider fails
// or rejects a request. Handlers map this to HTTP 400, except login which
// always answers a blanket 401.
var ErrUpstreamAuth = errors.New("auth backend error")

// ErrUpstreamStore is returned when the hosted table store fails.
// Handlers map this to HTTP 400.
var ErrUpstreamStore = errors.New("storage backend error")
