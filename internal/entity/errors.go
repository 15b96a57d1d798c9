package entity

import "errors"

// Error categories. Every use case precondition maps to exactly one of
// these; the HTTP layer translates them into response statuses.
var (
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrBadRequest   = errors.New("bad request")
)
