package services

import "errors"

// Sentinel errors services wrap so controllers can map them to HTTP status
// codes. Everything else surfaces as a generic 500.
var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
	ErrConflict  = errors.New("already exists")
	ErrInvalid   = errors.New("invalid request")
)
