package service

import "errors"

// Expected outcomes callers match on. Anything not wrapping one of
// these is an infrastructure failure and surfaces as a 500.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrConflict           = errors.New("conflict")
	ErrNotFound           = errors.New("not found")
	ErrMisconfigured      = errors.New("config invalid")
)
