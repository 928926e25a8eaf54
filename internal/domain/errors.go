package domain

import "errors"

// Sentinel errors for domain-level error discrimination.
// Services wrap these so handlers can map to HTTP status codes without leaking infrastructure details.
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrBadRequest   = errors.New("bad request")

	// One-time passcode lifecycle errors.
	ErrDomainNotAllowed = errors.New("email domain not allowed")
	ErrExpired          = errors.New("code expired")
	ErrMismatch         = errors.New("code mismatch")
	ErrExhausted        = errors.New("attempts exhausted")
)
