package services

import "errors"

// Sentinel errors shared by the service layer. Controllers map these to
// HTTP statuses; anything else is reported as an internal error, never as
// an empty success. A concurrent duplicate of an idempotent operation is
// not an error at all: it resolves as a no-op success.
var (
	// ErrValidation marks a rejected request before any read happens.
	ErrValidation = errors.New("invalid request")

	// ErrNotFound marks missing per-user state (activity or point row).
	ErrNotFound = errors.New("record not found")
)
