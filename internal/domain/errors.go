package domain

import "errors"

// Error kinds surfaced by the services. Callers dispatch with errors.Is;
// the HTTP layer maps each kind to a status code.
var (
	// ErrValidation marks input that fails a business rule. The caller can
	// recover by correcting the input.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidState marks an operation disallowed by the entity's current
	// lifecycle state, such as completing an already-completed job.
	ErrInvalidState = errors.New("invalid state")

	// ErrNotFound marks a referenced entity that does not exist in the store.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks an operation that would violate an at-most-one
	// invariant, such as settling a job twice.
	ErrConflict = errors.New("conflict")

	// ErrStore marks an underlying persistence failure unrelated to business
	// rules. The services propagate it without retrying.
	ErrStore = errors.New("store error")

	// ErrUnauthorized marks a failed or missing authentication.
	ErrUnauthorized = errors.New("unauthorized")
)
