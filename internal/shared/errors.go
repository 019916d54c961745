// Package shared defines sentinel errors used across client and server
// layers of userdesk. Callers should use errors.Is to match these values.
package shared

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// ErrorAlreadyExists marks a unique-email violation.
	ErrorAlreadyExists = errors.New("already exists")

	// Validation errors (missing required field, malformed email).
	ErrorValidation = errors.New("validation error")

	// ErrorInternal hides storage/server details from callers.
	ErrorInternal = errors.New("internal error")
)
