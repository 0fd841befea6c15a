// Package common defines shared constants and sentinel errors used across
// userdesk components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository/cache-level errors.
	ErrNotFound = errors.New("not found")

	// Validation errors, raised before any network call is made.
	ErrValidation = errors.New("validation error")

	// The remote directory could not be reached.
	ErrUnavailable = errors.New("directory unavailable")
)
