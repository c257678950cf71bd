// Package common defines shared constants and sentinel errors used across
// client and server layers of the diary. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Validation errors.
	ErrorValidation = errors.New("validation error")
)
