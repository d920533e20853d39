// Package common contains shared constants and sentinel errors used across
// Dreamcatcher client components. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Credential-store errors.
	ErrNotFound = errors.New("not found")

	// Transport-level errors.
	ErrUnauthorized = errors.New("unauthorized")
	ErrUnavailable  = errors.New("server unavailable")
)
