// Package uuid generates and checks the identifiers attached to requests.
package uuid

import (
	googleuuid "github.com/google/uuid"
)

// New returns a time-ordered UUIDv7, so request ids sort by arrival in logs.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		return googleuuid.New().String()
	}
	return id.String()
}

// IsValid checks if a string is a valid UUID
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}

// RequestID returns candidate in canonical form when it is a UUID, and a
// fresh identifier otherwise.
func RequestID(candidate string) string {
	if candidate != "" {
		if parsed, err := googleuuid.Parse(candidate); err == nil {
			return parsed.String()
		}
	}
	return New()
}
