// Package id provides UUID generation for all platform entities.
package id

import (
	"github.com/google/uuid"
)

// ID is a type alias for UUID, used across all entities.
type ID = uuid.UUID

// Nil is the zero ID.
var Nil = uuid.Nil

// New generates a new random ID.
func New() ID {
	return uuid.New()
}

// Parse parses an ID from its string form.
func Parse(s string) (ID, error) {
	return uuid.Parse(s)
}

// IsNil reports whether the ID is the zero value.
func IsNil(v ID) bool {
	return v == uuid.Nil
}
