package db

import (
	"strings"

	"github.com/google/uuid"
)

// idGenerator is the function used to generate student IDs.
// It can be replaced in tests to control ID generation.
var idGenerator = defaultGenerateID

func defaultGenerateID() string {
	return uuid.NewString()
}

// NewStudentID returns a fresh unique student ID
func NewStudentID() string {
	return idGenerator()
}

// NormalizeStudentID trims whitespace and lowercases UUID-shaped IDs so that
// lookups do not depend on how an ID was typed
func NormalizeStudentID(id string) string {
	id = strings.TrimSpace(id)
	if _, err := uuid.Parse(id); err == nil {
		return strings.ToLower(id)
	}
	return id
}
