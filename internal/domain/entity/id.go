// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"

	"github.com/google/uuid"
)

// idLength is the length of the opaque short identifiers used across all
// collections. Records created by the original frontend carry ids of the
// same shape, so existing stores remain readable.
const idLength = 8

// NewID returns an opaque short random string identifier.
func NewID() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")

	return raw[:idLength]
}
