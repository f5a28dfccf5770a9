package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewUUID generates a new UUID
func NewUUID() uuid.UUID {
	return uuid.New()
}

// NewRequestID generates an id for request tracing.
func NewRequestID() string {
	return uuid.New().String()
}

// GenerateItemID generates an id for a menu item created from settings.
// Catalog ids are opaque strings; seeded items use readable slugs, created
// ones use this form.
func GenerateItemID() string {
	return "item_" + strings.ToUpper(uuid.New().String()[:8])
}
