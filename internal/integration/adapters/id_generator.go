// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"github.com/google/uuid"

	"github.com/debt-manager/backend/internal/application/adapter"
)

// uuidGenerator implements adapter.IDGenerator with random UUIDs. The
// identifiers are opaque to callers; only uniqueness and string form
// matter.
type uuidGenerator struct{}

// NewIDGenerator creates a UUID-based identifier generator.
func NewIDGenerator() adapter.IDGenerator {
	return &uuidGenerator{}
}

// NewID returns a fresh identifier.
func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}
