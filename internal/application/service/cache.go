package service

import (
	"context"

	"github.com/google/uuid"
)

// CVInvalidator drops the cached CV document after a mutation. Implementations
// must tolerate a cold cache; invalidating nothing is not an error.
type CVInvalidator interface {
	InvalidateCV(ctx context.Context, profileID uuid.UUID) error
}

// NopInvalidator satisfies CVInvalidator for tests and wiring without Redis.
type NopInvalidator struct{}

func (NopInvalidator) InvalidateCV(context.Context, uuid.UUID) error { return nil }
